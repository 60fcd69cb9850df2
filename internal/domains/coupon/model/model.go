package model

import (
	"time"
	"tripseat/shared/model"
)

const (
	TableName  = "coupons"
	EntityName = "coupon"

	FieldID              = "id"
	FieldCode            = "code"
	FieldPercentOff      = "percent_off"
	FieldIsActive        = "is_active"
	FieldExpiresAt       = "expires_at"
	FieldMaxRedemptions  = "max_redemptions"
	FieldRedemptionCount = "redemption_count"
	FieldMinParticipants = "min_participants"
)

// Reasons a coupon is refused. They travel to clients as failure details.
const (
	ReasonNotFound              = "not_found"
	ReasonInactive              = "inactive"
	ReasonExpired               = "expired"
	ReasonMaxRedemptionsReached = "max_redemptions_reached"
	ReasonMinParticipantsNotMet = "min_participants_not_met"
)

type Coupon struct {
	ID              string     `db:"id"`
	Code            string     `db:"code"`
	PercentOff      int        `db:"percent_off"`
	IsActive        bool       `db:"is_active"`
	ExpiresAt       *time.Time `db:"expires_at"`
	MaxRedemptions  *int       `db:"max_redemptions"`
	RedemptionCount int        `db:"redemption_count"`
	MinParticipants *int       `db:"min_participants"`
	model.Metadata
}

// Check returns the reason the coupon cannot be applied to a booking of
// participants at now, or an empty string when it can.
func (c Coupon) Check(participants int, now time.Time) string {
	switch {
	case !c.IsActive:
		return ReasonInactive
	case c.ExpiresAt != nil && !c.ExpiresAt.After(now):
		return ReasonExpired
	case c.MaxRedemptions != nil && c.RedemptionCount >= *c.MaxRedemptions:
		return ReasonMaxRedemptionsReached
	case c.MinParticipants != nil && participants < *c.MinParticipants:
		return ReasonMinParticipantsNotMet
	}

	return ""
}

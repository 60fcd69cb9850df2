package dto

import (
	"strings"
	"time"
	"tripseat/internal/domains/coupon/model"
	"tripseat/shared"
	"tripseat/shared/constant"
	gDto "tripseat/shared/dto"
	"tripseat/shared/failure"
	gModel "tripseat/shared/model"
	"tripseat/shared/timezone"

	"github.com/google/uuid"
)

// NormalizeCode is the stored form of a coupon code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

type CreateCouponRequest struct {
	Code            string  `json:"code"             validate:"required,coupon_code"`
	PercentOff      int     `json:"percent_off"      validate:"required,min=1,max=100"`
	IsActive        *bool   `json:"is_active"`
	ExpiresAt       *string `json:"expires_at"       validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	MaxRedemptions  *int    `json:"max_redemptions"  validate:"omitempty,min=1"`
	MinParticipants *int    `json:"min_participants" validate:"omitempty,min=1"`
}

func (c *CreateCouponRequest) ToModel(user string) (model.Coupon, error) {
	expiresAt, err := parseExpiry(c.ExpiresAt)
	if err != nil {
		return model.Coupon{}, err
	}

	isActive := true
	if c.IsActive != nil {
		isActive = *c.IsActive
	}

	now := timezone.Now()

	return model.Coupon{
		ID:              uuid.NewString(),
		Code:            NormalizeCode(c.Code),
		PercentOff:      c.PercentOff,
		IsActive:        isActive,
		ExpiresAt:       expiresAt,
		MaxRedemptions:  c.MaxRedemptions,
		RedemptionCount: 0,
		MinParticipants: c.MinParticipants,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateCouponRequest struct {
	PercentOff      *int    `json:"percent_off"      validate:"omitempty,min=1,max=100"`
	IsActive        *bool   `json:"is_active"`
	ExpiresAt       *string `json:"expires_at"       validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	MaxRedemptions  *int    `json:"max_redemptions"  validate:"omitempty,min=1"`
	MinParticipants *int    `json:"min_participants" validate:"omitempty,min=1"`
}

// ToFields maps the request onto column updates. A max_redemptions below the
// current redemption_count is refused.
func (u *UpdateCouponRequest) ToFields(current model.Coupon, user string) (map[string]any, error) {
	if u.MaxRedemptions != nil && *u.MaxRedemptions < current.RedemptionCount {
		return nil, failure.Conflict("max_redemptions cannot be lower than the current redemption count")
	}

	expiresAt, err := parseExpiry(u.ExpiresAt)
	if err != nil {
		return nil, err
	}

	fields := shared.TransformFields(struct {
		PercentOff      *int       `db:"percent_off"`
		IsActive        *bool      `db:"is_active"`
		ExpiresAt       *time.Time `db:"expires_at"`
		MaxRedemptions  *int       `db:"max_redemptions"`
		MinParticipants *int       `db:"min_participants"`
	}{
		PercentOff:      u.PercentOff,
		IsActive:        u.IsActive,
		ExpiresAt:       expiresAt,
		MaxRedemptions:  u.MaxRedemptions,
		MinParticipants: u.MinParticipants,
	}, user)

	return fields, nil
}

func parseExpiry(value *string) (*time.Time, error) {
	if value == nil || *value == constant.Empty {
		return nil, nil
	}

	parsed, err := timezone.Parse(constant.DateFormat, *value)
	if err != nil {
		return nil, failure.BadRequestFromString("expires_at must be an RFC3339 timestamp")
	}

	return &parsed, nil
}

type ValidateCouponRequest struct {
	Code              string `json:"code"               validate:"required"`
	ParticipantsCount int    `json:"participants_count" validate:"required,min=1"`
}

type CouponResponse struct {
	ID              string  `json:"id"`
	Code            string  `json:"code"`
	PercentOff      int     `json:"percent_off"`
	IsActive        bool    `json:"is_active"`
	ExpiresAt       *string `json:"expires_at"`
	MaxRedemptions  *int    `json:"max_redemptions"`
	RedemptionCount int     `json:"redemption_count"`
	MinParticipants *int    `json:"min_participants"`
	gDto.Metadata
}

func (r *CouponResponse) FromModel(model model.Coupon) {
	r.ID = model.ID
	r.Code = model.Code
	r.PercentOff = model.PercentOff
	r.IsActive = model.IsActive
	r.MaxRedemptions = model.MaxRedemptions
	r.RedemptionCount = model.RedemptionCount
	r.MinParticipants = model.MinParticipants
	r.Metadata.FromModel(model.Metadata)

	if model.ExpiresAt != nil {
		expiresAt := timezone.Format(*model.ExpiresAt, constant.DateFormat)
		r.ExpiresAt = &expiresAt
	}
}

type GetCouponsResponse struct {
	Coupons   []CouponResponse `json:"coupons"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetCouponsResponse) FromModels(models []model.Coupon, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Coupons = make([]CouponResponse, len(models))
	for i, mod := range models {
		r.Coupons[i].FromModel(mod)
	}
}

// PreviewResponse is what a visitor sees after entering a usable code.
type PreviewResponse struct {
	Code              string `json:"code"`
	PercentOff        int    `json:"percent_off"`
	ParticipantsCount int    `json:"participants_count"`
	Valid             bool   `json:"valid"`
}

func (p *PreviewResponse) FromModel(model model.Coupon, participants int) {
	p.Code = model.Code
	p.PercentOff = model.PercentOff
	p.ParticipantsCount = participants
	p.Valid = true
}

package model

import (
	"time"
	"tripseat/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID                 = "id"
	FieldTripDateID         = "trip_date_id"
	FieldEmail              = "email"
	FieldStatus             = "status"
	FieldDepositStatus      = "deposit_status"
	FieldRemainingStatus    = "remaining_status"
	FieldPaymentToken       = "payment_token"
	FieldDepositPaidAt      = "deposit_paid_at"
	FieldRemainingPaidAt    = "remaining_paid_at"
	FieldCancelledAt        = "cancelled_at"
	FieldDepositSessionID   = "deposit_session_id"
	FieldRemainingSessionID = "remaining_session_id"
)

const (
	StatusCreated     = "CREATED"
	StatusDepositPaid = "DEPOSIT_PAID"
	StatusFullyPaid   = "FULLY_PAID"
	StatusCancelled   = "CANCELLED"
)

const (
	DepositPending = "PENDING"
	DepositPaid    = "PAID"
	DepositFailed  = "FAILED"

	RemainingPending = "PENDING"
	RemainingPaid    = "PAID"
)

type Booking struct {
	ID                   string          `db:"id"`
	TripDateID           string          `db:"trip_date_id"`
	ParticipantsCount    int             `db:"participants_count"`
	FullName             string          `db:"full_name"`
	Email                string          `db:"email"`
	Phone                string          `db:"phone"`
	CouponID             *string         `db:"coupon_id"`
	TotalPrice           decimal.Decimal `db:"total_price"`
	DepositAmount        decimal.Decimal `db:"deposit_amount"`
	RemainingAmount      decimal.Decimal `db:"remaining_amount"`
	Status               string          `db:"status"`
	DepositStatus        string          `db:"deposit_status"`
	RemainingStatus      string          `db:"remaining_status"`
	RemainingDueDate     time.Time       `db:"remaining_due_date"`
	PaymentToken         string          `db:"payment_token"`
	DepositPaidAt        *time.Time      `db:"deposit_paid_at"`
	RemainingPaidAt      *time.Time      `db:"remaining_paid_at"`
	CancelledAt          *time.Time      `db:"cancelled_at"`
	DepositSessionID     *string         `db:"deposit_session_id"`
	RemainingSessionID   *string         `db:"remaining_session_id"`
	LastNotificationID   *string         `db:"last_notification_id"`
	LastNotificationType *string         `db:"last_notification_type"`
	LastNotificationAt   *time.Time      `db:"last_notification_at"`
	model.Metadata
}

// DepositConfirmed reports whether the deposit has committed capacity.
func (b Booking) DepositConfirmed() bool {
	return b.Status == StatusDepositPaid || b.Status == StatusFullyPaid
}

// Owes reports whether a remaining balance is still outstanding.
func (b Booking) Owes() bool {
	return b.RemainingAmount.IsPositive() && b.RemainingStatus != RemainingPaid
}

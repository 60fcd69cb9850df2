package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const EntityName = "notification"

const (
	KindDepositConfirmed   = "deposit-confirmed"
	KindRemainingRequest   = "remaining-request"
	KindRemainingConfirmed = "remaining-confirmed"
)

const (
	HeaderKind       = "notification-kind"
	HeaderDeliveryID = "delivery-id"
)

// Delivery is the message handed to the rendering sink.
type Delivery struct {
	DeliveryID       string          `json:"delivery_id"`
	Kind             string          `json:"kind"`
	BookingID        string          `json:"booking_id"`
	Email            string          `json:"email"`
	FullName         string          `json:"full_name"`
	PaymentToken     string          `json:"payment_token"`
	TotalPrice       decimal.Decimal `json:"total_price"`
	RemainingAmount  decimal.Decimal `json:"remaining_amount"`
	RemainingDueDate *time.Time      `json:"remaining_due_date,omitempty"`
	RequestedAt      time.Time       `json:"requested_at"`
}

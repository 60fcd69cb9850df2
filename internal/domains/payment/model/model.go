package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "payments"
	EntityName = "payment"

	FieldID        = "id"
	FieldBookingID = "booking_id"
	FieldCreatedAt = "created_at"
)

const (
	KindDeposit   = "deposit"
	KindRemaining = "remaining"
)

const (
	StatusOpen         = "OPEN"
	StatusGatewayError = "GATEWAY_ERROR"
)

// Payment is one attempted checkout session. Rows are append-only.
type Payment struct {
	ID               string          `db:"id"`
	BookingID        string          `db:"booking_id"`
	Amount           decimal.Decimal `db:"amount"`
	Kind             string          `db:"kind"`
	GatewaySessionID *string         `db:"gateway_session_id"`
	Status           string          `db:"status"`
	CreatedAt        time.Time       `db:"created_at"`
}

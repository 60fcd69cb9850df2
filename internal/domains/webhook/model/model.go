package model

import "time"

const (
	TableName  = "webhook_events"
	EntityName = "webhook_event"

	FieldID      = "id"
	FieldOutcome = "outcome"
)

const (
	TypeSessionCompleted   = "checkout.session.completed"
	TypeAsyncPaymentPassed = "checkout.session.async_payment_succeeded"
	TypeAsyncPaymentFailed = "checkout.session.async_payment_failed"
	TypeSessionExpired     = "checkout.session.expired"

	PaymentStatusPaid = "paid"
)

// Outcomes recorded per event. OutcomePending only lives inside the
// transaction that claims the event.
const (
	OutcomePending          = "pending"
	OutcomeProcessed        = "processed"
	OutcomeNoop             = "noop"
	OutcomeIgnored          = "ignored"
	OutcomeUnmatched        = "unmatched"
	OutcomeCapacityExceeded = "capacity_exceeded"
	OutcomeRejected         = "rejected"
)

// WebhookEvent is the deduplication record of a gateway event, keyed by the
// gateway's event id.
type WebhookEvent struct {
	ID         string    `db:"id"`
	Type       string    `db:"type"`
	SessionID  string    `db:"session_id"`
	BookingID  string    `db:"booking_id"`
	Kind       string    `db:"kind"`
	Outcome    string    `db:"outcome"`
	ReceivedAt time.Time `db:"received_at"`
}

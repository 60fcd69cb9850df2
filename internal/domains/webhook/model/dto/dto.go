package dto

import (
	"encoding/json"
	"strings"
	"time"
	"tripseat/infras/gateway"
	"tripseat/internal/domains/webhook/model"
	"tripseat/shared/constant"
	"tripseat/shared/failure"
)

type Event struct {
	ID   string    `json:"id"`
	Type string    `json:"type"`
	Data EventData `json:"data"`
}

type EventData struct {
	SessionID     string            `json:"session_id"`
	PaymentStatus string            `json:"payment_status"`
	Metadata      map[string]string `json:"metadata"`
}

// ParseEvent decodes a verified payload. Only the event id is mandatory; the
// rest decides the dispatch.
func ParseEvent(payload []byte) (Event, error) {
	var event Event

	if err := json.Unmarshal(payload, &event); err != nil {
		return event, failure.BadRequestFromString("malformed webhook payload")
	}

	event.ID = strings.TrimSpace(event.ID)
	if event.ID == constant.Empty {
		return event, failure.BadRequestFromString("webhook event has no id")
	}

	return event, nil
}

func (e Event) BookingID() string {
	return e.Data.Metadata[gateway.MetadataBookingID]
}

func (e Event) Kind() string {
	return e.Data.Metadata[gateway.MetadataKind]
}

// Succeeded reports whether the event settles a payment.
func (e Event) Succeeded() bool {
	switch e.Type {
	case model.TypeSessionCompleted:
		return e.Data.PaymentStatus == model.PaymentStatusPaid
	case model.TypeAsyncPaymentPassed:
		return true
	}

	return false
}

func (e Event) ToModel(now time.Time) model.WebhookEvent {
	return model.WebhookEvent{
		ID:         e.ID,
		Type:       e.Type,
		SessionID:  e.Data.SessionID,
		BookingID:  e.BookingID(),
		Kind:       e.Kind(),
		Outcome:    model.OutcomePending,
		ReceivedAt: now,
	}
}

type HandleResponse struct {
	Received  bool   `json:"received"`
	EventID   string `json:"event_id"`
	Outcome   string `json:"outcome"`
	Duplicate bool   `json:"duplicate,omitempty"`
}

package gateway

//go:generate go run go.uber.org/mock/mockgen -source=./gateway.go -destination=./mocks/gateway_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"tripseat/config"
	"tripseat/infras/otel"
	"tripseat/shared/constant"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	checkoutSessionsPath = "/v1/checkout/sessions"
	headerIdempotencyKey = "Idempotency-Key"
	maxErrorBodyBytes    = 4 << 10
)

// SessionRequest describes one hosted checkout session.
type SessionRequest struct {
	BookingID     string
	Kind          string
	Amount        decimal.Decimal
	Currency      string
	Description   string
	CustomerEmail string
	SuccessURL    string
	CancelURL     string

	// IdempotencyKey lets the gateway hand back the same session when a
	// request is repeated. Left empty, no key is sent.
	IdempotencyKey string
}

// Session is what the gateway hands back: its id and the hosted page URL.
type Session struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type sessionPayload struct {
	Amount        int64             `json:"amount"`
	Currency      string            `json:"currency"`
	Description   string            `json:"description"`
	CustomerEmail string            `json:"customer_email,omitempty"`
	SuccessURL    string            `json:"success_url,omitempty"`
	CancelURL     string            `json:"cancel_url,omitempty"`
	Metadata      map[string]string `json:"metadata"`
}

// Gateway is the payment provider adapter.
type Gateway interface {
	CreateCheckoutSession(ctx context.Context, req SessionRequest) (Session, error)
	VerifySignature(payload []byte, header string) error
}

type gatewayImpl struct {
	config *config.Config
	client *http.Client
	otel   otel.Otel
	now    func() time.Time
}

func New(cfg *config.Config, otl otel.Otel) Gateway {
	return &gatewayImpl{
		config: cfg,
		client: &http.Client{Timeout: time.Duration(cfg.External.Gateway.TimeoutSeconds) * time.Second},
		otel:   otl,
		now:    time.Now,
	}
}

// CreateCheckoutSession asks the gateway for a hosted payment page. The booking id
// and session kind travel in the metadata and come back on every webhook event.
func (g *gatewayImpl) CreateCheckoutSession(ctx context.Context, req SessionRequest) (session Session, err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".gateway.CreateCheckoutSession")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		"booking.id":   req.BookingID,
		"payment.kind": req.Kind,
		"amount":       req.Amount.String(),
	})

	body, err := json.Marshal(sessionPayload{
		Amount:        MinorUnits(req.Amount),
		Currency:      strings.ToLower(req.Currency),
		Description:   req.Description,
		CustomerEmail: req.CustomerEmail,
		SuccessURL:    req.SuccessURL,
		CancelURL:     req.CancelURL,
		Metadata: map[string]string{
			MetadataBookingID: req.BookingID,
			MetadataKind:      req.Kind,
		},
	})
	if err != nil {
		return session, fmt.Errorf("failed to encode checkout session request: %w", err)
	}

	endpoint := strings.TrimRight(g.config.External.Gateway.BaseURL, "/") + checkoutSessionsPath

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return session, fmt.Errorf("failed to build checkout session request: %w", err)
	}

	httpReq.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	httpReq.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+g.config.External.Gateway.SecretKey)
	if req.IdempotencyKey != constant.Empty {
		httpReq.Header.Set(headerIdempotencyKey, req.IdempotencyKey)
	}

	resp, err := g.client.Do(httpReq)
	if err != nil {
		log.Error().Err(err).Str("bookingID", req.BookingID).Str("kind", req.Kind).Msg("checkout session request failed")

		return session, fmt.Errorf("checkout session request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))

		log.Error().
			Int("status", resp.StatusCode).
			Str("body", string(snippet)).
			Str("bookingID", req.BookingID).
			Msg("gateway rejected checkout session")

		return session, fmt.Errorf("gateway responded with status %d", resp.StatusCode)
	}

	if err = json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return session, fmt.Errorf("failed to decode checkout session response: %w", err)
	}

	if session.ID == "" || session.URL == "" {
		return Session{}, fmt.Errorf("gateway returned an incomplete checkout session")
	}

	return session, nil
}

// VerifySignature checks the webhook signature header against the shared secret.
func (g *gatewayImpl) VerifySignature(payload []byte, header string) error {
	tolerance := time.Duration(g.config.External.Gateway.WebhookToleranceSeconds) * time.Second

	return VerifySignature(payload, header, g.config.External.Gateway.WebhookSecret, tolerance, g.now())
}

// MinorUnits converts an amount to the integer minor unit the gateway expects.
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}

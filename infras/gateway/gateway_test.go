package gateway_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"tripseat/config"
	"tripseat/infras/gateway"
	"tripseat/infras/otel/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConfig(baseURL string) *config.Config {
	cfg := &config.Config{}
	cfg.External.Gateway.BaseURL = baseURL
	cfg.External.Gateway.SecretKey = "sk_test"
	cfg.External.Gateway.WebhookSecret = "whsec_test"
	cfg.External.Gateway.WebhookToleranceSeconds = 300
	cfg.External.Gateway.TimeoutSeconds = 5

	return cfg
}

func TestCreateCheckoutSession(t *testing.T) {
	var received map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/checkout/sessions", r.URL.Path)
		assert.Equal(t, "Bearer sk_test", r.Header.Get("Authorization"))
		assert.Equal(t, "b-1:deposit:1", r.Header.Get("Idempotency-Key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"cs_123","url":"https://pay.example.com/cs_123"}`))
	}))
	defer server.Close()

	gw := gateway.New(newConfig(server.URL), mocks.NewOtel())

	session, err := gw.CreateCheckoutSession(context.Background(), gateway.SessionRequest{
		BookingID: "b-1",
		Kind:      "deposit",
		Amount:    decimal.RequireFromString("150.50"),
		Currency:  "IDR",

		IdempotencyKey: "b-1:deposit:1",
	})

	require.NoError(t, err)
	assert.Equal(t, "cs_123", session.ID)
	assert.Equal(t, "https://pay.example.com/cs_123", session.URL)
	assert.EqualValues(t, 15050, received["amount"])
	assert.Equal(t, "idr", received["currency"])

	metadata, ok := received["metadata"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "b-1", metadata["booking_id"])
	assert.Equal(t, "deposit", metadata["kind"])
}

func TestCreateCheckoutSession_GatewayFailure(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non 2xx status",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
		},
		{
			name: "incomplete session",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"id":"cs_123"}`))
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`not-json`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			gw := gateway.New(newConfig(server.URL), mocks.NewOtel())

			_, err := gw.CreateCheckoutSession(context.Background(), gateway.SessionRequest{
				BookingID: "b-1",
				Kind:      "deposit",
				Amount:    decimal.NewFromInt(100),
			})

			assert.Error(t, err)
		})
	}
}

func TestVerifySignature(t *testing.T) {
	payload := []byte(`{"id":"evt_1"}`)
	secret := "whsec_test"
	now := time.Unix(1_700_000_000, 0)

	tests := []struct {
		name    string
		header  string
		wantErr error
	}{
		{
			name:   "valid signature",
			header: gateway.SignatureHeader(payload, secret, now),
		},
		{
			name:    "wrong secret",
			header:  gateway.SignatureHeader(payload, "other", now),
			wantErr: gateway.ErrSignatureMismatch,
		},
		{
			name:    "stale timestamp",
			header:  gateway.SignatureHeader(payload, secret, now.Add(-10*time.Minute)),
			wantErr: gateway.ErrSignatureExpired,
		},
		{
			name:    "missing v1",
			header:  "t=1700000000",
			wantErr: gateway.ErrMalformedSignature,
		},
		{
			name:    "garbage",
			header:  "nonsense",
			wantErr: gateway.ErrMalformedSignature,
		},
		{
			name:    "empty header",
			header:  "",
			wantErr: gateway.ErrMalformedSignature,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := gateway.VerifySignature(payload, tt.header, secret, 5*time.Minute, now)

			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestVerifySignature_TamperedPayload(t *testing.T) {
	now := time.Now()
	header := gateway.SignatureHeader([]byte(`{"amount":100}`), "s", now)

	err := gateway.VerifySignature([]byte(`{"amount":1}`), header, "s", time.Minute, now)

	assert.ErrorIs(t, err, gateway.ErrSignatureMismatch)
}

func TestVerifySignature_MissingSecret(t *testing.T) {
	err := gateway.VerifySignature([]byte(`{}`), "t=1,v1=00", "", time.Minute, time.Now())

	assert.ErrorIs(t, err, gateway.ErrMissingSecret)
}

func TestMinorUnits(t *testing.T) {
	assert.Equal(t, int64(15050), gateway.MinorUnits(decimal.RequireFromString("150.50")))
	assert.Equal(t, int64(100), gateway.MinorUnits(decimal.RequireFromString("0.999")))
}

package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"tripseat/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	assert.Equal(t, "test error message", f.Error())
}

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		code    int
		message string
	}{
		{
			name:    "InvalidPageParam",
			failure: failure.InvalidPageParam,
			code:    http.StatusBadRequest,
			message: "invalid page parameter",
		},
		{
			name:    "InvalidLimitParam",
			failure: failure.InvalidLimitParam,
			code:    http.StatusBadRequest,
			message: "invalid limit parameter",
		},
		{
			name:    "ForbiddenError",
			failure: failure.ForbiddenError,
			code:    http.StatusForbidden,
			message: "You don't have the required permissions",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.failure.Code)
			assert.Equal(t, tt.message, tt.failure.Message)
		})
	}
}

func TestBadRequest(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected error
	}{
		{
			name:     "with error",
			input:    errors.New("validation failed"),
			expected: &failure.Failure{Code: http.StatusBadRequest, Message: "validation failed"},
		},
		{
			name:     "with nil error",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, failure.BadRequest(tt.input))
		})
	}
}

func TestInternalError(t *testing.T) {
	assert.Nil(t, failure.InternalError(nil))

	err := failure.InternalError(errors.New("database connection failed"))
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	assert.Equal(t, "database connection failed", err.Error())
}

func TestTypedFailures(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		code   int
		reason string
	}{
		{name: "not found", err: failure.NotFound("booking not found"), code: http.StatusNotFound, reason: failure.ReasonNotFound},
		{name: "conflict", err: failure.Conflict("capacity below reserved"), code: http.StatusConflict, reason: failure.ReasonInvalidState},
		{name: "capacity exceeded", err: failure.CapacityExceeded(2), code: http.StatusBadRequest, reason: failure.ReasonCapacityExceeded},
		{name: "invalid coupon", err: failure.InvalidCoupon("expired"), code: http.StatusBadRequest, reason: failure.ReasonInvalidCoupon},
		{name: "already paid", err: failure.AlreadyPaid("remaining already paid"), code: http.StatusBadRequest, reason: failure.ReasonAlreadyPaid},
		{name: "nothing owed", err: failure.NothingOwed(), code: http.StatusBadRequest, reason: failure.ReasonNothingOwed},
		{name: "invalid pricing", err: failure.InvalidPricing("negative remaining"), code: http.StatusBadRequest, reason: failure.ReasonInvalidPricing},
		{name: "invalid signature", err: failure.InvalidSignature(), code: http.StatusBadRequest, reason: failure.ReasonInvalidSignature},
		{name: "gateway", err: failure.Gateway(errors.New("dial tcp: timeout")), code: http.StatusBadGateway, reason: failure.ReasonGatewayError},
		{name: "unauthorized", err: failure.Unauthorized("token expired"), code: http.StatusUnauthorized},
		{name: "forbidden", err: failure.Forbidden("Access denied"), code: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, failure.GetCode(tt.err))
			assert.Equal(t, tt.reason, failure.GetReason(tt.err))
		})
	}
}

func TestCapacityExceeded_Details(t *testing.T) {
	f, ok := failure.Get(failure.CapacityExceeded(2))
	require.True(t, ok)
	assert.Equal(t, 2, f.Details[failure.DetailAvailable])

	f, ok = failure.Get(failure.CapacityExceeded(-3))
	require.True(t, ok)
	assert.Equal(t, 0, f.Details[failure.DetailAvailable])
}

func TestInvalidCoupon_Details(t *testing.T) {
	f, ok := failure.Get(failure.InvalidCoupon("min_participants_not_met"))
	require.True(t, ok)
	assert.Equal(t, "min_participants_not_met", f.Details[failure.DetailReason])
}

func TestGateway_KeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := failure.Gateway(cause)

	assert.ErrorIs(t, err, cause)
	assert.NotContains(t, err.Error(), "connection refused")
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{
			name:     "failure error",
			input:    &failure.Failure{Code: http.StatusBadRequest, Message: "test"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "wrapped failure error",
			input:    fmt.Errorf("confirm deposit: %w", failure.NotFound("booking not found")),
			expected: http.StatusNotFound,
		},
		{
			name:     "regular error",
			input:    errors.New("regular error"),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "nil error",
			input:    nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, failure.GetCode(tt.input))
		})
	}
}

func TestIs(t *testing.T) {
	assert.True(t, failure.Is(fmt.Errorf("wrap: %w", failure.CapacityExceeded(0)), failure.ReasonCapacityExceeded))
	assert.False(t, failure.Is(nil, failure.ReasonCapacityExceeded))
	assert.False(t, failure.Is(errors.New("plain"), failure.ReasonNotFound))
}

func TestWithDetail(t *testing.T) {
	err := failure.WithDetail(failure.Gateway(errors.New("timeout")), "booking_id", "b-1")

	f, ok := failure.Get(err)
	require.True(t, ok)
	assert.Equal(t, "b-1", f.Details["booking_id"])

	plain := errors.New("plain")
	assert.Same(t, plain, failure.WithDetail(plain, "booking_id", "b-1"))
}

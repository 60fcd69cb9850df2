package failure

import (
	"errors"
	"net/http"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
// Reason is a stable machine-readable identifier; Details carries typed context
// such as the remaining seat count.
type Failure struct {
	Code    int            `json:"code"`
	Message string         `json:"message"`
	Reason  string         `json:"reason,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

const (
	ReasonNotFound         = "not_found"
	ReasonCapacityExceeded = "capacity_exceeded"
	ReasonInvalidCoupon    = "invalid_coupon"
	ReasonAlreadyPaid      = "already_paid"
	ReasonNothingOwed      = "nothing_owed"
	ReasonInvalidPricing   = "invalid_pricing"
	ReasonInvalidSignature = "invalid_signature"
	ReasonGatewayError     = "gateway_error"
	ReasonInvalidState     = "invalid_state"
)

const (
	DetailAvailable = "available"
	DetailReason    = "reason"
)

var InvalidPageParam = &Failure{Code: http.StatusBadRequest, Message: "invalid page parameter"}
var InvalidLimitParam = &Failure{Code: http.StatusBadRequest, Message: "invalid limit parameter"}
var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}

// Error returns the failure message.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(msg string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: msg,
		Reason:  ReasonNotFound,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
		Reason:  ReasonInvalidState,
	}
}

func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Message: msg,
	}
}

// CapacityExceeded reports a trip date without enough free seats.
func CapacityExceeded(available int) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: "not enough seats available",
		Reason:  ReasonCapacityExceeded,
		Details: map[string]any{DetailAvailable: max(available, 0)},
	}
}

// InvalidCoupon reports a coupon that cannot be applied; reason names why.
func InvalidCoupon(reason string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: "coupon cannot be applied",
		Reason:  ReasonInvalidCoupon,
		Details: map[string]any{DetailReason: reason},
	}
}

func AlreadyPaid(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
		Reason:  ReasonAlreadyPaid,
	}
}

func NothingOwed() error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: "no remaining balance is owed",
		Reason:  ReasonNothingOwed,
	}
}

func InvalidPricing(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
		Reason:  ReasonInvalidPricing,
	}
}

func InvalidSignature() error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: "invalid webhook signature",
		Reason:  ReasonInvalidSignature,
	}
}

// Gateway wraps a payment provider failure. The cause is kept for logs only.
func Gateway(err error) error {
	return &gatewayFailure{
		Failure: Failure{
			Code:    http.StatusBadGateway,
			Message: "payment gateway is unavailable, please retry",
			Reason:  ReasonGatewayError,
		},
		cause: err,
	}
}

type gatewayFailure struct {
	Failure
	cause error
}

func (g *gatewayFailure) Unwrap() []error {
	return []error{&g.Failure, g.cause}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetReason returns the failure reason, or an empty string.
func GetReason(err error) string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Reason
	}

	return ""
}

// Get returns the Failure carried by err, if any.
func Get(err error) (*Failure, bool) {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail, true
	}

	return nil, false
}

// Is reports whether err carries a Failure with the given reason.
func Is(err error, reason string) bool {
	return err != nil && GetReason(err) == reason
}

// WithDetail attaches key to the Failure carried by err and returns err.
// Errors without a Failure are returned unchanged.
func WithDetail(err error, key string, value any) error {
	if fail, ok := Get(err); ok {
		if fail.Details == nil {
			fail.Details = map[string]any{}
		}

		fail.Details[key] = value
	}

	return err
}

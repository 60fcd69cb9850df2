package model

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
	"tripseat/shared/failure"
	"tripseat/shared/timezone"

	"github.com/shopspring/decimal"
)

const paymentTokenBytes = 32

var hundred = decimal.NewFromInt(100)

// Quote holds the amounts of one booking. Remaining always equals
// Total minus Deposit and neither is negative.
type Quote struct {
	Gross     decimal.Decimal
	Discount  decimal.Decimal
	Total     decimal.Decimal
	Deposit   decimal.Decimal
	Remaining decimal.Decimal
}

// NewQuote prices participants seats. The coupon discount comes off the total
// while the deposit stays at the full per-person rate.
func NewQuote(participants int, pricePerPerson, depositPerPerson decimal.Decimal, percentOff int) (Quote, error) {
	if participants < 1 {
		return Quote{}, failure.InvalidPricing("participants_count must be at least 1")
	}

	if percentOff < 0 || percentOff > 100 {
		return Quote{}, failure.InvalidPricing("percent_off must be between 0 and 100")
	}

	n := decimal.NewFromInt(int64(participants))

	q := Quote{Gross: n.Mul(pricePerPerson)}
	q.Discount = q.Gross.Mul(decimal.NewFromInt(int64(percentOff))).Div(hundred).Round(2)
	q.Total = q.Gross.Sub(q.Discount)
	q.Deposit = n.Mul(depositPerPerson)
	q.Remaining = q.Total.Sub(q.Deposit)

	if q.Total.IsNegative() || q.Deposit.IsNegative() {
		return Quote{}, failure.InvalidPricing("booking amounts must not be negative")
	}

	if q.Remaining.IsNegative() {
		return Quote{}, failure.InvalidPricing(fmt.Sprintf("discount leaves %s owed after a deposit of %s", q.Total, q.Deposit))
	}

	return q, nil
}

// RemainingDueDate is dueDays before the start of tripDate, never earlier than now.
func RemainingDueDate(tripDate, now time.Time, dueDays int) time.Time {
	due := timezone.StartOfDay(tripDate).AddDate(0, 0, -dueDays)
	if due.Before(now) {
		return now
	}

	return due
}

// NewPaymentToken returns an unguessable capability for the public remaining
// payment page, independent from the booking id.
func NewPaymentToken() (string, error) {
	buf := make([]byte, paymentTokenBytes)

	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate payment token: %w", err)
	}

	return hex.EncodeToString(buf), nil
}

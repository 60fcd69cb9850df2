package model_test

import (
	"testing"
	"time"
	"tripseat/internal/domains/coupon/model"

	"github.com/stretchr/testify/assert"
)

func TestCoupon_Check(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Minute)
	future := now.Add(time.Hour)
	two, four := 2, 4

	tests := []struct {
		name         string
		coupon       model.Coupon
		participants int
		want         string
	}{
		{name: "usable", coupon: model.Coupon{IsActive: true, ExpiresAt: &future, MaxRedemptions: &two, RedemptionCount: 1}, participants: 1, want: ""},
		{name: "inactive", coupon: model.Coupon{IsActive: false}, participants: 1, want: model.ReasonInactive},
		{name: "expired", coupon: model.Coupon{IsActive: true, ExpiresAt: &past}, participants: 1, want: model.ReasonExpired},
		{name: "expires exactly now", coupon: model.Coupon{IsActive: true, ExpiresAt: &now}, participants: 1, want: model.ReasonExpired},
		{name: "exhausted", coupon: model.Coupon{IsActive: true, MaxRedemptions: &two, RedemptionCount: 2}, participants: 1, want: model.ReasonMaxRedemptionsReached},
		{name: "group too small", coupon: model.Coupon{IsActive: true, MinParticipants: &four}, participants: 3, want: model.ReasonMinParticipantsNotMet},
		{name: "group large enough", coupon: model.Coupon{IsActive: true, MinParticipants: &four}, participants: 4, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.coupon.Check(tt.participants, now))
		})
	}
}

package dto

import (
	"time"
	"tripseat/internal/domains/notification/model"

	"github.com/shopspring/decimal"
)

type DispatchRequest struct {
	BookingID        string
	Kind             string
	Email            string
	FullName         string
	PaymentToken     string
	TotalPrice       decimal.Decimal
	RemainingAmount  decimal.Decimal
	RemainingDueDate *time.Time
}

func (d *DispatchRequest) ToDelivery(deliveryID string, at time.Time) model.Delivery {
	return model.Delivery{
		DeliveryID:       deliveryID,
		Kind:             d.Kind,
		BookingID:        d.BookingID,
		Email:            d.Email,
		FullName:         d.FullName,
		PaymentToken:     d.PaymentToken,
		TotalPrice:       d.TotalPrice,
		RemainingAmount:  d.RemainingAmount,
		RemainingDueDate: d.RemainingDueDate,
		RequestedAt:      at,
	}
}

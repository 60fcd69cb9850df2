package dto

import (
	"tripseat/internal/domains/payment/model"
	"tripseat/shared/constant"
	"tripseat/shared/timezone"

	"github.com/shopspring/decimal"
)

type PaymentResponse struct {
	ID               string          `json:"id"`
	Amount           decimal.Decimal `json:"amount"`
	Kind             string          `json:"kind"`
	GatewaySessionID *string         `json:"gateway_session_id"`
	Status           string          `json:"status"`
	CreatedAt        string          `json:"created_at"`
}

func (r *PaymentResponse) FromModel(model model.Payment) {
	r.ID = model.ID
	r.Amount = model.Amount
	r.Kind = model.Kind
	r.GatewaySessionID = model.GatewaySessionID
	r.Status = model.Status
	r.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)
}

func FromModels(models []model.Payment) []PaymentResponse {
	res := make([]PaymentResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

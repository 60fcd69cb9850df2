package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"tripseat/infras/otel"
	"tripseat/internal/domains/payment/model"
	"tripseat/internal/domains/payment/repository"
	"tripseat/shared/constant"
	gDto "tripseat/shared/dto"
	"tripseat/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type Payment interface {
	Record(ctx context.Context, bookingID, kind string, amount decimal.Decimal, sessionID string) (model.Payment, error)
	GetByBooking(ctx context.Context, bookingID string) ([]model.Payment, error)
}

type serviceImpl struct {
	repo repository.Payment
	otel otel.Otel
}

func New(repo repository.Payment, otel otel.Otel) Payment {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

// Record appends one checkout attempt. An empty sessionID means the gateway
// call failed and the row is stored as GATEWAY_ERROR.
func (s *serviceImpl) Record(ctx context.Context, bookingID, kind string, amount decimal.Decimal, sessionID string) (res model.Payment, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.Record")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res = model.Payment{
		ID:        uuid.NewString(),
		BookingID: bookingID,
		Amount:    amount,
		Kind:      kind,
		Status:    model.StatusOpen,
		CreatedAt: timezone.Now(),
	}

	if sessionID == constant.Empty {
		res.Status = model.StatusGatewayError
	} else {
		res.GatewaySessionID = &sessionID
	}

	if err = s.repo.Insert(ctx, res); err != nil {
		log.Error().Err(err).Str("bookingID", bookingID).Str("kind", kind).Msg("failed to record payment")

		return res, fmt.Errorf("failed to record payment: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) GetByBooking(ctx context.Context, bookingID string) (res []model.Payment, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.GetByBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBookingID,
				Value:    bookingID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	params := gDto.QueryParams{SortBy: model.FieldCreatedAt, SortDir: gDto.SortDirAsc}

	res, err = s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Str("bookingID", bookingID).Msg("failed to get payments")

		return res, fmt.Errorf("failed to get payments: %w", err)
	}

	return res, nil
}

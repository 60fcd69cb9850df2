package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"tripseat/config"
	"tripseat/infras/kafka"
	"tripseat/infras/otel"
	"tripseat/internal/domains/notification/model"
	"tripseat/internal/domains/notification/model/dto"
	"tripseat/internal/domains/notification/repository"
	"tripseat/shared/constant"
	"tripseat/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Dispatcher hands booking notifications to the rendering sink and returns the
// delivery id. Callers run it after commit; a failure never undoes a transition.
type Dispatcher interface {
	Dispatch(ctx context.Context, req dto.DispatchRequest) (string, error)
}

type serviceImpl struct {
	repo  repository.Notification
	kafka kafka.Client
	cfg   *config.Config
	otel  otel.Otel
}

func New(repo repository.Notification, kafka kafka.Client, cfg *config.Config, otel otel.Otel) Dispatcher {
	return &serviceImpl{
		repo:  repo,
		kafka: kafka,
		cfg:   cfg,
		otel:  otel,
	}
}

func (s *serviceImpl) Dispatch(ctx context.Context, req dto.DispatchRequest) (deliveryID string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".notification.Dispatch")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	switch req.Kind {
	case model.KindDepositConfirmed, model.KindRemainingRequest, model.KindRemainingConfirmed:
	default:
		return constant.Empty, fmt.Errorf("unknown notification kind %q", req.Kind)
	}

	deliveryID = uuid.NewString()
	now := timezone.Now()

	message := kafka.Message{
		Key:   req.BookingID,
		Value: req.ToDelivery(deliveryID, now),
		Headers: map[string]string{
			model.HeaderKind:       req.Kind,
			model.HeaderDeliveryID: deliveryID,
		},
	}

	if err = s.kafka.SendMessages(ctx, s.cfg.Kafka.Topics.Notification, message); err != nil {
		log.Error().Err(err).Str("bookingID", req.BookingID).Str("kind", req.Kind).Msg("failed to dispatch notification")

		return constant.Empty, fmt.Errorf("failed to dispatch notification: %w", err)
	}

	if err := s.repo.RecordDelivery(ctx, req.BookingID, deliveryID, req.Kind, now); err != nil {
		log.Error().Err(err).Str("bookingID", req.BookingID).Str("deliveryID", deliveryID).Msg("notification sent but delivery not recorded")
	}

	log.Info().Str("bookingID", req.BookingID).Str("kind", req.Kind).Str("deliveryID", deliveryID).Msg("notification dispatched")

	return deliveryID, nil
}

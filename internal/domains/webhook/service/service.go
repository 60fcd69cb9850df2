package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"
	"tripseat/config"
	"tripseat/infras/gateway"
	"tripseat/infras/otel"
	"tripseat/infras/postgres"
	"tripseat/infras/s3"
	bookingService "tripseat/internal/domains/booking/service"
	paymentModel "tripseat/internal/domains/payment/model"
	"tripseat/internal/domains/webhook/model"
	"tripseat/internal/domains/webhook/model/dto"
	"tripseat/internal/domains/webhook/repository"
	"tripseat/shared"
	"tripseat/shared/constant"
	"tripseat/shared/failure"
	"tripseat/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	archiveDirectory   = "webhooks"
	archiveContentType = "application/json"
	unparsedPrefix     = "unparsed-"
)

// Webhook reconciles gateway events with booking state. Every event id is
// applied at most once; redeliveries return the outcome recorded the first
// time.
type Webhook interface {
	Handle(ctx context.Context, payload []byte, signature string) (dto.HandleResponse, error)
}

type serviceImpl struct {
	repo    repository.Webhook
	booking bookingService.Booking
	gateway gateway.Gateway
	s3      s3.S3
	tx      postgres.Transactor
	cfg     *config.Config
	otel    otel.Otel
}

func New(
	repo repository.Webhook,
	booking bookingService.Booking,
	gateway gateway.Gateway,
	s3 s3.S3,
	tx postgres.Transactor,
	cfg *config.Config,
	otel otel.Otel,
) Webhook {
	return &serviceImpl{
		repo:    repo,
		booking: booking,
		gateway: gateway,
		s3:      s3,
		tx:      tx,
		cfg:     cfg,
		otel:    otel,
	}
}

func (s *serviceImpl) Handle(ctx context.Context, payload []byte, signature string) (res dto.HandleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".webhook.Handle")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err := s.gateway.VerifySignature(payload, signature); err != nil {
		log.Warn().Err(err).Msg("webhook signature rejected")

		return res, failure.InvalidSignature()
	}

	event, err := dto.ParseEvent(payload)
	if err != nil {
		// Signed by the gateway, so a retry would carry the same bytes.
		name := unparsedPrefix + uuid.NewString()

		log.Warn().Err(err).Int("bytes", len(payload)).Str("archive", name).Msg("verified webhook payload could not be decoded, acknowledging")

		s.archive(ctx, timezone.Now(), name, payload)

		res.Received = true
		res.Outcome = model.OutcomeIgnored

		return res, nil
	}

	record := event.ToModel(timezone.Now())
	filter := shared.FilterByID(event.ID, model.FieldID, model.TableName)

	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		inserted, err := s.repo.InsertIfAbsent(ctx, record)
		if err != nil {
			return err
		}

		if !inserted {
			stored, err := s.repo.Get(ctx, filter)
			if err != nil {
				return fmt.Errorf("failed to read recorded webhook event: %w", err)
			}

			record.Outcome = stored.Outcome
			res.Duplicate = true

			return nil
		}

		outcome, err := s.apply(ctx, event)
		if err != nil {
			return err
		}

		record.Outcome = outcome

		if err := s.repo.Update(ctx, map[string]any{model.FieldOutcome: outcome}, filter); err != nil {
			return fmt.Errorf("failed to record webhook outcome: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("eventID", event.ID).Str("type", event.Type).Msg("failed to handle webhook event")

		return res, err
	}

	res.Received = true
	res.EventID = event.ID
	res.Outcome = record.Outcome

	if res.Duplicate {
		log.Info().Str("eventID", event.ID).Str("outcome", record.Outcome).Msg("duplicate webhook event")

		return res, nil
	}

	log.Info().
		Str("eventID", event.ID).
		Str("type", event.Type).
		Str("bookingID", record.BookingID).
		Str("kind", record.Kind).
		Str("outcome", record.Outcome).
		Msg("webhook event handled")

	s.archive(ctx, record.ReceivedAt, record.ID, payload)

	return res, nil
}

// apply runs the booking transition an event asks for and names the result.
// Business rejections become outcomes so the event is acknowledged.
func (s *serviceImpl) apply(ctx context.Context, event dto.Event) (string, error) {
	bookingID := event.BookingID()

	var (
		changed bool
		err     error
	)

	switch {
	case event.Succeeded() && event.Kind() == paymentModel.KindDeposit:
		changed, err = s.booking.ConfirmDeposit(ctx, bookingID)
	case event.Succeeded() && event.Kind() == paymentModel.KindRemaining:
		changed, err = s.booking.ConfirmRemaining(ctx, bookingID)
	case event.Type == model.TypeAsyncPaymentFailed && event.Kind() == paymentModel.KindDeposit:
		changed, err = s.booking.MarkDepositFailed(ctx, bookingID)
	default:
		return model.OutcomeIgnored, nil
	}

	switch {
	case err == nil && changed:
		return model.OutcomeProcessed, nil
	case err == nil:
		return model.OutcomeNoop, nil
	case failure.Is(err, failure.ReasonNotFound):
		log.Warn().Str("eventID", event.ID).Str("bookingID", bookingID).Msg("webhook event matches no booking")

		return model.OutcomeUnmatched, nil
	case failure.Is(err, failure.ReasonCapacityExceeded):
		return model.OutcomeCapacityExceeded, nil
	case failure.Is(err, failure.ReasonInvalidState):
		log.Warn().Err(err).Str("eventID", event.ID).Str("bookingID", bookingID).Msg("webhook event rejected by booking state")

		return model.OutcomeRejected, nil
	}

	return constant.Empty, err
}

// archive keeps the raw payload in object storage. Failures are only logged.
func (s *serviceImpl) archive(ctx context.Context, receivedAt time.Time, name string, payload []byte) {
	directory := fmt.Sprintf("%s/%s", archiveDirectory, receivedAt.UTC().Format("2006/01/02"))

	if _, err := s.s3.UploadFileBytes(ctx, s.cfg.External.S3.BucketName, directory, name+".json", archiveContentType, payload); err != nil {
		log.Warn().Err(err).Str("name", name).Msg("failed to archive webhook payload")
	}
}

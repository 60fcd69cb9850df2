package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"
	"tripseat/infras/otel"
	"tripseat/infras/postgres"
	"tripseat/internal/domains/notification/model"
	"tripseat/shared/constant"
	"tripseat/shared/logger"
)

const queryRecordDelivery = `UPDATE bookings
	SET last_notification_id = $2, last_notification_type = $3, last_notification_at = $4
	WHERE id = $1`

type Notification interface {
	RecordDelivery(ctx context.Context, bookingID, deliveryID, kind string, at time.Time) error
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Notification {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

// RecordDelivery stamps the last delivery on the booking row.
func (r *repositoryImpl) RecordDelivery(ctx context.Context, bookingID, deliveryID, kind string, at time.Time) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".notification.RecordDelivery")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryRecordDelivery)

	if _, err := r.db.Writer(ctx).ExecContext(ctx, queryRecordDelivery, bookingID, deliveryID, kind, at); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to record delivery (%s): %w", model.EntityName, err)
	}

	return nil
}

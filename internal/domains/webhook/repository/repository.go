package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"tripseat/infras/otel"
	"tripseat/infras/postgres"
	"tripseat/internal/domains/webhook/model"
	"tripseat/shared/constant"
	gDto "tripseat/shared/dto"
	"tripseat/shared/logger"
	gRepo "tripseat/shared/repository"
)

// queryInsertIfAbsent claims an event id. A concurrent delivery of the same
// event waits on the primary key and then inserts nothing.
const queryInsertIfAbsent = `INSERT INTO webhook_events (id, type, session_id, booking_id, kind, outcome, received_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (id) DO NOTHING`

type Webhook interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.WebhookEvent, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	InsertIfAbsent(ctx context.Context, event model.WebhookEvent) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.WebhookEvent]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Webhook {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.WebhookEvent](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// InsertIfAbsent reports false when the event id was already recorded.
func (r *repositoryImpl) InsertIfAbsent(ctx context.Context, event model.WebhookEvent) (bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".webhook.InsertIfAbsent")
	defer scope.End()

	scope.SetAttributes(map[string]any{
		constant.OtelQueryAttributeKey: queryInsertIfAbsent,
		"webhook.event_id":             event.ID,
	})

	result, err := r.db.Writer(ctx).ExecContext(ctx, queryInsertIfAbsent,
		event.ID, event.Type, event.SessionID, event.BookingID, event.Kind, event.Outcome, event.ReceivedAt)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to insert (%s): %w", model.EntityName, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows (%s): %w", model.EntityName, err)
	}

	return affected == 1, nil
}

package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"tripseat/infras/otel"
	"tripseat/infras/postgres"
	"tripseat/internal/domains/tripdate/model"
	"tripseat/shared/constant"
	gDto "tripseat/shared/dto"
	"tripseat/shared/logger"
	gRepo "tripseat/shared/repository"
)

const (
	// reserve is the only statement that grows reserved_spots. The capacity
	// check and the increment happen in one row update, so concurrent callers
	// are serialized by the row lock and can never overshoot capacity.
	queryReserve = `UPDATE trip_dates
		SET reserved_spots = reserved_spots + $2, modified_at = NOW()
		WHERE id = $1 AND reserved_spots + $2 <= capacity
		RETURNING id, capacity, reserved_spots, status`

	queryRelease = `UPDATE trip_dates
		SET reserved_spots = GREATEST(reserved_spots - $2, 0), modified_at = NOW()
		WHERE id = $1
		RETURNING id, capacity, reserved_spots, status`

	queryUpdateCapacity = `UPDATE trip_dates
		SET capacity = $2, modified_at = NOW(), modified_by = $3
		WHERE id = $1 AND $2 >= reserved_spots`
)

type TripDate interface {
	Insert(ctx context.Context, model model.TripDate) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.TripDate, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.TripDate, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Reserve(ctx context.Context, id string, spots int) (model.TripDate, bool, error)
	Release(ctx context.Context, id string, spots int) (model.TripDate, bool, error)
	UpdateCapacity(ctx context.Context, id string, capacity int, user string) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.TripDate]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) TripDate {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.TripDate](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Reserve adds spots to reserved_spots if they still fit. ok is false when the
// row is missing or short of seats; the caller tells those apart.
func (r *repositoryImpl) Reserve(ctx context.Context, id string, spots int) (model.TripDate, bool, error) {
	return r.adjust(ctx, "Reserve", queryReserve, id, spots)
}

// Release gives spots back, clamped at zero.
func (r *repositoryImpl) Release(ctx context.Context, id string, spots int) (model.TripDate, bool, error) {
	return r.adjust(ctx, "Release", queryRelease, id, spots)
}

func (r *repositoryImpl) adjust(ctx context.Context, op, query, id string, spots int) (model.TripDate, bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".trip_date."+op)
	defer scope.End()

	scope.SetAttributes(map[string]any{
		constant.OtelQueryAttributeKey: query,
		"trip_date.id":                 id,
		"spots":                        spots,
	})

	var tripDate model.TripDate

	err := r.db.Writer(ctx).GetContext(ctx, &tripDate, query, id, spots)
	if errors.Is(err, sql.ErrNoRows) {
		return tripDate, false, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return tripDate, false, fmt.Errorf("failed to %s seats (%s): %w", op, model.EntityName, err)
	}

	return tripDate, true, nil
}

// UpdateCapacity sets capacity unless it would drop below reserved_spots.
func (r *repositoryImpl) UpdateCapacity(ctx context.Context, id string, capacity int, user string) (bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".trip_date.UpdateCapacity")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryUpdateCapacity)

	result, err := r.db.Writer(ctx).ExecContext(ctx, queryUpdateCapacity, id, capacity, user)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to update capacity (%s): %w", model.EntityName, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows (%s): %w", model.EntityName, err)
	}

	return affected == 1, nil
}

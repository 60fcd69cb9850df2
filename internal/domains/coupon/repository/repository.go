package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"
	"tripseat/infras/otel"
	"tripseat/infras/postgres"
	"tripseat/internal/domains/coupon/model"
	"tripseat/shared/constant"
	gDto "tripseat/shared/dto"
	"tripseat/shared/logger"
	gRepo "tripseat/shared/repository"
)

// queryApplyAndIncrement redeems the coupon only while every limit still
// holds, so two bookings racing for the last redemption cannot both win.
const queryApplyAndIncrement = `UPDATE coupons
	SET redemption_count = redemption_count + 1, modified_at = NOW()
	WHERE id = $1
		AND is_active
		AND (max_redemptions IS NULL OR redemption_count < max_redemptions)
		AND (expires_at IS NULL OR expires_at > $2)`

type Coupon interface {
	Insert(ctx context.Context, model model.Coupon) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Coupon, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Coupon, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	GetByCode(ctx context.Context, code string) (model.Coupon, error)
	ApplyAndIncrement(ctx context.Context, id string, now time.Time) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Coupon]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Coupon {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Coupon](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetByCode looks a coupon up by its stored, upper-cased code. A miss returns
// the zero value.
func (r *repositoryImpl) GetByCode(ctx context.Context, code string) (model.Coupon, error) {
	return r.Get(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldCode,
				Value:    code,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	})
}

func (r *repositoryImpl) ApplyAndIncrement(ctx context.Context, id string, now time.Time) (bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".coupon.ApplyAndIncrement")
	defer scope.End()

	scope.SetAttributes(map[string]any{
		constant.OtelQueryAttributeKey: queryApplyAndIncrement,
		"coupon.id":                    id,
	})

	result, err := r.db.Writer(ctx).ExecContext(ctx, queryApplyAndIncrement, id, now)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to redeem (%s): %w", model.EntityName, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows (%s): %w", model.EntityName, err)
	}

	return affected == 1, nil
}

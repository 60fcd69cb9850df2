package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"tripseat/infras/otel"
	"tripseat/infras/postgres"
	"tripseat/internal/domains/payment/model"
	gDto "tripseat/shared/dto"
	gRepo "tripseat/shared/repository"
)

// Payment exposes no update or delete; the audit trail only grows.
type Payment interface {
	Insert(ctx context.Context, model model.Payment) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Payment, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Payment]
}

func New(db *postgres.Connection, otel otel.Otel) Payment {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Payment](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

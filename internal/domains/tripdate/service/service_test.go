package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tripseat/config"
	"tripseat/infras/otel/mocks"
	postgresMocks "tripseat/infras/postgres/mocks"
	tripDateMocks "tripseat/internal/domains/tripdate/mocks"
	"tripseat/internal/domains/tripdate/model"
	"tripseat/internal/domains/tripdate/model/dto"
	"tripseat/internal/domains/tripdate/service"
	cacheMocks "tripseat/shared/cache/mocks"
	"tripseat/shared/constant"
	gDto "tripseat/shared/dto"
	"tripseat/shared/failure"
)

const tripDateID = "3f1c8d2e-6a57-4b1e-9d0a-2c4b7e9f1a10"

func newService(t *testing.T) (service.TripDate, *tripDateMocks.MockTripDate, *cacheMocks.MockRedisCache) {
	t.Helper()

	svc, mockRepo, mockCache, _ := newServiceWithTx(t)

	return svc, mockRepo, mockCache
}

func newServiceWithTx(t *testing.T) (service.TripDate, *tripDateMocks.MockTripDate, *cacheMocks.MockRedisCache, *postgresMocks.Transactor) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := tripDateMocks.NewMockTripDate(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	tx := postgresMocks.NewTransactor()

	return service.New(mockRepo, tx, cfg, mockCache, mocks.NewOtel()), mockRepo, mockCache, tx
}

func TestTripDateService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateTripDateRequest
		setupMock func(repo *tripDateMocks.MockTripDate)
		wantErr   bool
		reason    string
	}{
		{
			name: "successful creation",
			req: dto.CreateTripDateRequest{
				TripID:           "bali-surf",
				Date:             "2026-12-01",
				Capacity:         12,
				PricePerPerson:   decimal.NewFromInt(100),
				DepositPerPerson: decimal.NewFromInt(30),
			},
			setupMock: func(repo *tripDateMocks.MockTripDate) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "deposit above price",
			req: dto.CreateTripDateRequest{
				TripID:           "bali-surf",
				Date:             "2026-12-01",
				Capacity:         12,
				PricePerPerson:   decimal.NewFromInt(100),
				DepositPerPerson: decimal.NewFromInt(150),
			},
			setupMock: func(_ *tripDateMocks.MockTripDate) {},
			wantErr:   true,
			reason:    failure.ReasonInvalidPricing,
		},
		{
			name: "repository error",
			req: dto.CreateTripDateRequest{
				TripID:           "bali-surf",
				Date:             "2026-12-01",
				Capacity:         12,
				PricePerPerson:   decimal.NewFromInt(100),
				DepositPerPerson: decimal.NewFromInt(30),
			},
			setupMock: func(repo *tripDateMocks.MockTripDate) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, _ := newService(t)
			tt.setupMock(mockRepo)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
			res, err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.reason, failure.GetReason(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, model.StatusOpen, res.Status)
			assert.Equal(t, 12, res.Available)
			assert.Equal(t, "2026-12-01", res.Date)
		})
	}
}

func TestTripDateService_Reserve(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		spots     int
		setupMock func(repo *tripDateMocks.MockTripDate)
		reason    string
		available int
	}{
		{
			name:  "seats fit",
			id:    tripDateID,
			spots: 3,
			setupMock: func(repo *tripDateMocks.MockTripDate) {
				repo.EXPECT().Reserve(gomock.Any(), tripDateID, 3).
					Return(model.TripDate{ID: tripDateID, Capacity: 10, ReservedSpots: 3}, true, nil)
			},
		},
		{
			name:  "not enough seats reports what is left",
			id:    tripDateID,
			spots: 3,
			setupMock: func(repo *tripDateMocks.MockTripDate) {
				repo.EXPECT().Reserve(gomock.Any(), tripDateID, 3).Return(model.TripDate{}, false, nil)
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).
					Return(model.TripDate{ID: tripDateID, Capacity: 10, ReservedSpots: 8}, nil)
			},
			reason:    failure.ReasonCapacityExceeded,
			available: 2,
		},
		{
			name:  "missing trip date",
			id:    tripDateID,
			spots: 1,
			setupMock: func(repo *tripDateMocks.MockTripDate) {
				repo.EXPECT().Reserve(gomock.Any(), tripDateID, 1).Return(model.TripDate{}, false, nil)
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.TripDate{}, nil)
			},
			reason: failure.ReasonNotFound,
		},
		{
			name:      "malformed id never reaches the database",
			id:        "not-a-uuid",
			spots:     1,
			setupMock: func(_ *tripDateMocks.MockTripDate) {},
			reason:    failure.ReasonNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, _ := newService(t)
			tt.setupMock(mockRepo)

			res, err := svc.Reserve(context.Background(), tt.id, tt.spots)

			if tt.reason == constant.Empty {
				require.NoError(t, err)
				assert.Equal(t, 3, res.ReservedSpots)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.reason, failure.GetReason(err))

			if tt.reason == failure.ReasonCapacityExceeded {
				f, ok := failure.Get(err)
				require.True(t, ok)
				assert.Equal(t, tt.available, f.Details[failure.DetailAvailable])
			}
		})
	}
}

func TestTripDateService_Release(t *testing.T) {
	svc, mockRepo, _ := newService(t)

	mockRepo.EXPECT().Release(gomock.Any(), tripDateID, 2).
		Return(model.TripDate{ID: tripDateID, Capacity: 10, ReservedSpots: 0}, true, nil)

	res, err := svc.Release(context.Background(), tripDateID, 2)

	require.NoError(t, err)
	assert.Equal(t, 0, res.ReservedSpots)

	_, err = svc.Release(context.Background(), tripDateID, 0)
	assert.Error(t, err)
}

func TestTripDateService_UpdateCapacity(t *testing.T) {
	current := model.TripDate{
		ID:               tripDateID,
		Capacity:         10,
		ReservedSpots:    6,
		PricePerPerson:   decimal.NewFromInt(100),
		DepositPerPerson: decimal.NewFromInt(30),
		Status:           model.StatusOpen,
	}

	t.Run("below reserved is a conflict", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		capacity := 5

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil)
		mockRepo.EXPECT().UpdateCapacity(gomock.Any(), tripDateID, 5, gomock.Any()).Return(false, nil)

		err := svc.Update(context.Background(), dto.UpdateTripDateRequest{Capacity: &capacity}, tripDateID)

		assert.True(t, failure.Is(err, failure.ReasonInvalidState))
	})

	t.Run("accepted capacity updates the rest", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		capacity := 6
		status := model.StatusClosed

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil)
		mockRepo.EXPECT().UpdateCapacity(gomock.Any(), tripDateID, 6, gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, &status, fields[model.FieldStatus])
				assert.NotContains(t, fields, model.FieldCapacity)

				return nil
			})

		err := svc.Update(context.Background(), dto.UpdateTripDateRequest{Capacity: &capacity, Status: &status}, tripDateID)

		assert.NoError(t, err)
	})

	t.Run("field update failure fails the whole edit", func(t *testing.T) {
		svc, mockRepo, _, tx := newServiceWithTx(t)

		capacity := 8
		status := model.StatusClosed

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil)
		mockRepo.EXPECT().UpdateCapacity(gomock.Any(), tripDateID, 8, gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("violates check constraint \"trip_dates_deposit_within_price\""))

		err := svc.Update(context.Background(), dto.UpdateTripDateRequest{Capacity: &capacity, Status: &status}, tripDateID)

		require.Error(t, err)
		assert.Equal(t, int64(1), tx.Calls(), "capacity and fields share one transaction")
	})
}

func TestTripDateService_Availability(t *testing.T) {
	svc, mockRepo, mockCache := newService(t)

	mockCache.EXPECT().Get(gomock.Any(), "trip_date:availability:"+tripDateID, gomock.Any()).
		Return(errors.New("cache miss"))
	mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
		Return(model.TripDate{ID: tripDateID, Capacity: 10, ReservedSpots: 12, Status: model.StatusOpen}, nil)

	res, err := svc.Availability(context.Background(), tripDateID)

	time.Sleep(10 * time.Millisecond)

	require.NoError(t, err)
	assert.Equal(t, 0, res.Available)
	assert.Equal(t, 12, res.ReservedSpots)
}

func TestTripDateService_GetAll(t *testing.T) {
	svc, mockRepo, mockCache := newService(t)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
	mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(11, nil)
	mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.TripDate{{ID: tripDateID, Capacity: 4}}, nil)

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	time.Sleep(10 * time.Millisecond)

	require.NoError(t, err)
	assert.Equal(t, 11, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
	assert.Len(t, res.TripDates, 1)
}

package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"tripseat/config"
	"tripseat/infras/otel"
	"tripseat/infras/postgres"
	"tripseat/internal/domains/tripdate/model"
	"tripseat/internal/domains/tripdate/model/dto"
	"tripseat/internal/domains/tripdate/repository"
	"tripseat/shared"
	"tripseat/shared/cache"
	"tripseat/shared/constant"
	gDto "tripseat/shared/dto"
	"tripseat/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetTripDate      = "trip_date:get"
	cacheGetAllTripDate   = "trip_date:gets"
	cacheCountTripDate    = "trip_date:count"
	cacheAvailabilityTrip = "trip_date:availability"
)

// TripDate is the capacity ledger. Reserve and Release are the only ways
// reserved_spots changes.
type TripDate interface {
	Create(ctx context.Context, req dto.CreateTripDateRequest) (dto.TripDateResponse, error)
	Update(ctx context.Context, req dto.UpdateTripDateRequest, id string) error
	Get(ctx context.Context, id string) (dto.TripDateResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetTripDatesResponse, error)
	Availability(ctx context.Context, id string) (dto.AvailabilityResponse, error)
	Lookup(ctx context.Context, id string) (model.TripDate, error)
	Reserve(ctx context.Context, id string, spots int) (model.TripDate, error)
	Release(ctx context.Context, id string, spots int) (model.TripDate, error)
}

type serviceImpl struct {
	repo  repository.TripDate
	tx    postgres.Transactor
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.TripDate, tx postgres.Transactor, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) TripDate {
	return &serviceImpl{
		repo:  repo,
		tx:    tx,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTripDateRequest) (res dto.TripDateResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".tripdate.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	tripDate, err := req.ToModel(user)
	if err != nil {
		return res, err
	}

	if err = s.repo.Insert(ctx, tripDate); err != nil {
		log.Error().Err(err).Msg("failed to create trip date")

		return res, fmt.Errorf("failed to create trip date: %w", err)
	}

	s.invalidateLists(ctx)

	res.FromModel(tripDate)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateTripDateRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".tripdate.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	current, err := s.Lookup(ctx, id)
	if err != nil {
		return err
	}

	fields, err := req.ToFields(current, user)
	if err != nil {
		return err
	}

	// Capacity and the other fields land together or not at all.
	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		if req.Capacity != nil {
			updated, err := s.repo.UpdateCapacity(ctx, id, *req.Capacity, user)
			if err != nil {
				log.Error().Err(err).Str("tripDateID", id).Msg("failed to update trip date capacity")

				return fmt.Errorf("failed to update trip date capacity: %w", err)
			}

			if !updated {
				return failure.Conflict(fmt.Sprintf("capacity cannot be lower than the %d spots already reserved", current.ReservedSpots))
			}
		}

		if err := s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			log.Error().Err(err).Str("tripDateID", id).Msg("failed to update trip date")

			return fmt.Errorf("failed to update trip date: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.TripDateResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".tripdate.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetTripDate, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for trip date")

		return res, nil
	}

	tripDate, err := s.Lookup(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(tripDate)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save trip date to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetTripDatesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".tripdate.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllTripDate, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for trip dates")

		return res, nil
	}

	total, err := s.count(ctx, req, filter)
	if err != nil {
		return res, err
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get trip dates")

		return res, fmt.Errorf("failed to get trip dates: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save trip dates to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountTripDate, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count trip dates")

		return res, fmt.Errorf("failed to count trip dates: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save trip date count to cache")
		}
	}()

	return res, nil
}

// Availability is the public, cached seat view. It is advisory only; create
// booking re-reads the row and confirmation is decided by Reserve.
func (s *serviceImpl) Availability(ctx context.Context, id string) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".tripdate.Availability")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheAvailabilityTrip, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	tripDate, err := s.Lookup(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(tripDate)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save trip date availability to cache")
		}
	}()

	return res, nil
}

// Lookup reads the trip date row, bypassing the cache.
func (s *serviceImpl) Lookup(ctx context.Context, id string) (res model.TripDate, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".tripdate.Lookup")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = shared.ValidateID(id, model.EntityName); err != nil {
		return res, err
	}

	res, err = s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("tripDateID", id).Msg("failed to get trip date")

		return res, fmt.Errorf("failed to get trip date: %w", err)
	}

	if res.ID == constant.Empty {
		return res, failure.NotFound("trip date not found") // nolint:wrapcheck
	}

	return res, nil
}

// Reserve commits spots on the trip date in one conditional update. A miss is
// resolved into NotFound or CapacityExceeded with the seats left.
func (s *serviceImpl) Reserve(ctx context.Context, id string, spots int) (res model.TripDate, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".tripdate.Reserve")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if spots <= 0 {
		return res, failure.BadRequestFromString("spots must be greater than 0")
	}

	if err = shared.ValidateID(id, model.EntityName); err != nil {
		return res, err
	}

	res, ok, err := s.repo.Reserve(ctx, id, spots)
	if err != nil {
		log.Error().Err(err).Str("tripDateID", id).Int("spots", spots).Msg("failed to reserve seats")

		return res, fmt.Errorf("failed to reserve seats: %w", err)
	}

	if !ok {
		current, err := s.Lookup(ctx, id)
		if err != nil {
			return res, err
		}

		log.Warn().
			Str("tripDateID", id).
			Int("spots", spots).
			Int("available", current.Available()).
			Msg("reservation rejected, not enough seats")

		return res, failure.CapacityExceeded(current.Available())
	}

	log.Info().Str("tripDateID", id).Int("spots", spots).Int("reserved", res.ReservedSpots).Msg("seats reserved")

	s.invalidateAfterCommit(ctx, id)

	return res, nil
}

// Release returns spots to the trip date, never going below zero.
func (s *serviceImpl) Release(ctx context.Context, id string, spots int) (res model.TripDate, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".tripdate.Release")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if spots <= 0 {
		return res, failure.BadRequestFromString("spots must be greater than 0")
	}

	if err = shared.ValidateID(id, model.EntityName); err != nil {
		return res, err
	}

	res, ok, err := s.repo.Release(ctx, id, spots)
	if err != nil {
		log.Error().Err(err).Str("tripDateID", id).Int("spots", spots).Msg("failed to release seats")

		return res, fmt.Errorf("failed to release seats: %w", err)
	}

	if !ok {
		return res, failure.NotFound("trip date not found") // nolint:wrapcheck
	}

	log.Info().Str("tripDateID", id).Int("spots", spots).Int("reserved", res.ReservedSpots).Msg("seats released")

	s.invalidateAfterCommit(ctx, id)

	return res, nil
}

func (s *serviceImpl) invalidateAfterCommit(ctx context.Context, id string) {
	postgres.AfterCommit(ctx, func(c context.Context) {
		s.invalidate(c, id)
	})
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	for _, key := range []string{shared.BuildCacheKey(cacheGetTripDate, id), shared.BuildCacheKey(cacheAvailabilityTrip, id)} {
		if err := s.cache.Delete(ctx, key); err != nil {
			log.Error().Err(err).Str("key", key).Msg("failed to delete trip date cache")
		}
	}

	s.invalidateLists(ctx)
}

func (s *serviceImpl) invalidateLists(ctx context.Context) {
	shared.InvalidateCaches(ctx, s.cache, cacheGetAllTripDate)
	shared.InvalidateCaches(ctx, s.cache, cacheCountTripDate)
}

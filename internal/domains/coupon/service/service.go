package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"tripseat/infras/otel"
	"tripseat/internal/domains/coupon/model"
	"tripseat/internal/domains/coupon/model/dto"
	"tripseat/internal/domains/coupon/repository"
	"tripseat/shared"
	"tripseat/shared/constant"
	gDto "tripseat/shared/dto"
	"tripseat/shared/failure"
	"tripseat/shared/timezone"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

type Coupon interface {
	Create(ctx context.Context, req dto.CreateCouponRequest) (dto.CouponResponse, error)
	Update(ctx context.Context, req dto.UpdateCouponRequest, id string) error
	Get(ctx context.Context, id string) (dto.CouponResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetCouponsResponse, error)
	Preview(ctx context.Context, req dto.ValidateCouponRequest) (dto.PreviewResponse, error)
	Validate(ctx context.Context, code string, participants int) (model.Coupon, error)
	ApplyAndIncrement(ctx context.Context, coupon model.Coupon, participants int) error
}

type serviceImpl struct {
	repo repository.Coupon
	otel otel.Otel
}

func New(repo repository.Coupon, otel otel.Otel) Coupon {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCouponRequest) (res dto.CouponResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".coupon.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	coupon, err := req.ToModel(user)
	if err != nil {
		return res, err
	}

	if err = s.repo.Insert(ctx, coupon); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			return res, failure.Conflict(fmt.Sprintf("coupon code %s already exists", coupon.Code))
		}

		log.Error().Err(err).Str("code", coupon.Code).Msg("failed to create coupon")

		return res, fmt.Errorf("failed to create coupon: %w", err)
	}

	res.FromModel(coupon)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateCouponRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".coupon.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	current, err := s.lookup(ctx, id)
	if err != nil {
		return err
	}

	fields, err := req.ToFields(current, user)
	if err != nil {
		return err
	}

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("couponID", id).Msg("failed to update coupon")

		return fmt.Errorf("failed to update coupon: %w", err)
	}

	return nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.CouponResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".coupon.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	coupon, err := s.lookup(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(coupon)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetCouponsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".coupon.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count coupons")

		return res, fmt.Errorf("failed to count coupons: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get coupons")

		return res, fmt.Errorf("failed to get coupons: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Preview(ctx context.Context, req dto.ValidateCouponRequest) (res dto.PreviewResponse, err error) {
	coupon, err := s.Validate(ctx, req.Code, req.ParticipantsCount)
	if err != nil {
		return res, err
	}

	res.FromModel(coupon, req.ParticipantsCount)

	return res, nil
}

// Validate resolves code for a booking of participants. Every refusal is an
// InvalidCoupon failure carrying the reason.
func (s *serviceImpl) Validate(ctx context.Context, code string, participants int) (res model.Coupon, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".coupon.Validate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	code = dto.NormalizeCode(code)
	if code == constant.Empty {
		return res, failure.InvalidCoupon(model.ReasonNotFound)
	}

	res, err = s.repo.GetByCode(ctx, code)
	if err != nil {
		log.Error().Err(err).Str("code", code).Msg("failed to get coupon")

		return res, fmt.Errorf("failed to get coupon: %w", err)
	}

	if res.ID == constant.Empty {
		return res, failure.InvalidCoupon(model.ReasonNotFound)
	}

	if reason := res.Check(participants, timezone.Now()); reason != constant.Empty {
		return res, failure.InvalidCoupon(reason)
	}

	return res, nil
}

// ApplyAndIncrement redeems coupon once. It joins the caller's transaction so
// a failed booking insert gives the redemption back.
func (s *serviceImpl) ApplyAndIncrement(ctx context.Context, coupon model.Coupon, participants int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".coupon.ApplyAndIncrement")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	now := timezone.Now()

	ok, err := s.repo.ApplyAndIncrement(ctx, coupon.ID, now)
	if err != nil {
		log.Error().Err(err).Str("couponID", coupon.ID).Msg("failed to redeem coupon")

		return fmt.Errorf("failed to redeem coupon: %w", err)
	}

	if ok {
		return nil
	}

	reason := model.ReasonMaxRedemptionsReached

	current, err := s.repo.Get(ctx, shared.FilterByID(coupon.ID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("couponID", coupon.ID).Msg("failed to re-read coupon after a missed redemption")
	} else if current.ID == constant.Empty {
		reason = model.ReasonNotFound
	} else if found := current.Check(participants, now); found != constant.Empty {
		reason = found
	}

	log.Warn().Str("couponID", coupon.ID).Str("reason", reason).Msg("coupon redemption rejected")

	return failure.InvalidCoupon(reason)
}

func (s *serviceImpl) lookup(ctx context.Context, id string) (model.Coupon, error) {
	if err := shared.ValidateID(id, model.EntityName); err != nil {
		return model.Coupon{}, err
	}

	coupon, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("couponID", id).Msg("failed to get coupon")

		return coupon, fmt.Errorf("failed to get coupon: %w", err)
	}

	if coupon.ID == constant.Empty {
		return coupon, failure.NotFound("coupon not found") // nolint:wrapcheck
	}

	return coupon, nil
}

package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"
	"time"
	"tripseat/config"
	"tripseat/infras/gateway"
	"tripseat/infras/otel"
	"tripseat/infras/postgres"
	"tripseat/internal/domains/booking/model"
	"tripseat/internal/domains/booking/model/dto"
	"tripseat/internal/domains/booking/repository"
	couponModel "tripseat/internal/domains/coupon/model"
	couponService "tripseat/internal/domains/coupon/service"
	notificationModel "tripseat/internal/domains/notification/model"
	notificationDto "tripseat/internal/domains/notification/model/dto"
	notificationService "tripseat/internal/domains/notification/service"
	paymentModel "tripseat/internal/domains/payment/model"
	paymentDto "tripseat/internal/domains/payment/model/dto"
	paymentService "tripseat/internal/domains/payment/service"
	tripDateService "tripseat/internal/domains/tripdate/service"
	"tripseat/shared"
	"tripseat/shared/constant"
	gDto "tripseat/shared/dto"
	"tripseat/shared/failure"
	"tripseat/shared/timezone"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	detailBookingID    = "booking_id"
	detailPaymentToken = "payment_token"

	urlTokenPlaceholder = "{token}"
)

// Booking drives a booking through CREATED, DEPOSIT_PAID and FULLY_PAID, or
// into CANCELLED. Confirmations report changed=false when they were no-ops.
type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	ConfirmDeposit(ctx context.Context, id string) (bool, error)
	ConfirmRemaining(ctx context.Context, id string) (bool, error)
	MarkDepositFailed(ctx context.Context, id string) (bool, error)
	InitiateDepositByToken(ctx context.Context, token string) (dto.InitiateDepositResponse, error)
	InitiateRemaining(ctx context.Context, id string) (dto.InitiateRemainingResponse, error)
	InitiateRemainingByToken(ctx context.Context, token string) (dto.InitiateRemainingResponse, error)
	GetRemaining(ctx context.Context, token string) (dto.RemainingView, error)
	RequestRemaining(ctx context.Context, id string) (dto.RequestRemainingResponse, error)
	Cancel(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo       repository.Booking
	tripDate   tripDateService.TripDate
	coupon     couponService.Coupon
	payment    paymentService.Payment
	dispatcher notificationService.Dispatcher
	gateway    gateway.Gateway
	tx         postgres.Transactor
	cfg        *config.Config
	otel       otel.Otel
}

func New(
	repo repository.Booking,
	tripDate tripDateService.TripDate,
	coupon couponService.Coupon,
	payment paymentService.Payment,
	dispatcher notificationService.Dispatcher,
	gateway gateway.Gateway,
	tx postgres.Transactor,
	cfg *config.Config,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:       repo,
		tripDate:   tripDate,
		coupon:     coupon,
		payment:    payment,
		dispatcher: dispatcher,
		gateway:    gateway,
		tx:         tx,
		cfg:        cfg,
		otel:       otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.CreateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	tripDate, err := s.tripDate.Lookup(ctx, req.TripDateID)
	if err != nil {
		return res, err
	}

	if !tripDate.IsOpen() {
		return res, failure.BadRequestFromString("trip date is not open for booking")
	}

	// Advisory only. Seats are committed when the deposit is confirmed.
	if available := tripDate.Available(); available < req.ParticipantsCount {
		return res, failure.CapacityExceeded(available)
	}

	var (
		coupon     *couponModel.Coupon
		couponID   *string
		percentOff int
	)

	if req.CouponCode != constant.Empty {
		validated, err := s.coupon.Validate(ctx, req.CouponCode, req.ParticipantsCount)
		if err != nil {
			return res, err
		}

		coupon, couponID, percentOff = &validated, &validated.ID, validated.PercentOff
	}

	quote, err := model.NewQuote(req.ParticipantsCount, tripDate.PricePerPerson, tripDate.DepositPerPerson, percentOff)
	if err != nil {
		return res, err
	}

	if !quote.Deposit.IsPositive() {
		return res, failure.InvalidPricing("trip date has no deposit to collect")
	}

	token, err := model.NewPaymentToken()
	if err != nil {
		log.Error().Err(err).Msg("failed to generate payment token")

		return res, err
	}

	now := timezone.Now()
	dueDate := model.RemainingDueDate(tripDate.Date, now, s.cfg.App.Booking.RemainingDueDays)
	booking := req.ToModel(quote, couponID, token, dueDate, actor(ctx, constant.ContextGuest), now)

	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		if coupon != nil {
			if err := s.coupon.ApplyAndIncrement(ctx, *coupon, req.ParticipantsCount); err != nil {
				return err
			}
		}

		if err := s.repo.Insert(ctx, booking); err != nil {
			log.Error().Err(err).Str("tripDateID", req.TripDateID).Msg("failed to create booking")

			return fmt.Errorf("failed to create booking: %w", err)
		}

		return nil
	})
	if err != nil {
		return res, err
	}

	log.Info().
		Str("bookingID", booking.ID).
		Str("tripDateID", booking.TripDateID).
		Int("participants", booking.ParticipantsCount).
		Str("total", booking.TotalPrice.String()).
		Msg("booking created")

	session, err := s.openSession(ctx, booking, paymentModel.KindDeposit, booking.DepositAmount, model.FieldDepositSessionID)
	if err != nil {
		return res, err
	}

	res.BookingID = booking.ID
	res.PaymentURL = session.URL

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.lookup(ctx, id)
	if err != nil {
		return res, err
	}

	payments, err := s.payment.GetByBooking(ctx, booking.ID)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)
	res.Payments = paymentDto.FromModels(payments)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

// ConfirmDeposit commits the booking's seats and marks the deposit paid. It is
// a no-op for bookings already past CREATED, and for cancelled ones.
func (s *serviceImpl) ConfirmDeposit(ctx context.Context, id string) (changed bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.ConfirmDeposit")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		booking, err := s.lockBooking(ctx, id)
		if err != nil {
			return err
		}

		if booking.Status == model.StatusCancelled {
			log.Warn().Str("bookingID", id).Msg("deposit confirmed for a cancelled booking, ignoring")

			return nil
		}

		if booking.DepositConfirmed() {
			return nil
		}

		if _, err := s.tripDate.Reserve(ctx, booking.TripDateID, booking.ParticipantsCount); err != nil {
			if failure.Is(err, failure.ReasonCapacityExceeded) {
				log.Error().
					Err(err).
					Str("bookingID", id).
					Str("tripDateID", booking.TripDateID).
					Int("participants", booking.ParticipantsCount).
					Msg("deposit paid but the trip date is full, manual refund required")
			}

			return err
		}

		now := timezone.Now()

		booking.DepositStatus = model.DepositPaid
		booking.DepositPaidAt = &now
		booking.Status = model.StatusDepositPaid

		fields := map[string]any{
			model.FieldDepositStatus: model.DepositPaid,
			model.FieldDepositPaidAt: now,
			model.FieldStatus:        model.StatusDepositPaid,
		}

		if !booking.RemainingAmount.IsPositive() {
			booking.RemainingStatus = model.RemainingPaid
			booking.RemainingPaidAt = &now
			booking.Status = model.StatusFullyPaid

			fields[model.FieldStatus] = model.StatusFullyPaid
			fields[model.FieldRemainingStatus] = model.RemainingPaid
			fields[model.FieldRemainingPaidAt] = now
		}

		if err := s.update(ctx, id, fields, now); err != nil {
			return err
		}

		changed = true

		postgres.AfterCommit(ctx, func(c context.Context) {
			s.notify(c, booking, notificationModel.KindDepositConfirmed)
		})

		return nil
	})
	if err != nil {
		return false, err
	}

	if changed {
		log.Info().Str("bookingID", id).Msg("deposit confirmed")
	}

	return changed, nil
}

// ConfirmRemaining settles the remaining balance of a DEPOSIT_PAID booking.
func (s *serviceImpl) ConfirmRemaining(ctx context.Context, id string) (changed bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.ConfirmRemaining")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		booking, err := s.lockBooking(ctx, id)
		if err != nil {
			return err
		}

		if booking.RemainingStatus == model.RemainingPaid {
			return nil
		}

		if booking.Status != model.StatusDepositPaid {
			return failure.Conflict(fmt.Sprintf("remaining balance cannot be confirmed for a %s booking", booking.Status))
		}

		now := timezone.Now()

		booking.RemainingStatus = model.RemainingPaid
		booking.RemainingPaidAt = &now
		booking.Status = model.StatusFullyPaid

		if err := s.update(ctx, id, map[string]any{
			model.FieldRemainingStatus: model.RemainingPaid,
			model.FieldRemainingPaidAt: now,
			model.FieldStatus:          model.StatusFullyPaid,
		}, now); err != nil {
			return err
		}

		changed = true

		postgres.AfterCommit(ctx, func(c context.Context) {
			s.notify(c, booking, notificationModel.KindRemainingConfirmed)
		})

		return nil
	})
	if err != nil {
		return false, err
	}

	if changed {
		log.Info().Str("bookingID", id).Msg("remaining balance confirmed")
	}

	return changed, nil
}

// MarkDepositFailed records an asynchronous deposit failure. The booking stays
// CREATED so the guest can open a new deposit checkout with its payment token.
func (s *serviceImpl) MarkDepositFailed(ctx context.Context, id string) (changed bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.MarkDepositFailed")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		booking, err := s.lockBooking(ctx, id)
		if err != nil {
			return err
		}

		if booking.Status != model.StatusCreated || booking.DepositStatus != model.DepositPending {
			return nil
		}

		if err := s.update(ctx, id, map[string]any{model.FieldDepositStatus: model.DepositFailed}, timezone.Now()); err != nil {
			return err
		}

		changed = true

		return nil
	})
	if err != nil {
		return false, err
	}

	if changed {
		log.Warn().Str("bookingID", id).Msg("deposit payment failed")
	}

	return changed, nil
}

// InitiateDepositByToken reopens the deposit checkout of a CREATED booking,
// after the gateway was unreachable at creation or the first attempt failed.
func (s *serviceImpl) InitiateDepositByToken(ctx context.Context, token string) (res dto.InitiateDepositResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.InitiateDepositByToken")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.lookupByToken(ctx, token)
	if err != nil {
		return res, err
	}

	switch {
	case booking.Status == model.StatusCancelled:
		return res, failure.BadRequestFromString("booking is cancelled")
	case booking.DepositConfirmed():
		return res, failure.AlreadyPaid("deposit is already paid")
	case booking.Status != model.StatusCreated:
		return res, failure.Conflict(fmt.Sprintf("deposit cannot be paid for a %s booking", booking.Status))
	}

	session, err := s.openSession(ctx, booking, paymentModel.KindDeposit, booking.DepositAmount, model.FieldDepositSessionID)
	if err != nil {
		return res, err
	}

	log.Info().Str("bookingID", booking.ID).Str("depositStatus", booking.DepositStatus).Msg("deposit checkout reopened")

	res.URL = session.URL
	res.SessionID = session.ID

	return res, nil
}

func (s *serviceImpl) InitiateRemaining(ctx context.Context, id string) (res dto.InitiateRemainingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.InitiateRemaining")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.lookup(ctx, id)
	if err != nil {
		return res, err
	}

	return s.initiateRemaining(ctx, booking)
}

func (s *serviceImpl) InitiateRemainingByToken(ctx context.Context, token string) (res dto.InitiateRemainingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.InitiateRemainingByToken")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.lookupByToken(ctx, token)
	if err != nil {
		return res, err
	}

	return s.initiateRemaining(ctx, booking)
}

func (s *serviceImpl) initiateRemaining(ctx context.Context, booking model.Booking) (res dto.InitiateRemainingResponse, err error) {
	switch {
	case !booking.RemainingAmount.IsPositive():
		return res, failure.NothingOwed()
	case booking.RemainingStatus == model.RemainingPaid:
		return res, failure.AlreadyPaid("remaining balance is already paid")
	case booking.Status == model.StatusCancelled:
		return res, failure.BadRequestFromString("booking is cancelled")
	case !booking.DepositConfirmed():
		return res, failure.BadRequestFromString("deposit has not been paid yet")
	}

	session, err := s.openSession(ctx, booking, paymentModel.KindRemaining, booking.RemainingAmount, model.FieldRemainingSessionID)
	if err != nil {
		return res, err
	}

	res.URL = session.URL
	res.SessionID = session.ID

	return res, nil
}

// GetRemaining is the token-guarded remaining balance page.
func (s *serviceImpl) GetRemaining(ctx context.Context, token string) (res dto.RemainingView, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetRemaining")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.lookupByToken(ctx, token)
	if err != nil {
		return res, err
	}

	if booking.Status == model.StatusCancelled {
		return res, failure.BadRequestFromString("booking is cancelled")
	}

	if !booking.DepositConfirmed() {
		return res, failure.BadRequestFromString("deposit has not been paid yet")
	}

	res.FromModel(booking)

	return res, nil
}

// RequestRemaining asks the guest to pay the outstanding balance.
func (s *serviceImpl) RequestRemaining(ctx context.Context, id string) (res dto.RequestRemainingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.RequestRemaining")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.lookup(ctx, id)
	if err != nil {
		return res, err
	}

	if booking.Status != model.StatusDepositPaid || !booking.Owes() {
		return res, failure.Conflict("booking has no outstanding remaining balance")
	}

	deliveryID, err := s.dispatcher.Dispatch(ctx, dispatchRequest(booking, notificationModel.KindRemainingRequest))
	if err != nil {
		return res, err
	}

	res.DeliveryID = deliveryID

	return res, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		booking, err := s.lockBooking(ctx, id)
		if err != nil {
			return err
		}

		if booking.Status == model.StatusFullyPaid || booking.Status == model.StatusCancelled {
			return failure.Conflict(fmt.Sprintf("a %s booking cannot be cancelled", booking.Status))
		}

		if booking.Status == model.StatusDepositPaid {
			if _, err := s.tripDate.Release(ctx, booking.TripDateID, booking.ParticipantsCount); err != nil {
				return err
			}
		}

		now := timezone.Now()

		return s.update(ctx, id, map[string]any{
			model.FieldStatus:      model.StatusCancelled,
			model.FieldCancelledAt: now,
		}, now)
	})
	if err != nil {
		return err
	}

	log.Info().Str("bookingID", id).Msg("booking cancelled")

	return nil
}

// Delete removes the booking, first giving back any seats it holds.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		booking, err := s.lockBooking(ctx, id)
		if err != nil {
			return err
		}

		if booking.DepositConfirmed() {
			if _, err := s.tripDate.Release(ctx, booking.TripDateID, booking.ParticipantsCount); err != nil {
				return err
			}
		}

		if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			log.Error().Err(err).Str("bookingID", id).Msg("failed to delete booking")

			return fmt.Errorf("failed to delete booking: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	log.Info().Str("bookingID", id).Msg("booking deleted")

	return nil
}

// openSession asks the gateway for a checkout page and appends the attempt to
// the payment trail. It runs outside any transaction.
func (s *serviceImpl) openSession(ctx context.Context, booking model.Booking, kind string, amount decimal.Decimal, sessionField string) (gateway.Session, error) {
	session, err := s.gateway.CreateCheckoutSession(ctx, gateway.SessionRequest{
		BookingID:      booking.ID,
		Kind:           kind,
		Amount:         amount,
		Currency:       s.cfg.App.Booking.Currency,
		Description:    fmt.Sprintf("%s payment for %d participant(s)", kind, booking.ParticipantsCount),
		CustomerEmail:  booking.Email,
		SuccessURL:     strings.ReplaceAll(s.cfg.App.Booking.PaymentSuccessURL, urlTokenPlaceholder, booking.PaymentToken),
		CancelURL:      strings.ReplaceAll(s.cfg.App.Booking.PaymentCancelURL, urlTokenPlaceholder, booking.PaymentToken),
		IdempotencyKey: s.idempotencyKey(ctx, booking.ID, kind),
	})
	if err != nil {
		if _, recordErr := s.payment.Record(ctx, booking.ID, kind, amount, constant.Empty); recordErr != nil {
			log.Error().Err(recordErr).Str("bookingID", booking.ID).Msg("failed to record gateway error")
		}

		gatewayErr := failure.WithDetail(failure.Gateway(err), detailBookingID, booking.ID)

		return gateway.Session{}, failure.WithDetail(gatewayErr, detailPaymentToken, booking.PaymentToken)
	}

	if _, err := s.payment.Record(ctx, booking.ID, kind, amount, session.ID); err != nil {
		log.Error().Err(err).Str("bookingID", booking.ID).Str("sessionID", session.ID).Msg("checkout session opened but not recorded")
	}

	if err := s.repo.Update(ctx, map[string]any{
		sessionField:             session.ID,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: actor(ctx, constant.ContextGuest),
	}, shared.FilterByID(booking.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("bookingID", booking.ID).Str("sessionID", session.ID).Msg("failed to store checkout session id")
	}

	log.Info().Str("bookingID", booking.ID).Str("kind", kind).Str("sessionID", session.ID).Msg("checkout session opened")

	return session, nil
}

// idempotencyKey numbers attempts by the sessions already opened for the kind,
// so a call repeated after a gateway error reuses the key of the lost attempt.
func (s *serviceImpl) idempotencyKey(ctx context.Context, bookingID, kind string) string {
	payments, err := s.payment.GetByBooking(ctx, bookingID)
	if err != nil {
		log.Warn().Err(err).Str("bookingID", bookingID).Msg("payment trail unavailable, opening session without idempotency key")

		return constant.Empty
	}

	opened := 0

	for _, payment := range payments {
		if payment.Kind == kind && payment.GatewaySessionID != nil {
			opened++
		}
	}

	return fmt.Sprintf("%s:%s:%d", bookingID, kind, opened+1)
}

func (s *serviceImpl) notify(ctx context.Context, booking model.Booking, kind string) {
	if _, err := s.dispatcher.Dispatch(ctx, dispatchRequest(booking, kind)); err != nil {
		log.Error().Err(err).Str("bookingID", booking.ID).Str("kind", kind).Msg("notification not delivered")
	}
}

func dispatchRequest(booking model.Booking, kind string) notificationDto.DispatchRequest {
	dueDate := booking.RemainingDueDate

	return notificationDto.DispatchRequest{
		BookingID:        booking.ID,
		Kind:             kind,
		Email:            booking.Email,
		FullName:         booking.FullName,
		PaymentToken:     booking.PaymentToken,
		TotalPrice:       booking.TotalPrice,
		RemainingAmount:  booking.RemainingAmount,
		RemainingDueDate: &dueDate,
	}
}

func (s *serviceImpl) update(ctx context.Context, id string, fields map[string]any, now time.Time) error {
	fields[constant.FieldModifiedAt] = now
	fields[constant.FieldModifiedBy] = actor(ctx, constant.ContextSystem)

	if err := s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("bookingID", id).Msg("failed to update booking")

		return fmt.Errorf("failed to update booking: %w", err)
	}

	return nil
}

func (s *serviceImpl) lockBooking(ctx context.Context, id string) (model.Booking, error) {
	if err := shared.ValidateID(id, model.EntityName); err != nil {
		return model.Booking{}, err
	}

	booking, err := s.repo.GetForUpdate(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("bookingID", id).Msg("failed to lock booking")

		return booking, fmt.Errorf("failed to lock booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, nil
}

func (s *serviceImpl) lookup(ctx context.Context, id string) (model.Booking, error) {
	if err := shared.ValidateID(id, model.EntityName); err != nil {
		return model.Booking{}, err
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("bookingID", id).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, nil
}

func (s *serviceImpl) lookupByToken(ctx context.Context, token string) (model.Booking, error) {
	if strings.TrimSpace(token) == constant.Empty {
		return model.Booking{}, failure.NotFound("booking not found")
	}

	booking, err := s.repo.GetByToken(ctx, token)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking by payment token")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, nil
}

func actor(ctx context.Context, fallback string) string {
	if user, ok := ctx.Value(constant.ContextKeyUserID).(string); ok && user != constant.Empty {
		return user
	}

	return fallback
}

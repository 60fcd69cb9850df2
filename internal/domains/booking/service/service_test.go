package service_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tripseat/config"
	"tripseat/infras/gateway"
	gatewayMocks "tripseat/infras/gateway/mocks"
	"tripseat/infras/otel/mocks"
	postgresMocks "tripseat/infras/postgres/mocks"
	bookingMocks "tripseat/internal/domains/booking/mocks"
	"tripseat/internal/domains/booking/model"
	"tripseat/internal/domains/booking/model/dto"
	"tripseat/internal/domains/booking/service"
	couponModel "tripseat/internal/domains/coupon/model"
	couponMocks "tripseat/internal/domains/coupon/service/mocks"
	notificationModel "tripseat/internal/domains/notification/model"
	notificationDto "tripseat/internal/domains/notification/model/dto"
	notificationMocks "tripseat/internal/domains/notification/service/mocks"
	paymentModel "tripseat/internal/domains/payment/model"
	paymentMocks "tripseat/internal/domains/payment/service/mocks"
	tripDateModel "tripseat/internal/domains/tripdate/model"
	gDto "tripseat/shared/dto"
	"tripseat/shared/failure"
)

const tripDateID = "3f1c8d2e-6a57-4b1e-9d0a-2c4b7e9f1a10"

// bookingStore backs the repository mock with rows kept in memory.
type bookingStore struct {
	mu   sync.Mutex
	rows map[string]model.Booking
}

func (s *bookingStore) put(b model.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rows[b.ID] = b
}

func (s *bookingStore) get(id string) model.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rows[id]
}

func (s *bookingStore) byToken(token string) model.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.rows {
		if b.PaymentToken == token {
			return b
		}
	}

	return model.Booking{}
}

func (s *bookingStore) apply(id string, fields map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := s.rows[id]

	for column, value := range fields {
		switch column {
		case model.FieldStatus:
			b.Status = value.(string)
		case model.FieldDepositStatus:
			b.DepositStatus = value.(string)
		case model.FieldRemainingStatus:
			b.RemainingStatus = value.(string)
		case model.FieldDepositSessionID:
			v := value.(string)
			b.DepositSessionID = &v
		case model.FieldRemainingSessionID:
			v := value.(string)
			b.RemainingSessionID = &v
		case model.FieldDepositPaidAt:
			v := value.(time.Time)
			b.DepositPaidAt = &v
		case model.FieldRemainingPaidAt:
			v := value.(time.Time)
			b.RemainingPaidAt = &v
		case model.FieldCancelledAt:
			v := value.(time.Time)
			b.CancelledAt = &v
		}
	}

	s.rows[id] = b
}

func (s *bookingStore) remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.rows, id)
}

func filterID(filter gDto.FilterGroup) string {
	f, _ := filter.Filters[0].(gDto.Filter)
	id, _ := f.Value.(string)

	return id
}

type fixture struct {
	svc        service.Booking
	store      *bookingStore
	ledger     *fakeLedger
	coupon     *couponMocks.MockCoupon
	payment    *paymentMocks.MockPayment
	gateway    *gatewayMocks.MockGateway
	dispatcher *notificationMocks.MockDispatcher
	dispatched atomic.Int64

	mu       sync.Mutex
	payments []paymentModel.Payment
}

func newFixture(t *testing.T, tripDates ...tripDateModel.TripDate) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &fixture{
		store:      &bookingStore{rows: map[string]model.Booking{}},
		ledger:     newFakeLedger(tripDates...),
		coupon:     couponMocks.NewMockCoupon(ctrl),
		payment:    paymentMocks.NewMockPayment(ctrl),
		gateway:    gatewayMocks.NewMockGateway(ctrl),
		dispatcher: notificationMocks.NewMockDispatcher(ctrl),
	}

	repo := bookingMocks.NewMockBooking(ctrl)

	get := func(_ context.Context, filter gDto.FilterGroup, _ ...string) (model.Booking, error) {
		return f.store.get(filterID(filter)), nil
	}

	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b model.Booking) error {
			f.store.put(b)

			return nil
		}).AnyTimes()
	repo.EXPECT().Get(gomock.Any(), gomock.Any()).DoAndReturn(get).AnyTimes()
	repo.EXPECT().GetForUpdate(gomock.Any(), gomock.Any()).DoAndReturn(get).AnyTimes()
	repo.EXPECT().GetByToken(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, token string) (model.Booking, error) {
			return f.store.byToken(token), nil
		}).AnyTimes()
	repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, filter gDto.FilterGroup) error {
			f.store.apply(filterID(filter), fields)

			return nil
		}).AnyTimes()
	repo.EXPECT().Delete(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) error {
			f.store.remove(filterID(filter))

			return nil
		}).AnyTimes()

	f.payment.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, bookingID, kind string, amount decimal.Decimal, sessionID string) (paymentModel.Payment, error) {
			p := paymentModel.Payment{ID: uuid.NewString(), BookingID: bookingID, Kind: kind, Amount: amount}
			if sessionID != "" {
				p.GatewaySessionID = &sessionID
			}

			f.mu.Lock()
			f.payments = append(f.payments, p)
			f.mu.Unlock()

			return p, nil
		}).AnyTimes()
	f.payment.EXPECT().GetByBooking(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, bookingID string) ([]paymentModel.Payment, error) {
			f.mu.Lock()
			defer f.mu.Unlock()

			var rows []paymentModel.Payment

			for _, p := range f.payments {
				if p.BookingID == bookingID {
					rows = append(rows, p)
				}
			}

			return rows, nil
		}).AnyTimes()
	f.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ notificationDto.DispatchRequest) (string, error) {
			f.dispatched.Add(1)

			return uuid.NewString(), nil
		}).AnyTimes()

	cfg := &config.Config{}
	cfg.App.Booking.RemainingDueDays = 14
	cfg.App.Booking.Currency = "IDR"
	cfg.App.Booking.PaymentSuccessURL = "https://trips.example.com/paid?token={token}"

	f.svc = service.New(repo, f.ledger, f.coupon, f.payment, f.dispatcher, f.gateway, postgresMocks.NewTransactor(), cfg, mocks.NewOtel())

	return f
}

func (f *fixture) gatewayOK() {
	f.gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req gateway.SessionRequest) (gateway.Session, error) {
			id := "cs_" + uuid.NewString()

			return gateway.Session{ID: id, URL: "https://pay.example.com/" + id}, nil
		}).AnyTimes()
}

func openTripDate(capacity, reserved int) tripDateModel.TripDate {
	return tripDateModel.TripDate{
		ID:               tripDateID,
		TripID:           "komodo-sail",
		Date:             time.Now().AddDate(0, 2, 0),
		Capacity:         capacity,
		ReservedSpots:    reserved,
		PricePerPerson:   decimal.NewFromInt(100),
		DepositPerPerson: decimal.NewFromInt(30),
		Status:           tripDateModel.StatusOpen,
	}
}

func bookingRequest(participants int, coupon string) dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		TripDateID:        tripDateID,
		FullName:          "Ana Lim",
		Email:             "ana@example.com",
		Phone:             "+62 812 5555 0101",
		ParticipantsCount: participants,
		CouponCode:        coupon,
	}
}

func availableOf(t *testing.T, err error) int {
	t.Helper()

	f, ok := failure.Get(err)
	require.True(t, ok, "expected failure, got %v", err)
	require.Equal(t, failure.ReasonCapacityExceeded, f.Reason)

	available, _ := f.Details[failure.DetailAvailable].(int)

	return available
}

func TestBookingService_Create(t *testing.T) {
	f := newFixture(t, openTripDate(10, 0))
	f.gatewayOK()

	res, err := f.svc.Create(context.Background(), bookingRequest(2, ""))

	require.NoError(t, err)
	assert.NotEmpty(t, res.PaymentURL)

	stored := f.store.get(res.BookingID)
	assert.Equal(t, model.StatusCreated, stored.Status)
	assert.Equal(t, model.DepositPending, stored.DepositStatus)
	assert.True(t, stored.TotalPrice.Equal(decimal.NewFromInt(200)))
	assert.True(t, stored.DepositAmount.Equal(decimal.NewFromInt(60)))
	assert.True(t, stored.RemainingAmount.Equal(decimal.NewFromInt(140)))
	assert.Len(t, stored.PaymentToken, 64)
	assert.NotEqual(t, stored.ID, stored.PaymentToken)
	require.NotNil(t, stored.DepositSessionID)
	assert.Equal(t, "https://pay.example.com/"+*stored.DepositSessionID, res.PaymentURL)
	assert.Nil(t, stored.CouponID)

	assert.Equal(t, 0, f.ledger.reserved(tripDateID), "creation must not commit seats")
}

func TestBookingService_Create_SessionRequest(t *testing.T) {
	f := newFixture(t, openTripDate(10, 0))

	f.gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req gateway.SessionRequest) (gateway.Session, error) {
			assert.Equal(t, paymentModel.KindDeposit, req.Kind)
			assert.True(t, req.Amount.Equal(decimal.NewFromInt(90)))
			assert.Equal(t, "IDR", req.Currency)
			assert.NotContains(t, req.SuccessURL, "{token}")

			return gateway.Session{ID: "cs_1", URL: "https://pay.example.com/cs_1"}, nil
		})

	_, err := f.svc.Create(context.Background(), bookingRequest(3, ""))

	require.NoError(t, err)
}

func TestBookingService_Create_Rejections(t *testing.T) {
	closed := openTripDate(10, 0)
	closed.Status = tripDateModel.StatusClosed

	t.Run("unknown trip date", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Create(context.Background(), bookingRequest(1, ""))

		assert.True(t, failure.Is(err, failure.ReasonNotFound))
	})

	t.Run("closed trip date", func(t *testing.T) {
		f := newFixture(t, closed)

		_, err := f.svc.Create(context.Background(), bookingRequest(1, ""))

		require.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("invalid coupon", func(t *testing.T) {
		f := newFixture(t, openTripDate(10, 0))

		f.coupon.EXPECT().Validate(gomock.Any(), "OLD", 2).Return(couponModel.Coupon{}, failure.InvalidCoupon(couponModel.ReasonExpired))

		_, err := f.svc.Create(context.Background(), bookingRequest(2, "OLD"))

		assert.True(t, failure.Is(err, failure.ReasonInvalidCoupon))
		assert.Empty(t, f.store.rows)
	})
}

func TestBookingService_Create_CapacityScenario(t *testing.T) {
	f := newFixture(t, openTripDate(25, 23))
	f.gatewayOK()

	_, err := f.svc.Create(context.Background(), bookingRequest(3, ""))
	assert.Equal(t, 2, availableOf(t, err))

	res, err := f.svc.Create(context.Background(), bookingRequest(2, ""))
	require.NoError(t, err)

	changed, err := f.svc.ConfirmDeposit(context.Background(), res.BookingID)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 25, f.ledger.reserved(tripDateID))

	_, err = f.svc.Create(context.Background(), bookingRequest(1, ""))
	assert.Equal(t, 0, availableOf(t, err))
}

func TestBookingService_Create_WithCoupon(t *testing.T) {
	f := newFixture(t, openTripDate(10, 0))
	f.gatewayOK()

	coupon := couponModel.Coupon{ID: "c-1", Code: "SUMMER10", PercentOff: 10, IsActive: true}

	f.coupon.EXPECT().Validate(gomock.Any(), "summer10", 3).Return(coupon, nil)
	f.coupon.EXPECT().ApplyAndIncrement(gomock.Any(), coupon, 3).Return(nil)

	res, err := f.svc.Create(context.Background(), bookingRequest(3, "summer10"))
	require.NoError(t, err)

	stored := f.store.get(res.BookingID)
	assert.True(t, stored.TotalPrice.Equal(decimal.NewFromInt(270)))
	assert.True(t, stored.DepositAmount.Equal(decimal.NewFromInt(90)))
	assert.True(t, stored.RemainingAmount.Equal(decimal.NewFromInt(180)))
	require.NotNil(t, stored.CouponID)
	assert.Equal(t, "c-1", *stored.CouponID)
}

func TestBookingService_Create_CouponRace(t *testing.T) {
	f := newFixture(t, openTripDate(10, 0))
	f.gatewayOK()

	coupon := couponModel.Coupon{ID: "c-1", Code: "SUMMER10", PercentOff: 10, IsActive: true}

	var redeemed atomic.Int64

	f.coupon.EXPECT().Validate(gomock.Any(), "SUMMER10", 1).Return(coupon, nil).Times(2)
	f.coupon.EXPECT().ApplyAndIncrement(gomock.Any(), coupon, 1).
		DoAndReturn(func(_ context.Context, _ couponModel.Coupon, _ int) error {
			if redeemed.Add(1) > 1 {
				redeemed.Add(-1)

				return failure.InvalidCoupon(couponModel.ReasonMaxRedemptionsReached)
			}

			return nil
		}).Times(2)

	errs := make([]error, 2)

	var wg sync.WaitGroup

	for i := range errs {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			_, errs[i] = f.svc.Create(context.Background(), bookingRequest(1, "SUMMER10"))
		}(i)
	}

	wg.Wait()

	var succeeded, rejected int

	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case failure.Is(err, failure.ReasonInvalidCoupon):
			rejected++
		}
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, rejected)
	assert.Equal(t, int64(1), redeemed.Load())
	assert.Len(t, f.store.rows, 1)
}

func TestBookingService_Create_GatewayError(t *testing.T) {
	f := newFixture(t, openTripDate(10, 0))

	f.gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
		Return(gateway.Session{}, errors.New("dial tcp: i/o timeout"))

	_, err := f.svc.Create(context.Background(), bookingRequest(2, ""))

	fail, ok := failure.Get(err)
	require.True(t, ok)
	assert.Equal(t, 502, fail.Code)
	assert.Equal(t, failure.ReasonGatewayError, fail.Reason)

	bookingID, _ := fail.Details["booking_id"].(string)
	stored := f.store.get(bookingID)
	assert.Equal(t, model.StatusCreated, stored.Status)
	assert.Nil(t, stored.DepositSessionID)
}

func TestBookingService_InitiateDepositByToken(t *testing.T) {
	t.Run("after the gateway was unreachable", func(t *testing.T) {
		f := newFixture(t, openTripDate(10, 0))

		f.gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
			Return(gateway.Session{}, errors.New("dial tcp: i/o timeout"))

		_, err := f.svc.Create(context.Background(), bookingRequest(2, ""))

		fail, ok := failure.Get(err)
		require.True(t, ok)

		token, _ := fail.Details["payment_token"].(string)
		bookingID, _ := fail.Details["booking_id"].(string)

		f.gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req gateway.SessionRequest) (gateway.Session, error) {
				assert.Equal(t, bookingID, req.BookingID)
				assert.Equal(t, paymentModel.KindDeposit, req.Kind)
				assert.True(t, req.Amount.Equal(decimal.NewFromInt(60)))

				return gateway.Session{ID: "cs_retry", URL: "https://pay.example.com/cs_retry"}, nil
			})

		res, err := f.svc.InitiateDepositByToken(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, "cs_retry", res.SessionID)
		assert.Equal(t, "https://pay.example.com/cs_retry", res.URL)

		stored := f.store.get(bookingID)
		require.NotNil(t, stored.DepositSessionID)
		assert.Equal(t, "cs_retry", *stored.DepositSessionID)
		assert.Equal(t, model.StatusCreated, stored.Status)
	})

	t.Run("after the deposit failed", func(t *testing.T) {
		f := newFixture(t, openTripDate(10, 0))
		f.gatewayOK()

		id := f.createBooking(t, 2)
		first := *f.store.get(id).DepositSessionID

		_, err := f.svc.MarkDepositFailed(context.Background(), id)
		require.NoError(t, err)

		res, err := f.svc.InitiateDepositByToken(context.Background(), f.store.get(id).PaymentToken)
		require.NoError(t, err)
		assert.NotEqual(t, first, res.SessionID)

		changed, err := f.svc.ConfirmDeposit(context.Background(), id)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, 2, f.ledger.reserved(tripDateID))
	})

	t.Run("refused once the deposit is paid", func(t *testing.T) {
		f := newFixture(t, openTripDate(10, 0))
		f.gatewayOK()

		id := f.createBooking(t, 2)

		_, err := f.svc.ConfirmDeposit(context.Background(), id)
		require.NoError(t, err)

		_, err = f.svc.InitiateDepositByToken(context.Background(), f.store.get(id).PaymentToken)
		assert.True(t, failure.Is(err, failure.ReasonAlreadyPaid))
	})

	t.Run("refused for a cancelled booking", func(t *testing.T) {
		f := newFixture(t, openTripDate(10, 0))
		f.gatewayOK()

		id := f.createBooking(t, 2)
		require.NoError(t, f.svc.Cancel(context.Background(), id))

		_, err := f.svc.InitiateDepositByToken(context.Background(), f.store.get(id).PaymentToken)
		require.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
		assert.False(t, failure.Is(err, failure.ReasonAlreadyPaid))
	})

	t.Run("unknown token", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.InitiateDepositByToken(context.Background(), "no-such-token")
		assert.True(t, failure.Is(err, failure.ReasonNotFound))
	})
}

func TestBookingService_IdempotencyKeyPerAttempt(t *testing.T) {
	f := newFixture(t, openTripDate(10, 0))

	var keys []string

	f.gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req gateway.SessionRequest) (gateway.Session, error) {
			keys = append(keys, req.IdempotencyKey)

			return gateway.Session{}, errors.New("context deadline exceeded")
		})
	f.gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req gateway.SessionRequest) (gateway.Session, error) {
			keys = append(keys, req.IdempotencyKey)
			id := fmt.Sprintf("cs_%d", len(keys))

			return gateway.Session{ID: id, URL: "https://pay.example.com/" + id}, nil
		}).Times(2)

	_, err := f.svc.Create(context.Background(), bookingRequest(2, ""))
	fail, ok := failure.Get(err)
	require.True(t, ok)

	bookingID, _ := fail.Details["booking_id"].(string)
	token, _ := fail.Details["payment_token"].(string)

	_, err = f.svc.InitiateDepositByToken(context.Background(), token)
	require.NoError(t, err)

	_, err = f.svc.MarkDepositFailed(context.Background(), bookingID)
	require.NoError(t, err)

	_, err = f.svc.InitiateDepositByToken(context.Background(), token)
	require.NoError(t, err)

	require.Len(t, keys, 3)
	assert.Equal(t, bookingID+":deposit:1", keys[0])
	assert.Equal(t, keys[0], keys[1], "a retry after a lost attempt reuses its key")
	assert.Equal(t, bookingID+":deposit:2", keys[2])
}

func (f *fixture) createBooking(t *testing.T, participants int) string {
	t.Helper()

	res, err := f.svc.Create(context.Background(), bookingRequest(participants, ""))
	require.NoError(t, err)

	return res.BookingID
}

func TestBookingService_ConfirmDeposit(t *testing.T) {
	t.Run("commits seats once", func(t *testing.T) {
		f := newFixture(t, openTripDate(10, 0))
		f.gatewayOK()

		id := f.createBooking(t, 4)

		changed, err := f.svc.ConfirmDeposit(context.Background(), id)
		require.NoError(t, err)
		assert.True(t, changed)

		changed, err = f.svc.ConfirmDeposit(context.Background(), id)
		require.NoError(t, err)
		assert.False(t, changed)

		stored := f.store.get(id)
		assert.Equal(t, model.StatusDepositPaid, stored.Status)
		assert.Equal(t, model.DepositPaid, stored.DepositStatus)
		assert.NotNil(t, stored.DepositPaidAt)
		assert.Equal(t, 4, f.ledger.reserved(tripDateID))
		assert.Equal(t, int64(1), f.dispatched.Load())
	})

	t.Run("cancelled booking is left alone", func(t *testing.T) {
		f := newFixture(t, openTripDate(10, 0))
		f.gatewayOK()

		id := f.createBooking(t, 2)
		require.NoError(t, f.svc.Cancel(context.Background(), id))

		changed, err := f.svc.ConfirmDeposit(context.Background(), id)

		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, 0, f.ledger.reserved(tripDateID))
		assert.Equal(t, int64(0), f.dispatched.Load())
	})

	t.Run("no seats left", func(t *testing.T) {
		f := newFixture(t, openTripDate(4, 0))
		f.gatewayOK()

		first := f.createBooking(t, 3)
		second := f.createBooking(t, 3)

		_, err := f.svc.ConfirmDeposit(context.Background(), first)
		require.NoError(t, err)

		changed, err := f.svc.ConfirmDeposit(context.Background(), second)

		assert.False(t, changed)
		assert.Equal(t, 1, availableOf(t, err))
		assert.Equal(t, model.StatusCreated, f.store.get(second).Status)
		assert.Equal(t, 3, f.ledger.reserved(tripDateID))
		assert.Equal(t, int64(1), f.dispatched.Load())
	})

	t.Run("nothing remaining goes straight to fully paid", func(t *testing.T) {
		td := openTripDate(10, 0)
		td.DepositPerPerson = td.PricePerPerson

		f := newFixture(t, td)
		f.gatewayOK()

		id := f.createBooking(t, 1)

		_, err := f.svc.ConfirmDeposit(context.Background(), id)
		require.NoError(t, err)

		stored := f.store.get(id)
		assert.Equal(t, model.StatusFullyPaid, stored.Status)
		assert.Equal(t, model.RemainingPaid, stored.RemainingStatus)
	})

	t.Run("unknown booking", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.ConfirmDeposit(context.Background(), uuid.NewString())

		assert.True(t, failure.Is(err, failure.ReasonNotFound))
	})
}

func TestBookingService_ConfirmDeposit_Concurrent(t *testing.T) {
	const (
		capacity     = 10
		participants = 3
		bookings     = 8
	)

	f := newFixture(t, openTripDate(capacity, 0))
	f.gatewayOK()

	ids := make([]string, bookings)
	for i := range ids {
		ids[i] = f.createBooking(t, participants)
	}

	var (
		wg        sync.WaitGroup
		confirmed atomic.Int64
		rejected  atomic.Int64
	)

	for _, id := range ids {
		wg.Add(1)

		go func(id string) {
			defer wg.Done()

			changed, err := f.svc.ConfirmDeposit(context.Background(), id)

			switch {
			case err == nil && changed:
				confirmed.Add(1)
			case failure.Is(err, failure.ReasonCapacityExceeded):
				rejected.Add(1)
			default:
				t.Errorf("unexpected outcome changed=%v err=%v", changed, err)
			}
		}(id)
	}

	wg.Wait()

	assert.Equal(t, int64(capacity/participants), confirmed.Load())
	assert.Equal(t, int64(bookings-capacity/participants), rejected.Load())
	assert.LessOrEqual(t, f.ledger.reserved(tripDateID), capacity)
	assert.Equal(t, confirmed.Load()*participants, int64(f.ledger.reserved(tripDateID)))
}

func TestBookingService_ConfirmRemaining(t *testing.T) {
	f := newFixture(t, openTripDate(10, 0))
	f.gatewayOK()

	id := f.createBooking(t, 2)

	_, err := f.svc.ConfirmRemaining(context.Background(), id)
	assert.True(t, failure.Is(err, failure.ReasonInvalidState), "remaining before deposit")

	_, err = f.svc.ConfirmDeposit(context.Background(), id)
	require.NoError(t, err)

	changed, err := f.svc.ConfirmRemaining(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = f.svc.ConfirmRemaining(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, changed)

	stored := f.store.get(id)
	assert.Equal(t, model.StatusFullyPaid, stored.Status)
	assert.Equal(t, model.RemainingPaid, stored.RemainingStatus)
	assert.NotNil(t, stored.RemainingPaidAt)
	assert.Equal(t, int64(2), f.dispatched.Load())
}

func TestBookingService_MarkDepositFailed(t *testing.T) {
	f := newFixture(t, openTripDate(10, 0))
	f.gatewayOK()

	id := f.createBooking(t, 2)

	changed, err := f.svc.MarkDepositFailed(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, model.DepositFailed, f.store.get(id).DepositStatus)

	changed, err = f.svc.MarkDepositFailed(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, changed)

	changed, err = f.svc.ConfirmDeposit(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, changed, "a later successful payment still confirms")
}

func TestBookingService_Cancel(t *testing.T) {
	t.Run("deposit paid gives seats back", func(t *testing.T) {
		f := newFixture(t, openTripDate(10, 2))
		f.gatewayOK()

		id := f.createBooking(t, 3)

		_, err := f.svc.ConfirmDeposit(context.Background(), id)
		require.NoError(t, err)
		require.Equal(t, 5, f.ledger.reserved(tripDateID))

		require.NoError(t, f.svc.Cancel(context.Background(), id))

		stored := f.store.get(id)
		assert.Equal(t, model.StatusCancelled, stored.Status)
		assert.NotNil(t, stored.CancelledAt)
		assert.Equal(t, 2, f.ledger.reserved(tripDateID))
	})

	t.Run("unpaid booking leaves capacity unchanged", func(t *testing.T) {
		f := newFixture(t, openTripDate(10, 2))
		f.gatewayOK()

		id := f.createBooking(t, 3)

		require.NoError(t, f.svc.Cancel(context.Background(), id))
		assert.Equal(t, 2, f.ledger.reserved(tripDateID))
	})

	t.Run("terminal states refuse", func(t *testing.T) {
		f := newFixture(t, openTripDate(10, 0))
		f.gatewayOK()

		id := f.createBooking(t, 1)

		_, err := f.svc.ConfirmDeposit(context.Background(), id)
		require.NoError(t, err)
		_, err = f.svc.ConfirmRemaining(context.Background(), id)
		require.NoError(t, err)

		assert.True(t, failure.Is(f.svc.Cancel(context.Background(), id), failure.ReasonInvalidState))

		other := f.createBooking(t, 1)
		require.NoError(t, f.svc.Cancel(context.Background(), other))
		assert.True(t, failure.Is(f.svc.Cancel(context.Background(), other), failure.ReasonInvalidState))
	})
}

func TestBookingService_Delete(t *testing.T) {
	f := newFixture(t, openTripDate(10, 0))
	f.gatewayOK()

	paid := f.createBooking(t, 4)
	unpaid := f.createBooking(t, 2)

	_, err := f.svc.ConfirmDeposit(context.Background(), paid)
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(context.Background(), unpaid))
	assert.Equal(t, 4, f.ledger.reserved(tripDateID))

	require.NoError(t, f.svc.Delete(context.Background(), paid))
	assert.Equal(t, 0, f.ledger.reserved(tripDateID))
	assert.Empty(t, f.store.rows)

	assert.True(t, failure.Is(f.svc.Delete(context.Background(), paid), failure.ReasonNotFound))
}

func TestBookingService_InitiateRemaining(t *testing.T) {
	f := newFixture(t, openTripDate(10, 0))
	f.gatewayOK()

	id := f.createBooking(t, 2)

	_, err := f.svc.InitiateRemaining(context.Background(), id)
	require.Error(t, err)
	assert.Equal(t, 400, failure.GetCode(err), "deposit not paid yet")

	_, err = f.svc.ConfirmDeposit(context.Background(), id)
	require.NoError(t, err)

	res, err := f.svc.InitiateRemaining(context.Background(), id)
	require.NoError(t, err)
	assert.NotEmpty(t, res.SessionID)
	assert.Equal(t, "https://pay.example.com/"+res.SessionID, res.URL)

	stored := f.store.get(id)
	require.NotNil(t, stored.RemainingSessionID)
	assert.Equal(t, res.SessionID, *stored.RemainingSessionID)

	_, err = f.svc.ConfirmRemaining(context.Background(), id)
	require.NoError(t, err)

	_, err = f.svc.InitiateRemaining(context.Background(), id)
	assert.True(t, failure.Is(err, failure.ReasonAlreadyPaid))
}

func TestBookingService_InitiateRemaining_NothingOwed(t *testing.T) {
	td := openTripDate(10, 0)
	td.DepositPerPerson = td.PricePerPerson

	f := newFixture(t, td)
	f.gatewayOK()

	id := f.createBooking(t, 2)

	_, err := f.svc.ConfirmDeposit(context.Background(), id)
	require.NoError(t, err)

	_, err = f.svc.InitiateRemaining(context.Background(), id)
	assert.True(t, failure.Is(err, failure.ReasonNothingOwed))
}

func TestBookingService_RemainingByToken(t *testing.T) {
	f := newFixture(t, openTripDate(10, 0))
	f.gatewayOK()

	id := f.createBooking(t, 2)
	token := f.store.get(id).PaymentToken

	_, err := f.svc.GetRemaining(context.Background(), "no-such-token")
	assert.True(t, failure.Is(err, failure.ReasonNotFound))

	_, err = f.svc.GetRemaining(context.Background(), token)
	require.Error(t, err)
	assert.Equal(t, 400, failure.GetCode(err))

	_, err = f.svc.ConfirmDeposit(context.Background(), id)
	require.NoError(t, err)

	view, err := f.svc.GetRemaining(context.Background(), token)
	require.NoError(t, err)
	assert.True(t, view.RemainingAmount.Equal(decimal.NewFromInt(140)))
	assert.Equal(t, model.RemainingPending, view.RemainingStatus)

	res, err := f.svc.InitiateRemainingByToken(context.Background(), token)
	require.NoError(t, err)
	assert.NotEmpty(t, res.URL)
}

func TestBookingService_RequestRemaining(t *testing.T) {
	f := newFixture(t, openTripDate(10, 0))
	f.gatewayOK()

	id := f.createBooking(t, 2)

	_, err := f.svc.RequestRemaining(context.Background(), id)
	assert.True(t, failure.Is(err, failure.ReasonInvalidState))

	_, err = f.svc.ConfirmDeposit(context.Background(), id)
	require.NoError(t, err)

	res, err := f.svc.RequestRemaining(context.Background(), id)
	require.NoError(t, err)
	assert.NotEmpty(t, res.DeliveryID)
	assert.Equal(t, int64(2), f.dispatched.Load())
}

func TestBookingService_NotificationFailureKeepsTransition(t *testing.T) {
	ctrl := gomock.NewController(t)

	f := newFixture(t, openTripDate(10, 0))
	f.gatewayOK()

	failing := notificationMocks.NewMockDispatcher(ctrl)
	failing.EXPECT().Dispatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req notificationDto.DispatchRequest) (string, error) {
			assert.Equal(t, notificationModel.KindDepositConfirmed, req.Kind)

			return "", errors.New("broker unavailable")
		})

	id := f.createBooking(t, 2)

	svc := rebuild(t, f, failing)

	changed, err := svc.ConfirmDeposit(context.Background(), id)

	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, model.StatusDepositPaid, f.store.get(id).Status)
}

// rebuild swaps the dispatcher while keeping the fixture's state.
func rebuild(t *testing.T, f *fixture, dispatcher *notificationMocks.MockDispatcher) service.Booking {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := bookingMocks.NewMockBooking(ctrl)

	get := func(_ context.Context, filter gDto.FilterGroup, _ ...string) (model.Booking, error) {
		return f.store.get(filterID(filter)), nil
	}

	repo.EXPECT().GetForUpdate(gomock.Any(), gomock.Any()).DoAndReturn(get).AnyTimes()
	repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, filter gDto.FilterGroup) error {
			f.store.apply(filterID(filter), fields)

			return nil
		}).AnyTimes()

	cfg := &config.Config{}

	return service.New(repo, f.ledger, f.coupon, f.payment, dispatcher, f.gateway, postgresMocks.NewTransactor(), cfg, mocks.NewOtel())
}

func TestBookingService_AmountsStayConsistent(t *testing.T) {
	f := newFixture(t, openTripDate(50, 0))
	f.gatewayOK()

	for n := 1; n <= 5; n++ {
		t.Run(fmt.Sprintf("%d participants", n), func(t *testing.T) {
			id := f.createBooking(t, n)

			check := func() {
				b := f.store.get(id)
				assert.True(t, b.RemainingAmount.Equal(b.TotalPrice.Sub(b.DepositAmount)))
				assert.False(t, b.RemainingAmount.IsNegative())
				assert.False(t, b.DepositAmount.IsNegative())
			}

			check()

			_, err := f.svc.ConfirmDeposit(context.Background(), id)
			require.NoError(t, err)
			check()

			_, err = f.svc.ConfirmRemaining(context.Background(), id)
			require.NoError(t, err)
			check()
		})
	}
}

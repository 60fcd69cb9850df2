package coupon_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"tripseat/infras/otel/mocks"
	couponModel "tripseat/internal/domains/coupon/model"
	"tripseat/internal/domains/coupon/model/dto"
	couponMocks "tripseat/internal/domains/coupon/service/mocks"
	"tripseat/internal/handlers/coupon"
	"tripseat/shared/failure"
)

func newRouter(t *testing.T) (*chi.Mux, *couponMocks.MockCoupon) {
	t.Helper()

	svc := couponMocks.NewMockCoupon(gomock.NewController(t))
	handler := coupon.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)
	router.Route("/admin", handler.AdminRouter)

	return router, svc
}

func TestValidateCoupon(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().Preview(gomock.Any(), dto.ValidateCouponRequest{Code: "SUMMER10", ParticipantsCount: 2}).
		Return(dto.PreviewResponse{Code: "SUMMER10", PercentOff: 10, ParticipantsCount: 2, Valid: true}, nil)
	svc.EXPECT().Preview(gomock.Any(), dto.ValidateCouponRequest{Code: "OLD", ParticipantsCount: 2}).
		Return(dto.PreviewResponse{}, failure.InvalidCoupon(couponModel.ReasonExpired))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/coupons/validate", strings.NewReader(`{"code":"SUMMER10","participants_count":2}`)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"percent_off":10`)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/coupons/validate", strings.NewReader(`{"code":"OLD","participants_count":2}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"reason":"expired"`)
}

func TestCreateCoupon_Duplicate(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.CouponResponse{}, failure.Conflict("coupon code already exists"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/admin/coupons", strings.NewReader(`{"code":"SUMMER10","percent_off":10}`)))

	assert.Equal(t, http.StatusConflict, rec.Code)
}

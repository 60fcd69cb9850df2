package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"tripseat/config"
	"tripseat/infras/otel/mocks"
	"tripseat/shared/cache"
	cacheMocks "tripseat/shared/cache/mocks"
	"tripseat/shared/constant"
	"tripseat/transport/http/middleware"
)

func limited(t *testing.T, redis cache.RedisCache, maxRequests int) http.Handler {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = maxRequests
	cfg.App.RateLimiter.WindowSeconds = 60

	app := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, redis)

	return app.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func request() *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/v1/bookings", nil)
	req.Header.Set(constant.RequestHeaderForwardedFor, "203.0.113.7, 10.0.0.1")
	req.Header.Set(constant.RequestHeaderUserAgent, "tripseat-test")

	return req
}

func TestRateLimit_FirstRequest(t *testing.T) {
	redis := cacheMocks.NewMockRedisCache(gomock.NewController(t))

	redis.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
	redis.EXPECT().Save(gomock.Any(), gomock.Any(), 1, 60).Return(nil)

	rec := httptest.NewRecorder()
	limited(t, redis, 5).ServeHTTP(rec, request())

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "5", rec.Header().Get(constant.RequestHeaderRateLimit))
	assert.Equal(t, "4", rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
}

func TestRateLimit_Exceeded(t *testing.T) {
	redis := cacheMocks.NewMockRedisCache(gomock.NewController(t))

	redis.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value any) error {
			*(value.(*int)) = 5

			return nil
		})

	rec := httptest.NewRecorder()
	limited(t, redis, 5).ServeHTTP(rec, request())

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestRateLimit_CacheDownFailsOpen(t *testing.T) {
	redis := cacheMocks.NewMockRedisCache(gomock.NewController(t))

	redis.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("dial tcp: connection refused"))

	rec := httptest.NewRecorder()
	limited(t, redis, 5).ServeHTTP(rec, request())

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimit_Disabled(t *testing.T) {
	app := middleware.NewAppMiddleware(mocks.NewOtel(), &config.Config{}, nil)

	rec := httptest.NewRecorder()
	app.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})).ServeHTTP(rec, request())

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

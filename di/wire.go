//go:build wireinject
// +build wireinject

package di

import (
	"tripseat/config"
	"tripseat/infras/gateway"
	"tripseat/infras/jwt"
	"tripseat/infras/kafka"
	"tripseat/infras/otel"
	"tripseat/infras/postgres"
	"tripseat/infras/redis"
	"tripseat/infras/s3"
	"tripseat/permissions"
	"tripseat/shared/cache"
	"tripseat/transport/http"
	"tripseat/transport/http/middleware"
	"tripseat/transport/http/router"

	bookingRepository "tripseat/internal/domains/booking/repository"
	bookingService "tripseat/internal/domains/booking/service"
	couponRepository "tripseat/internal/domains/coupon/repository"
	couponService "tripseat/internal/domains/coupon/service"
	notificationRepository "tripseat/internal/domains/notification/repository"
	notificationService "tripseat/internal/domains/notification/service"
	paymentRepository "tripseat/internal/domains/payment/repository"
	paymentService "tripseat/internal/domains/payment/service"
	tripDateRepository "tripseat/internal/domains/tripdate/repository"
	tripDateService "tripseat/internal/domains/tripdate/service"
	webhookRepository "tripseat/internal/domains/webhook/repository"
	webhookService "tripseat/internal/domains/webhook/service"

	"github.com/google/wire"

	bookingHandler "tripseat/internal/handlers/booking"
	couponHandler "tripseat/internal/handlers/coupon"
	paymentHandler "tripseat/internal/handlers/payment"
	tripDateHandler "tripseat/internal/handlers/tripdate"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	wire.Bind(new(postgres.Transactor), new(*postgres.Connection)),
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
	gateway.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var tripDateDomain = wire.NewSet(
	tripDateRepository.New,
	tripDateService.New,
)

var couponDomain = wire.NewSet(
	couponRepository.New,
	couponService.New,
)

var paymentDomain = wire.NewSet(
	paymentRepository.New,
	paymentService.New,
)

var notificationDomain = wire.NewSet(
	notificationRepository.New,
	notificationService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var webhookDomain = wire.NewSet(
	webhookRepository.New,
	webhookService.New,
)

var domains = wire.NewSet(
	tripDateDomain,
	couponDomain,
	paymentDomain,
	notificationDomain,
	bookingDomain,
	webhookDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	tripDateHandler.New,
	couponHandler.New,
	bookingHandler.New,
	paymentHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

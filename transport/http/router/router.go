package router

import (
	"tripseat/internal/handlers/booking"
	"tripseat/internal/handlers/coupon"
	"tripseat/internal/handlers/payment"
	"tripseat/internal/handlers/tripdate"
	"tripseat/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	TripDate tripdate.Handler
	Coupon   coupon.Handler
	Booking  booking.Handler
	Payment  payment.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Auth           middleware.AuthRole
}

// SetupRoutes mounts the guest routes under /v1 and the operator routes
// under /v1/admin behind token and role checks.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.TripDate.Router(routerGroup)
		r.DomainHandlers.Coupon.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Payment.Router(routerGroup)

		routerGroup.Route("/admin", func(adminGroup chi.Router) {
			adminGroup.Use(r.Auth.Auth, r.Auth.RBAC)

			r.DomainHandlers.TripDate.AdminRouter(adminGroup)
			r.DomainHandlers.Coupon.AdminRouter(adminGroup)
			r.DomainHandlers.Booking.AdminRouter(adminGroup)
		})
	})
}

func New(domainHandlers DomainHandlers, auth middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Auth:           auth,
	}
}

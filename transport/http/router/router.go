package router

import (
	"github.com/go-chi/chi/v5"

	"frontdesk/internal/handlers/booking"
	"frontdesk/transport/http/middleware"
)

type DomainHandlers struct {
	Booking booking.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AppMiddleware  middleware.AppMiddleware
}

// SetupRoutes mounts the versioned API. Every domain route sits behind the
// cookie auth gate.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.AppMiddleware.Auth)

		r.DomainHandlers.Booking.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AppMiddleware:  appMiddleware,
	}
}

package router

import (
	"net/http"

	"hotelops/internal/handlers/auth"
	"hotelops/internal/handlers/booking"
	"hotelops/internal/handlers/guest"
	"hotelops/internal/handlers/health"
	"hotelops/internal/handlers/report"
	"hotelops/internal/handlers/room"
	"hotelops/internal/handlers/task"
	"hotelops/internal/handlers/user"
	"hotelops/shared/constant"
	"hotelops/shared/failure"
	"hotelops/transport/http/middleware"
	"hotelops/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth    auth.Handler
	Health  health.Handler
	User    user.Handler
	Room    room.Handler
	Guest   guest.Handler
	Booking booking.Handler
	Task    task.Handler
	Report  report.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AuthMiddleware middleware.Auth
}

// SetupRoutes mounts the public login and health endpoints and the six
// resource surfaces, each behind bearer authentication and its permission
// gate.
func (r *Router) SetupRoutes(router chi.Router) {
	router.NotFound(func(writer http.ResponseWriter, _ *http.Request) {
		response.WithError(writer, failure.NotFound("resource not found"))
	})

	r.DomainHandlers.Auth.Router(router)
	r.DomainHandlers.Health.Router(router)

	router.Group(func(protected chi.Router) {
		protected.Use(r.AuthMiddleware.Authenticate)

		r.resource(protected, constant.ResourceStaff, r.DomainHandlers.User.Router)
		r.resource(protected, constant.ResourceRooms, r.DomainHandlers.Room.Router)
		r.resource(protected, constant.ResourceGuests, r.DomainHandlers.Guest.Router)
		r.resource(protected, constant.ResourceBookings, r.DomainHandlers.Booking.Router)
		r.resource(protected, constant.ResourceTasks, r.DomainHandlers.Task.Router)
		r.resource(protected, constant.ResourceReports, r.DomainHandlers.Report.Router)
	})
}

func (r *Router) resource(router chi.Router, resource string, mount func(chi.Router)) {
	router.Group(func(gated chi.Router) {
		gated.Use(r.AuthMiddleware.RequireResource(resource))

		mount(gated)
	})
}

func New(domainHandlers DomainHandlers, authMiddleware middleware.Auth) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AuthMiddleware: authMiddleware,
	}
}

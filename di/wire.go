//go:build wireinject
// +build wireinject

package di

import (
	"hotelops/config"
	"hotelops/infras/jwt"
	"hotelops/infras/otel"
	"hotelops/infras/postgres"
	"hotelops/infras/redis"
	"hotelops/permissions"
	"hotelops/shared/cache"
	"hotelops/transport/http"
	"hotelops/transport/http/middleware"
	"hotelops/transport/http/router"

	"github.com/google/wire"

	authService "hotelops/internal/domains/auth/service"
	bookingRepository "hotelops/internal/domains/booking/repository"
	bookingService "hotelops/internal/domains/booking/service"
	guestRepository "hotelops/internal/domains/guest/repository"
	guestService "hotelops/internal/domains/guest/service"
	reportRepository "hotelops/internal/domains/report/repository"
	reportService "hotelops/internal/domains/report/service"
	roomRepository "hotelops/internal/domains/room/repository"
	roomService "hotelops/internal/domains/room/service"
	taskRepository "hotelops/internal/domains/task/repository"
	taskService "hotelops/internal/domains/task/service"
	userRepository "hotelops/internal/domains/user/repository"
	userService "hotelops/internal/domains/user/service"

	authHandler "hotelops/internal/handlers/auth"
	bookingHandler "hotelops/internal/handlers/booking"
	guestHandler "hotelops/internal/handlers/guest"
	healthHandler "hotelops/internal/handlers/health"
	reportHandler "hotelops/internal/handlers/report"
	roomHandler "hotelops/internal/handlers/room"
	taskHandler "hotelops/internal/handlers/task"
	userHandler "hotelops/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	permissions.Get,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var domains = wire.NewSet(
	authDomain,
	userService.New,
	roomRepository.New,
	roomService.New,
	guestRepository.New,
	guestService.New,
	bookingRepository.New,
	bookingService.New,
	taskRepository.New,
	taskService.New,
	reportRepository.New,
	reportService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	healthHandler.New,
	userHandler.New,
	roomHandler.New,
	guestHandler.New,
	bookingHandler.New,
	taskHandler.New,
	reportHandler.New,
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

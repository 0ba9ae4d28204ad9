package router_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelops/infras/otel/mocks"
	authDto "hotelops/internal/domains/auth/model/dto"
	bookingModel "hotelops/internal/domains/booking/model"
	bookingDto "hotelops/internal/domains/booking/model/dto"
	guestModel "hotelops/internal/domains/guest/model"
	guestDto "hotelops/internal/domains/guest/model/dto"
	reportModel "hotelops/internal/domains/report/model"
	reportDto "hotelops/internal/domains/report/model/dto"
	roomModel "hotelops/internal/domains/room/model"
	roomDto "hotelops/internal/domains/room/model/dto"
	taskModel "hotelops/internal/domains/task/model"
	taskDto "hotelops/internal/domains/task/model/dto"
	userModel "hotelops/internal/domains/user/model"
	userDto "hotelops/internal/domains/user/model/dto"
	"hotelops/internal/handlers/auth"
	"hotelops/internal/handlers/booking"
	"hotelops/internal/handlers/guest"
	"hotelops/internal/handlers/health"
	"hotelops/internal/handlers/report"
	"hotelops/internal/handlers/room"
	"hotelops/internal/handlers/task"
	"hotelops/internal/handlers/user"
	gDto "hotelops/shared/dto"
	"hotelops/transport/http/router"
)

type passthroughAuth struct{}

func (passthroughAuth) Authenticate(next http.Handler) http.Handler { return next }

func (passthroughAuth) RequireResource(string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler { return next }
}

type stubAuthService struct{}

func (stubAuthService) Login(_ context.Context, _ authDto.LoginRequest) (authDto.LoginResponse, error) {
	return authDto.LoginResponse{AccessToken: "signed-token", TokenType: "bearer"}, nil
}

type stubCrudService[M, C, R any] struct{}

func (stubCrudService[M, C, R]) Create(_ context.Context, _ C) (res R, _ error) {
	return res, nil
}

func (stubCrudService[M, C, R]) List(_ context.Context, _ gDto.QueryParams, _ gDto.FilterGroup) ([]R, error) {
	return []R{}, nil
}

func testRouter() *chi.Mux {
	otl := mocks.NewOtel()

	handlers := router.DomainHandlers{
		Auth:    auth.New(stubAuthService{}, otl),
		Health:  health.New(),
		User:    user.New(stubCrudService[userModel.User, userDto.CreateUserRequest, userDto.UserResponse]{}, otl),
		Room:    room.New(stubCrudService[roomModel.Room, roomDto.CreateRoomRequest, roomDto.RoomResponse]{}, otl),
		Guest:   guest.New(stubCrudService[guestModel.Guest, guestDto.CreateGuestRequest, guestDto.GuestResponse]{}, otl),
		Booking: booking.New(stubCrudService[bookingModel.Booking, bookingDto.CreateBookingRequest, bookingDto.BookingResponse]{}, otl),
		Task:    task.New(stubCrudService[taskModel.Task, taskDto.CreateTaskRequest, taskDto.TaskResponse]{}, otl),
		Report:  report.New(stubCrudService[reportModel.Report, reportDto.CreateReportRequest, reportDto.ReportResponse]{}, otl),
	}

	r := router.New(handlers, passthroughAuth{})

	mux := chi.NewRouter()
	r.SetupRoutes(mux)

	return mux
}

func TestSetupRoutes(t *testing.T) {
	mux := testRouter()

	t.Run("every resource surface is mounted", func(t *testing.T) {
		for _, path := range []string{"/users", "/rooms", "/guests", "/bookings", "/tasks", "/reports"} {
			recorder := httptest.NewRecorder()
			mux.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))

			assert.Equal(t, http.StatusOK, recorder.Code, path)
		}
	})

	t.Run("health endpoint is public", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		mux.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("login endpoint is public", func(t *testing.T) {
		body := `{"email":"staff@hotel.com","password":"correct-password"}`

		recorder := httptest.NewRecorder()
		mux.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body)))

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("unknown route gets a JSON not found body", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		mux.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/spa", nil))

		require.Equal(t, http.StatusNotFound, recorder.Code)

		var res map[string]string
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
		assert.Equal(t, "resource not found", res["error"])
	})
}

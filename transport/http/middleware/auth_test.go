package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotelops/infras/jwt"
	jwtMocks "hotelops/infras/jwt/mocks"
	"hotelops/infras/otel/mocks"
	userModel "hotelops/internal/domains/user/model"
	userMocks "hotelops/internal/domains/user/repository/mocks"
	"hotelops/permissions"
	"hotelops/shared/constant"
	"hotelops/transport/http/middleware"
)

func contextWithRole(request *http.Request, role string) context.Context {
	return context.WithValue(request.Context(), constant.ContextKeyUserRole, role)
}

func permissionTable() *permissions.Table {
	return &permissions.Table{
		Resources: map[string][]string{
			constant.ResourceRooms:   {constant.RoleAdmin, constant.RoleManager, constant.RoleReceptionist, constant.RoleHousekeeping},
			constant.ResourceReports: {constant.RoleAdmin, constant.RoleManager},
		},
	}
}

func TestAuthenticate(t *testing.T) {
	activeUser := userModel.User{
		ID:       5,
		Email:    "staff@hotel.com",
		Role:     userModel.RoleReceptionist,
		IsActive: true,
	}

	claims := &jwt.Claims{
		UserID:  5,
		Email:   "staff@hotel.com",
		Role:    "receptionist",
		TokenID: "token-id",
	}
	claims.Subject = "staff@hotel.com"

	newRequest := func(header string) *http.Request {
		request := httptest.NewRequest(http.MethodGet, "/rooms", nil)
		if header != "" {
			request.Header.Set(constant.RequestHeaderAuthorization, header)
		}

		return request
	}

	t.Run("valid token reaches the handler with identity on context", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockJWT := jwtMocks.NewMockJWT(ctrl)
		mockUserRepo := userMocks.NewMockUser(ctrl)

		mockJWT.EXPECT().ValidateToken("valid-token").Return(claims, nil)
		mockUserRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeUser, nil)

		auth := middleware.NewAuthMiddleware(mockJWT, mockUserRepo, mocks.NewOtel(), permissionTable())

		var handlerCalled bool
		handler := auth.Authenticate(http.HandlerFunc(func(_ http.ResponseWriter, request *http.Request) {
			handlerCalled = true

			userID, _ := request.Context().Value(constant.ContextKeyUserID).(int64)
			role, _ := request.Context().Value(constant.ContextKeyUserRole).(string)
			assert.Equal(t, int64(5), userID)
			assert.Equal(t, "receptionist", role)
		}))

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, newRequest("Bearer valid-token"))

		require.True(t, handlerCalled)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("missing header is 401", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		auth := middleware.NewAuthMiddleware(jwtMocks.NewMockJWT(ctrl), userMocks.NewMockUser(ctrl), mocks.NewOtel(), permissionTable())

		recorder := httptest.NewRecorder()
		auth.Authenticate(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			t.Fatal("handler must not run")
		})).ServeHTTP(recorder, newRequest(""))

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("rejected token is 401", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockJWT := jwtMocks.NewMockJWT(ctrl)
		mockJWT.EXPECT().ValidateToken("bad-token").Return(nil, jwt.ErrInvalidToken)

		auth := middleware.NewAuthMiddleware(mockJWT, userMocks.NewMockUser(ctrl), mocks.NewOtel(), permissionTable())

		recorder := httptest.NewRecorder()
		auth.Authenticate(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			t.Fatal("handler must not run")
		})).ServeHTTP(recorder, newRequest("Bearer bad-token"))

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("deactivated account is 401 even with a live token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		inactive := activeUser
		inactive.IsActive = false

		mockJWT := jwtMocks.NewMockJWT(ctrl)
		mockUserRepo := userMocks.NewMockUser(ctrl)

		mockJWT.EXPECT().ValidateToken("valid-token").Return(claims, nil)
		mockUserRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(inactive, nil)

		auth := middleware.NewAuthMiddleware(mockJWT, mockUserRepo, mocks.NewOtel(), permissionTable())

		recorder := httptest.NewRecorder()
		auth.Authenticate(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			t.Fatal("handler must not run")
		})).ServeHTTP(recorder, newRequest("Bearer valid-token"))

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

func TestRequireResource(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	auth := middleware.NewAuthMiddleware(jwtMocks.NewMockJWT(ctrl), userMocks.NewMockUser(ctrl), mocks.NewOtel(), permissionTable())

	serve := func(resource, role string) *httptest.ResponseRecorder {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		if role != "" {
			request = request.WithContext(contextWithRole(request, role))
		}

		recorder := httptest.NewRecorder()
		auth.RequireResource(resource)(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			writer.WriteHeader(http.StatusOK)
		})).ServeHTTP(recorder, request)

		return recorder
	}

	t.Run("allowed role passes", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, serve(constant.ResourceRooms, constant.RoleHousekeeping).Code)
		assert.Equal(t, http.StatusOK, serve(constant.ResourceReports, constant.RoleManager).Code)
	})

	t.Run("role outside the table is 403", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, serve(constant.ResourceReports, constant.RoleHousekeeping).Code)
	})

	t.Run("unknown resource is 403 for everyone", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, serve("spa", constant.RoleAdmin).Code)
	})

	t.Run("missing role is 403", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, serve(constant.ResourceRooms, "").Code)
	})
}

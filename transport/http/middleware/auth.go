package middleware

import (
	"context"
	"net/http"

	"hotelops/infras/jwt"
	"hotelops/infras/otel"
	userModel "hotelops/internal/domains/user/model"
	userRepo "hotelops/internal/domains/user/repository"
	"hotelops/permissions"
	"hotelops/shared"
	"hotelops/shared/constant"
	"hotelops/shared/failure"
	"hotelops/transport/http/response"

	"github.com/rs/zerolog/log"
)

// invalidTokenMessage covers every authentication failure the middleware can
// hit, so callers cannot distinguish a bad signature from a revoked account.
const invalidTokenMessage = "invalid or expired token"

// Auth guards protected routes: bearer token validation plus the
// role-by-resource permission gate.
type Auth interface {
	Authenticate(next http.Handler) http.Handler
	RequireResource(resource string) func(next http.Handler) http.Handler
}

type authImpl struct {
	jwtService  jwt.JWT
	userRepo    userRepo.User
	otel        otel.Otel
	permissions *permissions.Table
}

func NewAuthMiddleware(jwtService jwt.JWT, userRepo userRepo.User, otl otel.Otel, table *permissions.Table) Auth {
	return &authImpl{
		jwtService:  jwtService,
		userRepo:    userRepo,
		otel:        otl,
		permissions: table,
	}
}

// Authenticate validates the bearer token and re-reads the account so that a
// deactivated account loses access before its token expires. The account id,
// email and role are stored on the request context for downstream handlers.
func (m *authImpl) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelMiddlewareScopeName, constant.OtelMiddlewareScopeName+".Authenticate")
		defer scope.End()

		tokenString, err := jwt.ExtractTokenFromHeader(request.Header.Get(constant.RequestHeaderAuthorization))
		if err != nil {
			scope.TraceError(err)
			response.WithError(writer, failure.Unauthorized(invalidTokenMessage))

			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			scope.TraceError(err)
			response.WithError(writer, failure.Unauthorized(invalidTokenMessage))

			return
		}

		user, err := m.userRepo.Get(ctx, shared.FilterByField(userModel.TableName, userModel.FieldEmail, claims.Subject))
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to load account for token subject")
			response.WithError(writer, failure.Unauthorized(invalidTokenMessage))

			return
		}

		if user.ID == 0 || !user.IsActive {
			response.WithError(writer, failure.Unauthorized(invalidTokenMessage))

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyUserID, user.ID)
		ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, user.Email)
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, string(user.Role))
		ctx = context.WithValue(ctx, constant.ContextKeyTokenID, claims.TokenID)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// RequireResource consults the permission table for the authenticated role.
// It must run after Authenticate. A role or resource the table does not know
// is denied.
func (m *authImpl) RequireResource(resource string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			role, _ := request.Context().Value(constant.ContextKeyUserRole).(string)

			if !m.permissions.Authorize(role, resource) {
				response.WithError(writer, failure.Forbidden("not enough permissions"))

				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}

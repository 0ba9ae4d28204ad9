package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotelops/config"
	"hotelops/infras/jwt"
	"hotelops/infras/otel"
	"hotelops/internal/domains/auth/model/dto"
	userModel "hotelops/internal/domains/user/model"
	userRepo "hotelops/internal/domains/user/repository"
	"hotelops/shared"
	"hotelops/shared/constant"
	"hotelops/shared/failure"
	"hotelops/shared/password"

	"github.com/rs/zerolog/log"
)

// invalidCredentialsMessage is deliberately shared between the unknown-email
// and wrong-password paths so responses do not reveal which one failed.
const invalidCredentialsMessage = "invalid email or password"

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
}

type serviceImpl struct {
	userRepo   userRepo.User
	cfg        *config.Config
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(userRepo userRepo.User, cfg *config.Config, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		userRepo:   userRepo,
		cfg:        cfg,
		otel:       otel,
		jwtService: jwt,
	}
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.userRepo.Get(ctx, shared.FilterByField(userModel.TableName, userModel.FieldEmail, req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user by email")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == 0 {
		return res, failure.Unauthorized(invalidCredentialsMessage)
	}

	if err := password.Verify(req.Password, user.HashedPassword); err != nil {
		return res, failure.Unauthorized(invalidCredentialsMessage)
	}

	if !user.IsActive {
		return res, failure.Unauthorized("account is deactivated")
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		log.Error().Err(err).Msg("failed to generate token")

		return res, fmt.Errorf("failed to generate token: %w", err)
	}

	res.FromModel(token, user)

	return res, nil
}

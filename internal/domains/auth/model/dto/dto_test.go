package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hotelops/infras/jwt"
	"hotelops/internal/domains/auth/model/dto"
	userModel "hotelops/internal/domains/user/model"
	"hotelops/shared/validator"
)

func TestLoginRequestValidation(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		err := validator.ValidateStruct(&dto.LoginRequest{
			Email:    "staff@hotel.com",
			Password: "secret",
		})
		assert.NoError(t, err)
	})

	t.Run("missing password", func(t *testing.T) {
		err := validator.ValidateStruct(&dto.LoginRequest{Email: "staff@hotel.com"})
		assert.Error(t, err)
	})

	t.Run("malformed email", func(t *testing.T) {
		err := validator.ValidateStruct(&dto.LoginRequest{
			Email:    "not-an-email",
			Password: "secret",
		})
		assert.Error(t, err)
	})
}

func TestLoginResponseFromModel(t *testing.T) {
	var res dto.LoginResponse

	res.FromModel(&jwt.Token{AccessToken: "tok", TokenType: "bearer", ExpiresIn: 1800}, userModel.User{
		ID:             3,
		Email:          "staff@hotel.com",
		HashedPassword: "should-not-appear",
		FirstName:      "Ana",
		LastName:       "Silva",
		Role:           userModel.RoleManager,
		IsActive:       true,
	})

	assert.Equal(t, "tok", res.AccessToken)
	assert.Equal(t, "bearer", res.TokenType)
	assert.Equal(t, int64(1800), res.ExpiresIn)
	assert.Equal(t, int64(3), res.User.ID)
	assert.Equal(t, "manager", res.User.Role)
	assert.True(t, res.User.IsActive)
}

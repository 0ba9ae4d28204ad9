package dto

import (
	"hotelops/infras/jwt"
	userModel "hotelops/internal/domains/user/model"
	userDto "hotelops/internal/domains/user/model/dto"
)

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string               `json:"access_token"`
	TokenType   string               `json:"token_type"`
	ExpiresIn   int64                `json:"expires_in"`
	User        userDto.UserResponse `json:"user"`
}

func (r *LoginResponse) FromModel(token *jwt.Token, user userModel.User) {
	r.AccessToken = token.AccessToken
	r.TokenType = token.TokenType
	r.ExpiresIn = token.ExpiresIn
	r.User.FromModel(user)
}

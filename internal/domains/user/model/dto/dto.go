package dto

import (
	"context"

	"hotelops/internal/domains/user/model"
	gModel "hotelops/shared/model"
	"hotelops/shared/password"
	"hotelops/shared/timezone"
)

type CreateUserRequest struct {
	Email     string `json:"email"      validate:"required,email,max=255"`
	Password  string `json:"password"   validate:"required,min=8,max=72"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name"  validate:"required,max=100"`
	Role      string `json:"role"       validate:"required,oneof=admin manager receptionist housekeeping"`
}

// ToModel hashes the password and marks the account active. The plaintext
// never leaves this function.
func (c *CreateUserRequest) ToModel(_ context.Context) (model.User, error) {
	hashed, err := password.Hash(c.Password)
	if err != nil {
		return model.User{}, err
	}

	now := timezone.Now()

	return model.User{
		Email:          c.Email,
		HashedPassword: hashed,
		FirstName:      c.FirstName,
		LastName:       c.LastName,
		Role:           model.Role(c.Role),
		IsActive:       true,
		Metadata: gModel.Metadata{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}, nil
}

type UserResponse struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
	IsActive  bool   `json:"is_active"`
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Email = model.Email
	r.FirstName = model.FirstName
	r.LastName = model.LastName
	r.Role = string(model.Role)
	r.IsActive = model.IsActive
}

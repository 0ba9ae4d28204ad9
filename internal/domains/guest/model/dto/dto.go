package dto

import (
	"context"
	"time"

	"hotelops/internal/domains/guest/model"
	"hotelops/shared/constant"
	"hotelops/shared/failure"
	gModel "hotelops/shared/model"
	"hotelops/shared/timezone"
)

type CreateGuestRequest struct {
	FirstName   string  `json:"first_name"    validate:"required,max=100"`
	LastName    string  `json:"last_name"     validate:"required,max=100"`
	Email       string  `json:"email"         validate:"required,email,max=255"`
	Phone       string  `json:"phone"         validate:"required,max=20"`
	Address     *string `json:"address"       validate:"omitempty"`
	IDNumber    string  `json:"id_number"     validate:"required,max=50"`
	DateOfBirth *string `json:"date_of_birth" validate:"omitempty"`
	Nationality *string `json:"nationality"   validate:"omitempty,max=50"`
}

func (c *CreateGuestRequest) ToModel(_ context.Context) (model.Guest, error) {
	var dateOfBirth *time.Time

	if c.DateOfBirth != nil {
		parsed, err := timezone.Parse(constant.DateFormat, *c.DateOfBirth)
		if err != nil {
			return model.Guest{}, failure.BadRequestFromString("date_of_birth must be a valid RFC3339 timestamp")
		}

		dateOfBirth = &parsed
	}

	now := timezone.Now()

	return model.Guest{
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Email:       c.Email,
		Phone:       c.Phone,
		Address:     c.Address,
		IDNumber:    c.IDNumber,
		DateOfBirth: dateOfBirth,
		Nationality: c.Nationality,
		VIPStatus:   false,
		Metadata: gModel.Metadata{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}, nil
}

type GuestResponse struct {
	ID          int64   `json:"id"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Address     *string `json:"address"`
	IDNumber    string  `json:"id_number"`
	DateOfBirth *string `json:"date_of_birth"`
	Nationality *string `json:"nationality"`
	VIPStatus   bool    `json:"vip_status"`
	CreatedAt   string  `json:"created_at"`
}

func (r *GuestResponse) FromModel(model model.Guest) {
	r.ID = model.ID
	r.FirstName = model.FirstName
	r.LastName = model.LastName
	r.Email = model.Email
	r.Phone = model.Phone
	r.Address = model.Address
	r.IDNumber = model.IDNumber
	r.Nationality = model.Nationality
	r.VIPStatus = model.VIPStatus
	r.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)

	if model.DateOfBirth != nil {
		formatted := timezone.Format(*model.DateOfBirth, constant.DateFormat)
		r.DateOfBirth = &formatted
	}
}

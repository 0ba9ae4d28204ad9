package dto

import (
	"context"

	"hotelops/internal/domains/booking/model"
	"hotelops/shared/constant"
	"hotelops/shared/failure"
	gModel "hotelops/shared/model"
	"hotelops/shared/timezone"
)

type CreateBookingRequest struct {
	GuestID         int64   `json:"guest_id"         validate:"required,gt=0"`
	RoomID          int64   `json:"room_id"          validate:"required,gt=0"`
	CheckInDate     string  `json:"check_in_date"    validate:"required"`
	CheckOutDate    string  `json:"check_out_date"   validate:"required"`
	TotalAmount     float64 `json:"total_amount"     validate:"required,gt=0"`
	NumberOfGuests  *int    `json:"number_of_guests" validate:"omitempty,min=1"`
	SpecialRequests *string `json:"special_requests" validate:"omitempty"`
}

// ToModel stamps the authenticated staff account as the creator and applies
// the confirmed/unpaid/single-guest defaults.
func (c *CreateBookingRequest) ToModel(ctx context.Context) (model.Booking, error) {
	createdBy, ok := ctx.Value(constant.ContextKeyUserID).(int64)
	if !ok {
		return model.Booking{}, failure.Unauthorized("missing authenticated account")
	}

	checkIn, err := timezone.Parse(constant.DateFormat, c.CheckInDate)
	if err != nil {
		return model.Booking{}, failure.BadRequestFromString("check_in_date must be a valid RFC3339 timestamp")
	}

	checkOut, err := timezone.Parse(constant.DateFormat, c.CheckOutDate)
	if err != nil {
		return model.Booking{}, failure.BadRequestFromString("check_out_date must be a valid RFC3339 timestamp")
	}

	numberOfGuests := 1
	if c.NumberOfGuests != nil {
		numberOfGuests = *c.NumberOfGuests
	}

	now := timezone.Now()

	return model.Booking{
		GuestID:         c.GuestID,
		RoomID:          c.RoomID,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		Status:          model.BookingStatusConfirmed,
		TotalAmount:     c.TotalAmount,
		PaidAmount:      0,
		NumberOfGuests:  numberOfGuests,
		SpecialRequests: c.SpecialRequests,
		CreatedBy:       createdBy,
		Metadata: gModel.Metadata{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}, nil
}

type BookingResponse struct {
	ID              int64   `json:"id"`
	GuestID         int64   `json:"guest_id"`
	RoomID          int64   `json:"room_id"`
	CheckInDate     string  `json:"check_in_date"`
	CheckOutDate    string  `json:"check_out_date"`
	Status          string  `json:"status"`
	TotalAmount     float64 `json:"total_amount"`
	PaidAmount      float64 `json:"paid_amount"`
	NumberOfGuests  int     `json:"number_of_guests"`
	SpecialRequests *string `json:"special_requests"`
	CreatedBy       int64   `json:"created_by"`
	CreatedAt       string  `json:"created_at"`
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.GuestID = model.GuestID
	r.RoomID = model.RoomID
	r.CheckInDate = timezone.Format(model.CheckInDate, constant.DateFormat)
	r.CheckOutDate = timezone.Format(model.CheckOutDate, constant.DateFormat)
	r.Status = string(model.Status)
	r.TotalAmount = model.TotalAmount
	r.PaidAmount = model.PaidAmount
	r.NumberOfGuests = model.NumberOfGuests
	r.SpecialRequests = model.SpecialRequests
	r.CreatedBy = model.CreatedBy
	r.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)
}

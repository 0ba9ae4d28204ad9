package dto

import (
	"context"
	"time"

	"hotelops/internal/domains/room/model"
	"hotelops/shared/constant"
	gModel "hotelops/shared/model"
	"hotelops/shared/timezone"
)

type CreateRoomRequest struct {
	RoomNumber    string  `json:"room_number"     validate:"required,max=10"`
	RoomType      string  `json:"room_type"       validate:"required,oneof=standard deluxe suite presidential"`
	PricePerNight float64 `json:"price_per_night" validate:"required,gt=0"`
	Floor         *int    `json:"floor"           validate:"required,min=0"`
	Amenities     *string `json:"amenities"       validate:"omitempty"`
}

// ToModel marks every new room available.
func (c *CreateRoomRequest) ToModel(_ context.Context) (model.Room, error) {
	now := timezone.Now()

	return model.Room{
		RoomNumber:    c.RoomNumber,
		RoomType:      model.RoomType(c.RoomType),
		Status:        model.RoomStatusAvailable,
		PricePerNight: c.PricePerNight,
		Floor:         *c.Floor,
		Amenities:     c.Amenities,
		Metadata: gModel.Metadata{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}, nil
}

type RoomResponse struct {
	ID              int64   `json:"id"`
	RoomNumber      string  `json:"room_number"`
	RoomType        string  `json:"room_type"`
	Status          string  `json:"status"`
	PricePerNight   float64 `json:"price_per_night"`
	Floor           int     `json:"floor"`
	Amenities       *string `json:"amenities"`
	LastCleaned     *string `json:"last_cleaned"`
	NextMaintenance *string `json:"next_maintenance"`
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.RoomNumber = model.RoomNumber
	r.RoomType = string(model.RoomType)
	r.Status = string(model.Status)
	r.PricePerNight = model.PricePerNight
	r.Floor = model.Floor
	r.Amenities = model.Amenities
	r.LastCleaned = formatTime(model.LastCleaned)
	r.NextMaintenance = formatTime(model.NextMaintenance)
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}

	formatted := timezone.Format(*t, constant.DateFormat)

	return &formatted
}

package model

import (
	"time"

	"hotelops/shared/model"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID              = "id"
	FieldRoomNumber      = "room_number"
	FieldRoomType        = "room_type"
	FieldStatus          = "status"
	FieldPricePerNight   = "price_per_night"
	FieldFloor           = "floor"
	FieldAmenities       = "amenities"
	FieldLastCleaned     = "last_cleaned"
	FieldNextMaintenance = "next_maintenance"
)

type RoomType string

const (
	RoomTypeStandard     RoomType = "standard"
	RoomTypeDeluxe       RoomType = "deluxe"
	RoomTypeSuite        RoomType = "suite"
	RoomTypePresidential RoomType = "presidential"
)

type RoomStatus string

const (
	RoomStatusAvailable   RoomStatus = "available"
	RoomStatusOccupied    RoomStatus = "occupied"
	RoomStatusCleaning    RoomStatus = "cleaning"
	RoomStatusMaintenance RoomStatus = "maintenance"
)

type Room struct {
	ID              int64      `db:"id"`
	RoomNumber      string     `db:"room_number"`
	RoomType        RoomType   `db:"room_type"`
	Status          RoomStatus `db:"status"`
	PricePerNight   float64    `db:"price_per_night"`
	Floor           int        `db:"floor"`
	Amenities       *string    `db:"amenities"`
	LastCleaned     *time.Time `db:"last_cleaned"`
	NextMaintenance *time.Time `db:"next_maintenance"`
	model.Metadata
}

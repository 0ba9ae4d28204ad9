package model

import (
	"time"

	"hotelops/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID              = "id"
	FieldGuestID         = "guest_id"
	FieldRoomID          = "room_id"
	FieldCheckInDate     = "check_in_date"
	FieldCheckOutDate    = "check_out_date"
	FieldStatus          = "status"
	FieldTotalAmount     = "total_amount"
	FieldPaidAmount      = "paid_amount"
	FieldNumberOfGuests  = "number_of_guests"
	FieldSpecialRequests = "special_requests"
	FieldCreatedBy       = "created_by"
)

type BookingStatus string

const (
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusCheckedIn  BookingStatus = "checked_in"
	BookingStatusCheckedOut BookingStatus = "checked_out"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

type Booking struct {
	ID              int64         `db:"id"`
	GuestID         int64         `db:"guest_id"`
	RoomID          int64         `db:"room_id"`
	CheckInDate     time.Time     `db:"check_in_date"`
	CheckOutDate    time.Time     `db:"check_out_date"`
	Status          BookingStatus `db:"status"`
	TotalAmount     float64       `db:"total_amount"`
	PaidAmount      float64       `db:"paid_amount"`
	NumberOfGuests  int           `db:"number_of_guests"`
	SpecialRequests *string       `db:"special_requests"`
	CreatedBy       int64         `db:"created_by"`
	model.Metadata
}

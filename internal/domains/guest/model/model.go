package model

import (
	"time"

	"hotelops/shared/model"
)

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldID          = "id"
	FieldFirstName   = "first_name"
	FieldLastName    = "last_name"
	FieldEmail       = "email"
	FieldPhone       = "phone"
	FieldAddress     = "address"
	FieldIDNumber    = "id_number"
	FieldDateOfBirth = "date_of_birth"
	FieldNationality = "nationality"
	FieldVIPStatus   = "vip_status"
)

type Guest struct {
	ID          int64      `db:"id"`
	FirstName   string     `db:"first_name"`
	LastName    string     `db:"last_name"`
	Email       string     `db:"email"`
	Phone       string     `db:"phone"`
	Address     *string    `db:"address"`
	IDNumber    string     `db:"id_number"`
	DateOfBirth *time.Time `db:"date_of_birth"`
	Nationality *string    `db:"nationality"`
	VIPStatus   bool       `db:"vip_status"`
	model.Metadata
}

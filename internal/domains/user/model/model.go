package model

import (
	"hotelops/shared/constant"
	"hotelops/shared/model"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID             = "id"
	FieldEmail          = "email"
	FieldHashedPassword = "hashed_password"
	FieldFirstName      = "first_name"
	FieldLastName       = "last_name"
	FieldRole           = "role"
	FieldIsActive       = "is_active"
)

// Role is the closed set of staff roles the permission gate recognizes.
type Role string

const (
	RoleAdmin        Role = constant.RoleAdmin
	RoleManager      Role = constant.RoleManager
	RoleReceptionist Role = constant.RoleReceptionist
	RoleHousekeeping Role = constant.RoleHousekeeping
)

type User struct {
	ID             int64  `db:"id"`
	Email          string `db:"email"`
	HashedPassword string `db:"hashed_password"`
	FirstName      string `db:"first_name"`
	LastName       string `db:"last_name"`
	Role           Role   `db:"role"`
	IsActive       bool   `db:"is_active"`
	model.Metadata
}

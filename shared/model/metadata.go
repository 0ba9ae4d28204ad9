package model

import "time"

// Metadata carries the server-assigned timestamps every entity row gets at
// creation. UpdatedAt refreshes on every mutation.
type Metadata struct {
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

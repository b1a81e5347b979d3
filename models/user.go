package models

import "github.com/google/uuid"

// User is the snapshot returned by the User Service. Timestamps are kept as
// strings so odd upstream formats never fail the decode.
type User struct {
	UserID    uuid.UUID `json:"user_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt string    `json:"created_at,omitempty"`
	UpdatedAt string    `json:"updated_at,omitempty"`
}

// Address is the snapshot returned by the User Service.
type Address struct {
	AddressID  uuid.UUID `json:"address_id"`
	Street     string    `json:"street"`
	City       string    `json:"city"`
	State      string    `json:"state,omitempty"`
	PostalCode string    `json:"postal_code"`
	Country    string    `json:"country,omitempty"`
}

// Preference holds a user's language/currency settings. A user may have no
// preference record at all; callers represent that as a nil *Preference.
type Preference struct {
	UserID   uuid.UUID `json:"user_id"`
	Language *string   `json:"language,omitempty"`
	Currency *string   `json:"currency,omitempty"`
}

// UserAddress is the mapping row linking a user to an address.
type UserAddress struct {
	UserID uuid.UUID `json:"user_id"`
	AddrID uuid.UUID `json:"addr_id"`
}

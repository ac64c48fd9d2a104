package models

import "time"

// User is a chat-platform user known to the service.
// ExternalID is the platform-issued identity and never changes once stored.
type User struct {
	ID         int       `json:"id" db:"id"`
	ExternalID string    `json:"external_id" db:"external_id"`
	Bedtime    *string   `json:"bedtime" db:"bedtime"` // HH:MM, null when unset
	CreatedAt  time.Time `json:"-" db:"created_at"`
	UpdatedAt  time.Time `json:"-" db:"updated_at"`
}

// UpsertUserRequest is the POST /api/user body.
// A missing bedtime clears the stored value.
type UpsertUserRequest struct {
	ExternalID string  `json:"external_id"`
	Bedtime    *string `json:"bedtime"`
}

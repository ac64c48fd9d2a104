package models

import "time"

const MaxIntentionTextLen = 512

// Intention is an append-only statement of intent. Timestamp is UTC.
type Intention struct {
	ID        int       `json:"id" db:"id"`
	UserID    int       `json:"user_id" db:"user_id"`
	Text      string    `json:"text" db:"text"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
}

type CreateIntentionRequest struct {
	ExternalID string `json:"external_id"`
	Text       string `json:"text"`
}

type CreateIntentionResponse struct {
	Message     string `json:"message"`
	IntentionID int    `json:"intention_id"`
}

// IntentionResponse is the wire shape of the latest intention
type IntentionResponse struct {
	ID        int    `json:"id"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
	UserID    int    `json:"user_id"`
}

// TimestampLayout renders UTC timestamps as ISO-8601 with microseconds.
const TimestampLayout = "2006-01-02T15:04:05.000000Z07:00"

func (i Intention) Response() IntentionResponse {
	return IntentionResponse{
		ID:        i.ID,
		Text:      i.Text,
		Timestamp: i.Timestamp.UTC().Format(TimestampLayout),
		UserID:    i.UserID,
	}
}

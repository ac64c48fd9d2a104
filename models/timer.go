package models

// TimerResponse is the GET /api/timer/{external_id} body
type TimerResponse struct {
	ExternalID          string `json:"external_id"`
	NextPromptInSeconds int    `json:"next_prompt_in_seconds"`
}

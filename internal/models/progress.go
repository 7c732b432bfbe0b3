package models

import "time"

// AttemptRequest is the decoded body of a progress submission. Pointer fields
// distinguish an absent value from a zero value.
type AttemptRequest struct {
	Word       *string `json:"word"`
	Difficulty *string `json:"difficulty"`
	Score      *int    `json:"score"`
}

// Attempt is a validated attempt ready to be recorded.
type Attempt struct {
	Word       string `json:"word"`
	Difficulty string `json:"difficulty"`
	Score      int    `json:"score"`
}

// ProgressEntry is one row of the append-only progress log.
type ProgressEntry struct {
	ID          int64     `json:"id"`
	Word        string    `json:"word"`
	Difficulty  string    `json:"difficulty"`
	Score       int       `json:"score"`
	CompletedAt time.Time `json:"completed_at"`
}

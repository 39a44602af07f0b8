package response

import "time"

type IncidentResponse struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	FailureCount    int        `json:"failure_count"`
	ErrorMessage    *string    `json:"error_message,omitempty"`
	StartedAt       time.Time  `json:"started_at"`
	ResolvedAt      *time.Time `json:"resolved_at,omitempty"`
	DurationSeconds *int64     `json:"duration_seconds,omitempty"`
}

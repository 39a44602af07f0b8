package response

import "time"

type CheckResultResponse struct {
	ID             string    `json:"id"`
	Status         string    `json:"status"`
	StatusCode     *int      `json:"status_code,omitempty"`
	ResponseTimeMs *int64    `json:"response_time_ms,omitempty"`
	ErrorKind      *string   `json:"error_kind,omitempty"`
	ErrorMessage   *string   `json:"error_message,omitempty"`
	CheckedAt      time.Time `json:"checked_at"`
}

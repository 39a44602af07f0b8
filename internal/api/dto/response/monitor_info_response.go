package response

import "time"

type MonitorInfoResponse struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	URL           string     `json:"url"`
	Method        string     `json:"method"`
	CheckInterval int        `json:"check_interval"`
	Timeout       int        `json:"timeout"`
	IsActive      bool       `json:"is_active"`
	IsPublic      bool       `json:"is_public"`
	CurrentStatus string     `json:"current_status"`
	LastCheckedAt *time.Time `json:"last_checked_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

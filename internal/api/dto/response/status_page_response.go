package response

import "time"

type StatusPageResponse struct {
	AccountName string                      `json:"account_name"`
	Monitors    []StatusPageMonitorResponse `json:"monitors"`
}

type StatusPageMonitorResponse struct {
	ID                   string                `json:"id"`
	Name                 string                `json:"name"`
	Status               string                `json:"status"`
	LastCheckedAt        *time.Time            `json:"last_checked_at,omitempty"`
	LatestResponseTimeMs *int64                `json:"latest_response_time_ms,omitempty"`
	Uptime24h            float64               `json:"uptime_24h"`
	DailyUptime          []DailyUptimeResponse `json:"daily_uptime"`
	RecentIncidents      []IncidentResponse    `json:"recent_incidents"`
}

type DailyUptimeResponse struct {
	Day              string  `json:"day"`
	TotalChecks      int64   `json:"total_checks"`
	UptimePercentage float64 `json:"uptime_percentage"`
}

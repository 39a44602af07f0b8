package response

type UptimeResponse struct {
	UptimePercentage float64 `json:"uptime_percentage"`
}

package request

type UpdateMonitorRequest struct {
	Name          string `json:"name"`
	URL           string `json:"url" binding:"omitempty,url"`
	Method        string `json:"method" binding:"omitempty,oneof=GET HEAD"`
	CheckInterval *int   `json:"check_interval" binding:"omitempty,gte=1"`
	Timeout       *int   `json:"timeout" binding:"omitempty,gte=1"`
	IsActive      *bool  `json:"is_active"`
	IsPublic      *bool  `json:"is_public"`
}

package request

type MonitorRequest struct {
	Name          string `json:"name" binding:"required"`
	URL           string `json:"url" binding:"required,url"`
	Method        string `json:"method" binding:"required,oneof=GET HEAD"`
	CheckInterval *int   `json:"check_interval" binding:"required,gte=1"`
	Timeout       *int   `json:"timeout" binding:"required,gte=1"`
	IsPublic      bool   `json:"is_public"`
}

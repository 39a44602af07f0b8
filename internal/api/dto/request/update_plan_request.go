package request

type UpdatePlanRequest struct {
	AccountID string `json:"account_id" binding:"required"`
	Plan      string `json:"plan" binding:"required,oneof=free pro business"`
}

package routes

import (
	"github.com/gin-gonic/gin"

	"statusping/internal/api/handler"
	"statusping/pkg/middleware"
)

const ScopeAccountsUpdate = "accounts:update"

func AddAccountRoutes(r *gin.Engine, handler handler.AccountHandler, m middleware.AuthMiddleware) {
	accountRoutes := r.Group("/accounts", m.ValidateAndExtractJwt())
	accountRoutes.PUT("/plan", m.CheckUserPermission(ScopeAccountsUpdate), handler.UpdateAccountPlan())
}

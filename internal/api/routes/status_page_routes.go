package routes

import (
	"github.com/gin-gonic/gin"

	"statusping/internal/api/handler"
)

// Status pages are public; no authentication middleware on this route.
func AddStatusPageRoutes(r *gin.Engine, handler handler.StatusPageHandler) {
	r.GET("/status/:slug", handler.GetStatusPage())
}

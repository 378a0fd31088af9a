package router

import (
	"github.com/gin-gonic/gin"

	"tokensmith.app/forge/internal/http/handler"
)

// GoldenExampleRouter mounts the admin routes; the caller applies the
// admin key middleware to rg.
func GoldenExampleRouter(rg *gin.RouterGroup, h *handler.GoldenExampleHandler) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.POST("/:id/activate", h.Activate)
	rg.POST("/:id/deactivate", h.Deactivate)
}

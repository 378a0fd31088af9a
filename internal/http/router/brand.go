package router

import (
	"github.com/gin-gonic/gin"

	"tokensmith.app/forge/internal/http/handler"
)

func BrandRouter(rg *gin.RouterGroup, h *handler.BrandHandler) {
	rg.POST("/derive", h.Derive)
	rg.POST("/prompt", h.Prompt)
	rg.POST("/generate", h.Generate)
	rg.POST("/validate", h.Validate)
	rg.POST("/css", h.CSS)
}

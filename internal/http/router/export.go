package router

import (
	"github.com/gin-gonic/gin"

	"tokensmith.app/forge/internal/http/handler"
)

func ExportRouter(rg *gin.RouterGroup, h *handler.ExportHandler) {
	rg.GET("", h.Formats)
	rg.POST("/:format", h.Export)
}

package router

import (
	"github.com/gin-gonic/gin"

	"tokensmith.app/forge/internal/http/handler"
)

func ProfileRouter(rg *gin.RouterGroup, h *handler.ProfileHandler) {
	rg.GET("", h.List)
}

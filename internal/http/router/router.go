package router

import (
	"github.com/gin-gonic/gin"

	"tokensmith.app/forge/internal/http/handler"
	"tokensmith.app/forge/internal/http/middleware"
	"tokensmith.app/forge/internal/service"
)

type RouterConfig struct {
	AdminAPIKey     string
	MaxRequestBytes int64
}

func SetupRoutes(router *gin.Engine, services *service.Services, cfg RouterConfig) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	v1.Use(middleware.BodyLimit(cfg.MaxRequestBytes))
	{
		ProfileRouter(v1.Group("/profiles"), handler.NewProfileHandler())

		brandHandler := handler.NewBrandHandler(services.Brand())
		BrandRouter(v1.Group("/brand"), brandHandler)

		exportHandler := handler.NewExportHandler(services.Exports())
		ExportRouter(v1.Group("/exports"), exportHandler)

		admin := v1.Group("/admin")
		admin.Use(middleware.RequireAdminAPIKey(cfg.AdminAPIKey))
		goldenHandler := handler.NewGoldenExampleHandler(services.GoldenExamples())
		GoldenExampleRouter(admin.Group("/golden-examples"), goldenHandler)
	}
}

package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"tokensmith.app/forge/common"
	"tokensmith.app/forge/internal/http/dto"
	"tokensmith.app/forge/internal/service"
)

type ExportHandler struct {
	exportService service.ExportService
}

func NewExportHandler(exportService service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

func (h *ExportHandler) Formats(c *gin.Context) {
	c.JSON(http.StatusOK, dto.FormatsResponse{Formats: h.exportService.Formats()})
}

// Export renders one format. With ?bundle=zip the files are returned as a
// zip attachment instead of JSON.
func (h *ExportHandler) Export(c *gin.Context) {
	ctx := c.Request.Context()
	format := c.Param("format")

	var req dto.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	result, err := h.exportService.Export(ctx, format, req.Tokens, req.Options)
	if err != nil {
		respondError(c, err, "failed to generate export")
		return
	}

	switch c.Query("bundle") {
	case "":
		c.JSON(http.StatusOK, result)
	case "zip":
		data, err := h.exportService.Bundle(result)
		if err != nil {
			respondError(c, err, "failed to bundle export")
			return
		}
		name := fmt.Sprintf("%s-%s.zip", common.BrandSlug(result.Metadata.BrandName), result.Format)
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
		c.Data(http.StatusOK, "application/zip", data)
		slog.InfoContext(ctx, "export bundled", "format", format, "bytes", len(data))
	default:
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "bundle must be zip", Code: "invalid_option"})
	}
}

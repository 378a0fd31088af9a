package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"tokensmith.app/forge/internal/export"
	"tokensmith.app/forge/internal/http/dto"
	"tokensmith.app/forge/internal/service"
	"tokensmith.app/forge/internal/store"
)

// respondError maps domain errors to status codes. Anything unrecognised is
// logged and reported as a 500 carrying msg.
func respondError(c *gin.Context, err error, msg string) {
	status, code := http.StatusInternalServerError, ""
	switch {
	case errors.Is(err, service.ErrMissingCompanyName):
		status, code = http.StatusBadRequest, "missing_company_name"
	case errors.Is(err, service.ErrNilTokens), errors.Is(err, export.ErrNilTokens):
		status, code = http.StatusBadRequest, "missing_tokens"
	case errors.Is(err, service.ErrInvalidOption):
		status, code = http.StatusBadRequest, "invalid_option"
	case errors.Is(err, export.ErrUnknownFormat):
		status, code = http.StatusNotFound, "unknown_format"
	case errors.Is(err, export.ErrUnknownTemplate):
		status, code = http.StatusBadRequest, "unknown_template"
	case errors.Is(err, export.ErrUnknownSlide):
		status, code = http.StatusBadRequest, "unknown_slide"
	case errors.Is(err, store.ErrNotFound):
		status, code = http.StatusNotFound, "not_found"
	}

	if status == http.StatusInternalServerError {
		slog.ErrorContext(c.Request.Context(), msg, "error", err)
		c.JSON(status, dto.ErrorResponse{Error: msg})
		return
	}
	c.JSON(status, dto.ErrorResponse{Error: err.Error(), Code: code})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request: " + err.Error(), Code: "invalid_request"})
}

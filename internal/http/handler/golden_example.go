package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tokensmith.app/forge/internal/http/dto"
	"tokensmith.app/forge/internal/service"
)

type GoldenExampleHandler struct {
	examples service.GoldenExampleService
}

// NewGoldenExampleHandler accepts a nil service; every route then answers 503.
func NewGoldenExampleHandler(examples service.GoldenExampleService) *GoldenExampleHandler {
	return &GoldenExampleHandler{examples: examples}
}

func (h *GoldenExampleHandler) available(c *gin.Context) bool {
	if h.examples == nil {
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: "golden examples require a database", Code: "unavailable"})
		return false
	}
	return true
}

func (h *GoldenExampleHandler) Create(c *gin.Context) {
	if !h.available(c) {
		return
	}
	var req dto.CreateGoldenExampleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	ex, err := h.examples.Create(c.Request.Context(), service.CreateGoldenExampleParams{
		Name:         req.Name,
		Industry:     req.Industry,
		ColorMood:    req.ColorMood,
		Description:  req.Description,
		Tokens:       req.Tokens,
		QualityScore: req.QualityScore,
		Supersede:    req.Supersede,
	})
	if err != nil {
		respondError(c, err, "failed to create golden example")
		return
	}
	c.JSON(http.StatusCreated, dto.ToGoldenExampleResponse(ex, true))
}

func (h *GoldenExampleHandler) List(c *gin.Context) {
	if !h.available(c) {
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	examples, err := h.examples.List(c.Request.Context(), int32(limit), int32(offset))
	if err != nil {
		respondError(c, err, "failed to list golden examples")
		return
	}

	resp := dto.ListGoldenExamplesResponse{Examples: make([]dto.GoldenExampleResponse, len(examples))}
	for i := range examples {
		resp.Examples[i] = dto.ToGoldenExampleResponse(&examples[i], false)
	}
	c.JSON(http.StatusOK, resp)
}

func (h *GoldenExampleHandler) Activate(c *gin.Context) {
	h.setActive(c, true)
}

func (h *GoldenExampleHandler) Deactivate(c *gin.Context) {
	h.setActive(c, false)
}

func (h *GoldenExampleHandler) setActive(c *gin.Context, active bool) {
	if !h.available(c) {
		return
	}
	exampleID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid golden example id", Code: "invalid_request"})
		return
	}

	toggle, action := h.examples.Deactivate, "deactivate"
	if active {
		toggle, action = h.examples.Activate, "activate"
	}
	ex, err := toggle(c.Request.Context(), exampleID)
	if err != nil {
		respondError(c, err, "failed to "+action+" golden example")
		return
	}
	c.JSON(http.StatusOK, dto.ToGoldenExampleResponse(ex, false))
}

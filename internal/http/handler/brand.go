package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tokensmith.app/forge/internal/http/dto"
	"tokensmith.app/forge/internal/model"
	"tokensmith.app/forge/internal/service"
)

type BrandHandler struct {
	brandService service.BrandService
}

func NewBrandHandler(brandService service.BrandService) *BrandHandler {
	return &BrandHandler{brandService: brandService}
}

func (h *BrandHandler) Derive(c *gin.Context) {
	var req dto.BrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	derived, err := h.brandService.Derive(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "failed to derive design decisions")
		return
	}
	c.JSON(http.StatusOK, derived)
}

func (h *BrandHandler) Prompt(c *gin.Context) {
	var req dto.BrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	res, err := h.brandService.BuildPrompt(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "failed to build prompt")
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *BrandHandler) Generate(c *gin.Context) {
	var req dto.BrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	res, err := h.brandService.Generate(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "failed to generate brand system")
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *BrandHandler) Validate(c *gin.Context) {
	var req dto.TokensRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	report, err := h.brandService.Validate(req.Tokens)
	if err != nil {
		respondError(c, err, "failed to validate tokens")
		return
	}
	c.JSON(http.StatusOK, report)
}

// CSS renders custom properties. mode=light or mode=dark returns one :root
// block; no mode, or mode=both, returns the full light and dark stylesheet.
func (h *BrandHandler) CSS(c *gin.Context) {
	var req dto.TokensRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	mode := model.ColorMode(c.Query("mode"))
	var (
		css string
		err error
	)
	switch mode {
	case "", model.ColorModeBoth:
		css, err = h.brandService.FullCSS(req.Tokens)
	case model.ColorModeLight, model.ColorModeDark:
		theme, perr := h.brandService.Preview(req.Tokens, mode)
		css, err = theme.Block(":root"), perr
	default:
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "mode must be light, dark or both", Code: "invalid_option"})
		return
	}
	if err != nil {
		respondError(c, err, "failed to render css")
		return
	}
	c.Data(http.StatusOK, "text/css; charset=utf-8", []byte(css))
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tokensmith.app/forge/internal/http/dto"
	"tokensmith.app/forge/internal/profile"
)

type ProfileHandler struct{}

func NewProfileHandler() *ProfileHandler {
	return &ProfileHandler{}
}

// List returns the static industry, personality and audience tables.
func (h *ProfileHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ProfilesResponse{
		Industries:    profile.Industries(),
		Personalities: profile.Personalities(),
		Audiences:     profile.Audiences(),
	})
}

package dto

import (
	"tokensmith.app/forge/internal/export"
	"tokensmith.app/forge/internal/model"
)

// BrandRequest is the discovery brief. Field validation comes from the
// binding tags on model.DiscoveryInputs.
type BrandRequest = model.DiscoveryInputs

type TokensRequest struct {
	Tokens *model.BrandSystem `json:"tokens" binding:"required"`
}

type ExportRequest struct {
	Tokens  *model.BrandSystem `json:"tokens" binding:"required"`
	Options export.Options     `json:"options"`
}

type FormatsResponse struct {
	Formats []string `json:"formats"`
}

type ProfilesResponse struct {
	Industries    []model.IndustryProfile    `json:"industries"`
	Personalities []model.PersonalityMapping `json:"personalities"`
	Audiences     []model.AudienceProfile    `json:"audiences"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

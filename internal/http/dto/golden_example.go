package dto

import (
	"encoding/json"
	"time"

	"tokensmith.app/forge/internal/model"
)

type CreateGoldenExampleRequest struct {
	Name         string          `json:"name" binding:"required,min=1,max=200"`
	Industry     string          `json:"industry" binding:"required,min=1,max=200"`
	ColorMood    model.ColorMood `json:"color_mood" binding:"omitempty,oneof=warm cool neutral"`
	Description  string          `json:"description" binding:"max=2000"`
	Tokens       json.RawMessage `json:"tokens" binding:"required"`
	QualityScore int             `json:"quality_score" binding:"min=0,max=100"`
	Supersede    bool            `json:"supersede"`
}

type GoldenExampleResponse struct {
	ID           int64           `json:"id,string"`
	Name         string          `json:"name"`
	Industry     string          `json:"industry"`
	ColorMood    model.ColorMood `json:"color_mood,omitempty"`
	Description  string          `json:"description,omitempty"`
	QualityScore int             `json:"quality_score"`
	IsActive     bool            `json:"is_active"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	Tokens       json.RawMessage `json:"tokens,omitempty"`
}

type ListGoldenExamplesResponse struct {
	Examples []GoldenExampleResponse `json:"examples"`
}

// ToGoldenExampleResponse omits the token tree unless withTokens is set;
// list pages stay small.
func ToGoldenExampleResponse(ex *model.GoldenExample, withTokens bool) GoldenExampleResponse {
	resp := GoldenExampleResponse{
		ID:           ex.ID,
		Name:         ex.Name,
		Industry:     ex.Industry,
		ColorMood:    ex.ColorMood,
		Description:  ex.Description,
		QualityScore: ex.QualityScore,
		IsActive:     ex.IsActive,
		CreatedAt:    ex.CreatedAt,
		UpdatedAt:    ex.UpdatedAt,
	}
	if withTokens {
		resp.Tokens = ex.Tokens
	}
	return resp
}

package model

import (
	"encoding/json"
	"time"
)

// GoldenExample is a curated past generation used as few-shot context.
type GoldenExample struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Industry     string          `json:"industry"`
	ColorMood    ColorMood       `json:"color_mood,omitempty"`
	Description  string          `json:"description,omitempty"`
	Tokens       json.RawMessage `json:"tokens"`
	QualityScore int             `json:"quality_score"`
	IsActive     bool            `json:"is_active"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// GoldenExampleFilter narrows the active examples considered for a prompt.
// Empty fields match everything.
type GoldenExampleFilter struct {
	Industry  string
	ColorMood ColorMood
	Limit     int
}

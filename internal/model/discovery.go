package model

import "strings"

type ColorMood string

const (
	ColorMoodWarm    ColorMood = "warm"
	ColorMoodCool    ColorMood = "cool"
	ColorMoodNeutral ColorMood = "neutral"
)

func (m ColorMood) Valid() bool {
	switch m {
	case ColorMoodWarm, ColorMoodCool, ColorMoodNeutral:
		return true
	}
	return false
}

type ColorBrightness string

const (
	ColorBrightnessVibrant ColorBrightness = "vibrant"
	ColorBrightnessMuted   ColorBrightness = "muted"
	ColorBrightnessDark    ColorBrightness = "dark"
)

func (b ColorBrightness) Valid() bool {
	switch b {
	case ColorBrightnessVibrant, ColorBrightnessMuted, ColorBrightnessDark:
		return true
	}
	return false
}

type TypographyStyle string

const (
	TypographyStyleModern    TypographyStyle = "modern"
	TypographyStyleClassic   TypographyStyle = "classic"
	TypographyStylePlayful   TypographyStyle = "playful"
	TypographyStyleTechnical TypographyStyle = "technical"
)

func (s TypographyStyle) Valid() bool {
	switch s {
	case TypographyStyleModern, TypographyStyleClassic, TypographyStylePlayful, TypographyStyleTechnical:
		return true
	}
	return false
}

type Density string

const (
	DensitySpacious Density = "spacious"
	DensityBalanced Density = "balanced"
	DensityCompact  Density = "compact"
)

func (d Density) Valid() bool {
	switch d {
	case DensitySpacious, DensityBalanced, DensityCompact:
		return true
	}
	return false
}

// DiscoveryInputs is the brand brief submitted by a user. Personality order
// encodes priority: the first adjective carries the most weight.
type DiscoveryInputs struct {
	CompanyName        string          `json:"companyName" yaml:"companyName" binding:"required,max=120"`
	Industry           string          `json:"industry" yaml:"industry" binding:"max=200"`
	TargetAudience     string          `json:"targetAudience" yaml:"targetAudience" binding:"max=500"`
	Personality        []string        `json:"personality" yaml:"personality" binding:"max=12,dive,max=40"`
	ColorMood          ColorMood       `json:"colorMood" yaml:"colorMood" binding:"omitempty,oneof=warm cool neutral"`
	ColorBrightness    ColorBrightness `json:"colorBrightness" yaml:"colorBrightness" binding:"omitempty,oneof=vibrant muted dark"`
	TypographyStyle    TypographyStyle `json:"typographyStyle" yaml:"typographyStyle" binding:"omitempty,oneof=modern classic playful technical"`
	Density            Density         `json:"density" yaml:"density" binding:"omitempty,oneof=spacious balanced compact"`
	ExistingBrandColor *string         `json:"existingBrandColor,omitempty" yaml:"existingBrandColor,omitempty" binding:"omitempty,max=32"`
}

// HasExistingBrandColor reports whether a non-blank brand colour was supplied.
func (in DiscoveryInputs) HasExistingBrandColor() bool {
	return in.ExistingBrandColor != nil && strings.TrimSpace(*in.ExistingBrandColor) != ""
}

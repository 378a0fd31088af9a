package model

// DesignDecision is the winning categorical choice per axis after
// personality aggregation.
type DesignDecision = DesignImpact

// PersonalityTokens are the concrete primitives selected for a DesignDecision.
type PersonalityTokens struct {
	Radius  RadiusTokens  `json:"radius"`
	Spacing SpacingTokens `json:"spacing"`
	Shadows ShadowTokens  `json:"shadows"`
	Motion  MotionTokens  `json:"motion"`
}

type RadiusTokens struct {
	SM     string `json:"sm"`
	MD     string `json:"md"`
	LG     string `json:"lg"`
	Button string `json:"button"`
}

type SpacingTokens struct {
	XS      string `json:"xs"`
	SM      string `json:"sm"`
	MD      string `json:"md"`
	LG      string `json:"lg"`
	XL      string `json:"xl"`
	XXL     string `json:"2xl"`
	Section string `json:"section"`
}

type ShadowTokens struct {
	SM string `json:"sm"`
	MD string `json:"md"`
	LG string `json:"lg"`
}

type MotionTokens struct {
	Fast   string `json:"fast"`
	Normal string `json:"normal"`
	Slow   string `json:"slow"`
	Easing string `json:"easing"`
}

type IndustryDefaults struct {
	ColorMood       ColorMood       `json:"colorMood"`
	ColorBrightness ColorBrightness `json:"colorBrightness"`
	TypographyStyle TypographyStyle `json:"typographyStyle"`
	Density         Density         `json:"density"`
	MotionIntensity MotionIntensity `json:"motionIntensity"`
	IconStyle       IconStyle       `json:"iconStyle"`
}

type IndustryDecisions struct {
	Profile  *IndustryProfile `json:"profile"`
	Defaults IndustryDefaults `json:"defaults"`
}

type PersonalityDecisions struct {
	Matched  []string          `json:"matched"`
	Decision DesignDecision    `json:"decision"`
	Tokens   PersonalityTokens `json:"tokens"`
}

type AudienceTypography struct {
	MinBodySize    string `json:"minBodySize"`
	BodyLineHeight string `json:"bodyLineHeight"`
	HeadingWeight  string `json:"headingWeight"`
	MaxLineLength  string `json:"maxLineLength"`
}

type VoiceGuidance struct {
	Formality string   `json:"formality"`
	Tone      []string `json:"tone"`
	Avoid     []string `json:"avoid"`
}

type AudienceDecisions struct {
	Profile    *AudienceProfile   `json:"profile"`
	Typography AudienceTypography `json:"typography"`
	Voice      VoiceGuidance      `json:"voice"`
}

type ColorMode string

const (
	ColorModeLight ColorMode = "light"
	ColorModeDark  ColorMode = "dark"
	ColorModeBoth  ColorMode = "both"
)

func (m ColorMode) Valid() bool {
	switch m {
	case ColorModeLight, ColorModeDark, ColorModeBoth:
		return true
	}
	return false
}

type AccessibilityLevel string

const (
	AccessibilityAA  AccessibilityLevel = "AA"
	AccessibilityAAA AccessibilityLevel = "AAA"
)

type SuggestedFonts struct {
	Display []string `json:"display"`
	Body    []string `json:"body"`
	Mono    []string `json:"mono"`
}

type Recommendations struct {
	ColorMode          ColorMode          `json:"colorMode"`
	PrimaryMotion      MotionIntensity    `json:"primaryMotion"`
	AccessibilityLevel AccessibilityLevel `json:"accessibilityLevel"`
	SuggestedFonts     SuggestedFonts     `json:"suggestedFonts"`
}

// DerivedDesignDecisions is recomputed from DiscoveryInputs on every call.
type DerivedDesignDecisions struct {
	Industry        IndustryDecisions    `json:"industry"`
	Personality     PersonalityDecisions `json:"personality"`
	Audience        AudienceDecisions    `json:"audience"`
	Recommendations Recommendations      `json:"recommendations"`
}

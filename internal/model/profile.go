package model

type MotionIntensity string

const (
	MotionMinimal    MotionIntensity = "minimal"
	MotionSubtle     MotionIntensity = "subtle"
	MotionExpressive MotionIntensity = "expressive"
)

type BorderRadius string

const (
	BorderRadiusSharp   BorderRadius = "sharp"
	BorderRadiusSubtle  BorderRadius = "subtle"
	BorderRadiusRounded BorderRadius = "rounded"
	BorderRadiusPill    BorderRadius = "pill"
)

type SpacingChoice string

const (
	SpacingTight    SpacingChoice = "tight"
	SpacingBalanced SpacingChoice = "balanced"
	SpacingGenerous SpacingChoice = "generous"
)

type Contrast string

const (
	ContrastLow    Contrast = "low"
	ContrastMedium Contrast = "medium"
	ContrastHigh   Contrast = "high"
)

type TypographyFamily string

const (
	TypographyGeometric    TypographyFamily = "geometric"
	TypographyHumanist     TypographyFamily = "humanist"
	TypographyTransitional TypographyFamily = "transitional"
)

type IconStyle string

const (
	IconStyleOutlined IconStyle = "outlined"
	IconStyleFilled   IconStyle = "filled"
	IconStyleDuotone  IconStyle = "duotone"
	IconStyleRounded  IconStyle = "rounded"
)

type AccessibilityPriority string

const (
	AccessibilityStandard AccessibilityPriority = "standard"
	AccessibilityHigh     AccessibilityPriority = "high"
	AccessibilityCritical AccessibilityPriority = "critical"
)

type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// IndustryProfile is static reference data keyed by industry name.
type IndustryProfile struct {
	Name                 string          `json:"name"`
	ColorMood            ColorMood       `json:"colorMood"`
	ColorBrightness      ColorBrightness `json:"colorBrightness"`
	TypographyStyle      TypographyStyle `json:"typographyStyle"`
	Density              Density         `json:"density"`
	MotionIntensity      MotionIntensity `json:"motionIntensity"`
	IconStyle            IconStyle       `json:"iconStyle"`
	SuggestedPersonality []string        `json:"suggestedPersonality"`
	Guidance             string          `json:"guidance"`
}

// DesignImpact is the categorical design choice one adjective votes for.
type DesignImpact struct {
	BorderRadius BorderRadius     `json:"borderRadius"`
	Spacing      SpacingChoice    `json:"spacing"`
	Contrast     Contrast         `json:"contrast"`
	Motion       MotionIntensity  `json:"motion"`
	Typography   TypographyFamily `json:"typography"`
}

type PersonalityMapping struct {
	Adjective    string       `json:"adjective"`
	Description  string       `json:"description"`
	DesignImpact DesignImpact `json:"designImpact"`
}

type AudienceVoice struct {
	Tone  []string `json:"tone"`
	Avoid []string `json:"avoid"`
}

type AudienceDesignPreferences struct {
	InformationDensity Level  `json:"informationDensity"`
	VisualComplexity   string `json:"visualComplexity"`
	InteractionStyle   string `json:"interactionStyle"`
}

// AudienceProfile is static reference data keyed by audience persona.
type AudienceProfile struct {
	Name                  string                    `json:"name"`
	Formality             string                    `json:"formality"`
	TechnicalLevel        Level                     `json:"technicalLevel"`
	AccessibilityPriority AccessibilityPriority     `json:"accessibilityPriority"`
	AgeGroup              string                    `json:"ageGroup"`
	Voice                 AudienceVoice             `json:"voice"`
	DesignPreferences     AudienceDesignPreferences `json:"designPreferences"`
}

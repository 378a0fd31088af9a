package derive

import (
	"slices"

	"tokensmith.app/forge/internal/model"
	"tokensmith.app/forge/internal/profile"
)

var neutralIndustryDefaults = model.IndustryDefaults{
	ColorMood:       model.ColorMoodNeutral,
	ColorBrightness: model.ColorBrightnessVibrant,
	TypographyStyle: model.TypographyStyleModern,
	Density:         model.DensityBalanced,
	MotionIntensity: model.MotionSubtle,
	IconStyle:       model.IconStyleOutlined,
}

// Derive combines industry, audience and personality into one decision set.
// It has no side effects and returns equal output for equal input.
func Derive(in model.DiscoveryInputs) model.DerivedDesignDecisions {
	industry := profile.LookupIndustry(in.Industry)
	audience := profile.LookupAudience(in.TargetAudience)
	mappings := Resolve(in.Personality)
	decision := aggregate(mappings)

	var (
		accessibility = model.AccessibilityStandard
		technical     = model.LevelMedium
	)
	if audience != nil {
		accessibility = audience.AccessibilityPriority
		technical = audience.TechnicalLevel
	}

	defaults := IndustryDefaults(industry, in)

	style := in.TypographyStyle
	if !style.Valid() {
		style = defaults.TypographyStyle
	}

	return model.DerivedDesignDecisions{
		Industry: model.IndustryDecisions{
			Profile:  industry,
			Defaults: defaults,
		},
		Personality: model.PersonalityDecisions{
			Matched:  matchedAdjectives(mappings),
			Decision: decision,
			Tokens:   MapToTokens(decision),
		},
		Audience: model.AudienceDecisions{
			Profile:    audience,
			Typography: AudienceTypography(audience),
			Voice:      VoiceGuidance(audience),
		},
		Recommendations: model.Recommendations{
			ColorMode:          colorMode(in, industry, accessibility),
			PrimaryMotion:      primaryMotion(decision, accessibility),
			AccessibilityLevel: accessibilityLevel(accessibility),
			SuggestedFonts:     SuggestFonts(style, decision.Typography, technical),
		},
	}
}

// IndustryDefaults reads the profile, then the brief, then neutral values.
func IndustryDefaults(p *model.IndustryProfile, in model.DiscoveryInputs) model.IndustryDefaults {
	if p != nil {
		return model.IndustryDefaults{
			ColorMood:       p.ColorMood,
			ColorBrightness: p.ColorBrightness,
			TypographyStyle: p.TypographyStyle,
			Density:         p.Density,
			MotionIntensity: p.MotionIntensity,
			IconStyle:       p.IconStyle,
		}
	}
	d := neutralIndustryDefaults
	if in.ColorMood.Valid() {
		d.ColorMood = in.ColorMood
	}
	if in.ColorBrightness.Valid() {
		d.ColorBrightness = in.ColorBrightness
	}
	if in.TypographyStyle.Valid() {
		d.TypographyStyle = in.TypographyStyle
	}
	if in.Density.Valid() {
		d.Density = in.Density
	}
	return d
}

// colorMode checks dark before accessibility: an explicit or industry dark
// preference wins over the light mode a critical audience would get.
func colorMode(in model.DiscoveryInputs, industry *model.IndustryProfile, accessibility model.AccessibilityPriority) model.ColorMode {
	if in.ColorBrightness == model.ColorBrightnessDark ||
		(industry != nil && industry.ColorBrightness == model.ColorBrightnessDark) {
		return model.ColorModeDark
	}
	if accessibility == model.AccessibilityCritical {
		return model.ColorModeLight
	}
	return model.ColorModeBoth
}

func primaryMotion(d model.DesignDecision, accessibility model.AccessibilityPriority) model.MotionIntensity {
	if accessibility == model.AccessibilityCritical {
		return model.MotionMinimal
	}
	return d.Motion
}

func accessibilityLevel(accessibility model.AccessibilityPriority) model.AccessibilityLevel {
	if accessibility == model.AccessibilityCritical || accessibility == model.AccessibilityHigh {
		return model.AccessibilityAAA
	}
	return model.AccessibilityAA
}

// AudienceTypography returns body text constraints for the audience's
// accessibility priority. A nil audience gets the standard row.
func AudienceTypography(a *model.AudienceProfile) model.AudienceTypography {
	priority := model.AccessibilityStandard
	if a != nil {
		priority = a.AccessibilityPriority
	}
	switch priority {
	case model.AccessibilityCritical:
		return model.AudienceTypography{MinBodySize: "18px", BodyLineHeight: "1.7", HeadingWeight: "600", MaxLineLength: "65ch"}
	case model.AccessibilityHigh:
		return model.AudienceTypography{MinBodySize: "17px", BodyLineHeight: "1.6", HeadingWeight: "600", MaxLineLength: "70ch"}
	default:
		return model.AudienceTypography{MinBodySize: "16px", BodyLineHeight: "1.5", HeadingWeight: "700", MaxLineLength: "75ch"}
	}
}

// VoiceGuidance copies the audience's voice; a nil audience gets a generic
// professional voice.
func VoiceGuidance(a *model.AudienceProfile) model.VoiceGuidance {
	if a == nil {
		return model.VoiceGuidance{
			Formality: "professional",
			Tone:      []string{"clear", "confident", "helpful"},
			Avoid:     []string{"jargon", "hyperbole"},
		}
	}
	return model.VoiceGuidance{
		Formality: a.Formality,
		Tone:      slices.Clone(a.Voice.Tone),
		Avoid:     slices.Clone(a.Voice.Avoid),
	}
}

package profile

import (
	"strings"

	"tokensmith.app/forge/internal/model"
)

func impact(r model.BorderRadius, s model.SpacingChoice, c model.Contrast, m model.MotionIntensity, t model.TypographyFamily) model.DesignImpact {
	return model.DesignImpact{BorderRadius: r, Spacing: s, Contrast: c, Motion: m, Typography: t}
}

var personalities = []model.PersonalityMapping{
	{Adjective: "bold", Description: "Confident, high-contrast statements with decisive edges.",
		DesignImpact: impact(model.BorderRadiusSharp, model.SpacingGenerous, model.ContrastHigh, model.MotionExpressive, model.TypographyGeometric)},
	{Adjective: "trustworthy", Description: "Steady and dependable, nothing surprising.",
		DesignImpact: impact(model.BorderRadiusSubtle, model.SpacingBalanced, model.ContrastMedium, model.MotionSubtle, model.TypographyTransitional)},
	{Adjective: "innovative", Description: "Forward-looking with fresh geometry and lively motion.",
		DesignImpact: impact(model.BorderRadiusRounded, model.SpacingGenerous, model.ContrastHigh, model.MotionExpressive, model.TypographyGeometric)},
	{Adjective: "friendly", Description: "Soft shapes and warm, open layouts.",
		DesignImpact: impact(model.BorderRadiusRounded, model.SpacingGenerous, model.ContrastMedium, model.MotionSubtle, model.TypographyHumanist)},
	{Adjective: "professional", Description: "Polished and orderly.",
		DesignImpact: impact(model.BorderRadiusSubtle, model.SpacingBalanced, model.ContrastMedium, model.MotionMinimal, model.TypographyTransitional)},
	{Adjective: "playful", Description: "Pill shapes, bouncy motion and bright accents.",
		DesignImpact: impact(model.BorderRadiusPill, model.SpacingGenerous, model.ContrastMedium, model.MotionExpressive, model.TypographyGeometric)},
	{Adjective: "minimal", Description: "Few elements, lots of air, quiet contrast.",
		DesignImpact: impact(model.BorderRadiusSharp, model.SpacingGenerous, model.ContrastLow, model.MotionMinimal, model.TypographyGeometric)},
	{Adjective: "elegant", Description: "Refined proportions and restrained detail.",
		DesignImpact: impact(model.BorderRadiusSubtle, model.SpacingGenerous, model.ContrastLow, model.MotionSubtle, model.TypographyTransitional)},
	{Adjective: "technical", Description: "Dense, exact and information-first.",
		DesignImpact: impact(model.BorderRadiusSharp, model.SpacingTight, model.ContrastHigh, model.MotionMinimal, model.TypographyGeometric)},
	{Adjective: "warm", Description: "Inviting and human.",
		DesignImpact: impact(model.BorderRadiusRounded, model.SpacingBalanced, model.ContrastLow, model.MotionSubtle, model.TypographyHumanist)},
	{Adjective: "calm", Description: "Unhurried, low contrast, gentle transitions.",
		DesignImpact: impact(model.BorderRadiusRounded, model.SpacingGenerous, model.ContrastLow, model.MotionMinimal, model.TypographyHumanist)},
	{Adjective: "energetic", Description: "Fast, saturated and kinetic.",
		DesignImpact: impact(model.BorderRadiusPill, model.SpacingBalanced, model.ContrastHigh, model.MotionExpressive, model.TypographyGeometric)},
	{Adjective: "sophisticated", Description: "Considered, premium and understated.",
		DesignImpact: impact(model.BorderRadiusSubtle, model.SpacingGenerous, model.ContrastMedium, model.MotionSubtle, model.TypographyTransitional)},
	{Adjective: "approachable", Description: "Easy to start, nothing intimidating.",
		DesignImpact: impact(model.BorderRadiusRounded, model.SpacingBalanced, model.ContrastMedium, model.MotionSubtle, model.TypographyHumanist)},
	{Adjective: "authoritative", Description: "Expert voice with firm structure.",
		DesignImpact: impact(model.BorderRadiusSharp, model.SpacingBalanced, model.ContrastHigh, model.MotionMinimal, model.TypographyTransitional)},
	{Adjective: "modern", Description: "Current, clean and crisp.",
		DesignImpact: impact(model.BorderRadiusSubtle, model.SpacingBalanced, model.ContrastMedium, model.MotionSubtle, model.TypographyGeometric)},
	{Adjective: "classic", Description: "Timeless forms and traditional hierarchy.",
		DesignImpact: impact(model.BorderRadiusSharp, model.SpacingBalanced, model.ContrastMedium, model.MotionMinimal, model.TypographyTransitional)},
	{Adjective: "creative", Description: "Expressive and unexpected.",
		DesignImpact: impact(model.BorderRadiusRounded, model.SpacingGenerous, model.ContrastHigh, model.MotionExpressive, model.TypographyHumanist)},
	{Adjective: "reliable", Description: "Consistent, predictable behaviour.",
		DesignImpact: impact(model.BorderRadiusSubtle, model.SpacingBalanced, model.ContrastMedium, model.MotionMinimal, model.TypographyTransitional)},
	{Adjective: "precise", Description: "Tight alignment and exact measurements.",
		DesignImpact: impact(model.BorderRadiusSharp, model.SpacingTight, model.ContrastHigh, model.MotionMinimal, model.TypographyGeometric)},
	{Adjective: "caring", Description: "Gentle, supportive and reassuring.",
		DesignImpact: impact(model.BorderRadiusRounded, model.SpacingGenerous, model.ContrastLow, model.MotionSubtle, model.TypographyHumanist)},
	{Adjective: "luxurious", Description: "Rich, spacious and exclusive.",
		DesignImpact: impact(model.BorderRadiusSharp, model.SpacingGenerous, model.ContrastLow, model.MotionSubtle, model.TypographyTransitional)},
}

// LookupPersonality matches an adjective case-insensitively. Unknown
// adjectives return nil.
func LookupPersonality(adjective string) *model.PersonalityMapping {
	key := strings.ToLower(strings.TrimSpace(adjective))
	for i := range personalities {
		if personalities[i].Adjective == key {
			m := personalities[i]
			return &m
		}
	}
	return nil
}

// Personalities returns every adjective mapping in table order.
func Personalities() []model.PersonalityMapping {
	out := make([]model.PersonalityMapping, len(personalities))
	copy(out, personalities)
	return out
}

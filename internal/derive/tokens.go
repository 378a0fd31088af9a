package derive

import "tokensmith.app/forge/internal/model"

var radiusTokens = map[model.BorderRadius]model.RadiusTokens{
	model.BorderRadiusSharp:   {SM: "0.125rem", MD: "0.25rem", LG: "0.375rem", Button: "0.25rem"},
	model.BorderRadiusSubtle:  {SM: "0.25rem", MD: "0.375rem", LG: "0.5rem", Button: "0.375rem"},
	model.BorderRadiusRounded: {SM: "0.375rem", MD: "0.5rem", LG: "0.75rem", Button: "0.5rem"},
	model.BorderRadiusPill:    {SM: "0.5rem", MD: "0.75rem", LG: "1rem", Button: "9999px"},
}

var spacingTokens = map[model.SpacingChoice]model.SpacingTokens{
	model.SpacingTight:    {XS: "0.125rem", SM: "0.25rem", MD: "0.5rem", LG: "0.75rem", XL: "1rem", XXL: "1.5rem", Section: "3rem"},
	model.SpacingBalanced: {XS: "0.25rem", SM: "0.5rem", MD: "1rem", LG: "1.5rem", XL: "2rem", XXL: "3rem", Section: "5rem"},
	model.SpacingGenerous: {XS: "0.375rem", SM: "0.75rem", MD: "1.25rem", LG: "2rem", XL: "3rem", XXL: "4rem", Section: "7rem"},
}

var shadowTokens = map[model.Contrast]model.ShadowTokens{
	model.ContrastLow: {
		SM: "0 1px 2px rgba(0, 0, 0, 0.04)",
		MD: "0 2px 6px rgba(0, 0, 0, 0.06)",
		LG: "0 8px 24px rgba(0, 0, 0, 0.08)",
	},
	model.ContrastMedium: {
		SM: "0 1px 2px rgba(0, 0, 0, 0.08)",
		MD: "0 4px 8px rgba(0, 0, 0, 0.10)",
		LG: "0 12px 32px rgba(0, 0, 0, 0.14)",
	},
	model.ContrastHigh: {
		SM: "0 1px 3px rgba(0, 0, 0, 0.16)",
		MD: "0 6px 12px rgba(0, 0, 0, 0.20)",
		LG: "0 16px 40px rgba(0, 0, 0, 0.28)",
	},
}

var motionTokens = map[model.MotionIntensity]model.MotionTokens{
	model.MotionMinimal:    {Fast: "100ms", Normal: "150ms", Slow: "200ms", Easing: "cubic-bezier(0.4, 0, 0.2, 1)"},
	model.MotionSubtle:     {Fast: "150ms", Normal: "250ms", Slow: "350ms", Easing: "cubic-bezier(0.4, 0, 0.2, 1)"},
	model.MotionExpressive: {Fast: "200ms", Normal: "350ms", Slow: "500ms", Easing: "cubic-bezier(0.34, 1.56, 0.64, 1)"},
}

// MapToTokens selects the concrete primitives for a decision. Values outside
// the enums read the neutral decision's row.
func MapToTokens(d model.DesignDecision) model.PersonalityTokens {
	return model.PersonalityTokens{
		Radius:  lookup(radiusTokens, d.BorderRadius, NeutralDecision.BorderRadius),
		Spacing: lookup(spacingTokens, d.Spacing, NeutralDecision.Spacing),
		Shadows: lookup(shadowTokens, d.Contrast, NeutralDecision.Contrast),
		Motion:  lookup(motionTokens, d.Motion, NeutralDecision.Motion),
	}
}

func lookup[K comparable, V any](table map[K]V, key, fallback K) V {
	if v, ok := table[key]; ok {
		return v
	}
	return table[fallback]
}

package palette

import (
	"fmt"

	"tokensmith.app/forge/internal/model"
)

// ApplyDecisions merges derived primitives into a generated tree. Only
// absent values are filled: anything the generator produced wins. The input
// is not modified.
func ApplyDecisions(tokens *model.BrandSystem, d model.DerivedDesignDecisions) (*model.BrandSystem, error) {
	if tokens == nil {
		return nil, fmt.Errorf("applying decisions: nil token tree")
	}
	out, err := tokens.Clone()
	if err != nil {
		return nil, fmt.Errorf("applying decisions: %w", err)
	}

	pt := d.Personality.Tokens
	fonts := d.Recommendations.SuggestedFonts

	ff := &out.Typography.FontFamily
	if ff.Heading == "" {
		ff.Heading = fontStack(first(fonts.Display), "system-ui, sans-serif")
	}
	if ff.Body == "" {
		ff.Body = fontStack(first(fonts.Body), "system-ui, sans-serif")
	}
	if ff.Mono == "" {
		ff.Mono = fontStack(first(fonts.Mono), "ui-monospace, monospace")
	}

	for _, e := range []model.ScaleEntry{
		{Key: "xs", Value: pt.Spacing.XS},
		{Key: "sm", Value: pt.Spacing.SM},
		{Key: "md", Value: pt.Spacing.MD},
		{Key: "lg", Value: pt.Spacing.LG},
		{Key: "xl", Value: pt.Spacing.XL},
		{Key: "2xl", Value: pt.Spacing.XXL},
	} {
		out.Spacing.Scale.SetDefault(e.Key, e.Value)
	}

	out.Borders.Radius.SetDefault("sm", pt.Radius.SM)
	out.Borders.Radius.SetDefault("md", pt.Radius.MD)
	out.Borders.Radius.SetDefault("lg", pt.Radius.LG)
	out.Borders.Radius.SetDefault("button", pt.Radius.Button)

	out.Shadows.SetDefault("sm", pt.Shadows.SM)
	out.Shadows.SetDefault("md", pt.Shadows.MD)
	out.Shadows.SetDefault("lg", pt.Shadows.LG)

	out.Motion.Duration.SetDefault("fast", pt.Motion.Fast)
	out.Motion.Duration.SetDefault("normal", pt.Motion.Normal)
	out.Motion.Duration.SetDefault("slow", pt.Motion.Slow)
	out.Motion.Easing.SetDefault("default", pt.Motion.Easing)

	if out.Metadata.Version == "" {
		out.Metadata.Version = "1.0.0"
	}
	if out.SchemaVersion == "" {
		out.SchemaVersion = out.EffectiveSchemaVersion()
	}
	return out, nil
}

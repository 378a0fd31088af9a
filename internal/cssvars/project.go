package cssvars

import (
	"strings"

	"tokensmith.app/forge/internal/model"
)

// Project maps the token tree to custom properties for one mode. Colour
// leaves missing either side are skipped; optional sections are projected
// only when present.
func Project(tokens *model.BrandSystem, mode model.ColorMode) *Vars {
	vars := NewVars()
	if tokens == nil {
		return vars
	}
	if mode != model.ColorModeDark {
		mode = model.ColorModeLight
	}

	for _, g := range tokens.ColorGroups() {
		for _, leaf := range g.Leaves {
			if !leaf.Token.Complete() {
				continue
			}
			vars.Set(name(g.Namespace, leaf.Key), leaf.Token.For(mode))
		}
	}

	projectTypography(vars, tokens)

	scale(vars, "space", tokens.Spacing.Scale)
	if tokens.Has(model.SectionSemanticSpacing) {
		for _, group := range tokens.Spacing.Semantic {
			scale(vars, "spacing-"+Kebab(group.Name), group.Values)
		}
	}

	scale(vars, "radius", tokens.Borders.Radius)
	scale(vars, "border-width", tokens.Borders.Width)
	scale(vars, "shadow", tokens.Shadows)
	scale(vars, "duration", tokens.Motion.Duration)
	scale(vars, "ease", tokens.Motion.Easing)
	scale(vars, "z", tokens.ZIndex)
	scale(vars, "breakpoint", tokens.Breakpoints)

	projectComponentScalars(vars, tokens)
	return vars
}

func scale(vars *Vars, prefix string, s model.Scale) {
	for _, e := range s {
		vars.Set(name(prefix, e.Key), e.Value)
	}
}

func set(vars *Vars, n, value string) {
	if strings.TrimSpace(value) != "" {
		vars.Set(n, value)
	}
}

func projectTypography(vars *Vars, tokens *model.BrandSystem) {
	t := tokens.Typography
	set(vars, "--font-heading", t.FontFamily.Heading)
	set(vars, "--font-body", t.FontFamily.Body)
	set(vars, "--font-mono", t.FontFamily.Mono)

	scale(vars, "text", t.FontSize)
	scale(vars, "font-weight", t.FontWeight)
	scale(vars, "leading", t.LineHeight)
	scale(vars, "tracking", t.LetterSpacing)

	if tokens.Has(model.SectionTypeScale) {
		for _, p := range t.Scale.Presets() {
			set(vars, name("type", p.Name, "size"), p.Preset.FontSize.String())
			set(vars, name("type", p.Name, "line-height"), p.Preset.LineHeight.String())
			set(vars, name("type", p.Name, "weight"), p.Preset.FontWeight.String())
			set(vars, name("type", p.Name, "tracking"), p.Preset.LetterSpacing.String())
		}
	}
}

func projectComponentScalars(vars *Vars, tokens *model.BrandSystem) {
	if tokens.Has(model.SectionButton) {
		b := tokens.Components.Button
		set(vars, "--btn-radius", b.Radius)
		set(vars, "--btn-padding-x", b.PaddingX)
		set(vars, "--btn-padding-y", b.PaddingY)
		set(vars, "--btn-font-weight", b.FontWeight.String())
	}
	if tokens.Has(model.SectionCard) {
		c := tokens.Components.Card
		set(vars, "--card-radius", c.Radius)
		set(vars, "--card-padding", c.Padding)
		set(vars, "--card-shadow", c.Shadow)
	}
	if tokens.Has(model.SectionInput) {
		in := tokens.Components.Input
		set(vars, "--input-radius", in.Radius)
		set(vars, "--input-height", in.Height)
		set(vars, "--input-padding-x", in.PaddingX)
	}
	if tokens.Has(model.SectionAlert) {
		set(vars, "--alert-radius", tokens.Components.Alert.Radius)
	}
	if tokens.Has(model.SectionTable) {
		set(vars, "--table-cell-padding", tokens.Components.Table.CellPadding)
	}
	if tokens.Has(model.SectionNavigation) {
		set(vars, "--nav-height", tokens.Components.Navigation.Height)
	}
	if tokens.Has(model.SectionTag) {
		set(vars, "--tag-radius", tokens.Components.Tag.Radius)
	}
	if tokens.Has(model.SectionForm) {
		set(vars, "--form-gap", tokens.Components.Form.Gap)
	}
	if tokens.Has(model.SectionProgress) {
		set(vars, "--progress-height", tokens.DataVisualization.Progress.Height)
	}
	if tokens.Has(model.SectionSkeleton) {
		set(vars, "--skeleton-duration", tokens.Motion.Loading.Skeleton.Duration)
	}
	if tokens.Has(model.SectionSpinner) {
		s := tokens.Motion.Loading.Spinner
		set(vars, "--spinner-size", s.Size)
		set(vars, "--spinner-duration", s.Duration)
	}
	if tokens.Has(model.SectionGrid) {
		g := tokens.Grid
		set(vars, "--grid-columns", g.Columns.String())
		set(vars, "--grid-gutter", g.Gutter)
		set(vars, "--grid-max-width", g.MaxWidth)
		set(vars, "--grid-margin", g.Margin)
	}
	if tokens.Has(model.SectionIcons) {
		set(vars, "--icon-stroke", tokens.Icons.StrokeWidth.String())
		scale(vars, "icon", tokens.Icons.Sizes)
	}
}

// GenerateFullCSS renders the light projection on :root and the complete
// dark projection under prefers-color-scheme, so either block reads on its
// own.
func GenerateFullCSS(tokens *model.BrandSystem) string {
	light := Project(tokens, model.ColorModeLight)
	dark := Project(tokens, model.ColorModeDark)

	var sb strings.Builder
	sb.WriteString(":root {\n")
	sb.WriteString(light.Declarations("  "))
	sb.WriteString("}\n")
	sb.WriteString("\n@media (prefers-color-scheme: dark) {\n  :root {\n")
	sb.WriteString(dark.Declarations("    "))
	sb.WriteString("  }\n}\n")
	return sb.String()
}

package palette

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"tokensmith.app/forge/internal/model"
)

var moodHue = map[model.ColorMood]float64{
	model.ColorMoodWarm:    16,
	model.ColorMoodCool:    217,
	model.ColorMoodNeutral: 222,
}

var brightnessSaturation = map[model.ColorBrightness]float64{
	model.ColorBrightnessVibrant: 0.80,
	model.ColorBrightnessMuted:   0.42,
	model.ColorBrightnessDark:    0.65,
}

// pair is a colour token before hex encoding.
type pair struct {
	light, dark colorful.Color
}

func (p pair) token() model.ColorToken {
	return model.Color(p.light.Hex(), p.dark.Hex())
}

func (p pair) ptr() *model.ColorToken {
	t := p.token()
	return &t
}

// readable returns the text pair for a background pair.
func (p pair) readable() model.ColorToken {
	return model.Color(readableOn(p.light), readableOn(p.dark))
}

func (p pair) shifted(lightDelta, darkDelta float64) pair {
	return pair{shift(p.light, lightDelta), shift(p.dark, darkDelta)}
}

func (p pair) tintedOver(bg pair, t float64) pair {
	return pair{tint(p.light, bg.light, t), tint(p.dark, bg.dark, t)}
}

var transparent = model.Color("transparent", "transparent")

type scheme struct {
	hue, sat float64

	primary, secondary, accent          pair
	background, foreground, card        pair
	muted, mutedForeground              pair
	destructive, success, warning, info pair
	borderDefault, borderSubtle, strong pair
	sunken, overlay, codeBg             pair
}

func newScheme(in model.DiscoveryInputs, defaults model.IndustryDefaults) scheme {
	mood := in.ColorMood
	if !mood.Valid() {
		mood = defaults.ColorMood
	}
	brightness := in.ColorBrightness
	if !brightness.Valid() {
		brightness = defaults.ColorBrightness
	}

	hue, ok := moodHue[mood]
	if !ok {
		hue = moodHue[model.ColorMoodNeutral]
	}
	sat, ok := brightnessSaturation[brightness]
	if !ok {
		sat = brightnessSaturation[model.ColorBrightnessVibrant]
	}
	if mood == model.ColorMoodNeutral {
		sat *= 0.45
	}

	primary := pair{hsl(hue, sat, 0.45), hsl(hue, sat*0.9, 0.62)}
	if in.HasExistingBrandColor() {
		if c, err := ParseColor(strings.TrimSpace(*in.ExistingBrandColor)); err == nil {
			h, s, l := c.Hsl()
			hue, sat = h, s
			primary = pair{c, hsl(h, s*0.9, max(l+0.15, 0.6))}
		}
	}

	s := scheme{hue: hue, sat: sat, primary: primary}
	s.secondary = pair{hsl(hue, 0.18, 0.94), hsl(hue, 0.18, 0.18)}
	s.accent = pair{hsl(hue+150, sat, 0.50), hsl(hue+150, sat*0.9, 0.64)}
	s.background = pair{hsl(hue, 0.20, 0.995), hsl(hue, 0.28, 0.07)}
	s.foreground = pair{hsl(hue, 0.30, 0.10), hsl(hue, 0.20, 0.96)}
	s.card = pair{hsl(hue, 0.20, 1), hsl(hue, 0.24, 0.10)}
	s.muted = pair{hsl(hue, 0.16, 0.95), hsl(hue, 0.16, 0.16)}
	s.mutedForeground = pair{hsl(hue, 0.10, 0.42), hsl(hue, 0.10, 0.68)}
	s.destructive = pair{hsl(0, 0.72, 0.50), hsl(0, 0.80, 0.62)}
	s.success = pair{hsl(142, 0.64, 0.36), hsl(142, 0.56, 0.52)}
	s.warning = pair{hsl(38, 0.92, 0.48), hsl(38, 0.92, 0.58)}
	s.info = pair{hsl(205, 0.80, 0.46), hsl(205, 0.80, 0.62)}
	s.borderDefault = pair{hsl(hue, 0.16, 0.88), hsl(hue, 0.16, 0.22)}
	s.borderSubtle = pair{hsl(hue, 0.16, 0.93), hsl(hue, 0.16, 0.16)}
	s.strong = pair{hsl(hue, 0.14, 0.72), hsl(hue, 0.14, 0.38)}
	s.sunken = pair{hsl(hue, 0.18, 0.97), hsl(hue, 0.28, 0.05)}
	s.overlay = pair{hsl(hue, 0.20, 1), hsl(hue, 0.22, 0.13)}
	s.codeBg = pair{hsl(hue, 0.22, 0.97), hsl(hue, 0.30, 0.05)}
	return s
}

// Scaffold builds a complete schema 2.1 token tree without a model call.
// Every colour leaf carries both modes. The result depends only on its
// arguments; callers stamp metadata.generatedAt.
func Scaffold(in model.DiscoveryInputs, d model.DerivedDesignDecisions) *model.BrandSystem {
	s := newScheme(in, d.Industry.Defaults)
	pt := d.Personality.Tokens
	fonts := d.Recommendations.SuggestedFonts

	tokens := &model.BrandSystem{
		SchemaVersion: model.SchemaVersion21,
		Metadata: model.Metadata{
			Name:        in.CompanyName,
			Version:     "1.0.0",
			Description: description(in, d),
			Tagline:     tagline(in, d),
			Industry:    industryName(in, d),
		},
		Colors:      colors(s),
		Typography:  typography(fonts, d.Audience.Typography),
		Spacing:     spacing(pt.Spacing),
		Borders:     borders(pt.Radius),
		Shadows:     shadows(pt.Shadows),
		Motion:      motion(s, pt.Motion, d.Recommendations.PrimaryMotion),
		Components:  components(s, pt),
		Icons:       icons(d),
		Grid:        &model.Grid{Columns: "12", Gutter: pt.Spacing.LG, MaxWidth: "1200px", Margin: pt.Spacing.MD},
		Breakpoints: breakpoints(),
		ZIndex:      zIndex(),
		Imagery:     imagery(d),
	}
	tokens.DataVisualization = dataVisualization(s)
	tokens.VoiceAndTone = voice(in, d)
	return tokens
}

func colors(s scheme) model.Colors {
	return model.Colors{
		Primary:               s.primary.token(),
		PrimaryForeground:     s.primary.readable(),
		Secondary:             s.secondary.token(),
		SecondaryForeground:   s.secondary.readable(),
		Accent:                s.accent.token(),
		AccentForeground:      s.accent.readable(),
		Background:            s.background.token(),
		Foreground:            s.foreground.token(),
		Muted:                 s.muted.token(),
		MutedForeground:       s.mutedForeground.token(),
		Card:                  s.card.token(),
		CardForeground:        s.foreground.token(),
		Destructive:           s.destructive.token(),
		DestructiveForeground: s.destructive.readable(),
		Success:               s.success.ptr(),
		Warning:               s.warning.ptr(),
		Info:                  s.info.ptr(),
		Ring:                  s.primary.ptr(),
		Surface: &model.SurfaceColors{
			Base:    s.background.token(),
			Raised:  s.card.token(),
			Overlay: s.overlay.token(),
			Sunken:  s.sunken.token(),
		},
		Border: &model.BorderColors{
			Default: s.borderDefault.token(),
			Subtle:  s.borderSubtle.token(),
			Strong:  s.strong.token(),
			Focus:   s.primary.token(),
		},
	}
}

func fontStack(name, generic string) string {
	if name == "" {
		return generic
	}
	return fmt.Sprintf("'%s', %s", name, generic)
}

func first(list []string) string {
	if len(list) == 0 {
		return ""
	}
	return list[0]
}

func typography(fonts model.SuggestedFonts, at model.AudienceTypography) model.Typography {
	body := at.MinBodySize
	if body == "" {
		body = "16px"
	}
	return model.Typography{
		FontFamily: model.FontFamily{
			Heading: fontStack(first(fonts.Display), "system-ui, sans-serif"),
			Body:    fontStack(first(fonts.Body), "system-ui, sans-serif"),
			Mono:    fontStack(first(fonts.Mono), "ui-monospace, monospace"),
		},
		FontSize: model.Scale{
			{Key: "xs", Value: "0.75rem"},
			{Key: "sm", Value: "0.875rem"},
			{Key: "base", Value: body},
			{Key: "lg", Value: "1.125rem"},
			{Key: "xl", Value: "1.25rem"},
			{Key: "2xl", Value: "1.5rem"},
			{Key: "3xl", Value: "1.875rem"},
			{Key: "4xl", Value: "2.25rem"},
			{Key: "5xl", Value: "3rem"},
		},
		FontWeight: model.Scale{
			{Key: "normal", Value: "400", Numeric: true},
			{Key: "medium", Value: "500", Numeric: true},
			{Key: "semibold", Value: "600", Numeric: true},
			{Key: "bold", Value: "700", Numeric: true},
		},
		LineHeight: model.Scale{
			{Key: "tight", Value: "1.25"},
			{Key: "normal", Value: orDefault(at.BodyLineHeight, "1.5")},
			{Key: "relaxed", Value: "1.75"},
		},
		LetterSpacing: model.Scale{
			{Key: "tight", Value: "-0.02em"},
			{Key: "normal", Value: "0"},
			{Key: "wide", Value: "0.05em"},
		},
		Scale: &model.TypeScale{
			Display:   &model.TypePreset{FontSize: "3.5rem", LineHeight: "1.1", FontWeight: "800", LetterSpacing: "-0.03em"},
			H1:        &model.TypePreset{FontSize: "2.5rem", LineHeight: "1.2", FontWeight: model.CSSValue(orDefault(at.HeadingWeight, "700")), LetterSpacing: "-0.02em"},
			H2:        &model.TypePreset{FontSize: "2rem", LineHeight: "1.25", FontWeight: model.CSSValue(orDefault(at.HeadingWeight, "700"))},
			H3:        &model.TypePreset{FontSize: "1.5rem", LineHeight: "1.3", FontWeight: "600"},
			H4:        &model.TypePreset{FontSize: "1.25rem", LineHeight: "1.4", FontWeight: "600"},
			BodyLarge: &model.TypePreset{FontSize: "1.125rem", LineHeight: "1.7", FontWeight: "400"},
			Body:      &model.TypePreset{FontSize: model.CSSValue(body), LineHeight: model.CSSValue(orDefault(at.BodyLineHeight, "1.5")), FontWeight: "400"},
			BodySmall: &model.TypePreset{FontSize: "0.875rem", LineHeight: "1.5", FontWeight: "400"},
			Caption:   &model.TypePreset{FontSize: "0.75rem", LineHeight: "1.4", FontWeight: "500"},
			Overline:  &model.TypePreset{FontSize: "0.75rem", LineHeight: "1.4", FontWeight: "600", LetterSpacing: "0.08em"},
		},
	}
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func spacing(t model.SpacingTokens) model.Spacing {
	return model.Spacing{
		Scale: model.Scale{
			{Key: "xs", Value: t.XS},
			{Key: "sm", Value: t.SM},
			{Key: "md", Value: t.MD},
			{Key: "lg", Value: t.LG},
			{Key: "xl", Value: t.XL},
			{Key: "2xl", Value: t.XXL},
		},
		Semantic: model.SemanticSpacing{
			{Name: "component", Values: model.Scale{
				{Key: "sm", Value: t.SM},
				{Key: "md", Value: t.MD},
				{Key: "lg", Value: t.LG},
			}},
			{Name: "section", Values: model.Scale{
				{Key: "sm", Value: t.XL},
				{Key: "md", Value: t.XXL},
				{Key: "lg", Value: t.Section},
			}},
		},
	}
}

func borders(r model.RadiusTokens) model.Borders {
	return model.Borders{
		Radius: model.Scale{
			{Key: "none", Value: "0"},
			{Key: "sm", Value: r.SM},
			{Key: "md", Value: r.MD},
			{Key: "lg", Value: r.LG},
			{Key: "button", Value: r.Button},
			{Key: "full", Value: "9999px"},
		},
		Width: model.Scale{
			{Key: "thin", Value: "1px"},
			{Key: "medium", Value: "2px"},
			{Key: "thick", Value: "4px"},
		},
	}
}

func shadows(t model.ShadowTokens) model.Scale {
	return model.Scale{
		{Key: "none", Value: "none"},
		{Key: "sm", Value: t.SM},
		{Key: "md", Value: t.MD},
		{Key: "lg", Value: t.LG},
	}
}

func motion(s scheme, t model.MotionTokens, primary model.MotionIntensity) model.Motion {
	loop := "1.5s"
	if primary == model.MotionMinimal {
		loop = "2s"
	}
	return model.Motion{
		Duration: model.Scale{
			{Key: "fast", Value: t.Fast},
			{Key: "normal", Value: t.Normal},
			{Key: "slow", Value: t.Slow},
		},
		Easing: model.Scale{
			{Key: "default", Value: t.Easing},
			{Key: "in", Value: "cubic-bezier(0.4, 0, 1, 1)"},
			{Key: "out", Value: "cubic-bezier(0, 0, 0.2, 1)"},
		},
		Loading: &model.LoadingMotion{
			Skeleton: &model.SkeletonTokens{Base: s.muted.token(), Highlight: s.borderSubtle.token(), Duration: loop},
			Spinner:  &model.SpinnerTokens{Color: s.primary.token(), Track: s.muted.token(), Size: "1.5rem", Duration: "0.8s"},
		},
	}
}

func components(s scheme, pt model.PersonalityTokens) *model.Components {
	hover := func(p pair) *model.ColorToken { return p.shifted(-0.07, 0.07).ptr() }
	alert := func(p pair) *model.AlertVariant {
		return &model.AlertVariant{
			Background: p.tintedOver(s.background, 0.88).token(),
			Foreground: p.shifted(-0.12, 0.1).token(),
			Border:     p.tintedOver(s.background, 0.6).token(),
		}
	}
	return &model.Components{
		Button: &model.ButtonTokens{
			Primary:     &model.ButtonVariant{Background: s.primary.token(), Foreground: s.primary.readable(), Hover: hover(s.primary)},
			Secondary:   &model.ButtonVariant{Background: s.secondary.token(), Foreground: s.secondary.readable(), Hover: s.muted.shifted(-0.04, 0.04).ptr()},
			Outline:     &model.ButtonVariant{Background: transparent, Foreground: s.primary.token(), Hover: s.muted.ptr(), Border: s.primary.ptr()},
			Ghost:       &model.ButtonVariant{Background: transparent, Foreground: s.foreground.token(), Hover: s.muted.ptr()},
			Destructive: &model.ButtonVariant{Background: s.destructive.token(), Foreground: s.destructive.readable(), Hover: hover(s.destructive)},
			Radius:      pt.Radius.Button,
			PaddingX:    pt.Spacing.LG,
			PaddingY:    pt.Spacing.SM,
			FontWeight:  "600",
		},
		Card: &model.CardTokens{
			Background:  s.card.token(),
			Foreground:  s.foreground.token(),
			Border:      s.borderDefault.token(),
			HoverBorder: s.primary.ptr(),
			Radius:      pt.Radius.LG,
			Padding:     pt.Spacing.LG,
			Shadow:      pt.Shadows.SM,
		},
		Input: &model.InputTokens{
			Background:  s.background.token(),
			Foreground:  s.foreground.token(),
			Border:      s.borderDefault.token(),
			Focus:       s.primary.token(),
			Placeholder: s.mutedForeground.ptr(),
			Radius:      pt.Radius.MD,
			Height:      "2.5rem",
			PaddingX:    pt.Spacing.MD,
		},
		Alert: &model.AlertTokens{
			Info:    alert(s.info),
			Success: alert(s.success),
			Warning: alert(s.warning),
			Error:   alert(s.destructive),
			Radius:  pt.Radius.MD,
		},
		Table: &model.TableTokens{
			HeaderBackground: s.muted.token(),
			HeaderForeground: s.foreground.token(),
			RowBackground:    s.background.token(),
			RowAltBackground: s.sunken.ptr(),
			RowHover:         s.muted.ptr(),
			Border:           s.borderDefault.token(),
			CellPadding:      pt.Spacing.SM + " " + pt.Spacing.MD,
		},
		Navigation: &model.NavigationTokens{
			Background: s.background.token(),
			Foreground: s.foreground.token(),
			Active:     s.primary.token(),
			Hover:      s.muted.token(),
			Height:     "4rem",
		},
		Tag: &model.TagTokens{
			Background: s.primary.tintedOver(s.background, 0.86).token(),
			Foreground: s.primary.shifted(-0.1, 0.08).token(),
			Border:     s.primary.tintedOver(s.background, 0.6).token(),
			Radius:     pt.Radius.Button,
		},
		Tabs: &model.TabsTokens{
			Background:       s.muted.token(),
			Foreground:       s.mutedForeground.token(),
			Active:           s.background.token(),
			ActiveForeground: s.foreground.token(),
			Indicator:        s.primary.token(),
		},
		Form: &model.FormTokens{
			Label:    s.foreground.token(),
			Helper:   s.mutedForeground.token(),
			Error:    s.destructive.token(),
			Required: s.destructive.token(),
			Gap:      pt.Spacing.SM,
		},
		TableVariants: &model.TableVariantsTokens{
			Striped: &model.TableVariant{
				HeaderBackground: s.muted.token(),
				RowBackground:    s.background.token(),
				RowAltBackground: s.sunken.token(),
				Border:           s.borderSubtle.token(),
			},
			Bordered: &model.TableVariant{
				HeaderBackground: s.secondary.token(),
				RowBackground:    s.card.token(),
				RowAltBackground: s.card.token(),
				Border:           s.strong.token(),
			},
		},
	}
}

func dataVisualization(s scheme) *model.DataVisualization {
	chart := make([]model.ColorToken, 6)
	for i := range chart {
		h := s.hue + float64(i)*60
		chart[i] = model.Color(hsl(h, max(s.sat, 0.5), 0.48).Hex(), hsl(h, max(s.sat, 0.5)*0.9, 0.62).Hex())
	}
	return &model.DataVisualization{
		StatCard: &model.StatCardTokens{
			Background: s.card.token(),
			Value:      s.foreground.token(),
			Label:      s.mutedForeground.token(),
			TrendUp:    s.success.token(),
			TrendDown:  s.destructive.token(),
		},
		Progress: &model.ProgressTokens{
			Track:  s.muted.token(),
			Fill:   s.primary.token(),
			Label:  s.mutedForeground.token(),
			Height: "0.5rem",
		},
		Timeline: &model.TimelineTokens{
			Line:      s.borderDefault.token(),
			Dot:       s.strong.token(),
			DotActive: s.primary.token(),
			Date:      s.mutedForeground.token(),
		},
		CodeBlock: &model.CodeBlockTokens{
			Background: s.codeBg.token(),
			Foreground: s.foreground.token(),
			Keyword:    s.primary.token(),
			String:     s.success.token(),
			Comment:    s.mutedForeground.token(),
			Border:     s.borderDefault.token(),
		},
		Chart: chart,
	}
}

func icons(d model.DerivedDesignDecisions) *model.Icons {
	style := d.Industry.Defaults.IconStyle
	if style == "" {
		style = model.IconStyleOutlined
	}
	stroke := model.CSSValue("1.5")
	if d.Personality.Decision.Contrast == model.ContrastHigh {
		stroke = "2"
	}
	return &model.Icons{
		Style:       string(style),
		StrokeWidth: stroke,
		Sizes: model.Scale{
			{Key: "sm", Value: "16px"},
			{Key: "md", Value: "20px"},
			{Key: "lg", Value: "24px"},
		},
	}
}

func breakpoints() model.Scale {
	return model.Scale{
		{Key: "sm", Value: "640px"},
		{Key: "md", Value: "768px"},
		{Key: "lg", Value: "1024px"},
		{Key: "xl", Value: "1280px"},
		{Key: "2xl", Value: "1536px"},
	}
}

func zIndex() model.Scale {
	return model.Scale{
		{Key: "base", Value: "0", Numeric: true},
		{Key: "dropdown", Value: "1000", Numeric: true},
		{Key: "sticky", Value: "1100", Numeric: true},
		{Key: "overlay", Value: "1300", Numeric: true},
		{Key: "modal", Value: "1400", Numeric: true},
		{Key: "toast", Value: "1500", Numeric: true},
	}
}

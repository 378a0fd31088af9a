package model

// Schema versions of the BrandSystem token tree. Later versions only add
// optional sections.
const (
	SchemaVersion1  = "1.0"
	SchemaVersion2  = "2.0"
	SchemaVersion21 = "2.1"
)

// ColorToken is a colour leaf. Every consumer indexes it by mode, so both
// sides must be set.
type ColorToken struct {
	Light string `json:"light"`
	Dark  string `json:"dark"`
}

func Color(light, dark string) ColorToken {
	return ColorToken{Light: light, Dark: dark}
}

func ColorPtr(light, dark string) *ColorToken {
	return &ColorToken{Light: light, Dark: dark}
}

// Complete reports whether both modes carry a value.
func (c ColorToken) Complete() bool {
	return c.Light != "" && c.Dark != ""
}

// For returns the value for mode. Anything other than dark reads light.
func (c ColorToken) For(mode ColorMode) string {
	if mode == ColorModeDark {
		return c.Dark
	}
	return c.Light
}

// BrandSystem is the generated token tree. It is the JSON wire contract
// between generation, preview and export: optional sections are omitted,
// never null. Use Has to test for a section before reading it.
type BrandSystem struct {
	SchemaVersion     string             `json:"schemaVersion,omitempty"`
	Metadata          Metadata           `json:"metadata"`
	Colors            Colors             `json:"colors"`
	Typography        Typography         `json:"typography"`
	Spacing           Spacing            `json:"spacing"`
	Borders           Borders            `json:"borders"`
	Shadows           Scale              `json:"shadows,omitempty"`
	Motion            Motion             `json:"motion"`
	Components        *Components        `json:"components,omitempty"`
	DataVisualization *DataVisualization `json:"dataVisualization,omitempty"`
	Icons             *Icons             `json:"icons,omitempty"`
	Grid              *Grid              `json:"grid,omitempty"`
	Breakpoints       Scale              `json:"breakpoints,omitempty"`
	ZIndex            Scale              `json:"zIndex,omitempty"`
	Imagery           *Imagery           `json:"imagery,omitempty"`
	VoiceAndTone      *VoiceAndTone      `json:"voiceAndTone,omitempty"`
}

type Metadata struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	GeneratedAt string `json:"generatedAt,omitempty"`
	Description string `json:"description,omitempty"`
	Tagline     string `json:"tagline,omitempty"`
	Industry    string `json:"industry,omitempty"`
}

type Colors struct {
	Primary               ColorToken `json:"primary"`
	PrimaryForeground     ColorToken `json:"primaryForeground"`
	Secondary             ColorToken `json:"secondary"`
	SecondaryForeground   ColorToken `json:"secondaryForeground"`
	Accent                ColorToken `json:"accent"`
	AccentForeground      ColorToken `json:"accentForeground"`
	Background            ColorToken `json:"background"`
	Foreground            ColorToken `json:"foreground"`
	Muted                 ColorToken `json:"muted"`
	MutedForeground       ColorToken `json:"mutedForeground"`
	Card                  ColorToken `json:"card"`
	CardForeground        ColorToken `json:"cardForeground"`
	Destructive           ColorToken `json:"destructive"`
	DestructiveForeground ColorToken `json:"destructiveForeground"`

	Success *ColorToken `json:"success,omitempty"`
	Warning *ColorToken `json:"warning,omitempty"`
	Info    *ColorToken `json:"info,omitempty"`
	Ring    *ColorToken `json:"ring,omitempty"`

	Surface *SurfaceColors `json:"surface,omitempty"`
	Border  *BorderColors  `json:"border,omitempty"`
}

type SurfaceColors struct {
	Base    ColorToken `json:"base"`
	Raised  ColorToken `json:"raised"`
	Overlay ColorToken `json:"overlay"`
	Sunken  ColorToken `json:"sunken"`
}

type BorderColors struct {
	Default ColorToken `json:"default"`
	Subtle  ColorToken `json:"subtle"`
	Strong  ColorToken `json:"strong"`
	Focus   ColorToken `json:"focus"`
}

type FontFamily struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
	Mono    string `json:"mono,omitempty"`
}

type Typography struct {
	FontFamily    FontFamily `json:"fontFamily"`
	FontSize      Scale      `json:"fontSize,omitempty"`
	FontWeight    Scale      `json:"fontWeight,omitempty"`
	LineHeight    Scale      `json:"lineHeight,omitempty"`
	LetterSpacing Scale      `json:"letterSpacing,omitempty"`
	Scale         *TypeScale `json:"scale,omitempty"`
}

// TypePreset is one named text style of the 2.1 type scale.
type TypePreset struct {
	FontSize      CSSValue `json:"fontSize"`
	LineHeight    CSSValue `json:"lineHeight,omitempty"`
	FontWeight    CSSValue `json:"fontWeight,omitempty"`
	LetterSpacing CSSValue `json:"letterSpacing,omitempty"`
}

type TypeScale struct {
	Display   *TypePreset `json:"display,omitempty"`
	H1        *TypePreset `json:"h1,omitempty"`
	H2        *TypePreset `json:"h2,omitempty"`
	H3        *TypePreset `json:"h3,omitempty"`
	H4        *TypePreset `json:"h4,omitempty"`
	BodyLarge *TypePreset `json:"bodyLarge,omitempty"`
	Body      *TypePreset `json:"body,omitempty"`
	BodySmall *TypePreset `json:"bodySmall,omitempty"`
	Caption   *TypePreset `json:"caption,omitempty"`
	Overline  *TypePreset `json:"overline,omitempty"`
}

// NamedPreset pairs a preset with its JSON key.
type NamedPreset struct {
	Name   string
	Preset TypePreset
}

// Presets returns the defined presets in declaration order.
func (s *TypeScale) Presets() []NamedPreset {
	if s == nil {
		return nil
	}
	all := []struct {
		name string
		p    *TypePreset
	}{
		{"display", s.Display},
		{"h1", s.H1},
		{"h2", s.H2},
		{"h3", s.H3},
		{"h4", s.H4},
		{"bodyLarge", s.BodyLarge},
		{"body", s.Body},
		{"bodySmall", s.BodySmall},
		{"caption", s.Caption},
		{"overline", s.Overline},
	}
	var out []NamedPreset
	for _, e := range all {
		if e.p != nil {
			out = append(out, NamedPreset{Name: e.name, Preset: *e.p})
		}
	}
	return out
}

type Borders struct {
	Radius Scale `json:"radius,omitempty"`
	Width  Scale `json:"width,omitempty"`
}

type Motion struct {
	Duration Scale          `json:"duration,omitempty"`
	Easing   Scale          `json:"easing,omitempty"`
	Loading  *LoadingMotion `json:"loading,omitempty"`
}

type LoadingMotion struct {
	Skeleton *SkeletonTokens `json:"skeleton,omitempty"`
	Spinner  *SpinnerTokens  `json:"spinner,omitempty"`
}

type SkeletonTokens struct {
	Base      ColorToken `json:"base"`
	Highlight ColorToken `json:"highlight"`
	Duration  string     `json:"duration,omitempty"`
}

type SpinnerTokens struct {
	Color    ColorToken `json:"color"`
	Track    ColorToken `json:"track"`
	Size     string     `json:"size,omitempty"`
	Duration string     `json:"duration,omitempty"`
}

type Icons struct {
	Style       string   `json:"style"`
	StrokeWidth CSSValue `json:"strokeWidth,omitempty"`
	Sizes       Scale    `json:"sizes,omitempty"`
	Library     string   `json:"library,omitempty"`
}

type Grid struct {
	Columns  CSSValue `json:"columns"`
	Gutter   string   `json:"gutter"`
	MaxWidth string   `json:"maxWidth"`
	Margin   string   `json:"margin,omitempty"`
}

type Imagery struct {
	Style      string   `json:"style"`
	Treatment  string   `json:"treatment,omitempty"`
	Guidelines []string `json:"guidelines,omitempty"`
}

type VoiceAndTone struct {
	PersonalityTags []string         `json:"personalityTags,omitempty"`
	WritingStyle    string           `json:"writingStyle,omitempty"`
	Examples        *CopyExamples    `json:"examples,omitempty"`
	Guidelines      *VoiceGuidelines `json:"guidelines,omitempty"`
}

type CopyExamples struct {
	Headlines     []string `json:"headlines,omitempty"`
	Ctas          []string `json:"ctas,omitempty"`
	Descriptions  []string `json:"descriptions,omitempty"`
	ErrorMessages []string `json:"errorMessages,omitempty"`
}

type VoiceGuidelines struct {
	Do   []string `json:"do,omitempty"`
	Dont []string `json:"dont,omitempty"`
}

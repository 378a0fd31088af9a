package export

import (
	"bytes"
	"embed"
	"html/template"
	"strconv"
	"strings"
	"time"

	"tokensmith.app/forge/internal/cssvars"
	"tokensmith.app/forge/internal/model"
)

//go:embed templates
var templateFS embed.FS

var pages = template.Must(template.New("pages").ParseFS(templateFS, "templates/*.gohtml"))

// EscapeHTML escapes text for callers that build markup outside templates.
func EscapeHTML(s string) string {
	return template.HTMLEscapeString(s)
}

// trustedCSS is the single point where a token value becomes template.CSS.
func trustedCSS(v string) template.CSS {
	return template.CSS(cssvars.SanitizeValue(v))
}

func render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// copyText is the marketing copy a page shows. Token examples win; the
// literals cover trees without voiceAndTone.examples.
type copyText struct {
	Headline        string
	Subheadline     string
	Description     string
	Cta             string
	SecondaryCta    string
	ClosingHeadline string
}

func pick(values []string, i int, fallback string) string {
	if i < len(values) && strings.TrimSpace(values[i]) != "" {
		return values[i]
	}
	return fallback
}

func newCopy(tokens *model.BrandSystem) copyText {
	ex := tokens.Examples()
	brand := brandName(tokens)
	description := pick(ex.Descriptions, 0, tokens.Metadata.Description)
	if description == "" {
		description = "Everything your team needs, built with care by " + brand + "."
	}
	return copyText{
		Headline:        pick(ex.Headlines, 0, "Welcome to "+brand),
		Subheadline:     pick(ex.Headlines, 1, tokens.Metadata.Tagline),
		Description:     description,
		Cta:             pick(ex.Ctas, 0, "Get started"),
		SecondaryCta:    pick(ex.Ctas, 1, "Learn more"),
		ClosingHeadline: pick(ex.Headlines, 2, "Ready to see "+brand+" in action?"),
	}
}

func brandName(tokens *model.BrandSystem) string {
	if n := strings.TrimSpace(tokens.Metadata.Name); n != "" {
		return n
	}
	return "Brand"
}

type swatch struct {
	Name  string
	Hex   string
	Value template.CSS
}

type fontSample struct {
	Role   string
	Family string
	Stack  template.CSS
}

type presetSample struct {
	Name   string
	Size   template.CSS
	Height template.CSS
	Weight template.CSS
}

// view is the data every HTML template renders from.
type view struct {
	Brand  string
	Tokens *model.BrandSystem
	Theme  cssvars.Theme
	Copy   copyText
	Opts   Options
	Year   int
}

func newView(tokens *model.BrandSystem, mode model.ColorMode, opts Options, now time.Time) view {
	return view{
		Brand:  brandName(tokens),
		Tokens: tokens,
		Theme:  cssvars.NewTheme(tokens, mode),
		Copy:   newCopy(tokens),
		Opts:   opts,
		Year:   now.Year(),
	}
}

// C returns a custom property's value for direct use in a style.
func (v view) C(name, fallback string) template.CSS {
	return trustedCSS(v.Theme.Var(name, fallback))
}

// Root is the :root rule carrying every projected variable.
func (v view) Root() template.CSS {
	return template.CSS(v.Theme.Block(":root"))
}

func (v view) ModeName() string {
	return string(v.Theme.Mode)
}

func (v view) Has(section string) bool {
	return v.Tokens.Has(model.Section(section))
}

func (v view) Tagline() string {
	return v.Tokens.Metadata.Tagline
}

func (v view) CtaURL() string {
	if v.Opts.CtaURL != "" {
		return v.Opts.CtaURL
	}
	return "#"
}

// Swatches lists the top-level colours in the rendered mode.
func (v view) Swatches() []swatch {
	var out []swatch
	for _, g := range v.Tokens.ColorGroups() {
		if g.Section != model.SectionColors {
			continue
		}
		for _, leaf := range g.Leaves {
			if strings.HasSuffix(leaf.Key, "Foreground") || !leaf.Token.Complete() {
				continue
			}
			hex := leaf.Token.For(v.Theme.Mode)
			out = append(out, swatch{Name: leaf.Key, Hex: hex, Value: trustedCSS(hex)})
		}
	}
	return out
}

func (v view) ChartSwatches() []swatch {
	var out []swatch
	if !v.Tokens.Has(model.SectionChart) {
		return out
	}
	for i, tok := range v.Tokens.DataVisualization.Chart {
		if !tok.Complete() {
			continue
		}
		hex := tok.For(v.Theme.Mode)
		out = append(out, swatch{Name: "chart " + strconv.Itoa(i+1), Hex: hex, Value: trustedCSS(hex)})
	}
	return out
}

func (v view) Fonts() []fontSample {
	ff := v.Tokens.Typography.FontFamily
	var out []fontSample
	for _, f := range []struct{ role, stack string }{{"Heading", ff.Heading}, {"Body", ff.Body}, {"Mono", ff.Mono}} {
		if strings.TrimSpace(f.stack) == "" {
			continue
		}
		out = append(out, fontSample{Role: f.role, Family: primaryFamily(f.stack), Stack: trustedCSS(f.stack)})
	}
	return out
}

func (v view) Presets() []presetSample {
	var out []presetSample
	if !v.Tokens.Has(model.SectionTypeScale) {
		return out
	}
	for _, p := range v.Tokens.Typography.Scale.Presets() {
		out = append(out, presetSample{
			Name:   p.Name,
			Size:   trustedCSS(p.Preset.FontSize.Or("1rem")),
			Height: trustedCSS(p.Preset.LineHeight.Or("1.4")),
			Weight: trustedCSS(p.Preset.FontWeight.Or("400")),
		})
	}
	return out
}

func (v view) PersonalityTags() []string {
	if v.Tokens.VoiceAndTone == nil {
		return nil
	}
	return v.Tokens.VoiceAndTone.PersonalityTags
}

func (v view) Guidelines() *model.VoiceGuidelines {
	if !v.Tokens.Has(model.SectionVoiceGuidelines) {
		return nil
	}
	return v.Tokens.VoiceAndTone.Guidelines
}

func (v view) Examples() model.CopyExamples {
	return v.Tokens.Examples()
}

type feature struct {
	Title string
	Body  string
}

// Features fills the landing page's three cards from the voice guidelines,
// falling back to generic copy.
func (v view) Features() []feature {
	titles := []string{"Built for focus", "Designed to scale", "Here when you need us"}
	bodies := []string{
		"A calm, consistent experience that gets out of the way.",
		"From the first user to the thousandth, nothing changes but the numbers.",
		"Real people, quick answers, no runaround.",
	}
	if g := v.Guidelines(); g != nil {
		for i := range bodies {
			bodies[i] = pick(g.Do, i, bodies[i])
		}
	}
	out := make([]feature, len(titles))
	for i := range titles {
		out[i] = feature{Title: titles[i], Body: bodies[i]}
	}
	return out
}

// primaryFamily returns the first family of a font stack without quotes.
func primaryFamily(stack string) string {
	first, _, _ := strings.Cut(stack, ",")
	return strings.Trim(strings.TrimSpace(first), `'"`)
}

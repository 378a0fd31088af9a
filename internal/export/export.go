package export

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"tokensmith.app/forge/common"
	"tokensmith.app/forge/common/logger"
	"tokensmith.app/forge/internal/model"
)

var (
	ErrUnknownFormat   = errors.New("unknown export format")
	ErrUnknownTemplate = errors.New("unknown social template")
	ErrUnknownSlide    = errors.New("unknown slide")
	ErrNilTokens       = errors.New("token tree is required")
)

const (
	FormatJSON      = "json"
	FormatCSS       = "css"
	FormatTailwind  = "tailwind"
	FormatEmail     = "email-template"
	FormatLanding   = "landing-page"
	FormatOneSheet  = "one-sheeter"
	FormatSocial    = "social-media"
	FormatSlideshow = "slideshow"
)

// Options are the per-request knobs shared by every generator. Fields a
// generator does not understand are ignored.
type Options struct {
	ColorMode model.ColorMode `json:"colorMode,omitempty"`
	// Templates selects social templates; empty means all of them.
	Templates []string `json:"templates,omitempty"`
	// Slides selects and orders slideshow sections; empty means all.
	Slides       []string `json:"slides,omitempty"`
	Subject      string   `json:"subject,omitempty"`
	CtaURL       string   `json:"ctaUrl,omitempty"`
	ContactEmail string   `json:"contactEmail,omitempty"`
	Website      string   `json:"website,omitempty"`
}

type Generator interface {
	Format() string
	Generate(ctx context.Context, tokens *model.BrandSystem, opts Options) (*model.ExportResult, error)
}

// Registry holds the generators in a fixed order.
type Registry struct {
	generators []Generator
}

// NewRegistry returns a registry with every built-in format. now stamps
// export metadata; nil means time.Now.
func NewRegistry(now func() time.Time) *Registry {
	if now == nil {
		now = time.Now
	}
	b := base{now: now}
	return &Registry{generators: []Generator{
		jsonGenerator{b},
		cssGenerator{b},
		tailwindGenerator{b},
		emailGenerator{b},
		landingGenerator{b},
		oneSheetGenerator{b},
		socialGenerator{b},
		slideshowGenerator{b},
	}}
}

func (r *Registry) Get(format string) (Generator, error) {
	for _, g := range r.generators {
		if g.Format() == format {
			return g, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

func (r *Registry) Formats() []string {
	formats := make([]string, len(r.generators))
	for i, g := range r.generators {
		formats[i] = g.Format()
	}
	return formats
}

// Generate looks up format and runs it inside a span.
func (r *Registry) Generate(ctx context.Context, format string, tokens *model.BrandSystem, opts Options) (*model.ExportResult, error) {
	g, err := r.Get(format)
	if err != nil {
		return nil, err
	}
	if tokens == nil {
		return nil, ErrNilTokens
	}

	sc := logger.StartSpan(ctx, "export.generate", trace.WithAttributes(attribute.String("export.format", format)))
	defer sc.End()

	result, err := g.Generate(sc.Context(), tokens, opts)
	if err != nil {
		sc.RecordError(err)
		return nil, fmt.Errorf("generate %s: %w", format, err)
	}
	sc.SetAttributes(attribute.Int("export.files", len(result.Files)))
	return result, nil
}

type base struct {
	now func() time.Time
}

func (b base) result(format string, tokens *model.BrandSystem, files []model.ExportFile) *model.ExportResult {
	return &model.ExportResult{
		Format: format,
		Files:  files,
		Metadata: model.ExportMetadata{
			GeneratedAt: b.now().UTC().Format(time.RFC3339),
			BrandName:   tokens.Metadata.Name,
			Version:     tokens.Metadata.Version,
		},
	}
}

// modeRun is one rendering pass: the mode and the filename suffix it gets.
type modeRun struct {
	mode   model.ColorMode
	suffix string
}

// resolveModes expands the requested mode. Anything but dark or both renders
// light; both renders two passes with -light and -dark suffixes.
func resolveModes(mode model.ColorMode) []modeRun {
	switch mode {
	case model.ColorModeBoth:
		return []modeRun{{model.ColorModeLight, "-light"}, {model.ColorModeDark, "-dark"}}
	case model.ColorModeDark:
		return []modeRun{{mode: model.ColorModeDark}}
	default:
		return []modeRun{{mode: model.ColorModeLight}}
	}
}

// filename builds <brand-slug>-<artifact><suffix>.<ext>.
func filename(tokens *model.BrandSystem, artifact, suffix, ext string) string {
	return common.BrandSlug(tokens.Metadata.Name) + "-" + artifact + suffix + "." + ext
}

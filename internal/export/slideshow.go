package export

import (
	"context"
	"fmt"
	"slices"

	"tokensmith.app/forge/common"
	"tokensmith.app/forge/internal/model"
)

var slideOrder = []string{"title", "mission", "colors", "typography", "components", "examples", "contact"}

func Slides() []string {
	return slices.Clone(slideOrder)
}

// selectSlides validates and orders the requested slides. Duplicates are
// rendered once, at their first position.
func selectSlides(requested []string) ([]string, error) {
	if len(requested) == 0 {
		return Slides(), nil
	}
	var out []string
	for _, s := range requested {
		if !slices.Contains(slideOrder, s) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSlide, s)
		}
		if !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out, nil
}

type slideshowView struct {
	view
	Slides []string
}

func (v slideshowView) Contact() []string {
	var lines []string
	if v.Opts.ContactEmail != "" {
		lines = append(lines, v.Opts.ContactEmail)
	}
	if v.Opts.Website != "" {
		lines = append(lines, v.Opts.Website)
	}
	if len(lines) == 0 {
		lines = append(lines, "hello@"+common.BrandSlug(v.Brand)+".com")
	}
	return lines
}

type slideshowGenerator struct{ base }

func (slideshowGenerator) Format() string { return FormatSlideshow }

func (g slideshowGenerator) Generate(_ context.Context, tokens *model.BrandSystem, opts Options) (*model.ExportResult, error) {
	if tokens == nil {
		return nil, ErrNilTokens
	}
	slides, err := selectSlides(opts.Slides)
	if err != nil {
		return nil, err
	}

	now := g.now()
	var files []model.ExportFile
	for _, run := range resolveModes(opts.ColorMode) {
		html, err := render("slideshow", slideshowView{view: newView(tokens, run.mode, opts, now), Slides: slides})
		if err != nil {
			return nil, fmt.Errorf("render slideshow: %w", err)
		}
		files = append(files, model.ExportFile{Filename: filename(tokens, "slideshow", run.suffix, "html"), Content: html, Type: model.FileTypeHTML})
	}
	return g.result(FormatSlideshow, tokens, files), nil
}

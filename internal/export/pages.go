package export

import (
	"context"
	_ "embed"
	"fmt"

	"tokensmith.app/forge/internal/cssvars"
	"tokensmith.app/forge/internal/model"
)

//go:embed templates/landing.css
var landingRules string

type emailView struct {
	view
	Subject string
	Footer  string
}

type emailGenerator struct{ base }

func (emailGenerator) Format() string { return FormatEmail }

func (g emailGenerator) Generate(_ context.Context, tokens *model.BrandSystem, opts Options) (*model.ExportResult, error) {
	if tokens == nil {
		return nil, ErrNilTokens
	}
	now := g.now()
	var files []model.ExportFile
	for _, run := range resolveModes(opts.ColorMode) {
		v := newView(tokens, run.mode, opts, now)
		subject := opts.Subject
		if subject == "" {
			subject = v.Copy.Headline
		}
		html, err := render("email", emailView{
			view:    v,
			Subject: subject,
			Footer:  fmt.Sprintf("© %d %s. You are receiving this email because you signed up for updates.", v.Year, v.Brand),
		})
		if err != nil {
			return nil, fmt.Errorf("render email: %w", err)
		}
		files = append(files, model.ExportFile{Filename: filename(tokens, "email", run.suffix, "html"), Content: html, Type: model.FileTypeHTML})
	}
	return g.result(FormatEmail, tokens, files), nil
}

type landingView struct {
	view
	Stylesheet string
}

// landingGenerator renders one page per mode sharing a single stylesheet.
// Each page pins its mode with an inline :root block over the stylesheet's
// light and prefers-color-scheme values.
type landingGenerator struct{ base }

func (landingGenerator) Format() string { return FormatLanding }

func (g landingGenerator) Generate(_ context.Context, tokens *model.BrandSystem, opts Options) (*model.ExportResult, error) {
	if tokens == nil {
		return nil, ErrNilTokens
	}
	now := g.now()
	stylesheet := filename(tokens, "landing", "", "css")

	var files []model.ExportFile
	for _, run := range resolveModes(opts.ColorMode) {
		html, err := render("landing", landingView{view: newView(tokens, run.mode, opts, now), Stylesheet: stylesheet})
		if err != nil {
			return nil, fmt.Errorf("render landing page: %w", err)
		}
		files = append(files, model.ExportFile{Filename: filename(tokens, "landing", run.suffix, "html"), Content: html, Type: model.FileTypeHTML})
	}
	files = append(files, model.ExportFile{
		Filename: stylesheet,
		Content:  cssvars.GenerateFullCSS(tokens) + "\n" + landingRules,
		Type:     model.FileTypeCSS,
	})
	return g.result(FormatLanding, tokens, files), nil
}

type oneSheetGenerator struct{ base }

func (oneSheetGenerator) Format() string { return FormatOneSheet }

func (g oneSheetGenerator) Generate(_ context.Context, tokens *model.BrandSystem, opts Options) (*model.ExportResult, error) {
	if tokens == nil {
		return nil, ErrNilTokens
	}
	now := g.now()
	var files []model.ExportFile
	for _, run := range resolveModes(opts.ColorMode) {
		html, err := render("one-sheeter", newView(tokens, run.mode, opts, now))
		if err != nil {
			return nil, fmt.Errorf("render one-sheeter: %w", err)
		}
		files = append(files, model.ExportFile{Filename: filename(tokens, "one-sheeter", run.suffix, "html"), Content: html, Type: model.FileTypeHTML})
	}
	return g.result(FormatOneSheet, tokens, files), nil
}

package export

import (
	"context"
	"fmt"
	"html/template"
	"strconv"

	"tokensmith.app/forge/internal/model"
)

// SocialTemplate is a named card size.
type SocialTemplate struct {
	Name        string `json:"name"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Description string `json:"description"`
}

var socialTemplates = []SocialTemplate{
	{Name: "og", Width: 1200, Height: 630, Description: "Open Graph link preview"},
	{Name: "twitter", Width: 1200, Height: 675, Description: "X / Twitter post image"},
	{Name: "linkedin", Width: 1584, Height: 396, Description: "LinkedIn company banner"},
	{Name: "instagram", Width: 1080, Height: 1080, Description: "Instagram square post"},
}

func SocialTemplates() []SocialTemplate {
	out := make([]SocialTemplate, len(socialTemplates))
	copy(out, socialTemplates)
	return out
}

func LookupSocialTemplate(name string) (SocialTemplate, error) {
	for _, t := range socialTemplates {
		if t.Name == name {
			return t, nil
		}
	}
	return SocialTemplate{}, fmt.Errorf("%w: %q", ErrUnknownTemplate, name)
}

// TitleSize scales headline type with card height.
func (t SocialTemplate) TitleSize() string {
	switch {
	case t.Height > 600:
		return "64px"
	case t.Height > 400:
		return "48px"
	default:
		return "36px"
	}
}

func (t SocialTemplate) SubtitleSize() string {
	switch {
	case t.Height > 600:
		return "28px"
	case t.Height > 400:
		return "22px"
	default:
		return "18px"
	}
}

type socialView struct {
	view
	Template SocialTemplate
}

func (v socialView) Width() template.CSS  { return template.CSS(strconv.Itoa(v.Template.Width) + "px") }
func (v socialView) Height() template.CSS { return template.CSS(strconv.Itoa(v.Template.Height) + "px") }
func (v socialView) TitleSize() template.CSS {
	return template.CSS(v.Template.TitleSize())
}
func (v socialView) SubtitleSize() template.CSS {
	return template.CSS(v.Template.SubtitleSize())
}

// Padding keeps text clear of the edges on short banners.
func (v socialView) Padding() template.CSS {
	if v.Template.Height <= 400 {
		return "32px 64px"
	}
	return "64px"
}

type socialGenerator struct{ base }

func (socialGenerator) Format() string { return FormatSocial }

func (g socialGenerator) Generate(_ context.Context, tokens *model.BrandSystem, opts Options) (*model.ExportResult, error) {
	if tokens == nil {
		return nil, ErrNilTokens
	}

	selected := socialTemplates
	if len(opts.Templates) > 0 {
		selected = make([]SocialTemplate, 0, len(opts.Templates))
		for _, name := range opts.Templates {
			t, err := LookupSocialTemplate(name)
			if err != nil {
				return nil, err
			}
			selected = append(selected, t)
		}
	}

	now := g.now()
	var files []model.ExportFile
	for _, run := range resolveModes(opts.ColorMode) {
		v := newView(tokens, run.mode, opts, now)
		for _, t := range selected {
			html, err := render("social", socialView{view: v, Template: t})
			if err != nil {
				return nil, fmt.Errorf("render %s card: %w", t.Name, err)
			}
			files = append(files, model.ExportFile{
				Filename: filename(tokens, "social-"+t.Name, run.suffix, "html"),
				Content:  html,
				Type:     model.FileTypeHTML,
			})
		}
	}
	return g.result(FormatSocial, tokens, files), nil
}

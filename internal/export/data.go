package export

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"tokensmith.app/forge/internal/cssvars"
	"tokensmith.app/forge/internal/model"
)

type jsonGenerator struct{ base }

func (jsonGenerator) Format() string { return FormatJSON }

func (g jsonGenerator) Generate(_ context.Context, tokens *model.BrandSystem, _ Options) (*model.ExportResult, error) {
	if tokens == nil {
		return nil, ErrNilTokens
	}
	data, err := json.MarshalIndent(tokens, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal tokens: %w", err)
	}
	return g.result(FormatJSON, tokens, []model.ExportFile{{
		Filename: filename(tokens, "tokens", "", "json"),
		Content:  string(data) + "\n",
		Type:     model.FileTypeJSON,
	}}), nil
}

type cssGenerator struct{ base }

func (cssGenerator) Format() string { return FormatCSS }

func (g cssGenerator) Generate(_ context.Context, tokens *model.BrandSystem, _ Options) (*model.ExportResult, error) {
	if tokens == nil {
		return nil, ErrNilTokens
	}
	return g.result(FormatCSS, tokens, []model.ExportFile{variablesFile(tokens)}), nil
}

func variablesFile(tokens *model.BrandSystem) model.ExportFile {
	return model.ExportFile{
		Filename: filename(tokens, "variables", "", "css"),
		Content:  cssvars.GenerateFullCSS(tokens),
		Type:     model.FileTypeCSS,
	}
}

// tailwindGenerator emits a config whose theme points at the custom
// properties, plus the stylesheet defining them.
type tailwindGenerator struct{ base }

func (tailwindGenerator) Format() string { return FormatTailwind }

func (g tailwindGenerator) Generate(_ context.Context, tokens *model.BrandSystem, _ Options) (*model.ExportResult, error) {
	if tokens == nil {
		return nil, ErrNilTokens
	}

	extend := map[string]any{}
	colors := map[string]string{}
	for _, grp := range tokens.ColorGroups() {
		for _, leaf := range grp.Leaves {
			if !leaf.Token.Complete() {
				continue
			}
			key := cssvars.Kebab(leaf.Key)
			if grp.Namespace != "" {
				key = cssvars.Kebab(grp.Namespace) + "-" + key
			}
			colors[key] = "var(--" + key + ")"
		}
	}
	extend["colors"] = colors

	ff := tokens.Typography.FontFamily
	fonts := map[string][]string{}
	for role, stack := range map[string]string{"heading": ff.Heading, "body": ff.Body, "mono": ff.Mono} {
		if strings.TrimSpace(stack) != "" {
			fonts[role] = []string{"var(--font-" + role + ")"}
		}
	}
	extend["fontFamily"] = fonts

	for key, s := range map[string]struct {
		prefix string
		scale  model.Scale
	}{
		"fontSize":                 {"text", tokens.Typography.FontSize},
		"fontWeight":               {"font-weight", tokens.Typography.FontWeight},
		"lineHeight":               {"leading", tokens.Typography.LineHeight},
		"letterSpacing":            {"tracking", tokens.Typography.LetterSpacing},
		"spacing":                  {"space", tokens.Spacing.Scale},
		"borderRadius":             {"radius", tokens.Borders.Radius},
		"borderWidth":              {"border-width", tokens.Borders.Width},
		"boxShadow":                {"shadow", tokens.Shadows},
		"transitionDuration":       {"duration", tokens.Motion.Duration},
		"transitionTimingFunction": {"ease", tokens.Motion.Easing},
		"zIndex":                   {"z", tokens.ZIndex},
	} {
		if len(s.scale) == 0 {
			continue
		}
		refs := map[string]string{}
		for _, e := range s.scale {
			refs[e.Key] = "var(--" + s.prefix + "-" + cssvars.Kebab(e.Key) + ")"
		}
		extend[key] = refs
	}

	// Media queries cannot read custom properties, so screens carry values.
	if len(tokens.Breakpoints) > 0 {
		screens := map[string]string{}
		for _, e := range tokens.Breakpoints {
			screens[e.Key] = cssvars.SanitizeValue(e.Value)
		}
		extend["screens"] = screens
	}

	body, err := json.MarshalIndent(extend, "    ", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal tailwind theme: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("/** @type {import('tailwindcss').Config} */\n")
	sb.WriteString("module.exports = {\n")
	sb.WriteString("  darkMode: 'media',\n")
	sb.WriteString("  theme: {\n")
	sb.WriteString("    extend: ")
	sb.Write(body)
	sb.WriteString(",\n  },\n};\n")

	return g.result(FormatTailwind, tokens, []model.ExportFile{
		{Filename: filename(tokens, "tailwind.config", "", "js"), Content: sb.String(), Type: model.FileTypeJS},
		variablesFile(tokens),
	}), nil
}

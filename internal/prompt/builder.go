package prompt

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"tokensmith.app/forge/common/logger"
	"tokensmith.app/forge/internal/model"
	"tokensmith.app/forge/internal/profile"
)

const (
	DefaultFetchLimit  = 5
	DefaultPromptLimit = 2
)

// GoldenExampleSource returns active curated examples, best first.
type GoldenExampleSource interface {
	FindExamples(ctx context.Context, filter model.GoldenExampleFilter) ([]model.GoldenExample, error)
}

// Builder assembles the generation prompt. A nil source builds prompts
// without reference examples.
type Builder struct {
	examples    GoldenExampleSource
	fetchLimit  int
	promptLimit int
}

func NewBuilder(examples GoldenExampleSource, fetchLimit, promptLimit int) *Builder {
	if fetchLimit <= 0 {
		fetchLimit = DefaultFetchLimit
	}
	if promptLimit <= 0 {
		promptLimit = DefaultPromptLimit
	}
	return &Builder{examples: examples, fetchLimit: fetchLimit, promptLimit: promptLimit}
}

// Build renders the user prompt for one brief. Golden example lookup
// failures are logged and the section is left out.
func (b *Builder) Build(ctx context.Context, in model.DiscoveryInputs, d model.DerivedDesignDecisions) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# Design system brief: %s\n\n", strings.TrimSpace(in.CompanyName)))
	sb.WriteString("Generate a complete brand design system for the company below. Follow the guidance sections, honour the derived decisions unless they conflict with accessibility, and return only JSON.\n\n")

	sb.WriteString(formatBrief(in))
	sb.WriteString(formatIndustry(d.Industry))
	sb.WriteString(formatPersonality(d.Personality))
	sb.WriteString(formatAudience(d.Audience))
	sb.WriteString(formatDecisions(d))
	sb.WriteString(b.examplesSection(ctx, in, d))
	sb.WriteString(outputContract)

	return sb.String(), nil
}

func (b *Builder) examplesSection(ctx context.Context, in model.DiscoveryInputs, d model.DerivedDesignDecisions) string {
	if b.examples == nil {
		return ""
	}

	filter := model.GoldenExampleFilter{
		Industry:  strings.TrimSpace(in.Industry),
		ColorMood: in.ColorMood,
		Limit:     b.fetchLimit,
	}
	if p := d.Industry.Profile; p != nil {
		filter.Industry = p.Name
	}
	if filter.ColorMood == "" {
		filter.ColorMood = d.Industry.Defaults.ColorMood
	}

	sc := logger.StartSpan(ctx, "prompt.golden_examples", trace.WithAttributes(
		attribute.String("industry", filter.Industry),
		attribute.String("color_mood", string(filter.ColorMood)),
	))
	examples, err := b.examples.FindExamples(sc.Context(), filter)
	sc.End()
	if err != nil {
		slog.WarnContext(ctx, "golden examples unavailable, building prompt without them",
			"error", err,
			"industry", filter.Industry,
			"color_mood", filter.ColorMood)
		return ""
	}

	var sb strings.Builder
	included := 0
	for _, ex := range examples {
		if included == b.promptLimit {
			break
		}
		var compact bytes.Buffer
		if err := json.Compact(&compact, ex.Tokens); err != nil {
			slog.WarnContext(ctx, "skipping golden example with invalid tokens", "error", err, "example_id", ex.ID)
			continue
		}
		if included == 0 {
			sb.WriteString("## Reference examples\n\n")
			sb.WriteString("These curated systems scored well with reviewers. Match their completeness and structure, not their colours.\n\n")
		}
		included++
		sb.WriteString(fmt.Sprintf("### Example %d: %s (%s", included, ex.Name, ex.Industry))
		if ex.ColorMood != "" {
			sb.WriteString(fmt.Sprintf(", %s palette", ex.ColorMood))
		}
		sb.WriteString(")\n")
		if ex.Description != "" {
			sb.WriteString(ex.Description)
			sb.WriteString("\n")
		}
		sb.WriteString("```json\n")
		sb.Write(compact.Bytes())
		sb.WriteString("\n```\n\n")
	}

	if included > 0 {
		slog.DebugContext(ctx, "golden examples included in prompt", "count", included, "fetched", len(examples))
	}
	return sb.String()
}

func formatBrief(in model.DiscoveryInputs) string {
	var sb strings.Builder
	sb.WriteString("## Brand brief\n\n")
	sb.WriteString(fmt.Sprintf("- Company: %s\n", in.CompanyName))
	writeField(&sb, "Industry", in.Industry)
	writeField(&sb, "Target audience", in.TargetAudience)
	if len(in.Personality) > 0 {
		sb.WriteString(fmt.Sprintf("- Personality: %s\n", strings.Join(in.Personality, ", ")))
	}
	writeField(&sb, "Colour mood", string(in.ColorMood))
	writeField(&sb, "Colour brightness", string(in.ColorBrightness))
	writeField(&sb, "Typography style", string(in.TypographyStyle))
	writeField(&sb, "Density", string(in.Density))
	if in.HasExistingBrandColor() {
		sb.WriteString(fmt.Sprintf("- Existing brand colour: %s (use it as the primary colour)\n", strings.TrimSpace(*in.ExistingBrandColor)))
	}
	sb.WriteString("\n")
	return sb.String()
}

func writeField(sb *strings.Builder, label, value string) {
	if v := strings.TrimSpace(value); v != "" {
		sb.WriteString(fmt.Sprintf("- %s: %s\n", label, v))
	}
}

func formatIndustry(ind model.IndustryDecisions) string {
	var sb strings.Builder
	sb.WriteString("## Industry guidance\n\n")
	if p := ind.Profile; p != nil {
		sb.WriteString(fmt.Sprintf("Recognised industry: **%s**.\n\n", p.Name))
		if p.Guidance != "" {
			sb.WriteString(p.Guidance)
			sb.WriteString("\n\n")
		}
		if len(p.SuggestedPersonality) > 0 {
			sb.WriteString(fmt.Sprintf("Personalities that usually fit: %s.\n\n", strings.Join(p.SuggestedPersonality, ", ")))
		}
	} else {
		sb.WriteString("The industry did not match a known profile; use balanced, neutral defaults.\n\n")
	}
	def := ind.Defaults
	sb.WriteString(fmt.Sprintf("- Colour: %s mood, %s brightness\n", def.ColorMood, def.ColorBrightness))
	sb.WriteString(fmt.Sprintf("- Typography: %s\n", def.TypographyStyle))
	sb.WriteString(fmt.Sprintf("- Density: %s\n", def.Density))
	sb.WriteString(fmt.Sprintf("- Motion: %s\n", def.MotionIntensity))
	sb.WriteString(fmt.Sprintf("- Icons: %s\n\n", def.IconStyle))
	return sb.String()
}

func formatPersonality(p model.PersonalityDecisions) string {
	var sb strings.Builder
	sb.WriteString("## Personality guidance\n\n")
	if len(p.Matched) == 0 {
		sb.WriteString("No recognised personality adjectives; keep the visual language neutral.\n\n")
	}
	for _, adj := range p.Matched {
		m := profile.LookupPersonality(adj)
		if m == nil {
			continue
		}
		sb.WriteString(fmt.Sprintf("- **%s**: %s\n", m.Adjective, m.Description))
	}
	if len(p.Matched) > 0 {
		sb.WriteString("\n")
	}
	dec := p.Decision
	sb.WriteString(fmt.Sprintf("Resolved direction: %s corners, %s spacing, %s contrast, %s motion, %s type.\n\n",
		dec.BorderRadius, dec.Spacing, dec.Contrast, dec.Motion, dec.Typography))
	return sb.String()
}

func formatAudience(a model.AudienceDecisions) string {
	var sb strings.Builder
	sb.WriteString("## Audience guidance\n\n")
	if p := a.Profile; p != nil {
		sb.WriteString(fmt.Sprintf("Audience: **%s** (%s formality, %s technical level, %s accessibility priority).\n\n",
			p.Name, p.Formality, p.TechnicalLevel, p.AccessibilityPriority))
	}
	t := a.Typography
	sb.WriteString(fmt.Sprintf("- Body text at least %s with line height %s\n", t.MinBodySize, t.BodyLineHeight))
	sb.WriteString(fmt.Sprintf("- Heading weight %s, line length at most %s\n", t.HeadingWeight, t.MaxLineLength))
	v := a.Voice
	if v.Formality != "" {
		sb.WriteString(fmt.Sprintf("- Voice formality: %s\n", v.Formality))
	}
	if len(v.Tone) > 0 {
		sb.WriteString(fmt.Sprintf("- Tone: %s\n", strings.Join(v.Tone, ", ")))
	}
	if len(v.Avoid) > 0 {
		sb.WriteString(fmt.Sprintf("- Avoid: %s\n", strings.Join(v.Avoid, ", ")))
	}
	sb.WriteString("\n")
	return sb.String()
}

func formatDecisions(d model.DerivedDesignDecisions) string {
	var sb strings.Builder
	r := d.Recommendations
	sb.WriteString("## Derived decisions\n\n")
	sb.WriteString(fmt.Sprintf("- Colour mode: %s\n", r.ColorMode))
	sb.WriteString(fmt.Sprintf("- Motion: %s\n", r.PrimaryMotion))
	sb.WriteString(fmt.Sprintf("- Accessibility: WCAG %s contrast for all text pairs\n", r.AccessibilityLevel))
	f := r.SuggestedFonts
	sb.WriteString(fmt.Sprintf("- Display fonts (pick one): %s\n", strings.Join(f.Display, ", ")))
	sb.WriteString(fmt.Sprintf("- Body fonts (pick one): %s\n", strings.Join(f.Body, ", ")))
	sb.WriteString(fmt.Sprintf("- Monospace fonts (pick one): %s\n", strings.Join(f.Mono, ", ")))

	t := d.Personality.Tokens
	sb.WriteString(fmt.Sprintf("- Radius: sm %s, md %s, lg %s, button %s\n", t.Radius.SM, t.Radius.MD, t.Radius.LG, t.Radius.Button))
	sb.WriteString(fmt.Sprintf("- Spacing: xs %s, sm %s, md %s, lg %s, xl %s, 2xl %s, section %s\n",
		t.Spacing.XS, t.Spacing.SM, t.Spacing.MD, t.Spacing.LG, t.Spacing.XL, t.Spacing.XXL, t.Spacing.Section))
	sb.WriteString(fmt.Sprintf("- Shadows: sm `%s`, md `%s`, lg `%s`\n", t.Shadows.SM, t.Shadows.MD, t.Shadows.LG))
	sb.WriteString(fmt.Sprintf("- Durations: fast %s, normal %s, slow %s; easing `%s`\n\n", t.Motion.Fast, t.Motion.Normal, t.Motion.Slow, t.Motion.Easing))
	return sb.String()
}

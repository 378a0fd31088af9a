package palette

import (
	"fmt"
	"slices"
	"strings"

	"tokensmith.app/forge/internal/model"
)

func industryName(in model.DiscoveryInputs, d model.DerivedDesignDecisions) string {
	if d.Industry.Profile != nil {
		return d.Industry.Profile.Name
	}
	return strings.TrimSpace(in.Industry)
}

func audienceLabel(in model.DiscoveryInputs, d model.DerivedDesignDecisions) string {
	if d.Audience.Profile != nil {
		return strings.ToLower(d.Audience.Profile.Name)
	}
	if a := strings.TrimSpace(in.TargetAudience); a != "" {
		return a
	}
	return "teams"
}

func personalityTags(in model.DiscoveryInputs, d model.DerivedDesignDecisions) []string {
	if len(d.Personality.Matched) > 0 {
		return slices.Clone(d.Personality.Matched)
	}
	if d.Industry.Profile != nil {
		return slices.Clone(d.Industry.Profile.SuggestedPersonality)
	}
	return []string{"clear", "confident"}
}

func description(in model.DiscoveryInputs, d model.DerivedDesignDecisions) string {
	tags := personalityTags(in, d)
	industry := industryName(in, d)
	if industry == "" {
		return fmt.Sprintf("A %s brand system for %s.", strings.Join(tags, ", "), in.CompanyName)
	}
	return fmt.Sprintf("A %s brand system for %s in %s.", strings.Join(tags, ", "), in.CompanyName, industry)
}

func tagline(in model.DiscoveryInputs, d model.DerivedDesignDecisions) string {
	return fmt.Sprintf("Built for %s.", audienceLabel(in, d))
}

func imagery(d model.DerivedDesignDecisions) *model.Imagery {
	style, treatment := "photography", "natural light, real people, minimal retouching"
	switch d.Industry.Defaults.TypographyStyle {
	case model.TypographyStyleTechnical:
		style, treatment = "product-ui", "product screenshots and diagrams on brand surfaces"
	case model.TypographyStylePlayful:
		style, treatment = "illustration", "flat illustration using the accent palette"
	}
	return &model.Imagery{
		Style:     style,
		Treatment: treatment,
		Guidelines: []string{
			"Keep subjects on brand surfaces rather than busy backgrounds",
			"Use the primary colour sparingly as a highlight",
			"Provide alt text for every image",
		},
	}
}

func voice(in model.DiscoveryInputs, d model.DerivedDesignDecisions) *model.VoiceAndTone {
	name := in.CompanyName
	audience := audienceLabel(in, d)
	v := d.Audience.Voice

	style := v.Formality
	if len(v.Tone) > 0 {
		style = fmt.Sprintf("%s and %s", v.Formality, strings.Join(v.Tone, ", "))
	}

	do := make([]string, 0, len(v.Tone))
	for _, t := range v.Tone {
		do = append(do, "Be "+t)
	}
	dont := make([]string, 0, len(v.Avoid))
	for _, a := range v.Avoid {
		dont = append(dont, "Avoid "+a)
	}

	return &model.VoiceAndTone{
		PersonalityTags: personalityTags(in, d),
		WritingStyle:    style,
		Examples: &model.CopyExamples{
			Headlines: []string{
				fmt.Sprintf("%s, built for %s", name, audience),
				"Do more with less friction",
				fmt.Sprintf("Meet the new %s", name),
			},
			Ctas: []string{"Get started", "Book a demo", "See how it works"},
			Descriptions: []string{
				fmt.Sprintf("%s helps %s move faster with tools that stay out of the way.", name, audience),
				"Everything you need in one place, designed to grow with you.",
			},
			ErrorMessages: []string{
				"Something went wrong on our side. Please try again.",
				"We could not save your changes. Check your connection and retry.",
			},
		},
		Guidelines: &model.VoiceGuidelines{Do: do, Dont: dont},
	}
}

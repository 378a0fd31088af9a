// Package profile holds the static industry, audience and personality
// tables and the lookups that resolve free-text brief fields against them.
package profile

import (
	"slices"
	"strings"

	"tokensmith.app/forge/internal/model"
)

type industryEntry struct {
	key     string
	profile model.IndustryProfile
}

var industries = []industryEntry{
	{"ai-ml", model.IndustryProfile{
		Name:                 "AI/ML Infrastructure",
		ColorMood:            model.ColorMoodCool,
		ColorBrightness:      model.ColorBrightnessDark,
		TypographyStyle:      model.TypographyStyleTechnical,
		Density:              model.DensityCompact,
		MotionIntensity:      model.MotionSubtle,
		IconStyle:            model.IconStyleOutlined,
		SuggestedPersonality: []string{"innovative", "technical", "precise"},
		Guidance:             "Technical buyers evaluating performance and reliability. Favour dark surfaces, dense data displays, monospace accents and restrained motion.",
	}},
	{"devtools", model.IndustryProfile{
		Name:                 "Developer Tools",
		ColorMood:            model.ColorMoodCool,
		ColorBrightness:      model.ColorBrightnessDark,
		TypographyStyle:      model.TypographyStyleTechnical,
		Density:              model.DensityCompact,
		MotionIntensity:      model.MotionSubtle,
		IconStyle:            model.IconStyleOutlined,
		SuggestedPersonality: []string{"technical", "precise", "modern"},
		Guidance:             "Developers expect code-first presentation, keyboard-friendly density and honest copy. Show code samples and terminal output rather than stock imagery.",
	}},
	{"b2b-saas", model.IndustryProfile{
		Name:                 "B2B SaaS",
		ColorMood:            model.ColorMoodCool,
		ColorBrightness:      model.ColorBrightnessVibrant,
		TypographyStyle:      model.TypographyStyleModern,
		Density:              model.DensityBalanced,
		MotionIntensity:      model.MotionSubtle,
		IconStyle:            model.IconStyleOutlined,
		SuggestedPersonality: []string{"professional", "trustworthy", "modern"},
		Guidance:             "Teams comparing vendors on clarity and ROI. Clear hierarchy, confident primary colour, product screenshots and social proof.",
	}},
	{"enterprise", model.IndustryProfile{
		Name:                 "Enterprise Software",
		ColorMood:            model.ColorMoodNeutral,
		ColorBrightness:      model.ColorBrightnessMuted,
		TypographyStyle:      model.TypographyStyleClassic,
		Density:              model.DensityBalanced,
		MotionIntensity:      model.MotionMinimal,
		IconStyle:            model.IconStyleOutlined,
		SuggestedPersonality: []string{"trustworthy", "authoritative", "reliable"},
		Guidance:             "Risk-averse buyers with long procurement cycles. Emphasise stability, compliance and scale; avoid novelty for its own sake.",
	}},
	{"fintech", model.IndustryProfile{
		Name:                 "Fintech",
		ColorMood:            model.ColorMoodCool,
		ColorBrightness:      model.ColorBrightnessMuted,
		TypographyStyle:      model.TypographyStyleModern,
		Density:              model.DensityBalanced,
		MotionIntensity:      model.MotionSubtle,
		IconStyle:            model.IconStyleOutlined,
		SuggestedPersonality: []string{"trustworthy", "precise", "modern"},
		Guidance:             "Money is emotional. Convey security and precision, make numbers legible and keep success and error states unambiguous.",
	}},
	{"healthcare", model.IndustryProfile{
		Name:                 "Healthcare",
		ColorMood:            model.ColorMoodCool,
		ColorBrightness:      model.ColorBrightnessMuted,
		TypographyStyle:      model.TypographyStyleModern,
		Density:              model.DensitySpacious,
		MotionIntensity:      model.MotionMinimal,
		IconStyle:            model.IconStyleRounded,
		SuggestedPersonality: []string{"caring", "trustworthy", "calm"},
		Guidance:             "Users may be stressed or impaired. Prioritise legibility, generous touch targets, calm colour and strict contrast.",
	}},
	{"ecommerce", model.IndustryProfile{
		Name:                 "E-commerce",
		ColorMood:            model.ColorMoodWarm,
		ColorBrightness:      model.ColorBrightnessVibrant,
		TypographyStyle:      model.TypographyStyleModern,
		Density:              model.DensityBalanced,
		MotionIntensity:      model.MotionExpressive,
		IconStyle:            model.IconStyleFilled,
		SuggestedPersonality: []string{"friendly", "energetic", "approachable"},
		Guidance:             "Product imagery leads. Strong calls to action, visible pricing and quick feedback on cart interactions.",
	}},
	{"education", model.IndustryProfile{
		Name:                 "Education",
		ColorMood:            model.ColorMoodWarm,
		ColorBrightness:      model.ColorBrightnessVibrant,
		TypographyStyle:      model.TypographyStylePlayful,
		Density:              model.DensitySpacious,
		MotionIntensity:      model.MotionSubtle,
		IconStyle:            model.IconStyleRounded,
		SuggestedPersonality: []string{"friendly", "approachable", "caring"},
		Guidance:             "Encourage progress. Friendly illustration, clear progress indicators and readable long-form text.",
	}},
	{"cybersecurity", model.IndustryProfile{
		Name:                 "Cybersecurity",
		ColorMood:            model.ColorMoodCool,
		ColorBrightness:      model.ColorBrightnessDark,
		TypographyStyle:      model.TypographyStyleTechnical,
		Density:              model.DensityCompact,
		MotionIntensity:      model.MotionMinimal,
		IconStyle:            model.IconStyleOutlined,
		SuggestedPersonality: []string{"authoritative", "precise", "reliable"},
		Guidance:             "Operators scanning for threats. High-signal dashboards, severity colour coding and no decorative motion.",
	}},
	{"consumer", model.IndustryProfile{
		Name:                 "Consumer Apps",
		ColorMood:            model.ColorMoodWarm,
		ColorBrightness:      model.ColorBrightnessVibrant,
		TypographyStyle:      model.TypographyStylePlayful,
		Density:              model.DensitySpacious,
		MotionIntensity:      model.MotionExpressive,
		IconStyle:            model.IconStyleRounded,
		SuggestedPersonality: []string{"playful", "friendly", "energetic"},
		Guidance:             "Delight and habit. Expressive colour, tactile motion and short punchy copy.",
	}},
	{"media", model.IndustryProfile{
		Name:                 "Media & Entertainment",
		ColorMood:            model.ColorMoodWarm,
		ColorBrightness:      model.ColorBrightnessDark,
		TypographyStyle:      model.TypographyStyleModern,
		Density:              model.DensitySpacious,
		MotionIntensity:      model.MotionExpressive,
		IconStyle:            model.IconStyleFilled,
		SuggestedPersonality: []string{"bold", "creative", "energetic"},
		Guidance:             "Content is the hero. Dark canvases that let artwork glow, cinematic type and confident transitions.",
	}},
	{"real-estate", model.IndustryProfile{
		Name:                 "Real Estate",
		ColorMood:            model.ColorMoodNeutral,
		ColorBrightness:      model.ColorBrightnessMuted,
		TypographyStyle:      model.TypographyStyleClassic,
		Density:              model.DensitySpacious,
		MotionIntensity:      model.MotionMinimal,
		IconStyle:            model.IconStyleOutlined,
		SuggestedPersonality: []string{"elegant", "trustworthy", "sophisticated"},
		Guidance:             "Aspirational but grounded. Large photography, elegant serif headings and understated UI chrome.",
	}},
	{"sustainability", model.IndustryProfile{
		Name:                 "Sustainability",
		ColorMood:            model.ColorMoodWarm,
		ColorBrightness:      model.ColorBrightnessMuted,
		TypographyStyle:      model.TypographyStyleModern,
		Density:              model.DensitySpacious,
		MotionIntensity:      model.MotionSubtle,
		IconStyle:            model.IconStyleDuotone,
		SuggestedPersonality: []string{"warm", "caring", "innovative"},
		Guidance:             "Credible optimism. Earthy palettes, data-backed claims and natural imagery without greenwashing cliches.",
	}},
	{"professional-services", model.IndustryProfile{
		Name:                 "Professional Services",
		ColorMood:            model.ColorMoodNeutral,
		ColorBrightness:      model.ColorBrightnessMuted,
		TypographyStyle:      model.TypographyStyleClassic,
		Density:              model.DensityBalanced,
		MotionIntensity:      model.MotionMinimal,
		IconStyle:            model.IconStyleOutlined,
		SuggestedPersonality: []string{"professional", "authoritative", "sophisticated"},
		Guidance:             "Expertise and discretion. Restrained palette, strong typography and case-study driven layouts.",
	}},
	{"gaming", model.IndustryProfile{
		Name:                 "Gaming",
		ColorMood:            model.ColorMoodCool,
		ColorBrightness:      model.ColorBrightnessDark,
		TypographyStyle:      model.TypographyStylePlayful,
		Density:              model.DensityCompact,
		MotionIntensity:      model.MotionExpressive,
		IconStyle:            model.IconStyleFilled,
		SuggestedPersonality: []string{"bold", "energetic", "playful"},
		Guidance:             "Immersion first. Saturated accents on dark backgrounds, display type and energetic motion.",
	}},
}

// industryKeywords is scanned in order; the first keyword contained in the
// input wins. Longer, more specific keywords must precede short ones they
// could collide with ("retail" contains "ai").
var industryKeywords = []struct {
	keyword string
	key     string
}{
	{"machine learning", "ai-ml"},
	{"artificial intelligence", "ai-ml"},
	{"llm", "ai-ml"},
	{"gpu", "ai-ml"},
	{"developer", "devtools"},
	{"devtools", "devtools"},
	{"sdk", "devtools"},
	{"enterprise", "enterprise"},
	{"erp", "enterprise"},
	{"saas", "b2b-saas"},
	{"b2b", "b2b-saas"},
	{"bank", "fintech"},
	{"payment", "fintech"},
	{"finance", "fintech"},
	{"crypto", "fintech"},
	{"insurance", "fintech"},
	{"medical", "healthcare"},
	{"health", "healthcare"},
	{"clinic", "healthcare"},
	{"pharma", "healthcare"},
	{"retail", "ecommerce"},
	{"commerce", "ecommerce"},
	{"shop", "ecommerce"},
	{"store", "ecommerce"},
	{"school", "education"},
	{"edtech", "education"},
	{"university", "education"},
	{"learning", "education"},
	{"security", "cybersecurity"},
	{"privacy", "cybersecurity"},
	{"esports", "gaming"},
	{"game", "gaming"},
	{"entertainment", "media"},
	{"streaming", "media"},
	{"music", "media"},
	{"film", "media"},
	{"property", "real-estate"},
	{"housing", "real-estate"},
	{"climate", "sustainability"},
	{"energy", "sustainability"},
	{"solar", "sustainability"},
	{"consult", "professional-services"},
	{"legal", "professional-services"},
	{"accounting", "professional-services"},
	{"social", "consumer"},
	{"consumer", "consumer"},
	{"ai", "ai-ml"},
	{"ml", "ai-ml"},
}

// LookupIndustry resolves free text to an industry profile: exact key or
// name, then substring containment in either direction against names, then
// the keyword table. Returns nil on a miss.
func LookupIndustry(input string) *model.IndustryProfile {
	key := strings.ToLower(strings.TrimSpace(input))
	if key == "" {
		return nil
	}

	for i := range industries {
		if industries[i].key == key || strings.ToLower(industries[i].profile.Name) == key {
			return copyIndustry(industries[i].profile)
		}
	}

	for i := range industries {
		name := strings.ToLower(industries[i].profile.Name)
		if strings.Contains(key, name) || strings.Contains(name, key) {
			return copyIndustry(industries[i].profile)
		}
	}

	for _, kw := range industryKeywords {
		if strings.Contains(key, kw.keyword) {
			return industryByKey(kw.key)
		}
	}
	return nil
}

// Industries returns every industry profile in table order.
func Industries() []model.IndustryProfile {
	out := make([]model.IndustryProfile, len(industries))
	for i := range industries {
		out[i] = *copyIndustry(industries[i].profile)
	}
	return out
}

func industryByKey(key string) *model.IndustryProfile {
	for i := range industries {
		if industries[i].key == key {
			return copyIndustry(industries[i].profile)
		}
	}
	return nil
}

func copyIndustry(p model.IndustryProfile) *model.IndustryProfile {
	p.SuggestedPersonality = slices.Clone(p.SuggestedPersonality)
	return &p
}

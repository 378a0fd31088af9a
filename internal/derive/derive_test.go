package derive_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"tokensmith.app/forge/internal/derive"
	"tokensmith.app/forge/internal/model"
)

func brief() model.DiscoveryInputs {
	return model.DiscoveryInputs{
		CompanyName:     "Acme",
		Industry:        "B2B SaaS",
		TargetAudience:  "enterprise",
		Personality:     []string{"bold", "trustworthy", "innovative"},
		ColorMood:       model.ColorMoodCool,
		ColorBrightness: model.ColorBrightnessVibrant,
		TypographyStyle: model.TypographyStyleModern,
		Density:         model.DensityBalanced,
	}
}

var _ = Describe("Derive", func() {
	It("is deterministic", func() {
		in := brief()
		first := derive.Derive(in)
		for range 5 {
			Expect(derive.Derive(in)).To(Equal(first))
		}
	})

	It("records the resolved profiles and matched adjectives", func() {
		in := brief()
		in.Personality = []string{"Bold", "zesty", "innovative"}

		d := derive.Derive(in)
		Expect(d.Industry.Profile.Name).To(Equal("B2B SaaS"))
		Expect(d.Audience.Profile.Name).To(Equal("Enterprise Buyers"))
		Expect(d.Personality.Matched).To(Equal([]string{"bold", "innovative"}))
		Expect(d.Personality.Tokens).To(Equal(derive.MapToTokens(d.Personality.Decision)))
	})

	Describe("colour mode", func() {
		It("keeps explicit dark over a critical-accessibility audience", func() {
			in := brief()
			in.ColorBrightness = model.ColorBrightnessDark
			in.TargetAudience = "healthcare"
			Expect(derive.Derive(in).Recommendations.ColorMode).To(Equal(model.ColorModeDark))
		})

		It("uses the industry's dark default", func() {
			in := brief()
			in.Industry = "Developer Tools"
			Expect(derive.Derive(in).Recommendations.ColorMode).To(Equal(model.ColorModeDark))
		})

		It("forces light for a critical audience otherwise", func() {
			in := brief()
			in.TargetAudience = "healthcare"
			Expect(derive.Derive(in).Recommendations.ColorMode).To(Equal(model.ColorModeLight))
		})

		It("offers both modes by default", func() {
			Expect(derive.Derive(brief()).Recommendations.ColorMode).To(Equal(model.ColorModeBoth))
		})
	})

	Describe("motion and accessibility", func() {
		It("caps motion and raises the WCAG level for critical audiences", func() {
			in := brief()
			in.TargetAudience = "healthcare"
			in.Personality = []string{"playful"}

			r := derive.Derive(in).Recommendations
			Expect(r.PrimaryMotion).To(Equal(model.MotionMinimal))
			Expect(r.AccessibilityLevel).To(Equal(model.AccessibilityAAA))
		})

		It("uses AAA for high priority and AA for standard", func() {
			Expect(derive.Derive(brief()).Recommendations.AccessibilityLevel).To(Equal(model.AccessibilityAAA))

			in := brief()
			in.TargetAudience = "developers"
			Expect(derive.Derive(in).Recommendations.AccessibilityLevel).To(Equal(model.AccessibilityAA))
		})

		It("keeps the personality motion for standard audiences", func() {
			in := brief()
			in.TargetAudience = "developers"
			in.Personality = []string{"playful"}
			Expect(derive.Derive(in).Recommendations.PrimaryMotion).To(Equal(model.MotionExpressive))
		})
	})

	Describe("unresolved inputs", func() {
		It("still produces a complete decision set", func() {
			d := derive.Derive(model.DiscoveryInputs{CompanyName: "Nowhere", Industry: "quantum biotech"})
			Expect(d.Industry.Profile).To(BeNil())
			Expect(d.Audience.Profile).To(BeNil())
			Expect(d.Personality.Decision).To(Equal(derive.NeutralDecision))
			Expect(d.Audience.Typography.MinBodySize).To(Equal("16px"))
			Expect(d.Audience.Voice.Formality).To(Equal("professional"))
			Expect(d.Recommendations.SuggestedFonts.Display).To(HaveLen(3))
		})

		It("takes industry defaults from the brief when the industry is unknown", func() {
			in := model.DiscoveryInputs{Industry: "quantum biotech", ColorMood: model.ColorMoodWarm, Density: model.DensitySpacious}
			defaults := derive.Derive(in).Industry.Defaults
			Expect(defaults.ColorMood).To(Equal(model.ColorMoodWarm))
			Expect(defaults.Density).To(Equal(model.DensitySpacious))
		})
	})
})

var _ = Describe("SuggestFonts", func() {
	It("looks up the style and family cell", func() {
		f := derive.SuggestFonts(model.TypographyStyleClassic, model.TypographyTransitional, model.LevelLow)
		Expect(f.Display).To(Equal([]string{"Playfair Display", "Libre Caslon Display", "Cormorant"}))
		Expect(f.Body).To(HaveLen(3))
	})

	It("falls back to modern/humanist", func() {
		Expect(derive.SuggestFonts("", model.TypographyGeometric, model.LevelLow)).
			To(Equal(derive.SuggestFonts(model.TypographyStyleModern, model.TypographyHumanist, model.LevelLow)))
	})

	It("picks the mono pair by technical level", func() {
		Expect(derive.SuggestFonts(model.TypographyStyleModern, model.TypographyHumanist, model.LevelHigh).Mono).
			To(Equal([]string{"JetBrains Mono", "Fira Code"}))
		Expect(derive.SuggestFonts(model.TypographyStyleModern, model.TypographyHumanist, model.LevelMedium).Mono).
			To(Equal([]string{"IBM Plex Mono", "Roboto Mono"}))
	})
})

package palette_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"tokensmith.app/forge/internal/derive"
	"tokensmith.app/forge/internal/model"
	"tokensmith.app/forge/internal/palette"
)

func brief() model.DiscoveryInputs {
	return model.DiscoveryInputs{
		CompanyName:     "Acme",
		Industry:        "Developer Tools",
		TargetAudience:  "developers",
		Personality:     []string{"technical", "bold"},
		ColorMood:       model.ColorMoodCool,
		ColorBrightness: model.ColorBrightnessVibrant,
		TypographyStyle: model.TypographyStyleTechnical,
		Density:         model.DensityCompact,
	}
}

var _ = Describe("ContrastRatio", func() {
	It("is 21 for black on white", func() {
		ratio, err := palette.ContrastRatio("#000000", "#ffffff")
		Expect(err).NotTo(HaveOccurred())
		Expect(ratio).To(BeNumerically("~", 21, 0.01))
	})

	It("is symmetric", func() {
		a, _ := palette.ContrastRatio("#2563eb", "#f8fafc")
		b, _ := palette.ContrastRatio("#f8fafc", "#2563eb")
		Expect(a).To(BeNumerically("~", b, 1e-9))
	})

	It("reads rgb() and rgba() notation", func() {
		ratio, err := palette.ContrastRatio("rgba(0, 0, 0, 0.5)", "rgb(255,255,255)")
		Expect(err).NotTo(HaveOccurred())
		Expect(ratio).To(BeNumerically("~", 21, 0.01))
	})

	It("rejects unparseable input", func() {
		_, err := palette.ContrastRatio("cornflower", "#fff")
		Expect(err).To(HaveOccurred())
		_, err = palette.ContrastRatio("rgb(300, 0, 0)", "#fff")
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("ReadableOn", func() {
	It("picks white on dark and ink on light", func() {
		Expect(palette.ReadableOn("#111827")).To(Equal("#ffffff"))
		Expect(palette.ReadableOn("#fef3c7")).NotTo(Equal("#ffffff"))
	})
})

var _ = Describe("Scaffold", func() {
	var tokens *model.BrandSystem

	BeforeEach(func() {
		in := brief()
		tokens = palette.Scaffold(in, derive.Derive(in))
	})

	It("produces a complete 2.1 tree", func() {
		Expect(tokens.SchemaVersion).To(Equal(model.SchemaVersion21))
		Expect(tokens.IncompleteColors()).To(BeEmpty())
		for _, s := range []model.Section{
			model.SectionSurface, model.SectionBorderColors, model.SectionStatusColors,
			model.SectionTypeScale, model.SectionSemanticSpacing, model.SectionLoadingMotion,
			model.SectionButton, model.SectionCard, model.SectionInput, model.SectionAlert,
			model.SectionTable, model.SectionNavigation, model.SectionTag, model.SectionTabs,
			model.SectionForm, model.SectionTableVariants, model.SectionStatCard, model.SectionProgress,
			model.SectionTimeline, model.SectionCodeBlock, model.SectionChart, model.SectionIcons,
			model.SectionGrid, model.SectionBreakpoints, model.SectionZIndex, model.SectionImagery,
			model.SectionCopyExamples, model.SectionVoiceGuidelines,
		} {
			Expect(tokens.Has(s)).To(BeTrue(), string(s))
		}
	})

	It("is deterministic", func() {
		in := brief()
		Expect(palette.Scaffold(in, derive.Derive(in))).To(Equal(tokens))
	})

	It("uses the derived primitives", func() {
		d := derive.Derive(brief())
		Expect(tokens.Borders.Radius.Value("button")).To(Equal(d.Personality.Tokens.Radius.Button))
		Expect(tokens.Motion.Duration.Value("fast")).To(Equal(d.Personality.Tokens.Motion.Fast))
		Expect(tokens.Typography.FontFamily.Mono).To(ContainSubstring("JetBrains Mono"))
	})

	It("keeps primary foregrounds readable", func() {
		for _, mode := range []model.ColorMode{model.ColorModeLight, model.ColorModeDark} {
			ratio, err := palette.ContrastRatio(tokens.Colors.Primary.For(mode), tokens.Colors.PrimaryForeground.For(mode))
			Expect(err).NotTo(HaveOccurred())
			Expect(ratio).To(BeNumerically(">=", 3), string(mode))
		}
	})

	It("starts from an existing brand colour", func() {
		in := brief()
		brand := "#ff5500"
		in.ExistingBrandColor = &brand
		got := palette.Scaffold(in, derive.Derive(in))
		Expect(got.Colors.Primary.Light).To(Equal("#ff5500"))
	})

	It("fills copy from the company name", func() {
		Expect(tokens.Examples().Headlines[0]).To(ContainSubstring("Acme"))
		Expect(tokens.VoiceAndTone.PersonalityTags).To(Equal([]string{"technical", "bold"}))
	})
})

var _ = Describe("ApplyDecisions", func() {
	It("fills only absent values and leaves the input alone", func() {
		d := derive.Derive(brief())
		generated := &model.BrandSystem{
			Typography: model.Typography{FontFamily: model.FontFamily{Heading: "Custom"}},
			Borders:    model.Borders{Radius: model.Scale{{Key: "md", Value: "3px"}}},
		}

		out, err := palette.ApplyDecisions(generated, d)
		Expect(err).NotTo(HaveOccurred())

		Expect(out.Typography.FontFamily.Heading).To(Equal("Custom"))
		Expect(out.Typography.FontFamily.Body).NotTo(BeEmpty())
		Expect(out.Borders.Radius.Value("md")).To(Equal("3px"))
		Expect(out.Borders.Radius.Value("sm")).To(Equal(d.Personality.Tokens.Radius.SM))
		Expect(out.Spacing.Scale.Value("2xl")).To(Equal(d.Personality.Tokens.Spacing.XXL))
		Expect(out.Motion.Easing.Value("default")).To(Equal(d.Personality.Tokens.Motion.Easing))
		Expect(out.Metadata.Version).To(Equal("1.0.0"))

		Expect(generated.Borders.Radius).To(HaveLen(1))
		Expect(generated.Typography.FontFamily.Body).To(BeEmpty())
	})

	It("rejects a nil tree", func() {
		_, err := palette.ApplyDecisions(nil, model.DerivedDesignDecisions{})
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("CompleteColors", func() {
	It("derives the missing side of half-set leaves", func() {
		tokens := &model.BrandSystem{}
		tokens.Colors.Primary = model.ColorToken{Light: "#2563eb"}
		tokens.Colors.Background = model.ColorToken{Dark: "#0b1220"}
		tokens.Colors.Accent = model.ColorToken{Light: "rgba(37, 99, 235, 0.5)"}
		tokens.Colors.Muted = model.ColorToken{Light: "var(--brand)"}

		filled := palette.CompleteColors(tokens)
		Expect(filled).To(ConsistOf("colors.primary.dark", "colors.background.light", "colors.accent.dark"))
		Expect(tokens.Colors.Primary.Dark).To(MatchRegexp(`^#[0-9a-f]{6}$`))
		Expect(tokens.Colors.Background.Light).To(HavePrefix("#"))
		Expect(tokens.Colors.Accent.Dark).To(MatchRegexp(`^rgba\(\d+, \d+, \d+, 0\.5\)$`))
		Expect(tokens.Colors.Muted.Dark).To(BeEmpty())
	})
})

var _ = Describe("Backfill", func() {
	var ref *model.BrandSystem

	BeforeEach(func() {
		in := brief()
		ref = palette.Scaffold(in, derive.Derive(in))
	})

	It("fills only the missing sides from the reference tree", func() {
		tokens := &model.BrandSystem{}
		tokens.Colors.Primary = model.ColorToken{Light: "#7c3aed"}
		tokens.Colors.Muted = model.ColorToken{Light: "var(--brand)"}

		filled := palette.Backfill(tokens, ref)

		Expect(tokens.IncompleteColors()).To(BeEmpty())
		Expect(tokens.Colors.Primary).To(Equal(model.ColorToken{Light: "#7c3aed", Dark: ref.Colors.Primary.Dark}))
		Expect(tokens.Colors.Muted).To(Equal(model.ColorToken{Light: "var(--brand)", Dark: ref.Colors.Muted.Dark}))
		Expect(tokens.Colors.Background).To(Equal(ref.Colors.Background))
		Expect(filled).To(ContainElements("colors.primary.dark", "colors.background.light", "colors.background.dark"))
		Expect(filled).NotTo(ContainElement("colors.primary.light"))
	})

	It("reuses the reference chart palette for extra chart entries", func() {
		tokens, err := ref.Clone()
		Expect(err).NotTo(HaveOccurred())
		n := len(ref.DataVisualization.Chart)
		tokens.DataVisualization.Chart = append(tokens.DataVisualization.Chart, model.ColorToken{})

		filled := palette.Backfill(tokens, ref)

		Expect(filled).To(HaveLen(2))
		Expect(tokens.DataVisualization.Chart[n]).To(Equal(ref.DataVisualization.Chart[0]))
		Expect(tokens.IncompleteColors()).To(BeEmpty())
	})

	It("leaves complete trees untouched", func() {
		tokens, err := ref.Clone()
		Expect(err).NotTo(HaveOccurred())
		Expect(palette.Backfill(tokens, ref)).To(BeEmpty())
		Expect(tokens.Colors).To(Equal(ref.Colors))
	})
})

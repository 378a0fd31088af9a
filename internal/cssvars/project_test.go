package cssvars_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"tokensmith.app/forge/internal/cssvars"
	"tokensmith.app/forge/internal/derive"
	"tokensmith.app/forge/internal/model"
	"tokensmith.app/forge/internal/palette"
)

func scaffold(in model.DiscoveryInputs) *model.BrandSystem {
	return palette.Scaffold(in, derive.Derive(in))
}

func minimal() *model.BrandSystem {
	return &model.BrandSystem{
		Metadata: model.Metadata{Name: "Acme"},
		Colors: model.Colors{
			Primary:           model.Color("#2563eb", "#60a5fa"),
			PrimaryForeground: model.Color("#ffffff", "#0b1220"),
			Background:        model.Color("#ffffff", "#0b1220"),
			Foreground:        model.Color("#0f172a", "#f8fafc"),
		},
		Spacing: model.Spacing{Scale: model.Scale{{Key: "md", Value: "1rem"}}},
	}
}

var briefs = []model.DiscoveryInputs{
	{CompanyName: "Acme", Industry: "B2B SaaS", TargetAudience: "enterprise", Personality: []string{"bold", "trustworthy"}},
	{CompanyName: "Care", Industry: "Healthcare", TargetAudience: "healthcare", Personality: []string{"caring"}, ColorMood: model.ColorMoodWarm},
	{CompanyName: "Byte", Industry: "Developer Tools", TargetAudience: "developers", Personality: []string{"technical"}, ColorBrightness: model.ColorBrightnessDark},
	{CompanyName: "Nowhere", Industry: "quantum biotech"},
}

var _ = Describe("Project", func() {
	It("projects every colour path in both modes for generated trees", func() {
		for _, in := range briefs {
			tokens := scaffold(in)
			light := cssvars.Project(tokens, model.ColorModeLight)
			dark := cssvars.Project(tokens, model.ColorModeDark)

			for _, g := range tokens.ColorGroups() {
				for _, leaf := range g.Leaves {
					n := "--" + strings.Trim(cssvars.Kebab(g.Namespace)+"-"+cssvars.Kebab(leaf.Key), "-")
					lv, ok := light.Get(n)
					Expect(ok).To(BeTrue(), n)
					Expect(lv).To(Equal(leaf.Token.Light), n)
					dv, ok := dark.Get(n)
					Expect(ok).To(BeTrue(), n)
					Expect(dv).To(Equal(leaf.Token.Dark), n)
				}
			}
			for _, d := range light.All() {
				Expect(d.Value).NotTo(BeEmpty(), d.Name)
			}
		}
	})

	It("does not collide on top-level colour names", func() {
		tokens := scaffold(briefs[0])
		seen := map[string]string{}
		for _, leaf := range tokens.ColorGroups()[0].Leaves {
			k := cssvars.Kebab(leaf.Key)
			Expect(seen).NotTo(HaveKey(k), leaf.Key)
			seen[k] = leaf.Key
		}
	})

	It("names colours and scalars with fixed prefixes", func() {
		vars := cssvars.Project(scaffold(briefs[0]), model.ColorModeLight).Map()
		for _, n := range []string{
			"--primary", "--primary-foreground", "--surface-raised", "--border-focus",
			"--btn-primary-bg", "--btn-outline-border", "--card-bg", "--input-focus", "--alert-info-bg",
			"--table-header-bg", "--nav-active", "--tag-text", "--tabs-indicator", "--form-error",
			"--table-striped-row-alt-bg", "--stat-card-value", "--progress-fill", "--timeline-dot-active",
			"--code-keyword", "--chart-1", "--skeleton-base", "--spinner-color",
			"--space-md", "--spacing-component-md", "--spacing-section-lg", "--radius-button",
			"--border-width-thin", "--shadow-md", "--duration-fast", "--ease-default", "--z-modal",
			"--breakpoint-lg", "--font-heading", "--text-base", "--font-weight-bold", "--leading-normal",
			"--tracking-wide", "--type-h1-size", "--type-body-large-line-height", "--btn-radius", "--grid-columns",
		} {
			Expect(vars).To(HaveKey(n))
		}
	})

	It("skips absent sections and half-set leaves", func() {
		tokens := minimal()
		tokens.Colors.Accent = model.ColorToken{Light: "#f59e0b"}

		vars := cssvars.Project(tokens, model.ColorModeLight).Map()
		Expect(vars).To(HaveKeyWithValue("--primary", "#2563eb"))
		Expect(vars).To(HaveKeyWithValue("--space-md", "1rem"))
		Expect(vars).NotTo(HaveKey("--accent"))
		for n := range vars {
			Expect(n).NotTo(HavePrefix("--btn-"))
			Expect(n).NotTo(HavePrefix("--stat-card-"))
			Expect(n).NotTo(HavePrefix("--spacing-"))
		}
	})

	It("reads light for anything but dark", func() {
		Expect(cssvars.Project(minimal(), model.ColorModeBoth).Map()).To(HaveKeyWithValue("--primary", "#2563eb"))
	})

	It("handles a nil tree", func() {
		Expect(cssvars.Project(nil, model.ColorModeLight).Len()).To(BeZero())
	})
})

var _ = Describe("GenerateFullCSS", func() {
	It("wraps light values in :root and the full dark projection in a media query", func() {
		tokens := minimal()
		css := cssvars.GenerateFullCSS(tokens)

		Expect(css).To(HavePrefix(":root {\n"))
		Expect(css).To(ContainSubstring("  --primary: #2563eb;\n"))
		Expect(css).To(ContainSubstring("@media (prefers-color-scheme: dark) {\n  :root {\n"))
		Expect(css).To(ContainSubstring("    --primary: #60a5fa;\n"))

		dark := css[strings.Index(css, "@media"):]
		for _, d := range cssvars.Project(tokens, model.ColorModeDark).All() {
			Expect(dark).To(ContainSubstring("    "+d.Name+": "), d.Name)
		}
		Expect(dark).To(ContainSubstring("--space-md"))
	})

	It("strips declaration breakers from values", func() {
		tokens := minimal()
		tokens.Shadows = model.Scale{{Key: "sm", Value: "none; } body { display: none"}}
		css := cssvars.GenerateFullCSS(tokens)
		Expect(strings.Count(css, "}")).To(Equal(3))
	})
})

var _ = Describe("Theme", func() {
	It("keeps light and dark scopes independent", func() {
		tokens := minimal()
		light := cssvars.NewTheme(tokens, model.ColorModeLight)
		dark := cssvars.NewTheme(tokens, model.ColorModeDark)

		lt, dt := cssvars.StyleMap{}, cssvars.StyleMap{}
		light.Apply(lt)
		dark.Apply(dt)

		Expect(lt["--primary"]).To(Equal("#2563eb"))
		Expect(dt["--primary"]).To(Equal("#60a5fa"))
		Expect(light.Var("--primary", "")).To(Equal("#2563eb"))
	})

	It("renders inline styles and blocks", func() {
		theme := cssvars.NewTheme(minimal(), model.ColorModeDark)
		Expect(theme.Mode).To(Equal(model.ColorModeDark))
		Expect(theme.Style()).To(ContainSubstring("--primary: #60a5fa; --primary-foreground: #0b1220"))
		Expect(theme.Block(".preview")).To(HavePrefix(".preview {\n  --primary: #60a5fa;\n"))
		Expect(theme.Var("--missing", "fallback")).To(Equal("fallback"))
	})

	It("treats the zero Theme as empty", func() {
		var theme cssvars.Theme
		Expect(theme.Style()).To(BeEmpty())
	})
})

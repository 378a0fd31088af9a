package model_test

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"tokensmith.app/forge/internal/model"
)

const minimalTokens = `{
  "metadata": {"name": "Acme", "version": "1.0.0"},
  "colors": {
    "primary": {"light": "#2563eb", "dark": "#60a5fa"},
    "primaryForeground": {"light": "#ffffff", "dark": "#0b1220"},
    "secondary": {"light": "#f1f5f9", "dark": "#1e293b"},
    "secondaryForeground": {"light": "#0f172a", "dark": "#f8fafc"},
    "accent": {"light": "#f59e0b", "dark": "#fbbf24"},
    "accentForeground": {"light": "#111827", "dark": "#111827"},
    "background": {"light": "#ffffff", "dark": "#0b1220"},
    "foreground": {"light": "#0f172a", "dark": "#f8fafc"},
    "muted": {"light": "#f1f5f9", "dark": "#1e293b"},
    "mutedForeground": {"light": "#64748b", "dark": "#94a3b8"},
    "card": {"light": "#ffffff", "dark": "#111827"},
    "cardForeground": {"light": "#0f172a", "dark": "#f8fafc"},
    "destructive": {"light": "#dc2626", "dark": "#f87171"},
    "destructiveForeground": {"light": "#ffffff", "dark": "#0b1220"}
  },
  "typography": {"fontFamily": {"heading": "Inter", "body": "Inter"}, "fontWeight": {"bold": 700}},
  "spacing": {"sm": "8px"},
  "borders": {"radius": {"md": "8px"}},
  "motion": {"duration": {"fast": "150ms"}}
}`

func decode(raw string) *model.BrandSystem {
	var b model.BrandSystem
	Expect(json.Unmarshal([]byte(raw), &b)).To(Succeed())
	return &b
}

var _ = Describe("BrandSystem", func() {
	Describe("JSON contract", func() {
		It("omits absent optional sections instead of writing null", func() {
			out, err := json.Marshal(decode(minimalTokens))
			Expect(err).NotTo(HaveOccurred())

			var generic map[string]any
			Expect(json.Unmarshal(out, &generic)).To(Succeed())
			Expect(generic).NotTo(HaveKey("components"))
			Expect(generic).NotTo(HaveKey("dataVisualization"))
			Expect(generic).NotTo(HaveKey("voiceAndTone"))
			Expect(generic["colors"]).NotTo(HaveKey("surface"))
		})

		It("keeps numeric font weights numeric", func() {
			out, err := json.Marshal(decode(minimalTokens))
			Expect(err).NotTo(HaveOccurred())
			Expect(string(out)).To(ContainSubstring(`"fontWeight":{"bold":700}`))
		})
	})

	Describe("Has", func() {
		It("is false for every optional section of a minimal tree", func() {
			b := decode(minimalTokens)
			for _, s := range []model.Section{
				model.SectionSurface, model.SectionButton, model.SectionAlert, model.SectionChart,
				model.SectionLoadingMotion, model.SectionCopyExamples, model.SectionTypeScale,
			} {
				Expect(b.Has(s)).To(BeFalse(), string(s))
			}
		})

		It("is false for a nil tree", func() {
			var b *model.BrandSystem
			Expect(b.Has(model.SectionComponents)).To(BeFalse())
		})

		It("sees nested sections", func() {
			b := decode(minimalTokens)
			b.Components = &model.Components{Tabs: &model.TabsTokens{}}
			b.VoiceAndTone = &model.VoiceAndTone{Examples: &model.CopyExamples{Headlines: []string{"Hi"}}}

			Expect(b.Has(model.SectionComponents)).To(BeTrue())
			Expect(b.Has(model.SectionTabs)).To(BeTrue())
			Expect(b.Has(model.SectionButton)).To(BeFalse())
			Expect(b.Has(model.SectionCopyExamples)).To(BeTrue())
			Expect(b.Examples().Headlines).To(ConsistOf("Hi"))
		})
	})

	Describe("EffectiveSchemaVersion", func() {
		It("prefers the declared version", func() {
			b := decode(minimalTokens)
			b.SchemaVersion = "2.0"
			Expect(b.EffectiveSchemaVersion()).To(Equal("2.0"))
		})

		It("infers from the newest section present", func() {
			b := decode(minimalTokens)
			Expect(b.EffectiveSchemaVersion()).To(Equal(model.SchemaVersion1))

			b.Colors.Surface = &model.SurfaceColors{}
			Expect(b.EffectiveSchemaVersion()).To(Equal(model.SchemaVersion2))

			b.Motion.Loading = &model.LoadingMotion{Spinner: &model.SpinnerTokens{}}
			Expect(b.EffectiveSchemaVersion()).To(Equal(model.SchemaVersion21))
		})
	})

	Describe("ColorGroups", func() {
		It("lists the core colours first in declaration order", func() {
			groups := decode(minimalTokens).ColorGroups()
			Expect(groups).To(HaveLen(1))
			Expect(groups[0].Path).To(Equal("colors"))
			Expect(groups[0].Leaves).To(HaveLen(14))
			Expect(groups[0].Leaves[0].Key).To(Equal("primary"))
		})

		It("adds namespaced groups for present sections", func() {
			b := decode(minimalTokens)
			b.Components = &model.Components{
				Button: &model.ButtonTokens{Primary: &model.ButtonVariant{
					Background: model.Color("#000", "#fff"),
					Foreground: model.Color("#fff", "#000"),
				}},
				TableVariants: &model.TableVariantsTokens{Striped: &model.TableVariant{}},
			}
			b.DataVisualization = &model.DataVisualization{Chart: []model.ColorToken{model.Color("#111", "#eee")}}

			var namespaces []string
			for _, g := range b.ColorGroups() {
				namespaces = append(namespaces, g.Namespace)
			}
			Expect(namespaces).To(Equal([]string{"", "btn", "table-striped", "chart"}))
		})
	})

	Describe("IncompleteColors", func() {
		It("is empty for a complete tree", func() {
			Expect(decode(minimalTokens).IncompleteColors()).To(BeEmpty())
		})

		It("names each missing side", func() {
			b := decode(minimalTokens)
			b.Colors.Accent.Dark = ""
			b.Colors.Success = &model.ColorToken{Light: "#16a34a"}
			Expect(b.IncompleteColors()).To(ConsistOf("colors.accent.dark", "colors.success.dark"))
		})
	})

	Describe("Clone", func() {
		It("does not share nested state", func() {
			b := decode(minimalTokens)
			c, err := b.Clone()
			Expect(err).NotTo(HaveOccurred())

			c.Spacing.Scale.Set("sm", "99px")
			Expect(b.Spacing.Scale.Value("sm")).To(Equal("8px"))
		})
	})
})

package export_test

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"tokensmith.app/forge/internal/derive"
	"tokensmith.app/forge/internal/export"
	"tokensmith.app/forge/internal/model"
	"tokensmith.app/forge/internal/palette"
)

var fixedNow = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

func minimal(name string) *model.BrandSystem {
	return &model.BrandSystem{
		Metadata: model.Metadata{Name: name, Version: "1.0.0"},
		Colors: model.Colors{
			Primary:           model.Color("#2563eb", "#60a5fa"),
			PrimaryForeground: model.Color("#ffffff", "#0b1220"),
			Background:        model.Color("#ffffff", "#0b1220"),
			Foreground:        model.Color("#0f172a", "#f8fafc"),
		},
	}
}

func scaffold() *model.BrandSystem {
	in := model.DiscoveryInputs{
		CompanyName:    "Acme Corp",
		Industry:       "B2B SaaS",
		TargetAudience: "enterprise",
		Personality:    []string{"bold", "trustworthy"},
	}
	return palette.Scaffold(in, derive.Derive(in))
}

func filenames(r *model.ExportResult) []string {
	var names []string
	for _, f := range r.Files {
		names = append(names, f.Filename)
	}
	return names
}

var htmlFormats = []string{
	export.FormatEmail,
	export.FormatLanding,
	export.FormatOneSheet,
	export.FormatSocial,
	export.FormatSlideshow,
}

var _ = Describe("Registry", func() {
	var (
		ctx      context.Context
		registry *export.Registry
	)

	BeforeEach(func() {
		ctx = context.Background()
		registry = export.NewRegistry(func() time.Time { return fixedNow })
	})

	It("lists every format in a fixed order", func() {
		Expect(registry.Formats()).To(Equal([]string{
			"json", "css", "tailwind", "email-template", "landing-page", "one-sheeter", "social-media", "slideshow",
		}))
	})

	It("rejects unknown formats", func() {
		_, err := registry.Get("pdf")
		Expect(err).To(MatchError(export.ErrUnknownFormat))

		_, err = registry.Generate(ctx, "pdf", minimal("Acme"), export.Options{})
		Expect(err).To(MatchError(export.ErrUnknownFormat))
	})

	It("requires a token tree", func() {
		_, err := registry.Generate(ctx, export.FormatJSON, nil, export.Options{})
		Expect(err).To(MatchError(export.ErrNilTokens))
	})

	It("stamps metadata from the clock and the tree", func() {
		result, err := registry.Generate(ctx, export.FormatJSON, minimal("Acme"), export.Options{})
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Format).To(Equal("json"))
		Expect(result.Metadata).To(Equal(model.ExportMetadata{
			GeneratedAt: "2026-03-14T09:26:53Z",
			BrandName:   "Acme",
			Version:     "1.0.0",
		}))
	})

	Describe("data formats", func() {
		It("writes the token tree as JSON", func() {
			result, err := registry.Generate(ctx, export.FormatJSON, minimal("Acme Corp"), export.Options{})
			Expect(err).NotTo(HaveOccurred())
			Expect(filenames(result)).To(Equal([]string{"acme-corp-tokens.json"}))
			Expect(result.Files[0].Type).To(Equal(model.FileTypeJSON))
			Expect(result.Files[0].Content).To(ContainSubstring(`"primary": {`))
		})

		It("writes the full stylesheet", func() {
			result, err := registry.Generate(ctx, export.FormatCSS, minimal("Acme"), export.Options{})
			Expect(err).NotTo(HaveOccurred())
			Expect(filenames(result)).To(Equal([]string{"acme-variables.css"}))
			Expect(result.Files[0].Content).To(HavePrefix(":root {\n"))
			Expect(result.Files[0].Content).To(ContainSubstring("@media (prefers-color-scheme: dark)"))
		})

		It("points the tailwind theme at custom properties", func() {
			result, err := registry.Generate(ctx, export.FormatTailwind, scaffold(), export.Options{})
			Expect(err).NotTo(HaveOccurred())
			Expect(filenames(result)).To(Equal([]string{"acme-corp-tailwind.config.js", "acme-corp-variables.css"}))

			config := result.Files[0].Content
			Expect(result.Files[0].Type).To(Equal(model.FileTypeJS))
			Expect(config).To(HavePrefix("/** @type {import('tailwindcss').Config} */\nmodule.exports = {"))
			Expect(config).To(ContainSubstring(`"primary": "var(--primary)"`))
			Expect(config).To(ContainSubstring(`"btn-primary-bg": "var(--btn-primary-bg)"`))
			Expect(config).To(ContainSubstring(`"heading": [`))
			Expect(config).To(ContainSubstring(`"screens": {`))
		})
	})

	Describe("escaping", func() {
		hostile := func() *model.BrandSystem {
			tokens := scaffold()
			tokens.Metadata.Name = "<script>alert(1)</script>"
			tokens.Metadata.Tagline = "<script>tag</script>"
			tokens.VoiceAndTone.Examples.Headlines = []string{"<script>head</script>", "<img src=x onerror=alert(1)>"}
			tokens.VoiceAndTone.Examples.Ctas = []string{"<script>cta</script>"}
			tokens.Colors.Primary = model.Color("red;}</style><script>x</script>", "#60a5fa")
			return tokens
		}

		for _, format := range htmlFormats {
			It("never emits a raw script tag from "+format, func() {
				result, err := registry.Generate(ctx, format, hostile(), export.Options{ColorMode: model.ColorModeBoth})
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Files).NotTo(BeEmpty())
				for _, f := range result.Files {
					Expect(f.Content).NotTo(ContainSubstring("<script>"), f.Filename)
					Expect(f.Content).NotTo(ContainSubstring("<img"), f.Filename)
					Expect(f.Content).NotTo(ContainSubstring("</style><"), f.Filename)
				}
			})
		}

		It("escapes text for non-template callers", func() {
			Expect(export.EscapeHTML("<script>x</script>")).To(Equal("&lt;script&gt;x&lt;/script&gt;"))
			Expect(export.EscapeHTML(`"a" & 'b'`)).To(Equal("&#34;a&#34; &amp; &#39;b&#39;"))
		})
	})

	Describe("colour modes", func() {
		It("renders light by default without a suffix", func() {
			result, err := registry.Generate(ctx, export.FormatEmail, minimal("Acme"), export.Options{})
			Expect(err).NotTo(HaveOccurred())
			Expect(filenames(result)).To(Equal([]string{"acme-email.html"}))
			Expect(result.Files[0].Content).To(ContainSubstring("#2563eb"))
			Expect(result.Files[0].Content).NotTo(ContainSubstring("#60a5fa"))
		})

		It("renders dark when asked", func() {
			result, err := registry.Generate(ctx, export.FormatOneSheet, minimal("Acme"), export.Options{ColorMode: model.ColorModeDark})
			Expect(err).NotTo(HaveOccurred())
			Expect(filenames(result)).To(Equal([]string{"acme-one-sheeter.html"}))
			Expect(result.Files[0].Content).To(ContainSubstring(`data-theme="dark"`))
			Expect(result.Files[0].Content).To(ContainSubstring("--primary: #60a5fa;"))
		})

		It("emits exactly three landing files for both modes", func() {
			result, err := registry.Generate(ctx, export.FormatLanding, minimal("Acme Corp"), export.Options{ColorMode: model.ColorModeBoth})
			Expect(err).NotTo(HaveOccurred())
			Expect(filenames(result)).To(ConsistOf(
				"acme-corp-landing-light.html",
				"acme-corp-landing-dark.html",
				"acme-corp-landing.css",
			))

			light, _ := result.File("acme-corp-landing-light.html")
			dark, _ := result.File("acme-corp-landing-dark.html")
			css, _ := result.File("acme-corp-landing.css")
			Expect(light.Content).To(ContainSubstring(`href="acme-corp-landing.css"`))
			Expect(light.Content).To(ContainSubstring("--primary: #2563eb;"))
			Expect(dark.Content).To(ContainSubstring("--primary: #60a5fa;"))
			Expect(css.Type).To(Equal(model.FileTypeCSS))
			Expect(css.Content).To(ContainSubstring(".btn-primary"))
		})
	})

	Describe("copy", func() {
		It("falls back to literals without examples", func() {
			result, err := registry.Generate(ctx, export.FormatEmail, minimal("Acme"), export.Options{})
			Expect(err).NotTo(HaveOccurred())
			html := result.Files[0].Content
			Expect(html).To(ContainSubstring("Welcome to Acme"))
			Expect(html).To(ContainSubstring("Get started"))
			Expect(html).To(ContainSubstring(`<a href="#"`))
		})

		It("prefers the tree's examples and the requested subject", func() {
			tokens := scaffold()
			tokens.VoiceAndTone.Examples.Headlines = []string{"Ship faster"}
			tokens.VoiceAndTone.Examples.Ctas = []string{"Start free trial"}
			result, err := registry.Generate(ctx, export.FormatEmail, tokens, export.Options{Subject: "March update", CtaURL: "https://acme.example/trial"})
			Expect(err).NotTo(HaveOccurred())
			html := result.Files[0].Content
			Expect(html).To(ContainSubstring("<title>March update</title>"))
			Expect(html).To(ContainSubstring("Ship faster"))
			Expect(html).To(ContainSubstring("Start free trial"))
			Expect(html).To(ContainSubstring(`href="https://acme.example/trial"`))
		})
	})

	Describe("social media", func() {
		It("sizes titles by template height", func() {
			instagram, err := export.LookupSocialTemplate("instagram")
			Expect(err).NotTo(HaveOccurred())
			Expect(instagram.Width).To(Equal(1080))
			Expect(instagram.Height).To(Equal(1080))
			Expect(instagram.TitleSize()).To(Equal("64px"))
			Expect(instagram.SubtitleSize()).To(Equal("28px"))

			linkedin, err := export.LookupSocialTemplate("linkedin")
			Expect(err).NotTo(HaveOccurred())
			Expect(linkedin.TitleSize()).To(Equal("36px"))
			Expect(linkedin.SubtitleSize()).To(Equal("18px"))

			mid := export.SocialTemplate{Name: "mid", Width: 800, Height: 500}
			Expect(mid.TitleSize()).To(Equal("48px"))
			Expect(mid.SubtitleSize()).To(Equal("22px"))
		})

		It("renders every template by default", func() {
			result, err := registry.Generate(ctx, export.FormatSocial, minimal("Acme"), export.Options{})
			Expect(err).NotTo(HaveOccurred())
			Expect(filenames(result)).To(Equal([]string{
				"acme-social-og.html",
				"acme-social-twitter.html",
				"acme-social-linkedin.html",
				"acme-social-instagram.html",
			}))
		})

		It("renders only the requested template with its dimensions", func() {
			result, err := registry.Generate(ctx, export.FormatSocial, minimal("Acme"), export.Options{Templates: []string{"instagram"}})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Files).To(HaveLen(1))
			html := result.Files[0].Content
			Expect(html).To(ContainSubstring("width: 1080px;"))
			Expect(html).To(ContainSubstring("height: 1080px;"))
			Expect(html).To(ContainSubstring("font-size: 64px;"))
		})

		It("rejects unknown templates", func() {
			_, err := registry.Generate(ctx, export.FormatSocial, minimal("Acme"), export.Options{Templates: []string{"myspace"}})
			Expect(err).To(MatchError(export.ErrUnknownTemplate))
		})
	})

	Describe("slideshow", func() {
		It("renders every slide in order by default", func() {
			result, err := registry.Generate(ctx, export.FormatSlideshow, scaffold(), export.Options{})
			Expect(err).NotTo(HaveOccurred())
			html := result.Files[0].Content
			last := -1
			for _, slide := range export.Slides() {
				i := strings.Index(html, `id="`+slide+`"`)
				Expect(i).To(BeNumerically(">", last), slide)
				last = i
			}
		})

		It("selects and reorders slides", func() {
			result, err := registry.Generate(ctx, export.FormatSlideshow, minimal("Acme"), export.Options{
				Slides:       []string{"contact", "title", "contact"},
				ContactEmail: "hi@acme.example",
			})
			Expect(err).NotTo(HaveOccurred())
			html := result.Files[0].Content
			Expect(strings.Index(html, `id="contact"`)).To(BeNumerically("<", strings.Index(html, `id="title"`)))
			Expect(strings.Count(html, `id="contact"`)).To(Equal(1))
			Expect(html).NotTo(ContainSubstring(`id="colors"`))
			Expect(html).To(ContainSubstring("hi@acme.example"))
		})

		It("rejects unknown slides", func() {
			_, err := registry.Generate(ctx, export.FormatSlideshow, minimal("Acme"), export.Options{Slides: []string{"title", "pricing"}})
			Expect(err).To(MatchError(export.ErrUnknownSlide))
		})

		It("leaves optional sections out when the tree lacks them", func() {
			result, err := registry.Generate(ctx, export.FormatSlideshow, minimal("Acme"), export.Options{Slides: []string{"components"}})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Files[0].Content).NotTo(ContainSubstring(`class="alert"`))
		})
	})
})

var _ = Describe("Bundle", func() {
	It("zips every file with an index", func() {
		registry := export.NewRegistry(func() time.Time { return fixedNow })
		result, err := registry.Generate(context.Background(), export.FormatLanding, minimal("Acme"), export.Options{ColorMode: model.ColorModeBoth})
		Expect(err).NotTo(HaveOccurred())

		data, err := export.Bundle(result)
		Expect(err).NotTo(HaveOccurred())

		zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
		Expect(err).NotTo(HaveOccurred())
		var names []string
		for _, f := range zr.File {
			names = append(names, f.Name)
			Expect(f.Modified).To(BeTemporally("==", fixedNow))
		}
		Expect(names).To(Equal([]string{"acme-landing-light.html", "acme-landing-dark.html", "acme-landing.css", "index.html"}))
	})

	It("renders an escaped index linking every file", func() {
		result := &model.ExportResult{
			Format: export.FormatJSON,
			Files: []model.ExportFile{
				{Filename: "acme-tokens.json", Content: "{}", Type: model.FileTypeJSON},
				{Filename: "acme-tokens.css", Content: ":root {}", Type: model.FileTypeCSS},
			},
			Metadata: model.ExportMetadata{BrandName: `<script>alert("x")</script>`, GeneratedAt: "2026-03-14T09:26:53Z"},
		}

		data, err := export.Bundle(result)
		Expect(err).NotTo(HaveOccurred())

		zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
		Expect(err).NotTo(HaveOccurred())
		var index string
		for _, f := range zr.File {
			if f.Name != "index.html" {
				continue
			}
			rc, err := f.Open()
			Expect(err).NotTo(HaveOccurred())
			body, err := io.ReadAll(rc)
			Expect(err).NotTo(HaveOccurred())
			Expect(rc.Close()).To(Succeed())
			index = string(body)
		}

		Expect(index).To(HavePrefix("<!DOCTYPE html>"))
		Expect(index).NotTo(ContainSubstring("<script>"))
		Expect(index).To(ContainSubstring("&lt;script&gt;"))
		Expect(index).To(ContainSubstring(`<a href="acme-tokens.json">acme-tokens.json</a> (json)`))
		Expect(index).To(ContainSubstring(`<a href="acme-tokens.css">acme-tokens.css</a> (css)`))
		Expect(index).To(ContainSubstring("Generated 2026-03-14T09:26:53Z"))
	})

	It("refuses an empty result", func() {
		_, err := export.Bundle(&model.ExportResult{Format: "json"})
		Expect(err).To(HaveOccurred())
	})
})

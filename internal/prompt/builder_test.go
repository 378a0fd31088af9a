package prompt_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"tokensmith.app/forge/internal/derive"
	"tokensmith.app/forge/internal/model"
	"tokensmith.app/forge/internal/prompt"
)

func example(id int64, name string) model.GoldenExample {
	return model.GoldenExample{
		ID:           id,
		Name:         name,
		Industry:     "B2B SaaS",
		ColorMood:    model.ColorMoodCool,
		Description:  name + " description",
		Tokens:       json.RawMessage(`{"colors": {"primary": {"light": "#111111", "dark": "#eeeeee"}}}`),
		QualityScore: 90,
		IsActive:     true,
	}
}

var _ = Describe("Builder", func() {
	var (
		ctx    context.Context
		source *mockExampleSource
		in     model.DiscoveryInputs
	)

	BeforeEach(func() {
		ctx = context.Background()
		source = &mockExampleSource{}
		brand := "#0055ff"
		in = model.DiscoveryInputs{
			CompanyName:        "Acme",
			Industry:           "b2b saas",
			TargetAudience:     "developers",
			Personality:        []string{"bold", "trustworthy", "unknown"},
			ExistingBrandColor: &brand,
		}
	})

	build := func(b *prompt.Builder) string {
		out, err := b.Build(ctx, in, derive.Derive(in))
		Expect(err).NotTo(HaveOccurred())
		return out
	}

	It("renders every guidance section in order", func() {
		out := build(prompt.NewBuilder(nil, 0, 0))

		sections := []string{
			"# Design system brief: Acme",
			"## Brand brief",
			"## Industry guidance",
			"## Personality guidance",
			"## Audience guidance",
			"## Derived decisions",
			"## Output requirements",
		}
		last := -1
		for _, s := range sections {
			i := strings.Index(out, s)
			Expect(i).To(BeNumerically(">", last), s)
			last = i
		}
		Expect(out).NotTo(ContainSubstring("## Reference examples"))
	})

	It("carries the brief and the derived guidance", func() {
		out := build(prompt.NewBuilder(nil, 0, 0))

		Expect(out).To(ContainSubstring("- Personality: bold, trustworthy, unknown"))
		Expect(out).To(ContainSubstring("- Existing brand colour: #0055ff"))
		Expect(out).To(ContainSubstring("Recognised industry: **B2B SaaS**."))
		Expect(out).To(ContainSubstring("- **bold**:"))
		Expect(out).To(ContainSubstring("- **trustworthy**:"))
		Expect(out).NotTo(ContainSubstring("**unknown**"))
		Expect(out).To(ContainSubstring("Audience: **"))
		Expect(out).To(ContainSubstring("JetBrains Mono"))
	})

	It("says so when nothing matches", func() {
		in = model.DiscoveryInputs{CompanyName: "Nowhere", Industry: "quantum biotech"}
		out := build(prompt.NewBuilder(nil, 0, 0))

		Expect(out).To(ContainSubstring("did not match a known profile"))
		Expect(out).To(ContainSubstring("No recognised personality adjectives"))
	})

	It("fetches up to the fetch limit filtered by industry and mood", func() {
		build(prompt.NewBuilder(source, 0, 0))

		Expect(source.calls).To(HaveLen(1))
		Expect(source.calls[0].Industry).To(Equal("B2B SaaS"))
		Expect(source.calls[0].ColorMood).NotTo(BeEmpty())
		Expect(source.calls[0].Limit).To(Equal(prompt.DefaultFetchLimit))
	})

	It("prefers the requested colour mood over the industry default", func() {
		in.ColorMood = model.ColorMoodWarm
		build(prompt.NewBuilder(source, 0, 0))
		Expect(source.calls[0].ColorMood).To(Equal(model.ColorMoodWarm))
	})

	It("includes at most two examples", func() {
		source.findFn = func(context.Context, model.GoldenExampleFilter) ([]model.GoldenExample, error) {
			return []model.GoldenExample{example(1, "First"), example(2, "Second"), example(3, "Third")}, nil
		}
		out := build(prompt.NewBuilder(source, 0, 0))

		Expect(out).To(ContainSubstring("## Reference examples"))
		Expect(out).To(ContainSubstring("### Example 1: First (B2B SaaS, cool palette)"))
		Expect(out).To(ContainSubstring("### Example 2: Second"))
		Expect(out).NotTo(ContainSubstring("Third"))
		Expect(out).To(ContainSubstring(`{"colors":{"primary":{"light":"#111111","dark":"#eeeeee"}}}`))
	})

	It("skips examples whose tokens are not JSON", func() {
		broken := example(1, "Broken")
		broken.Tokens = json.RawMessage(`{not json`)
		source.findFn = func(context.Context, model.GoldenExampleFilter) ([]model.GoldenExample, error) {
			return []model.GoldenExample{broken, example(2, "Good")}, nil
		}
		out := build(prompt.NewBuilder(source, 5, 1))

		Expect(out).NotTo(ContainSubstring("Broken"))
		Expect(out).To(ContainSubstring("### Example 1: Good"))
	})

	It("builds without examples when the source fails", func() {
		source.findFn = func(context.Context, model.GoldenExampleFilter) ([]model.GoldenExample, error) {
			return nil, errors.New("connection refused")
		}
		out := build(prompt.NewBuilder(source, 0, 0))

		Expect(out).NotTo(ContainSubstring("## Reference examples"))
		Expect(out).To(ContainSubstring("## Output requirements"))
	})

	It("stops on a cancelled context", func() {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := prompt.NewBuilder(source, 0, 0).Build(cancelled, in, derive.Derive(in))
		Expect(err).To(MatchError(context.Canceled))
		Expect(source.calls).To(BeEmpty())
	})

	It("is deterministic", func() {
		b := prompt.NewBuilder(nil, 0, 0)
		Expect(build(b)).To(Equal(build(b)))
	})
})

package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"tokensmith.app/forge/common/llm"
	"tokensmith.app/forge/common/logger"
	"tokensmith.app/forge/internal/cssvars"
	"tokensmith.app/forge/internal/derive"
	"tokensmith.app/forge/internal/model"
	"tokensmith.app/forge/internal/palette"
	"tokensmith.app/forge/internal/prompt"
	"tokensmith.app/forge/internal/store"
)

var (
	ErrMissingCompanyName = errors.New("company name is required")
	ErrNilTokens          = errors.New("token tree is required")
	ErrInvalidOption      = errors.New("invalid option")
)

const maxGenerateAttempts = 3

var brandSystemSchema = llm.GenerateSchema[model.BrandSystem]()

type GenerationSource string

const (
	SourceCache    GenerationSource = "cache"
	SourceLLM      GenerationSource = "llm"
	SourceScaffold GenerationSource = "scaffold"
)

type PromptResult struct {
	System  string                       `json:"system"`
	User    string                       `json:"user"`
	Derived model.DerivedDesignDecisions `json:"derived"`
}

type GenerateResult struct {
	Tokens  *model.BrandSystem           `json:"tokens"`
	Derived model.DerivedDesignDecisions `json:"derived"`
	Source  GenerationSource             `json:"source"`
	// FilledColors lists colour sides synthesised because generation left
	// them empty, either derived from the other side or taken from the scaffold.
	FilledColors []string `json:"filledColors,omitempty"`
}

type ContrastIssue struct {
	Pair    string          `json:"pair"`
	Mode    model.ColorMode `json:"mode"`
	Ratio   float64         `json:"ratio"`
	Minimum float64         `json:"minimum"`
}

type ValidationReport struct {
	Valid                  bool            `json:"valid"`
	SchemaVersion          string          `json:"schemaVersion"`
	EffectiveSchemaVersion string          `json:"effectiveSchemaVersion"`
	IncompleteColors       []string        `json:"incompleteColors"`
	Contrast               []ContrastIssue `json:"contrast"`
}

type BrandService interface {
	Derive(ctx context.Context, in model.DiscoveryInputs) (model.DerivedDesignDecisions, error)
	BuildPrompt(ctx context.Context, in model.DiscoveryInputs) (*PromptResult, error)
	Generate(ctx context.Context, in model.DiscoveryInputs) (*GenerateResult, error)
	Preview(tokens *model.BrandSystem, mode model.ColorMode) (cssvars.Theme, error)
	FullCSS(tokens *model.BrandSystem) (string, error)
	Validate(tokens *model.BrandSystem) (*ValidationReport, error)
}

type BrandServiceConfig struct {
	Prompts *prompt.Builder
	// LLM is optional; without it Generate scaffolds the tree locally.
	LLM         llm.Client
	MaxTokens   int
	Temperature float64
	// Cache is optional.
	Cache store.GenerationCache
	Now   func() time.Time
	// Backoff is the wait before retry attempt n (0-based). Defaults to 1s, 2s, 4s.
	Backoff func(attempt int) time.Duration
}

type brandService struct {
	cfg BrandServiceConfig
}

func NewBrandService(cfg BrandServiceConfig) BrandService {
	if cfg.Prompts == nil {
		cfg.Prompts = prompt.NewBuilder(nil, 0, 0)
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Backoff == nil {
		cfg.Backoff = func(attempt int) time.Duration { return time.Duration(1<<attempt) * time.Second }
	}
	return &brandService{cfg: cfg}
}

func (s *brandService) Derive(ctx context.Context, in model.DiscoveryInputs) (model.DerivedDesignDecisions, error) {
	if err := validateBrief(in); err != nil {
		return model.DerivedDesignDecisions{}, err
	}
	return derive.Derive(in), nil
}

func (s *brandService) BuildPrompt(ctx context.Context, in model.DiscoveryInputs) (*PromptResult, error) {
	if err := validateBrief(in); err != nil {
		return nil, err
	}
	derived := derive.Derive(in)
	user, err := s.cfg.Prompts.Build(ctx, in, derived)
	if err != nil {
		return nil, fmt.Errorf("building prompt: %w", err)
	}
	return &PromptResult{System: prompt.SystemPrompt, User: user, Derived: derived}, nil
}

// Generate returns a complete token tree for the brief. Cached trees are
// returned as stored; fresh trees are generated by the LLM when configured,
// scaffolded otherwise, and then completed and stamped.
func (s *brandService) Generate(ctx context.Context, in model.DiscoveryInputs) (*GenerateResult, error) {
	if err := validateBrief(in); err != nil {
		return nil, err
	}
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		BrandName: logger.Ptr(in.CompanyName),
		Industry:  logger.Ptr(in.Industry),
		Component: "tokensmith.service.brand",
	})

	derived := derive.Derive(in)
	key := Fingerprint(in)

	if s.cfg.Cache != nil {
		cached, err := s.cfg.Cache.Get(ctx, key)
		if err != nil {
			slog.WarnContext(ctx, "generation cache read failed", "error", err)
		}
		if cached != nil {
			slog.InfoContext(ctx, "brand system served from cache", "key", key)
			return &GenerateResult{Tokens: cached, Derived: derived, Source: SourceCache}, nil
		}
	}

	tokens, source := s.generate(ctx, in, derived)

	filled := palette.CompleteColors(tokens)
	if len(tokens.IncompleteColors()) > 0 {
		filled = append(filled, palette.Backfill(tokens, palette.Scaffold(in, derived))...)
	}
	if len(filled) > 0 {
		slog.InfoContext(ctx, "completed colour tokens", "count", len(filled), "source", source)
	}

	tokens, err := palette.ApplyDecisions(tokens, derived)
	if err != nil {
		return nil, fmt.Errorf("applying decisions: %w", err)
	}
	s.stamp(tokens, in)

	if s.cfg.Cache != nil {
		if err := s.cfg.Cache.Set(ctx, key, tokens); err != nil {
			slog.WarnContext(ctx, "generation cache write failed", "error", err)
		}
	}

	slog.InfoContext(ctx, "brand system generated",
		"source", source,
		"schema_version", tokens.SchemaVersion,
		"filled_colors", len(filled))

	return &GenerateResult{Tokens: tokens, Derived: derived, Source: source, FilledColors: filled}, nil
}

func (s *brandService) generate(ctx context.Context, in model.DiscoveryInputs, derived model.DerivedDesignDecisions) (*model.BrandSystem, GenerationSource) {
	if s.cfg.LLM == nil {
		return palette.Scaffold(in, derived), SourceScaffold
	}

	sc := logger.StartSpan(ctx, "brand.generate", trace.WithAttributes(attribute.String("llm.model", s.cfg.LLM.Model())))
	defer sc.End()

	tokens, err := s.generateWithLLM(sc.Context(), in, derived)
	if err != nil {
		sc.RecordError(err)
		slog.WarnContext(ctx, "llm generation failed, falling back to scaffold", "error", err)
		return palette.Scaffold(in, derived), SourceScaffold
	}
	return tokens, SourceLLM
}

func (s *brandService) generateWithLLM(ctx context.Context, in model.DiscoveryInputs, derived model.DerivedDesignDecisions) (*model.BrandSystem, error) {
	user, err := s.cfg.Prompts.Build(ctx, in, derived)
	if err != nil {
		return nil, fmt.Errorf("building prompt: %w", err)
	}

	req := llm.Request{
		SystemPrompt: prompt.SystemPrompt,
		UserPrompt:   user,
		SchemaName:   "brand_system",
		Schema:       brandSystemSchema,
		MaxTokens:    s.cfg.MaxTokens,
		Temperature:  llm.Temp(s.cfg.Temperature),
	}

	start := time.Now()
	for attempt := 0; ; attempt++ {
		var tokens model.BrandSystem
		resp, err := s.cfg.LLM.Chat(ctx, req, &tokens)
		if err == nil {
			attrs := []any{"model", s.cfg.LLM.Model(), "attempt", attempt + 1, "latency_ms", time.Since(start).Milliseconds()}
			if resp != nil {
				attrs = append(attrs, "prompt_tokens", resp.PromptTokens, "completion_tokens", resp.CompletionTokens)
			}
			slog.InfoContext(ctx, "llm generation complete", attrs...)
			return &tokens, nil
		}
		if attempt+1 == maxGenerateAttempts || !llm.IsRetryable(ctx, err) {
			return nil, fmt.Errorf("generation after %d attempts: %w", attempt+1, err)
		}
		slog.WarnContext(ctx, "llm generation retry", "attempt", attempt+1, "error", err)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.cfg.Backoff(attempt)):
		}
	}
}

// stamp fills metadata the generator may have left out.
func (s *brandService) stamp(tokens *model.BrandSystem, in model.DiscoveryInputs) {
	md := &tokens.Metadata
	if strings.TrimSpace(md.Name) == "" {
		md.Name = strings.TrimSpace(in.CompanyName)
	}
	if md.Industry == "" {
		md.Industry = strings.TrimSpace(in.Industry)
	}
	md.GeneratedAt = s.cfg.Now().UTC().Format(time.RFC3339)
}

func (s *brandService) Preview(tokens *model.BrandSystem, mode model.ColorMode) (cssvars.Theme, error) {
	if tokens == nil {
		return cssvars.Theme{}, ErrNilTokens
	}
	return cssvars.NewTheme(tokens, mode), nil
}

func (s *brandService) FullCSS(tokens *model.BrandSystem) (string, error) {
	if tokens == nil {
		return "", ErrNilTokens
	}
	return cssvars.GenerateFullCSS(tokens), nil
}

// contrastPairs are the foreground/background pairs checked by Validate.
var contrastPairs = []struct {
	name   string
	fg, bg func(c *model.Colors) model.ColorToken
}{
	{"foreground/background", func(c *model.Colors) model.ColorToken { return c.Foreground }, func(c *model.Colors) model.ColorToken { return c.Background }},
	{"primaryForeground/primary", func(c *model.Colors) model.ColorToken { return c.PrimaryForeground }, func(c *model.Colors) model.ColorToken { return c.Primary }},
	{"secondaryForeground/secondary", func(c *model.Colors) model.ColorToken { return c.SecondaryForeground }, func(c *model.Colors) model.ColorToken { return c.Secondary }},
	{"accentForeground/accent", func(c *model.Colors) model.ColorToken { return c.AccentForeground }, func(c *model.Colors) model.ColorToken { return c.Accent }},
	{"cardForeground/card", func(c *model.Colors) model.ColorToken { return c.CardForeground }, func(c *model.Colors) model.ColorToken { return c.Card }},
	{"destructiveForeground/destructive", func(c *model.Colors) model.ColorToken { return c.DestructiveForeground }, func(c *model.Colors) model.ColorToken { return c.Destructive }},
}

// minContrast is the WCAG AA ratio for body text.
const minContrast = 4.5

// Validate reports colour leaves missing a side and text pairs below AA
// contrast. Values that are not hex or rgb() colours are not contrast-checked.
func (s *brandService) Validate(tokens *model.BrandSystem) (*ValidationReport, error) {
	if tokens == nil {
		return nil, ErrNilTokens
	}
	report := &ValidationReport{
		SchemaVersion:          tokens.SchemaVersion,
		EffectiveSchemaVersion: tokens.EffectiveSchemaVersion(),
		IncompleteColors:       tokens.IncompleteColors(),
		Contrast:               []ContrastIssue{},
	}
	if report.IncompleteColors == nil {
		report.IncompleteColors = []string{}
	}

	for _, p := range contrastPairs {
		fg, bg := p.fg(&tokens.Colors), p.bg(&tokens.Colors)
		for _, mode := range []model.ColorMode{model.ColorModeLight, model.ColorModeDark} {
			f, b := fg.For(mode), bg.For(mode)
			if f == "" || b == "" {
				continue
			}
			ratio, err := palette.ContrastRatio(f, b)
			if err != nil {
				continue
			}
			if ratio < minContrast {
				report.Contrast = append(report.Contrast, ContrastIssue{
					Pair:    p.name,
					Mode:    mode,
					Ratio:   float64(int(ratio*100)) / 100,
					Minimum: minContrast,
				})
			}
		}
	}

	report.Valid = len(report.IncompleteColors) == 0 && len(report.Contrast) == 0
	return report, nil
}

// Fingerprint keys the generation cache. Briefs that differ only in
// surrounding whitespace, or in the case of looked-up fields, share a key.
func Fingerprint(in model.DiscoveryInputs) string {
	norm := in
	norm.CompanyName = strings.TrimSpace(in.CompanyName)
	norm.Industry = strings.ToLower(strings.TrimSpace(in.Industry))
	norm.TargetAudience = strings.ToLower(strings.TrimSpace(in.TargetAudience))
	norm.Personality = make([]string, len(in.Personality))
	for i, p := range in.Personality {
		norm.Personality[i] = strings.ToLower(strings.TrimSpace(p))
	}
	data, _ := json.Marshal(struct {
		Schema string                `json:"schema"`
		Brief  model.DiscoveryInputs `json:"brief"`
	}{model.SchemaVersion21, norm})
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:16])
}

func validateBrief(in model.DiscoveryInputs) error {
	if strings.TrimSpace(in.CompanyName) == "" {
		return ErrMissingCompanyName
	}
	return nil
}

package service

import (
	"time"

	"tokensmith.app/forge/common/llm"
	"tokensmith.app/forge/core/config"
	"tokensmith.app/forge/internal/export"
	"tokensmith.app/forge/internal/model"
	"tokensmith.app/forge/internal/prompt"
	"tokensmith.app/forge/internal/store"
)

type Services struct {
	stores   *store.Stores
	txRunner TxRunner
	examples *store.CachedGoldenExampleSource
	llm      llm.Client
	cache    store.GenerationCache
	cfg      config.Config
	registry *export.Registry
}

// NewServices wires the services. Every dependency except cfg may be nil;
// the services then scaffold locally without examples or caching.
func NewServices(stores *store.Stores, txRunner TxRunner, llmClient llm.Client, cache store.GenerationCache, cfg config.Config) *Services {
	s := &Services{
		stores:   stores,
		txRunner: txRunner,
		llm:      llmClient,
		cache:    cache,
		cfg:      cfg,
		registry: export.NewRegistry(time.Now),
	}
	if stores != nil {
		s.examples = store.NewCachedGoldenExampleSource(
			stores.GoldenExamples(),
			cfg.GoldenExamples.CacheSize,
			cfg.GoldenExamples.CacheTTL,
		)
	}
	return s
}

func (s *Services) Brand() BrandService {
	var source prompt.GoldenExampleSource
	if s.examples != nil {
		source = s.examples
	}
	return NewBrandService(BrandServiceConfig{
		Prompts:     prompt.NewBuilder(source, s.cfg.GoldenExamples.FetchLimit, s.cfg.GoldenExamples.PromptLimit),
		LLM:         s.llm,
		MaxTokens:   s.cfg.GenerationLLM.MaxTokens,
		Temperature: s.cfg.GenerationLLM.Temperature,
		Cache:       s.cache,
	})
}

func (s *Services) Exports() ExportService {
	return NewExportService(s.registry, model.ColorMode(s.cfg.Export.DefaultColorMode))
}

// GoldenExamples returns nil when no database is configured.
func (s *Services) GoldenExamples() GoldenExampleService {
	if s.stores == nil {
		return nil
	}
	return NewGoldenExampleService(s.stores.GoldenExamples(), s.txRunner, s.examples)
}

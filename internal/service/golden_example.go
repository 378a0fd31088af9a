package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"tokensmith.app/forge/internal/model"
	"tokensmith.app/forge/internal/store"
)

type CreateGoldenExampleParams struct {
	Name         string
	Industry     string
	ColorMood    model.ColorMood
	Description  string
	Tokens       json.RawMessage
	QualityScore int
	// Supersede retires other active examples with the same industry and
	// mood in the same transaction.
	Supersede bool
}

type GoldenExampleService interface {
	Create(ctx context.Context, params CreateGoldenExampleParams) (*model.GoldenExample, error)
	List(ctx context.Context, limit, offset int32) ([]model.GoldenExample, error)
	Activate(ctx context.Context, id int64) (*model.GoldenExample, error)
	Deactivate(ctx context.Context, id int64) (*model.GoldenExample, error)
}

// Purger drops cached lookups after admin writes.
type Purger interface {
	Purge()
}

type goldenExampleService struct {
	examples store.GoldenExampleStore
	tx       TxRunner
	cache    Purger
}

// NewGoldenExampleService manages curated examples. tx and cache may be nil;
// without tx a superseding create runs its two writes unguarded.
func NewGoldenExampleService(examples store.GoldenExampleStore, tx TxRunner, cache Purger) GoldenExampleService {
	return &goldenExampleService{examples: examples, tx: tx, cache: cache}
}

func (s *goldenExampleService) Create(ctx context.Context, params CreateGoldenExampleParams) (*model.GoldenExample, error) {
	if strings.TrimSpace(params.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidOption)
	}
	if strings.TrimSpace(params.Industry) == "" {
		return nil, fmt.Errorf("%w: industry is required", ErrInvalidOption)
	}
	if params.ColorMood != "" && !params.ColorMood.Valid() {
		return nil, fmt.Errorf("%w: colour mood %q", ErrInvalidOption, params.ColorMood)
	}
	if params.QualityScore < 0 || params.QualityScore > 100 {
		return nil, fmt.Errorf("%w: quality score must be between 0 and 100", ErrInvalidOption)
	}

	var tokens model.BrandSystem
	if err := json.Unmarshal(params.Tokens, &tokens); err != nil {
		return nil, fmt.Errorf("%w: tokens: %v", ErrInvalidOption, err)
	}
	if missing := tokens.IncompleteColors(); len(missing) > 0 {
		return nil, fmt.Errorf("%w: tokens have incomplete colours: %s", ErrInvalidOption, strings.Join(missing, ", "))
	}

	example := &model.GoldenExample{
		Name:         params.Name,
		Industry:     params.Industry,
		ColorMood:    params.ColorMood,
		Description:  params.Description,
		Tokens:       params.Tokens,
		QualityScore: params.QualityScore,
		IsActive:     true,
	}
	var retired int64
	write := func(examples store.GoldenExampleStore) error {
		if err := examples.Create(ctx, example); err != nil {
			return fmt.Errorf("creating golden example: %w", err)
		}
		if !params.Supersede {
			return nil
		}
		n, err := examples.DeactivateMatching(ctx, example.Industry, example.ColorMood, example.ID)
		if err != nil {
			return err
		}
		retired = n
		return nil
	}

	var err error
	if params.Supersede && s.tx != nil {
		err = s.tx.WithTx(ctx, func(stores StoreProvider) error {
			return write(stores.GoldenExamples())
		})
	} else {
		err = write(s.examples)
	}
	if err != nil {
		return nil, err
	}
	s.purge(ctx)

	slog.InfoContext(ctx, "golden example created",
		"example_id", example.ID,
		"industry", example.Industry,
		"superseded", retired)
	return example, nil
}

func (s *goldenExampleService) List(ctx context.Context, limit, offset int32) ([]model.GoldenExample, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.examples.List(ctx, limit, offset)
}

func (s *goldenExampleService) Activate(ctx context.Context, id int64) (*model.GoldenExample, error) {
	return s.setActive(ctx, id, true)
}

func (s *goldenExampleService) Deactivate(ctx context.Context, id int64) (*model.GoldenExample, error) {
	return s.setActive(ctx, id, false)
}

func (s *goldenExampleService) setActive(ctx context.Context, id int64, active bool) (*model.GoldenExample, error) {
	example, err := s.examples.SetActive(ctx, id, active)
	if err != nil {
		return nil, err
	}
	s.purge(ctx)
	slog.InfoContext(ctx, "golden example updated", "example_id", id, "active", active)
	return example, nil
}

func (s *goldenExampleService) purge(ctx context.Context) {
	if s.cache != nil {
		s.cache.Purge()
		slog.DebugContext(ctx, "golden example cache purged")
	}
}

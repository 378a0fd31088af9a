package store

import (
	"context"
	"errors"

	"tokensmith.app/forge/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// GoldenExampleStore defines the contract for curated example data access
type GoldenExampleStore interface {
	Create(ctx context.Context, example *model.GoldenExample) error
	GetByID(ctx context.Context, id int64) (*model.GoldenExample, error)
	List(ctx context.Context, limit, offset int32) ([]model.GoldenExample, error)
	// FindActive returns active examples matching filter, highest quality first.
	FindActive(ctx context.Context, filter model.GoldenExampleFilter) ([]model.GoldenExample, error)
	SetActive(ctx context.Context, id int64, active bool) (*model.GoldenExample, error)
	// DeactivateMatching retires active examples with the same industry and
	// mood, except exceptID, and reports how many changed.
	DeactivateMatching(ctx context.Context, industry string, mood model.ColorMood, exceptID int64) (int64, error)
}

// GenerationCache keeps generated token trees keyed by brief fingerprint.
// A miss returns (nil, nil).
type GenerationCache interface {
	Get(ctx context.Context, key string) (*model.BrandSystem, error)
	Set(ctx context.Context, key string, tokens *model.BrandSystem) error
}

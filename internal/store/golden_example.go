package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"tokensmith.app/forge/common/id"
	"tokensmith.app/forge/internal/model"
)

// DBTX is satisfied by *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const goldenExampleColumns = `id, name, industry, color_mood, description, tokens, quality_score, is_active, created_at, updated_at`

const (
	createGoldenExample = `INSERT INTO golden_examples (id, name, industry, color_mood, description, tokens, quality_score, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + goldenExampleColumns

	getGoldenExample = `SELECT ` + goldenExampleColumns + ` FROM golden_examples WHERE id = $1`

	listGoldenExamples = `SELECT ` + goldenExampleColumns + ` FROM golden_examples
ORDER BY created_at DESC, id DESC
LIMIT $1 OFFSET $2`

	findActiveGoldenExamples = `SELECT ` + goldenExampleColumns + ` FROM golden_examples
WHERE is_active
  AND ($1::text = '' OR lower(industry) = lower($1))
  AND ($2::text = '' OR color_mood = $2)
ORDER BY quality_score DESC, created_at DESC
LIMIT $3`

	deactivateMatchingGoldenExamples = `UPDATE golden_examples SET is_active = false, updated_at = now()
WHERE is_active
  AND lower(industry) = lower($1)
  AND color_mood = $2
  AND id <> $3`

	setGoldenExampleActive = `UPDATE golden_examples SET is_active = $2, updated_at = now()
WHERE id = $1
RETURNING ` + goldenExampleColumns
)

type goldenExampleStore struct {
	db DBTX
}

func newGoldenExampleStore(db DBTX) GoldenExampleStore {
	return &goldenExampleStore{db: db}
}

func (s *goldenExampleStore) Create(ctx context.Context, example *model.GoldenExample) error {
	if example.ID == 0 {
		example.ID = id.New()
	}
	row := s.db.QueryRow(ctx, createGoldenExample,
		example.ID,
		strings.TrimSpace(example.Name),
		strings.TrimSpace(example.Industry),
		string(example.ColorMood),
		example.Description,
		[]byte(example.Tokens),
		example.QualityScore,
		example.IsActive,
	)
	created, err := scanGoldenExample(row)
	if err != nil {
		return fmt.Errorf("inserting golden example: %w", err)
	}
	*example = *created
	return nil
}

func (s *goldenExampleStore) GetByID(ctx context.Context, exampleID int64) (*model.GoldenExample, error) {
	ex, err := scanGoldenExample(s.db.QueryRow(ctx, getGoldenExample, exampleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ex, nil
}

func (s *goldenExampleStore) List(ctx context.Context, limit, offset int32) ([]model.GoldenExample, error) {
	rows, err := s.db.Query(ctx, listGoldenExamples, limit, offset)
	if err != nil {
		return nil, err
	}
	return collectGoldenExamples(rows)
}

func (s *goldenExampleStore) FindActive(ctx context.Context, filter model.GoldenExampleFilter) ([]model.GoldenExample, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 5
	}
	rows, err := s.db.Query(ctx, findActiveGoldenExamples, strings.TrimSpace(filter.Industry), string(filter.ColorMood), limit)
	if err != nil {
		return nil, err
	}
	return collectGoldenExamples(rows)
}

func (s *goldenExampleStore) SetActive(ctx context.Context, exampleID int64, active bool) (*model.GoldenExample, error) {
	ex, err := scanGoldenExample(s.db.QueryRow(ctx, setGoldenExampleActive, exampleID, active))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ex, nil
}

func (s *goldenExampleStore) DeactivateMatching(ctx context.Context, industry string, mood model.ColorMood, exceptID int64) (int64, error) {
	tag, err := s.db.Exec(ctx, deactivateMatchingGoldenExamples, strings.TrimSpace(industry), string(mood), exceptID)
	if err != nil {
		return 0, fmt.Errorf("deactivating golden examples: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanGoldenExample(row pgx.Row) (*model.GoldenExample, error) {
	var (
		ex        model.GoldenExample
		colorMood string
		tokens    []byte
	)
	if err := row.Scan(
		&ex.ID,
		&ex.Name,
		&ex.Industry,
		&colorMood,
		&ex.Description,
		&tokens,
		&ex.QualityScore,
		&ex.IsActive,
		&ex.CreatedAt,
		&ex.UpdatedAt,
	); err != nil {
		return nil, err
	}
	ex.ColorMood = model.ColorMood(colorMood)
	ex.Tokens = tokens
	return &ex, nil
}

func collectGoldenExamples(rows pgx.Rows) ([]model.GoldenExample, error) {
	defer rows.Close()
	examples := []model.GoldenExample{}
	for rows.Next() {
		ex, err := scanGoldenExample(rows)
		if err != nil {
			return nil, err
		}
		examples = append(examples, *ex)
	}
	return examples, rows.Err()
}

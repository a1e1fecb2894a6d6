// Package definition stores per-word meanings supplied alongside translations.
package definition

import (
	"context"
	"fmt"
	"sort"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/bireader/internal/adapter/postgres"
	"github.com/heartmarshall/bireader/internal/domain"
)

// Repo provides word definition persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new definition repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

// The most recent translation mentioning a word owns its meanings.
const upsertSQL = `
INSERT INTO word_definitions (word, word_normalized, translation_id, meanings, updated_at)
VALUES ($1, $2, $3, $4, now())
ON CONFLICT (word) DO UPDATE
SET word_normalized = EXCLUDED.word_normalized,
    translation_id  = EXCLUDED.translation_id,
    meanings        = EXCLUDED.meanings,
    updated_at      = now()`

// Exact matches sort before case-insensitive ones.
const getByWordSQL = `
SELECT word, translation_id, meanings, updated_at
FROM word_definitions
WHERE word = $1 OR word_normalized = $2
ORDER BY (word = $1) DESC, updated_at DESC
LIMIT 1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByWord returns the meanings stored for word, falling back to a
// case-insensitive match.
// Returns domain.ErrNotFound if neither exists.
func (r *Repo) GetByWord(ctx context.Context, word string) (*domain.WordDefinition, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	def, err := scanDefinition(querier.QueryRow(ctx, getByWordSQL, word, domain.NormalizeText(word)))
	if err != nil {
		return nil, postgres.MapError(err, "word_definition", word)
	}

	return def, nil
}

// GetByWords returns every stored definition whose word or normalized word
// matches one of words. The caller picks the best row per requested word.
func (r *Repo) GetByWords(ctx context.Context, words []string) ([]domain.WordDefinition, error) {
	if len(words) == 0 {
		return []domain.WordDefinition{}, nil
	}

	normalized := make([]string, 0, len(words))
	for _, w := range words {
		normalized = append(normalized, domain.NormalizeText(w))
	}

	sql, args, err := psql.Select("word", "translation_id", "meanings", "updated_at").
		From("word_definitions").
		Where(squirrel.Or{
			squirrel.Eq{"word": words},
			squirrel.Eq{"word_normalized": normalized},
		}).
		OrderBy("updated_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get definitions query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("get definitions by words: %w", err)
	}
	defer rows.Close()

	defs := make([]domain.WordDefinition, 0, len(words))
	for rows.Next() {
		def, err := scanDefinition(rows)
		if err != nil {
			return nil, fmt.Errorf("get definitions by words: %w", err)
		}
		defs = append(defs, *def)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get definitions by words: %w", err)
	}

	return defs, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// UpsertMany stores the meanings of every word in defs, attributing them to
// translationID. Existing rows for the same word are overwritten. Words with
// no meanings are skipped.
func (r *Repo) UpsertMany(ctx context.Context, translationID int64, defs map[string][]string) error {
	words := make([]string, 0, len(defs))
	for w, meanings := range defs {
		if w == "" || len(meanings) == 0 {
			continue
		}
		words = append(words, w)
	}
	if len(words) == 0 {
		return nil
	}
	// Stable statement order keeps row locks acquired in the same order.
	sort.Strings(words)

	batch := &pgx.Batch{}
	for _, w := range words {
		batch.Queue(upsertSQL, w, domain.NormalizeText(w), translationID, defs[w])
	}

	br := postgres.QuerierFromCtx(ctx, r.pool).SendBatch(ctx, batch)
	defer br.Close()

	for _, w := range words {
		if _, err := br.Exec(); err != nil {
			return postgres.MapError(err, "word_definition", w)
		}
	}

	return nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanDefinition(row pgx.Row) (*domain.WordDefinition, error) {
	var def domain.WordDefinition
	if err := row.Scan(&def.Word, &def.TranslationID, &def.Meanings, &def.UpdatedAt); err != nil {
		return nil, err
	}
	if def.Meanings == nil {
		def.Meanings = []string{}
	}
	return &def, nil
}

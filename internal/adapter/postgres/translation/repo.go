// Package translation implements the translation record repository using PostgreSQL.
// Fixed statements are raw SQL; the filtered listing is built with squirrel.
package translation

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/bireader/internal/adapter/postgres"
	"github.com/heartmarshall/bireader/internal/domain"
)

// Repo provides translation persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new translation repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var columns = []string{"id", "original_text", "translation", "language", "created_at"}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const createSQL = `
INSERT INTO translations (original_text, translation, language)
VALUES ($1, $2, $3)
RETURNING id, original_text, translation, language, created_at`

const getByIDSQL = `
SELECT id, original_text, translation, language, created_at
FROM translations
WHERE id = $1`

const deleteSQL = `DELETE FROM translations WHERE id = $1`

const deleteOlderThanSQL = `DELETE FROM translations WHERE created_at < $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a single translation record.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.TranslationRecord, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rec, err := scanRecord(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "translation", id)
	}

	return rec, nil
}

// List returns translation records matching filter, newest first.
func (r *Repo) List(ctx context.Context, filter domain.TranslationFilter) ([]domain.TranslationRecord, error) {
	query := psql.Select(columns...).
		From("translations").
		OrderBy("created_at DESC", "id DESC")

	if filter.Language != "" {
		query = query.Where(squirrel.Eq{"language": filter.Language})
	}
	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list translations query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list translations: %w", err)
	}
	defer rows.Close()

	records := make([]domain.TranslationRecord, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("list translations: %w", err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list translations: %w", err)
	}

	return records, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a translation record. ID and CreatedAt are assigned by the
// database and returned in the persisted record.
func (r *Repo) Create(ctx context.Context, rec domain.TranslationRecord) (*domain.TranslationRecord, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanRecord(querier.QueryRow(ctx, createSQL, rec.OriginalText, rec.Translation, rec.Language))
	if err != nil {
		return nil, postgres.MapError(err, "translation", "new")
	}

	return created, nil
}

// Delete removes a translation record by ID. Word definitions it supplied are
// removed with it.
// Returns domain.ErrNotFound if the record does not exist.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "translation", id)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("translation %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

// DeleteOlderThan removes every record created before threshold and returns
// how many were removed.
func (r *Repo) DeleteOlderThan(ctx context.Context, threshold time.Time) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteOlderThanSQL, threshold)
	if err != nil {
		return 0, fmt.Errorf("delete translations older than %s: %w", threshold.Format(time.RFC3339), err)
	}

	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanRecord(row pgx.Row) (*domain.TranslationRecord, error) {
	var rec domain.TranslationRecord
	if err := row.Scan(&rec.ID, &rec.OriginalText, &rec.Translation, &rec.Language, &rec.CreatedAt); err != nil {
		return nil, err
	}
	rec.CreatedAt = rec.CreatedAt.UTC()
	return &rec, nil
}

package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/bireader/internal/domain"
)

// UniqueWord returns prefix followed by a short random suffix, so parallel
// tests never share a word_definitions key.
func UniqueWord(prefix string) string {
	return prefix + uuid.New().String()[:8]
}

// SeedTranslation inserts a translation record and returns it as stored.
func SeedTranslation(t *testing.T, pool *pgxpool.Pool, original, translated, language string) domain.TranslationRecord {
	t.Helper()

	rec := domain.TranslationRecord{
		OriginalText: original,
		Translation:  translated,
		Language:     language,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO translations (original_text, translation, language)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		rec.OriginalText, rec.Translation, rec.Language,
	).Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedTranslation: %v", err)
	}

	return rec
}

// SeedDefinition inserts the meanings of word, linked to translationID.
func SeedDefinition(t *testing.T, pool *pgxpool.Pool, translationID int64, word string, meanings ...string) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO word_definitions (word, word_normalized, translation_id, meanings)
		 VALUES ($1, $2, $3, $4)`,
		word, domain.NormalizeText(word), translationID, meanings,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDefinition: %v", err)
	}
}

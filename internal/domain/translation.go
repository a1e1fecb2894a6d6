package domain

import "time"

// MaxTextLength bounds the text accepted for a single translation.
const MaxTextLength = 20000

// TranslationRecord is a stored source text together with its translation.
type TranslationRecord struct {
	ID           int64     `json:"id"`
	OriginalText string    `json:"originalText"`
	Translation  string    `json:"translation"`
	Language     string    `json:"language"`
	CreatedAt    time.Time `json:"createdAt"`
}

// WordDefinition holds the meanings of a single source-language word.
// TranslationID points at the translation that last supplied the meanings.
type WordDefinition struct {
	Word          string
	TranslationID *int64
	Meanings      []string
	UpdatedAt     time.Time
}

// TranslationFilter narrows and pages a translation listing. Results are
// ordered newest first. A zero Limit means no limit.
type TranslationFilter struct {
	Language string
	Limit    int
	Offset   int
}

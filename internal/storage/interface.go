package storage

import (
	"context"

	"github.com/mcoot/hangman/internal/model"
)

// WordSource provides the category records a word bank is built from.
// Sources are read once at startup.
type WordSource interface {
	LoadCategories(ctx context.Context) ([]model.CategoryRecord, error)
}

// WordSink accepts category records, replacing whatever it held before
type WordSink interface {
	SaveCategories(ctx context.Context, records []model.CategoryRecord) error
}

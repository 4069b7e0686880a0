package memory

import (
	"context"
	"slices"

	"github.com/mcoot/hangman/internal/model"
	"github.com/mcoot/hangman/internal/storage"
)

// Storage is an in-memory word source
type Storage struct {
	records []model.CategoryRecord
}

// New creates an in-memory word source holding the given records
func New(records ...model.CategoryRecord) *Storage {
	s := &Storage{}
	_ = s.SaveCategories(context.Background(), records)
	return s
}

// Ensure Storage implements the interfaces
var (
	_ storage.WordSource = (*Storage)(nil)
	_ storage.WordSink   = (*Storage)(nil)
)

func (s *Storage) LoadCategories(ctx context.Context) ([]model.CategoryRecord, error) {
	return cloneRecords(s.records), nil
}

func (s *Storage) SaveCategories(ctx context.Context, records []model.CategoryRecord) error {
	s.records = cloneRecords(records)
	return nil
}

// Callers get their own copies so a loaded bank never aliases stored slices
func cloneRecords(records []model.CategoryRecord) []model.CategoryRecord {
	out := make([]model.CategoryRecord, len(records))
	for i, r := range records {
		out[i] = model.CategoryRecord{
			Category: r.Category,
			Words:    slices.Clone(r.Words),
		}
	}
	return out
}

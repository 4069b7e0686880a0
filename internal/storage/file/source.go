package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mcoot/hangman/internal/model"
	"github.com/mcoot/hangman/internal/storage"
)

// Source reads category records from a JSON file of the form
// [{"category": "colors", "words": ["red", "blue"]}, ...]
type Source struct {
	path string
}

// New creates a file source for the given path
func New(path string) *Source {
	return &Source{path: path}
}

// Ensure Source implements the interfaces
var (
	_ storage.WordSource = (*Source)(nil)
	_ storage.WordSink   = (*Source)(nil)
)

// LoadCategories opens, decodes and closes the word file
func (s *Source) LoadCategories(ctx context.Context) ([]model.CategoryRecord, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open word file: %w", err)
	}
	defer f.Close()

	var records []model.CategoryRecord
	if err := json.NewDecoder(f).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", model.ErrMalformedWordData, s.path, err)
	}
	return records, nil
}

// SaveCategories writes records to the file as indented JSON
func (s *Source) SaveCategories(ctx context.Context, records []model.CategoryRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, append(data, '\n'), 0o644)
}

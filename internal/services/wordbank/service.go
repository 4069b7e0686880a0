package wordbank

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"golang.org/x/text/cases"

	"github.com/mcoot/hangman/internal/model"
	"github.com/mcoot/hangman/internal/storage"
)

// Service builds validated word banks from a word source
type Service struct {
	source storage.WordSource
	logger *slog.Logger
	fold   cases.Caser
}

// New creates a new word bank Service
func New(source storage.WordSource, logger *slog.Logger) *Service {
	return &Service{
		source: source,
		logger: logger,
		fold:   cases.Fold(),
	}
}

// Load reads the source once and builds a word bank from it
func (s *Service) Load(ctx context.Context) (*model.WordBank, error) {
	records, err := s.source.LoadCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("load word data: %w", err)
	}
	return s.Build(records)
}

// Build validates and normalises records into a word bank.
// Words are trimmed and case-folded; duplicates within a category are
// dropped, records sharing a category name are merged and categories
// without words are left out. Empty category names and words containing
// anything other than letters are rejected.
func (s *Service) Build(records []model.CategoryRecord) (*model.WordBank, error) {
	bank := model.NewWordBank()

	for _, record := range records {
		category := strings.TrimSpace(record.Category)
		if category == "" {
			return nil, fmt.Errorf("%w: record with empty category name", model.ErrMalformedWordData)
		}

		words := make([]string, 0, len(record.Words))
		for _, raw := range record.Words {
			word, err := s.normalizeWord(raw)
			if err != nil {
				return nil, fmt.Errorf("%w: category %q: %v", model.ErrMalformedWordData, category, err)
			}
			words = append(words, word)
		}

		added := bank.Add(category, words...)
		if skipped := len(words) - added; skipped > 0 {
			s.logger.Warn("dropped duplicate words",
				slog.String("category", category),
				slog.Int("count", skipped),
			)
		}
		if len(words) == 0 {
			s.logger.Warn("skipping category without words", slog.String("category", category))
		}
	}

	if bank.IsEmpty() {
		return nil, model.ErrNoWords
	}

	s.logger.Debug("word bank built",
		slog.Int("categories", len(bank.Categories())),
		slog.Int("words", bank.TotalWords()),
	)
	return bank, nil
}

func (s *Service) normalizeWord(raw string) (string, error) {
	word := s.fold.String(strings.TrimSpace(raw))
	if word == "" {
		return "", fmt.Errorf("empty word")
	}
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return "", fmt.Errorf("word %q contains non-letter %q", raw, r)
		}
	}
	return word, nil
}

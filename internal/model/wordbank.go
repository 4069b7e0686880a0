package model

import (
	"slices"
	"sort"
)

// WordBank maps category names to the words still available in them.
// A WordBank is owned by a single session and is not safe for concurrent use.
type WordBank struct {
	categories map[string][]string
}

// NewWordBank creates an empty WordBank
func NewWordBank() *WordBank {
	return &WordBank{
		categories: make(map[string][]string),
	}
}

// Add appends words to a category, creating it if needed.
// Words already present in the category are skipped; the number of
// words actually added is returned. Adding no words never creates a category.
func (b *WordBank) Add(category string, words ...string) int {
	existing := b.categories[category]
	added := 0
	for _, word := range words {
		if slices.Contains(existing, word) {
			continue
		}
		existing = append(existing, word)
		added++
	}
	if len(existing) > 0 {
		b.categories[category] = existing
	}
	return added
}

// Categories returns the names of all categories that still have words, sorted
func (b *WordBank) Categories() []string {
	names := make([]string, 0, len(b.categories))
	for name := range b.categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HasCategory reports whether the exact category name is available
func (b *WordBank) HasCategory(name string) bool {
	_, ok := b.categories[name]
	return ok
}

// Words returns a copy of the words remaining in a category
func (b *WordBank) Words(category string) []string {
	return slices.Clone(b.categories[category])
}

// WordCount returns the number of words remaining in a category
func (b *WordBank) WordCount(category string) int {
	return len(b.categories[category])
}

// TotalWords returns the number of words remaining across all categories
func (b *WordBank) TotalWords() int {
	total := 0
	for _, words := range b.categories {
		total += len(words)
	}
	return total
}

// IsEmpty returns true once every category has been used up
func (b *WordBank) IsEmpty() bool {
	return len(b.categories) == 0
}

// Take removes and returns the word at index in the given category.
// The word is also withdrawn from every other category listing it, and
// any category left without words is deleted.
func (b *WordBank) Take(category string, index int) (string, error) {
	words, ok := b.categories[category]
	if !ok {
		return "", ErrCategoryNotFound
	}
	if index < 0 || index >= len(words) {
		return "", ErrWordIndexOutOfRange
	}

	word := words[index]
	for name, list := range b.categories {
		list = slices.DeleteFunc(list, func(w string) bool { return w == word })
		if len(list) == 0 {
			delete(b.categories, name)
			continue
		}
		b.categories[name] = list
	}
	return word, nil
}

// Records returns the bank contents as category records, sorted by name
func (b *WordBank) Records() []CategoryRecord {
	records := make([]CategoryRecord, 0, len(b.categories))
	for _, name := range b.Categories() {
		records = append(records, CategoryRecord{
			Category: name,
			Words:    b.Words(name),
		})
	}
	return records
}

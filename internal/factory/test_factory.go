package factory

import (
	"time"

	"github.com/mcoot/hangman/internal/dependencies/mocks"
	"github.com/mcoot/hangman/internal/model"
	"github.com/mcoot/hangman/internal/storage/memory"
	"github.com/mcoot/hangman/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	Storage    *memory.Storage
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App backed by in-memory words and mocked dependencies
func NewTestApp(records ...model.CategoryRecord) *TestApp {
	store := memory.New(records...)
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, testutil.NopLogger())

	return &TestApp{
		App:        app,
		Storage:    store,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// DefaultTestWords is the word list the game ships with
func DefaultTestWords() []model.CategoryRecord {
	return []model.CategoryRecord{
		{Category: "fruit", Words: []string{"apple", "banana", "grapes", "pear", "watermelon"}},
		{Category: "places", Words: []string{"school", "church", "library", "mall", "restaurant", "airport"}},
		{Category: "colors", Words: []string{"red", "blue", "yellow", "cerulean", "aqua", "magenta", "green", "orange"}},
	}
}

package model

import (
	"slices"
	"strings"
	"time"
)

// Placeholder marks a letter of the word that has not been revealed yet
const Placeholder = '-'

// GuessOutcome describes the effect a guessed letter had on a round
type GuessOutcome string

const (
	GuessHit      GuessOutcome = "hit"      // Letter occurs in the word and was revealed
	GuessMiss     GuessOutcome = "miss"     // Letter is not in the word; one chance lost
	GuessRepeated GuessOutcome = "repeated" // Letter was already guessed; nothing changes
)

// Round is the state of a single word being guessed
type Round struct {
	Category  string
	StartedAt time.Time

	word    []rune
	display []rune
	guessed map[rune]struct{}
	chances int
	misses  int
}

// NewRound starts a round for word with the given number of wrong guesses allowed
func NewRound(category, word string, chances int, startedAt time.Time) *Round {
	letters := []rune(word)
	display := make([]rune, len(letters))
	for i := range display {
		display[i] = Placeholder
	}
	return &Round{
		Category:  category,
		StartedAt: startedAt,
		word:      letters,
		display:   display,
		guessed:   make(map[rune]struct{}),
		chances:   max(chances, 0),
	}
}

// Guess applies an already normalised (lower case) letter to the round
func (r *Round) Guess(letter rune) (GuessOutcome, error) {
	if r.IsOver() {
		return "", ErrRoundOver
	}
	if _, ok := r.guessed[letter]; ok {
		return GuessRepeated, nil
	}
	r.guessed[letter] = struct{}{}

	hit := false
	for i, l := range r.word {
		if l == letter {
			r.display[i] = l
			hit = true
		}
	}
	if hit {
		return GuessHit, nil
	}

	r.misses++
	if r.chances > 0 {
		r.chances--
	}
	return GuessMiss, nil
}

// Word returns the target word
func (r *Round) Word() string {
	return string(r.word)
}

// WordLength returns the number of letters in the target word
func (r *Round) WordLength() int {
	return len(r.word)
}

// Revealed returns the display assembled into a string, placeholders included
func (r *Round) Revealed() string {
	return string(r.display)
}

// Display returns the display with its slots separated by spaces
func (r *Round) Display() string {
	slots := make([]string, len(r.display))
	for i, l := range r.display {
		slots[i] = string(l)
	}
	return strings.Join(slots, " ")
}

// ChancesLeft returns the number of wrong guesses still allowed
func (r *Round) ChancesLeft() int {
	return r.chances
}

// Misses returns how many distinct wrong letters were guessed
func (r *Round) Misses() int {
	return r.misses
}

// GuessedLetters returns the letters guessed so far in sorted order
func (r *Round) GuessedLetters() []rune {
	letters := make([]rune, 0, len(r.guessed))
	for l := range r.guessed {
		letters = append(letters, l)
	}
	slices.Sort(letters)
	return letters
}

// HasGuessed reports whether letter was already guessed this round
func (r *Round) HasGuessed(letter rune) bool {
	_, ok := r.guessed[letter]
	return ok
}

// IsSolved returns true when no placeholder remains in the display
func (r *Round) IsSolved() bool {
	return !slices.Contains(r.display, Placeholder)
}

// IsOver returns true when the word is solved or no chances remain
func (r *Round) IsOver() bool {
	return r.chances == 0 || r.IsSolved()
}

// IsWon returns true if the assembled display equals the word
func (r *Round) IsWon() bool {
	return r.Revealed() == r.Word()
}

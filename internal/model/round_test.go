package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type RoundSuite struct {
	suite.Suite
	start time.Time
}

func TestRoundSuite(t *testing.T) {
	suite.Run(t, new(RoundSuite))
}

func (s *RoundSuite) SetupTest() {
	s.start = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
}

func (s *RoundSuite) guess(r *Round, letter rune) GuessOutcome {
	outcome, err := r.Guess(letter)
	s.Require().NoError(err)
	return outcome
}

func (s *RoundSuite) TestNewRoundIsAllPlaceholders() {
	r := NewRound("colors", "red", 5, s.start)

	s.Equal("---", r.Revealed())
	s.Equal("- - -", r.Display())
	s.Equal(3, r.WordLength())
	s.Equal(5, r.ChancesLeft())
	s.False(r.IsOver())
	s.Empty(r.GuessedLetters())
}

func (s *RoundSuite) TestWinningSequence() {
	r := NewRound("colors", "red", 5, s.start)

	s.Equal(GuessHit, s.guess(r, 'r'))
	s.Equal("r - -", r.Display())
	s.Equal(GuessHit, s.guess(r, 'e'))
	s.Equal("r e -", r.Display())
	s.Equal(GuessHit, s.guess(r, 'd'))
	s.Equal("r e d", r.Display())

	s.True(r.IsOver())
	s.True(r.IsWon())
	s.Equal(5, r.ChancesLeft())
	s.Equal("red", r.Revealed())
}

func (s *RoundSuite) TestRevealsEveryMatchingPosition() {
	r := NewRound("fruit", "banana", 5, s.start)

	s.Equal(GuessHit, s.guess(r, 'a'))
	s.Equal("-a-a-a", r.Revealed())
	s.Equal(GuessHit, s.guess(r, 'n'))
	s.Equal("-anana", r.Revealed())
}

func (s *RoundSuite) TestMissDecrementsChances() {
	r := NewRound("colors", "red", 1, s.start)

	s.Equal(GuessMiss, s.guess(r, 'x'))

	s.Equal(0, r.ChancesLeft())
	s.Equal(1, r.Misses())
	s.True(r.IsOver())
	s.False(r.IsWon())
	s.Equal("red", r.Word())
}

func (s *RoundSuite) TestRepeatedGuessChangesNothing() {
	r := NewRound("colors", "green", 3, s.start)

	s.Equal(GuessMiss, s.guess(r, 'x'))
	s.Equal(GuessRepeated, s.guess(r, 'x'))
	s.Equal(2, r.ChancesLeft())

	s.Equal(GuessHit, s.guess(r, 'e'))
	s.Equal(GuessRepeated, s.guess(r, 'e'))
	s.Equal("--ee-", r.Revealed())
	s.Equal([]rune{'e', 'x'}, r.GuessedLetters())
}

func (s *RoundSuite) TestDisplayLengthNeverChanges() {
	r := NewRound("places", "library", 10, s.start)
	for _, letter := range "lzbqiyra" {
		_, _ = r.Guess(letter)
		s.Len([]rune(r.Revealed()), len("library"))
	}
	s.True(r.IsWon())
}

func (s *RoundSuite) TestChancesNeverIncreaseOrGoNegative() {
	r := NewRound("colors", "red", 3, s.start)
	previous := r.ChancesLeft()
	for _, letter := range "abcfgh" {
		_, _ = r.Guess(letter)
		s.LessOrEqual(r.ChancesLeft(), previous)
		s.GreaterOrEqual(r.ChancesLeft(), 0)
		previous = r.ChancesLeft()
	}
	s.Equal(0, r.ChancesLeft())
}

func (s *RoundSuite) TestGuessAfterRoundOver() {
	r := NewRound("colors", "red", 1, s.start)
	s.guess(r, 'x')

	_, err := r.Guess('r')
	s.ErrorIs(err, ErrRoundOver)
	s.False(r.HasGuessed('r'))
}

func (s *RoundSuite) TestMultibyteLetters() {
	r := NewRound("food", "crème", 5, s.start)

	s.Equal(5, r.WordLength())
	s.Equal(GuessHit, s.guess(r, 'è'))
	s.Equal("--è--", r.Revealed())
}

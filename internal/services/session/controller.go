package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mcoot/hangman/internal/console"
	"github.com/mcoot/hangman/internal/dependencies/clock"
	"github.com/mcoot/hangman/internal/dependencies/random"
	"github.com/mcoot/hangman/internal/model"
)

// Bounds and default for the number of wrong guesses allowed per round
const (
	MinChances     = 1
	MaxChances     = 10
	DefaultChances = 5
)

// ClampChances forces n into [MinChances, MaxChances]
func ClampChances(n int) int {
	return min(max(n, MinChances), MaxChances)
}

// Config holds per-session game settings
type Config struct {
	// Chances is the number of wrong guesses allowed per round; clamped on use
	Chances int
}

// RoundResult summarises a finished round
type RoundResult struct {
	Category    string
	Word        string
	Won         bool
	ChancesLeft int
	Misses      int
	Duration    time.Duration
}

// Controller runs the interactive game: category choice, word choice,
// guessing and the play-again prompt, repeated until the player quits
// or the word bank runs out.
type Controller struct {
	bank    *model.WordBank
	random  random.Random
	clock   clock.Clock
	chances int
	logger  *slog.Logger
	fold    cases.Caser
	upper   cases.Caser
	stats   model.SessionStats
}

// NewController creates a Controller that owns bank for the rest of the session
func NewController(
	bank *model.WordBank,
	random random.Random,
	clock clock.Clock,
	cfg Config,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		bank:    bank,
		random:  random,
		clock:   clock,
		chances: ClampChances(cfg.Chances),
		logger:  logger,
		fold:    cases.Fold(),
		upper:   cases.Upper(language.Und),
	}
}

// Chances returns the clamped number of wrong guesses allowed per round
func (c *Controller) Chances() int {
	return c.chances
}

// Stats returns the results accumulated so far
func (c *Controller) Stats() model.SessionStats {
	return c.stats
}

// Run plays rounds over in/out until the player declines another round,
// the word bank is exhausted or the input ends. The summary is printed
// in all three cases. Other read errors and context cancellation are returned.
func (c *Controller) Run(ctx context.Context, in io.Reader, out io.Writer) (model.SessionStats, error) {
	con := console.New(in, out)

	err := c.loop(ctx, con)
	switch {
	case errors.Is(err, io.EOF):
		c.logger.Info("input closed, ending session")
		con.Println()
	case err != nil:
		c.logger.Error("session aborted", slog.String("error", err.Error()))
		return c.stats, err
	}

	c.printSummary(con)
	return c.stats, nil
}

func (c *Controller) loop(ctx context.Context, con *console.Console) error {
	for {
		if _, err := c.PlayRound(ctx, con); err != nil {
			if errors.Is(err, model.ErrWordBankExhausted) {
				c.logger.Info("word bank exhausted, ending session")
				con.Println("There are no words left to play.")
				return nil
			}
			return err
		}

		again, err := console.Ask(ctx, con, "Would you like to play again (Y/N)? ", "Response not understood.", c.parseYesNo)
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

// PlayRound plays a single round from category choice to resolution.
// It returns model.ErrWordBankExhausted without prompting if no words remain.
func (c *Controller) PlayRound(ctx context.Context, con *console.Console) (RoundResult, error) {
	if c.bank.IsEmpty() {
		return RoundResult{}, model.ErrWordBankExhausted
	}

	category, err := console.Ask(ctx, con, c.categoryPrompt(), "Please choose a valid category.", c.parseCategory)
	if err != nil {
		return RoundResult{}, err
	}

	word, err := c.bank.Take(category, c.random.Intn(c.bank.WordCount(category)))
	if err != nil {
		return RoundResult{}, err
	}

	round := model.NewRound(category, word, c.chances, c.clock.Now())
	c.logger.Debug("round started",
		slog.String("category", category),
		slog.Int("word_length", round.WordLength()),
		slog.Int("chances", c.chances),
	)
	con.Printf("%s\n\n", displayLine(round))

	for !round.IsOver() {
		letter, err := console.Ask(ctx, con, c.guessPrompt(round), "Please enter a single letter.", c.parseLetter)
		if err != nil {
			return RoundResult{}, err
		}

		outcome, err := round.Guess(letter)
		if err != nil {
			return RoundResult{}, err
		}

		switch outcome {
		case model.GuessRepeated:
			con.Println("You already guessed that letter.")
			con.Println(displayLine(round))
		case model.GuessHit:
			con.Println(displayLine(round))
		case model.GuessMiss:
			con.Printf("Sorry. No %c's in the hidden word. %d chances left.\n", letter, round.ChancesLeft())
		}
	}

	return c.resolve(con, round), nil
}

func (c *Controller) resolve(con *console.Console, round *model.Round) RoundResult {
	won := round.IsWon()
	c.stats.Record(won)

	if won {
		con.Println()
		con.Println("Congratulations! You guessed the word.")
	} else {
		con.Printf("\nThe word was: %s.\n", round.Word())
	}

	result := RoundResult{
		Category:    round.Category,
		Word:        round.Word(),
		Won:         won,
		ChancesLeft: round.ChancesLeft(),
		Misses:      round.Misses(),
		Duration:    clock.Since(c.clock, round.StartedAt),
	}

	c.logger.Info("round resolved",
		slog.String("category", result.Category),
		slog.Int("word_length", round.WordLength()),
		slog.Bool("won", result.Won),
		slog.Int("misses", result.Misses),
		slog.Duration("duration", result.Duration),
		slog.Int("games_played", c.stats.GamesPlayed),
	)
	return result
}

func (c *Controller) printSummary(con *console.Console) {
	con.Println()
	con.Println("Thank you for playing!")
	con.Println("Here are your stats:")
	con.Printf("\t%s\n", Summary(c.stats))
	con.Println("Good bye!")
}

// Summary formats session statistics as a single sentence
func Summary(stats model.SessionStats) string {
	return fmt.Sprintf("You played %d games. You won %d and lost %d. Your winning rate is %.2f%%.",
		stats.GamesPlayed, stats.GamesWon, stats.GamesLost(), stats.WinRate())
}

func (c *Controller) categoryPrompt() string {
	return fmt.Sprintf("Choose a category [%s]: ", strings.Join(c.bank.Categories(), ", "))
}

func (c *Controller) guessPrompt(round *model.Round) string {
	guessed := c.upper.String(string(round.GuessedLetters()))
	return fmt.Sprintf("Already guessed letters (%s). Guess a letter: ", guessed)
}

func displayLine(round *model.Round) string {
	return fmt.Sprintf("%s (%d)", round.Display(), round.WordLength())
}

// Category names match exactly, case included
func (c *Controller) parseCategory(line string) (string, bool) {
	return line, c.bank.HasCategory(line)
}

func (c *Controller) parseLetter(line string) (rune, bool) {
	if utf8.RuneCountInString(line) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(line)
	if !unicode.IsLetter(r) {
		return 0, false
	}
	// Folded the same way as the word bank, so final sigma matches sigma
	folded := []rune(c.fold.String(line))
	if len(folded) != 1 {
		return 0, false
	}
	return folded[0], true
}

func (c *Controller) parseYesNo(line string) (bool, bool) {
	switch c.fold.String(line) {
	case "y", "yes":
		return true, true
	case "n", "no":
		return false, true
	}
	return false, false
}

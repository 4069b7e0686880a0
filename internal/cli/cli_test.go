package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/hangman/internal/model"
)

type CLISuite struct {
	suite.Suite
	wordsFile string
	stdout    *bytes.Buffer
	stderr    *bytes.Buffer
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLISuite))
}

func (s *CLISuite) SetupTest() {
	s.wordsFile = s.writeWords([]model.CategoryRecord{
		{Category: "colors", Words: []string{"red"}},
	})
	s.stdout = &bytes.Buffer{}
	s.stderr = &bytes.Buffer{}
}

func (s *CLISuite) writeWords(records []model.CategoryRecord) string {
	data, err := json.Marshal(records)
	s.Require().NoError(err)
	path := filepath.Join(s.T().TempDir(), "words.json")
	s.Require().NoError(os.WriteFile(path, data, 0o644))
	return path
}

func (s *CLISuite) defaultConfig() *Config {
	return &Config{
		Chances:   5,
		WordsFile: s.wordsFile,
		Source:    "file",
		RedisURL:  "redis://localhost:6379",
		LogLevel:  "warn",
		Output:    "text",
	}
}

func (s *CLISuite) run(input string, args ...string) error {
	cmd := NewRootCmd(s.defaultConfig())
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(s.stdout)
	cmd.SetErr(s.stderr)
	return cmd.ExecuteContext(context.Background())
}

func (s *CLISuite) TestRootCommandPlays() {
	err := s.run("colors\nr\ne\nd\nn\n")
	s.Require().NoError(err)

	s.Contains(s.stdout.String(), "Choose a category [colors]: ")
	s.Contains(s.stdout.String(), "r e d (3)")
	s.Contains(s.stdout.String(), "Your winning rate is 100.00%.")
}

func (s *CLISuite) TestPlaySubcommand() {
	err := s.run("colors\nr\ne\nd\nn\n", "play")
	s.Require().NoError(err)
	s.Contains(s.stdout.String(), "Congratulations! You guessed the word.")
}

func (s *CLISuite) TestChancesFlag() {
	err := s.run("colors\nx\nn\n", "--chances", "3")
	s.Require().NoError(err)
	s.Contains(s.stdout.String(), "Sorry. No x's in the hidden word. 2 chances left.")
}

func (s *CLISuite) TestChancesClampedLow() {
	err := s.run("colors\nx\nn\n", "--chances=-3")
	s.Require().NoError(err)
	s.Contains(s.stdout.String(), "0 chances left.")
	s.Contains(s.stdout.String(), "The word was: red.")
}

func (s *CLISuite) TestChancesClampedHigh() {
	err := s.run("colors\nx\n", "-c", "42")
	s.Require().NoError(err)
	s.Contains(s.stdout.String(), "9 chances left.")
}

func (s *CLISuite) TestMissingWordFileFails() {
	err := s.run("", "--words", filepath.Join(s.T().TempDir(), "missing.json"))
	s.Require().Error(err)
	s.ErrorIs(err, os.ErrNotExist)
	s.NotContains(s.stdout.String(), "Choose a category")
}

func (s *CLISuite) TestMalformedWordFileFails() {
	path := s.writeWords([]model.CategoryRecord{{Category: "misc", Words: []string{"ice cream"}}})

	err := s.run("", "--words", path)
	s.ErrorIs(err, model.ErrMalformedWordData)
}

func (s *CLISuite) TestInvalidLogLevel() {
	err := s.run("", "--log-level", "loud")
	s.Error(err)
}

func (s *CLISuite) TestCategoriesText() {
	s.wordsFile = s.writeWords([]model.CategoryRecord{
		{Category: "fruit", Words: []string{"apple", "pear"}},
		{Category: "colors", Words: []string{"red"}},
	})

	err := s.run("", "categories")
	s.Require().NoError(err)
	s.Equal("Categories (2):\n  - colors (1 words)\n  - fruit (2 words)\nTotal words: 3\n", s.stdout.String())
}

func (s *CLISuite) TestCategoriesJSON() {
	err := s.run("", "categories", "-o", "json")
	s.Require().NoError(err)

	var result CategoryList
	s.Require().NoError(json.Unmarshal(s.stdout.Bytes(), &result))
	s.Equal(CategoryList{
		Categories: []CategorySummary{{Name: "colors", Words: 1}},
		TotalWords: 1,
	}, result)
}

func (s *CLISuite) TestSeedThenPlayFromRedis() {
	mini := miniredis.RunT(s.T())
	redisURL := "redis://" + mini.Addr()

	err := s.run("", "seed", "--redis-url", redisURL)
	s.Require().NoError(err)
	s.Contains(s.stdout.String(), "Seeded 1 categories (1 words)")

	words, err := mini.List("hangman:category:colors")
	s.Require().NoError(err)
	s.Equal([]string{"red"}, words)

	s.stdout.Reset()
	err = s.run("colors\nr\ne\nd\nn\n", "--source", "redis", "--redis-url", redisURL)
	s.Require().NoError(err)
	s.Contains(s.stdout.String(), "Your winning rate is 100.00%.")
}

func (s *CLISuite) TestRedisSourceUnavailable() {
	mini := miniredis.RunT(s.T())
	addr := mini.Addr()
	mini.Close()

	err := s.run("", "--source", "redis", "--redis-url", "redis://"+addr)
	s.Error(err)
}

func (s *CLISuite) TestInvalidSource() {
	err := s.run("", "--source", "carrier-pigeon")
	s.Error(err)
}

func (s *CLISuite) TestLogsGoToStderr() {
	err := s.run("colors\nr\ne\nd\nn\n", "--log-level", "info")
	s.Require().NoError(err)

	s.Contains(s.stderr.String(), `"msg":"round resolved"`)
	s.Contains(s.stderr.String(), `"session_id"`)
	s.NotContains(s.stdout.String(), "round resolved")
}

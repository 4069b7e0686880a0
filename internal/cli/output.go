package cli

import (
	"encoding/json"
	"fmt"
	"io"
)

// Output handles formatting command results based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case CategoryList:
		o.printCategoryList(v)
	case SeedResult:
		o.printSeedResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// CategoryList is the result of the categories command
type CategoryList struct {
	Categories []CategorySummary `json:"categories"`
	TotalWords int               `json:"total_words"`
}

// CategorySummary describes one category
type CategorySummary struct {
	Name  string `json:"name"`
	Words int    `json:"words"`
}

// SeedResult is the result of the seed command
type SeedResult struct {
	Categories int `json:"categories"`
	Words      int `json:"words"`
}

func (o *Output) printCategoryList(l CategoryList) {
	fmt.Fprintf(o.w, "Categories (%d):\n", len(l.Categories))
	for _, c := range l.Categories {
		fmt.Fprintf(o.w, "  - %s (%d words)\n", c.Name, c.Words)
	}
	fmt.Fprintf(o.w, "Total words: %d\n", l.TotalWords)
}

func (o *Output) printSeedResult(r SeedResult) {
	fmt.Fprintf(o.w, "Seeded %d categories (%d words)\n", r.Categories, r.Words)
}

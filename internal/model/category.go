package model

// CategoryRecord is one entry of a word data source: a category name and
// the words offered under it
type CategoryRecord struct {
	Category string   `json:"category"`
	Words    []string `json:"words"`
}

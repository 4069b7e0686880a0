package model

import "errors"

// Common errors used across the application
var (
	// Word data errors
	ErrNoWords           = errors.New("word data contains no words")
	ErrMalformedWordData = errors.New("malformed word data")

	// Word bank errors
	ErrCategoryNotFound    = errors.New("category not found")
	ErrWordIndexOutOfRange = errors.New("word index out of range")
	ErrWordBankExhausted   = errors.New("no words left in any category")

	// Round errors
	ErrRoundOver = errors.New("round is already over")
)

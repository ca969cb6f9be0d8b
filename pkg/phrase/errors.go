package phrase

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLength is returned when the requested or expected word count
	// is not a positive integer.
	ErrInvalidLength = errors.New("phrase: word count must be a positive integer")

	// ErrWrongLength is returned when a candidate phrase does not contain
	// exactly the expected number of words.
	ErrWrongLength = errors.New("phrase: wrong number of words")

	// ErrUnknownWord is returned when a candidate phrase contains a word
	// that is not in the wordlist. The concrete error is *UnknownWordError;
	// use errors.As to access the offending word and its position.
	ErrUnknownWord = errors.New("phrase: word not in wordlist")
)

// UnknownWordError reports a token that is not part of the wordlist, along
// with its 0-based position in the candidate phrase. It matches
// ErrUnknownWord under errors.Is.
type UnknownWordError struct {
	Word     string
	Position int
}

func (e *UnknownWordError) Error() string {
	return fmt.Sprintf("phrase: word %q at position %d is not in the wordlist", e.Word, e.Position)
}

func (e *UnknownWordError) Is(target error) bool {
	return target == ErrUnknownWord
}

package wordlist

import "errors"

// Corpus validation errors returned by New. All of them indicate a malformed
// corpus; for the embedded corpus they are treated as fatal build defects.
var (
	// ErrEmptyCorpus is returned when the corpus contains no words at all.
	ErrEmptyCorpus = errors.New("wordlist: corpus is empty")

	// ErrEmptyWord is returned when the corpus contains an empty string.
	ErrEmptyWord = errors.New("wordlist: corpus contains an empty word")

	// ErrDuplicateWord is returned when the same word appears more than once.
	ErrDuplicateWord = errors.New("wordlist: corpus contains a duplicate word")
)

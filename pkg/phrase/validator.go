package phrase

import (
	"fmt"
	"strings"
)

// Validate checks that phrase consists of exactly n single-space-separated
// words, each present verbatim in the wordlist, and returns nil on success.
//
// n must be positive; otherwise Validate fails with ErrInvalidLength. A
// token count other than n fails with ErrWrongLength reporting expected and
// actual counts. The first token missing from the corpus fails with
// *UnknownWordError carrying the word and its 0-based position.
//
// Splitting is strict single-space (see the package documentation for the
// exact tokenization policy) and duplicates are accepted. Validate reads
// only the immutable wordlist and is safe to call concurrently.
func Validate(phrase string, n int, opts ...Option) error {
	if n <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidLength, n)
	}
	cfg := newConfig(opts)

	words := strings.Split(phrase, " ")
	if len(words) != n {
		return fmt.Errorf("%w: expected %d, got %d", ErrWrongLength, n, len(words))
	}
	for i, w := range words {
		if !cfg.list.Contains(w) {
			return &UnknownWordError{Word: w, Position: i}
		}
	}
	return nil
}

// Package phrase generates and validates brain wallet passphrases drawn from
// the shared word corpus in pkg/wordlist.
//
// A phrase is a sequence of exactly n corpus words joined by single spaces,
// with no leading or trailing whitespace. Generation draws words
// independently and uniformly at random with replacement; validation checks
// the exact word count and byte-exact corpus membership of every token.
//
// # Usage
//
//	import "github.com/dmitrymomot/brainwallet/pkg/phrase"
//
//	p, err := phrase.Generate(12)
//	if err != nil {
//	    // handle error
//	}
//
//	if err := phrase.Validate(p, 12); err != nil {
//	    // handle error
//	}
//
// Both functions default to wordlist.Default(); substitute a corpus with the
// WithList option:
//
//	list, _ := wordlist.New([]string{"violin", "oblivion", "cylinder"})
//	err := phrase.Validate("violin oblivion cylinder", 3, phrase.WithList(list))
//
// # Tokenization
//
// Validation splits strictly on single ASCII spaces and performs no
// normalization: no trimming, no case folding, no collapsing of repeated
// separators. A leading, trailing, or doubled space yields an empty token
// and a tab stays glued to its neighbors, so such phrases fail with
// ErrWrongLength or ErrUnknownWord rather than being quietly accepted.
// Repeated words are not an error: generation draws with replacement, so
// validation must accept duplicates.
//
// # Error Handling
//
// All failures wrap a package sentinel (ErrInvalidLength, ErrWrongLength,
// ErrUnknownWord) and are matched with errors.Is. An unknown word is
// reported as *UnknownWordError carrying the offending word and its 0-based
// position; use errors.As to inspect it.
//
// # Randomness
//
// Word selection uses crypto/rand: draws are unbiased over the corpus and
// the source cannot be seeded or predicted by an external observer, which a
// wallet-adjacent use case requires. crypto/rand.Reader is safe for
// concurrent use, so neither Generate nor Validate needs any external
// synchronization.
package phrase

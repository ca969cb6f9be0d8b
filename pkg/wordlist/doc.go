// Package wordlist holds the canonical word corpus that brain wallet phrases
// are drawn from and validated against.
//
// The corpus is a fixed, ordered collection of 1024 unique lowercase words
// embedded into the binary at build time. Because the list has exactly 2^10
// entries, every word in a phrase contributes 10 bits of entropy; a 12-word
// phrase carries 120 bits.
//
// # Architecture
//
//   - The embedded corpus lives in words.txt (one word per line) and is
//     parsed exactly once, on first use, via sync.OnceValue.
//   - A List pairs the ordered word slice (O(1) positional access for the
//     generator) with a map-based membership index (O(1) average lookup for
//     the validator). Both are built together and never mutated afterwards.
//   - New validates corpus shape on construction: a corpus with no words,
//     an empty word, or a duplicate word is rejected. The embedded corpus
//     failing this validation is a build defect and panics at first use.
//
// # Usage
//
//	import "github.com/dmitrymomot/brainwallet/pkg/wordlist"
//
//	list := wordlist.Default()
//	list.Contains("violin") // membership query, byte-exact
//	list.WordAt(42)         // positional access
//	list.Size()             // 1024
//
// Custom corpora can be built for testing or alternative word sets:
//
//	list, err := wordlist.New([]string{"violin", "oblivion", "cylinder"})
//
// # Contract
//
// The exact contents of the embedded corpus are part of the public contract:
// any change to the list changes which phrases validate, so the list is
// treated as append-never and edit-never within a major version.
//
// Matching is byte-exact. The corpus is all lowercase ASCII and no case
// folding or trimming is performed anywhere; "Violin" is not in the list.
//
// # Thread Safety
//
// A List is immutable after construction and safe for any number of
// concurrent readers without synchronization.
package wordlist

package wordlist

import (
	"fmt"
	"strings"
	"sync"
)

// List is an immutable, ordered collection of unique words with an O(1)
// average membership index. Construct one with New or use the shared
// embedded corpus via Default.
type List struct {
	words []string
	index map[string]struct{}
}

// New builds a List from words, validating corpus shape: at least one word,
// no empty words, no duplicates. The input slice is copied, so later
// mutation of it does not affect the List.
func New(words []string) (*List, error) {
	if len(words) == 0 {
		return nil, ErrEmptyCorpus
	}
	index := make(map[string]struct{}, len(words))
	for i, w := range words {
		if w == "" {
			return nil, fmt.Errorf("%w: position %d", ErrEmptyWord, i)
		}
		if _, ok := index[w]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateWord, w)
		}
		index[w] = struct{}{}
	}
	return &List{
		words: append([]string(nil), words...),
		index: index,
	}, nil
}

// Contains reports whether word is present verbatim in the corpus.
// Matching is byte-exact: no case folding, no trimming.
func (l *List) Contains(word string) bool {
	_, ok := l.index[word]
	return ok
}

// Size returns the number of words in the corpus.
func (l *List) Size() int {
	return len(l.words)
}

// WordAt returns the word at position i. Like a slice index, it panics when
// i is outside [0, Size()); an invalid position is a programmer error, not a
// condition callers should branch on.
func (l *List) WordAt(i int) string {
	return l.words[i]
}

var defaultList = sync.OnceValue(func() *List {
	lines := strings.Split(strings.TrimRight(corpus, "\n"), "\n")
	l, err := New(lines)
	if err != nil {
		panic(fmt.Sprintf("wordlist: embedded corpus is malformed: %v", err))
	}
	return l
})

// Default returns the process-wide List built from the embedded corpus. It
// is constructed on first use and shared by every caller for the process
// lifetime. A malformed embedded corpus is a build defect and panics here;
// the corpus shape is also guarded by tests.
func Default() *List {
	return defaultList()
}

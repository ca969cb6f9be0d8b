package phrase

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

// Generate returns a phrase of n words drawn independently and uniformly at
// random from the wordlist, joined by single spaces with no leading or
// trailing whitespace. Words are drawn with replacement, so repeats across
// positions are possible and not filtered.
//
// n must be positive; otherwise Generate fails with ErrInvalidLength.
func Generate(n int, opts ...Option) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("%w: got %d", ErrInvalidLength, n)
	}
	cfg := newConfig(opts)
	size := big.NewInt(int64(cfg.list.Size()))

	var sb strings.Builder
	for i := 0; i < n; i++ {
		idx, err := rand.Int(rand.Reader, size)
		if err != nil {
			return "", fmt.Errorf("phrase: reading random source: %w", err)
		}
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(cfg.list.WordAt(int(idx.Int64())))
	}
	return sb.String(), nil
}

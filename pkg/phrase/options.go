package phrase

import "github.com/dmitrymomot/brainwallet/pkg/wordlist"

// Option configures generation and validation behavior.
type Option func(*config)

type config struct {
	list *wordlist.List
}

func newConfig(opts []Option) *config {
	c := &config{list: wordlist.Default()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithList substitutes the corpus used for generation and validation.
// The default is wordlist.Default(). Nil lists are ignored.
func WithList(l *wordlist.List) Option {
	return func(c *config) {
		if l != nil {
			c.list = l
		}
	}
}

package wordlist

import _ "embed"

// corpus is the embedded word list, one word per line, sorted. Its contents
// are a public contract: changing the list changes which phrases validate.
//
//go:embed words.txt
var corpus string

package phrase_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrymomot/brainwallet/pkg/phrase"
	"github.com/dmitrymomot/brainwallet/pkg/wordlist"
)

func ExampleGenerate() {
	p, err := phrase.Generate(12)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(len(strings.Split(p, " ")))
	// Output: 12
}

func ExampleValidate() {
	list, _ := wordlist.New([]string{"violin", "oblivion", "cylinder"})

	err := phrase.Validate("violin oblivion cylinder", 3, phrase.WithList(list))
	fmt.Println(err)

	err = phrase.Validate("violin oblivion zzz", 3, phrase.WithList(list))
	var unknown *phrase.UnknownWordError
	if errors.As(err, &unknown) {
		fmt.Printf("%s at position %d\n", unknown.Word, unknown.Position)
	}
	// Output:
	// <nil>
	// zzz at position 2
}

func ExampleValidate_wrongLength() {
	list, _ := wordlist.New([]string{"violin", "oblivion", "cylinder"})

	err := phrase.Validate("violin oblivion", 3, phrase.WithList(list))
	fmt.Println(errors.Is(err, phrase.ErrWrongLength))
	// Output: true
}

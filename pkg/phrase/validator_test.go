package phrase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/brainwallet/pkg/phrase"
	"github.com/dmitrymomot/brainwallet/pkg/wordlist"
)

func testList(t *testing.T) *wordlist.List {
	t.Helper()
	list, err := wordlist.New([]string{"violin", "oblivion", "cylinder"})
	require.NoError(t, err)
	return list
}

func TestValidateRoundTrip(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 3, 12, 20, 24} {
		p, err := phrase.Generate(n)
		require.NoError(t, err)
		assert.NoError(t, phrase.Validate(p, n), "n=%d phrase=%q", n, p)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		phrase  string
		n       int
		wantErr error
	}{
		{
			name:    "valid three words",
			phrase:  "violin oblivion cylinder",
			n:       3,
			wantErr: nil,
		},
		{
			name:    "repeated word is accepted",
			phrase:  "violin violin cylinder cylinder",
			n:       4,
			wantErr: nil,
		},
		{
			name:    "too few words",
			phrase:  "violin oblivion",
			n:       3,
			wantErr: phrase.ErrWrongLength,
		},
		{
			name:    "too many words",
			phrase:  "violin oblivion cylinder violin",
			n:       3,
			wantErr: phrase.ErrWrongLength,
		},
		{
			name:    "unknown word",
			phrase:  "violin oblivion zzz",
			n:       3,
			wantErr: phrase.ErrUnknownWord,
		},
		{
			name:    "single unknown word",
			phrase:  "nonexistentmadeupword",
			n:       1,
			wantErr: phrase.ErrUnknownWord,
		},
		{
			name:    "zero expected count",
			phrase:  "violin",
			n:       0,
			wantErr: phrase.ErrInvalidLength,
		},
		{
			name:    "negative expected count",
			phrase:  "violin",
			n:       -1,
			wantErr: phrase.ErrInvalidLength,
		},
		{
			name:    "empty phrase",
			phrase:  "",
			n:       1,
			wantErr: phrase.ErrUnknownWord,
		},
		{
			name:    "doubled space yields empty token",
			phrase:  "violin  oblivion",
			n:       2,
			wantErr: phrase.ErrWrongLength,
		},
		{
			name:    "leading space",
			phrase:  " violin oblivion",
			n:       2,
			wantErr: phrase.ErrWrongLength,
		},
		{
			name:    "trailing space",
			phrase:  "violin oblivion ",
			n:       2,
			wantErr: phrase.ErrWrongLength,
		},
		{
			name:    "tab is not a separator",
			phrase:  "violin\toblivion",
			n:       2,
			wantErr: phrase.ErrWrongLength,
		},
		{
			name:    "tab glues words into an unknown token",
			phrase:  "violin\toblivion",
			n:       1,
			wantErr: phrase.ErrUnknownWord,
		},
		{
			name:    "case-sensitive match",
			phrase:  "Violin oblivion cylinder",
			n:       3,
			wantErr: phrase.ErrUnknownWord,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := phrase.Validate(tt.phrase, tt.n, phrase.WithList(testList(t)))
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateUnknownWordDetails(t *testing.T) {
	t.Parallel()

	err := phrase.Validate("violin zzz cylinder", 3, phrase.WithList(testList(t)))
	require.ErrorIs(t, err, phrase.ErrUnknownWord)

	var unknown *phrase.UnknownWordError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "zzz", unknown.Word)
	assert.Equal(t, 1, unknown.Position)
	assert.Contains(t, unknown.Error(), `"zzz"`)
}

func TestValidateReportsFirstUnknownWord(t *testing.T) {
	t.Parallel()

	err := phrase.Validate("violin aaa bbb", 3, phrase.WithList(testList(t)))

	var unknown *phrase.UnknownWordError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "aaa", unknown.Word)
	assert.Equal(t, 1, unknown.Position)
}

func TestValidateWrongLengthReportsCounts(t *testing.T) {
	t.Parallel()

	err := phrase.Validate("violin oblivion", 3, phrase.WithList(testList(t)))
	require.ErrorIs(t, err, phrase.ErrWrongLength)
	assert.ErrorContains(t, err, "expected 3, got 2")
}

func TestValidateAgainstDefaultCorpus(t *testing.T) {
	t.Parallel()

	list := wordlist.Default()
	known := list.WordAt(0) + " " + list.WordAt(list.Size()-1)

	assert.NoError(t, phrase.Validate(known, 2))
	assert.ErrorIs(t, phrase.Validate(known, 3), phrase.ErrWrongLength)

	err := phrase.Validate("nonexistentmadeupword", 1)
	var unknown *phrase.UnknownWordError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "nonexistentmadeupword", unknown.Word)
	assert.Equal(t, 0, unknown.Position)
}

func TestValidateErrorKindsAreDistinct(t *testing.T) {
	t.Parallel()

	wrongLen := phrase.Validate("violin", 2, phrase.WithList(testList(t)))
	unknown := phrase.Validate("zzz", 1, phrase.WithList(testList(t)))

	assert.False(t, errors.Is(wrongLen, phrase.ErrUnknownWord))
	assert.False(t, errors.Is(unknown, phrase.ErrWrongLength))
}

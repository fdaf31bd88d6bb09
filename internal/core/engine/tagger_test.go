package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"humanizer-service/internal/core/domain"
)

func TestTagBySuffix(t *testing.T) {
	cases := []struct {
		word string
		pos  domain.PartOfSpeech
		ok   bool
	}{
		{"information", domain.PosNoun, true},
		{"development", domain.PosNoun, true},
		{"happiness", domain.PosNoun, true},
		{"organize", domain.PosVerb, true},
		{"classify", domain.PosVerb, true},
		{"effective", domain.PosAdjective, true},
		{"dangerous", domain.PosAdjective, true},
		{"precisely", domain.PosAdverb, true},
		{"cat", "", false},
		{"word", "", false},
	}
	for _, tc := range cases {
		pos, ok := tagBySuffix(tc.word)
		assert.Equal(t, tc.ok, ok, tc.word)
		if tc.ok {
			assert.Equal(t, tc.pos, pos, tc.word)
		}
	}
}

func TestLexiconTag_ClosedClassNeverTagged(t *testing.T) {
	l := DefaultLexicon()
	for _, word := range []string{"the", "and", "is", "they", "with"} {
		_, ok := l.Tag(word)
		assert.False(t, ok, word)
	}
}

func TestLexiconTag_LexiconBeforeSuffix(t *testing.T) {
	l := NewLexicon()
	// "happiness" would suffix-tag as noun; a lexicon entry wins anyway.
	l.Add("happiness", domain.PosNoun, []string{"joy"})
	pos, ok := l.Tag("happiness")
	assert.True(t, ok)
	assert.Equal(t, domain.PosNoun, pos)

	// Unknown word falls back to suffix rules.
	pos, ok = l.Tag("effective")
	assert.True(t, ok)
	assert.Equal(t, domain.PosAdjective, pos)
}

func TestLexiconTag_CaseInsensitive(t *testing.T) {
	l := DefaultLexicon()
	pos, ok := l.Tag("Important")
	assert.True(t, ok)
	assert.Equal(t, domain.PosAdjective, pos)
}

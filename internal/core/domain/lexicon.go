package domain

import (
	"time"

	"github.com/google/uuid"
)

// PartOfSpeech buckets words for synonym substitution. Only open classes are
// represented; closed-class words are never substituted.
type PartOfSpeech string

const (
	PosNoun      PartOfSpeech = "noun"
	PosVerb      PartOfSpeech = "verb"
	PosAdjective PartOfSpeech = "adjective"
	PosAdverb    PartOfSpeech = "adverb"
)

// ValidPartOfSpeech reports whether p is one of the supported classes.
func ValidPartOfSpeech(p PartOfSpeech) bool {
	switch p {
	case PosNoun, PosVerb, PosAdjective, PosAdverb:
		return true
	}
	return false
}

// LexiconEntry is a user-managed synonym record. Entries extend (and override)
// the engine's built-in thesaurus.
type LexiconEntry struct {
	ID        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
	Word      string
	Pos       PartOfSpeech
	Synonyms  []string
}

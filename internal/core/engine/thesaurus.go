package engine

import (
	"strings"

	"humanizer-service/internal/core/domain"
)

// Thesaurus resolves synonym lookups and part-of-speech tags for the
// substitution transform.
type Thesaurus interface {
	Synonyms(word string, pos domain.PartOfSpeech) []string
	Tag(word string) (domain.PartOfSpeech, bool)
}

// tagOrder makes Tag deterministic when a word carries several classes.
var tagOrder = []domain.PartOfSpeech{
	domain.PosNoun,
	domain.PosVerb,
	domain.PosAdjective,
	domain.PosAdverb,
}

// Lexicon is an in-memory Thesaurus keyed by lower-cased word and part of
// speech. It is read-only after construction and safe for concurrent use.
type Lexicon struct {
	entries map[string]map[domain.PartOfSpeech][]string
}

func NewLexicon() *Lexicon {
	return &Lexicon{entries: make(map[string]map[domain.PartOfSpeech][]string)}
}

// DefaultLexicon returns a Lexicon populated with the built-in synonym table.
func DefaultLexicon() *Lexicon {
	l := NewLexicon()
	for _, e := range builtinEntries {
		l.Add(e.word, e.pos, e.synonyms)
	}
	return l
}

// Add registers synonyms for (word, pos), replacing any previous list for the
// same pair. Later additions win, so caller-supplied entries override the
// built-in table.
func (l *Lexicon) Add(word string, pos domain.PartOfSpeech, synonyms []string) {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" || !domain.ValidPartOfSpeech(pos) {
		return
	}
	byPos, ok := l.entries[word]
	if !ok {
		byPos = make(map[domain.PartOfSpeech][]string)
		l.entries[word] = byPos
	}
	byPos[pos] = append([]string(nil), synonyms...)
}

// AddEntries layers lexicon entries on top of the current contents.
func (l *Lexicon) AddEntries(entries []*domain.LexiconEntry) {
	for _, e := range entries {
		l.Add(e.Word, e.Pos, e.Synonyms)
	}
}

// Synonyms returns the single-word synonyms of word for the given part of
// speech, excluding the word itself. The lookup is case-insensitive.
func (l *Lexicon) Synonyms(word string, pos domain.PartOfSpeech) []string {
	word = strings.ToLower(word)
	byPos, ok := l.entries[word]
	if !ok {
		return nil
	}
	var out []string
	for _, syn := range byPos[pos] {
		syn = strings.TrimSpace(syn)
		if syn == "" || strings.ContainsRune(syn, ' ') {
			continue
		}
		if strings.EqualFold(syn, word) {
			continue
		}
		out = append(out, syn)
	}
	return out
}

// Tag classifies a word, preferring lexicon entries over suffix heuristics.
// Closed-class words are never tagged.
func (l *Lexicon) Tag(word string) (domain.PartOfSpeech, bool) {
	word = strings.ToLower(word)
	if isClosedClass(word) {
		return "", false
	}
	if byPos, ok := l.entries[word]; ok {
		for _, pos := range tagOrder {
			if len(byPos[pos]) > 0 {
				return pos, true
			}
		}
	}
	return tagBySuffix(word)
}

// Len reports the number of distinct words in the lexicon.
func (l *Lexicon) Len() int {
	return len(l.entries)
}

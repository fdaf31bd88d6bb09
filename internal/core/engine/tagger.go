package engine

import (
	"strings"

	"humanizer-service/internal/core/domain"
)

// closedClass lists words that are never substituted: articles, pronouns,
// prepositions, conjunctions, auxiliaries and other function words.
var closedClass = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "if": {},
	"of": {}, "in": {}, "on": {}, "at": {}, "to": {}, "for": {}, "with": {},
	"by": {}, "from": {}, "as": {}, "into": {}, "over": {}, "under": {},
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {},
	"being": {}, "am": {}, "do": {}, "does": {}, "did": {}, "done": {},
	"have": {}, "has": {}, "had": {}, "will": {}, "would": {}, "can": {},
	"could": {}, "shall": {}, "should": {}, "may": {}, "might": {}, "must": {},
	"it": {}, "its": {}, "this": {}, "that": {}, "these": {}, "those": {},
	"he": {}, "she": {}, "they": {}, "we": {}, "you": {}, "i": {}, "me": {},
	"him": {}, "her": {}, "them": {}, "us": {}, "my": {}, "your": {},
	"his": {}, "their": {}, "our": {}, "not": {}, "no": {}, "nor": {},
	"so": {}, "than": {}, "then": {}, "there": {}, "here": {}, "when": {},
	"where": {}, "which": {}, "who": {}, "whom": {}, "whose": {}, "what": {},
	"how": {}, "why": {}, "all": {}, "any": {}, "both": {}, "each": {},
	"few": {}, "more": {}, "most": {}, "other": {}, "some": {}, "such": {},
	"only": {}, "own": {}, "same": {}, "too": {}, "very": {}, "just": {},
}

var suffixRules = []struct {
	pos      domain.PartOfSpeech
	suffixes []string
}{
	{domain.PosAdverb, []string{"ly"}},
	{domain.PosNoun, []string{"tion", "sion", "ment", "ness", "ity", "ance", "ence", "ship", "ism", "ology"}},
	{domain.PosVerb, []string{"ize", "ise", "ify", "ate"}},
	{domain.PosAdjective, []string{"ous", "ive", "able", "ible", "ful", "ical", "ant", "ent", "less"}},
}

// tagBySuffix guesses the part of speech of an unknown word from its ending.
// Short words are left untagged rather than guessed.
func tagBySuffix(word string) (domain.PartOfSpeech, bool) {
	if len(word) < 5 {
		return "", false
	}
	for _, rule := range suffixRules {
		for _, suffix := range rule.suffixes {
			if strings.HasSuffix(word, suffix) && len(word) > len(suffix)+2 {
				return rule.pos, true
			}
		}
	}
	return "", false
}

func isClosedClass(word string) bool {
	_, ok := closedClass[word]
	return ok
}

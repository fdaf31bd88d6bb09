// Package engine implements the rule-based text humanization pipeline:
// paragraph and sentence segmentation, a randomized per-sentence transform
// stack, and the multi-cycle deep-think mode. The engine is pure computation;
// persistence and transport live in the surrounding layers.
package engine

import (
	"math/rand"
	"strings"
	"time"
)

// Humanizer rewrites text through randomized transforms. It is not safe for
// concurrent use; callers construct one per request (construction is cheap).
type Humanizer struct {
	rng        *rand.Rand
	thes       Thesaurus
	transforms []func(string) string
}

// New builds a Humanizer. A nil thesaurus falls back to the built-in lexicon;
// a nil rng seeds from the clock.
func New(thes Thesaurus, rng *rand.Rand) *Humanizer {
	if thes == nil {
		thes = DefaultLexicon()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	h := &Humanizer{rng: rng, thes: thes}
	h.transforms = []func(string) string{
		h.varySentenceLengths,
		h.addAcademicTransitions,
		h.substituteSynonyms,
		h.restructureSentences,
		h.addAcademicDepth,
		h.varyConnectors,
		h.addScholarlyOpener,
	}
	return h
}

// Humanize performs a single rewrite pass. Each sentence receives `intensity`
// randomly chosen transforms, then each paragraph gets the finishing pass.
// Paragraph boundaries are preserved.
func (h *Humanizer) Humanize(text string, intensity int) string {
	paragraphs := SplitParagraphs(text)
	out := make([]string, 0, len(paragraphs))

	for _, paragraph := range paragraphs {
		sentences := SplitSentences(paragraph)
		for i, sentence := range sentences {
			for n := 0; n < intensity; n++ {
				transform := h.transforms[h.rng.Intn(len(h.transforms))]
				sentence = transform(sentence)
			}
			sentences[i] = sentence
		}
		rewritten := strings.Join(sentences, " ")
		rewritten = h.addHumanTouches(rewritten)
		out = append(out, rewritten)
	}

	return strings.Join(out, "\n\n")
}

// maxIntensity is the transform count used by every deep-think cycle.
const maxIntensity = 5

// DeepThink runs `cycles` full rewrites, each at maximum intensity, feeding
// each cycle's output into the next. Between cycles (never after the last) a
// cycle-specific variation is applied per paragraph to keep successive passes
// from converging on repetitive patterns.
func (h *Humanizer) DeepThink(text string, cycles int) string {
	current := text
	for cycle := 0; cycle < cycles; cycle++ {
		current = h.Humanize(current, maxIntensity)
		if cycle < cycles-1 {
			current = h.addCycleVariation(current, cycle)
		}
	}
	return current
}

func (h *Humanizer) addCycleVariation(text string, cycle int) string {
	paragraphs := SplitParagraphs(text)
	for i, paragraph := range paragraphs {
		switch cycle {
		case 0:
			paragraph = h.addAcademicTransitions(paragraph)
		case 1:
			paragraph = h.addScholarlyOpener(paragraph)
		case 2:
			paragraph = h.varyAcademicRhythm(paragraph)
		case 3:
			paragraph = h.addAnalyticalCloser(paragraph)
		}
		paragraphs[i] = paragraph
	}
	return strings.Join(paragraphs, "\n\n")
}

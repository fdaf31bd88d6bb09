package engine

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"humanizer-service/internal/core/domain"
)

// Most transforms are probability-gated, so tests run them across many seeds
// and assert the structural property of every changed output plus that the
// transform fired at least once. Firing probabilities make a zero-fire run
// astronomically unlikely at these iteration counts.
const seedRuns = 500

func newSeeded(seed int64) *Humanizer {
	return New(nil, rand.New(rand.NewSource(seed)))
}

func TestVarySentenceLengths(t *testing.T) {
	input := "The cat sat on the mat, the dog watched, the bird sang."
	fired := false
	for seed := int64(1); seed <= seedRuns; seed++ {
		out := newSeeded(seed).varySentenceLengths(input)
		if out == input {
			continue
		}
		fired = true
		assert.Equal(t, "The cat sat on the mat. The dog watched. The bird sang.", out)
	}
	assert.True(t, fired)
}

func TestVarySentenceLengths_NoClauses(t *testing.T) {
	input := "The cat sat on the mat."
	for seed := int64(1); seed <= 50; seed++ {
		assert.Equal(t, input, newSeeded(seed).varySentenceLengths(input))
	}
}

func TestAddAcademicTransitions(t *testing.T) {
	input := "The cat sat down. The dog watched closely. The bird flew away."
	fired := false
	for seed := int64(1); seed <= seedRuns; seed++ {
		out := newSeeded(seed).addAcademicTransitions(input)
		if out == input {
			continue
		}
		fired = true
		found := false
		for _, w := range transitionWords {
			if strings.Contains(out, w+",") {
				found = true
				break
			}
		}
		assert.True(t, found, out)
		// The first sentence is never the insertion point.
		assert.True(t, strings.HasPrefix(out, "The cat sat down."), out)
	}
	assert.True(t, fired)
}

func TestAddAcademicTransitions_SingleSentence(t *testing.T) {
	input := "The cat sat down."
	for seed := int64(1); seed <= 50; seed++ {
		assert.Equal(t, input, newSeeded(seed).addAcademicTransitions(input))
	}
}

func TestSubstituteSynonyms(t *testing.T) {
	input := "The important cat found an important result."
	fired := false
	for seed := int64(1); seed <= seedRuns; seed++ {
		out := newSeeded(seed).substituteSynonyms(input)
		tokens := Tokenize(out)
		// Function words survive every pass.
		assert.Equal(t, "The", tokens[0])
		assert.Contains(t, tokens, "an")
		if out != input {
			fired = true
		}
	}
	assert.True(t, fired)
}

func TestSubstituteSynonyms_PreservesCase(t *testing.T) {
	l := NewLexicon()
	l.Add("important", domain.PosAdjective, []string{"significant"})
	input := "Important findings emerged."
	fired := false
	for seed := int64(1); seed <= seedRuns; seed++ {
		h := New(l, rand.New(rand.NewSource(seed)))
		out := h.substituteSynonyms(input)
		if out == input {
			continue
		}
		fired = true
		assert.Equal(t, "Significant findings emerged.", out)
	}
	assert.True(t, fired)
}

func TestRestructureSentences(t *testing.T) {
	input := "We can see the outcome clearly."
	fired := false
	for seed := int64(1); seed <= seedRuns; seed++ {
		out := newSeeded(seed).restructureSentences(input)
		if out == input {
			continue
		}
		fired = true
		assert.Contains(t, out, "It becomes evident")
	}
	assert.True(t, fired)
}

func TestAddAcademicDepth_ShortSentenceUntouched(t *testing.T) {
	input := "The cat sat down."
	for seed := int64(1); seed <= 100; seed++ {
		assert.Equal(t, input, newSeeded(seed).addAcademicDepth(input))
	}
}

func TestAddAcademicDepth(t *testing.T) {
	input := "The committee reviewed every submission carefully before announcing the final decision to the waiting candidates."
	fired := false
	for seed := int64(1); seed <= seedRuns; seed++ {
		out := newSeeded(seed).addAcademicDepth(input)
		if out == input {
			continue
		}
		fired = true
		found := false
		for _, dp := range depthPhrases {
			if strings.Contains(out, dp.text) {
				found = true
				break
			}
		}
		assert.True(t, found, out)
	}
	assert.True(t, fired)
}

func TestVaryConnectors(t *testing.T) {
	input := "The plan failed, but the team continued."
	fired := false
	for seed := int64(1); seed <= seedRuns; seed++ {
		out := newSeeded(seed).varyConnectors(input)
		if out == input {
			continue
		}
		fired = true
		assert.NotContains(t, Tokenize(out), "but")
	}
	assert.True(t, fired)
}

func TestAddScholarlyOpener(t *testing.T) {
	input := "Cats are independent animals."
	fired := false
	for seed := int64(1); seed <= seedRuns; seed++ {
		out := newSeeded(seed).addScholarlyOpener(input)
		if out == input {
			continue
		}
		fired = true
		found := false
		for _, p := range scholarlyPhrases {
			if strings.HasPrefix(out, p+" cats") {
				found = true
				break
			}
		}
		assert.True(t, found, out)
	}
	assert.True(t, fired)
}

func TestAddScholarlyOpener_SkipsAlreadyPrefixed(t *testing.T) {
	input := "Research indicates that cats are independent."
	for seed := int64(1); seed <= 100; seed++ {
		assert.Equal(t, input, newSeeded(seed).addScholarlyOpener(input))
	}
}

func TestAddHumanTouches_FirstPersonRemoved(t *testing.T) {
	input := "I think the plan works. I believe the data supports it."
	for seed := int64(1); seed <= 100; seed++ {
		out := newSeeded(seed).addHumanTouches(input)
		assert.NotContains(t, out, "I think")
		assert.NotContains(t, out, "I believe")
		assert.Contains(t, out, "It can be argued")
		assert.Contains(t, out, "Evidence suggests")
	}
}

func TestAddHumanTouches_OpinionPhrase(t *testing.T) {
	// Single sentence so the hedge pass cannot split the phrase.
	input := "In my opinion the approach scales."
	for seed := int64(1); seed <= 100; seed++ {
		out := newSeeded(seed).addHumanTouches(input)
		assert.NotContains(t, out, "In my opinion")
		assert.Contains(t, out, "Analysis indicates")
	}
}

func TestAddAnalyticalCloser(t *testing.T) {
	input := "The study concluded on time. The results were mixed."
	fired := false
	for seed := int64(1); seed <= seedRuns; seed++ {
		out := newSeeded(seed).addAnalyticalCloser(input)
		if out == strings.Join(SplitSentences(input), " ") {
			continue
		}
		fired = true
		found := false
		for _, c := range analyticalConclusions {
			if strings.HasSuffix(out, c) {
				found = true
				break
			}
		}
		assert.True(t, found, out)
	}
	assert.True(t, fired)
}

func TestVaryAcademicRhythm_FirstSentenceUntouched(t *testing.T) {
	input := "The cat sat down. The dog watched. The bird sang."
	for seed := int64(1); seed <= seedRuns; seed++ {
		out := newSeeded(seed).varyAcademicRhythm(input)
		assert.True(t, strings.HasPrefix(out, "The cat sat down."), out)
	}
}

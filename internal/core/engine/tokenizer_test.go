package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitParagraphs(t *testing.T) {
	text := "First paragraph here.\n\nSecond paragraph here.\n\n\nThird one."
	paragraphs := SplitParagraphs(text)
	assert.Len(t, paragraphs, 3)
	assert.Equal(t, "First paragraph here.", paragraphs[0])
	assert.Equal(t, "Third one.", paragraphs[2])
}

func TestSplitParagraphs_CRLF(t *testing.T) {
	paragraphs := SplitParagraphs("One.\r\n\r\nTwo.")
	assert.Len(t, paragraphs, 2)
}

func TestSplitParagraphs_Empty(t *testing.T) {
	assert.Empty(t, SplitParagraphs(""))
	assert.Empty(t, SplitParagraphs("   \n\n  "))
}

func TestSplitSentences(t *testing.T) {
	sentences := SplitSentences("The cat sat. The dog barked! Did it rain?")
	assert.Len(t, sentences, 3)
	assert.Equal(t, "The cat sat.", sentences[0])
	assert.Equal(t, "The dog barked!", sentences[1])
	assert.Equal(t, "Did it rain?", sentences[2])
}

func TestSplitSentences_Abbreviations(t *testing.T) {
	sentences := SplitSentences("Dr. Smith arrived. He was late.")
	assert.Len(t, sentences, 2)
	assert.Equal(t, "Dr. Smith arrived.", sentences[0])

	sentences = SplitSentences("Some tools, e.g. Hammers, are simple.")
	assert.Len(t, sentences, 1)
}

func TestSplitSentences_Decimals(t *testing.T) {
	sentences := SplitSentences("The ratio was 3.14 exactly. Nobody checked.")
	assert.Len(t, sentences, 2)
}

func TestSplitSentences_Single(t *testing.T) {
	sentences := SplitSentences("Just one sentence without a terminator")
	assert.Len(t, sentences, 1)
	assert.Equal(t, "Just one sentence without a terminator", sentences[0])
}

func TestTokenize(t *testing.T) {
	tokens := Tokenize("The cat, quite famously, doesn't care.")
	assert.Equal(t, []string{"The", "cat", ",", "quite", "famously", ",", "doesn't", "care", "."}, tokens)
}

func TestTokenize_Hyphenated(t *testing.T) {
	tokens := Tokenize("A well-known result.")
	assert.Equal(t, []string{"A", "well-known", "result", "."}, tokens)
}

func TestJoinTokens(t *testing.T) {
	text := JoinTokens([]string{"The", "cat", ",", "sadly", ",", "left", "."})
	assert.Equal(t, "The cat, sadly, left.", text)
}

func TestJoinTokens_RoundTrip(t *testing.T) {
	original := "The cat sat, and the dog barked."
	assert.Equal(t, original, JoinTokens(Tokenize(original)))
}

func TestLowerUpperFirst(t *testing.T) {
	assert.Equal(t, "the Cat", lowerFirst("The Cat"))
	assert.Equal(t, "The cat", upperFirst("the cat"))
	assert.Equal(t, "", lowerFirst(""))
}

func TestMatchCase(t *testing.T) {
	assert.Equal(t, "Significant", matchCase("Important", "significant"))
	assert.Equal(t, "significant", matchCase("important", "significant"))
}

package engine

import (
	"strings"
	"unicode"
)

// SplitParagraphs splits text into paragraphs on blank lines. Surrounding
// whitespace is trimmed and empty paragraphs are dropped.
func SplitParagraphs(text string) []string {
	var paragraphs []string
	for _, block := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n") {
		block = strings.TrimSpace(block)
		if block != "" {
			paragraphs = append(paragraphs, block)
		}
	}
	return paragraphs
}

// abbreviations that end with a period but do not terminate a sentence.
var abbreviations = map[string]struct{}{
	"dr.": {}, "mr.": {}, "mrs.": {}, "ms.": {}, "prof.": {},
	"etc.": {}, "e.g.": {}, "i.e.": {}, "vs.": {}, "fig.": {},
	"no.": {}, "vol.": {}, "al.": {}, "cf.": {},
}

// SplitSentences splits a paragraph into sentences. A sentence ends at a run
// of '.', '!' or '?' followed by whitespace and an upper-case letter or digit,
// unless the terminating word is a known abbreviation.
func SplitSentences(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	runes := []rune(text)
	var sentences []string
	var b strings.Builder

	for i := 0; i < len(runes); i++ {
		b.WriteRune(runes[i])
		if runes[i] != '.' && runes[i] != '!' && runes[i] != '?' {
			continue
		}

		// Absorb terminator runs and trailing closers ("...", '?!', quotes).
		for i+1 < len(runes) && isSentenceCloser(runes[i+1]) {
			i++
			b.WriteRune(runes[i])
		}

		if endsWithAbbreviation(b.String()) {
			continue
		}

		j := i + 1
		for j < len(runes) && unicode.IsSpace(runes[j]) {
			j++
		}
		if j == i+1 && j < len(runes) {
			// No whitespace boundary (decimals, file names).
			continue
		}
		if j == len(runes) || unicode.IsUpper(runes[j]) || unicode.IsDigit(runes[j]) {
			sentences = append(sentences, strings.TrimSpace(b.String()))
			b.Reset()
			i = j - 1
		}
	}

	if rest := strings.TrimSpace(b.String()); rest != "" {
		sentences = append(sentences, rest)
	}
	return sentences
}

func isSentenceCloser(r rune) bool {
	return r == '.' || r == '!' || r == '?' || r == '"' || r == '\'' || r == ')'
}

func endsWithAbbreviation(s string) bool {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return false
	}
	last := strings.ToLower(fields[len(fields)-1])
	if _, ok := abbreviations[last]; ok {
		return true
	}
	// Single-letter initials such as "J."
	return len(last) == 2 && last[1] == '.' && unicode.IsLetter(rune(last[0]))
}

// Tokenize splits a sentence into word and punctuation tokens. Apostrophes
// and hyphens stay inside words ("don't", "well-known").
func Tokenize(s string) []string {
	var tokens []string
	var b strings.Builder
	flush := func() {
		if b.Len() > 0 {
			tokens = append(tokens, b.String())
			b.Reset()
		}
	}
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'' || r == '-':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			flush()
		default:
			flush()
			tokens = append(tokens, string(r))
		}
	}
	flush()
	return tokens
}

// JoinTokens reassembles a token slice into text, without a space before
// closing punctuation or after an opening bracket.
func JoinTokens(tokens []string) string {
	var b strings.Builder
	for i, tok := range tokens {
		if i > 0 && !noSpaceBefore(tok) && !noSpaceAfter(tokens[i-1]) {
			b.WriteByte(' ')
		}
		b.WriteString(tok)
	}
	return b.String()
}

func noSpaceBefore(tok string) bool {
	switch tok {
	case ".", ",", ";", ":", "!", "?", ")", "]", "%":
		return true
	}
	return false
}

func noSpaceAfter(tok string) bool {
	return tok == "(" || tok == "["
}

func isWord(tok string) bool {
	for _, r := range tok {
		return unicode.IsLetter(r)
	}
	return false
}

func lowerFirst(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

func upperFirst(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// matchCase carries the capitalization of the original token over to its
// replacement.
func matchCase(original, replacement string) string {
	if original == "" || replacement == "" {
		return replacement
	}
	if unicode.IsUpper([]rune(original)[0]) {
		return upperFirst(replacement)
	}
	return replacement
}

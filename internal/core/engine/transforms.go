package engine

import (
	"regexp"
	"strings"

	"humanizer-service/internal/core/domain"
)

type weightedPhrase struct {
	text string
	prob float64
}

var academicTransitions = []weightedPhrase{
	{"Furthermore,", 0.2},
	{"Moreover,", 0.15},
	{"Additionally,", 0.2},
	{"In contrast,", 0.1},
	{"Subsequently,", 0.1},
	{"Consequently,", 0.1},
	{"Nevertheless,", 0.1},
	{"Thus,", 0.15},
	{"Hence,", 0.1},
}

var transitionWords = []string{
	"Furthermore", "Moreover", "Additionally", "In contrast", "Subsequently",
	"Consequently", "Nevertheless", "Thus", "Hence",
}

var scholarlyPhrases = []string{
	"It is important to note that",
	"Research indicates that",
	"Studies have shown that",
	"Evidence suggests that",
	"Analysis reveals that",
	"It can be argued that",
	"This demonstrates that",
	"The findings indicate that",
}

var depthPhrases = []weightedPhrase{
	{"It is essential to understand that", 0.1},
	{"This concept can be further explained by", 0.08},
	{"The significance of this lies in", 0.1},
	{"A deeper examination reveals that", 0.08},
	{"This approach demonstrates that", 0.1},
	{"The implications of this include", 0.08},
}

var restructurePatterns = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`(\w+) is (\w+)`), `$1 can be characterized as $2`},
	{regexp.MustCompile(`It is (.*?) that`), `Research demonstrates that`},
	{regexp.MustCompile(`There are (.*?) that`), `Analysis reveals $1 which`},
	{regexp.MustCompile(`The (.*?) of (.*?) is`), `$2 exhibits a $1 that is`},
	{regexp.MustCompile(`This shows`), `This evidence demonstrates`},
	{regexp.MustCompile(`We can see`), `It becomes evident`},
	{regexp.MustCompile(`It's clear that`), `The data clearly indicates that`},
}

var connectorAlternatives = map[string][]string{
	"however":      {"nevertheless", "nonetheless", "conversely", "in contrast"},
	"therefore":    {"consequently", "thus", "hence", "as a result"},
	"additionally": {"furthermore", "moreover", "in addition", "similarly"},
	"moreover":     {"furthermore", "additionally", "in addition", "what is more"},
	"furthermore":  {"moreover", "additionally", "in addition", "beyond this"},
	"also":         {"additionally", "furthermore", "likewise", "similarly"},
	"but":          {"however", "nevertheless", "conversely", "in contrast"},
	"so":           {"therefore", "consequently", "thus", "hence"},
}

var formalQualifiers = []string{
	" according to current research",
	" based on available evidence",
	" as demonstrated in the literature",
	" as supported by empirical data",
	" in accordance with established theory",
	" as evidenced by recent studies",
}

var hedgeWords = []string{"arguably", "potentially", "presumably", "conceivably", "seemingly"}

var rhythmConnectors = []string{"Furthermore,", "In addition,", "Similarly,", "Conversely,", "Notably,"}

var analyticalAdditions = []string{
	" This analysis suggests",
	" These findings imply",
	" The evidence demonstrates",
	" This examination reveals",
	" The data indicates",
}

var analyticalConclusions = []string{
	" significant implications for the field.",
	" the complexity of the subject matter.",
	" important considerations for future research.",
	" the need for further investigation.",
	" valuable insights into the phenomenon.",
}

var firstPersonReplacements = [][2]string{
	{"I think", "It can be argued"},
	{"I believe", "Evidence suggests"},
	{"In my opinion", "Analysis indicates"},
	{"I feel", "Research demonstrates"},
}

// varySentenceLengths occasionally breaks a multi-clause sentence into short
// sentences at comma and semicolon boundaries.
func (h *Humanizer) varySentenceLengths(text string) string {
	if h.rng.Float64() >= 0.3 {
		return text
	}
	clauses := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ';'
	})
	if len(clauses) < 2 || h.rng.Float64() >= 0.5 {
		return text
	}
	parts := make([]string, 0, len(clauses))
	for _, c := range clauses {
		c = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(c), "."))
		if c != "" {
			parts = append(parts, upperFirst(c))
		}
	}
	if len(parts) == 0 {
		return text
	}
	return strings.Join(parts, ". ") + "."
}

// addAcademicTransitions prepends a weighted transition phrase to a random
// non-first sentence. No-op on single-sentence input, so it only fires on
// paragraph-level passes.
func (h *Humanizer) addAcademicTransitions(text string) string {
	sentences := SplitSentences(text)
	if len(sentences) > 1 && h.rng.Float64() < 0.4 {
		for _, t := range academicTransitions {
			if h.rng.Float64() < t.prob {
				idx := 1 + h.rng.Intn(len(sentences)-1)
				if !startsWithAny(sentences[idx], transitionWords) {
					sentences[idx] = t.text + " " + lowerFirst(sentences[idx])
				}
				break
			}
		}
	}
	return strings.Join(sentences, " ")
}

// substituteSynonyms swaps open-class words for same-class synonyms.
func (h *Humanizer) substituteSynonyms(text string) string {
	tokens := Tokenize(text)
	for i, tok := range tokens {
		if !isWord(tok) {
			continue
		}
		pos, ok := h.thes.Tag(tok)
		if !ok {
			continue
		}
		// Adverbs are tagged but left alone, matching the substitution
		// classes of the original pipeline.
		if pos != domain.PosNoun && pos != domain.PosVerb && pos != domain.PosAdjective {
			continue
		}
		if h.rng.Float64() >= 0.3 {
			continue
		}
		syns := h.thes.Synonyms(tok, pos)
		if len(syns) == 0 {
			continue
		}
		tokens[i] = matchCase(tok, syns[h.rng.Intn(len(syns))])
	}
	return JoinTokens(tokens)
}

// restructureSentences rewrites the first matching pattern into a more formal
// construction.
func (h *Humanizer) restructureSentences(text string) string {
	for _, p := range restructurePatterns {
		if p.re.MatchString(text) {
			if h.rng.Float64() < 0.4 {
				return p.re.ReplaceAllString(text, p.repl)
			}
		}
	}
	return text
}

// addAcademicDepth inserts an elaboration phrase into the back half of longer
// sentences.
func (h *Humanizer) addAcademicDepth(text string) string {
	for _, dp := range depthPhrases {
		if h.rng.Float64() >= dp.prob {
			continue
		}
		tokens := Tokenize(text)
		if len(tokens) > 10 {
			at := len(tokens)/2 + h.rng.Intn(len(tokens)-len(tokens)/2)
			inserted := append([]string(nil), tokens[:at]...)
			inserted = append(inserted, strings.Fields(dp.text)...)
			inserted = append(inserted, tokens[at:]...)
			return JoinTokens(inserted)
		}
	}
	return text
}

// varyConnectors replaces common connectors with academic alternatives.
func (h *Humanizer) varyConnectors(text string) string {
	tokens := Tokenize(text)
	for i, tok := range tokens {
		alts, ok := connectorAlternatives[strings.ToLower(tok)]
		if !ok || h.rng.Float64() >= 0.6 {
			continue
		}
		tokens[i] = matchCase(tok, alts[h.rng.Intn(len(alts))])
	}
	return JoinTokens(tokens)
}

// addScholarlyOpener occasionally prefixes the first sentence with a
// scholarly framing phrase.
func (h *Humanizer) addScholarlyOpener(text string) string {
	if h.rng.Float64() >= 0.25 {
		return text
	}
	sentences := SplitSentences(text)
	if len(sentences) == 0 || startsWithAny(sentences[0], scholarlyFirstWords()) {
		return text
	}
	sentences[0] = scholarlyPhrases[h.rng.Intn(len(scholarlyPhrases))] + " " + lowerFirst(sentences[0])
	return strings.Join(sentences, " ")
}

// addHumanTouches is the finishing pass applied once per paragraph: formal
// qualifiers, hedging adverbs, and first-person removal.
func (h *Humanizer) addHumanTouches(text string) string {
	if h.rng.Float64() < 0.15 {
		if at := strings.LastIndex(text, "."); at != -1 {
			text = text[:at] + formalQualifiers[h.rng.Intn(len(formalQualifiers))] + text[at:]
		}
	}

	if h.rng.Float64() < 0.12 {
		sentences := SplitSentences(text)
		if len(sentences) > 1 {
			idx := h.rng.Intn(len(sentences))
			tokens := Tokenize(sentences[idx])
			if len(tokens) > 3 {
				hedge := hedgeWords[h.rng.Intn(len(hedgeWords))]
				withHedge := append([]string(nil), tokens[:2]...)
				withHedge = append(withHedge, hedge)
				withHedge = append(withHedge, tokens[2:]...)
				sentences[idx] = JoinTokens(withHedge)
			}
			text = strings.Join(sentences, " ")
		}
	}

	for _, r := range firstPersonReplacements {
		text = strings.ReplaceAll(text, r[0], r[1])
	}
	return text
}

// varyAcademicRhythm prepends connectors to non-first sentences with low
// probability. Used between deep-think cycles.
func (h *Humanizer) varyAcademicRhythm(text string) string {
	sentences := SplitSentences(text)
	for i := range sentences {
		if i == 0 || h.rng.Float64() >= 0.15 {
			continue
		}
		if !startsWithAny(sentences[i], rhythmConnectors) {
			c := rhythmConnectors[h.rng.Intn(len(rhythmConnectors))]
			sentences[i] = c + " " + lowerFirst(sentences[i])
		}
	}
	return strings.Join(sentences, " ")
}

// addAnalyticalCloser occasionally extends the final sentence with an
// analytical follow-up. Used between deep-think cycles.
func (h *Humanizer) addAnalyticalCloser(text string) string {
	sentences := SplitSentences(text)
	if len(sentences) == 0 || h.rng.Float64() >= 0.2 {
		return strings.Join(sentences, " ")
	}
	last := sentences[len(sentences)-1]
	if strings.HasSuffix(last, ".") {
		addition := analyticalAdditions[h.rng.Intn(len(analyticalAdditions))]
		conclusion := analyticalConclusions[h.rng.Intn(len(analyticalConclusions))]
		sentences[len(sentences)-1] = last + addition + conclusion
	}
	return strings.Join(sentences, " ")
}

func startsWithAny(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, strings.TrimSuffix(p, ",")) {
			return true
		}
	}
	return false
}

func scholarlyFirstWords() []string {
	words := make([]string, 0, len(scholarlyPhrases))
	for _, p := range scholarlyPhrases {
		words = append(words, strings.SplitN(p, " ", 2)[0])
	}
	return words
}

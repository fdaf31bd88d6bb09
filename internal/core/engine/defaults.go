package engine

import "humanizer-service/internal/core/domain"

// builtinEntries is the default synonym table. It covers common words of
// expository prose; deployments extend it through the lexicon API.
var builtinEntries = []struct {
	word     string
	pos      domain.PartOfSpeech
	synonyms []string
}{
	// Nouns
	{"idea", domain.PosNoun, []string{"concept", "notion", "thought"}},
	{"problem", domain.PosNoun, []string{"issue", "challenge", "difficulty"}},
	{"result", domain.PosNoun, []string{"outcome", "finding", "consequence"}},
	{"method", domain.PosNoun, []string{"approach", "technique", "procedure"}},
	{"goal", domain.PosNoun, []string{"objective", "aim", "purpose"}},
	{"part", domain.PosNoun, []string{"component", "element", "portion"}},
	{"way", domain.PosNoun, []string{"manner", "means", "approach"}},
	{"change", domain.PosNoun, []string{"alteration", "shift", "modification"}},
	{"effect", domain.PosNoun, []string{"impact", "influence", "consequence"}},
	{"reason", domain.PosNoun, []string{"rationale", "motive", "justification"}},
	{"example", domain.PosNoun, []string{"instance", "illustration", "case"}},
	{"study", domain.PosNoun, []string{"investigation", "analysis", "examination"}},
	{"area", domain.PosNoun, []string{"domain", "field", "sphere"}},
	{"benefit", domain.PosNoun, []string{"advantage", "gain", "merit"}},
	{"question", domain.PosNoun, []string{"query", "inquiry", "matter"}},
	{"answer", domain.PosNoun, []string{"response", "solution", "reply"}},
	{"growth", domain.PosNoun, []string{"expansion", "development", "increase"}},
	{"people", domain.PosNoun, []string{"individuals", "persons"}},
	{"use", domain.PosNoun, []string{"application", "utilization", "employment"}},
	{"view", domain.PosNoun, []string{"perspective", "standpoint", "outlook"}},

	// Verbs
	{"show", domain.PosVerb, []string{"demonstrate", "reveal", "indicate", "illustrate"}},
	{"use", domain.PosVerb, []string{"employ", "utilize", "apply"}},
	{"make", domain.PosVerb, []string{"create", "produce", "generate"}},
	{"help", domain.PosVerb, []string{"assist", "facilitate", "support"}},
	{"need", domain.PosVerb, []string{"require", "necessitate", "demand"}},
	{"get", domain.PosVerb, []string{"obtain", "acquire", "attain"}},
	{"give", domain.PosVerb, []string{"provide", "supply", "offer"}},
	{"find", domain.PosVerb, []string{"discover", "identify", "determine"}},
	{"think", domain.PosVerb, []string{"consider", "contemplate", "reason"}},
	{"explain", domain.PosVerb, []string{"clarify", "elucidate", "describe"}},
	{"improve", domain.PosVerb, []string{"enhance", "refine", "strengthen"}},
	{"increase", domain.PosVerb, []string{"expand", "amplify", "augment"}},
	{"reduce", domain.PosVerb, []string{"decrease", "diminish", "lessen"}},
	{"start", domain.PosVerb, []string{"begin", "initiate", "commence"}},
	{"end", domain.PosVerb, []string{"conclude", "finish", "terminate"}},
	{"keep", domain.PosVerb, []string{"maintain", "retain", "preserve"}},
	{"change", domain.PosVerb, []string{"alter", "modify", "transform"}},
	{"suggest", domain.PosVerb, []string{"indicate", "imply", "propose"}},
	{"examine", domain.PosVerb, []string{"analyze", "investigate", "scrutinize"}},
	{"prove", domain.PosVerb, []string{"establish", "confirm", "verify"}},

	// Adjectives
	{"important", domain.PosAdjective, []string{"significant", "crucial", "essential", "vital"}},
	{"big", domain.PosAdjective, []string{"substantial", "considerable", "extensive"}},
	{"small", domain.PosAdjective, []string{"minor", "modest", "limited"}},
	{"good", domain.PosAdjective, []string{"beneficial", "favorable", "advantageous"}},
	{"bad", domain.PosAdjective, []string{"detrimental", "adverse", "unfavorable"}},
	{"new", domain.PosAdjective, []string{"novel", "recent", "emerging"}},
	{"clear", domain.PosAdjective, []string{"evident", "apparent", "unambiguous"}},
	{"hard", domain.PosAdjective, []string{"difficult", "challenging", "demanding"}},
	{"easy", domain.PosAdjective, []string{"straightforward", "simple", "uncomplicated"}},
	{"fast", domain.PosAdjective, []string{"rapid", "swift", "accelerated"}},
	{"main", domain.PosAdjective, []string{"primary", "principal", "central"}},
	{"common", domain.PosAdjective, []string{"prevalent", "widespread", "frequent"}},
	{"different", domain.PosAdjective, []string{"distinct", "divergent", "varied"}},
	{"useful", domain.PosAdjective, []string{"valuable", "practical", "advantageous"}},
	{"likely", domain.PosAdjective, []string{"probable", "plausible", "expected"}},
	{"true", domain.PosAdjective, []string{"accurate", "valid", "correct"}},

	// Adverbs
	{"very", domain.PosAdverb, []string{"highly", "considerably", "remarkably"}},
	{"quickly", domain.PosAdverb, []string{"rapidly", "swiftly", "promptly"}},
	{"often", domain.PosAdverb, []string{"frequently", "commonly", "regularly"}},
	{"clearly", domain.PosAdverb, []string{"evidently", "plainly", "manifestly"}},
	{"usually", domain.PosAdverb, []string{"typically", "generally", "ordinarily"}},
}

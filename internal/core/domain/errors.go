package domain

import "errors"

// ============================================================================
// Rewrite Errors
// ============================================================================

// Validation errors
var (
	ErrEmptyText        = errors.New("text is required")
	ErrTextTooLarge     = errors.New("text exceeds maximum input size")
	ErrInvalidIntensity = errors.New("intensity must be between 1 and 5")
	ErrInvalidCycles    = errors.New("cycles must be between 1 and 10")
)

// Not found errors
var (
	ErrJobNotFound = errors.New("rewrite job not found")
)

// ============================================================================
// Preset Errors
// ============================================================================

var (
	ErrPresetNotFound     = errors.New("preset not found")
	ErrPresetNameConflict = errors.New("preset with this name already exists")
	ErrInvalidPresetName  = errors.New("preset name is required")
)

// ============================================================================
// Lexicon Errors
// ============================================================================

var (
	ErrLexiconEntryNotFound = errors.New("lexicon entry not found")
	ErrLexiconEntryConflict = errors.New("lexicon entry for this word and part of speech already exists")
	ErrInvalidWord          = errors.New("word is required")
	ErrInvalidPartOfSpeech  = errors.New("part of speech must be one of: noun, verb, adjective, adverb")
	ErrEmptySynonyms        = errors.New("at least one synonym is required")
)

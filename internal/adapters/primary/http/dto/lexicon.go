package dto

import (
	"time"

	"github.com/google/uuid"

	"humanizer-service/internal/core/domain"
)

// ============================================================================
// Request DTOs
// ============================================================================

// CreateLexiconEntryRequest represents a request to create a lexicon entry
type CreateLexiconEntryRequest struct {
	Word     string   `json:"word" binding:"required"`
	Pos      string   `json:"pos" binding:"required"`
	Synonyms []string `json:"synonyms" binding:"required"`
}

// UpdateLexiconEntryRequest represents a request to update a lexicon entry
type UpdateLexiconEntryRequest struct {
	Word     *string  `json:"word"`
	Pos      *string  `json:"pos"`
	Synonyms []string `json:"synonyms"`
}

// ============================================================================
// Response DTOs
// ============================================================================

// LexiconEntryResponse represents a lexicon entry response
type LexiconEntryResponse struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Word      string    `json:"word"`
	Pos       string    `json:"pos"`
	Synonyms  []string  `json:"synonyms"`
}

// ListLexiconEntriesResponse represents a page of lexicon entries
type ListLexiconEntriesResponse struct {
	Items      []LexiconEntryResponse `json:"items"`
	Total      int                    `json:"total"`
	PageSize   int                    `json:"page_size"`
	NextOffset int                    `json:"next_offset"`
}

// ============================================================================
// Converters
// ============================================================================

// ToLexiconEntryResponse converts a domain LexiconEntry to response DTO
func ToLexiconEntryResponse(entry *domain.LexiconEntry) LexiconEntryResponse {
	synonyms := entry.Synonyms
	if synonyms == nil {
		synonyms = []string{}
	}
	return LexiconEntryResponse{
		ID:        entry.ID,
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
		Word:      entry.Word,
		Pos:       string(entry.Pos),
		Synonyms:  synonyms,
	}
}

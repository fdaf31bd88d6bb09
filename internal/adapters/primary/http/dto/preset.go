package dto

import (
	"time"

	"github.com/google/uuid"

	"humanizer-service/internal/core/domain"
)

// ============================================================================
// Request DTOs
// ============================================================================

// CreatePresetRequest represents a request to create a preset
type CreatePresetRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Intensity   int    `json:"intensity"`
	DeepThink   bool   `json:"deep_think"`
	Cycles      int    `json:"cycles"`
}

// UpdatePresetRequest represents a request to update a preset
type UpdatePresetRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Intensity   *int    `json:"intensity"`
	DeepThink   *bool   `json:"deep_think"`
	Cycles      *int    `json:"cycles"`
}

// ============================================================================
// Response DTOs
// ============================================================================

// PresetResponse represents a preset response
type PresetResponse struct {
	ID          uuid.UUID `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Intensity   int       `json:"intensity"`
	DeepThink   bool      `json:"deep_think"`
	Cycles      int       `json:"cycles"`
}

// ListPresetsResponse represents a list of presets
type ListPresetsResponse struct {
	Items []PresetResponse `json:"items"`
	Total int              `json:"total"`
}

// ============================================================================
// Converters
// ============================================================================

// ToPresetResponse converts a domain Preset to response DTO
func ToPresetResponse(preset *domain.Preset) PresetResponse {
	return PresetResponse{
		ID:          preset.ID,
		CreatedAt:   preset.CreatedAt,
		UpdatedAt:   preset.UpdatedAt,
		Name:        preset.Name,
		Description: preset.Description,
		Intensity:   preset.Intensity,
		DeepThink:   preset.DeepThink,
		Cycles:      preset.Cycles,
	}
}

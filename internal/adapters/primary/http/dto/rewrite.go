package dto

import (
	"time"

	"github.com/google/uuid"

	"humanizer-service/internal/core/domain"
)

// ============================================================================
// Request DTOs
// ============================================================================

// RewriteRequest represents a request to humanize a piece of text
type RewriteRequest struct {
	Text      string     `json:"text" binding:"required"`
	Intensity *int       `json:"intensity"`
	DeepThink *bool      `json:"deep_think"`
	Cycles    *int       `json:"cycles"`
	PresetID  *uuid.UUID `json:"preset_id"`
}

// ============================================================================
// Response DTOs
// ============================================================================

// RewriteJobResponse represents a completed rewrite job
type RewriteJobResponse struct {
	ID          uuid.UUID  `json:"id"`
	CreatedAt   time.Time  `json:"created_at"`
	Mode        string     `json:"mode"`
	Intensity   int        `json:"intensity"`
	Cycles      int        `json:"cycles"`
	Input       string     `json:"input"`
	Output      string     `json:"output"`
	InputChars  int        `json:"input_chars"`
	OutputChars int        `json:"output_chars"`
	DurationMs  int64      `json:"duration_ms"`
	PresetID    *uuid.UUID `json:"preset_id,omitempty"`
}

// RewriteJobSummary is the list representation; input and output are
// truncated previews.
type RewriteJobSummary struct {
	ID            uuid.UUID `json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	Mode          string    `json:"mode"`
	Intensity     int       `json:"intensity"`
	Cycles        int       `json:"cycles"`
	InputPreview  string    `json:"input_preview"`
	OutputPreview string    `json:"output_preview"`
	InputChars    int       `json:"input_chars"`
	OutputChars   int       `json:"output_chars"`
	DurationMs    int64     `json:"duration_ms"`
}

// ListRewriteJobsResponse represents a page of rewrite job summaries
type ListRewriteJobsResponse struct {
	Items      []RewriteJobSummary `json:"items"`
	Total      int                 `json:"total"`
	PageSize   int                 `json:"page_size"`
	NextOffset int                 `json:"next_offset"`
}

// StatsResponse represents aggregate usage statistics
type StatsResponse struct {
	TotalJobs         int         `json:"total_jobs"`
	DeepThinkJobs     int         `json:"deep_think_jobs"`
	AvgDurationMs     float64     `json:"avg_duration_ms"`
	AvgExpansionRatio float64     `json:"avg_expansion_ratio"`
	JobsByIntensity   map[int]int `json:"jobs_by_intensity"`
}

// ============================================================================
// Converters
// ============================================================================

const previewLen = 160

// ToRewriteJobResponse converts a domain RewriteJob to response DTO
func ToRewriteJobResponse(job *domain.RewriteJob) RewriteJobResponse {
	return RewriteJobResponse{
		ID:          job.ID,
		CreatedAt:   job.CreatedAt,
		Mode:        string(job.Mode),
		Intensity:   job.Intensity,
		Cycles:      job.Cycles,
		Input:       job.InputText,
		Output:      job.OutputText,
		InputChars:  job.InputChars,
		OutputChars: job.OutputChars,
		DurationMs:  job.DurationMs,
		PresetID:    job.PresetID,
	}
}

// ToRewriteJobSummary converts a domain RewriteJob to its list representation
func ToRewriteJobSummary(job *domain.RewriteJob) RewriteJobSummary {
	return RewriteJobSummary{
		ID:            job.ID,
		CreatedAt:     job.CreatedAt,
		Mode:          string(job.Mode),
		Intensity:     job.Intensity,
		Cycles:        job.Cycles,
		InputPreview:  truncate(job.InputText, previewLen),
		OutputPreview: truncate(job.OutputText, previewLen),
		InputChars:    job.InputChars,
		OutputChars:   job.OutputChars,
		DurationMs:    job.DurationMs,
	}
}

// ToStatsResponse converts domain RewriteStats to response DTO
func ToStatsResponse(stats *domain.RewriteStats) StatsResponse {
	return StatsResponse{
		TotalJobs:         stats.TotalJobs,
		DeepThinkJobs:     stats.DeepThinkJobs,
		AvgDurationMs:     stats.AvgDurationMs,
		AvgExpansionRatio: stats.AvgExpansionRatio,
		JobsByIntensity:   stats.JobsByIntensity,
	}
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// RewriteMode identifies the processing mode of a rewrite job.
type RewriteMode string

const (
	ModeStandard  RewriteMode = "standard"
	ModeDeepThink RewriteMode = "deep_think"
)

const (
	// MinIntensity and MaxIntensity bound the number of transforms applied
	// per sentence in a single pass.
	MinIntensity = 1
	MaxIntensity = 5

	DefaultIntensity = 3

	// Deep-think cycle bounds. Each cycle is a full rewrite at MaxIntensity.
	MinCycles     = 1
	MaxCycles     = 10
	DefaultCycles = 5
)

// RewriteJob records one humanization request and its result.
type RewriteJob struct {
	ID          uuid.UUID
	CreatedAt   time.Time
	Mode        RewriteMode
	Intensity   int
	Cycles      int
	InputText   string
	OutputText  string
	InputChars  int
	OutputChars int
	DurationMs  int64
	PresetID    *uuid.UUID
}

// RewriteStats aggregates usage over the stored job history.
type RewriteStats struct {
	TotalJobs         int
	DeepThinkJobs     int
	AvgDurationMs     float64
	AvgExpansionRatio float64
	JobsByIntensity   map[int]int
}

package services

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"humanizer-service/internal/core/domain"
	"humanizer-service/internal/core/engine"
	ports "humanizer-service/internal/core/ports/output"
)

// RewriteRequest carries the parameters of one humanization call. Nil fields
// fall back to the preset (when given) and then to defaults.
type RewriteRequest struct {
	Text      string
	Intensity *int
	DeepThink *bool
	Cycles    *int
	PresetID  *uuid.UUID
}

type RewriteService struct {
	jobs          ports.RewriteJobRepository
	presets       ports.PresetRepository
	lexicon       *LexiconService
	maxInputBytes int
	seed          int64
}

// NewRewriteService wires the rewrite use case. maxInputBytes bounds accepted
// input; seed != 0 makes the engine deterministic (used in tests and
// reproducible runs).
func NewRewriteService(jobs ports.RewriteJobRepository, presets ports.PresetRepository, lexicon *LexiconService, maxInputBytes int, seed int64) *RewriteService {
	return &RewriteService{
		jobs:          jobs,
		presets:       presets,
		lexicon:       lexicon,
		maxInputBytes: maxInputBytes,
		seed:          seed,
	}
}

func (s *RewriteService) Rewrite(ctx context.Context, req RewriteRequest) (*domain.RewriteJob, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, domain.ErrEmptyText
	}
	if s.maxInputBytes > 0 && len(req.Text) > s.maxInputBytes {
		return nil, domain.ErrTextTooLarge
	}

	intensity := domain.DefaultIntensity
	deepThink := false
	cycles := domain.DefaultCycles

	if req.PresetID != nil {
		preset, err := s.presets.GetByID(ctx, *req.PresetID)
		if err != nil {
			return nil, err
		}
		intensity = preset.Intensity
		deepThink = preset.DeepThink
		cycles = preset.Cycles
	}

	if req.Intensity != nil {
		intensity = *req.Intensity
	}
	if req.DeepThink != nil {
		deepThink = *req.DeepThink
	}
	if req.Cycles != nil {
		cycles = *req.Cycles
	}

	if intensity < domain.MinIntensity || intensity > domain.MaxIntensity {
		return nil, domain.ErrInvalidIntensity
	}
	if cycles < domain.MinCycles || cycles > domain.MaxCycles {
		return nil, domain.ErrInvalidCycles
	}

	thes, err := s.lexicon.Thesaurus(ctx)
	if err != nil {
		return nil, err
	}

	h := engine.New(thes, s.newRNG())

	start := time.Now()
	var output string
	mode := domain.ModeStandard
	if deepThink {
		mode = domain.ModeDeepThink
		intensity = domain.MaxIntensity
		output = h.DeepThink(req.Text, cycles)
	} else {
		cycles = 1
		output = h.Humanize(req.Text, intensity)
	}
	elapsed := time.Since(start)

	job := &domain.RewriteJob{
		ID:          uuid.New(),
		CreatedAt:   time.Now(),
		Mode:        mode,
		Intensity:   intensity,
		Cycles:      cycles,
		InputText:   req.Text,
		OutputText:  output,
		InputChars:  len([]rune(req.Text)),
		OutputChars: len([]rune(output)),
		DurationMs:  elapsed.Milliseconds(),
		PresetID:    req.PresetID,
	}

	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, err
	}

	return job, nil
}

func (s *RewriteService) Get(ctx context.Context, id uuid.UUID) (*domain.RewriteJob, error) {
	return s.jobs.GetByID(ctx, id)
}

func (s *RewriteService) List(ctx context.Context, filter ports.JobListFilter) ([]*domain.RewriteJob, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	return s.jobs.List(ctx, filter)
}

func (s *RewriteService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.jobs.Delete(ctx, id)
}

func (s *RewriteService) newRNG() *rand.Rand {
	if s.seed != 0 {
		return rand.New(rand.NewSource(s.seed))
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

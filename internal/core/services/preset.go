package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"humanizer-service/internal/core/domain"
	ports "humanizer-service/internal/core/ports/output"
)

type PresetService struct {
	repo ports.PresetRepository
}

func NewPresetService(repo ports.PresetRepository) *PresetService {
	return &PresetService{repo: repo}
}

func (s *PresetService) Create(ctx context.Context, name, description string, intensity int, deepThink bool, cycles int) (*domain.Preset, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrInvalidPresetName
	}
	if intensity == 0 {
		intensity = domain.DefaultIntensity
	}
	if intensity < domain.MinIntensity || intensity > domain.MaxIntensity {
		return nil, domain.ErrInvalidIntensity
	}
	if cycles == 0 {
		cycles = domain.DefaultCycles
	}
	if cycles < domain.MinCycles || cycles > domain.MaxCycles {
		return nil, domain.ErrInvalidCycles
	}

	now := time.Now()
	preset := &domain.Preset{
		ID:          uuid.New(),
		CreatedAt:   now,
		UpdatedAt:   now,
		Name:        name,
		Description: description,
		Intensity:   intensity,
		DeepThink:   deepThink,
		Cycles:      cycles,
	}

	if err := s.repo.Create(ctx, preset); err != nil {
		return nil, err
	}

	return preset, nil
}

func (s *PresetService) Get(ctx context.Context, id uuid.UUID) (*domain.Preset, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *PresetService) GetByName(ctx context.Context, name string) (*domain.Preset, error) {
	return s.repo.GetByName(ctx, name)
}

func (s *PresetService) List(ctx context.Context) ([]*domain.Preset, error) {
	return s.repo.List(ctx)
}

func (s *PresetService) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*domain.Preset, error) {
	preset, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if v, ok := updates["name"]; ok && v != nil {
		name := strings.TrimSpace(v.(string))
		if name == "" {
			return nil, domain.ErrInvalidPresetName
		}
		preset.Name = name
	}
	if v, ok := updates["description"]; ok && v != nil {
		preset.Description = v.(string)
	}
	if v, ok := updates["intensity"]; ok && v != nil {
		intensity := v.(int)
		if intensity < domain.MinIntensity || intensity > domain.MaxIntensity {
			return nil, domain.ErrInvalidIntensity
		}
		preset.Intensity = intensity
	}
	if v, ok := updates["deep_think"]; ok && v != nil {
		preset.DeepThink = v.(bool)
	}
	if v, ok := updates["cycles"]; ok && v != nil {
		cycles := v.(int)
		if cycles < domain.MinCycles || cycles > domain.MaxCycles {
			return nil, domain.ErrInvalidCycles
		}
		preset.Cycles = cycles
	}

	preset.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, preset); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}

func (s *PresetService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

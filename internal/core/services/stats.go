package services

import (
	"context"

	"humanizer-service/internal/core/domain"
	ports "humanizer-service/internal/core/ports/output"
)

type StatsService struct {
	jobs ports.RewriteJobRepository
}

func NewStatsService(jobs ports.RewriteJobRepository) *StatsService {
	return &StatsService{jobs: jobs}
}

func (s *StatsService) Stats(ctx context.Context) (*domain.RewriteStats, error) {
	stats, err := s.jobs.Stats(ctx)
	if err != nil {
		return nil, err
	}
	if stats.JobsByIntensity == nil {
		stats.JobsByIntensity = make(map[int]int)
	}
	return stats, nil
}

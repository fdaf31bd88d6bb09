package output

import (
	"context"

	"github.com/google/uuid"

	"humanizer-service/internal/core/domain"
)

type JobListFilter struct {
	Mode   string
	SortBy string
	Order  string
	Limit  int
	Offset int
}

type LexiconListFilter struct {
	Pos    string
	Search string
	Limit  int
	Offset int
}

type RewriteJobRepository interface {
	Create(ctx context.Context, job *domain.RewriteJob) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.RewriteJob, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter JobListFilter) ([]*domain.RewriteJob, int, error)
	Stats(ctx context.Context) (*domain.RewriteStats, error)
}

type PresetRepository interface {
	Create(ctx context.Context, preset *domain.Preset) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Preset, error)
	GetByName(ctx context.Context, name string) (*domain.Preset, error)
	Update(ctx context.Context, preset *domain.Preset) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*domain.Preset, error)
}

type LexiconRepository interface {
	Create(ctx context.Context, entry *domain.LexiconEntry) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.LexiconEntry, error)
	Update(ctx context.Context, entry *domain.LexiconEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter LexiconListFilter) ([]*domain.LexiconEntry, int, error)
	ListAll(ctx context.Context) ([]*domain.LexiconEntry, error)
}

package testutil

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"humanizer-service/internal/core/domain"
	ports "humanizer-service/internal/core/ports/output"
)

// MockRewriteJobRepo is a mock of RewriteJobRepository.
type MockRewriteJobRepo struct {
	mock.Mock
}

func (m *MockRewriteJobRepo) Create(ctx context.Context, job *domain.RewriteJob) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockRewriteJobRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.RewriteJob, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RewriteJob), args.Error(1)
}

func (m *MockRewriteJobRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRewriteJobRepo) List(ctx context.Context, filter ports.JobListFilter) ([]*domain.RewriteJob, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.RewriteJob), args.Int(1), args.Error(2)
}

func (m *MockRewriteJobRepo) Stats(ctx context.Context) (*domain.RewriteStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RewriteStats), args.Error(1)
}

// MockPresetRepo is a mock of PresetRepository.
type MockPresetRepo struct {
	mock.Mock
}

func (m *MockPresetRepo) Create(ctx context.Context, preset *domain.Preset) error {
	args := m.Called(ctx, preset)
	return args.Error(0)
}

func (m *MockPresetRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Preset, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Preset), args.Error(1)
}

func (m *MockPresetRepo) GetByName(ctx context.Context, name string) (*domain.Preset, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Preset), args.Error(1)
}

func (m *MockPresetRepo) Update(ctx context.Context, preset *domain.Preset) error {
	args := m.Called(ctx, preset)
	return args.Error(0)
}

func (m *MockPresetRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPresetRepo) List(ctx context.Context) ([]*domain.Preset, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Preset), args.Error(1)
}

// MockLexiconRepo is a mock of LexiconRepository.
type MockLexiconRepo struct {
	mock.Mock
}

func (m *MockLexiconRepo) Create(ctx context.Context, entry *domain.LexiconEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLexiconRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.LexiconEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LexiconEntry), args.Error(1)
}

func (m *MockLexiconRepo) Update(ctx context.Context, entry *domain.LexiconEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLexiconRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLexiconRepo) List(ctx context.Context, filter ports.LexiconListFilter) ([]*domain.LexiconEntry, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.LexiconEntry), args.Int(1), args.Error(2)
}

func (m *MockLexiconRepo) ListAll(ctx context.Context) ([]*domain.LexiconEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.LexiconEntry), args.Error(1)
}

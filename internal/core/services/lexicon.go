package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"humanizer-service/internal/core/domain"
	"humanizer-service/internal/core/engine"
	ports "humanizer-service/internal/core/ports/output"
)

// LexiconService manages the synonym lexicon and serves the engine a merged
// thesaurus snapshot (built-in table overlaid with stored entries). The
// snapshot is rebuilt lazily after any write.
type LexiconService struct {
	repo ports.LexiconRepository

	mu       sync.RWMutex
	snapshot *engine.Lexicon
}

func NewLexiconService(repo ports.LexiconRepository) *LexiconService {
	return &LexiconService{repo: repo}
}

// Thesaurus returns the current merged thesaurus, loading stored entries on
// first use or after invalidation.
func (s *LexiconService) Thesaurus(ctx context.Context) (engine.Thesaurus, error) {
	s.mu.RLock()
	snap := s.snapshot
	s.mu.RUnlock()
	if snap != nil {
		return snap, nil
	}

	entries, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	merged := engine.DefaultLexicon()
	merged.AddEntries(entries)

	s.mu.Lock()
	s.snapshot = merged
	s.mu.Unlock()

	return merged, nil
}

func (s *LexiconService) invalidate() {
	s.mu.Lock()
	s.snapshot = nil
	s.mu.Unlock()
}

func (s *LexiconService) Create(ctx context.Context, word string, pos domain.PartOfSpeech, synonyms []string) (*domain.LexiconEntry, error) {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return nil, domain.ErrInvalidWord
	}
	if !domain.ValidPartOfSpeech(pos) {
		return nil, domain.ErrInvalidPartOfSpeech
	}
	synonyms = cleanSynonyms(synonyms)
	if len(synonyms) == 0 {
		return nil, domain.ErrEmptySynonyms
	}

	now := time.Now()
	entry := &domain.LexiconEntry{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
		Word:      word,
		Pos:       pos,
		Synonyms:  synonyms,
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}

	s.invalidate()
	return entry, nil
}

func (s *LexiconService) Get(ctx context.Context, id uuid.UUID) (*domain.LexiconEntry, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *LexiconService) List(ctx context.Context, filter ports.LexiconListFilter) ([]*domain.LexiconEntry, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	if filter.Limit > 200 {
		filter.Limit = 200
	}
	return s.repo.List(ctx, filter)
}

func (s *LexiconService) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*domain.LexiconEntry, error) {
	entry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if v, ok := updates["word"]; ok && v != nil {
		word := strings.ToLower(strings.TrimSpace(v.(string)))
		if word == "" {
			return nil, domain.ErrInvalidWord
		}
		entry.Word = word
	}
	if v, ok := updates["pos"]; ok && v != nil {
		pos := domain.PartOfSpeech(v.(string))
		if !domain.ValidPartOfSpeech(pos) {
			return nil, domain.ErrInvalidPartOfSpeech
		}
		entry.Pos = pos
	}
	if v, ok := updates["synonyms"]; ok && v != nil {
		synonyms := cleanSynonyms(v.([]string))
		if len(synonyms) == 0 {
			return nil, domain.ErrEmptySynonyms
		}
		entry.Synonyms = synonyms
	}

	entry.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, entry); err != nil {
		return nil, err
	}

	s.invalidate()
	return s.repo.GetByID(ctx, id)
}

func (s *LexiconService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func cleanSynonyms(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, syn := range in {
		syn = strings.ToLower(strings.TrimSpace(syn))
		if syn == "" {
			continue
		}
		if _, dup := seen[syn]; dup {
			continue
		}
		seen[syn] = struct{}{}
		out = append(out, syn)
	}
	return out
}

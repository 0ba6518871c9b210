package store

import (
	"context"
	"sort"
	"sync"

	"murima/internal/registry/models"
	"murima/pkg/platform/sentinel"
	"murima/pkg/requestcontext"
)

// InMemory keeps records resident. It favors clarity over performance and is
// the store of choice for tests and local development.
type InMemory struct {
	mu      sync.RWMutex
	records map[int64]models.Business
	nextID  int64
}

func NewInMemory() *InMemory {
	return &InMemory{records: make(map[int64]models.Business)}
}

func (s *InMemory) Create(ctx context.Context, b *models.Business) error {
	if err := b.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	now := requestcontext.Now(ctx)
	b.ID = s.nextID
	b.CreatedAt = now
	b.UpdatedAt = now
	s.records[b.ID] = b.Clone()
	return nil
}

func (s *InMemory) Update(ctx context.Context, b *models.Business) error {
	if err := b.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.records[b.ID]
	if !ok {
		return sentinel.ErrNotFound
	}
	b.CreatedAt = stored.CreatedAt
	b.UpdatedAt = requestcontext.Now(ctx)
	s.records[b.ID] = b.Clone()
	return nil
}

func (s *InMemory) GetByID(_ context.Context, id int64) (*models.Business, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if b, ok := s.records[id]; ok {
		out := b.Clone()
		return &out, nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemory) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.records, id)
	return nil
}

// All clones every record so the returned snapshot shares nothing mutable
// with the store. Ordered by id for deterministic pipeline input.
func (s *InMemory) All(_ context.Context) ([]models.Business, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Business, 0, len(s.records))
	for _, b := range s.records {
		out = append(out, b.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

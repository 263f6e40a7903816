package verhouding

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"gemeentenet/pkg/sentinel"
)

type InMemoryStore struct {
	mu          sync.RWMutex
	verhoudings map[uuid.UUID]*Verhouding
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{verhoudings: make(map[uuid.UUID]*Verhouding)}
}

func (s *InMemoryStore) Create(_ context.Context, v *Verhouding) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *v
	s.verhoudings[v.ID] = &cp
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, id uuid.UUID) (*Verhouding, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.verhoudings[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *v
	return &cp, nil
}

func (s *InMemoryStore) ListForLidmaat(_ context.Context, lidmaatID uuid.UUID) ([]*Verhouding, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*Verhouding
	for _, v := range s.verhoudings {
		if v.LidmaatID == lidmaatID || v.VerwanteID == lidmaatID {
			cp := *v
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *InMemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.verhoudings[id]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.verhoudings, id)
	return nil
}

func (s *InMemoryStore) DeleteForLidmaat(_ context.Context, lidmaatID uuid.UUID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, v := range s.verhoudings {
		if v.LidmaatID == lidmaatID || v.VerwanteID == lidmaatID {
			delete(s.verhoudings, id)
			n++
		}
	}
	return n, nil
}

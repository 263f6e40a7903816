package kennisgewing

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"gemeentenet/pkg/sentinel"
)

type InMemoryStore struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]*Kennisgewing
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{entries: make(map[uuid.UUID]*Kennisgewing)}
}

func (s *InMemoryStore) Append(_ context.Context, k *Kennisgewing) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *k
	s.entries[k.ID] = &cp
	return nil
}

func (s *InMemoryStore) ListRecent(_ context.Context, gemeenteID uuid.UUID, limit int) ([]*Kennisgewing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*Kennisgewing
	for _, k := range s.entries {
		if k.GemeenteID == gemeenteID {
			cp := *k
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].SentAt.After(out[j].SentAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *InMemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[id]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.entries, id)
	return nil
}

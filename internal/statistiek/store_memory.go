package statistiek

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type InMemoryStore struct {
	mu      sync.RWMutex
	entries []Inskrywing
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) Append(_ context.Context, inskrywing Inskrywing) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, inskrywing)
	return nil
}

func (s *InMemoryStore) ListByGemeente(_ context.Context, gemeenteID uuid.UUID) ([]Inskrywing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Inskrywing
	for _, e := range s.entries {
		if e.GemeenteID == gemeenteID {
			out = append(out, e)
		}
	}
	return out, nil
}

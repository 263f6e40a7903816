package geloofsonderrig

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

type InMemoryStore struct {
	mu        sync.RWMutex
	betalings []*Betaling
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) Append(_ context.Context, b *Betaling) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *b
	s.betalings = append(s.betalings, &cp)
	return nil
}

func (s *InMemoryStore) List(_ context.Context, gemeenteID uuid.UUID, jaar int) ([]*Betaling, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*Betaling
	for _, b := range s.betalings {
		if b.GemeenteID != gemeenteID {
			continue
		}
		if jaar != 0 && b.Jaar != jaar {
			continue
		}
		cp := *b
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].BetaalDatum.After(out[j].BetaalDatum)
	})
	return out, nil
}

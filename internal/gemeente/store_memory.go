package gemeente

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"gemeentenet/pkg/sentinel"
)

type InMemoryStore struct {
	mu        sync.RWMutex
	gemeentes map[uuid.UUID]*Gemeente
	bank      map[uuid.UUID]*Bankbesonderhede
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		gemeentes: make(map[uuid.UUID]*Gemeente),
		bank:      make(map[uuid.UUID]*Bankbesonderhede),
	}
}

func (s *InMemoryStore) Create(_ context.Context, g *Gemeente) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *g
	s.gemeentes[g.ID] = &cp
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, id uuid.UUID) (*Gemeente, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.gemeentes[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *g
	return &cp, nil
}

func (s *InMemoryStore) List(_ context.Context) ([]*Gemeente, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*Gemeente
	for _, g := range s.gemeentes {
		cp := *g
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Naam) < strings.ToLower(out[j].Naam)
	})
	return out, nil
}

func (s *InMemoryStore) Update(_ context.Context, g *Gemeente) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.gemeentes[g.ID]; !ok {
		return sentinel.ErrNotFound
	}
	cp := *g
	s.gemeentes[g.ID] = &cp
	return nil
}

func (s *InMemoryStore) SaveBank(_ context.Context, b *Bankbesonderhede) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *b
	s.bank[b.GemeenteID] = &cp
	return nil
}

func (s *InMemoryStore) FindBank(_ context.Context, gemeenteID uuid.UUID) (*Bankbesonderhede, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bank[gemeenteID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *b
	return &cp, nil
}

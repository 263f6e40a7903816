package wyk

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"gemeentenet/pkg/sentinel"
)

// InMemoryStore keeps wyke and besoekpunte in maps. Used by unit tests and
// by the server when no database is configured.
type InMemoryStore struct {
	mu          sync.RWMutex
	wyke        map[uuid.UUID]*Wyk
	besoekpunte map[uuid.UUID]*Besoekpunt
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		wyke:        make(map[uuid.UUID]*Wyk),
		besoekpunte: make(map[uuid.UUID]*Besoekpunt),
	}
}

func (s *InMemoryStore) CreateWyk(_ context.Context, w *Wyk) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *w
	s.wyke[w.ID] = &cp
	return nil
}

func (s *InMemoryStore) FindWyk(_ context.Context, id uuid.UUID) (*Wyk, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	w, ok := s.wyke[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *w
	return &cp, nil
}

func (s *InMemoryStore) ListWyke(_ context.Context, gemeenteID uuid.UUID) ([]*Wyk, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*Wyk
	for _, w := range s.wyke {
		if w.GemeenteID == gemeenteID {
			cp := *w
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Naam) < strings.ToLower(out[j].Naam)
	})
	return out, nil
}

func (s *InMemoryStore) UpdateWyk(_ context.Context, w *Wyk) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.wyke[w.ID]; !ok {
		return sentinel.ErrNotFound
	}
	cp := *w
	s.wyke[w.ID] = &cp
	return nil
}

func (s *InMemoryStore) DeleteWyk(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.wyke[id]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.wyke, id)
	for bid, b := range s.besoekpunte {
		if b.WykID == id {
			delete(s.besoekpunte, bid)
		}
	}
	return nil
}

func (s *InMemoryStore) CreateBesoekpunt(_ context.Context, b *Besoekpunt) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *b
	s.besoekpunte[b.ID] = &cp
	return nil
}

func (s *InMemoryStore) FindBesoekpunt(_ context.Context, id uuid.UUID) (*Besoekpunt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.besoekpunte[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (s *InMemoryStore) ListBesoekpunte(_ context.Context, gemeenteID uuid.UUID) ([]*Besoekpunt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*Besoekpunt
	for _, b := range s.besoekpunte {
		if b.GemeenteID == gemeenteID {
			cp := *b
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Naam) < strings.ToLower(out[j].Naam)
	})
	return out, nil
}

func (s *InMemoryStore) ListBesoekpunteVirWyk(_ context.Context, wykID uuid.UUID) ([]*Besoekpunt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*Besoekpunt
	for _, b := range s.besoekpunte {
		if b.WykID == wykID {
			cp := *b
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Naam) < strings.ToLower(out[j].Naam)
	})
	return out, nil
}

func (s *InMemoryStore) UpdateBesoekpunt(_ context.Context, b *Besoekpunt) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.besoekpunte[b.ID]; !ok {
		return sentinel.ErrNotFound
	}
	cp := *b
	s.besoekpunte[b.ID] = &cp
	return nil
}

func (s *InMemoryStore) DeleteBesoekpunt(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.besoekpunte[id]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.besoekpunte, id)
	return nil
}

package sakrament

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"gemeentenet/pkg/sentinel"
)

type InMemoryStore struct {
	mu       sync.RWMutex
	kinders  map[uuid.UUID]*Kind
	joernaal map[uuid.UUID]*JoernaalInskrywing
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		kinders:  make(map[uuid.UUID]*Kind),
		joernaal: make(map[uuid.UUID]*JoernaalInskrywing),
	}
}

func (s *InMemoryStore) CreateKind(_ context.Context, k *Kind) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *k
	s.kinders[k.ID] = &cp
	return nil
}

func (s *InMemoryStore) FindKind(_ context.Context, id uuid.UUID) (*Kind, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	k, ok := s.kinders[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *k
	return &cp, nil
}

func (s *InMemoryStore) ListKinders(_ context.Context, gemeenteID uuid.UUID) ([]*Kind, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*Kind
	for _, k := range s.kinders {
		if k.GemeenteID == gemeenteID {
			cp := *k
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Naam) < strings.ToLower(out[j].Naam)
	})
	return out, nil
}

func (s *InMemoryStore) UpdateKind(_ context.Context, k *Kind) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.kinders[k.ID]; !ok {
		return sentinel.ErrNotFound
	}
	cp := *k
	s.kinders[k.ID] = &cp
	return nil
}

func (s *InMemoryStore) DeleteKind(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.kinders[id]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.kinders, id)
	for jid, j := range s.joernaal {
		if j.KindID == id {
			delete(s.joernaal, jid)
		}
	}
	return nil
}

func (s *InMemoryStore) AddJoernaal(_ context.Context, j *JoernaalInskrywing) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *j
	s.joernaal[j.ID] = &cp
	return nil
}

func (s *InMemoryStore) ListJoernaal(_ context.Context, kindID uuid.UUID) ([]*JoernaalInskrywing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*JoernaalInskrywing
	for _, j := range s.joernaal {
		if j.KindID == kindID {
			cp := *j
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *InMemoryStore) DeleteJoernaal(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.joernaal[id]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.joernaal, id)
	return nil
}

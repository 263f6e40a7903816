package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"gemeentenet/internal/lidmaat/models"
	"gemeentenet/pkg/sentinel"
)

// InMemoryStore keeps members in a map. Used by unit tests and by the server
// when no database is configured.
type InMemoryStore struct {
	mu      sync.RWMutex
	lidmate map[uuid.UUID]*models.Lidmaat
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{lidmate: make(map[uuid.UUID]*models.Lidmaat)}
}

func (s *InMemoryStore) Create(_ context.Context, l *models.Lidmaat) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *l
	s.lidmate[l.ID] = &cp
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, id uuid.UUID) (*models.Lidmaat, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.lidmate[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *l
	return &cp, nil
}

func (s *InMemoryStore) ListByGemeente(_ context.Context, gemeenteID uuid.UUID) ([]*models.Lidmaat, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Lidmaat
	for _, l := range s.lidmate {
		if l.GemeenteID == gemeenteID {
			cp := *l
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		vi := strings.ToLower(out[i].Van + " " + out[i].Naam)
		vj := strings.ToLower(out[j].Van + " " + out[j].Naam)
		return vi < vj
	})
	return out, nil
}

func (s *InMemoryStore) Update(_ context.Context, l *models.Lidmaat) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.lidmate[l.ID]; !ok {
		return sentinel.ErrNotFound
	}
	cp := *l
	s.lidmate[l.ID] = &cp
	return nil
}

func (s *InMemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.lidmate[id]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.lidmate, id)
	return nil
}

func (s *InMemoryStore) SetWyk(_ context.Context, id, wykID uuid.UUID, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.lidmate[id]
	if !ok {
		return sentinel.ErrNotFound
	}
	w := wykID
	l.WykID = &w
	l.UpdatedAt = now
	return nil
}

func (s *InMemoryStore) SetBesoekpunt(_ context.Context, id, besoekpuntID, wykID uuid.UUID, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.lidmate[id]
	if !ok {
		return sentinel.ErrNotFound
	}
	b, w := besoekpuntID, wykID
	l.BesoekpuntID = &b
	l.WykID = &w
	l.UpdatedAt = now
	return nil
}

func (s *InMemoryStore) ClearBesoekpunt(_ context.Context, id uuid.UUID, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.lidmate[id]
	if !ok {
		return sentinel.ErrNotFound
	}
	l.BesoekpuntID = nil
	l.UpdatedAt = now
	return nil
}

func (s *InMemoryStore) ClearToewysing(_ context.Context, id uuid.UUID, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.lidmate[id]
	if !ok {
		return sentinel.ErrNotFound
	}
	l.WykID = nil
	l.BesoekpuntID = nil
	l.UpdatedAt = now
	return nil
}

func (s *InMemoryStore) ClearWykVerwysings(_ context.Context, wykID uuid.UUID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	now := time.Now().UTC()
	for _, l := range s.lidmate {
		if l.WykID != nil && *l.WykID == wykID {
			l.WykID = nil
			l.BesoekpuntID = nil
			l.UpdatedAt = now
			n++
		}
	}
	return n, nil
}

func (s *InMemoryStore) ClearBesoekpuntVerwysings(_ context.Context, besoekpuntID uuid.UUID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	now := time.Now().UTC()
	for _, l := range s.lidmate {
		if l.BesoekpuntID != nil && *l.BesoekpuntID == besoekpuntID {
			l.BesoekpuntID = nil
			l.UpdatedAt = now
			n++
		}
	}
	return n, nil
}

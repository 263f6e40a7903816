package wyk

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	derrors "gemeentenet/pkg/domain-errors"
	"gemeentenet/pkg/sentinel"
)

// LidmaatToewysings clears member references when a wyk or besoekpunt is
// removed. Implemented by the member store.
type LidmaatToewysings interface {
	ClearWykVerwysings(ctx context.Context, wykID uuid.UUID) (int, error)
	ClearBesoekpuntVerwysings(ctx context.Context, besoekpuntID uuid.UUID) (int, error)
}

type Service struct {
	store      Store
	toewysings LidmaatToewysings
	logger     *slog.Logger
}

type Option func(*Service)

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

func NewService(store Store, toewysings LidmaatToewysings, opts ...Option) *Service {
	s := &Service{
		store:      store,
		toewysings: toewysings,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) CreateWyk(ctx context.Context, gemeenteID uuid.UUID, req CreateWykRequest) (*Wyk, error) {
	naam := strings.TrimSpace(req.Naam)
	if naam == "" {
		return nil, derrors.New(derrors.CodeValidation, "wyk naam is verpligtend")
	}
	now := time.Now().UTC()
	w := &Wyk{
		ID:         uuid.New(),
		Naam:       naam,
		Beskrywing: strings.TrimSpace(req.Beskrywing),
		LeierID:    req.LeierID,
		GemeenteID: gemeenteID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.store.CreateWyk(ctx, w); err != nil {
		return nil, fmt.Errorf("create wyk: %w", err)
	}
	s.logger.InfoContext(ctx, "wyk geskep", "wyk_id", w.ID, "gemeente_id", gemeenteID)
	return w, nil
}

func (s *Service) GetWyk(ctx context.Context, id uuid.UUID) (*Wyk, error) {
	w, err := s.store.FindWyk(ctx, id)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, derrors.New(derrors.CodeNotFound, "wyk nie gevind nie")
	}
	if err != nil {
		return nil, fmt.Errorf("find wyk: %w", err)
	}
	return w, nil
}

func (s *Service) ListWyke(ctx context.Context, gemeenteID uuid.UUID) ([]*Wyk, error) {
	return s.store.ListWyke(ctx, gemeenteID)
}

func (s *Service) UpdateWyk(ctx context.Context, id uuid.UUID, req UpdateWykRequest) (*Wyk, error) {
	w, err := s.GetWyk(ctx, id)
	if err != nil {
		return nil, err
	}
	naam := strings.TrimSpace(req.Naam)
	if naam == "" {
		return nil, derrors.New(derrors.CodeValidation, "wyk naam is verpligtend")
	}
	w.Naam = naam
	w.Beskrywing = strings.TrimSpace(req.Beskrywing)
	w.LeierID = req.LeierID
	w.UpdatedAt = time.Now().UTC()
	if err := s.store.UpdateWyk(ctx, w); err != nil {
		return nil, fmt.Errorf("update wyk: %w", err)
	}
	return w, nil
}

// DeleteWyk clears wyk and besoekpunt references on affected members first,
// then removes the district and its besoekpunte.
func (s *Service) DeleteWyk(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetWyk(ctx, id); err != nil {
		return err
	}
	cleared, err := s.toewysings.ClearWykVerwysings(ctx, id)
	if err != nil {
		return fmt.Errorf("clear wyk verwysings: %w", err)
	}
	if err := s.store.DeleteWyk(ctx, id); err != nil {
		return fmt.Errorf("delete wyk: %w", err)
	}
	s.logger.InfoContext(ctx, "wyk verwyder", "wyk_id", id, "lidmate_losgemaak", cleared)
	return nil
}

func (s *Service) CreateBesoekpunt(ctx context.Context, gemeenteID uuid.UUID, req CreateBesoekpuntRequest) (*Besoekpunt, error) {
	naam := strings.TrimSpace(req.Naam)
	if naam == "" {
		return nil, derrors.New(derrors.CodeValidation, "besoekpunt naam is verpligtend")
	}
	if req.WykID == uuid.Nil {
		return nil, derrors.New(derrors.CodeValidation, "besoekpunt benodig 'n wyk")
	}
	parent, err := s.GetWyk(ctx, req.WykID)
	if err != nil {
		return nil, err
	}
	if parent.GemeenteID != gemeenteID {
		return nil, derrors.New(derrors.CodeValidation, "wyk behoort aan 'n ander gemeente")
	}
	now := time.Now().UTC()
	b := &Besoekpunt{
		ID:         uuid.New(),
		Naam:       naam,
		Beskrywing: strings.TrimSpace(req.Beskrywing),
		Adres:      strings.TrimSpace(req.Adres),
		WykID:      req.WykID,
		GemeenteID: gemeenteID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.store.CreateBesoekpunt(ctx, b); err != nil {
		return nil, fmt.Errorf("create besoekpunt: %w", err)
	}
	s.logger.InfoContext(ctx, "besoekpunt geskep", "besoekpunt_id", b.ID, "wyk_id", b.WykID)
	return b, nil
}

func (s *Service) GetBesoekpunt(ctx context.Context, id uuid.UUID) (*Besoekpunt, error) {
	b, err := s.store.FindBesoekpunt(ctx, id)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, derrors.New(derrors.CodeNotFound, "besoekpunt nie gevind nie")
	}
	if err != nil {
		return nil, fmt.Errorf("find besoekpunt: %w", err)
	}
	return b, nil
}

func (s *Service) ListBesoekpunte(ctx context.Context, gemeenteID uuid.UUID) ([]*Besoekpunt, error) {
	return s.store.ListBesoekpunte(ctx, gemeenteID)
}

func (s *Service) ListBesoekpunteVirWyk(ctx context.Context, wykID uuid.UUID) ([]*Besoekpunt, error) {
	return s.store.ListBesoekpunteVirWyk(ctx, wykID)
}

func (s *Service) UpdateBesoekpunt(ctx context.Context, id uuid.UUID, req UpdateBesoekpuntRequest) (*Besoekpunt, error) {
	b, err := s.GetBesoekpunt(ctx, id)
	if err != nil {
		return nil, err
	}
	naam := strings.TrimSpace(req.Naam)
	if naam == "" {
		return nil, derrors.New(derrors.CodeValidation, "besoekpunt naam is verpligtend")
	}
	if req.WykID != uuid.Nil && req.WykID != b.WykID {
		parent, err := s.GetWyk(ctx, req.WykID)
		if err != nil {
			return nil, err
		}
		if parent.GemeenteID != b.GemeenteID {
			return nil, derrors.New(derrors.CodeValidation, "wyk behoort aan 'n ander gemeente")
		}
		b.WykID = req.WykID
	}
	b.Naam = naam
	b.Beskrywing = strings.TrimSpace(req.Beskrywing)
	b.Adres = strings.TrimSpace(req.Adres)
	b.UpdatedAt = time.Now().UTC()
	if err := s.store.UpdateBesoekpunt(ctx, b); err != nil {
		return nil, fmt.Errorf("update besoekpunt: %w", err)
	}
	return b, nil
}

// DeleteBesoekpunt clears besoekpunt references on affected members first.
// Their wyk assignment stays untouched.
func (s *Service) DeleteBesoekpunt(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetBesoekpunt(ctx, id); err != nil {
		return err
	}
	cleared, err := s.toewysings.ClearBesoekpuntVerwysings(ctx, id)
	if err != nil {
		return fmt.Errorf("clear besoekpunt verwysings: %w", err)
	}
	if err := s.store.DeleteBesoekpunt(ctx, id); err != nil {
		return fmt.Errorf("delete besoekpunt: %w", err)
	}
	s.logger.InfoContext(ctx, "besoekpunt verwyder", "besoekpunt_id", id, "lidmate_losgemaak", cleared)
	return nil
}

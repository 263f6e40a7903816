package gemeente

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	lidstore "gemeentenet/internal/lidmaat/store"
	"gemeentenet/internal/wyk"
	derrors "gemeentenet/pkg/domain-errors"
	"gemeentenet/pkg/sentinel"
)

type Service struct {
	store   Store
	lidmate lidstore.Store
	wyke    wyk.Store
	cache   *Cache
	logger  *slog.Logger
}

type Option func(*Service)

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

func WithCache(c *Cache) Option {
	return func(s *Service) { s.cache = c }
}

func NewService(store Store, lidmate lidstore.Store, wyke wyk.Store, opts ...Option) *Service {
	s := &Service{
		store:   store,
		lidmate: lidmate,
		wyke:    wyke,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Create(ctx context.Context, req CreateGemeenteRequest) (*Gemeente, error) {
	naam := strings.TrimSpace(req.Naam)
	if naam == "" {
		return nil, derrors.New(derrors.CodeValidation, "gemeente naam is verpligtend")
	}
	now := time.Now().UTC()
	g := &Gemeente{
		ID:        uuid.New(),
		Naam:      naam,
		Adres:     strings.TrimSpace(req.Adres),
		Telefoon:  strings.TrimSpace(req.Telefoon),
		Epos:      strings.TrimSpace(req.Epos),
		Status:    StatusAktief,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Create(ctx, g); err != nil {
		return nil, fmt.Errorf("create gemeente: %w", err)
	}
	s.logger.InfoContext(ctx, "gemeente geskep", "gemeente_id", g.ID, "naam", g.Naam)
	return g, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Gemeente, error) {
	g, err := s.store.FindByID(ctx, id)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, derrors.New(derrors.CodeNotFound, "gemeente nie gevind nie")
	}
	if err != nil {
		return nil, fmt.Errorf("find gemeente: %w", err)
	}
	return g, nil
}

func (s *Service) List(ctx context.Context) ([]*Gemeente, error) {
	return s.store.List(ctx)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdateGemeenteRequest) (*Gemeente, error) {
	g, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	naam := strings.TrimSpace(req.Naam)
	if naam == "" {
		return nil, derrors.New(derrors.CodeValidation, "gemeente naam is verpligtend")
	}
	g.Naam = naam
	g.Adres = strings.TrimSpace(req.Adres)
	g.Telefoon = strings.TrimSpace(req.Telefoon)
	g.Epos = strings.TrimSpace(req.Epos)
	g.UpdatedAt = time.Now().UTC()
	if err := s.store.Update(ctx, g); err != nil {
		return nil, fmt.Errorf("update gemeente: %w", err)
	}
	s.cache.Invalidate(ctx, id)
	return g, nil
}

// Deactivate takes an active congregation out of service. Deactivating twice
// is a conflict, not a no-op, so callers notice stale state.
func (s *Service) Deactivate(ctx context.Context, id uuid.UUID) (*Gemeente, error) {
	return s.setStatus(ctx, id, StatusOnaktief, "gemeente is reeds onaktief")
}

// Reactivate returns a deactivated congregation to service.
func (s *Service) Reactivate(ctx context.Context, id uuid.UUID) (*Gemeente, error) {
	return s.setStatus(ctx, id, StatusAktief, "gemeente is reeds aktief")
}

func (s *Service) setStatus(ctx context.Context, id uuid.UUID, status Status, conflictMsg string) (*Gemeente, error) {
	g, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if g.Status == status {
		return nil, derrors.New(derrors.CodeConflict, conflictMsg)
	}
	g.Status = status
	g.UpdatedAt = time.Now().UTC()
	if err := s.store.Update(ctx, g); err != nil {
		return nil, fmt.Errorf("update gemeente status: %w", err)
	}
	s.cache.Invalidate(ctx, id)
	s.logger.InfoContext(ctx, "gemeente status verander", "gemeente_id", id, "status", status)
	return g, nil
}

func (s *Service) SaveBank(ctx context.Context, gemeenteID uuid.UUID, req SaveBankRequest) (*Bankbesonderhede, error) {
	if _, err := s.Get(ctx, gemeenteID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.BankNaam) == "" || strings.TrimSpace(req.RekeningNommer) == "" {
		return nil, derrors.New(derrors.CodeValidation, "bank naam en rekening nommer is verpligtend")
	}
	b := &Bankbesonderhede{
		GemeenteID:     gemeenteID,
		BankNaam:       strings.TrimSpace(req.BankNaam),
		RekeningNaam:   strings.TrimSpace(req.RekeningNaam),
		RekeningNommer: strings.TrimSpace(req.RekeningNommer),
		TakKode:        strings.TrimSpace(req.TakKode),
		Verwysing:      strings.TrimSpace(req.Verwysing),
		UpdatedAt:      time.Now().UTC(),
	}
	if err := s.store.SaveBank(ctx, b); err != nil {
		return nil, fmt.Errorf("save bankbesonderhede: %w", err)
	}
	return b, nil
}

func (s *Service) GetBank(ctx context.Context, gemeenteID uuid.UUID) (*Bankbesonderhede, error) {
	b, err := s.store.FindBank(ctx, gemeenteID)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, derrors.New(derrors.CodeNotFound, "bankbesonderhede nie gevind nie")
	}
	if err != nil {
		return nil, fmt.Errorf("find bankbesonderhede: %w", err)
	}
	return b, nil
}

// Oorsig returns the congregation dashboard, served from cache when fresh.
func (s *Service) Oorsig(ctx context.Context, gemeenteID uuid.UUID) (*Oorsig, error) {
	if cached, ok := s.cache.Get(ctx, gemeenteID); ok {
		return cached, nil
	}

	g, err := s.Get(ctx, gemeenteID)
	if err != nil {
		return nil, err
	}
	lidmate, err := s.lidmate.ListByGemeente(ctx, gemeenteID)
	if err != nil {
		return nil, fmt.Errorf("list lidmate: %w", err)
	}
	wyke, err := s.wyke.ListWyke(ctx, gemeenteID)
	if err != nil {
		return nil, fmt.Errorf("list wyke: %w", err)
	}
	besoekpunte, err := s.wyke.ListBesoekpunte(ctx, gemeenteID)
	if err != nil {
		return nil, fmt.Errorf("list besoekpunte: %w", err)
	}

	o := &Oorsig{
		GemeenteID:  gemeenteID,
		Naam:        g.Naam,
		Status:      g.Status,
		Wyke:        len(wyke),
		Besoekpunte: len(besoekpunte),
		BerekenOp:   time.Now().UTC(),
	}
	for _, l := range lidmate {
		o.TotaalLidmate++
		if l.Aktief {
			o.AktieweLidmate++
		}
		if l.WykID == nil {
			o.LidmateSonderWyk++
		}
	}
	s.cache.Set(ctx, o)
	return o, nil
}

package verhouding

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"gemeentenet/internal/lidmaat/models"
	"gemeentenet/internal/oudit"
	derrors "gemeentenet/pkg/domain-errors"
	"gemeentenet/pkg/sentinel"
)

// LidmaatGids looks up member records for endpoint validation and audit
// descriptions.
type LidmaatGids interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Lidmaat, error)
}

type Service struct {
	store   Store
	lidmate LidmaatGids
	oudit   *oudit.Recorder
	logger  *slog.Logger
}

type Option func(*Service)

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

func NewService(store Store, lidmate LidmaatGids, rec *oudit.Recorder, opts ...Option) *Service {
	s := &Service{
		store:   store,
		lidmate: lidmate,
		oudit:   rec,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add creates a relationship between two members of the same congregation.
// Validation happens before any store write: an "ander" relationship without
// a description is rejected outright.
func (s *Service) Add(ctx context.Context, gemeenteID uuid.UUID, req AddVerhoudingRequest) (*Verhouding, error) {
	if req.LidmaatID == uuid.Nil || req.VerwanteID == uuid.Nil {
		return nil, derrors.New(derrors.CodeValidation, "lidmaat en verwante is verpligtend")
	}
	if req.LidmaatID == req.VerwanteID {
		return nil, derrors.New(derrors.CodeValidation, "'n lidmaat kan nie 'n verhouding met homself hê nie")
	}
	if !req.Tipe.Valid() {
		return nil, derrors.Newf(derrors.CodeValidation, "onbekende verhouding tipe %q", req.Tipe)
	}
	beskrywing := strings.TrimSpace(req.Beskrywing)
	if req.Tipe == TipeAnder && beskrywing == "" {
		return nil, derrors.New(derrors.CodeValidation, "beskrywing is verpligtend vir verhouding tipe 'ander'")
	}

	lid, err := s.findLid(ctx, req.LidmaatID)
	if err != nil {
		return nil, err
	}
	verwante, err := s.findLid(ctx, req.VerwanteID)
	if err != nil {
		return nil, err
	}
	if lid.GemeenteID != gemeenteID || verwante.GemeenteID != gemeenteID {
		return nil, derrors.New(derrors.CodeValidation, "lidmate behoort aan 'n ander gemeente")
	}

	v := &Verhouding{
		ID:         uuid.New(),
		LidmaatID:  req.LidmaatID,
		VerwanteID: req.VerwanteID,
		Tipe:       req.Tipe,
		Beskrywing: beskrywing,
		GemeenteID: gemeenteID,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.store.Create(ctx, v); err != nil {
		return nil, fmt.Errorf("create verhouding: %w", err)
	}

	s.recordVerhoudingOudit(ctx, oudit.AksieVerhoudingBygevoeg, v, lid, verwante)
	s.logger.InfoContext(ctx, "verhouding bygevoeg",
		"verhouding_id", v.ID, "tipe", v.Tipe, "gemeente_id", gemeenteID)
	return v, nil
}

// ListForLidmaat returns the relationships where the member is either
// endpoint.
func (s *Service) ListForLidmaat(ctx context.Context, lidmaatID uuid.UUID) ([]*Verhouding, error) {
	return s.store.ListForLidmaat(ctx, lidmaatID)
}

// Delete removes a relationship and audits the removal on both endpoints.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	v, err := s.store.FindByID(ctx, id)
	if errors.Is(err, sentinel.ErrNotFound) {
		return derrors.New(derrors.CodeNotFound, "verhouding nie gevind nie")
	}
	if err != nil {
		return fmt.Errorf("find verhouding: %w", err)
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete verhouding: %w", err)
	}

	lid, err1 := s.lidmate.FindByID(ctx, v.LidmaatID)
	verwante, err2 := s.lidmate.FindByID(ctx, v.VerwanteID)
	if err1 == nil && err2 == nil {
		s.recordVerhoudingOudit(ctx, oudit.AksieVerhoudingVerwyder, v, lid, verwante)
	}
	s.logger.InfoContext(ctx, "verhouding verwyder", "verhouding_id", id)
	return nil
}

func (s *Service) findLid(ctx context.Context, id uuid.UUID) (*models.Lidmaat, error) {
	l, err := s.lidmate.FindByID(ctx, id)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, derrors.Newf(derrors.CodeValidation, "lidmaat %s nie gevind nie", id)
	}
	if err != nil {
		return nil, fmt.Errorf("find lidmaat: %w", err)
	}
	return l, nil
}

// recordVerhoudingOudit writes one entry per endpoint so the link shows up in
// both members' trails.
func (s *Service) recordVerhoudingOudit(ctx context.Context, aksie oudit.AksieTipe, v *Verhouding, lid, verwante *models.Lidmaat) {
	werkwoord := "bygevoeg"
	if aksie == oudit.AksieVerhoudingVerwyder {
		werkwoord = "verwyder"
	}
	s.oudit.Record(ctx, oudit.Entry{
		LidmaatID:  lid.ID,
		GemeenteID: v.GemeenteID,
		AksieTipe:  aksie,
		Beskrywing: fmt.Sprintf("Verhouding %s: %s met %s", werkwoord, v.Tipe.Label(), verwante.VolleNaam()),
		NuweWaarde: v.Tipe.Label(),
	})
	s.oudit.Record(ctx, oudit.Entry{
		LidmaatID:  verwante.ID,
		GemeenteID: v.GemeenteID,
		AksieTipe:  aksie,
		Beskrywing: fmt.Sprintf("Verhouding %s: %s met %s", werkwoord, v.Tipe.Label(), lid.VolleNaam()),
		NuweWaarde: v.Tipe.Label(),
	})
}

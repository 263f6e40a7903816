// Package service implements member lifecycle operations: create, profile
// updates with audit diffing, deceased handling, duplicates, and removal.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"gemeentenet/internal/lidmaat/models"
	"gemeentenet/internal/lidmaat/store"
	"gemeentenet/internal/oudit"
	"gemeentenet/internal/platform/metrics"
	"gemeentenet/internal/statistiek"
	"gemeentenet/internal/wyk"
	derrors "gemeentenet/pkg/domain-errors"
	"gemeentenet/pkg/sentinel"
)

// WykCatalog resolves districts and visitation points for validation and for
// human-readable audit descriptions.
type WykCatalog interface {
	FindWyk(ctx context.Context, id uuid.UUID) (*wyk.Wyk, error)
	FindBesoekpunt(ctx context.Context, id uuid.UUID) (*wyk.Besoekpunt, error)
}

// VerhoudingRemover detaches a member's relationships before the member row
// is deleted.
type VerhoudingRemover interface {
	DeleteForLidmaat(ctx context.Context, lidmaatID uuid.UUID) (int, error)
}

type Service struct {
	store       store.Store
	wyke        WykCatalog
	verhoudings VerhoudingRemover
	oudit       *oudit.Recorder
	statistiek  statistiek.Store
	metrics     *metrics.Metrics
	logger      *slog.Logger
}

type Option func(*Service)

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func NewService(st store.Store, wyke WykCatalog, verhoudings VerhoudingRemover, rec *oudit.Recorder, stats statistiek.Store, opts ...Option) *Service {
	s := &Service{
		store:       st,
		wyke:        wyke,
		verhoudings: verhoudings,
		oudit:       rec,
		statistiek:  stats,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Store exposes the underlying member store to sibling services that operate
// on assignment columns.
func (s *Service) Store() store.Store {
	return s.store
}

func (s *Service) Create(ctx context.Context, gemeenteID uuid.UUID, req models.CreateLidmaatRequest) (*models.Lidmaat, error) {
	naam := strings.TrimSpace(req.Naam)
	van := strings.TrimSpace(req.Van)
	if naam == "" || van == "" {
		return nil, derrors.New(derrors.CodeValidation, "naam en van is verpligtend")
	}
	rol := req.Rol
	if rol == "" {
		rol = models.RolLidmaat
	}
	if !rol.Valid() {
		return nil, derrors.Newf(derrors.CodeValidation, "onbekende rol %q", req.Rol)
	}
	epos := strings.TrimSpace(strings.ToLower(req.Epos))
	if epos != "" && !strings.Contains(epos, "@") {
		return nil, derrors.New(derrors.CodeValidation, "ongeldige e-posadres")
	}

	wykID, besoekpuntID, err := s.resolveToewysing(ctx, gemeenteID, req.WykID, req.BesoekpuntID)
	if err != nil {
		return nil, err
	}

	var wagwoordHash string
	if req.Wagwoord != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Wagwoord), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash wagwoord: %w", err)
		}
		wagwoordHash = string(hash)
	}

	now := time.Now().UTC()
	l := &models.Lidmaat{
		ID:            uuid.New(),
		Naam:          naam,
		Van:           van,
		Epos:          epos,
		Selfoon:       strings.TrimSpace(req.Selfoon),
		Rol:           rol,
		WykID:         wykID,
		BesoekpuntID:  besoekpuntID,
		GemeenteID:    gemeenteID,
		Adres:         strings.TrimSpace(req.Adres),
		Geboortedatum: strings.TrimSpace(req.Geboortedatum),
		Aktief:        true,
		Notas:         strings.TrimSpace(req.Notas),
		WagwoordHash:  wagwoordHash,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.store.Create(ctx, l); err != nil {
		return nil, fmt.Errorf("create lidmaat: %w", err)
	}

	s.oudit.Record(ctx, oudit.Entry{
		LidmaatID:  l.ID,
		GemeenteID: l.GemeenteID,
		AksieTipe:  oudit.AksieGeskep,
		Beskrywing: "Lidmaat geskep",
		NuweWaarde: l.VolleNaam(),
	})
	if s.metrics != nil {
		s.metrics.LidmateGeskep.Inc()
	}
	s.logger.InfoContext(ctx, "lidmaat geskep", "lidmaat_id", l.ID, "gemeente_id", gemeenteID)
	return l, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.Lidmaat, error) {
	l, err := s.store.FindByID(ctx, id)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, derrors.New(derrors.CodeNotFound, "lidmaat nie gevind nie")
	}
	if err != nil {
		return nil, fmt.Errorf("find lidmaat: %w", err)
	}
	return l, nil
}

// List returns the congregation's members, optionally narrowed by a search
// term over name and email, and by role.
func (s *Service) List(ctx context.Context, gemeenteID uuid.UUID, filter models.ListFilter) ([]*models.Lidmaat, error) {
	all, err := s.store.ListByGemeente(ctx, gemeenteID)
	if err != nil {
		return nil, fmt.Errorf("list lidmate: %w", err)
	}
	soek := strings.ToLower(strings.TrimSpace(filter.Soek))
	if soek == "" && filter.Rol == "" {
		return all, nil
	}
	var out []*models.Lidmaat
	for _, l := range all {
		if filter.Rol != "" && l.Rol != filter.Rol {
			continue
		}
		if soek != "" {
			haystack := strings.ToLower(l.Naam + " " + l.Van + " " + l.Epos)
			if !strings.Contains(haystack, soek) {
				continue
			}
		}
		out = append(out, l)
	}
	return out, nil
}

// Update applies a full-record edit. The stored record is the diff baseline:
// every changed field lands in the audit trail, with dedicated entries for
// role, status, and assignment changes.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req models.UpdateLidmaatRequest) (*models.Lidmaat, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	naam := strings.TrimSpace(req.Naam)
	van := strings.TrimSpace(req.Van)
	if naam == "" || van == "" {
		return nil, derrors.New(derrors.CodeValidation, "naam en van is verpligtend")
	}
	if req.Rol != "" && !req.Rol.Valid() {
		return nil, derrors.Newf(derrors.CodeValidation, "onbekende rol %q", req.Rol)
	}
	epos := strings.TrimSpace(strings.ToLower(req.Epos))
	if epos != "" && !strings.Contains(epos, "@") {
		return nil, derrors.New(derrors.CodeValidation, "ongeldige e-posadres")
	}

	wykID, besoekpuntID, err := s.resolveToewysing(ctx, current.GemeenteID, req.WykID, req.BesoekpuntID)
	if err != nil {
		return nil, err
	}

	next := *current
	next.Naam = naam
	next.Van = van
	next.Epos = epos
	next.Selfoon = strings.TrimSpace(req.Selfoon)
	if req.Rol != "" {
		next.Rol = req.Rol
	}
	next.WykID = wykID
	next.BesoekpuntID = besoekpuntID
	next.Adres = strings.TrimSpace(req.Adres)
	next.Geboortedatum = strings.TrimSpace(req.Geboortedatum)
	next.Aktief = req.Aktief
	next.IsOorlede = req.IsOorlede
	next.Notas = strings.TrimSpace(req.Notas)

	// A deceased member can never stay active.
	sterf := !current.IsOorlede && next.IsOorlede
	if next.IsOorlede {
		next.Aktief = false
	}
	next.UpdatedAt = time.Now().UTC()

	if err := s.store.Update(ctx, &next); err != nil {
		return nil, fmt.Errorf("update lidmaat: %w", err)
	}

	s.recordUpdateOudit(ctx, current, &next, sterf)
	return &next, nil
}

// MarkOorlede marks a member as deceased, deactivating the record and logging
// the membership loss.
func (s *Service) MarkOorlede(ctx context.Context, id uuid.UUID) (*models.Lidmaat, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.IsOorlede {
		return current, nil
	}
	next := *current
	next.IsOorlede = true
	next.Aktief = false
	next.UpdatedAt = time.Now().UTC()
	if err := s.store.Update(ctx, &next); err != nil {
		return nil, fmt.Errorf("update lidmaat: %w", err)
	}
	s.recordUpdateOudit(ctx, current, &next, true)
	return &next, nil
}

// Delete removes a member and their relationships. There is no audit entry:
// the trail is keyed on the member and goes with the record.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	l, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	removed, err := s.verhoudings.DeleteForLidmaat(ctx, id)
	if err != nil {
		return fmt.Errorf("delete verhoudings: %w", err)
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete lidmaat: %w", err)
	}
	if s.metrics != nil {
		s.metrics.LidmateVerwyder.Inc()
	}
	s.logger.InfoContext(ctx, "lidmaat verwyder",
		"lidmaat_id", id, "gemeente_id", l.GemeenteID, "verhoudings_verwyder", removed)
	return nil
}

// BulkDelete removes members one by one and reports per-item outcomes.
func (s *Service) BulkDelete(ctx context.Context, ids []uuid.UUID) models.BatchResult {
	var res models.BatchResult
	for _, id := range ids {
		if err := s.Delete(ctx, id); err != nil {
			s.logger.WarnContext(ctx, "bulk delete item misluk", "lidmaat_id", id, "error", err)
			res.Failed++
			continue
		}
		res.Succeeded++
	}
	return res
}

// resolveToewysing validates the requested assignment and enforces that a
// besoekpunt choice carries its own wyk: the point's district always wins
// over whatever wyk the caller sent.
func (s *Service) resolveToewysing(ctx context.Context, gemeenteID uuid.UUID, wykID, besoekpuntID *uuid.UUID) (*uuid.UUID, *uuid.UUID, error) {
	if besoekpuntID != nil {
		b, err := s.wyke.FindBesoekpunt(ctx, *besoekpuntID)
		if err != nil {
			return nil, nil, derrors.New(derrors.CodeValidation, "besoekpunt nie gevind nie")
		}
		if b.GemeenteID != gemeenteID {
			return nil, nil, derrors.New(derrors.CodeValidation, "besoekpunt behoort aan 'n ander gemeente")
		}
		w := b.WykID
		return &w, besoekpuntID, nil
	}
	if wykID != nil {
		w, err := s.wyke.FindWyk(ctx, *wykID)
		if err != nil {
			return nil, nil, derrors.New(derrors.CodeValidation, "wyk nie gevind nie")
		}
		if w.GemeenteID != gemeenteID {
			return nil, nil, derrors.New(derrors.CodeValidation, "wyk behoort aan 'n ander gemeente")
		}
	}
	return wykID, nil, nil
}

func (s *Service) wykNaam(ctx context.Context, id *uuid.UUID) string {
	if id == nil {
		return "Geen wyk"
	}
	w, err := s.wyke.FindWyk(ctx, *id)
	if err != nil {
		return "Onbekende wyk"
	}
	return w.Naam
}

func (s *Service) besoekpuntNaam(ctx context.Context, id *uuid.UUID) string {
	if id == nil {
		return "Geen besoekpunt"
	}
	b, err := s.wyke.FindBesoekpunt(ctx, *id)
	if err != nil {
		return "Onbekende besoekpunt"
	}
	return b.Naam
}

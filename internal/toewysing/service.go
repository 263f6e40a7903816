// Package toewysing moves members between districts and visitation points.
// Batch operations account per member: one bad ID never sinks the rest.
package toewysing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"gemeentenet/internal/lidmaat/models"
	"gemeentenet/internal/lidmaat/store"
	"gemeentenet/internal/oudit"
	"gemeentenet/internal/platform/metrics"
	"gemeentenet/internal/wyk"
	derrors "gemeentenet/pkg/domain-errors"
	"gemeentenet/pkg/sentinel"
)

// WykCatalog resolves the target district or point of an assignment.
type WykCatalog interface {
	FindWyk(ctx context.Context, id uuid.UUID) (*wyk.Wyk, error)
	FindBesoekpunt(ctx context.Context, id uuid.UUID) (*wyk.Besoekpunt, error)
}

// OorsigCache invalidates the cached congregation overview after membership
// moves. Optional.
type OorsigCache interface {
	Invalidate(ctx context.Context, gemeenteID uuid.UUID)
}

type Service struct {
	lidmate store.Store
	wyke    WykCatalog
	oudit   *oudit.Recorder
	cache   OorsigCache
	metrics *metrics.Metrics
	logger  *slog.Logger
	tracer  trace.Tracer
}

type Option func(*Service)

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithOorsigCache(c OorsigCache) Option {
	return func(s *Service) { s.cache = c }
}

func NewService(lidmate store.Store, wyke WykCatalog, rec *oudit.Recorder, opts ...Option) *Service {
	s := &Service{
		lidmate: lidmate,
		wyke:    wyke,
		oudit:   rec,
		logger:  slog.Default(),
		tracer:  otel.Tracer("gemeentenet/toewysing"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AssignToWyk places the given members in a district. A member's existing
// besoekpunt link is left alone; callers that need consistency assign through
// the besoekpunt instead.
func (s *Service) AssignToWyk(ctx context.Context, gemeenteID, wykID uuid.UUID, lidmaatIDs []uuid.UUID) (models.BatchResult, error) {
	ctx, span := s.tracer.Start(ctx, "toewysing.AssignToWyk",
		trace.WithAttributes(attribute.Int("lidmate", len(lidmaatIDs))))
	defer span.End()

	if len(lidmaatIDs) == 0 {
		return models.BatchResult{}, derrors.New(derrors.CodeValidation, "geen lidmate gekies nie")
	}
	w, err := s.wyke.FindWyk(ctx, wykID)
	if err != nil {
		return models.BatchResult{}, derrors.New(derrors.CodeNotFound, "wyk nie gevind nie")
	}
	if w.GemeenteID != gemeenteID {
		return models.BatchResult{}, derrors.New(derrors.CodeValidation, "wyk behoort aan 'n ander gemeente")
	}

	now := time.Now().UTC()
	var res models.BatchResult
	for _, id := range lidmaatIDs {
		ou, err := s.lidmate.FindByID(ctx, id)
		if err != nil {
			s.noteFailure(ctx, span, "wyk toewysing", id, err, &res)
			continue
		}
		if err := s.lidmate.SetWyk(ctx, id, wykID, now); err != nil {
			s.noteFailure(ctx, span, "wyk toewysing", id, err, &res)
			continue
		}
		res.Succeeded++
		if s.metrics != nil {
			s.metrics.ToewysingsSuksesvol.Inc()
		}
		s.oudit.Record(ctx, oudit.Entry{
			LidmaatID:  id,
			GemeenteID: gemeenteID,
			AksieTipe:  oudit.AksieWykToewysing,
			Beskrywing: fmt.Sprintf("Toegewys aan wyk %s", w.Naam),
			OuWaarde:   s.wykNaam(ctx, ou.WykID),
			NuweWaarde: w.Naam,
		})
	}

	s.afterBatch(ctx, gemeenteID, "wyk toewysing", res)
	return res, nil
}

// AssignToBesoekpunt places the given members at a visitation point. The
// point's own district is written alongside it, so the pair can never
// disagree.
func (s *Service) AssignToBesoekpunt(ctx context.Context, gemeenteID, besoekpuntID uuid.UUID, lidmaatIDs []uuid.UUID) (models.BatchResult, error) {
	ctx, span := s.tracer.Start(ctx, "toewysing.AssignToBesoekpunt",
		trace.WithAttributes(attribute.Int("lidmate", len(lidmaatIDs))))
	defer span.End()

	if len(lidmaatIDs) == 0 {
		return models.BatchResult{}, derrors.New(derrors.CodeValidation, "geen lidmate gekies nie")
	}
	b, err := s.wyke.FindBesoekpunt(ctx, besoekpuntID)
	if err != nil {
		return models.BatchResult{}, derrors.New(derrors.CodeNotFound, "besoekpunt nie gevind nie")
	}
	if b.GemeenteID != gemeenteID {
		return models.BatchResult{}, derrors.New(derrors.CodeValidation, "besoekpunt behoort aan 'n ander gemeente")
	}

	now := time.Now().UTC()
	var res models.BatchResult
	for _, id := range lidmaatIDs {
		ou, err := s.lidmate.FindByID(ctx, id)
		if err != nil {
			s.noteFailure(ctx, span, "besoekpunt toewysing", id, err, &res)
			continue
		}
		if err := s.lidmate.SetBesoekpunt(ctx, id, besoekpuntID, b.WykID, now); err != nil {
			s.noteFailure(ctx, span, "besoekpunt toewysing", id, err, &res)
			continue
		}
		res.Succeeded++
		if s.metrics != nil {
			s.metrics.ToewysingsSuksesvol.Inc()
		}
		s.oudit.Record(ctx, oudit.Entry{
			LidmaatID:  id,
			GemeenteID: gemeenteID,
			AksieTipe:  oudit.AksieBesoekpuntToewysing,
			Beskrywing: fmt.Sprintf("Toegewys aan besoekpunt %s", b.Naam),
			OuWaarde:   s.besoekpuntNaam(ctx, ou.BesoekpuntID),
			NuweWaarde: b.Naam,
		})
	}

	s.afterBatch(ctx, gemeenteID, "besoekpunt toewysing", res)
	return res, nil
}

// RemoveFromWyk detaches members from their district. The besoekpunt link is
// cleared too: a point without its district makes no sense.
func (s *Service) RemoveFromWyk(ctx context.Context, gemeenteID uuid.UUID, lidmaatIDs []uuid.UUID) (models.BatchResult, error) {
	ctx, span := s.tracer.Start(ctx, "toewysing.RemoveFromWyk",
		trace.WithAttributes(attribute.Int("lidmate", len(lidmaatIDs))))
	defer span.End()

	if len(lidmaatIDs) == 0 {
		return models.BatchResult{}, derrors.New(derrors.CodeValidation, "geen lidmate gekies nie")
	}
	now := time.Now().UTC()
	var res models.BatchResult
	for _, id := range lidmaatIDs {
		ou, err := s.lidmate.FindByID(ctx, id)
		if err != nil {
			s.noteFailure(ctx, span, "wyk verwydering", id, err, &res)
			continue
		}
		if err := s.lidmate.ClearToewysing(ctx, id, now); err != nil {
			s.noteFailure(ctx, span, "wyk verwydering", id, err, &res)
			continue
		}
		res.Succeeded++
		if s.metrics != nil {
			s.metrics.ToewysingsSuksesvol.Inc()
		}
		s.oudit.Record(ctx, oudit.Entry{
			LidmaatID:  id,
			GemeenteID: gemeenteID,
			AksieTipe:  oudit.AksieWykToewysing,
			Beskrywing: "Verwyder uit wyk",
			OuWaarde:   s.wykNaam(ctx, ou.WykID),
			NuweWaarde: "Geen wyk",
		})
	}

	s.afterBatch(ctx, gemeenteID, "wyk verwydering", res)
	return res, nil
}

// RemoveFromBesoekpunt detaches members from their visitation point only.
// Their district assignment stands.
func (s *Service) RemoveFromBesoekpunt(ctx context.Context, gemeenteID uuid.UUID, lidmaatIDs []uuid.UUID) (models.BatchResult, error) {
	ctx, span := s.tracer.Start(ctx, "toewysing.RemoveFromBesoekpunt",
		trace.WithAttributes(attribute.Int("lidmate", len(lidmaatIDs))))
	defer span.End()

	if len(lidmaatIDs) == 0 {
		return models.BatchResult{}, derrors.New(derrors.CodeValidation, "geen lidmate gekies nie")
	}
	now := time.Now().UTC()
	var res models.BatchResult
	for _, id := range lidmaatIDs {
		ou, err := s.lidmate.FindByID(ctx, id)
		if err != nil {
			s.noteFailure(ctx, span, "besoekpunt verwydering", id, err, &res)
			continue
		}
		if err := s.lidmate.ClearBesoekpunt(ctx, id, now); err != nil {
			s.noteFailure(ctx, span, "besoekpunt verwydering", id, err, &res)
			continue
		}
		res.Succeeded++
		if s.metrics != nil {
			s.metrics.ToewysingsSuksesvol.Inc()
		}
		s.oudit.Record(ctx, oudit.Entry{
			LidmaatID:  id,
			GemeenteID: gemeenteID,
			AksieTipe:  oudit.AksieBesoekpuntToewysing,
			Beskrywing: "Verwyder van besoekpunt",
			OuWaarde:   s.besoekpuntNaam(ctx, ou.BesoekpuntID),
			NuweWaarde: "Geen besoekpunt",
		})
	}

	s.afterBatch(ctx, gemeenteID, "besoekpunt verwydering", res)
	return res, nil
}

// Ontoegewys filters for ListOntoegewys.
const (
	FilterSonderWyk        = "sonder_wyk"
	FilterSonderBesoekpunt = "sonder_besoekpunt"
	FilterOnvolledig       = "onvolledig"
)

// OntoegewysFilter narrows the unassigned-members listing.
type OntoegewysFilter struct {
	Filter string
	Soek   string
	Rol    models.Rol
}

// ListOntoegewys returns members with incomplete assignments. The filter
// picks which gap counts: no district, no visitation point, or either.
func (s *Service) ListOntoegewys(ctx context.Context, gemeenteID uuid.UUID, filter OntoegewysFilter) ([]*models.Lidmaat, error) {
	f := filter.Filter
	if f == "" {
		f = FilterOnvolledig
	}
	if f != FilterSonderWyk && f != FilterSonderBesoekpunt && f != FilterOnvolledig {
		return nil, derrors.Newf(derrors.CodeValidation, "onbekende filter %q", filter.Filter)
	}

	all, err := s.lidmate.ListByGemeente(ctx, gemeenteID)
	if err != nil {
		return nil, fmt.Errorf("list lidmate: %w", err)
	}
	soek := strings.ToLower(strings.TrimSpace(filter.Soek))
	var out []*models.Lidmaat
	for _, l := range all {
		switch f {
		case FilterSonderWyk:
			if l.WykID != nil {
				continue
			}
		case FilterSonderBesoekpunt:
			if l.BesoekpuntID != nil {
				continue
			}
		case FilterOnvolledig:
			if l.WykID != nil && l.BesoekpuntID != nil {
				continue
			}
		}
		if filter.Rol != "" && l.Rol != filter.Rol {
			continue
		}
		if soek != "" {
			haystack := strings.ToLower(l.Naam + " " + l.Van + " " + l.Selfoon + " " + l.Epos)
			if !strings.Contains(haystack, soek) {
				continue
			}
		}
		out = append(out, l)
	}
	return out, nil
}

func (s *Service) noteFailure(ctx context.Context, span trace.Span, op string, id uuid.UUID, err error, res *models.BatchResult) {
	res.Failed++
	if s.metrics != nil {
		s.metrics.ToewysingsMisluk.Inc()
	}
	span.RecordError(err)
	level := slog.LevelWarn
	if !errors.Is(err, sentinel.ErrNotFound) {
		level = slog.LevelError
	}
	s.logger.Log(ctx, level, op+" item misluk", "lidmaat_id", id, "error", err)
}

// afterBatch logs the outcome and refreshes the overview cache once for the
// whole batch, not per member.
func (s *Service) afterBatch(ctx context.Context, gemeenteID uuid.UUID, op string, res models.BatchResult) {
	s.logger.InfoContext(ctx, op+" voltooi",
		"gemeente_id", gemeenteID, "suksesvol", res.Succeeded, "misluk", res.Failed)
	if s.cache != nil && res.Succeeded > 0 {
		s.cache.Invalidate(ctx, gemeenteID)
	}
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

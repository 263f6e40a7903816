package geloofsonderrig

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"gemeentenet/internal/lidmaat/models"
	derrors "gemeentenet/pkg/domain-errors"
	"gemeentenet/pkg/sentinel"
)

// LidmaatGids resolves learner records.
type LidmaatGids interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Lidmaat, error)
}

type Service struct {
	store   Store
	lidmate LidmaatGids
	logger  *slog.Logger
}

type Option func(*Service)

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

func NewService(store Store, lidmate LidmaatGids, opts ...Option) *Service {
	s := &Service{store: store, lidmate: lidmate, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Record registers a payment for a learner and year.
func (s *Service) Record(ctx context.Context, gemeenteID uuid.UUID, req RecordBetalingRequest) (*Betaling, error) {
	if req.LeerderID == uuid.Nil {
		return nil, derrors.New(derrors.CodeValidation, "leerder is verpligtend")
	}
	if req.Jaar < 2000 || req.Jaar > 2100 {
		return nil, derrors.Newf(derrors.CodeValidation, "ongeldige jaar %d", req.Jaar)
	}
	if req.BedragSent <= 0 {
		return nil, derrors.New(derrors.CodeValidation, "bedrag moet positief wees")
	}

	leerder, err := s.lidmate.FindByID(ctx, req.LeerderID)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, derrors.New(derrors.CodeValidation, "leerder nie gevind nie")
	}
	if err != nil {
		return nil, fmt.Errorf("find leerder: %w", err)
	}
	if leerder.GemeenteID != gemeenteID {
		return nil, derrors.New(derrors.CodeValidation, "leerder behoort aan 'n ander gemeente")
	}

	now := time.Now().UTC()
	betaalDatum := now
	if req.BetaalDatum != nil {
		betaalDatum = req.BetaalDatum.UTC()
	}
	b := &Betaling{
		ID:          uuid.New(),
		GemeenteID:  gemeenteID,
		LeerderID:   req.LeerderID,
		Jaar:        req.Jaar,
		BedragSent:  req.BedragSent,
		BetaalDatum: betaalDatum,
		Verwysing:   strings.TrimSpace(req.Verwysing),
		CreatedAt:   now,
	}
	if err := s.store.Append(ctx, b); err != nil {
		return nil, fmt.Errorf("record betaling: %w", err)
	}
	s.logger.InfoContext(ctx, "betaling aangeteken",
		"betaling_id", b.ID, "leerder_id", b.LeerderID, "jaar", b.Jaar, "bedrag_sent", b.BedragSent)
	return b, nil
}

// List returns payments for a congregation, optionally narrowed to a year.
func (s *Service) List(ctx context.Context, gemeenteID uuid.UUID, jaar int) ([]*Betaling, error) {
	return s.store.List(ctx, gemeenteID, jaar)
}

// Totale aggregates payments per year, newest year first.
func (s *Service) Totale(ctx context.Context, gemeenteID uuid.UUID) ([]Totaal, error) {
	betalings, err := s.store.List(ctx, gemeenteID, 0)
	if err != nil {
		return nil, fmt.Errorf("list betalings: %w", err)
	}
	perJaar := make(map[int]*Totaal)
	for _, b := range betalings {
		t, ok := perJaar[b.Jaar]
		if !ok {
			t = &Totaal{Jaar: b.Jaar}
			perJaar[b.Jaar] = t
		}
		t.Betalings++
		t.TotaalSent += b.BedragSent
	}
	out := make([]Totaal, 0, len(perJaar))
	for _, t := range perJaar {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Jaar > out[j].Jaar })
	return out, nil
}

package sakrament

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

type Service struct {
	store  Store
	logger *slog.Logger
}

type Option func(*Service)

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

func NewService(store Store, opts ...Option) *Service {
	s := &Service{store: store, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) CreateKind(ctx context.Context, gemeenteID uuid.UUID, req SaveKindRequest) (*Kind, error) {
	if err := validateKind(req); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	fase := req.Fase
	if fase == "" {
		fase = FaseDoop
	}
	k := &Kind{
		ID:            uuid.New(),
		GemeenteID:    gemeenteID,
		OuerID:        req.OuerID,
		Naam:          strings.TrimSpace(req.Naam),
		Geboortedatum: strings.TrimSpace(req.Geboortedatum),
		DoopDatum:     strings.TrimSpace(req.DoopDatum),
		Fase:          fase,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.store.CreateKind(ctx, k); err != nil {
		return nil, fmt.Errorf("create kind: %w", err)
	}
	s.logger.InfoContext(ctx, "kind geskep", "kind_id", k.ID, "gemeente_id", gemeenteID)
	return k, nil
}

func (s *Service) GetKind(ctx context.Context, id uuid.UUID) (*Kind, error) {
	k, err := s.store.FindKind(ctx, id)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, derrors.New(derrors.CodeNotFound, "kind nie gevind nie")
	}
	if err != nil {
		return nil, fmt.Errorf("find kind: %w", err)
	}
	return k, nil
}

func (s *Service) ListKinders(ctx context.Context, gemeenteID uuid.UUID) ([]*Kind, error) {
	return s.store.ListKinders(ctx, gemeenteID)
}

func (s *Service) UpdateKind(ctx context.Context, id uuid.UUID, req SaveKindRequest) (*Kind, error) {
	k, err := s.GetKind(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validateKind(req); err != nil {
		return nil, err
	}
	k.OuerID = req.OuerID
	k.Naam = strings.TrimSpace(req.Naam)
	k.Geboortedatum = strings.TrimSpace(req.Geboortedatum)
	k.DoopDatum = strings.TrimSpace(req.DoopDatum)
	if req.Fase != "" {
		k.Fase = req.Fase
	}
	k.UpdatedAt = time.Now().UTC()
	if err := s.store.UpdateKind(ctx, k); err != nil {
		return nil, fmt.Errorf("update kind: %w", err)
	}
	return k, nil
}

func (s *Service) DeleteKind(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetKind(ctx, id); err != nil {
		return err
	}
	if err := s.store.DeleteKind(ctx, id); err != nil {
		return fmt.Errorf("delete kind: %w", err)
	}
	return nil
}

// AddJoernaal appends a journal entry to a child's journey.
func (s *Service) AddJoernaal(ctx context.Context, kindID uuid.UUID, req AddJoernaalRequest) (*JoernaalInskrywing, error) {
	k, err := s.GetKind(ctx, kindID)
	if err != nil {
		return nil, err
	}
	titel := strings.TrimSpace(req.Titel)
	if titel == "" {
		return nil, derrors.New(derrors.CodeValidation, "titel is verpligtend")
	}
	j := &JoernaalInskrywing{
		ID:         uuid.New(),
		KindID:     k.ID,
		GemeenteID: k.GemeenteID,
		Titel:      titel,
		Inhoud:     strings.TrimSpace(req.Inhoud),
		FotoURL:    strings.TrimSpace(req.FotoURL),
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.store.AddJoernaal(ctx, j); err != nil {
		return nil, fmt.Errorf("add joernaal inskrywing: %w", err)
	}
	return j, nil
}

func (s *Service) ListJoernaal(ctx context.Context, kindID uuid.UUID) ([]*JoernaalInskrywing, error) {
	if _, err := s.GetKind(ctx, kindID); err != nil {
		return nil, err
	}
	return s.store.ListJoernaal(ctx, kindID)
}

func (s *Service) DeleteJoernaal(ctx context.Context, id uuid.UUID) error {
	err := s.store.DeleteJoernaal(ctx, id)
	if errors.Is(err, sentinel.ErrNotFound) {
		return derrors.New(derrors.CodeNotFound, "joernaal inskrywing nie gevind nie")
	}
	if err != nil {
		return fmt.Errorf("delete joernaal inskrywing: %w", err)
	}
	return nil
}

func validateKind(req SaveKindRequest) error {
	if strings.TrimSpace(req.Naam) == "" {
		return derrors.New(derrors.CodeValidation, "kind naam is verpligtend")
	}
	if req.OuerID == uuid.Nil {
		return derrors.New(derrors.CodeValidation, "ouer is verpligtend")
	}
	if req.Fase != "" && !req.Fase.Valid() {
		return derrors.Newf(derrors.CodeValidation, "onbekende fase %q", req.Fase)
	}
	return nil
}

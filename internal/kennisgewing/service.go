package kennisgewing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"gemeentenet/internal/platform/metrics"
	derrors "gemeentenet/pkg/domain-errors"
	"gemeentenet/pkg/requestcontext"
	"gemeentenet/pkg/sentinel"
)

// History shows at most this many past notifications.
const HistoryLimit = 50

type Service struct {
	store   Store
	gateway PushGateway
	metrics *metrics.Metrics
	logger  *slog.Logger
}

type Option func(*Service)

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func NewService(store Store, gateway PushGateway, opts ...Option) *Service {
	s := &Service{
		store:   store,
		gateway: gateway,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Send validates the notification, hands it to the push gateway, and records
// it in history with the gateway's eligible subscription count.
func (s *Service) Send(ctx context.Context, gemeenteID uuid.UUID, req SendRequest) (*Kennisgewing, error) {
	title := strings.TrimSpace(req.Title)
	body := strings.TrimSpace(req.Body)
	if title == "" || body == "" {
		return nil, derrors.New(derrors.CodeValidation, "titel en boodskap is verpligtend")
	}
	audience := req.TargetAudience
	if audience == "" {
		audience = AudienceAll
	}
	if !audience.Valid() {
		return nil, derrors.Newf(derrors.CodeValidation, "onbekende teikengehoor %q", req.TargetAudience)
	}
	if audience == AudienceSpecificWyk && req.TargetWykID == nil {
		return nil, derrors.New(derrors.CodeValidation, "target_wyk_id is verpligtend vir 'n wyk-kennisgewing")
	}
	tipe := req.Tipe
	if tipe == "" {
		tipe = "general"
	}
	priority := req.Priority
	if priority == "" {
		priority = PriorityNormal
	}

	sentBy := requestcontext.ActorID(ctx)
	resp, err := s.gateway.Send(ctx, GatewayRequest{
		Title:          title,
		Body:           body,
		Tipe:           tipe,
		Priority:       priority,
		GemeenteID:     gemeenteID,
		TargetAudience: audience,
		TargetWykID:    req.TargetWykID,
		SentBy:         sentBy,
		Data:           GatewayData{URL: "/kennisgewings"},
	})
	if errors.Is(err, sentinel.ErrUnavailable) {
		return nil, derrors.Wrap(err, derrors.CodeInternal, "kennisgewingdiens is nie beskikbaar nie")
	}
	if err != nil {
		return nil, fmt.Errorf("send kennisgewing: %w", err)
	}

	k := &Kennisgewing{
		ID:                    uuid.New(),
		GemeenteID:            gemeenteID,
		Title:                 title,
		Body:                  body,
		Tipe:                  tipe,
		Priority:              priority,
		TargetAudience:        audience,
		TargetWykID:           req.TargetWykID,
		SentBy:                sentBy,
		SentByNaam:            requestcontext.ActorNaam(ctx),
		EligibleSubscriptions: resp.EligibleSubscriptions,
		SentAt:                time.Now().UTC(),
	}
	if err := s.store.Append(ctx, k); err != nil {
		// The push already went out; history is best-effort from here.
		s.logger.ErrorContext(ctx, "kennisgewing history write misluk", "error", err)
	}
	if s.metrics != nil {
		s.metrics.KennisgewingsGestuur.Inc()
	}
	s.logger.InfoContext(ctx, "kennisgewing gestuur",
		"gemeente_id", gemeenteID, "target_audience", audience, "ontvangers", resp.EligibleSubscriptions)
	return k, nil
}

// ListRecent returns the latest history entries, newest first.
func (s *Service) ListRecent(ctx context.Context, gemeenteID uuid.UUID) ([]*Kennisgewing, error) {
	return s.store.ListRecent(ctx, gemeenteID, HistoryLimit)
}

// Delete removes one history entry.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.store.Delete(ctx, id)
	if errors.Is(err, sentinel.ErrNotFound) {
		return derrors.New(derrors.CodeNotFound, "kennisgewing nie gevind nie")
	}
	if err != nil {
		return fmt.Errorf("delete kennisgewing: %w", err)
	}
	return nil
}

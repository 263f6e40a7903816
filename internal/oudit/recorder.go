package oudit

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"gemeentenet/internal/platform/metrics"
	"gemeentenet/pkg/requestcontext"
)

// Publisher fans an audit entry out to an external sink (Kafka). Optional.
type Publisher interface {
	Publish(ctx context.Context, entry Entry)
}

// Recorder is the write facade other services use. It fills in identity and
// actor fields from the context, persists the entry, and hands it to the
// publisher. Both the store write and the publish are best-effort.
type Recorder struct {
	store     Store
	publisher Publisher
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

func NewRecorder(store Store, logger *slog.Logger, opts ...RecorderOption) *Recorder {
	r := &Recorder{store: store, logger: logger}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type RecorderOption func(*Recorder)

func WithPublisher(p Publisher) RecorderOption {
	return func(r *Recorder) { r.publisher = p }
}

func WithMetrics(m *metrics.Metrics) RecorderOption {
	return func(r *Recorder) { r.metrics = m }
}

// Record appends an audit entry. Failures are logged and counted, never returned.
func (r *Recorder) Record(ctx context.Context, entry Entry) {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = requestcontext.Now(ctx)
	}
	if entry.GewysigDeurID == uuid.Nil {
		entry.GewysigDeurID = requestcontext.ActorID(ctx)
	}
	if entry.GewysigDeurNaam == "" {
		entry.GewysigDeurNaam = requestcontext.ActorNaam(ctx)
		if entry.GewysigDeurNaam == "" {
			entry.GewysigDeurNaam = "Stelsel"
		}
	}

	if err := r.store.Append(ctx, entry); err != nil {
		r.logger.ErrorContext(ctx, "oudit write failed",
			"error", err,
			"lidmaat_id", entry.LidmaatID,
			"aksie_tipe", entry.AksieTipe,
			"request_id", requestcontext.RequestID(ctx),
		)
		if r.metrics != nil {
			r.metrics.OuditSkryfMisluk.Inc()
		}
	}
	if r.publisher != nil {
		r.publisher.Publish(ctx, entry)
	}
}

// List returns the audit trail for a member, newest first.
func (r *Recorder) List(ctx context.Context, lidmaatID uuid.UUID) ([]Entry, error) {
	return r.store.ListForLidmaat(ctx, lidmaatID)
}

// Now exposes the recorder's clock source for callers composing entries.
func Now(ctx context.Context) time.Time {
	return requestcontext.Now(ctx)
}

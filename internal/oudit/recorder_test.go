package oudit

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gemeentenet/pkg/requestcontext"
)

type failingStore struct{}

func (failingStore) Append(context.Context, Entry) error { return errors.New("tafel weg") }
func (failingStore) ListForLidmaat(context.Context, uuid.UUID) ([]Entry, error) {
	return nil, nil
}

type capturingPublisher struct {
	entries []Entry
}

func (p *capturingPublisher) Publish(_ context.Context, entry Entry) {
	p.entries = append(p.entries, entry)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRecordFillsIdentity(t *testing.T) {
	store := NewInMemoryStore()
	rec := NewRecorder(store, discardLogger())
	lidmaatID := uuid.New()

	rec.Record(context.Background(), Entry{LidmaatID: lidmaatID, AksieTipe: AksieGeskep})

	entries, err := store.ListForLidmaat(context.Background(), lidmaatID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.NotEqual(t, uuid.Nil, entries[0].ID)
	assert.False(t, entries[0].CreatedAt.IsZero())
	assert.Equal(t, "Stelsel", entries[0].GewysigDeurNaam)
}

func TestRecordActorFromContext(t *testing.T) {
	store := NewInMemoryStore()
	rec := NewRecorder(store, discardLogger())
	lidmaatID := uuid.New()
	actorID := uuid.New()

	ctx := requestcontext.WithActorID(context.Background(), actorID)
	ctx = requestcontext.WithActorNaam(ctx, "Ds. Venter")
	rec.Record(ctx, Entry{LidmaatID: lidmaatID, AksieTipe: AksieProfielWysig})

	entries, err := store.ListForLidmaat(ctx, lidmaatID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, actorID, entries[0].GewysigDeurID)
	assert.Equal(t, "Ds. Venter", entries[0].GewysigDeurNaam)
}

// A broken store never surfaces to the caller; the publisher still sees the entry.
func TestRecordBestEffort(t *testing.T) {
	pub := &capturingPublisher{}
	rec := NewRecorder(failingStore{}, discardLogger(), WithPublisher(pub))

	rec.Record(context.Background(), Entry{LidmaatID: uuid.New(), AksieTipe: AksieGeskep})

	require.Len(t, pub.entries, 1)
	assert.Equal(t, "Stelsel", pub.entries[0].GewysigDeurNaam)
}

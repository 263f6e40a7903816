//go:build integration

package gemeente

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gemeentenet/internal/platform/redis"
	"gemeentenet/pkg/testutil/containers"
)

func TestCacheRoundTrip(t *testing.T) {
	rc := containers.NewRedisContainer(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cache := NewCache(&redis.Client{Client: rc.Client}, logger)
	ctx := context.Background()

	gemeenteID := uuid.New()
	_, ok := cache.Get(ctx, gemeenteID)
	assert.False(t, ok)

	o := &Oorsig{
		GemeenteID:     gemeenteID,
		Naam:           "NHKA Toets",
		TotaalLidmate:  42,
		AktieweLidmate: 40,
		BerekenOp:      time.Now().UTC().Truncate(time.Second),
	}
	cache.Set(ctx, o)

	got, ok := cache.Get(ctx, gemeenteID)
	require.True(t, ok)
	assert.Equal(t, o.Naam, got.Naam)
	assert.Equal(t, o.TotaalLidmate, got.TotaalLidmate)
	assert.True(t, o.BerekenOp.Equal(got.BerekenOp))

	cache.Invalidate(ctx, gemeenteID)
	_, ok = cache.Get(ctx, gemeenteID)
	assert.False(t, ok)
}

// A nil cache is a valid no-op dependency.
func TestCacheNilSafe(t *testing.T) {
	var cache *Cache
	ctx := context.Background()

	_, ok := cache.Get(ctx, uuid.New())
	assert.False(t, ok)
	cache.Set(ctx, &Oorsig{GemeenteID: uuid.New()})
	cache.Invalidate(ctx, uuid.New())
}

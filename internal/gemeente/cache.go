package gemeente

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"gemeentenet/internal/platform/redis"
)

const oorsigTTL = 5 * time.Minute

// Cache keeps computed congregation overviews in Redis. All methods are
// best-effort: cache trouble degrades to recomputation, never to an error.
type Cache struct {
	client *redis.Client
	logger *slog.Logger
}

func NewCache(client *redis.Client, logger *slog.Logger) *Cache {
	return &Cache{client: client, logger: logger}
}

func oorsigKey(gemeenteID uuid.UUID) string {
	return "gemeentenet:oorsig:" + gemeenteID.String()
}

func (c *Cache) Get(ctx context.Context, gemeenteID uuid.UUID) (*Oorsig, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	raw, err := c.client.Client.Get(ctx, oorsigKey(gemeenteID)).Bytes()
	if err != nil {
		if err != goredis.Nil {
			c.logger.WarnContext(ctx, "oorsig cache read misluk", "gemeente_id", gemeenteID, "error", err)
		}
		return nil, false
	}
	var o Oorsig
	if err := json.Unmarshal(raw, &o); err != nil {
		c.logger.WarnContext(ctx, "oorsig cache decode misluk", "gemeente_id", gemeenteID, "error", err)
		return nil, false
	}
	return &o, true
}

func (c *Cache) Set(ctx context.Context, o *Oorsig) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(o)
	if err != nil {
		return
	}
	if err := c.client.Client.Set(ctx, oorsigKey(o.GemeenteID), raw, oorsigTTL).Err(); err != nil {
		c.logger.WarnContext(ctx, "oorsig cache write misluk", "gemeente_id", o.GemeenteID, "error", err)
	}
}

// Invalidate drops the cached overview after membership moves.
func (c *Cache) Invalidate(ctx context.Context, gemeenteID uuid.UUID) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Client.Del(ctx, oorsigKey(gemeenteID)).Err(); err != nil {
		c.logger.WarnContext(ctx, "oorsig cache invalidate misluk", "gemeente_id", gemeenteID, "error", err)
	}
}

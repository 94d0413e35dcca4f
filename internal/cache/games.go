package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/AllanOliveira2022/GameZone-sub000/internal/domain/game"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/models"
)

var (
	_ game.Cache = (*RedisGameCache)(nil)
	_ game.Cache = Nop{}
)

// RedisGameCache guarda o jogo hidratado de GET /games/:id. Falhas do redis
// viram cache miss; o banco continua sendo a fonte da verdade.
type RedisGameCache struct {
	client *redis.Client
	log    *slog.Logger
}

func NewRedis(ctx context.Context, url string, log *slog.Logger) (*RedisGameCache, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &RedisGameCache{client: client, log: log}, nil
}

func GameKey(id uint) string {
	return fmt.Sprintf("gamezone:game:%d", id)
}

func (c *RedisGameCache) Get(ctx context.Context, id uint) (*models.Game, bool) {
	raw, err := c.client.Get(ctx, GameKey(id)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.WarnContext(ctx, "cache get failed", "key", GameKey(id), "error", err)
		}
		return nil, false
	}

	var g models.Game
	if err := json.Unmarshal(raw, &g); err != nil {
		c.log.WarnContext(ctx, "cache decode failed", "key", GameKey(id), "error", err)
		return nil, false
	}
	return &g, true
}

func (c *RedisGameCache) Set(ctx context.Context, g *models.Game, ttl time.Duration) {
	raw, err := json.Marshal(g)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, GameKey(g.ID), raw, ttl).Err(); err != nil {
		c.log.WarnContext(ctx, "cache set failed", "key", GameKey(g.ID), "error", err)
	}
}

func (c *RedisGameCache) Invalidate(ctx context.Context, id uint) {
	if err := c.client.Del(ctx, GameKey(id)).Err(); err != nil {
		c.log.WarnContext(ctx, "cache invalidate failed", "key", GameKey(id), "error", err)
	}
}

func (c *RedisGameCache) Close() error {
	return c.client.Close()
}

// Nop é usado quando REDIS_URL não está configurado.
type Nop struct{}

func (Nop) Get(context.Context, uint) (*models.Game, bool)    { return nil, false }
func (Nop) Set(context.Context, *models.Game, time.Duration) {}
func (Nop) Invalidate(context.Context, uint)                 {}

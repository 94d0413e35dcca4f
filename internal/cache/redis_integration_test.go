//go:build integration

package cache

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/AllanOliveira2022/GameZone-sub000/internal/models"
)

func TestRedisGameCacheRoundTrip(t *testing.T) {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	c, err := NewRedis(ctx, fmt.Sprintf("redis://%s:%s/0", host, port.Port()), log)
	require.NoError(t, err)
	defer c.Close()

	g := &models.Game{ID: 3, Name: "Hades", Price: decimal.RequireFromString("29.90")}
	c.Set(ctx, g, time.Minute)

	got, ok := c.Get(ctx, 3)
	require.True(t, ok)
	assert.Equal(t, "Hades", got.Name)
	assert.True(t, got.Price.Equal(g.Price))

	c.Invalidate(ctx, 3)
	_, ok = c.Get(ctx, 3)
	assert.False(t, ok)
}

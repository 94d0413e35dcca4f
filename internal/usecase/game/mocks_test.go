package game

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/AllanOliveira2022/GameZone-sub000/internal/audit"
	domain "github.com/AllanOliveira2022/GameZone-sub000/internal/domain/game"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/dto"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/models"
)

type mockRepo struct {
	mock.Mock
}

var _ domain.Repository = (*mockRepo)(nil)

func (m *mockRepo) Create(ctx context.Context, g *models.Game) error {
	return m.Called(ctx, g).Error(0)
}

func (m *mockRepo) Update(ctx context.Context, g *models.Game) error {
	return m.Called(ctx, g).Error(0)
}

func (m *mockRepo) Get(ctx context.Context, id uint) (*models.Game, error) {
	args := m.Called(ctx, id)
	g, _ := args.Get(0).(*models.Game)
	return g, args.Error(1)
}

func (m *mockRepo) List(ctx context.Context, f domain.Filter, page dto.PageParams) ([]models.Game, int64, error) {
	args := m.Called(ctx, f, page)
	games, _ := args.Get(0).([]models.Game)
	return games, args.Get(1).(int64), args.Error(2)
}

func (m *mockRepo) DeleteGameCascade(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRepo) UpdateCover(ctx context.Context, id uint, url string) error {
	return m.Called(ctx, id, url).Error(0)
}

func (m *mockRepo) ReferencesExist(ctx context.Context, g *models.Game) error {
	return m.Called(ctx, g).Error(0)
}

type mockCache struct {
	mock.Mock
}

func (m *mockCache) Get(ctx context.Context, id uint) (*models.Game, bool) {
	args := m.Called(ctx, id)
	g, _ := args.Get(0).(*models.Game)
	return g, args.Bool(1)
}

func (m *mockCache) Set(ctx context.Context, g *models.Game, ttl time.Duration) {
	m.Called(ctx, g, ttl)
}

func (m *mockCache) Invalidate(ctx context.Context, id uint) {
	m.Called(ctx, id)
}

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	args := m.Called(ctx, key, body, size, contentType)
	return args.String(0), args.Error(1)
}

type nopAudit struct{}

func (nopAudit) Record(context.Context, audit.Event) {}

package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	avaliationDomain "github.com/AllanOliveira2022/GameZone-sub000/internal/domain/avaliation"
	catalogDomain "github.com/AllanOliveira2022/GameZone-sub000/internal/domain/catalog"
	gameDomain "github.com/AllanOliveira2022/GameZone-sub000/internal/domain/game"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/dto"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/middleware"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/models"
)

// ------------------------------------------------------
// contexto autenticado
// ------------------------------------------------------

func newTestRouter(userID uint, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if userID != 0 {
			c.Set(middleware.ContextUserID, userID)
			c.Set(middleware.ContextUserRole, role)
		}
		c.Next()
	})
	return r
}

// ------------------------------------------------------
// game
// ------------------------------------------------------

type mockGameRepo struct {
	mock.Mock
}

var _ gameDomain.Repository = (*mockGameRepo)(nil)

func (m *mockGameRepo) Create(ctx context.Context, g *models.Game) error {
	return m.Called(ctx, g).Error(0)
}

func (m *mockGameRepo) Update(ctx context.Context, g *models.Game) error {
	return m.Called(ctx, g).Error(0)
}

func (m *mockGameRepo) Get(ctx context.Context, id uint) (*models.Game, error) {
	args := m.Called(ctx, id)
	g, _ := args.Get(0).(*models.Game)
	return g, args.Error(1)
}

func (m *mockGameRepo) List(ctx context.Context, f gameDomain.Filter, page dto.PageParams) ([]models.Game, int64, error) {
	args := m.Called(ctx, f, page)
	games, _ := args.Get(0).([]models.Game)
	return games, args.Get(1).(int64), args.Error(2)
}

func (m *mockGameRepo) DeleteGameCascade(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockGameRepo) UpdateCover(ctx context.Context, id uint, url string) error {
	return m.Called(ctx, id, url).Error(0)
}

func (m *mockGameRepo) ReferencesExist(ctx context.Context, g *models.Game) error {
	return m.Called(ctx, g).Error(0)
}

// ------------------------------------------------------
// catalog
// ------------------------------------------------------

type mockCatalogRepo[T catalogDomain.Entity] struct {
	mock.Mock
}

func (m *mockCatalogRepo[T]) Create(ctx context.Context, e *T) error {
	return m.Called(ctx, e).Error(0)
}

func (m *mockCatalogRepo[T]) Update(ctx context.Context, e *T) error {
	return m.Called(ctx, e).Error(0)
}

func (m *mockCatalogRepo[T]) Get(ctx context.Context, id uint) (*T, error) {
	args := m.Called(ctx, id)
	e, _ := args.Get(0).(*T)
	return e, args.Error(1)
}

func (m *mockCatalogRepo[T]) List(ctx context.Context, page dto.PageParams) ([]T, int64, error) {
	args := m.Called(ctx, page)
	items, _ := args.Get(0).([]T)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *mockCatalogRepo[T]) DeleteDetachingGames(ctx context.Context, id uint) ([]uint, error) {
	args := m.Called(ctx, id)
	ids, _ := args.Get(0).([]uint)
	return ids, args.Error(1)
}

func (m *mockCatalogRepo[T]) GameIDs(ctx context.Context, id uint) ([]uint, error) {
	args := m.Called(ctx, id)
	ids, _ := args.Get(0).([]uint)
	return ids, args.Error(1)
}

func (m *mockCatalogRepo[T]) NameTaken(ctx context.Context, name string, exceptID uint) (bool, error) {
	args := m.Called(ctx, name, exceptID)
	return args.Bool(0), args.Error(1)
}

// ------------------------------------------------------
// avaliation
// ------------------------------------------------------

type mockAvaliationRepo struct {
	mock.Mock
}

var _ avaliationDomain.Repository = (*mockAvaliationRepo)(nil)

func (m *mockAvaliationRepo) Create(ctx context.Context, a *models.Avaliation) error {
	return m.Called(ctx, a).Error(0)
}

func (m *mockAvaliationRepo) Update(ctx context.Context, a *models.Avaliation) error {
	return m.Called(ctx, a).Error(0)
}

func (m *mockAvaliationRepo) Get(ctx context.Context, id uint) (*models.Avaliation, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*models.Avaliation)
	return a, args.Error(1)
}

func (m *mockAvaliationRepo) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockAvaliationRepo) List(ctx context.Context, f avaliationDomain.Filter, page dto.PageParams) ([]models.Avaliation, int64, error) {
	args := m.Called(ctx, f, page)
	list, _ := args.Get(0).([]models.Avaliation)
	return list, args.Get(1).(int64), args.Error(2)
}

func (m *mockAvaliationRepo) UserExists(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockAvaliationRepo) GameExists(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// ------------------------------------------------------
// user
// ------------------------------------------------------

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, u *models.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *mockUserRepo) Update(ctx context.Context, u *models.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *mockUserRepo) Get(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) List(ctx context.Context, page dto.PageParams) ([]models.User, int64, error) {
	args := m.Called(ctx, page)
	users, _ := args.Get(0).([]models.User)
	return users, args.Get(1).(int64), args.Error(2)
}

func (m *mockUserRepo) DeleteCascade(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

package buy

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/AllanOliveira2022/GameZone-sub000/internal/audit"
	domain "github.com/AllanOliveira2022/GameZone-sub000/internal/domain/buy"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/dto"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/models"
)

type mockRepo struct {
	mock.Mock
}

var _ domain.Repository = (*mockRepo)(nil)

func (m *mockRepo) UserExists(ctx context.Context, userID uint) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepo) FindExistingGameIDs(ctx context.Context, ids []uint) ([]uint, error) {
	args := m.Called(ctx, ids)
	found, _ := args.Get(0).([]uint)
	return found, args.Error(1)
}

func (m *mockRepo) CreateBuy(ctx context.Context, b *models.Buy) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *mockRepo) UpdateBuy(ctx context.Context, b *models.Buy, replaceItems bool) error {
	args := m.Called(ctx, b, replaceItems)
	return args.Error(0)
}

func (m *mockRepo) DeleteBuyCascade(ctx context.Context, buyID uint) error {
	args := m.Called(ctx, buyID)
	return args.Error(0)
}

func (m *mockRepo) GetBuy(ctx context.Context, buyID uint) (*models.Buy, error) {
	args := m.Called(ctx, buyID)
	b, _ := args.Get(0).(*models.Buy)
	return b, args.Error(1)
}

func (m *mockRepo) GetBuyDetailed(ctx context.Context, buyID uint) (*models.Buy, error) {
	args := m.Called(ctx, buyID)
	b, _ := args.Get(0).(*models.Buy)
	return b, args.Error(1)
}

func (m *mockRepo) ListBuys(ctx context.Context, userID *uint, page dto.PageParams) ([]models.Buy, int64, error) {
	args := m.Called(ctx, userID, page)
	buys, _ := args.Get(0).([]models.Buy)
	return buys, args.Get(1).(int64), args.Error(2)
}

type mockGateway struct {
	mock.Mock
}

func (m *mockGateway) CreateCheckout(ctx context.Context, req domain.CheckoutRequest) (*domain.CheckoutSession, error) {
	args := m.Called(ctx, req)
	s, _ := args.Get(0).(*domain.CheckoutSession)
	return s, args.Error(1)
}

type recordedEvents struct {
	events []audit.Event
}

func (r *recordedEvents) Record(_ context.Context, ev audit.Event) {
	r.events = append(r.events, ev)
}

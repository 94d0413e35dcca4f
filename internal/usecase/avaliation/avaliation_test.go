package avaliation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/AllanOliveira2022/GameZone-sub000/internal/audit"
	domain "github.com/AllanOliveira2022/GameZone-sub000/internal/domain/avaliation"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/dto"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/httperr"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/models"
)

type mockRepo struct {
	mock.Mock
}

var _ domain.Repository = (*mockRepo)(nil)

func (m *mockRepo) Create(ctx context.Context, a *models.Avaliation) error {
	return m.Called(ctx, a).Error(0)
}

func (m *mockRepo) Update(ctx context.Context, a *models.Avaliation) error {
	return m.Called(ctx, a).Error(0)
}

func (m *mockRepo) Get(ctx context.Context, id uint) (*models.Avaliation, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*models.Avaliation)
	return a, args.Error(1)
}

func (m *mockRepo) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRepo) List(ctx context.Context, f domain.Filter, page dto.PageParams) ([]models.Avaliation, int64, error) {
	args := m.Called(ctx, f, page)
	list, _ := args.Get(0).([]models.Avaliation)
	return list, args.Get(1).(int64), args.Error(2)
}

func (m *mockRepo) UserExists(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepo) GameExists(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func TestCreateScoreBoundaries(t *testing.T) {
	for _, score := range []int{0, 6} {
		repo := new(mockRepo)
		_, err := NewService(repo, audit.Nop{}).Create(context.Background(), CreateInput{
			RequesterID: 7, GameID: 1, Score: score, Comment: "ok",
		})
		assert.True(t, httperr.IsValidation(err), "score %d", score)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	}

	for _, score := range []int{1, 5} {
		repo := new(mockRepo)
		repo.On("UserExists", mock.Anything, uint(7)).Return(true, nil)
		repo.On("GameExists", mock.Anything, uint(1)).Return(true, nil)
		repo.On("Create", mock.Anything, mock.Anything).Return(nil)

		a, err := NewService(repo, audit.Nop{}).Create(context.Background(), CreateInput{
			RequesterID: 7, GameID: 1, Score: score, Comment: "ok",
		})
		require.NoError(t, err, "score %d", score)
		assert.Equal(t, score, a.Score)
	}
}

func TestCreateUsesRequesterUnlessAdmin(t *testing.T) {
	repo := new(mockRepo)
	repo.On("UserExists", mock.Anything, uint(7)).Return(true, nil)
	repo.On("GameExists", mock.Anything, uint(1)).Return(true, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	a, err := NewService(repo, audit.Nop{}).Create(context.Background(), CreateInput{
		RequesterID: 7, UserID: 99, GameID: 1, Score: 3, Comment: "ok",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(7), a.UserID)
}

func TestCreateUnknownGame(t *testing.T) {
	repo := new(mockRepo)
	repo.On("UserExists", mock.Anything, uint(7)).Return(true, nil)
	repo.On("GameExists", mock.Anything, uint(1)).Return(false, nil)

	_, err := NewService(repo, audit.Nop{}).Create(context.Background(), CreateInput{
		RequesterID: 7, GameID: 1, Score: 3, Comment: "ok",
	})
	var ve *httperr.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "game_not_found", ve.Code)
}

func TestUpdateValidatesNewScore(t *testing.T) {
	repo := new(mockRepo)
	svc := NewService(repo, audit.Nop{})
	repo.On("Get", mock.Anything, uint(3)).Return(&models.Avaliation{ID: 3, UserID: 7, Score: 4, Comment: "x"}, nil)

	zero := 0
	_, err := svc.Update(context.Background(), 3, UpdateInput{RequesterID: 7, Score: &zero})
	assert.True(t, httperr.IsValidation(err))

	_, err = svc.Update(context.Background(), 3, UpdateInput{RequesterID: 8, Score: &zero})
	assert.True(t, httperr.IsForbidden(err))

	five := 5
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)
	a, err := svc.Update(context.Background(), 3, UpdateInput{RequesterID: 7, Score: &five})
	require.NoError(t, err)
	assert.Equal(t, 5, a.Score)
	assert.Equal(t, "x", a.Comment)
}

func TestDeleteOwnerOrAdmin(t *testing.T) {
	repo := new(mockRepo)
	svc := NewService(repo, audit.Nop{})
	repo.On("Get", mock.Anything, uint(3)).Return(&models.Avaliation{ID: 3, UserID: 7}, nil)
	repo.On("Delete", mock.Anything, uint(3)).Return(nil)

	assert.True(t, httperr.IsForbidden(svc.Delete(context.Background(), 3, 8, false)))
	assert.NoError(t, svc.Delete(context.Background(), 3, 1, true))
	assert.NoError(t, svc.Delete(context.Background(), 3, 7, false))
	repo.AssertNumberOfCalls(t, "Delete", 2)
}

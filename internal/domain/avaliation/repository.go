package avaliation

import (
	"context"

	"github.com/AllanOliveira2022/GameZone-sub000/internal/dto"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/models"
)

type Filter struct {
	UserID *uint
	GameID *uint
}

type Repository interface {
	Create(ctx context.Context, a *models.Avaliation) error
	Update(ctx context.Context, a *models.Avaliation) error
	Get(ctx context.Context, id uint) (*models.Avaliation, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, f Filter, page dto.PageParams) ([]models.Avaliation, int64, error)

	UserExists(ctx context.Context, id uint) (bool, error)
	GameExists(ctx context.Context, id uint) (bool, error)
}

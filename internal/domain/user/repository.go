package user

import (
	"context"

	"github.com/AllanOliveira2022/GameZone-sub000/internal/dto"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/models"
)

type Repository interface {
	Create(ctx context.Context, u *models.User) error
	Update(ctx context.Context, u *models.User) error
	Get(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context, page dto.PageParams) ([]models.User, int64, error)

	// DeleteCascade apaga avaliações, itens, compras e o usuário numa transação.
	DeleteCascade(ctx context.Context, id uint) error
}

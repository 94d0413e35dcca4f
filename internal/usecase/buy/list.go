package buy

import (
	"context"

	domain "github.com/AllanOliveira2022/GameZone-sub000/internal/domain/buy"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/dto"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/models"
)

type ListBuysInput struct {
	RequesterID uint
	IsAdmin     bool

	// UserID só é respeitado para admin; os demais sempre veem as próprias compras.
	UserID *uint
	Page   dto.PageParams
}

type ListBuys struct {
	repo domain.Repository
}

func NewListBuys(repo domain.Repository) *ListBuys {
	return &ListBuys{repo: repo}
}

func (uc *ListBuys) Execute(
	ctx context.Context,
	in ListBuysInput,
) (page dto.Page[models.Buy], err error) {

	ctx, span := startSpan(ctx, "buy.list")
	defer func() { endSpan(span, err) }()

	userID := in.UserID
	if !in.IsAdmin {
		userID = &in.RequesterID
	}

	buys, total, err := uc.repo.ListBuys(ctx, userID, in.Page)
	if err != nil {
		return dto.Page[models.Buy]{}, err
	}
	return dto.NewPage(buys, total, in.Page), nil
}

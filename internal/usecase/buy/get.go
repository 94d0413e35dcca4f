package buy

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	domain "github.com/AllanOliveira2022/GameZone-sub000/internal/domain/buy"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/httperr"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/models"
)

type GetBuy struct {
	repo domain.Repository
}

func NewGetBuy(repo domain.Repository) *GetBuy {
	return &GetBuy{repo: repo}
}

// Execute só devolve a compra ao próprio dono; admin não tem exceção aqui.
func (uc *GetBuy) Execute(
	ctx context.Context,
	buyID uint,
	requesterID uint,
) (b *models.Buy, err error) {

	ctx, span := startSpan(ctx, "buy.get", attribute.Int("buy.id", int(buyID)))
	defer func() { endSpan(span, err) }()

	buy, err := uc.repo.GetBuyDetailed(ctx, buyID)
	if err != nil {
		return nil, err
	}

	if buy.UserID != requesterID {
		return nil, httperr.ErrForbidden("buy_forbidden")
	}
	return buy, nil
}

package buy

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/AllanOliveira2022/GameZone-sub000/internal/audit"
	domain "github.com/AllanOliveira2022/GameZone-sub000/internal/domain/buy"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/httperr"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/models"
)

// UpdateBuyInput: DateBuy nil mantém a data; Items vazio mantém itens e preço.
type UpdateBuyInput struct {
	BuyID       uint
	RequesterID uint
	IsAdmin     bool

	DateBuy *time.Time
	Items   []domain.ItemInput
}

type UpdateBuy struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewUpdateBuy(
	repo domain.Repository,
	audit audit.Recorder,
) *UpdateBuy {
	return &UpdateBuy{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateBuy) Execute(
	ctx context.Context,
	in UpdateBuyInput,
) (b *models.Buy, err error) {

	ctx, span := startSpan(ctx, "buy.update",
		attribute.Int("buy.id", int(in.BuyID)),
		attribute.Int("buy.items", len(in.Items)),
	)
	defer func() { endSpan(span, err) }()

	buy, err := uc.repo.GetBuy(ctx, in.BuyID)
	if err != nil {
		return nil, err
	}

	if !domain.CanManage(buy, in.RequesterID, in.IsAdmin) {
		return nil, httperr.ErrForbidden("buy_forbidden")
	}

	if in.DateBuy != nil {
		if err := domain.ValidateDate(*in.DateBuy); err != nil {
			return nil, err
		}
		buy.DateBuy = *in.DateBuy
	}

	replaceItems := len(in.Items) > 0
	if replaceItems {
		if err := domain.ValidateItems(in.Items); err != nil {
			return nil, err
		}
		if err := checkGames(ctx, uc.repo, in.Items); err != nil {
			return nil, err
		}
		buy.Items = domain.ToModels(in.Items)
		buy.Price = domain.Total(in.Items)
	}

	if err := uc.repo.UpdateBuy(ctx, buy, replaceItems); err != nil {
		return nil, err
	}

	uc.audit.Record(ctx, audit.Event{
		UserID:   &in.RequesterID,
		Action:   "buy_updated",
		Entity:   "buy",
		EntityID: &buy.ID,
		Metadata: map[string]any{"itemsReplaced": replaceItems},
	})

	return uc.repo.GetBuyDetailed(ctx, buy.ID)
}

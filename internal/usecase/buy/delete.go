package buy

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/AllanOliveira2022/GameZone-sub000/internal/audit"
	domain "github.com/AllanOliveira2022/GameZone-sub000/internal/domain/buy"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/httperr"
)

type DeleteBuy struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewDeleteBuy(
	repo domain.Repository,
	audit audit.Recorder,
) *DeleteBuy {
	return &DeleteBuy{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteBuy) Execute(
	ctx context.Context,
	buyID uint,
	requesterID uint,
	isAdmin bool,
) (err error) {

	ctx, span := startSpan(ctx, "buy.delete", attribute.Int("buy.id", int(buyID)))
	defer func() { endSpan(span, err) }()

	buy, err := uc.repo.GetBuy(ctx, buyID)
	if err != nil {
		return err
	}

	if !domain.CanManage(buy, requesterID, isAdmin) {
		return httperr.ErrForbidden("buy_forbidden")
	}

	if err := uc.repo.DeleteBuyCascade(ctx, buyID); err != nil {
		return err
	}

	uc.audit.Record(ctx, audit.Event{
		UserID:   &requesterID,
		Action:   "buy_deleted",
		Entity:   "buy",
		EntityID: &buyID,
	})
	return nil
}

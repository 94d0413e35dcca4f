package buy

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/AllanOliveira2022/GameZone-sub000/internal/audit"
	domain "github.com/AllanOliveira2022/GameZone-sub000/internal/domain/buy"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/httperr"
)

type Checkout struct {
	repo    domain.Repository
	payment domain.PaymentGateway
	audit   audit.Recorder
}

func NewCheckout(
	repo domain.Repository,
	payment domain.PaymentGateway,
	audit audit.Recorder,
) *Checkout {
	return &Checkout{
		repo:    repo,
		payment: payment,
		audit:   audit,
	}
}

func (uc *Checkout) Execute(
	ctx context.Context,
	buyID uint,
	requesterID uint,
) (s *domain.CheckoutSession, err error) {

	ctx, span := startSpan(ctx, "buy.checkout", attribute.Int("buy.id", int(buyID)))
	defer func() { endSpan(span, err) }()

	buy, err := uc.repo.GetBuyDetailed(ctx, buyID)
	if err != nil {
		return nil, err
	}

	if buy.UserID != requesterID {
		return nil, httperr.ErrForbidden("buy_forbidden")
	}

	req := domain.CheckoutRequest{BuyID: buy.ID}
	if buy.User != nil {
		req.Email = buy.User.Email
	}

	for _, it := range buy.Items {
		title := fmt.Sprintf("Jogo #%d", it.GameID)
		if it.Game != nil {
			title = it.Game.Name
		}
		req.Items = append(req.Items, domain.CheckoutItem{
			GameID: it.GameID,
			Title:  title,
			Price:  it.PriceBuy.StringFixed(2),
		})
	}

	if len(req.Items) == 0 {
		return nil, httperr.ErrValidation("buy_without_items", "Compra sem itens para cobrar.")
	}

	session, err := uc.payment.CreateCheckout(ctx, req)
	if err != nil {
		return nil, err
	}

	uc.audit.Record(ctx, audit.Event{
		UserID:   &requesterID,
		Action:   "buy_checkout",
		Entity:   "buy",
		EntityID: &buy.ID,
		Metadata: map[string]any{"preferenceID": session.PreferenceID},
	})

	return session, nil
}

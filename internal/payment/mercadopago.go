package payment

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/shopspring/decimal"

	"github.com/AllanOliveira2022/GameZone-sub000/internal/domain/buy"
)

var _ buy.PaymentGateway = (*MercadoPago)(nil)

type preferenceCreator interface {
	Create(ctx context.Context, request preference.Request) (*preference.Response, error)
}

// MercadoPago abre uma preferência de checkout com os itens da compra.
type MercadoPago struct {
	client     preferenceCreator
	currencyID string
}

func NewMercadoPago(accessToken, currencyID string) (*MercadoPago, error) {
	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}

	return &MercadoPago{
		client:     preference.NewClient(cfg),
		currencyID: currencyID,
	}, nil
}

func (m *MercadoPago) CreateCheckout(
	ctx context.Context,
	req buy.CheckoutRequest,
) (*buy.CheckoutSession, error) {

	items := make([]preference.ItemRequest, 0, len(req.Items))
	for _, it := range req.Items {
		price, err := decimal.NewFromString(it.Price)
		if err != nil {
			return nil, fmt.Errorf("item %d price: %w", it.GameID, err)
		}
		items = append(items, preference.ItemRequest{
			ID:         strconv.FormatUint(uint64(it.GameID), 10),
			Title:      it.Title,
			Quantity:   1,
			UnitPrice:  price.InexactFloat64(),
			CurrencyID: m.currencyID,
		})
	}

	request := preference.Request{
		Items:             items,
		ExternalReference: strconv.FormatUint(uint64(req.BuyID), 10),
	}
	if req.Email != "" {
		request.Payer = &preference.PayerRequest{Email: req.Email}
	}

	resource, err := m.client.Create(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("mercadopago create preference: %w", err)
	}

	return &buy.CheckoutSession{
		PreferenceID: resource.ID,
		CheckoutURL:  resource.InitPoint,
	}, nil
}

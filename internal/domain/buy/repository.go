package buy

import (
	"context"

	"github.com/AllanOliveira2022/GameZone-sub000/internal/dto"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/models"
)

type Repository interface {
	// -------- Referências --------
	UserExists(
		ctx context.Context,
		userID uint,
	) (bool, error)

	// FindExistingGameIDs devolve, numa única consulta, os IDs de ids que existem.
	FindExistingGameIDs(
		ctx context.Context,
		ids []uint,
	) ([]uint, error)

	// -------- Escrita (sempre em transação) --------
	CreateBuy(
		ctx context.Context,
		b *models.Buy,
	) error

	// UpdateBuy grava o cabeçalho; quando replaceItems é true os itens
	// antigos são apagados e b.Items inseridos na mesma transação.
	UpdateBuy(
		ctx context.Context,
		b *models.Buy,
		replaceItems bool,
	) error

	DeleteBuyCascade(
		ctx context.Context,
		buyID uint,
	) error

	// -------- Leitura --------
	GetBuy(
		ctx context.Context,
		buyID uint,
	) (*models.Buy, error)

	GetBuyDetailed(
		ctx context.Context,
		buyID uint,
	) (*models.Buy, error)

	// ListBuys pagina por created_at desc; userID nil lista todas.
	ListBuys(
		ctx context.Context,
		userID *uint,
		page dto.PageParams,
	) ([]models.Buy, int64, error)
}

// CheckoutRequest é o que o gateway de pagamento precisa para abrir uma cobrança.
type CheckoutRequest struct {
	BuyID uint
	Email string
	Items []CheckoutItem
}

type CheckoutItem struct {
	GameID uint
	Title  string
	Price  string
}

type CheckoutSession struct {
	PreferenceID string `json:"preferenceID"`
	CheckoutURL  string `json:"checkoutURL"`
}

type PaymentGateway interface {
	CreateCheckout(
		ctx context.Context,
		req CheckoutRequest,
	) (*CheckoutSession, error)
}

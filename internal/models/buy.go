package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Buy é o cabeçalho da compra. Price é sempre a soma dos PriceBuy dos itens.
type Buy struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint  `gorm:"not null" json:"userID"`
	User   *User `gorm:"constraint:OnDelete:CASCADE;" json:"user,omitempty"`

	DateBuy time.Time       `gorm:"not null" json:"dateBuy"`
	Price   decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`

	Items []ItemJogo `gorm:"foreignKey:BuyID" json:"items"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ItemJogo registra o preço pago no momento da compra, independente do
// preço atual do jogo.
type ItemJogo struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BuyID uint `gorm:"not null;index" json:"buyID"`

	GameID uint  `gorm:"not null;index" json:"gameID"`
	Game   *Game `gorm:"constraint:OnDelete:CASCADE;" json:"game,omitempty"`

	PriceBuy decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"priceBuy"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

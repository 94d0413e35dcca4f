package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// MoneyPlaces é a escala das colunas numeric de preço.
const MoneyPlaces = 2

func money(d decimal.Decimal) string {
	return d.StringFixed(MoneyPlaces)
}

// Os MarshalJSON abaixo só trocam o preço por uma string com duas casas
// ("49.80" e não "49.8"); o resto do JSON segue as tags dos modelos.

func (g Game) MarshalJSON() ([]byte, error) {
	type plain Game
	return json.Marshal(struct {
		plain
		Price string `json:"price"`
	}{plain(g), money(g.Price)})
}

func (b Buy) MarshalJSON() ([]byte, error) {
	type plain Buy
	return json.Marshal(struct {
		plain
		Price string `json:"price"`
	}{plain(b), money(b.Price)})
}

func (i ItemJogo) MarshalJSON() ([]byte, error) {
	type plain ItemJogo
	return json.Marshal(struct {
		plain
		PriceBuy string `json:"priceBuy"`
	}{plain(i), money(i.PriceBuy)})
}

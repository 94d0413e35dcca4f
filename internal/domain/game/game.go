package game

import (
	"strings"

	"github.com/AllanOliveira2022/GameZone-sub000/internal/httperr"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/models"
)

func Validate(g *models.Game) error {
	if strings.TrimSpace(g.Name) == "" {
		return httperr.ErrValidation("name_required", "Nome do jogo é obrigatório.")
	}
	if g.Price.IsNegative() {
		return httperr.ErrValidation("invalid_price", "Preço não pode ser negativo.")
	}
	return nil
}

func (f Filter) Validate() error {
	if f.MinPrice != nil && f.MaxPrice != nil && f.MinPrice.GreaterThan(*f.MaxPrice) {
		return httperr.ErrValidation("invalid_price_range", "minPrice maior que maxPrice.")
	}
	return nil
}

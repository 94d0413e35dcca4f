package buy

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/AllanOliveira2022/GameZone-sub000/internal/httperr"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/models"
)

type ItemInput struct {
	GameID   uint
	PriceBuy decimal.Decimal
}

// ValidateItems checa formato: ao menos um item, gameID presente e preço >= 0.
func ValidateItems(items []ItemInput) error {
	if len(items) == 0 {
		return httperr.ErrValidation("items_required", "A compra precisa de ao menos um item.")
	}
	for _, it := range items {
		if it.GameID == 0 {
			return httperr.ErrValidation("game_id_required", "Todo item precisa de gameID.")
		}
		if it.PriceBuy.IsNegative() {
			return httperr.ErrValidation("invalid_price", "priceBuy não pode ser negativo.")
		}
	}
	return nil
}

// CollectGameIDs devolve os gameIDs distintos, em ordem crescente.
func CollectGameIDs(items []ItemInput) []uint {
	seen := make(map[uint]struct{}, len(items))
	ids := make([]uint, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it.GameID]; ok {
			continue
		}
		seen[it.GameID] = struct{}{}
		ids = append(ids, it.GameID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// MissingIDs é a diferença requested \ found, preservando a ordem de requested.
func MissingIDs(requested, found []uint) []uint {
	ok := make(map[uint]struct{}, len(found))
	for _, id := range found {
		ok[id] = struct{}{}
	}

	var missing []uint
	for _, id := range requested {
		if _, exists := ok[id]; !exists {
			missing = append(missing, id)
		}
	}
	return missing
}

func Total(items []ItemInput) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.PriceBuy)
	}
	return total.Round(2)
}

func ToModels(items []ItemInput) []models.ItemJogo {
	out := make([]models.ItemJogo, 0, len(items))
	for _, it := range items {
		out = append(out, models.ItemJogo{
			GameID:   it.GameID,
			PriceBuy: it.PriceBuy.Round(2),
		})
	}
	return out
}

// CanManage: dono da compra ou admin.
func CanManage(b *models.Buy, requesterID uint, isAdmin bool) bool {
	return isAdmin || b.UserID == requesterID
}

func ValidateDate(d time.Time) error {
	if d.IsZero() {
		return httperr.ErrValidation("date_buy_required", "dateBuy é obrigatório.")
	}
	return nil
}

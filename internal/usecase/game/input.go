package game

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/AllanOliveira2022/GameZone-sub000/internal/models"
)

// GameInput: campos nil ficam como estão (na criação, ficam vazios). Nas
// FKs, 0 limpa a referência.
type GameInput struct {
	ActorID uint

	Name        *string
	Description *string
	Price       *decimal.Decimal
	ReleaseDate *datatypes.Date
	GenreID     *uint
	PlatformID  *uint
	DeveloperID *uint
}

func (in GameInput) apply(g *models.Game) {
	if in.Name != nil {
		g.Name = *in.Name
	}
	if in.Description != nil {
		g.Description = *in.Description
	}
	if in.Price != nil {
		g.Price = in.Price.Round(2)
	}
	if in.ReleaseDate != nil {
		g.ReleaseDate = *in.ReleaseDate
	}
	if in.GenreID != nil {
		g.GenreID = refOrNil(*in.GenreID)
		g.Genre = nil
	}
	if in.PlatformID != nil {
		g.PlatformID = refOrNil(*in.PlatformID)
		g.Platform = nil
	}
	if in.DeveloperID != nil {
		g.DeveloperID = refOrNil(*in.DeveloperID)
		g.Developer = nil
	}
}

func refOrNil(id uint) *uint {
	if id == 0 {
		return nil
	}
	return &id
}

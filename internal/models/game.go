package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Game guarda a data de lançamento separada do carimbo de criação do registro.
type Game struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string          `gorm:"size:150;not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	ReleaseDate datatypes.Date  `json:"releaseDate"`
	CoverURL    string          `gorm:"size:512" json:"coverURL,omitempty"`

	GenreID *uint  `json:"genreID"`
	Genre   *Genre `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"genre,omitempty"`

	PlatformID *uint     `json:"platformID"`
	Platform   *Platform `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"platform,omitempty"`

	DeveloperID *uint      `json:"developerID"`
	Developer   *Developer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"developer,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

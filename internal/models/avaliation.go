package models

import "time"

const (
	MinScore = 1
	MaxScore = 5
)

type Avaliation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint  `gorm:"not null" json:"userId"`
	User   *User `gorm:"constraint:OnDelete:CASCADE;" json:"user,omitempty"`

	GameID uint  `gorm:"not null" json:"gameId"`
	Game   *Game `gorm:"constraint:OnDelete:CASCADE;" json:"game,omitempty"`

	Score   int    `gorm:"not null;check:score >= 1 AND score <= 5" json:"score"`
	Comment string `gorm:"type:text;not null" json:"comment"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

package game

import (
	"context"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/AllanOliveira2022/GameZone-sub000/internal/dto"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/models"
)

// Filter combina todos os campos com AND; nil significa "sem filtro".
type Filter struct {
	GenreID     *uint
	PlatformID  *uint
	DeveloperID *uint
	MinPrice    *decimal.Decimal
	MaxPrice    *decimal.Decimal
	Query       string
}

type Repository interface {
	Create(ctx context.Context, g *models.Game) error
	Update(ctx context.Context, g *models.Game) error
	Get(ctx context.Context, id uint) (*models.Game, error)
	List(ctx context.Context, f Filter, page dto.PageParams) ([]models.Game, int64, error)

	// DeleteGameCascade apaga avaliações e itens de compra do jogo e depois o
	// jogo, numa única transação.
	DeleteGameCascade(ctx context.Context, id uint) error

	UpdateCover(ctx context.Context, id uint, url string) error

	// ReferencesExist confere gênero/plataforma/desenvolvedora informados.
	ReferencesExist(ctx context.Context, g *models.Game) error
}

type Cache interface {
	Get(ctx context.Context, id uint) (*models.Game, bool)
	Set(ctx context.Context, g *models.Game, ttl time.Duration)
	Invalidate(ctx context.Context, id uint)
}

type CoverStore interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)
}

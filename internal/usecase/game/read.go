package game

import (
	"context"
	"time"

	domain "github.com/AllanOliveira2022/GameZone-sub000/internal/domain/game"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/dto"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/models"
)

type GetGame struct {
	repo  domain.Repository
	cache domain.Cache
	ttl   time.Duration
}

func NewGetGame(repo domain.Repository, cache domain.Cache, ttl time.Duration) *GetGame {
	return &GetGame{repo: repo, cache: cache, ttl: ttl}
}

func (uc *GetGame) Execute(ctx context.Context, id uint) (*models.Game, error) {
	if g, ok := uc.cache.Get(ctx, id); ok {
		return g, nil
	}

	g, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	uc.cache.Set(ctx, g, uc.ttl)
	return g, nil
}

type ListGames struct {
	repo domain.Repository
}

func NewListGames(repo domain.Repository) *ListGames {
	return &ListGames{repo: repo}
}

func (uc *ListGames) Execute(
	ctx context.Context,
	f domain.Filter,
	page dto.PageParams,
) (dto.Page[models.Game], error) {

	if err := f.Validate(); err != nil {
		return dto.Page[models.Game]{}, err
	}

	games, total, err := uc.repo.List(ctx, f, page)
	if err != nil {
		return dto.Page[models.Game]{}, err
	}
	return dto.NewPage(games, total, page), nil
}

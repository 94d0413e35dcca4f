package game

import (
	"context"

	"github.com/AllanOliveira2022/GameZone-sub000/internal/audit"
	domain "github.com/AllanOliveira2022/GameZone-sub000/internal/domain/game"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/httperr"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/models"
)

// ======================================================
// CREATE
// ======================================================

type CreateGame struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewCreateGame(repo domain.Repository, audit audit.Recorder) *CreateGame {
	return &CreateGame{repo: repo, audit: audit}
}

func (uc *CreateGame) Execute(ctx context.Context, in GameInput) (*models.Game, error) {
	if in.Name == nil || in.Price == nil {
		return nil, httperr.ErrValidation("missing_fields", "name e price são obrigatórios.")
	}

	g := &models.Game{}
	in.apply(g)

	if err := domain.Validate(g); err != nil {
		return nil, err
	}
	if err := uc.repo.ReferencesExist(ctx, g); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, g); err != nil {
		return nil, err
	}

	uc.audit.Record(ctx, audit.Event{
		UserID:   &in.ActorID,
		Action:   "game_created",
		Entity:   "game",
		EntityID: &g.ID,
	})

	return uc.repo.Get(ctx, g.ID)
}

// ======================================================
// UPDATE
// ======================================================

type UpdateGame struct {
	repo  domain.Repository
	cache domain.Cache
	audit audit.Recorder
}

func NewUpdateGame(repo domain.Repository, cache domain.Cache, audit audit.Recorder) *UpdateGame {
	return &UpdateGame{repo: repo, cache: cache, audit: audit}
}

func (uc *UpdateGame) Execute(ctx context.Context, id uint, in GameInput) (*models.Game, error) {
	g, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	in.apply(g)

	if err := domain.Validate(g); err != nil {
		return nil, err
	}
	if err := uc.repo.ReferencesExist(ctx, g); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, g); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, id)
	uc.audit.Record(ctx, audit.Event{
		UserID:   &in.ActorID,
		Action:   "game_updated",
		Entity:   "game",
		EntityID: &id,
	})

	return uc.repo.Get(ctx, id)
}

// ======================================================
// DELETE
// ======================================================

type DeleteGame struct {
	repo  domain.Repository
	cache domain.Cache
	audit audit.Recorder
}

func NewDeleteGame(repo domain.Repository, cache domain.Cache, audit audit.Recorder) *DeleteGame {
	return &DeleteGame{repo: repo, cache: cache, audit: audit}
}

// Execute remove o jogo com suas avaliações e itens de compra.
func (uc *DeleteGame) Execute(ctx context.Context, id, actorID uint) error {
	if err := uc.repo.DeleteGameCascade(ctx, id); err != nil {
		return err
	}

	uc.cache.Invalidate(ctx, id)
	uc.audit.Record(ctx, audit.Event{
		UserID:   &actorID,
		Action:   "game_deleted",
		Entity:   "game",
		EntityID: &id,
	})
	return nil
}

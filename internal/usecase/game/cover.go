package game

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/AllanOliveira2022/GameZone-sub000/internal/audit"
	domain "github.com/AllanOliveira2022/GameZone-sub000/internal/domain/game"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/httperr"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/imaging"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/models"
)

type UploadCover struct {
	repo  domain.Repository
	store domain.CoverStore
	cache domain.Cache
	audit audit.Recorder
}

func NewUploadCover(
	repo domain.Repository,
	store domain.CoverStore,
	cache domain.Cache,
	audit audit.Recorder,
) *UploadCover {
	return &UploadCover{
		repo:  repo,
		store: store,
		cache: cache,
		audit: audit,
	}
}

func CoverKey(gameID uint) string {
	return fmt.Sprintf("games/%d/%s.webp", gameID, uuid.NewString())
}

func (uc *UploadCover) Execute(
	ctx context.Context,
	gameID uint,
	actorID uint,
	image io.Reader,
) (*models.Game, error) {

	if _, err := uc.repo.Get(ctx, gameID); err != nil {
		return nil, err
	}

	encoded, err := imaging.Cover(image, imaging.MaxCoverWidth)
	if err != nil {
		if errors.Is(err, imaging.ErrUnsupportedImage) {
			return nil, httperr.ErrValidation("unsupported_image", "Envie uma imagem jpeg, png ou webp.")
		}
		return nil, err
	}

	url, err := uc.store.Put(ctx, CoverKey(gameID), bytes.NewReader(encoded), int64(len(encoded)), imaging.ContentType)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateCover(ctx, gameID, url); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, gameID)
	uc.audit.Record(ctx, audit.Event{
		UserID:   &actorID,
		Action:   "game_cover_uploaded",
		Entity:   "game",
		EntityID: &gameID,
		Metadata: map[string]any{"url": url},
	})

	return uc.repo.Get(ctx, gameID)
}

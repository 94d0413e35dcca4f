package catalog

import (
	"context"
	"log/slog"
	"strings"

	"github.com/AllanOliveira2022/GameZone-sub000/internal/audit"
	domain "github.com/AllanOliveira2022/GameZone-sub000/internal/domain/catalog"
	gameDomain "github.com/AllanOliveira2022/GameZone-sub000/internal/domain/game"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/dto"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/httperr"
)

// Service implementa o CRUD de gênero, plataforma e desenvolvedora. Jogos
// em cache embutem o registro, então toda escrita invalida os afetados.
type Service[T domain.Entity] struct {
	repo  domain.Repository[T]
	rules domain.Rules[T]
	games gameDomain.Cache
	audit audit.Recorder
}

func NewService[T domain.Entity](
	repo domain.Repository[T],
	rules domain.Rules[T],
	games gameDomain.Cache,
	audit audit.Recorder,
) *Service[T] {
	return &Service[T]{
		repo:  repo,
		rules: rules,
		games: games,
		audit: audit,
	}
}

func (s *Service[T]) Entity() string {
	return s.rules.Name
}

func (s *Service[T]) Create(ctx context.Context, actorID uint, e *T) (*T, error) {
	domain.SetID(e, 0)

	if err := s.validate(ctx, e, 0); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}

	s.record(ctx, actorID, "created", domain.IDOf(e))
	return e, nil
}

// Update substitui os campos editáveis do registro id pelos de e.
func (s *Service[T]) Update(ctx context.Context, actorID, id uint, e *T) (*T, error) {
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	copyEditable(current, e)

	if err := s.validate(ctx, current, id); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, current); err != nil {
		return nil, err
	}

	ids, err := s.repo.GameIDs(ctx, id)
	if err != nil {
		slog.WarnContext(ctx, "game cache not invalidated",
			"entity", s.rules.Name,
			"id", id,
			"error", err,
		)
	}
	s.invalidate(ctx, ids)

	s.record(ctx, actorID, "updated", id)
	return current, nil
}

func (s *Service[T]) Get(ctx context.Context, id uint) (*T, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service[T]) List(ctx context.Context, page dto.PageParams) (dto.Page[T], error) {
	items, total, err := s.repo.List(ctx, page)
	if err != nil {
		return dto.Page[T]{}, err
	}
	return dto.NewPage(items, total, page), nil
}

// Delete solta os jogos que apontam para o registro e depois o apaga.
func (s *Service[T]) Delete(ctx context.Context, actorID, id uint) error {
	detached, err := s.repo.DeleteDetachingGames(ctx, id)
	if err != nil {
		return err
	}
	s.invalidate(ctx, detached)
	s.record(ctx, actorID, "deleted", id)
	return nil
}

func (s *Service[T]) validate(ctx context.Context, e *T, exceptID uint) error {
	if err := s.rules.Validate(e); err != nil {
		return err
	}
	if !s.rules.UniqueName {
		return nil
	}

	taken, err := s.repo.NameTaken(ctx, strings.TrimSpace(domain.NameOf(e)), exceptID)
	if err != nil {
		return err
	}
	if taken {
		return httperr.ErrConflict(s.rules.Name+"_already_exists", "Já existe um registro com esse nome.")
	}
	return nil
}

func (s *Service[T]) invalidate(ctx context.Context, gameIDs []uint) {
	for _, id := range gameIDs {
		s.games.Invalidate(ctx, id)
	}
}

func (s *Service[T]) record(ctx context.Context, actorID uint, verb string, id uint) {
	s.audit.Record(ctx, audit.Event{
		UserID:   &actorID,
		Action:   s.rules.Name + "_" + verb,
		Entity:   s.rules.Name,
		EntityID: &id,
	})
}

// copyEditable mantém ID e carimbos de current e copia o resto de src.
func copyEditable[T domain.Entity](current, src *T) {
	id := domain.IDOf(current)
	created := createdAt(current)

	*current = *src

	domain.SetID(current, id)
	setCreatedAt(current, created)
}

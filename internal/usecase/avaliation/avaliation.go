package avaliation

import (
	"context"

	"github.com/AllanOliveira2022/GameZone-sub000/internal/audit"
	domain "github.com/AllanOliveira2022/GameZone-sub000/internal/domain/avaliation"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/dto"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/httperr"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateInput struct {
	RequesterID uint
	IsAdmin     bool

	// UserID só vale para admin; para os demais o autor é quem está logado.
	UserID  uint
	GameID  uint
	Score   int
	Comment string
}

type UpdateInput struct {
	RequesterID uint
	IsAdmin     bool

	Score   *int
	Comment *string
}

// ======================================================
// SERVICE
// ======================================================

type Service struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewService(repo domain.Repository, audit audit.Recorder) *Service {
	return &Service{repo: repo, audit: audit}
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*models.Avaliation, error) {
	userID := in.RequesterID
	if in.IsAdmin && in.UserID != 0 {
		userID = in.UserID
	}

	if in.GameID == 0 {
		return nil, httperr.ErrValidation("game_id_required", "gameId é obrigatório.")
	}
	if err := domain.ValidateScore(in.Score); err != nil {
		return nil, err
	}
	if err := domain.ValidateComment(in.Comment); err != nil {
		return nil, err
	}

	if err := s.checkRefs(ctx, userID, in.GameID); err != nil {
		return nil, err
	}

	a := &models.Avaliation{
		UserID:  userID,
		GameID:  in.GameID,
		Score:   in.Score,
		Comment: in.Comment,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, audit.Event{
		UserID:   &in.RequesterID,
		Action:   "avaliation_created",
		Entity:   "avaliation",
		EntityID: &a.ID,
		Metadata: map[string]any{"gameId": a.GameID, "score": a.Score},
	})

	return a, nil
}

func (s *Service) Update(ctx context.Context, id uint, in UpdateInput) (*models.Avaliation, error) {
	a, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !in.IsAdmin && a.UserID != in.RequesterID {
		return nil, httperr.ErrForbidden("avaliation_forbidden")
	}

	if in.Score != nil {
		if err := domain.ValidateScore(*in.Score); err != nil {
			return nil, err
		}
		a.Score = *in.Score
	}
	if in.Comment != nil {
		if err := domain.ValidateComment(*in.Comment); err != nil {
			return nil, err
		}
		a.Comment = *in.Comment
	}

	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, audit.Event{
		UserID:   &in.RequesterID,
		Action:   "avaliation_updated",
		Entity:   "avaliation",
		EntityID: &a.ID,
	})
	return a, nil
}

func (s *Service) Delete(ctx context.Context, id, requesterID uint, isAdmin bool) error {
	a, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if !isAdmin && a.UserID != requesterID {
		return httperr.ErrForbidden("avaliation_forbidden")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.audit.Record(ctx, audit.Event{
		UserID:   &requesterID,
		Action:   "avaliation_deleted",
		Entity:   "avaliation",
		EntityID: &id,
	})
	return nil
}

func (s *Service) Get(ctx context.Context, id uint) (*models.Avaliation, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(
	ctx context.Context,
	f domain.Filter,
	page dto.PageParams,
) (dto.Page[models.Avaliation], error) {

	list, total, err := s.repo.List(ctx, f, page)
	if err != nil {
		return dto.Page[models.Avaliation]{}, err
	}
	return dto.NewPage(list, total, page), nil
}

func (s *Service) checkRefs(ctx context.Context, userID, gameID uint) error {
	ok, err := s.repo.UserExists(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return httperr.ErrValidation("user_not_found", "Usuário informado não existe.")
	}

	ok, err = s.repo.GameExists(ctx, gameID)
	if err != nil {
		return err
	}
	if !ok {
		return httperr.ErrValidation("game_not_found", "Jogo informado não existe.")
	}
	return nil
}

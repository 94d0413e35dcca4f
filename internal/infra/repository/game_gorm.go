package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/AllanOliveira2022/GameZone-sub000/internal/domain/game"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/dto"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/httperr"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/models"
)

var _ domain.Repository = (*GameGormRepository)(nil)

type GameGormRepository struct {
	db *gorm.DB
}

func NewGameGormRepository(db *gorm.DB) *GameGormRepository {
	return &GameGormRepository{db: db}
}

func (r *GameGormRepository) Create(ctx context.Context, g *models.Game) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(g).Error, "game")
}

func (r *GameGormRepository) Update(ctx context.Context, g *models.Game) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Save(g).Error, "game")
}

func (r *GameGormRepository) Get(ctx context.Context, id uint) (*models.Game, error) {
	var g models.Game
	if err := r.db.WithContext(ctx).
		Preload("Genre").
		Preload("Platform").
		Preload("Developer").
		First(&g, id).Error; err != nil {
		return nil, translate(err, "game")
	}
	return &g, nil
}

func (r *GameGormRepository) List(
	ctx context.Context,
	f domain.Filter,
	page dto.PageParams,
) ([]models.Game, int64, error) {

	q := r.db.WithContext(ctx).Model(&models.Game{})

	// --------------------------------------------------
	// Filtros opcionais (AND)
	// --------------------------------------------------
	if f.GenreID != nil {
		q = q.Where("genre_id = ?", *f.GenreID)
	}
	if f.PlatformID != nil {
		q = q.Where("platform_id = ?", *f.PlatformID)
	}
	if f.DeveloperID != nil {
		q = q.Where("developer_id = ?", *f.DeveloperID)
	}
	if f.MinPrice != nil {
		q = q.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price <= ?", *f.MaxPrice)
	}
	if f.Query != "" {
		q = q.Where("name ILIKE ?", "%"+f.Query+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, translate(err, "game")
	}

	var games []models.Game
	if err := q.
		Preload("Genre").
		Preload("Platform").
		Preload("Developer").
		Order("created_at DESC, id DESC").
		Limit(page.Limit).
		Offset(page.Offset()).
		Find(&games).Error; err != nil {
		return nil, 0, translate(err, "game")
	}
	return games, total, nil
}

// DeleteGameCascade: avaliações → itens de compra → jogo. As compras ficam
// com o preço histórico.
func (r *GameGormRepository) DeleteGameCascade(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("game_id = ?", id).Delete(&models.Avaliation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("game_id = ?", id).Delete(&models.ItemJogo{}).Error; err != nil {
			return err
		}
		return notFoundIfNoRows(tx.Delete(&models.Game{}, id), "game")
	})
	return translate(err, "game")
}

func (r *GameGormRepository) UpdateCover(ctx context.Context, id uint, url string) error {
	res := r.db.WithContext(ctx).
		Model(&models.Game{}).
		Where("id = ?", id).
		Update("cover_url", url)
	return translate(notFoundIfNoRows(res, "game"), "game")
}

func (r *GameGormRepository) ReferencesExist(ctx context.Context, g *models.Game) error {
	refs := []struct {
		id     *uint
		model  any
		entity string
	}{
		{g.GenreID, &models.Genre{}, "genre"},
		{g.PlatformID, &models.Platform{}, "platform"},
		{g.DeveloperID, &models.Developer{}, "developer"},
	}

	for _, ref := range refs {
		if ref.id == nil {
			continue
		}
		var count int64
		if err := r.db.WithContext(ctx).
			Model(ref.model).
			Where("id = ?", *ref.id).
			Count(&count).Error; err != nil {
			return translate(err, ref.entity)
		}
		if count == 0 {
			return httperr.ErrValidation(ref.entity+"_not_found", "Referência inexistente: "+ref.entity+".")
		}
	}
	return nil
}

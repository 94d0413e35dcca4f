package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/AllanOliveira2022/GameZone-sub000/internal/domain/avaliation"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/dto"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/models"
)

var _ domain.Repository = (*AvaliationGormRepository)(nil)

type AvaliationGormRepository struct {
	db *gorm.DB
}

func NewAvaliationGormRepository(db *gorm.DB) *AvaliationGormRepository {
	return &AvaliationGormRepository{db: db}
}

func (r *AvaliationGormRepository) Create(ctx context.Context, a *models.Avaliation) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(a).Error, "avaliation")
}

func (r *AvaliationGormRepository) Update(ctx context.Context, a *models.Avaliation) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Save(a).Error, "avaliation")
}

func (r *AvaliationGormRepository) Get(ctx context.Context, id uint) (*models.Avaliation, error) {
	var a models.Avaliation
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Game").
		First(&a, id).Error; err != nil {
		return nil, translate(err, "avaliation")
	}
	return &a, nil
}

func (r *AvaliationGormRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Avaliation{}, id)
	return translate(notFoundIfNoRows(res, "avaliation"), "avaliation")
}

func (r *AvaliationGormRepository) List(
	ctx context.Context,
	f domain.Filter,
	page dto.PageParams,
) ([]models.Avaliation, int64, error) {

	q := r.db.WithContext(ctx).Model(&models.Avaliation{})
	if f.UserID != nil {
		q = q.Where("user_id = ?", *f.UserID)
	}
	if f.GameID != nil {
		q = q.Where("game_id = ?", *f.GameID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, translate(err, "avaliation")
	}

	var list []models.Avaliation
	if err := q.
		Preload("User").
		Order("created_at DESC, id DESC").
		Limit(page.Limit).
		Offset(page.Offset()).
		Find(&list).Error; err != nil {
		return nil, 0, translate(err, "avaliation")
	}
	return list, total, nil
}

func (r *AvaliationGormRepository) UserExists(ctx context.Context, id uint) (bool, error) {
	return exists(ctx, r.db, &models.User{}, id, "user")
}

func (r *AvaliationGormRepository) GameExists(ctx context.Context, id uint) (bool, error) {
	return exists(ctx, r.db, &models.Game{}, id, "game")
}

func exists(ctx context.Context, db *gorm.DB, model any, id uint, entity string) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).
		Model(model).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, translate(err, entity)
	}
	return count > 0, nil
}

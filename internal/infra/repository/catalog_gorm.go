package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/AllanOliveira2022/GameZone-sub000/internal/domain/catalog"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/dto"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/models"
)

var (
	_ catalog.Repository[models.Genre]     = (*CatalogGormRepository[models.Genre])(nil)
	_ catalog.Repository[models.Platform]  = (*CatalogGormRepository[models.Platform])(nil)
	_ catalog.Repository[models.Developer] = (*CatalogGormRepository[models.Developer])(nil)
)

// CatalogGormRepository serve gênero, plataforma e desenvolvedora; fkColumn é
// a coluna em games que aponta para a entidade.
type CatalogGormRepository[T catalog.Entity] struct {
	db       *gorm.DB
	entity   string
	fkColumn string
}

func NewGenreGormRepository(db *gorm.DB) *CatalogGormRepository[models.Genre] {
	return &CatalogGormRepository[models.Genre]{db: db, entity: "genre", fkColumn: "genre_id"}
}

func NewPlatformGormRepository(db *gorm.DB) *CatalogGormRepository[models.Platform] {
	return &CatalogGormRepository[models.Platform]{db: db, entity: "platform", fkColumn: "platform_id"}
}

func NewDeveloperGormRepository(db *gorm.DB) *CatalogGormRepository[models.Developer] {
	return &CatalogGormRepository[models.Developer]{db: db, entity: "developer", fkColumn: "developer_id"}
}

func (r *CatalogGormRepository[T]) Create(ctx context.Context, e *T) error {
	return translate(r.db.WithContext(ctx).Create(e).Error, r.entity)
}

func (r *CatalogGormRepository[T]) Update(ctx context.Context, e *T) error {
	return translate(r.db.WithContext(ctx).Save(e).Error, r.entity)
}

func (r *CatalogGormRepository[T]) Get(ctx context.Context, id uint) (*T, error) {
	var e T
	if err := r.db.WithContext(ctx).First(&e, id).Error; err != nil {
		return nil, translate(err, r.entity)
	}
	return &e, nil
}

func (r *CatalogGormRepository[T]) List(
	ctx context.Context,
	page dto.PageParams,
) ([]T, int64, error) {

	q := r.db.WithContext(ctx).Model(new(T))

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, translate(err, r.entity)
	}

	var items []T
	if err := q.
		Order("created_at DESC, id DESC").
		Limit(page.Limit).
		Offset(page.Offset()).
		Find(&items).Error; err != nil {
		return nil, 0, translate(err, r.entity)
	}
	return items, total, nil
}

func (r *CatalogGormRepository[T]) DeleteDetachingGames(ctx context.Context, id uint) ([]uint, error) {
	var detached []uint

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Model(&models.Game{}).
			Where(r.fkColumn+" = ?", id).
			Order("id").
			Pluck("id", &detached).Error; err != nil {
			return err
		}
		if err := tx.
			Model(&models.Game{}).
			Where(r.fkColumn+" = ?", id).
			Update(r.fkColumn, nil).Error; err != nil {
			return err
		}
		return notFoundIfNoRows(tx.Delete(new(T), id), r.entity)
	})
	if err != nil {
		return nil, translate(err, r.entity)
	}
	return detached, nil
}

func (r *CatalogGormRepository[T]) GameIDs(ctx context.Context, id uint) ([]uint, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.Game{}).
		Where(r.fkColumn+" = ?", id).
		Order("id").
		Pluck("id", &ids).Error; err != nil {
		return nil, translate(err, r.entity)
	}
	return ids, nil
}

func (r *CatalogGormRepository[T]) NameTaken(
	ctx context.Context,
	name string,
	exceptID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(new(T)).
		Where("LOWER(name) = LOWER(?) AND id <> ?", name, exceptID).
		Count(&count).Error; err != nil {
		return false, translate(err, r.entity)
	}
	return count > 0, nil
}

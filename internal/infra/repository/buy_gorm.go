package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/AllanOliveira2022/GameZone-sub000/internal/domain/buy"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/dto"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/models"
)

var _ domain.Repository = (*BuyGormRepository)(nil)

type BuyGormRepository struct {
	db *gorm.DB
}

func NewBuyGormRepository(db *gorm.DB) *BuyGormRepository {
	return &BuyGormRepository{db: db}
}

// --------------------------------------------------
// Referências
// --------------------------------------------------

func (r *BuyGormRepository) UserExists(
	ctx context.Context,
	userID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Count(&count).Error; err != nil {
		return false, translate(err, "user")
	}
	return count > 0, nil
}

func (r *BuyGormRepository) FindExistingGameIDs(
	ctx context.Context,
	ids []uint,
) ([]uint, error) {

	found := []uint{}
	if len(ids) == 0 {
		return found, nil
	}

	if err := r.db.WithContext(ctx).
		Model(&models.Game{}).
		Where("id IN ?", ids).
		Pluck("id", &found).Error; err != nil {
		return nil, translate(err, "game")
	}
	return found, nil
}

// --------------------------------------------------
// Escrita
// --------------------------------------------------

func (r *BuyGormRepository) CreateBuy(
	ctx context.Context,
	b *models.Buy,
) error {

	items := b.Items

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(b).Error; err != nil {
			return err
		}
		return insertItems(tx, b.ID, items)
	})
	if err != nil {
		b.ID = 0
		return translate(err, "buy")
	}

	b.Items = items
	return nil
}

func (r *BuyGormRepository) UpdateBuy(
	ctx context.Context,
	b *models.Buy,
	replaceItems bool,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Buy{ID: b.ID}).Updates(map[string]any{
			"date_buy": b.DateBuy,
			"price":    b.Price,
		})
		if err := notFoundIfNoRows(res, "buy"); err != nil {
			return err
		}

		if !replaceItems {
			return nil
		}

		if err := tx.
			Where("buy_id = ?", b.ID).
			Delete(&models.ItemJogo{}).Error; err != nil {
			return err
		}
		return insertItems(tx, b.ID, b.Items)
	})
	return translate(err, "buy")
}

func (r *BuyGormRepository) DeleteBuyCascade(
	ctx context.Context,
	buyID uint,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("buy_id = ?", buyID).
			Delete(&models.ItemJogo{}).Error; err != nil {
			return err
		}
		return notFoundIfNoRows(tx.Delete(&models.Buy{}, buyID), "buy")
	})
	return translate(err, "buy")
}

func insertItems(tx *gorm.DB, buyID uint, items []models.ItemJogo) error {
	for i := range items {
		items[i].ID = 0
		items[i].BuyID = buyID
	}
	return tx.Omit(clause.Associations).Create(&items).Error
}

// --------------------------------------------------
// Leitura
// --------------------------------------------------

func (r *BuyGormRepository) GetBuy(
	ctx context.Context,
	buyID uint,
) (*models.Buy, error) {

	var b models.Buy
	if err := r.db.WithContext(ctx).First(&b, buyID).Error; err != nil {
		return nil, translate(err, "buy")
	}
	return &b, nil
}

// GetBuyDetailed carrega usuário, itens, jogo de cada item e as referências do jogo.
func (r *BuyGormRepository) GetBuyDetailed(
	ctx context.Context,
	buyID uint,
) (*models.Buy, error) {

	var b models.Buy
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("item_jogos.id ASC")
		}).
		Preload("Items.Game.Genre").
		Preload("Items.Game.Platform").
		Preload("Items.Game.Developer").
		First(&b, buyID).Error; err != nil {
		return nil, translate(err, "buy")
	}
	return &b, nil
}

func (r *BuyGormRepository) ListBuys(
	ctx context.Context,
	userID *uint,
	page dto.PageParams,
) ([]models.Buy, int64, error) {

	q := r.db.WithContext(ctx).Model(&models.Buy{})
	if userID != nil {
		q = q.Where("user_id = ?", *userID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, translate(err, "buy")
	}

	var buys []models.Buy
	if err := q.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("item_jogos.id ASC")
		}).
		Order("created_at DESC, id DESC").
		Limit(page.Limit).
		Offset(page.Offset()).
		Find(&buys).Error; err != nil {
		return nil, 0, translate(err, "buy")
	}

	return buys, total, nil
}

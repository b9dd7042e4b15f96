package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/dkotelnikov/shop-backend/internal/models"
)

// CreateProduct assigns the next id and inserts in one transaction so two
// concurrent creators cannot compute the same id.
func (r *GormRepo) CreateProduct(ctx context.Context, p *models.Product) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxID int64
		if err := tx.Model(&models.Product{}).
			Select("COALESCE(MAX(id), 0)").
			Scan(&maxID).Error; err != nil {
			return err
		}
		p.ID = uint(maxID) + 1
		return tx.Create(p).Error
	})
}

// DeleteProduct succeeds silently when the id does not exist.
func (r *GormRepo) DeleteProduct(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Delete(&models.Product{}, id).Error
}

func (r *GormRepo) ListProducts(ctx context.Context) ([]models.Product, error) {
	var items []models.Product
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) ProductExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Model(&models.Product{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/dkotelnikov/shop-backend/internal/models"
)

func (r *GormRepo) CreateUser(ctx context.Context, u *models.User) error {
	return r.DB.WithContext(ctx).Create(u).Error
}

// UserByEmail matches the stored email exactly (case-sensitive). A missing
// user is an absent result, not an error.
func (r *GormRepo) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) UserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := r.DB.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// MutateCart rewrites the whole cart under one transaction. The legacy
// read-modify-write happened across two requests to the store, so two
// concurrent mutations for the same user could silently drop one update.
func (r *GormRepo) MutateCart(ctx context.Context, userID uint, fn func(models.CartData) models.CartData) (models.CartData, error) {
	var out models.CartData
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			return err
		}
		out = fn(user.Cart)
		return tx.Model(&user).Update("cart", out).Error
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

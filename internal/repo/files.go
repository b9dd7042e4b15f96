package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/dkotelnikov/shop-backend/internal/models"
)

func (r *GormRepo) CreateFile(ctx context.Context, f *models.UploadedFile) error {
	return r.DB.WithContext(ctx).Create(f).Error
}

func (r *GormRepo) FileByName(ctx context.Context, name string) (*models.UploadedFile, error) {
	var file models.UploadedFile
	err := r.DB.WithContext(ctx).Where("name = ?", name).First(&file).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &file, nil
}

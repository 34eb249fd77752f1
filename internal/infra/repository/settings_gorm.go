package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type SettingsGormRepository struct {
	db *gorm.DB
}

// DI
func NewSettingsGormRepository(db *gorm.DB) *SettingsGormRepository {
	return &SettingsGormRepository{db: db}
}

func (r *SettingsGormRepository) FindByUserID(ctx context.Context, userID string) (model.Settings, error) {
	var s model.Settings

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&s).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Settings{}, repo.ErrNotFound
		}
		return model.Settings{}, err
	}

	return s, nil
}

// あれば更新、なければ作成。
func (r *SettingsGormRepository) Save(ctx context.Context, s model.Settings) error {
	return r.db.WithContext(ctx).Save(&s).Error
}

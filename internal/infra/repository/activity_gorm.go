package repository

import (
	"context"

	"app/internal/domain/model"

	"gorm.io/gorm"
)

type ActivityGormRepository struct {
	db *gorm.DB
}

// DI
func NewActivityGormRepository(db *gorm.DB) *ActivityGormRepository {
	return &ActivityGormRepository{db: db}
}

func (r *ActivityGormRepository) Create(ctx context.Context, a model.Activity) error {
	if err := r.db.WithContext(ctx).Create(&a).Error; err != nil {
		return err
	}
	return nil
}

// 新しい順に直近limit件。
func (r *ActivityGormRepository) ListRecent(ctx context.Context, limit int) ([]model.Activity, error) {
	var activities []model.Activity

	err := r.db.WithContext(ctx).
		Order("created_at desc").
		Limit(limit).
		Find(&activities).Error
	if err != nil {
		return []model.Activity{}, err
	}

	return activities, nil
}

package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type ChannelGormRepository struct {
	db *gorm.DB
}

// DI
func NewChannelGormRepository(db *gorm.DB) *ChannelGormRepository {
	return &ChannelGormRepository{db: db}
}

// 登録順（新しい順）で全チャンネルを返す。
func (r *ChannelGormRepository) List(ctx context.Context) ([]model.Channel, error) {
	var channels []model.Channel

	err := r.db.WithContext(ctx).
		Order("created_at desc").
		Find(&channels).Error
	if err != nil {
		return []model.Channel{}, err
	}

	return channels, nil
}

func (r *ChannelGormRepository) FindByID(ctx context.Context, id string) (model.Channel, error) {
	var c model.Channel

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&c).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Channel{}, repo.ErrNotFound
		}
		return model.Channel{}, err
	}

	return c, nil
}

// URL重複チェック用。
func (r *ChannelGormRepository) FindByURL(ctx context.Context, url string) (model.Channel, error) {
	var c model.Channel

	err := r.db.WithContext(ctx).
		Where("url = ?", url).
		First(&c).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Channel{}, repo.ErrNotFound
		}
		return model.Channel{}, err
	}

	return c, nil
}

func (r *ChannelGormRepository) Create(ctx context.Context, c model.Channel) (model.Channel, error) {
	if err := r.db.WithContext(ctx).Create(&c).Error; err != nil {
		return model.Channel{}, err
	}
	return c, nil
}

func (r *ChannelGormRepository) Update(ctx context.Context, c model.Channel) error {
	res := r.db.WithContext(ctx).
		Model(&model.Channel{}).
		Where("id = ?", c.ID).
		Updates(map[string]interface{}{
			"name":             c.Name,
			"handle":           c.Handle,
			"avatar":           c.Avatar,
			"subscriber_count": c.SubscriberCount,
			"total_videos":     c.TotalVideos,
			"videos_analyzed":  c.VideosAnalyzed,
			"last_sync":        c.LastSync,
			"status":           c.Status,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ChannelGormRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Channel{})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ChannelGormRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Channel{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

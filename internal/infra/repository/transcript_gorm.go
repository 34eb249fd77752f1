package repository

import (
	"context"
	"errors"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type TranscriptGormRepository struct {
	db *gorm.DB
}

// DI
func NewTranscriptGormRepository(db *gorm.DB) *TranscriptGormRepository {
	return &TranscriptGormRepository{db: db}
}

func (r *TranscriptGormRepository) List(ctx context.Context, q repo.TranscriptListQuery) ([]model.Transcript, int64, error) {
	var transcripts []model.Transcript
	var total int64

	tx := r.db.WithContext(ctx).Model(&model.Transcript{})

	if q.ChannelID != "" {
		tx = tx.Where("channel_id = ?", q.ChannelID)
	}
	if q.Status != "" {
		tx = tx.Where("status = ?", q.Status)
	}

	// search は動画タイトルと本文を対象
	if strings.TrimSpace(q.Search) != "" {
		like := "%" + strings.TrimSpace(q.Search) + "%"
		tx = tx.Where("video_title ILIKE ? OR content ILIKE ?", like, like)
	}

	if err := tx.Count(&total).Error; err != nil {
		return []model.Transcript{}, 0, err
	}

	offset := (q.Page - 1) * q.Limit
	err := tx.Order("created_at desc").Order("id desc").
		Offset(offset).Limit(q.Limit).
		Find(&transcripts).Error
	if err != nil {
		return []model.Transcript{}, 0, err
	}

	return transcripts, total, nil
}

func (r *TranscriptGormRepository) FindByID(ctx context.Context, id string) (model.Transcript, error) {
	var t model.Transcript

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&t).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Transcript{}, repo.ErrNotFound
		}
		return model.Transcript{}, err
	}

	return t, nil
}

func (r *TranscriptGormRepository) FindByVideoID(ctx context.Context, videoID string) (model.Transcript, error) {
	var t model.Transcript

	err := r.db.WithContext(ctx).
		Where("video_id = ?", videoID).
		First(&t).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Transcript{}, repo.ErrNotFound
		}
		return model.Transcript{}, err
	}

	return t, nil
}

func (r *TranscriptGormRepository) Create(ctx context.Context, t model.Transcript) (model.Transcript, error) {
	if err := r.db.WithContext(ctx).Create(&t).Error; err != nil {
		return model.Transcript{}, err
	}
	return t, nil
}

func (r *TranscriptGormRepository) Update(ctx context.Context, t model.Transcript) error {
	// serializer:json を効かせるため、map更新ではなく構造体更新にする
	res := r.db.WithContext(ctx).
		Model(&model.Transcript{ID: t.ID}).
		Select("content", "segments", "status").
		Updates(&t)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *TranscriptGormRepository) DeleteByChannelID(ctx context.Context, channelID string) error {
	return r.db.WithContext(ctx).
		Where("channel_id = ?", channelID).
		Delete(&model.Transcript{}).Error
}

func (r *TranscriptGormRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Transcript{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

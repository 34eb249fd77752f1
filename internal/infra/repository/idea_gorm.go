package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type IdeaGormRepository struct {
	db *gorm.DB
}

// DI
func NewIdeaGormRepository(db *gorm.DB) *IdeaGormRepository {
	return &IdeaGormRepository{db: db}
}

func (r *IdeaGormRepository) List(ctx context.Context, q repo.IdeaListQuery) ([]model.Idea, int64, error) {
	var ideas []model.Idea
	var total int64

	tx := r.db.WithContext(ctx).Model(&model.Idea{})

	if q.VideoID != "" {
		tx = tx.Where("video_id = ?", q.VideoID)
	}
	if q.ChannelID != "" {
		tx = tx.Where("channel_id = ?", q.ChannelID)
	}
	if q.Category != "" {
		tx = tx.Where("category = ?", q.Category)
	}

	// search はタイトルと説明を対象
	if strings.TrimSpace(q.Search) != "" {
		like := "%" + strings.TrimSpace(q.Search) + "%"
		tx = tx.Where("title ILIKE ? OR description ILIKE ?", like, like)
	}

	if err := tx.Count(&total).Error; err != nil {
		return []model.Idea{}, 0, err
	}

	offset := (q.Page - 1) * q.Limit
	err := tx.Order("created_at desc").Order("id desc").
		Offset(offset).Limit(q.Limit).
		Find(&ideas).Error
	if err != nil {
		return []model.Idea{}, 0, err
	}

	return ideas, total, nil
}

func (r *IdeaGormRepository) FindByID(ctx context.Context, id string) (model.Idea, error) {
	var i model.Idea

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&i).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Idea{}, repo.ErrNotFound
		}
		return model.Idea{}, err
	}

	return i, nil
}

func (r *IdeaGormRepository) Create(ctx context.Context, i model.Idea) (model.Idea, error) {
	if err := r.db.WithContext(ctx).Create(&i).Error; err != nil {
		return model.Idea{}, err
	}
	return i, nil
}

func (r *IdeaGormRepository) UpdateRating(ctx context.Context, id string, rating int) error {
	res := r.db.WithContext(ctx).
		Model(&model.Idea{}).
		Where("id = ?", id).
		UpdateColumn("rating", rating)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *IdeaGormRepository) UpdateFavorite(ctx context.Context, id string, favorite bool) error {
	res := r.db.WithContext(ctx).
		Model(&model.Idea{}).
		Where("id = ?", id).
		UpdateColumn("is_favorite", favorite)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *IdeaGormRepository) DeleteByChannelID(ctx context.Context, channelID string) error {
	return r.db.WithContext(ctx).
		Where("channel_id = ?", channelID).
		Delete(&model.Idea{}).Error
}

func (r *IdeaGormRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Idea{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *IdeaGormRepository) CountByChannelID(ctx context.Context, channelID string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Idea{}).
		Where("channel_id = ?", channelID).
		Count(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

// カテゴリ別の件数（多い順）。
func (r *IdeaGormRepository) CountByCategory(ctx context.Context) ([]repo.CategoryCount, error) {
	var rows []repo.CategoryCount

	err := r.db.WithContext(ctx).Model(&model.Idea{}).
		Select("category, count(*) as count").
		Group("category").
		Order("count desc").
		Scan(&rows).Error
	if err != nil {
		return []repo.CategoryCount{}, err
	}

	return rows, nil
}

// チャンネル内で使われたタグの上位limit件。
// tagsはjsonb配列なので展開してから数える。
func (r *IdeaGormRepository) TopTagsByChannel(ctx context.Context, channelID string, limit int) ([]repo.TagCount, error) {
	var rows []repo.TagCount

	err := r.db.WithContext(ctx).Raw(`
		SELECT tag, count(*) AS count
		FROM ideas, jsonb_array_elements_text(tags) AS tag
		WHERE channel_id = ?
		GROUP BY tag
		ORDER BY count DESC, tag ASC
		LIMIT ?`, channelID, limit).
		Scan(&rows).Error
	if err != nil {
		return []repo.TagCount{}, err
	}

	return rows, nil
}

// since以降の日別生成件数。
func (r *IdeaGormRepository) CountPerDay(ctx context.Context, since time.Time) ([]repo.DateCount, error) {
	var rows []struct {
		Date  time.Time
		Count int64
	}

	err := r.db.WithContext(ctx).Model(&model.Idea{}).
		Select("date_trunc('day', created_at) as date, count(*) as count").
		Where("created_at >= ?", since).
		Group("date_trunc('day', created_at)").
		Order("date asc").
		Scan(&rows).Error
	if err != nil {
		return []repo.DateCount{}, err
	}

	counts := make([]repo.DateCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, repo.DateCount{
			Date:  row.Date.Format("2006-01-02"),
			Count: row.Count,
		})
	}

	return counts, nil
}

// チャンネル別の件数（多い順、上位limit件）。
func (r *IdeaGormRepository) CountByChannel(ctx context.Context, limit int) ([]repo.ChannelIdeaCount, error) {
	var rows []repo.ChannelIdeaCount

	err := r.db.WithContext(ctx).Model(&model.Idea{}).
		Select("channel_name, count(*) as count").
		Group("channel_name").
		Order("count desc").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return []repo.ChannelIdeaCount{}, err
	}

	return rows, nil
}

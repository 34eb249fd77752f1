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

type VideoGormRepository struct {
	db *gorm.DB
}

// DI
func NewVideoGormRepository(db *gorm.DB) *VideoGormRepository {
	return &VideoGormRepository{db: db}
}

// 動画を、フィルタ/検索/ページング付きで返す。
func (r *VideoGormRepository) List(ctx context.Context, q repo.VideoListQuery) ([]model.Video, int64, error) {
	var videos []model.Video
	var total int64

	tx := r.db.WithContext(ctx).Model(&model.Video{})

	if q.ChannelID != "" {
		tx = tx.Where("channel_id = ?", q.ChannelID)
	}
	if q.TranscriptStatus != "" {
		tx = tx.Where("transcript_status = ?", q.TranscriptStatus)
	}
	if q.IdeasStatus != "" {
		tx = tx.Where("ideas_status = ?", q.IdeasStatus)
	}

	// search はタイトルと説明を対象
	if strings.TrimSpace(q.Search) != "" {
		like := "%" + strings.TrimSpace(q.Search) + "%"
		tx = tx.Where("title ILIKE ? OR description ILIKE ?", like, like)
	}

	//total（件数）
	if err := tx.Count(&total).Error; err != nil {
		return []model.Video{}, 0, err
	}

	offset := (q.Page - 1) * q.Limit
	err := tx.Order("upload_date desc").Order("id desc").
		Offset(offset).Limit(q.Limit).
		Find(&videos).Error
	if err != nil {
		return []model.Video{}, 0, err
	}

	return videos, total, nil
}

func (r *VideoGormRepository) FindByID(ctx context.Context, id string) (model.Video, error) {
	var v model.Video

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&v).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Video{}, repo.ErrNotFound
		}
		return model.Video{}, err
	}

	return v, nil
}

func (r *VideoGormRepository) Create(ctx context.Context, v model.Video) (model.Video, error) {
	if err := r.db.WithContext(ctx).Create(&v).Error; err != nil {
		return model.Video{}, err
	}
	return v, nil
}

func (r *VideoGormRepository) Update(ctx context.Context, v model.Video) error {
	res := r.db.WithContext(ctx).
		Model(&model.Video{}).
		Where("id = ?", v.ID).
		Updates(map[string]interface{}{
			"transcript_status": v.TranscriptStatus,
			"ideas_status":      v.IdeasStatus,
			"transcript_id":     v.TranscriptID,
			"ideas_count":       v.IdeasCount,
			"views":             v.Views,
			"likes":             v.Likes,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// チャンネル削除時にまとめて消す。
func (r *VideoGormRepository) DeleteByChannelID(ctx context.Context, channelID string) error {
	return r.db.WithContext(ctx).
		Where("channel_id = ?", channelID).
		Delete(&model.Video{}).Error
}

func (r *VideoGormRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Video{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// チャンネル単位の集計（analytics用）。
func (r *VideoGormRepository) StatsByChannel(ctx context.Context, channelID string) (repo.ChannelVideoStats, error) {
	var row struct {
		TotalVideos      int64
		AverageViews     float64
		AverageLikes     float64
		TranscribedCount int64
		FirstUpload      *time.Time
		LastUpload       *time.Time
	}

	err := r.db.WithContext(ctx).Model(&model.Video{}).
		Select(`count(*) as total_videos,
			coalesce(avg(views), 0) as average_views,
			coalesce(avg(likes), 0) as average_likes,
			count(*) filter (where transcript_status = 'completed') as transcribed_count,
			min(upload_date) as first_upload,
			max(upload_date) as last_upload`).
		Where("channel_id = ?", channelID).
		Scan(&row).Error
	if err != nil {
		return repo.ChannelVideoStats{}, err
	}

	stats := repo.ChannelVideoStats{
		TotalVideos:      row.TotalVideos,
		AverageViews:     row.AverageViews,
		AverageLikes:     row.AverageLikes,
		TranscribedCount: row.TranscribedCount,
	}
	if row.FirstUpload != nil {
		stats.FirstUpload = *row.FirstUpload
	}
	if row.LastUpload != nil {
		stats.LastUpload = *row.LastUpload
	}

	return stats, nil
}

// 直近days日の日別views/engagement。
// engagementはlikes/viewsの百分率。
func (r *VideoGormRepository) PerformanceByChannel(ctx context.Context, channelID string, days int) ([]repo.PerformancePoint, error) {
	since := time.Now().AddDate(0, 0, -days)

	var rows []struct {
		Date       time.Time
		Views      int64
		Engagement float64
	}

	err := r.db.WithContext(ctx).Model(&model.Video{}).
		Select(`date_trunc('day', upload_date) as date,
			coalesce(sum(views), 0) as views,
			case when sum(views) > 0
				then round(sum(likes)::numeric / sum(views)::numeric * 100, 1)
				else 0 end as engagement`).
		Where("channel_id = ? AND upload_date >= ?", channelID, since).
		Group("date_trunc('day', upload_date)").
		Order("date asc").
		Scan(&rows).Error
	if err != nil {
		return []repo.PerformancePoint{}, err
	}

	points := make([]repo.PerformancePoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, repo.PerformancePoint{
			Date:       row.Date.Format("2006-01-02"),
			Views:      row.Views,
			Engagement: row.Engagement,
		})
	}

	return points, nil
}

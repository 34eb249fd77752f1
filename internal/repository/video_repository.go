package repository

import (
	"context"
	"time"

	"app/internal/domain/model"
)

// 一覧検索
type VideoListQuery struct {
	Page             int
	Limit            int
	ChannelID        string
	TranscriptStatus string
	IdeasStatus      string
	Search           string
}

// チャンネル単位の集計値（analytics用）。
type ChannelVideoStats struct {
	TotalVideos      int64
	AverageViews     float64
	AverageLikes     float64
	TranscribedCount int64
	FirstUpload      time.Time
	LastUpload       time.Time
}

// 日別のパフォーマンス（views/engagement）。
type PerformancePoint struct {
	Date       string
	Views      int64
	Engagement float64
}

type VideoRepository interface {
	List(ctx context.Context, q VideoListQuery) ([]model.Video, int64, error)
	FindByID(ctx context.Context, id string) (model.Video, error)
	Create(ctx context.Context, v model.Video) (model.Video, error)
	Update(ctx context.Context, v model.Video) error
	DeleteByChannelID(ctx context.Context, channelID string) error
	Count(ctx context.Context) (int64, error)

	StatsByChannel(ctx context.Context, channelID string) (ChannelVideoStats, error)
	PerformanceByChannel(ctx context.Context, channelID string, days int) ([]PerformancePoint, error)
}

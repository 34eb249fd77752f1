package repository

import (
	"context"
	"time"

	"app/internal/domain/model"
)

type IdeaListQuery struct {
	Page      int
	Limit     int
	VideoID   string
	ChannelID string
	Category  string
	Search    string
}

// カテゴリ別の件数（analytics用）。
type CategoryCount struct {
	Category string
	Count    int64
}

// 日別の生成件数。
type DateCount struct {
	Date  string
	Count int64
}

// チャンネル別の件数。
type ChannelIdeaCount struct {
	ChannelName string
	Count       int64
}

// タグ別の件数。
type TagCount struct {
	Tag   string
	Count int64
}

type IdeaRepository interface {
	List(ctx context.Context, q IdeaListQuery) ([]model.Idea, int64, error)
	FindByID(ctx context.Context, id string) (model.Idea, error)
	Create(ctx context.Context, i model.Idea) (model.Idea, error)
	UpdateRating(ctx context.Context, id string, rating int) error
	UpdateFavorite(ctx context.Context, id string, favorite bool) error
	DeleteByChannelID(ctx context.Context, channelID string) error
	Count(ctx context.Context) (int64, error)
	CountByChannelID(ctx context.Context, channelID string) (int64, error)

	CountByCategory(ctx context.Context) ([]CategoryCount, error)
	TopTagsByChannel(ctx context.Context, channelID string, limit int) ([]TagCount, error)
	CountPerDay(ctx context.Context, since time.Time) ([]DateCount, error)
	CountByChannel(ctx context.Context, limit int) ([]ChannelIdeaCount, error)
}

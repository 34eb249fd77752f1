package repository

import (
	"context"

	"app/internal/domain/model"
)

type TranscriptListQuery struct {
	Page      int
	Limit     int
	ChannelID string
	Status    string
	Search    string
}

type TranscriptRepository interface {
	List(ctx context.Context, q TranscriptListQuery) ([]model.Transcript, int64, error)
	FindByID(ctx context.Context, id string) (model.Transcript, error)
	FindByVideoID(ctx context.Context, videoID string) (model.Transcript, error)
	Create(ctx context.Context, t model.Transcript) (model.Transcript, error)
	Update(ctx context.Context, t model.Transcript) error
	DeleteByChannelID(ctx context.Context, channelID string) error
	Count(ctx context.Context) (int64, error)
}

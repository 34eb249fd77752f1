package repository

import (
	"context"

	"app/internal/domain/model"
)

type ChannelRepository interface {
	List(ctx context.Context) ([]model.Channel, error)
	FindByID(ctx context.Context, id string) (model.Channel, error)
	FindByURL(ctx context.Context, url string) (model.Channel, error)
	Create(ctx context.Context, c model.Channel) (model.Channel, error)
	Update(ctx context.Context, c model.Channel) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

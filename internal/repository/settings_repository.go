package repository

import (
	"context"

	"app/internal/domain/model"
)

type SettingsRepository interface {
	FindByUserID(ctx context.Context, userID string) (model.Settings, error)
	Save(ctx context.Context, s model.Settings) error
}

package repository

import (
	"context"

	"app/internal/domain/model"
)

// 操作履歴の保存と直近の取得だけを約束。
type ActivityRepository interface {
	Create(ctx context.Context, a model.Activity) error
	ListRecent(ctx context.Context, limit int) ([]model.Activity, error)
}

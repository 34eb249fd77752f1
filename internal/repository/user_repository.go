package repository

import (
	"context"

	"app/internal/domain/model"
)

// ユーザーの永続化だけを約束。
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	Update(ctx context.Context, user *model.User) error

	// 現在有効なrefresh tokenを差し替える。空文字で失効。
	UpdateRefreshToken(ctx context.Context, id string, token string) error
}

package model

import "time"

// Userはダッシュボード利用者のアカウント。
// RefreshTokenは「現在有効な1本」だけを持つ。
// 新しいtokenを保存すると古いtokenは自動的に無効になる。
type User struct {
	ID           string `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"column:password_hash;not null" json:"-"`
	Name         string `gorm:"type:varchar(255);not null" json:"name"`
	IsActive     bool   `gorm:"not null;default:true" json:"isActive"`

	// 現在有効なrefresh token。空なら未ログイン/ログアウト済み。
	// レスポンスには絶対に含めない。
	RefreshToken string `gorm:"column:refresh_token" json:"-"`

	LastLoginAt *time.Time `json:"lastLoginAt"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

package model

import "time"

// Settingsはユーザーごとの設定値オブジェクト。
// グローバルなミュータブル設定は持たない。
type Settings struct {
	ID     string `gorm:"type:uuid;primaryKey" json:"-"`
	UserID string `gorm:"type:uuid;not null;uniqueIndex" json:"-"`

	AutoSync           bool   `gorm:"not null;default:true" json:"autoSync"`
	SyncIntervalHours  int    `gorm:"not null;default:24" json:"syncIntervalHours"`
	TranscriptLanguage string `gorm:"type:varchar(10);not null;default:'en'" json:"transcriptLanguage"`
	IdeasPerVideo      int    `gorm:"not null;default:8" json:"ideasPerVideo"`
	EmailNotifications bool   `gorm:"not null;default:false" json:"emailNotifications"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

package model

import "time"

// 文字起こし/アイデア生成の進行状態
type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
)

// Videoはチャンネル配下の動画。
// ChannelNameは一覧表示用の非正規化コピー。
type Video struct {
	ID          string `gorm:"type:uuid;primaryKey" json:"id"`
	ChannelID   string `gorm:"type:uuid;not null;index" json:"channelId"`
	ChannelName string `gorm:"type:varchar(255);not null" json:"channelName"`
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Thumbnail   string `json:"thumbnail"`
	Duration    string `gorm:"type:varchar(20)" json:"duration"`
	Views       int64  `gorm:"not null;default:0" json:"views"`
	Likes       int64  `gorm:"not null;default:0" json:"likes"`

	UploadDate time.Time `gorm:"index" json:"uploadDate"`
	URL        string    `json:"url"`

	TranscriptStatus JobStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"transcriptStatus"`
	IdeasStatus      JobStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"ideasStatus"`
	TranscriptID     string    `gorm:"type:uuid" json:"transcriptId,omitempty"`
	IdeasCount       int64     `gorm:"not null;default:0" json:"ideasCount"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

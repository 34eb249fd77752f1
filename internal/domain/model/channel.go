package model

import "time"

// チャンネルの同期状態
type ChannelStatus string

const (
	ChannelStatusActive  ChannelStatus = "active"
	ChannelStatusSyncing ChannelStatus = "syncing"
	ChannelStatusError   ChannelStatus = "error"
)

// Channelは監視対象のYouTubeチャンネル。
type Channel struct {
	ID              string        `gorm:"type:uuid;primaryKey" json:"id"`
	Name            string        `gorm:"type:varchar(255);not null" json:"name"`
	Handle          string        `gorm:"type:varchar(255);not null" json:"handle"`
	URL             string        `gorm:"not null" json:"url"`
	Avatar          string        `json:"avatar"`
	SubscriberCount int64         `gorm:"not null;default:0" json:"subscriberCount"`
	TotalVideos     int64         `gorm:"not null;default:0" json:"totalVideos"`
	VideosAnalyzed  int64         `gorm:"not null;default:0" json:"videosAnalyzed"`
	LastSync        time.Time     `json:"lastSync"`
	Status          ChannelStatus `gorm:"type:varchar(20);not null;default:'syncing'" json:"status"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"-"`
}

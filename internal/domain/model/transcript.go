package model

import "time"

// 文字起こしの1区間。
type TranscriptSegment struct {
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Text    string  `json:"text"`
	Speaker string  `json:"speaker,omitempty"`
}

// Transcriptは動画1本の文字起こし。
// VideoTitle/ChannelNameは一覧表示用の非正規化コピー。
type Transcript struct {
	ID          string `gorm:"type:uuid;primaryKey" json:"id"`
	VideoID     string `gorm:"type:uuid;not null;index" json:"videoId"`
	VideoTitle  string `gorm:"not null" json:"videoTitle"`
	ChannelID   string `gorm:"type:uuid;not null;index" json:"-"`
	ChannelName string `gorm:"type:varchar(255);not null" json:"channelName"`

	Content  string              `gorm:"type:text" json:"content"`
	Segments []TranscriptSegment `gorm:"type:jsonb;serializer:json" json:"timestamps"`

	Status    JobStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

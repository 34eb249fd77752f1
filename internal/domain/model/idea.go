package model

import "time"

// アイデアの分類
type IdeaCategory string

const (
	IdeaCategoryMainConcept       IdeaCategory = "main-concept"
	IdeaCategoryActionableInsight IdeaCategory = "actionable-insight"
	IdeaCategoryContentSuggestion IdeaCategory = "content-suggestion"
	IdeaCategoryKeyTakeaway       IdeaCategory = "key-takeaway"
)

// 分類として受け付ける値かどうか。
func (c IdeaCategory) Valid() bool {
	switch c {
	case IdeaCategoryMainConcept, IdeaCategoryActionableInsight,
		IdeaCategoryContentSuggestion, IdeaCategoryKeyTakeaway:
		return true
	}
	return false
}

// Ideaは動画から抽出したコンテンツアイデア。
type Idea struct {
	ID          string `gorm:"type:uuid;primaryKey" json:"id"`
	VideoID     string `gorm:"type:uuid;not null;index" json:"videoId"`
	VideoTitle  string `gorm:"not null" json:"videoTitle"`
	ChannelID   string `gorm:"type:uuid;not null;index" json:"-"`
	ChannelName string `gorm:"type:varchar(255);not null" json:"channelName"`

	Category    IdeaCategory `gorm:"type:varchar(30);not null;index" json:"category"`
	Title       string       `gorm:"not null" json:"title"`
	Description string       `gorm:"type:text" json:"description"`
	Tags        []string     `gorm:"type:jsonb;serializer:json" json:"tags"`

	Rating     int  `gorm:"not null;default:0" json:"rating"`
	IsFavorite bool `gorm:"not null;default:false" json:"isFavorite"`

	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}

package model

import "time"

// ダッシュボードに出す操作の種類。
type ActivityType string

const (
	ActivityChannelAdded        ActivityType = "channel_added"
	ActivityTranscriptCompleted ActivityType = "transcript_completed"
	ActivityIdeasGenerated      ActivityType = "ideas_generated"
	ActivitySyncCompleted       ActivityType = "sync_completed"
)

// Activityは操作履歴（ダッシュボードのrecentActivity用）。
// 「何が」「どの対象に」起きたかを残す。
type Activity struct {
	ID      string       `gorm:"type:uuid;primaryKey" json:"id"`
	Type    ActivityType `gorm:"type:varchar(50);not null;index" json:"type"`
	Message string       `gorm:"not null" json:"message"`

	//対象のリソースID（channel/video）。検索用。
	ResourceID string `gorm:"type:uuid;index" json:"-"`

	CreatedAt time.Time `gorm:"not null;index" json:"timestamp"`
}

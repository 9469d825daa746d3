package models

import "time"

// ScanHistory represents the social_media_scan_history table. Rows are
// append-only: one per completed scan, never mutated afterwards.
type ScanHistory struct {
	ID             string    `gorm:"primaryKey" json:"id"`
	LeadID         string    `gorm:"column:lead_id" json:"lead_id"`
	UserID         string    `gorm:"column:user_id" json:"user_id"`
	Platform       Platform  `json:"platform"`
	ScannedAt      time.Time `gorm:"column:scanned_at" json:"scanned_at"`
	FollowersCount *int      `gorm:"column:followers_count" json:"followers_count,omitempty"`
	FollowingCount *int      `gorm:"column:following_count" json:"following_count,omitempty"`
	PostsCount     *int      `gorm:"column:posts_count" json:"posts_count,omitempty"`
	EngagementRate *float64  `gorm:"column:engagement_rate" json:"engagement_rate,omitempty"`
	ProfileData    string    `gorm:"column:profile_data;type:jsonb" json:"profile_data"` // raw payload as JSON
}

// TableName specifies the table name for ScanHistory
func (ScanHistory) TableName() string {
	return "social_media_scan_history"
}

package models

import "time"

// SocialMediaPost represents the social_media_posts table. Besides fetched
// Instagram posts it also carries the transient scan-progress row, keyed
// "temp-{leadId}", whose only meaningful columns are processing_progress and
// current_file.
type SocialMediaPost struct {
	ID                 string     `gorm:"primaryKey" json:"id"` // external provider id, or temp-{leadId}
	LeadID             string     `gorm:"column:lead_id" json:"lead_id"`
	UserID             string     `gorm:"column:user_id" json:"user_id"`
	Platform           Platform   `json:"platform"`
	PostType           string     `gorm:"column:post_type" json:"post_type"`
	Content            *string    `json:"content,omitempty"`
	Caption            *string    `json:"caption,omitempty"`
	URL                *string    `json:"url,omitempty"`
	MediaType          *string    `gorm:"column:media_type" json:"media_type,omitempty"`
	MediaURLs          string     `gorm:"column:media_urls;type:jsonb" json:"media_urls"` // JSON array of strings
	VideoURL           *string    `gorm:"column:video_url" json:"video_url,omitempty"`
	LikesCount         *int       `gorm:"column:likes_count" json:"likes_count,omitempty"`
	CommentsCount      *int       `gorm:"column:comments_count" json:"comments_count,omitempty"`
	TaggedUsers        string     `gorm:"column:tagged_users;type:jsonb" json:"tagged_users"` // JSON array of usernames
	PostedAt           *time.Time `gorm:"column:posted_at" json:"posted_at,omitempty"`
	ProcessingProgress *float64   `gorm:"column:processing_progress" json:"processing_progress,omitempty"`
	CurrentFile        *string    `gorm:"column:current_file" json:"current_file,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// TableName specifies the table name for SocialMediaPost
func (SocialMediaPost) TableName() string {
	return "social_media_posts"
}

// LinkedInPost represents the linkedin_posts table, the per-platform variant
// of SocialMediaPost for LinkedIn scans.
type LinkedInPost struct {
	ID             string     `gorm:"primaryKey" json:"id"` // external provider id
	LeadID         string     `gorm:"column:lead_id" json:"lead_id"`
	UserID         string     `gorm:"column:user_id" json:"user_id"`
	PostType       string     `gorm:"column:post_type" json:"post_type"`
	Content        *string    `json:"content,omitempty"`
	URL            *string    `json:"url,omitempty"`
	MediaType      *string    `gorm:"column:media_type" json:"media_type,omitempty"`
	MediaURLs      string     `gorm:"column:media_urls;type:jsonb" json:"media_urls"`
	LikesCount     *int       `gorm:"column:likes_count" json:"likes_count,omitempty"`
	CommentsCount  *int       `gorm:"column:comments_count" json:"comments_count,omitempty"`
	PostedAt       *time.Time `gorm:"column:posted_at" json:"posted_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// TableName specifies the table name for LinkedInPost
func (LinkedInPost) TableName() string {
	return "linkedin_posts"
}

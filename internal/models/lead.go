package models

import (
	"fmt"
	"time"
)

// Platform values mirror the platform enum used by the leads table.
type Platform string

const (
	PlatformInstagram Platform = "Instagram"
	PlatformLinkedIn  Platform = "LinkedIn"
	PlatformFacebook  Platform = "Facebook"
	PlatformTikTok    Platform = "TikTok"
	PlatformOffline   Platform = "Offline"
)

// ParsePlatform converts a raw string to a Platform, returning an error for
// unknown values.
func ParsePlatform(s string) (Platform, error) {
	p := Platform(s)
	switch p {
	case PlatformInstagram, PlatformLinkedIn, PlatformFacebook, PlatformTikTok, PlatformOffline:
		return p, nil
	}
	return "", fmt.Errorf("unknown platform %q", s)
}

// Lead represents the leads table
type Lead struct {
	ID                         string    `gorm:"primaryKey" json:"id"`
	UserID                     string    `gorm:"column:user_id" json:"user_id"`
	Name                       string    `json:"name"`
	Platform                   Platform  `json:"platform"`
	SocialMediaUsername        *string   `gorm:"column:social_media_username" json:"social_media_username,omitempty"`
	PipelineID                 *string   `gorm:"column:pipeline_id" json:"pipeline_id,omitempty"`
	PhaseID                    *string   `gorm:"column:phase_id" json:"phase_id,omitempty"`
	Email                      *string   `json:"email,omitempty"`
	Phone                      *string   `gorm:"column:phone_number" json:"phone_number,omitempty"`
	Industry                   string    `json:"industry"`
	SocialMediaBio             *string   `gorm:"column:social_media_bio" json:"social_media_bio,omitempty"`
	SocialMediaFollowers       *int      `gorm:"column:social_media_followers" json:"social_media_followers,omitempty"`
	SocialMediaFollowing       *int      `gorm:"column:social_media_following" json:"social_media_following,omitempty"`
	SocialMediaPostsCount      *int      `gorm:"column:social_media_posts_count" json:"social_media_posts_count,omitempty"`
	SocialMediaEngagementRate  *float64  `gorm:"column:social_media_engagement_rate" json:"social_media_engagement_rate,omitempty"`
	SocialMediaProfileImageURL *string   `gorm:"column:social_media_profile_image_url" json:"social_media_profile_image_url,omitempty"`
	SocialMediaVerified        *bool     `gorm:"column:social_media_verified" json:"social_media_verified,omitempty"`
	LastSocialMediaScan        *time.Time `gorm:"column:last_social_media_scan" json:"last_social_media_scan,omitempty"`
	CreatedAt                  time.Time `json:"created_at"`
	UpdatedAt                  time.Time `json:"updated_at"`
}

// TableName specifies the table name for Lead
func (Lead) TableName() string {
	return "leads"
}

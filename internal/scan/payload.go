package scan

import (
	"encoding/json"
	"time"

	"github.com/er2klc/creativable-sub005/internal/models"
)

// ProfilePayload is the subset of a scraped profile item we consume. Fields
// are pointers on purpose: absent values must never clobber existing lead
// data, so the persister filters out nils before updating.
type ProfilePayload struct {
	Username       *string `json:"username"`
	FullName       *string `json:"fullName"`
	Biography      *string `json:"biography"`
	FollowersCount *int    `json:"followersCount"`
	FollowsCount   *int    `json:"followsCount"`
	PostsCount     *int    `json:"postsCount"`
	ProfilePicURL  *string `json:"profilePicUrl"`
	Verified       *bool   `json:"verified"`

	// LinkedIn scraper variants of the same information.
	Headline    *string `json:"headline"`
	Connections *int    `json:"connections"`

	LatestPosts []PostPayload `json:"latestPosts"`
}

// PostPayload is one fetched post/media item, keyed by the provider's id.
type PostPayload struct {
	ID            string   `json:"id"`
	Type          *string  `json:"type"`
	Caption       *string  `json:"caption"`
	Text          *string  `json:"text"`
	URL           *string  `json:"url"`
	DisplayURL    *string  `json:"displayUrl"`
	VideoURL      *string  `json:"videoUrl"`
	Images        []string `json:"images"`
	LikesCount    *int     `json:"likesCount"`
	CommentsCount *int     `json:"commentsCount"`
	Timestamp     *string  `json:"timestamp"`
	TaggedUsers   []struct {
		Username string `json:"username"`
	} `json:"taggedUsers"`
}

// LeadUpdates maps the non-null payload fields onto leads columns. Nil fields
// are skipped so an empty scrape does not wipe values from earlier scans.
func LeadUpdates(p *ProfilePayload) map[string]any {
	updates := map[string]any{}

	if p.FullName != nil && *p.FullName != "" {
		updates["name"] = *p.FullName
	}
	if p.Biography != nil {
		updates["social_media_bio"] = *p.Biography
	} else if p.Headline != nil {
		updates["social_media_bio"] = *p.Headline
	}
	if p.FollowersCount != nil {
		updates["social_media_followers"] = *p.FollowersCount
	} else if p.Connections != nil {
		updates["social_media_followers"] = *p.Connections
	}
	if p.FollowsCount != nil {
		updates["social_media_following"] = *p.FollowsCount
	}
	if p.PostsCount != nil {
		updates["social_media_posts_count"] = *p.PostsCount
	}
	if p.ProfilePicURL != nil && *p.ProfilePicURL != "" {
		updates["social_media_profile_image_url"] = *p.ProfilePicURL
	}
	if p.Verified != nil {
		updates["social_media_verified"] = *p.Verified
	}
	if rate := EngagementRate(p); rate != nil {
		updates["social_media_engagement_rate"] = *rate
	}

	return updates
}

// EngagementRate averages likes+comments across the fetched posts relative to
// the follower count. Returns nil when there is nothing to compute.
func EngagementRate(p *ProfilePayload) *float64 {
	if p.FollowersCount == nil || *p.FollowersCount <= 0 || len(p.LatestPosts) == 0 {
		return nil
	}

	total := 0
	for _, post := range p.LatestPosts {
		if post.LikesCount != nil {
			total += *post.LikesCount
		}
		if post.CommentsCount != nil {
			total += *post.CommentsCount
		}
	}

	rate := float64(total) / float64(len(p.LatestPosts)) / float64(*p.FollowersCount)
	return &rate
}

// PostRows converts the payload's posts into social_media_posts rows. Posts
// without a provider id are dropped, they could not be upserted idempotently.
func PostRows(p *ProfilePayload, leadID, userID string, platform models.Platform) []models.SocialMediaPost {
	rows := make([]models.SocialMediaPost, 0, len(p.LatestPosts))
	for _, post := range p.LatestPosts {
		if post.ID == "" {
			continue
		}

		row := models.SocialMediaPost{
			ID:            post.ID,
			LeadID:        leadID,
			UserID:        userID,
			Platform:      platform,
			PostType:      "post",
			Caption:       firstNonNil(post.Caption, post.Text),
			URL:           post.URL,
			MediaType:     post.Type,
			MediaURLs:     mediaURLsJSON(post),
			VideoURL:      post.VideoURL,
			LikesCount:    post.LikesCount,
			CommentsCount: post.CommentsCount,
			TaggedUsers:   taggedUsersJSON(post),
			PostedAt:      parseTimestamp(post.Timestamp),
		}
		if post.Type != nil {
			row.PostType = *post.Type
		}
		rows = append(rows, row)
	}
	return rows
}

// LinkedInPostRows is the linkedin_posts variant of PostRows.
func LinkedInPostRows(p *ProfilePayload, leadID, userID string) []models.LinkedInPost {
	rows := make([]models.LinkedInPost, 0, len(p.LatestPosts))
	for _, post := range p.LatestPosts {
		if post.ID == "" {
			continue
		}

		row := models.LinkedInPost{
			ID:            post.ID,
			LeadID:        leadID,
			UserID:        userID,
			PostType:      "post",
			Content:       firstNonNil(post.Text, post.Caption),
			URL:           post.URL,
			MediaType:     post.Type,
			MediaURLs:     mediaURLsJSON(post),
			LikesCount:    post.LikesCount,
			CommentsCount: post.CommentsCount,
			PostedAt:      parseTimestamp(post.Timestamp),
		}
		if post.Type != nil {
			row.PostType = *post.Type
		}
		rows = append(rows, row)
	}
	return rows
}

func firstNonNil(values ...*string) *string {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}

func mediaURLsJSON(post PostPayload) string {
	urls := make([]string, 0, len(post.Images)+1)
	if post.DisplayURL != nil && *post.DisplayURL != "" {
		urls = append(urls, *post.DisplayURL)
	}
	urls = append(urls, post.Images...)

	data, _ := json.Marshal(urls)
	return string(data)
}

func taggedUsersJSON(post PostPayload) string {
	names := make([]string, 0, len(post.TaggedUsers))
	for _, u := range post.TaggedUsers {
		if u.Username != "" {
			names = append(names, u.Username)
		}
	}

	data, _ := json.Marshal(names)
	return string(data)
}

func parseTimestamp(ts *string) *time.Time {
	if ts == nil || *ts == "" {
		return nil
	}
	parsed, err := time.Parse(time.RFC3339, *ts)
	if err != nil {
		return nil
	}
	return &parsed
}

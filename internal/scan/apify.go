package scan

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/er2klc/creativable-sub005/internal/models"
	"github.com/go-resty/resty/v2"
)

const (
	apifyBaseURL = "https://api.apify.com/v2"

	instagramActorID = "apify~instagram-profile-scraper"
	linkedinActorID  = "apify~linkedin-profile-scraper"

	// Run settings for a single-profile scan.
	maxRequestRetries = 2
	maxConcurrency    = 1
	maxItems          = 1
)

// Client talks to the Apify actor-run API: it launches scraping runs and
// fetches their dataset items.
type Client struct {
	BaseURL string
	Token   string
	rest    *resty.Client
}

// NewClient constructs a Client with a shared resty client.
func NewClient(token string) *Client {
	return &Client{
		BaseURL: apifyBaseURL,
		Token:   token,
		rest:    resty.New(),
	}
}

// runResponse mirrors the relevant part of the Apify run-created response.
type runResponse struct {
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

// ProfileURL builds the canonical public profile URL for a platform username.
// A leading "@" is stripped. Platforms without a scraping actor return an
// error.
func ProfileURL(platform models.Platform, username string) (string, error) {
	username = strings.TrimPrefix(strings.TrimSpace(username), "@")
	if username == "" {
		return "", fmt.Errorf("username is empty")
	}

	switch platform {
	case models.PlatformInstagram:
		return fmt.Sprintf("https://www.instagram.com/%s/", username), nil
	case models.PlatformLinkedIn:
		return fmt.Sprintf("https://www.linkedin.com/in/%s/", username), nil
	}
	return "", fmt.Errorf("scanning %s profiles is not supported", platform)
}

func actorFor(platform models.Platform) string {
	if platform == models.PlatformLinkedIn {
		return linkedinActorID
	}
	return instagramActorID
}

// LaunchRun submits a scraping run for the given profile URL and returns the
// opaque run id. Returns a LaunchError when the submission is rejected.
func (c *Client) LaunchRun(ctx context.Context, platform models.Platform, profileURL string) (string, error) {
	body := map[string]any{
		"url":               []string{profileURL},
		"maxRequestRetries": maxRequestRetries,
		"maxConcurrency":    maxConcurrency,
		"maxItems":          maxItems,
	}

	resp, err := c.rest.R().
		SetContext(ctx).
		SetQueryParam("token", c.Token).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(fmt.Sprintf("%s/acts/%s/runs", c.BaseURL, actorFor(platform)))
	if err != nil {
		return "", fmt.Errorf("launch run: %w", err)
	}
	if resp.IsError() {
		return "", &LaunchError{StatusCode: resp.StatusCode(), Body: string(resp.Body())}
	}

	var out runResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return "", fmt.Errorf("decode run response: %w", err)
	}
	if out.Data.ID == "" {
		return "", &LaunchError{StatusCode: resp.StatusCode(), Body: "run response carried no run id"}
	}

	return out.Data.ID, nil
}

// FetchDatasetItems returns the items of a run's default dataset. An empty
// array means the run has not produced data yet. Non-2xx responses become a
// FetchError.
func (c *Client) FetchDatasetItems(ctx context.Context, runID string) ([]json.RawMessage, error) {
	resp, err := c.rest.R().
		SetContext(ctx).
		SetQueryParam("token", c.Token).
		Get(fmt.Sprintf("%s/actor-runs/%s/dataset/items", c.BaseURL, runID))
	if err != nil {
		return nil, fmt.Errorf("fetch dataset: %w", err)
	}
	if resp.IsError() {
		return nil, &FetchError{StatusCode: resp.StatusCode(), Body: string(resp.Body())}
	}

	var items []json.RawMessage
	if err := json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("decode dataset items: %w", err)
	}

	return items, nil
}

package scan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/er2klc/creativable-sub005/internal/models"
)

// errorsAs keeps test call sites short.
func errorsAs(err error, target any) bool {
	return errors.As(err, target)
}

func TestProfileURL(t *testing.T) {
	cases := []struct {
		platform models.Platform
		username string
		want     string
		wantErr  bool
	}{
		{models.PlatformInstagram, "elonmusk", "https://www.instagram.com/elonmusk/", false},
		{models.PlatformInstagram, "@elonmusk", "https://www.instagram.com/elonmusk/", false},
		{models.PlatformInstagram, "  elonmusk ", "https://www.instagram.com/elonmusk/", false},
		{models.PlatformLinkedIn, "satyanadella", "https://www.linkedin.com/in/satyanadella/", false},
		{models.PlatformOffline, "someone", "", true},
		{models.PlatformFacebook, "someone", "", true},
		{models.PlatformInstagram, "", "", true},
		{models.PlatformInstagram, "@", "", true},
	}

	for _, tc := range cases {
		got, err := ProfileURL(tc.platform, tc.username)
		if tc.wantErr {
			assert.Error(t, err, "ProfileURL(%s, %q)", tc.platform, tc.username)
			continue
		}
		require.NoError(t, err, "ProfileURL(%s, %q)", tc.platform, tc.username)
		assert.Equal(t, tc.want, got)
	}
}

func TestLaunchRun_ReturnsRunID(t *testing.T) {
	var gotPath, gotToken string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.URL.Query().Get("token")
		raw, _ := io.ReadAll(r.Body)
		json.Unmarshal(raw, &gotBody)

		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"data":{"id":"run_123"}}`)
	}))
	defer srv.Close()

	client := testClient(srv.URL)
	runID, err := client.LaunchRun(context.Background(), models.PlatformInstagram, "https://www.instagram.com/elonmusk/")
	require.NoError(t, err)
	assert.Equal(t, "run_123", runID)

	assert.Equal(t, "/acts/apify~instagram-profile-scraper/runs", gotPath)
	assert.Equal(t, "test-token", gotToken)
	assert.Equal(t, []any{"https://www.instagram.com/elonmusk/"}, gotBody["url"])
	assert.Equal(t, float64(1), gotBody["maxItems"])
	assert.Equal(t, float64(1), gotBody["maxConcurrency"])
	assert.Equal(t, float64(2), gotBody["maxRequestRetries"])
}

func TestLaunchRun_UsesLinkedInActor(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprint(w, `{"data":{"id":"run_456"}}`)
	}))
	defer srv.Close()

	client := testClient(srv.URL)
	_, err := client.LaunchRun(context.Background(), models.PlatformLinkedIn, "https://www.linkedin.com/in/someone/")
	require.NoError(t, err)
	assert.Equal(t, "/acts/apify~linkedin-profile-scraper/runs", gotPath)
}

func TestLaunchRun_NonSuccessBecomesLaunchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		fmt.Fprint(w, `{"error":"actor quota exceeded"}`)
	}))
	defer srv.Close()

	client := testClient(srv.URL)
	_, err := client.LaunchRun(context.Background(), models.PlatformInstagram, "https://www.instagram.com/elonmusk/")
	require.Error(t, err)

	var launchErr *LaunchError
	require.ErrorAs(t, err, &launchErr)
	assert.Equal(t, http.StatusPaymentRequired, launchErr.StatusCode)
	assert.Contains(t, launchErr.Body, "actor quota exceeded", "error must carry the response body for diagnostics")
}

func TestLaunchRun_MissingRunIDBecomesLaunchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":{}}`)
	}))
	defer srv.Close()

	client := testClient(srv.URL)
	_, err := client.LaunchRun(context.Background(), models.PlatformInstagram, "https://www.instagram.com/elonmusk/")

	var launchErr *LaunchError
	require.ErrorAs(t, err, &launchErr)
}

func TestFetchDatasetItems_EmbedsRunIDInPath(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprint(w, `[]`)
	}))
	defer srv.Close()

	client := testClient(srv.URL)
	items, err := client.FetchDatasetItems(context.Background(), "run_123")
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, "/actor-runs/run_123/dataset/items", gotPath)
}

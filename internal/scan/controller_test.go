package scan

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testLeadID = "5f0b2c3a-9d8e-4f1a-b2c3-a9d8e4f1a2b3"
	testUserID = "7a1c3e5f-2b4d-6a8c-0e2f-4a6c8e0f2a4b"
)

func scanTestApp(t *testing.T, apifyURL string) (*fiber.App, *recordingPersister) {
	t.Helper()

	client := testClient(apifyURL)
	persister := &recordingPersister{}
	svc := &Service{
		Client:    client,
		Poller:    NewPoller(client, time.Millisecond, 5),
		Progress:  &recordingProgress{},
		Persister: persister,
	}

	app := fiber.New()
	app.Post("/scan", StartScan(svc))
	return app, persister
}

func TestStartScan_UserIDComesFromHeader(t *testing.T) {
	srv, _ := fakeApify(t, "run_123", 0, elonMuskItem)
	defer srv.Close()

	app, persister := scanTestApp(t, srv.URL)

	body := `{"username":"elonmusk","platform":"Instagram","lead_id":"` + testLeadID + `"}`
	req := httptest.NewRequest(http.MethodPost, "/scan", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", testUserID)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.Equal(t, 1, persister.calls)
	assert.Equal(t, testUserID, persister.userID, "persisted user id must be the header identity")
	assert.Equal(t, testLeadID, persister.leadID)
}

func TestStartScan_ArbitraryBodyUserIDIsIgnored(t *testing.T) {
	srv, _ := fakeApify(t, "run_123", 0, elonMuskItem)
	defer srv.Close()

	app, persister := scanTestApp(t, srv.URL)

	body := `{"username":"elonmusk","platform":"Instagram","lead_id":"` + testLeadID + `","user_id":"someone-else"}`
	req := httptest.NewRequest(http.MethodPost, "/scan", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", testUserID)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.Equal(t, 1, persister.calls)
	assert.Equal(t, testUserID, persister.userID)
}

func TestStartScan_MissingHeaderIsRejected(t *testing.T) {
	srv, fetches := fakeApify(t, "run_123", 0, elonMuskItem)
	defer srv.Close()

	app, persister := scanTestApp(t, srv.URL)

	body := `{"username":"elonmusk","platform":"Instagram","lead_id":"` + testLeadID + `"}`
	req := httptest.NewRequest(http.MethodPost, "/scan", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, 0, persister.calls)
	assert.Equal(t, 0, *fetches, "no scan may launch without a caller identity")
}

func TestStartScan_InvalidBodyIsRejected(t *testing.T) {
	srv, _ := fakeApify(t, "run_123", 0, elonMuskItem)
	defer srv.Close()

	app, persister := scanTestApp(t, srv.URL)

	body := `{"username":"","platform":"Facebook","lead_id":"not-a-uuid"}`
	req := httptest.NewRequest(http.MethodPost, "/scan", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", testUserID)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, 0, persister.calls)
}

package bootstrap

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/yigit/alumnihub/internal/app/models"
	"github.com/yigit/alumnihub/internal/app/models/dto"
	"github.com/yigit/alumnihub/internal/app/repositories"
	"github.com/yigit/alumnihub/internal/app/repositories/remote"
	"github.com/yigit/alumnihub/internal/config"
	pkgAuth "github.com/yigit/alumnihub/internal/pkg/auth"
)

const adminSecret = "test-admin-secret"

// newTestServer serves the mock-backed REST API and returns the dependencies behind it.
func newTestServer(t *testing.T) (*httptest.Server, *Dependencies) {
	t.Helper()
	cfg, err := config.LoadConfig("")
	require.NoError(t, err)
	cfg.Server.Mode = "test"
	cfg.Mock.Latency = "0s"
	cfg.RateLimit.Enabled = false
	cfg.Auth.AdminTokenHash, err = pkgAuth.HashSecretWithCost(adminSecret, bcrypt.MinCost)
	require.NoError(t, err)

	deps, err := BuildDependencies(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	require.NotNil(t, deps.Store)

	srv := httptest.NewServer(SetupRouter(cfg, deps, zerolog.Nop()))
	t.Cleanup(func() {
		srv.Close()
		deps.Close()
	})
	return srv, deps
}

func newRemoteSources(t *testing.T, srv *httptest.Server, token string) repositories.DataSources {
	t.Helper()
	client, err := remote.NewClient(remote.Config{BaseURL: srv.URL + "/api", Token: token, Timeout: 5 * time.Second}, zerolog.Nop())
	require.NoError(t, err)
	return remote.NewDataSources(client)
}

func send(t *testing.T, srv *httptest.Server, method, path, token, body string) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequest(method, srv.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func TestRouter_PublicReadsAndHealth(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, body := send(t, srv, http.MethodGet, "/api/events?status=draft", "", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var page dto.PaginatedResponse[models.Event]
	require.NoError(t, json.Unmarshal(body, &page))
	require.Len(t, page.Data, 1)
	assert.Equal(t, "evt-003", page.Data[0].ID)

	resp, body = send(t, srv, http.MethodGet, "/api/events?page=922337203685477580", "", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var past dto.PaginatedResponse[models.Event]
	require.NoError(t, json.Unmarshal(body, &past))
	assert.Empty(t, past.Data)
	assert.Equal(t, 3, past.Pagination.Total)

	resp, _ = send(t, srv, http.MethodGet, "/api/health", "", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = send(t, srv, http.MethodGet, "/api/partners", "", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_EnvelopeStatus(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, body := send(t, srv, http.MethodGet, "/api/events/evt-404", "", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	var env dto.APIResponse[models.Event]
	require.NoError(t, json.Unmarshal(body, &env))
	require.NotNil(t, env.Error)
	assert.Equal(t, dto.ErrorCodeResourceNotFound, env.Error.Type)

	resp, body = send(t, srv, http.MethodGet, "/api/nowhere", "", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(body), "Route not found")
}

func TestRouter_AdminGate(t *testing.T) {
	srv, _ := newTestServer(t)
	body := `{"name": "Lisbon Chapter", "type": "regional", "city": "Lisbon", "country": "Portugal"}`

	resp, _ := send(t, srv, http.MethodPost, "/api/chapters", "", body)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = send(t, srv, http.MethodPost, "/api/chapters", adminSecret, body)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	// engagement actions are public
	resp, _ = send(t, srv, http.MethodPost, "/api/qa/qa-001/like", "", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = send(t, srv, http.MethodPost, "/api/qa/qa-002/publish", "", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = send(t, srv, http.MethodPost, "/api/chapters", adminSecret, `{"name": `)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// The remote data sources pointed at the mock-backed server must return the same envelopes as the mock.
func TestRemote_MatchesMock(t *testing.T) {
	srv, deps := newTestServer(t)
	ctx := context.Background()
	mock := deps.Sources
	rest := newRemoteSources(t, srv, adminSecret)

	params := dto.ListParams{Page: 1, Limit: 20, Filters: dto.Filters{"status": "published", "sortBy": "title"}}
	fromMock, err := mock.Events.List(ctx, params)
	require.NoError(t, err)
	fromRemote, err := rest.Events.List(ctx, params)
	require.NoError(t, err)
	assert.Equal(t, fromMock, fromRemote)

	mockChapter, err := mock.Chapters.Get(ctx, "chp-001")
	require.NoError(t, err)
	remoteChapter, err := rest.Chapters.Get(ctx, "chp-001")
	require.NoError(t, err)
	assert.Equal(t, mockChapter, remoteChapter)

	published, err := rest.Events.Perform(ctx, "evt-003", models.ActionPublish, nil)
	require.NoError(t, err)
	assert.Equal(t, models.EventStatusPublished, published.Data.Status)
	again, err := mock.Events.Get(ctx, "evt-003")
	require.NoError(t, err)
	assert.Equal(t, published.Data.Status, again.Data.Status)

	bulk, err := rest.Mentorships.BulkOperation(ctx, models.ActionAccept, []string{"mnt-002", "mnt-404"})
	require.NoError(t, err)
	assert.Equal(t, 1, bulk.Data.UpdatedCount)
	assert.Equal(t, 1, bulk.Data.FailedCount)

	updated, err := rest.Profiles.UpdateNotifications(ctx, "usr-001", dto.Patch{"digest": "daily"})
	require.NoError(t, err)
	assert.Equal(t, "daily", updated.Data.Notifications.Digest)
}

func TestRemote_FailuresSurfaceAsHTTPErrors(t *testing.T) {
	srv, _ := newTestServer(t)
	ctx := context.Background()

	_, err := newRemoteSources(t, srv, adminSecret).Events.Get(ctx, "evt-404")
	var httpErr *remote.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
	require.NotNil(t, httpErr.Detail)
	assert.Equal(t, dto.ErrorCodeResourceNotFound, httpErr.Detail.Type)

	_, err = newRemoteSources(t, srv, "").Chapters.Delete(ctx, "chp-001")
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusUnauthorized, httpErr.StatusCode)
}

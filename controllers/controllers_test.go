package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"social-bridge/models"
	"social-bridge/views"

	"github.com/pocketbase/pocketbase/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeContent struct {
	text  string
	image *string
	hold  chan struct{}
}

func (f *fakeContent) GenerateText(ctx context.Context, project models.Project, trend string) string {
	if f.hold != nil {
		<-f.hold
	}
	return f.text
}

func (f *fakeContent) GenerateImage(ctx context.Context, project models.Project, concept string) *string {
	return f.image
}

type fakeSocial struct {
	trends []models.TrendingTopic
	user   *models.UserMetrics
}

func (f *fakeSocial) FetchTrends(ctx context.Context) []models.TrendingTopic { return f.trends }

func (f *fakeSocial) FetchUserStats(ctx context.Context, username string) *models.UserMetrics {
	return f.user
}

const (
	timeout = time.Second
	tick    = 5 * time.Millisecond
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newEvent(method, target, body string) (*core.RequestEvent, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()

	e := new(core.RequestEvent)
	e.Request = req
	e.Response = rec
	return e, rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, data interface{}) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	if data != nil && len(env.Data) > 0 {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}
	return env
}

func newRoot(content views.ContentGenerator, social views.SocialReader) *views.Root {
	return views.NewRoot(content, social, views.Options{})
}

func TestPing(t *testing.T) {
	e, rec := newEvent(http.MethodGet, "/api/v1/ping", "")
	require.NoError(t, Ping(e))

	env := decode(t, rec, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Status)
	assert.Equal(t, "Ping success", env.Message)
}

func TestListProjects(t *testing.T) {
	e, rec := newEvent(http.MethodGet, "/api/v1/projects", "")
	require.NoError(t, ListProjects(e))

	var projects []models.Project
	decode(t, rec, &projects)
	require.Len(t, projects, 2)
	assert.Equal(t, "Bulk Trade", projects[1].Name)
}

func TestSelectView(t *testing.T) {
	root := newRoot(&fakeContent{}, &fakeSocial{})

	e, rec := newEvent(http.MethodPost, "/api/v1/view/stats", "")
	e.Request.SetPathValue("view", "stats")
	require.NoError(t, SelectView(e, root, nil))

	var data struct {
		View    string `json:"view"`
		Changed bool   `json:"changed"`
	}
	decode(t, rec, &data)
	assert.Equal(t, "stats", data.View)
	assert.True(t, data.Changed)

	e, rec = newEvent(http.MethodPost, "/api/v1/view/stats", "")
	e.Request.SetPathValue("view", "stats")
	require.NoError(t, SelectView(e, root, nil))
	decode(t, rec, &data)
	assert.False(t, data.Changed)

	e, rec = newEvent(http.MethodPost, "/api/v1/view/analytics", "")
	e.Request.SetPathValue("view", "analytics")
	require.NoError(t, SelectView(e, root, nil))
	env := decode(t, rec, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Status)
	assert.Equal(t, views.ViewStats, root.Active())
}

func TestGetActiveView(t *testing.T) {
	e, rec := newEvent(http.MethodGet, "/api/v1/view", "")
	require.NoError(t, GetActiveView(e, newRoot(&fakeContent{}, &fakeSocial{})))

	var data map[string]string
	decode(t, rec, &data)
	assert.Equal(t, "create", data["view"])
}

func TestDraftFlowBulkTrade(t *testing.T) {
	root := newRoot(&fakeContent{text: "Buy the dip! #Crypto #DeFi"}, &fakeSocial{})

	e, rec := newEvent(http.MethodPost, "/api/v1/create/project", `{"project":"Bulk Trade"}`)
	require.NoError(t, SelectProject(e, root.Create, nil))
	require.Equal(t, http.StatusOK, rec.Code)

	e, _ = newEvent(http.MethodPost, "/api/v1/create/direction", `{"direction":""}`)
	require.NoError(t, SetDirection(e, root.Create, nil))

	e, rec = newEvent(http.MethodPost, "/api/v1/create/text", "")
	require.NoError(t, DraftPostText(e, root.Create, nil))

	var snap views.CreateSnapshot
	env := decode(t, rec, &snap)
	assert.True(t, env.Status)
	assert.Equal(t, "Bulk Trade", snap.Project.Name)
	assert.Equal(t, "Buy the dip! #Crypto #DeFi", snap.Draft.Text)
	assert.False(t, snap.Busy)
	assert.True(t, snap.CanCopy)
	assert.True(t, snap.CanPublish)

	e, rec = newEvent(http.MethodGet, "/api/v1/share", "")
	require.NoError(t, ShareDraft(e, root.Create, nil))
	var share map[string]string
	decode(t, rec, &share)
	assert.Equal(t, "https://twitter.com/intent/tweet?text=Buy%20the%20dip%21%20%23Crypto%20%23DeFi", share["url"])
}

func TestSelectProjectValidation(t *testing.T) {
	root := newRoot(&fakeContent{}, &fakeSocial{})

	for _, body := range []string{`{"project":"Unknown"}`, `{}`, `{not json`} {
		e, rec := newEvent(http.MethodPost, "/api/v1/create/project", body)
		require.NoError(t, SelectProject(e, root.Create, nil))
		env := decode(t, rec, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.False(t, env.Status)
	}
	assert.Equal(t, models.ProjectCodex, root.Create.Snapshot().Project.Type)
}

func TestDraftPostTextBusy(t *testing.T) {
	content := &fakeContent{text: "x", hold: make(chan struct{})}
	root := newRoot(content, &fakeSocial{})

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = root.Create.DraftText(context.Background())
	}()
	require.Eventually(t, func() bool { return root.Create.Snapshot().Busy }, timeout, tick)

	e, rec := newEvent(http.MethodPost, "/api/v1/create/text", "")
	require.NoError(t, DraftPostText(e, root.Create, nil))
	assert.Equal(t, http.StatusConflict, rec.Code)

	e, rec = newEvent(http.MethodPost, "/api/v1/create/image", "")
	require.NoError(t, DraftPostImage(e, root.Create, nil))
	assert.Equal(t, http.StatusConflict, rec.Code)

	close(content.hold)
	<-done
}

func TestDraftPostImageAndDismiss(t *testing.T) {
	img := "data:image/png;base64,AA=="
	root := newRoot(&fakeContent{image: &img}, &fakeSocial{})

	e, rec := newEvent(http.MethodPost, "/api/v1/create/image", "")
	require.NoError(t, DraftPostImage(e, root.Create, nil))
	var snap views.CreateSnapshot
	decode(t, rec, &snap)
	require.NotNil(t, snap.Draft.Image)
	assert.Equal(t, img, *snap.Draft.Image)

	e, rec = newEvent(http.MethodDelete, "/api/v1/create/draft?id=stale", "")
	require.NoError(t, DismissDraft(e, root.Create))
	env := decode(t, rec, nil)
	assert.Equal(t, "Draft already replaced", env.Message)

	e, rec = newEvent(http.MethodDelete, "/api/v1/create/draft?id="+snap.Draft.ID, "")
	require.NoError(t, DismissDraft(e, root.Create))
	env = decode(t, rec, &snap)
	assert.Equal(t, "Draft dismissed", env.Message)
	assert.Nil(t, snap.Draft.Image)

	e, rec = newEvent(http.MethodDelete, "/api/v1/create/draft", "")
	require.NoError(t, DismissDraft(e, root.Create))
	env = decode(t, rec, nil)
	assert.Equal(t, "Nothing to dismiss", env.Message)
}

func TestShareDraftWithoutText(t *testing.T) {
	e, rec := newEvent(http.MethodGet, "/api/v1/share", "")
	require.NoError(t, ShareDraft(e, newRoot(&fakeContent{}, &fakeSocial{}).Create, nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	root := newRoot(&fakeContent{text: "   "}, &fakeSocial{})
	_, err := root.Create.DraftText(context.Background())
	require.NoError(t, err)

	e, rec = newEvent(http.MethodGet, "/api/v1/share", "")
	require.NoError(t, ShareDraft(e, root.Create, nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoadTrendsFallback(t *testing.T) {
	root := newRoot(&fakeContent{}, &fakeSocial{})

	e, rec := newEvent(http.MethodGet, "/api/v1/trends", "")
	require.NoError(t, LoadTrends(e, root.Trends))

	var snap views.TrendsSnapshot
	decode(t, rec, &snap)
	assert.False(t, snap.Live)
	require.Len(t, snap.Trends, 5)
	assert.Equal(t, "#AIRevolution", snap.Trends[0].Name)
	assert.Equal(t, "120K", snap.Trends[0].VolumeLabel)
}

func TestPickTrend(t *testing.T) {
	root := newRoot(&fakeContent{}, &fakeSocial{})
	_, _ = root.Select(views.ViewTrends)

	e, rec := newEvent(http.MethodPost, "/api/v1/trends/pick", `{"name":"Liquidity Pools"}`)
	require.NoError(t, PickTrend(e, root, nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, views.ViewCreate, root.Active())
	assert.Equal(t, "Liquidity Pools", root.Create.Snapshot().Trend)

	e, rec = newEvent(http.MethodPost, "/api/v1/trends/pick", `{"name":""}`)
	require.NoError(t, PickTrend(e, root, nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoadStats(t *testing.T) {
	root := newRoot(&fakeContent{}, &fakeSocial{user: &models.UserMetrics{Username: "Twitter", FollowersCount: 14100, TweetCount: 2401}})

	e, rec := newEvent(http.MethodGet, "/api/v1/stats", "")
	require.NoError(t, LoadStats(e, root.Stats))

	var snap views.StatsSnapshot
	decode(t, rec, &snap)
	assert.True(t, snap.Live)
	assert.Equal(t, "@Twitter live metrics", snap.Headline)
	assert.Equal(t, "14.1K", snap.Followers.Value)
	assert.Equal(t, "2,401", snap.Posts.Value)
}

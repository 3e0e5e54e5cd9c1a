package notifications_test

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/notifykit/modules/notifications"
	"github.com/dmitrymomot/notifykit/pkg/notification"
	"github.com/dmitrymomot/notifykit/pkg/notifier"
	"github.com/dmitrymomot/notifykit/pkg/preferences"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	prefs := preferences.NewMemoryStore()
	require.NoError(t, prefs.Set(context.Background(), "u-1", preferences.Profile{
		Channels: preferences.Channels{InApp: true},
		Categories: map[notification.Category]preferences.CategoryRule{
			notification.CategoryIncident: {Enabled: true, Critical: true, Warning: true, Info: true},
			notification.CategorySensor:   {Enabled: true, Critical: true, Warning: true, Info: true},
		},
	}))

	m := notifier.New(notification.NewMemoryStore(), prefs)
	srv := httptest.NewServer(notifications.Router(m))
	t.Cleanup(srv.Close)
	return srv
}

func submitEvent(t *testing.T, srv *httptest.Server, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(srv.URL+"/events", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	return resp
}

func decodeData(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()

	var env struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	require.NoError(t, json.Unmarshal(env.Data, out))
}

func TestRouter_SubmitListReadDelete(t *testing.T) {
	srv := newTestServer(t)

	resp := submitEvent(t, srv, `{
		"user_id": "u-1",
		"category": "incident",
		"severity": "warning",
		"title": "Perimeter breach",
		"message": "Sector 4 fence sensor tripped"
	}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		Notification notification.Notification `json:"notification"`
	}
	decodeData(t, resp, &created)
	require.NotEmpty(t, created.Notification.ID)

	// List shows the stored notification.
	resp, err := http.Get(srv.URL + "/?user_id=u-1")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var items []notification.Notification
	decodeData(t, resp, &items)
	require.Len(t, items, 1)
	assert.Equal(t, "Perimeter breach", items[0].Title)
	assert.False(t, items[0].Read)

	// Mark it read, then the unread badge drops to zero.
	resp, err = http.Post(srv.URL+"/"+created.Notification.ID+"/read", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/unread-count?user_id=u-1")
	require.NoError(t, err)
	var count map[string]int
	decodeData(t, resp, &count)
	assert.Equal(t, 0, count["unread"])

	// Delete, then touching it again is 404.
	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/"+created.Notification.ID, nil)
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Post(srv.URL+"/"+created.Notification.ID+"/read", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouter_SubmitValidation(t *testing.T) {
	srv := newTestServer(t)

	t.Run("malformed json", func(t *testing.T) {
		resp := submitEvent(t, srv, `{not json`)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("invalid enum values", func(t *testing.T) {
		resp := submitEvent(t, srv, `{
			"user_id": "u-1",
			"category": "weather",
			"severity": "fatal",
			"title": "x"
		}`)
		require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		defer resp.Body.Close()

		var env struct {
			Error struct {
				Code    string              `json:"code"`
				Details map[string][]string `json:"details"`
			} `json:"error"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
		assert.Equal(t, "validation_error", env.Error.Code)
		assert.Contains(t, env.Error.Details, "category")
		assert.Contains(t, env.Error.Details, "severity")
	})
}

func TestRouter_ListQueryParams(t *testing.T) {
	srv := newTestServer(t)

	for _, body := range []string{
		`{"user_id":"u-1","category":"incident","severity":"warning","title":"breach"}`,
		`{"user_id":"u-1","category":"sensor","severity":"info","title":"battery low"}`,
	} {
		resp := submitEvent(t, srv, body)
		resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	t.Run("severity filter", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/?user_id=u-1&severity=warning")
		require.NoError(t, err)
		var items []notification.Notification
		decodeData(t, resp, &items)
		require.Len(t, items, 1)
		assert.Equal(t, notification.CategoryIncident, items[0].Category)
	})

	t.Run("text search", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/?user_id=u-1&q=battery")
		require.NoError(t, err)
		var items []notification.Notification
		decodeData(t, resp, &items)
		require.Len(t, items, 1)
		assert.Equal(t, notification.CategorySensor, items[0].Category)
	})

	t.Run("all sentinel matches everything", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/?user_id=u-1&severity=all&category=all")
		require.NoError(t, err)
		var items []notification.Notification
		decodeData(t, resp, &items)
		assert.Len(t, items, 2)
	})

	t.Run("invalid enum rejected", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/?user_id=u-1&severity=fatal")
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("invalid view rejected", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/?user_id=u-1&view=archive")
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("missing user id rejected", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/")
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestRouter_MarkAllRead(t *testing.T) {
	srv := newTestServer(t)

	for _, body := range []string{
		`{"user_id":"u-1","category":"incident","severity":"warning","title":"one"}`,
		`{"user_id":"u-1","category":"incident","severity":"info","title":"two"}`,
	} {
		resp := submitEvent(t, srv, body)
		resp.Body.Close()
	}

	resp, err := http.Post(srv.URL+"/read-all?user_id=u-1&severity=info", "application/json", nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var marked map[string]int
	decodeData(t, resp, &marked)
	assert.Equal(t, 1, marked["marked"])
}

func TestRouter_Export(t *testing.T) {
	srv := newTestServer(t)

	resp := submitEvent(t, srv, `{"user_id":"u-1","category":"incident","severity":"critical","title":"breach","message":"sector 4"}`)
	resp.Body.Close()

	resp, err := http.Get(srv.URL + "/export?user_id=u-1")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/csv")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "notifications.csv")

	records, err := csv.NewReader(resp.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"created_at", "severity", "category", "title", "message"}, records[0])
	assert.Equal(t, "breach", records[1][3])
}

func TestRouter_Preferences(t *testing.T) {
	srv := newTestServer(t)

	t.Run("get falls back to default for unknown user", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/preferences?user_id=stranger")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var p preferences.Profile
		decodeData(t, resp, &p)
		assert.True(t, p.Channels.InApp)
		assert.False(t, p.Channels.Email)
	})

	t.Run("put replaces the whole profile", func(t *testing.T) {
		body := `{
			"channels": {"in_app": true, "email": true},
			"categories": {"incident": {"enabled": true, "critical": true}},
			"quiet_hours": {"enabled": true, "start": "22:00", "end": "07:00"}
		}`
		req, err := http.NewRequest(http.MethodPut, srv.URL+"/preferences?user_id=u-2", strings.NewReader(body))
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp, err = http.Get(srv.URL + "/preferences?user_id=u-2")
		require.NoError(t, err)
		var p preferences.Profile
		decodeData(t, resp, &p)
		assert.True(t, p.Channels.Email)
		assert.True(t, p.QuietHours.Enabled)
	})

	t.Run("put with malformed quiet hours is rejected", func(t *testing.T) {
		body := `{"quiet_hours": {"enabled": true, "start": "25:99", "end": "07:00"}}`
		req, err := http.NewRequest(http.MethodPut, srv.URL+"/preferences?user_id=u-2", strings.NewReader(body))
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})
}

package notification_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/notifykit/pkg/notification"
	"github.com/dmitrymomot/notifykit/pkg/validate"
)

func TestIngest(t *testing.T) {
	t.Parallel()

	valid := notification.Event{
		UserID:   "user-123",
		Category: notification.CategoryIncident,
		Severity: notification.SeverityCritical,
		Title:    "Perimeter breach",
		Message:  "Camera 7 reported motion in a restricted zone",
	}

	t.Run("valid event produces canonical notification", func(t *testing.T) {
		t.Parallel()

		n, err := notification.Ingest(valid)
		require.NoError(t, err)

		assert.NotEmpty(t, n.ID)
		assert.Equal(t, "user-123", n.UserID)
		assert.Equal(t, notification.CategoryIncident, n.Category)
		assert.Equal(t, notification.SeverityCritical, n.Severity)
		assert.False(t, n.Read)
		assert.Nil(t, n.ReadAt)
		assert.WithinDuration(t, time.Now(), n.CreatedAt, time.Second)
	})

	t.Run("distinct ids per ingestion", func(t *testing.T) {
		t.Parallel()

		a, err := notification.Ingest(valid)
		require.NoError(t, err)
		b, err := notification.Ingest(valid)
		require.NoError(t, err)
		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("explicit created at is preserved", func(t *testing.T) {
		t.Parallel()

		e := valid
		e.CreatedAt = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		n, err := notification.Ingest(e)
		require.NoError(t, err)
		assert.Equal(t, e.CreatedAt, n.CreatedAt)
	})

	t.Run("title and message are trimmed", func(t *testing.T) {
		t.Parallel()

		e := valid
		e.Title = "  Perimeter breach  "
		e.Message = " details \n"
		n, err := notification.Ingest(e)
		require.NoError(t, err)
		assert.Equal(t, "Perimeter breach", n.Title)
		assert.Equal(t, "details", n.Message)
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		t.Parallel()

		e := valid
		e.Category = "weather"
		_, err := notification.Ingest(e)
		require.Error(t, err)
		assert.True(t, validate.IsValidationError(err))
		assert.True(t, validate.Extract(err).Has("category"))
	})

	t.Run("rejects unknown severity", func(t *testing.T) {
		t.Parallel()

		e := valid
		e.Severity = "fatal"
		_, err := notification.Ingest(e)
		require.Error(t, err)
		assert.True(t, validate.Extract(err).Has("severity"))
	})

	t.Run("rejects missing user and title, collecting all failures", func(t *testing.T) {
		t.Parallel()

		e := valid
		e.UserID = ""
		e.Title = "   "
		_, err := notification.Ingest(e)
		require.Error(t, err)

		errs := validate.Extract(err)
		assert.True(t, errs.Has("user_id"))
		assert.True(t, errs.Has("title"))
	})
}

func TestSeverityStyle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "red", notification.SeverityStyle(notification.SeverityCritical).Color)
	assert.Equal(t, "green", notification.SeverityStyle(notification.SeveritySuccess).Color)

	// Unknown severities resolve to the info style rather than a constructed
	// identifier.
	assert.Equal(t, notification.SeverityStyle(notification.SeverityInfo), notification.SeverityStyle("bogus"))
}

func TestEnumValidity(t *testing.T) {
	t.Parallel()

	for _, c := range notification.Categories() {
		assert.True(t, c.Valid(), c)
	}
	for _, s := range notification.Severities() {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, notification.Category("weather").Valid())
	assert.False(t, notification.Severity("fatal").Valid())
	assert.False(t, notification.Channel("pigeon").Valid())
}

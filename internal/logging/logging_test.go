package logging_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/logging"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDBHandlerStoresErrorsOnly(t *testing.T) {
	db := testutil.OpenDB(t)
	h := logging.NewDBHandler(db, time.Hour)
	defer h.Stop()

	logger := slog.New(h).With("request_id", "req-1")
	logger.Info("ignored")
	logger.Error("order insert failed", "error", errors.New("boom"), "path", "/api/orders", "user_id", uint(7), "section", "SEO")
	h.Flush()

	var rows []models.SystemLog
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	entry := rows[0]
	assert.Equal(t, "ERROR", entry.Level)
	assert.Equal(t, "order insert failed", entry.Message)
	assert.Equal(t, "req-1", entry.RequestID)
	assert.Equal(t, "/api/orders", entry.Path)
	assert.Equal(t, "boom", entry.Error)
	require.NotNil(t, entry.UserID)
	assert.Equal(t, uint(7), *entry.UserID)
	assert.JSONEq(t, `{"section":"SEO"}`, string(entry.Extra))
}

func TestPurgeOlderThan(t *testing.T) {
	db := testutil.OpenDB(t)
	h := logging.NewDBHandler(db, time.Hour)
	defer h.Stop()

	old := slog.NewRecord(time.Now().AddDate(0, 0, -40), slog.LevelError, "stale", 0)
	fresh := slog.NewRecord(time.Now(), slog.LevelError, "recent", 0)
	require.NoError(t, h.Handle(t.Context(), old))
	require.NoError(t, h.Handle(t.Context(), fresh))
	h.Flush()

	assert.Equal(t, int64(1), logging.PurgeOlderThan(db, time.Now().AddDate(0, 0, -30)))

	var left []models.SystemLog
	require.NoError(t, db.Find(&left).Error)
	require.Len(t, left, 1)
	assert.Equal(t, "recent", left[0].Message)
}

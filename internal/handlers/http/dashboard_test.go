package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cipettelens/cipettelens/internal/models"
)

func TestDashboardHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mttr := 4.5
	reader := NewMockReader(ctrl)
	reader.EXPECT().GetRepositories(gomock.Any()).Return([]string{"org/repoA", "org/empty"}, nil)
	reader.EXPECT().GetLatestByRepository(gomock.Any(), "org/repoA").Return(&models.RepositoryMetrics{
		Repository: "org/repoA",
		Duration:   &models.DurationMetrics{Average: 120.5},
		Builds:     &models.BuildMetrics{Total: 100, Successful: 95, Failed: 5},
		MTTR:       &mttr,
		Timestamp:  time.Date(2026, 8, 20, 10, 30, 0, 0, time.UTC),
	}, nil)
	reader.EXPECT().GetLatestByRepository(gomock.Any(), "org/empty").Return(nil, nil)

	rec := httptest.NewRecorder()
	NewDashboardHandler(reader).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")

	body := rec.Body.String()
	assert.Contains(t, body, "org/repoA")
	assert.Contains(t, body, "120.5")
	assert.Contains(t, body, "95%")
	assert.Contains(t, body, "4.5h")
	assert.Contains(t, body, "2026-08-20 10:30")
	// Repositories without data are left off the table.
	assert.NotContains(t, body, "org/empty")
}

func TestDashboardHandler_ReaderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockReader(ctrl)
	reader.EXPECT().GetRepositories(gomock.Any()).Return(nil, assert.AnError)

	rec := httptest.NewRecorder()
	NewDashboardHandler(reader).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

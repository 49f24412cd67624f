package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cipettelens/cipettelens/internal/models"
)

func TestCollectAndSave_ValidationErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepository(ctrl)
	collector := NewMockCollector(ctrl)

	tests := []struct {
		name         string
		token        string
		repositories []string
		wantErr      error
	}{
		{
			name:         "missing token",
			token:        "",
			repositories: []string{"org/repo"},
			wantErr:      ErrMissingToken,
		},
		{
			name:         "no repositories",
			token:        "ghp_token",
			repositories: nil,
			wantErr:      ErrNoRepositories,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMetricsService(repo, collector, tt.token, tt.repositories, nil)
			_, err := svc.CollectAndSave(context.Background())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCollectAndSave_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepository(ctrl)
	collector := NewMockCollector(ctrl)
	ctx := context.Background()

	repos := []string{"org/repoA", "org/repoB"}
	collected := &models.CIMetrics{
		Repositories: []models.RepositoryMetrics{
			{Repository: "org/repoA", Timestamp: time.Now()},
			{Repository: "org/repoB", Timestamp: time.Now()},
		},
		Timestamp: time.Now(),
	}

	collector.EXPECT().Collect(ctx, repos, "ghp_token").Return(collected, nil)
	repo.EXPECT().Save(ctx, collected).Return(nil)

	svc := NewMetricsService(repo, collector, "ghp_token", repos, nil)
	metrics, err := svc.CollectAndSave(ctx)
	require.NoError(t, err)
	assert.Len(t, metrics.Repositories, 2)
}

func TestCollectAndSave_CollectorError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepository(ctrl)
	collector := NewMockCollector(ctrl)
	ctx := context.Background()

	wantErr := errors.New("analyzer exploded")
	collector.EXPECT().Collect(ctx, gomock.Any(), gomock.Any()).Return(nil, wantErr)

	svc := NewMetricsService(repo, collector, "ghp_token", []string{"org/repo"}, nil)
	_, err := svc.CollectAndSave(ctx)
	assert.ErrorIs(t, err, wantErr)
}

func TestCollectAndSave_SaveError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepository(ctrl)
	collector := NewMockCollector(ctrl)
	ctx := context.Background()

	collected := &models.CIMetrics{Timestamp: time.Now()}
	wantErr := errors.New("disk full")

	collector.EXPECT().Collect(ctx, gomock.Any(), gomock.Any()).Return(collected, nil)
	repo.EXPECT().Save(ctx, collected).Return(wantErr)

	svc := NewMetricsService(repo, collector, "ghp_token", []string{"org/repo"}, nil)
	_, err := svc.CollectAndSave(ctx)
	assert.ErrorIs(t, err, wantErr)
}

func TestReadPassthrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepository(ctrl)
	collector := NewMockCollector(ctrl)
	ctx := context.Background()
	svc := NewMetricsService(repo, collector, "t", []string{"org/repo"}, nil)

	snapshots := []models.RepositoryMetrics{{Repository: "org/repo"}}
	repo.EXPECT().GetByRepository(ctx, "org/repo", 10).Return(snapshots, nil)
	got, err := svc.GetByRepository(ctx, "org/repo", 10)
	require.NoError(t, err)
	assert.Equal(t, snapshots, got)

	repo.EXPECT().GetAll(ctx, 100).Return(snapshots, nil)
	got, err = svc.GetAll(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, snapshots, got)

	repo.EXPECT().GetByMetricName(ctx, models.NameMTTR, 5).Return(snapshots, nil)
	got, err = svc.GetByMetricName(ctx, models.NameMTTR, 5)
	require.NoError(t, err)
	assert.Equal(t, snapshots, got)

	latest := &models.RepositoryMetrics{Repository: "org/repo"}
	repo.EXPECT().GetLatestByRepository(ctx, "org/repo").Return(latest, nil)
	gotLatest, err := svc.GetLatestByRepository(ctx, "org/repo")
	require.NoError(t, err)
	assert.Equal(t, latest, gotLatest)

	history := []models.MetricRow{{Repository: "org/repo", MetricName: models.NameMTTR, Value: 4.2}}
	repo.EXPECT().GetMetricHistory(ctx, "org/repo", models.NameMTTR, 50).Return(history, nil)
	gotHistory, err := svc.GetMetricHistory(ctx, "org/repo", models.NameMTTR, 50)
	require.NoError(t, err)
	assert.Equal(t, history, gotHistory)

	repo.EXPECT().GetRepositories(ctx).Return([]string{"org/repo"}, nil)
	names, err := svc.GetRepositories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"org/repo"}, names)

	repo.EXPECT().GetMetricNames(ctx).Return([]string{models.NameMTTR}, nil)
	names, err = svc.GetMetricNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{models.NameMTTR}, names)

	repo.EXPECT().Save(ctx, gomock.AssignableToTypeOf(&models.CIMetrics{})).Return(nil)
	assert.NoError(t, svc.Save(ctx, &models.CIMetrics{}))
}

package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/cipettelens/cipettelens/internal/models"
)

// Configuration errors, raised before any storage or analyzer work.
var (
	ErrMissingToken   = errors.New("github token is not configured")
	ErrNoRepositories = errors.New("no target repositories configured")
)

// Collector produces one metrics snapshot for the given repositories.
type Collector interface {
	Collect(ctx context.Context, repositories []string, token string) (*models.CIMetrics, error)
}

// Repository persists and queries metric snapshots.
type Repository interface {
	Save(ctx context.Context, metrics *models.CIMetrics) error
	GetByRepository(ctx context.Context, repository string, limit int) ([]models.RepositoryMetrics, error)
	GetAll(ctx context.Context, limit int) ([]models.RepositoryMetrics, error)
	GetByMetricName(ctx context.Context, metricName string, limit int) ([]models.RepositoryMetrics, error)
	GetLatestByRepository(ctx context.Context, repository string) (*models.RepositoryMetrics, error)
	GetMetricHistory(ctx context.Context, repository, metricName string, limit int) ([]models.MetricRow, error)
	GetRepositories(ctx context.Context) ([]string, error)
	GetMetricNames(ctx context.Context) ([]string, error)
}

// MetricsService orchestrates collection runs and exposes the repository's
// read operations to the CLI and web layers.
type MetricsService struct {
	repo         Repository
	collector    Collector
	token        string
	repositories []string
	logger       *zap.Logger
}

// NewMetricsService creates a service with its dependencies injected.
func NewMetricsService(
	repo Repository,
	collector Collector,
	token string,
	repositories []string,
	logger *zap.Logger,
) *MetricsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MetricsService{
		repo:         repo,
		collector:    collector,
		token:        token,
		repositories: repositories,
		logger:       logger,
	}
}

// CollectAndSave runs one collection and persists the resulting snapshot.
// Configuration is validated first so a misconfigured process fails before
// touching storage or the analyzer.
func (svc *MetricsService) CollectAndSave(ctx context.Context) (*models.CIMetrics, error) {
	if svc.token == "" {
		return nil, ErrMissingToken
	}
	if len(svc.repositories) == 0 {
		return nil, ErrNoRepositories
	}

	svc.logger.Info("collecting metrics", zap.Int("repositories", len(svc.repositories)))

	metrics, err := svc.collector.Collect(ctx, svc.repositories, svc.token)
	if err != nil {
		return nil, err
	}
	if err := svc.repo.Save(ctx, metrics); err != nil {
		return nil, err
	}

	svc.logger.Info("metrics saved", zap.Int("repositories", len(metrics.Repositories)))
	return metrics, nil
}

// Save persists an externally collected snapshot.
func (svc *MetricsService) Save(ctx context.Context, metrics *models.CIMetrics) error {
	return svc.repo.Save(ctx, metrics)
}

// GetByRepository returns snapshots for one repository.
func (svc *MetricsService) GetByRepository(ctx context.Context, repository string, limit int) ([]models.RepositoryMetrics, error) {
	return svc.repo.GetByRepository(ctx, repository, limit)
}

// GetAll returns snapshots across all repositories.
func (svc *MetricsService) GetAll(ctx context.Context, limit int) ([]models.RepositoryMetrics, error) {
	return svc.repo.GetAll(ctx, limit)
}

// GetByMetricName returns snapshots filtered to one metric name.
func (svc *MetricsService) GetByMetricName(ctx context.Context, metricName string, limit int) ([]models.RepositoryMetrics, error) {
	return svc.repo.GetByMetricName(ctx, metricName, limit)
}

// GetLatestByRepository returns a repository's most recent snapshot, or
// nil when it has none.
func (svc *MetricsService) GetLatestByRepository(ctx context.Context, repository string) (*models.RepositoryMetrics, error) {
	return svc.repo.GetLatestByRepository(ctx, repository)
}

// GetMetricHistory returns raw historical rows for one metric.
func (svc *MetricsService) GetMetricHistory(ctx context.Context, repository, metricName string, limit int) ([]models.MetricRow, error) {
	return svc.repo.GetMetricHistory(ctx, repository, metricName, limit)
}

// GetRepositories lists all known repositories.
func (svc *MetricsService) GetRepositories(ctx context.Context) ([]string, error) {
	return svc.repo.GetRepositories(ctx)
}

// GetMetricNames lists all known metric names.
func (svc *MetricsService) GetMetricNames(ctx context.Context) ([]string, error) {
	return svc.repo.GetMetricNames(ctx)
}

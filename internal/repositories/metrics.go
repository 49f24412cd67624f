package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/cipettelens/cipettelens/internal/cache"
	"github.com/cipettelens/cipettelens/internal/models"
	"github.com/cipettelens/cipettelens/internal/storage"
)

// cacheTTL bounds how long read results are served without hitting
// storage. Writes do not invalidate: entries age out.
const cacheTTL = 5 * time.Minute

// MetricsRepository translates between the domain model and the flat
// metrics table, with read-through caching of the hot query paths.
type MetricsRepository struct {
	pool   *storage.Pool
	lists  *cache.TTLCache[[]models.RepositoryMetrics]
	latest *cache.TTLCache[*models.RepositoryMetrics]
	logger *zap.Logger
}

// NewMetricsRepository creates a repository over the given connection pool.
func NewMetricsRepository(pool *storage.Pool, logger *zap.Logger) *MetricsRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MetricsRepository{
		pool:   pool,
		lists:  cache.New[[]models.RepositoryMetrics](cacheTTL),
		latest: cache.New[*models.RepositoryMetrics](cacheTTL),
		logger: logger,
	}
}

// Save flattens every repository snapshot in the collection into metric
// rows and inserts them in a single transaction: either all rows commit
// or none do. Rows are append-only; existing rows are never mutated.
func (r *MetricsRepository) Save(ctx context.Context, metrics *models.CIMetrics) error {
	rows := flatten(metrics)
	if len(rows) == 0 {
		return nil
	}

	conn, err := r.pool.Acquire()
	if err != nil {
		return storageErr("save metrics", err)
	}
	defer r.pool.Release(conn)

	tx, err := conn.BeginTxx(ctx, nil)
	if err != nil {
		return storageErr("save metrics", err)
	}

	_, err = tx.NamedExecContext(ctx, `
		INSERT INTO metrics (repository, metric_name, value, timestamp)
		VALUES (:repository, :metric_name, :value, :timestamp)
	`, rows)
	if err != nil {
		tx.Rollback()
		return storageErr("save metrics", err)
	}
	if err := tx.Commit(); err != nil {
		return storageErr("save metrics", err)
	}

	r.logger.Debug("saved metrics",
		zap.Int("rows", len(rows)),
		zap.Int("repositories", len(metrics.Repositories)),
	)
	return nil
}

// flatten turns present sub-aggregates into (repository, name, value)
// rows, all stamped with the snapshot's collection timestamp.
func flatten(metrics *models.CIMetrics) []models.MetricRow {
	if metrics == nil {
		return nil
	}
	var rows []models.MetricRow
	for _, repo := range metrics.Repositories {
		ts := repo.Timestamp
		if ts.IsZero() {
			ts = metrics.Timestamp
		}
		if ts.IsZero() {
			ts = time.Now().UTC()
		}
		add := func(name string, value float64) {
			rows = append(rows, models.MetricRow{
				Repository: repo.Repository,
				MetricName: name,
				Value:      value,
				Timestamp:  ts,
			})
		}
		if d := repo.Duration; d != nil {
			add(models.NameDurationAverage, d.Average)
			add(models.NameDurationMedian, d.Median)
			add(models.NameDurationP95, d.P95)
		}
		if t := repo.Throughput; t != nil {
			add(models.NameThroughputDaily, t.Daily)
			add(models.NameThroughputWeekly, t.Weekly)
		}
		if b := repo.Builds; b != nil {
			add(models.NameBuildsTotal, float64(b.Total))
			add(models.NameBuildsSuccessful, float64(b.Successful))
			add(models.NameBuildsFailed, float64(b.Failed))
		}
		if repo.MTTR != nil {
			add(models.NameMTTR, *repo.MTTR)
		}
		if repo.SuccessRate != nil {
			add(models.NameSuccessRate, *repo.SuccessRate)
		}
	}
	return rows
}

// GetByRepository returns reconstructed snapshots for one repository,
// newest first, reading through the cache.
func (r *MetricsRepository) GetByRepository(ctx context.Context, repository string, limit int) ([]models.RepositoryMetrics, error) {
	key := fmt.Sprintf("metrics_repo_%s_%d", repository, limit)
	if cached, ok := r.lists.Get(key); ok {
		return cached, nil
	}

	rows, err := r.selectRows(ctx, `
		SELECT id, repository, metric_name, value, timestamp
		FROM metrics
		WHERE repository = ?
		ORDER BY timestamp DESC, metric_name
		LIMIT ?
	`, repository, limit)
	if err != nil {
		return nil, storageErr("get metrics for repository "+repository, err)
	}

	result := buildRepositoryMetrics(rows)
	r.lists.Set(key, result)
	return result, nil
}

// GetAll returns reconstructed snapshots across every repository. Not
// cached: the unbounded key cardinality makes caching low-value.
func (r *MetricsRepository) GetAll(ctx context.Context, limit int) ([]models.RepositoryMetrics, error) {
	rows, err := r.selectRows(ctx, `
		SELECT id, repository, metric_name, value, timestamp
		FROM metrics
		ORDER BY repository, timestamp DESC, metric_name
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, storageErr("get all metrics", err)
	}
	return buildRepositoryMetrics(rows), nil
}

// GetByMetricName returns snapshots reconstructed from rows of a single
// metric name; only the sub-aggregate containing that name is populated.
func (r *MetricsRepository) GetByMetricName(ctx context.Context, metricName string, limit int) ([]models.RepositoryMetrics, error) {
	key := fmt.Sprintf("metrics_name_%s_%d", metricName, limit)
	if cached, ok := r.lists.Get(key); ok {
		return cached, nil
	}

	rows, err := r.selectRows(ctx, `
		SELECT id, repository, metric_name, value, timestamp
		FROM metrics
		WHERE metric_name = ?
		ORDER BY repository, timestamp DESC
		LIMIT ?
	`, metricName, limit)
	if err != nil {
		return nil, storageErr("get metrics by name "+metricName, err)
	}

	result := buildRepositoryMetrics(rows)
	r.lists.Set(key, result)
	return result, nil
}

// GetLatestByRepository reconstructs the single snapshot at the
// repository's most recent collection timestamp. Returns nil when the
// repository has no rows.
func (r *MetricsRepository) GetLatestByRepository(ctx context.Context, repository string) (*models.RepositoryMetrics, error) {
	key := "latest_metrics_" + repository
	if cached, ok := r.latest.Get(key); ok {
		return cached, nil
	}

	conn, err := r.pool.Acquire()
	if err != nil {
		return nil, storageErr("get latest metrics for "+repository, err)
	}
	defer r.pool.Release(conn)

	var latest time.Time
	err = conn.GetContext(ctx, &latest, `
		SELECT timestamp
		FROM metrics
		WHERE repository = ?
		ORDER BY timestamp DESC
		LIMIT 1
	`, repository)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr("get latest metrics for "+repository, err)
	}

	var rows []models.MetricRow
	err = conn.SelectContext(ctx, &rows, `
		SELECT id, repository, metric_name, value, timestamp
		FROM metrics
		WHERE repository = ? AND timestamp = ?
	`, repository, latest)
	if err != nil {
		return nil, storageErr("get latest metrics for "+repository, err)
	}

	result := buildRepositoryMetrics(rows)
	if len(result) == 0 {
		return nil, nil
	}
	r.latest.Set(key, &result[0])
	return &result[0], nil
}

// GetMetricHistory returns uninterpreted rows for one metric of one
// repository, most recent first. This is the one read path that bypasses
// aggregate reconstruction.
func (r *MetricsRepository) GetMetricHistory(ctx context.Context, repository, metricName string, limit int) ([]models.MetricRow, error) {
	rows, err := r.selectRows(ctx, `
		SELECT id, repository, metric_name, value, timestamp
		FROM metrics
		WHERE repository = ? AND metric_name = ?
		ORDER BY timestamp DESC
		LIMIT ?
	`, repository, metricName, limit)
	if err != nil {
		return nil, storageErr(fmt.Sprintf("get history for %s/%s", repository, metricName), err)
	}
	return rows, nil
}

// GetRepositories lists every distinct repository, sorted.
func (r *MetricsRepository) GetRepositories(ctx context.Context) ([]string, error) {
	return r.selectStrings(ctx, "get repositories", `
		SELECT DISTINCT repository
		FROM metrics
		ORDER BY repository
	`)
}

// GetMetricNames lists every distinct metric name, sorted.
func (r *MetricsRepository) GetMetricNames(ctx context.Context) ([]string, error) {
	return r.selectStrings(ctx, "get metric names", `
		SELECT DISTINCT metric_name
		FROM metrics
		ORDER BY metric_name
	`)
}

// SweepCache removes expired entries from both read caches and returns
// how many were removed.
func (r *MetricsRepository) SweepCache() int {
	return r.lists.CleanupExpired() + r.latest.CleanupExpired()
}

func (r *MetricsRepository) selectRows(ctx context.Context, query string, args ...any) ([]models.MetricRow, error) {
	conn, err := r.pool.Acquire()
	if err != nil {
		return nil, err
	}
	defer r.pool.Release(conn)

	var rows []models.MetricRow
	if err := conn.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *MetricsRepository) selectStrings(ctx context.Context, op, query string) ([]string, error) {
	conn, err := r.pool.Acquire()
	if err != nil {
		return nil, storageErr(op, err)
	}
	defer r.pool.Release(conn)

	var values []string
	if err := conn.SelectContext(ctx, &values, query); err != nil {
		return nil, storageErr(op, err)
	}
	return values, nil
}

type snapshotKey struct {
	repository string
	unixNano   int64
}

// buildRepositoryMetrics groups rows by (repository, timestamp) and
// materializes one snapshot per group. A sub-aggregate is materialized
// only when at least one of its constituent names is present; missing
// constituents within a present group default to zero. Names outside the
// vocabulary are ignored.
func buildRepositoryMetrics(rows []models.MetricRow) []models.RepositoryMetrics {
	if len(rows) == 0 {
		return nil
	}

	values := make(map[snapshotKey]map[string]float64)
	stamps := make(map[snapshotKey]time.Time)
	var order []snapshotKey

	for _, row := range rows {
		key := snapshotKey{repository: row.Repository, unixNano: row.Timestamp.UnixNano()}
		group, ok := values[key]
		if !ok {
			group = make(map[string]float64)
			values[key] = group
			stamps[key] = row.Timestamp
			order = append(order, key)
		}
		group[row.MetricName] = row.Value
	}

	result := make([]models.RepositoryMetrics, 0, len(order))
	for _, key := range order {
		group := values[key]

		present := make(map[models.AggregateKind]bool)
		for name := range group {
			if kind, ok := models.KindOf(name); ok {
				present[kind] = true
			}
		}

		snapshot := models.RepositoryMetrics{
			Repository: key.repository,
			Timestamp:  stamps[key],
		}
		if present[models.KindDuration] {
			snapshot.Duration = &models.DurationMetrics{
				Average: group[models.NameDurationAverage],
				Median:  group[models.NameDurationMedian],
				P95:     group[models.NameDurationP95],
			}
		}
		if present[models.KindThroughput] {
			snapshot.Throughput = &models.ThroughputMetrics{
				Daily:  group[models.NameThroughputDaily],
				Weekly: group[models.NameThroughputWeekly],
			}
		}
		if present[models.KindBuilds] {
			snapshot.Builds = &models.BuildMetrics{
				Total:      int(group[models.NameBuildsTotal]),
				Successful: int(group[models.NameBuildsSuccessful]),
				Failed:     int(group[models.NameBuildsFailed]),
			}
		}
		if present[models.KindMTTR] {
			mttr := group[models.NameMTTR]
			snapshot.MTTR = &mttr
		}
		if present[models.KindSuccessRate] {
			rate := group[models.NameSuccessRate]
			snapshot.SuccessRate = &rate
		}
		result = append(result, snapshot)
	}
	return result
}

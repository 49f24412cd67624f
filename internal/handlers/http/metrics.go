package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/cipettelens/cipettelens/internal/models"
)

// Reader exposes the repository's read operations to the web layer.
type Reader interface {
	GetByRepository(ctx context.Context, repository string, limit int) ([]models.RepositoryMetrics, error)
	GetAll(ctx context.Context, limit int) ([]models.RepositoryMetrics, error)
	GetByMetricName(ctx context.Context, metricName string, limit int) ([]models.RepositoryMetrics, error)
	GetLatestByRepository(ctx context.Context, repository string) (*models.RepositoryMetrics, error)
	GetMetricHistory(ctx context.Context, repository, metricName string, limit int) ([]models.MetricRow, error)
	GetRepositories(ctx context.Context) ([]string, error)
	GetMetricNames(ctx context.Context) ([]string, error)
}

// Saver persists a collected snapshot.
type Saver interface {
	Save(ctx context.Context, metrics *models.CIMetrics) error
}

// Version reported by the health endpoint.
const Version = "1.0.0"

// MemoryStater reports process memory usage for the health endpoint.
type MemoryStater interface {
	RSSBytes() (uint64, error)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError renders a core failure as a JSON error body, never a raw
// engine error page.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func queryLimit(r *http.Request, fallback int) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return fallback
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return fallback
	}
	return limit
}

func repositoryParam(r *http.Request) string {
	return chi.URLParam(r, "owner") + "/" + chi.URLParam(r, "repo")
}

// NewHealthHandler reports service health and process memory usage.
//
// @Summary Health check
// @Description Returns service status, version and process memory usage
// @Tags system
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/health [get]
func NewHealthHandler(mem MemoryStater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body := map[string]any{
			"status":  "healthy",
			"version": Version,
		}
		if mem != nil {
			if rss, err := mem.RSSBytes(); err == nil {
				body["memory_rss_bytes"] = rss
			}
		}
		writeJSON(w, http.StatusOK, body)
	}
}

// NewMetricsListHandler lists reconstructed snapshots, optionally filtered
// to one metric name.
//
// @Summary List metrics
// @Description Returns reconstructed per-repository snapshots across all repositories
// @Tags metrics
// @Produce json
// @Param limit query int false "Maximum rows to read" default(1000)
// @Param metric query string false "Filter to one metric name"
// @Success 200 {object} map[string][]models.RepositoryMetrics
// @Failure 500 {object} map[string]string
// @Router /api/metrics [get]
func NewMetricsListHandler(reader Reader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var (
			metrics []models.RepositoryMetrics
			err     error
		)
		if name := r.URL.Query().Get("metric"); name != "" {
			metrics, err = reader.GetByMetricName(ctx, name, queryLimit(r, 100))
		} else {
			metrics, err = reader.GetAll(ctx, queryLimit(r, 1000))
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if metrics == nil {
			metrics = []models.RepositoryMetrics{}
		}
		writeJSON(w, http.StatusOK, map[string][]models.RepositoryMetrics{"metrics": metrics})
	}
}

// NewMetricsByRepositoryHandler lists snapshots for one repository.
//
// @Summary List metrics for a repository
// @Tags metrics
// @Produce json
// @Param owner path string true "Repository owner"
// @Param repo path string true "Repository name"
// @Param limit query int false "Maximum rows to read" default(100)
// @Success 200 {object} map[string][]models.RepositoryMetrics
// @Failure 500 {object} map[string]string
// @Router /api/metrics/{owner}/{repo} [get]
func NewMetricsByRepositoryHandler(reader Reader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metrics, err := reader.GetByRepository(r.Context(), repositoryParam(r), queryLimit(r, 100))
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if metrics == nil {
			metrics = []models.RepositoryMetrics{}
		}
		writeJSON(w, http.StatusOK, map[string][]models.RepositoryMetrics{"metrics": metrics})
	}
}

// NewLatestMetricsHandler returns a repository's most recent snapshot.
//
// @Summary Latest metrics for a repository
// @Tags metrics
// @Produce json
// @Param owner path string true "Repository owner"
// @Param repo path string true "Repository name"
// @Success 200 {object} map[string]models.RepositoryMetrics
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/metrics/{owner}/{repo}/latest [get]
func NewLatestMetricsHandler(reader Reader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		latest, err := reader.GetLatestByRepository(r.Context(), repositoryParam(r))
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if latest == nil {
			writeError(w, http.StatusNotFound, "no metrics found for repository")
			return
		}
		writeJSON(w, http.StatusOK, map[string]*models.RepositoryMetrics{"metrics": latest})
	}
}

// NewMetricHistoryHandler returns raw historical rows for one metric.
//
// @Summary Metric history
// @Description Returns uninterpreted historical values for one metric, most recent first
// @Tags metrics
// @Produce json
// @Param owner path string true "Repository owner"
// @Param repo path string true "Repository name"
// @Param metric path string true "Metric name"
// @Param limit query int false "Maximum rows" default(100)
// @Success 200 {object} map[string][]models.MetricRow
// @Failure 500 {object} map[string]string
// @Router /api/metrics/{owner}/{repo}/{metric}/history [get]
func NewMetricHistoryHandler(reader Reader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		history, err := reader.GetMetricHistory(
			r.Context(),
			repositoryParam(r),
			chi.URLParam(r, "metric"),
			queryLimit(r, 100),
		)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if history == nil {
			history = []models.MetricRow{}
		}
		writeJSON(w, http.StatusOK, map[string][]models.MetricRow{"history": history})
	}
}

// NewRepositoriesHandler lists all known repositories.
//
// @Summary List repositories
// @Tags metrics
// @Produce json
// @Success 200 {object} map[string][]string
// @Failure 500 {object} map[string]string
// @Router /api/repositories [get]
func NewRepositoriesHandler(reader Reader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		repositories, err := reader.GetRepositories(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if repositories == nil {
			repositories = []string{}
		}
		writeJSON(w, http.StatusOK, map[string][]string{"repositories": repositories})
	}
}

// NewMetricNamesHandler lists all known metric names.
//
// @Summary List metric names
// @Tags metrics
// @Produce json
// @Success 200 {object} map[string][]string
// @Failure 500 {object} map[string]string
// @Router /api/metric-names [get]
func NewMetricNamesHandler(reader Reader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		names, err := reader.GetMetricNames(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if names == nil {
			names = []string{}
		}
		writeJSON(w, http.StatusOK, map[string][]string{"metric_names": names})
	}
}

// NewIngestHandler accepts an analyzer-shaped document and persists it.
// This is the server-side half of the collector's push mode.
//
// @Summary Ingest a metrics document
// @Description Accepts an analyzer-shaped JSON document and saves it as one collection run
// @Tags metrics
// @Accept json
// @Produce json
// @Param report body models.Report true "Analyzer report document"
// @Success 200 {object} map[string]int
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/metrics [post]
func NewIngestHandler(saver Saver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var report models.Report
		dec := json.NewDecoder(r.Body)
		defer r.Body.Close()

		if err := dec.Decode(&report); err != nil {
			writeError(w, http.StatusBadRequest, "invalid report document")
			return
		}

		metrics := models.NewCIMetricsFromReport(&report, time.Now().UTC())
		if err := saver.Save(r.Context(), metrics); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]int{"saved": len(metrics.Repositories)})
	}
}

package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/cipettelens/cipettelens/internal/models"
)

// MetricsFacade pushes collected snapshots to a running server's ingest
// endpoint over HTTP.
type MetricsFacade struct {
	client *resty.Client
}

// NewMetricsFacade creates a facade over the given resty client. The
// client's base URL must point at the server.
func NewMetricsFacade(client *resty.Client) *MetricsFacade {
	return &MetricsFacade{client: client}
}

// Push sends one snapshot as an analyzer-shaped document.
func (f *MetricsFacade) Push(ctx context.Context, metrics *models.CIMetrics) error {
	resp, err := f.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.NewReport(metrics)).
		Post("/api/metrics")
	if err != nil {
		return err
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("push metrics: unexpected status code: %s", http.StatusText(resp.StatusCode()))
	}
	return nil
}

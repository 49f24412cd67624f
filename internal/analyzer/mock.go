package analyzer

import (
	"math/rand"
	"time"

	"github.com/cipettelens/cipettelens/internal/models"
)

// MockGenerator produces plausible random CI metrics for development and
// testing without a real analyzer run.
type MockGenerator struct {
	rng *rand.Rand
}

// NewMockGenerator creates a generator. A non-zero seed makes the output
// deterministic.
func NewMockGenerator(seed int64) *MockGenerator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &MockGenerator{rng: rand.New(rand.NewSource(seed))}
}

// Generate returns one full snapshot covering every given repository.
func (g *MockGenerator) Generate(repositories []string) *models.CIMetrics {
	now := time.Now().UTC()
	metrics := &models.CIMetrics{Timestamp: now}
	for _, repo := range repositories {
		metrics.Repositories = append(metrics.Repositories, g.generateRepository(repo, now))
	}
	return metrics
}

func (g *MockGenerator) generateRepository(repository string, ts time.Time) models.RepositoryMetrics {
	duration := &models.DurationMetrics{
		Average: g.uniform(5.0, 30.0),
		Median:  g.uniform(8.0, 25.0),
		P95:     g.uniform(15.0, 45.0),
	}
	throughput := &models.ThroughputMetrics{
		Daily:  g.uniform(10.0, 50.0),
		Weekly: g.uniform(50.0, 200.0),
	}

	total := 50 + g.rng.Intn(451)
	successful := int(float64(total) * g.uniform(0.7, 0.95))
	builds := &models.BuildMetrics{
		Total:      total,
		Successful: successful,
		Failed:     total - successful,
	}

	mttr := g.uniform(2.0, 12.0) // hours
	successRate := builds.SuccessRate()

	return models.RepositoryMetrics{
		Repository:  repository,
		Duration:    duration,
		Throughput:  throughput,
		Builds:      builds,
		MTTR:        &mttr,
		SuccessRate: &successRate,
		Timestamp:   ts,
	}
}

func (g *MockGenerator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

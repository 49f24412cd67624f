package configs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServerConfig_FirstValueWins(t *testing.T) {
	cfg, err := NewServerConfig(
		WithAddress("env:9090", "flag:8080"),
		WithDatabasePath("", "data/metrics.sqlite"),
		WithMaxConns(0, 5),
		WithCollectInterval(0, 0, 3600),
		WithAnalyzerImage("", ""),
		WithAnalyzerDebug(false, true),
		WithGitHubToken("", "ghp_token"),
		WithRepositories("", "org/a, org/b"),
	)
	require.NoError(t, err)

	assert.Equal(t, "env:9090", cfg.Address)
	assert.Equal(t, "data/metrics.sqlite", cfg.DatabasePath)
	assert.Equal(t, 5, cfg.MaxConns)
	assert.Equal(t, 3600, cfg.CollectInterval)
	assert.Empty(t, cfg.AnalyzerImage)
	assert.True(t, cfg.AnalyzerDebug)
	assert.Equal(t, "ghp_token", cfg.GitHubToken)
	assert.Equal(t, []string{"org/a", "org/b"}, cfg.Repositories)
}

func TestNewServerConfig_Defaults(t *testing.T) {
	cfg, err := NewServerConfig()
	require.NoError(t, err)

	assert.Empty(t, cfg.Address)
	assert.Zero(t, cfg.MaxConns)
	assert.False(t, cfg.AnalyzerDebug)
	assert.Nil(t, cfg.Repositories)
}

func TestSplitRepositories(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty", "", nil},
		{"single", "org/repo", []string{"org/repo"}},
		{"multiple with spaces", " org/a , org/b ,org/c", []string{"org/a", "org/b", "org/c"}},
		{"trailing comma", "org/a,", []string{"org/a"}},
		{"only commas", ",,,", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitRepositories(tt.raw))
		})
	}
}

func TestNewCollectorConfig(t *testing.T) {
	cfg, err := NewCollectorConfig(
		WithCollectorDatabasePath("", "metrics.sqlite"),
		WithServerURL("http://localhost:8080"),
		WithCollectorAnalyzerImage("kesin11/cianalyzer:v5"),
		WithCollectorAnalyzerDebug(true),
		WithCollectorGitHubToken("ghp_token", "ignored"),
		WithCollectorRepositories("org/a,org/b"),
	)
	require.NoError(t, err)

	assert.Equal(t, "metrics.sqlite", cfg.DatabasePath)
	assert.Equal(t, "http://localhost:8080", cfg.ServerURL)
	assert.Equal(t, "kesin11/cianalyzer:v5", cfg.AnalyzerImage)
	assert.True(t, cfg.AnalyzerDebug)
	assert.Equal(t, "ghp_token", cfg.GitHubToken)
	assert.Equal(t, []string{"org/a", "org/b"}, cfg.Repositories)
}

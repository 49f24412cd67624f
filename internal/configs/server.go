package configs

import (
	"strings"
)

// ServerConfig holds configuration for the dashboard/API server.
type ServerConfig struct {
	Address         string   `json:"address"`          // Listen address
	DatabasePath    string   `json:"database_path"`    // SQLite database file
	MaxConns        int      `json:"max_conns"`        // Connection pool bound
	CollectInterval int      `json:"collect_interval"` // Seconds between background collection runs (0 = off)
	AnalyzerImage   string   `json:"analyzer_image"`   // Analyzer container image
	AnalyzerDebug   bool     `json:"analyzer_debug"`   // Analyzer debug mode
	GitHubToken     string   `json:"-"`                // Credential for the analyzer
	Repositories    []string `json:"repositories"`     // Target repositories
}

// ServerConfigOpt applies one option to a ServerConfig.
type ServerConfigOpt func(*ServerConfig) error

// NewServerConfig creates a ServerConfig by applying the given options.
func NewServerConfig(opts ...ServerConfigOpt) (*ServerConfig, error) {
	cfg := &ServerConfig{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// WithAddress sets the listen address to the first non-empty value.
func WithAddress(addrs ...string) ServerConfigOpt {
	return func(cfg *ServerConfig) error {
		cfg.Address = firstNonEmpty(addrs)
		return nil
	}
}

// WithDatabasePath sets the database file to the first non-empty value.
func WithDatabasePath(paths ...string) ServerConfigOpt {
	return func(cfg *ServerConfig) error {
		cfg.DatabasePath = firstNonEmpty(paths)
		return nil
	}
}

// WithMaxConns sets the pool bound to the first positive value.
func WithMaxConns(counts ...int) ServerConfigOpt {
	return func(cfg *ServerConfig) error {
		cfg.MaxConns = firstPositive(counts)
		return nil
	}
}

// WithCollectInterval sets the background collection interval to the
// first positive value, in seconds.
func WithCollectInterval(intervals ...int) ServerConfigOpt {
	return func(cfg *ServerConfig) error {
		cfg.CollectInterval = firstPositive(intervals)
		return nil
	}
}

// WithAnalyzerImage sets the analyzer image to the first non-empty value.
func WithAnalyzerImage(images ...string) ServerConfigOpt {
	return func(cfg *ServerConfig) error {
		cfg.AnalyzerImage = firstNonEmpty(images)
		return nil
	}
}

// WithAnalyzerDebug enables analyzer debug mode if any value is true.
func WithAnalyzerDebug(debugs ...bool) ServerConfigOpt {
	return func(cfg *ServerConfig) error {
		for _, d := range debugs {
			if d {
				cfg.AnalyzerDebug = true
				break
			}
		}
		return nil
	}
}

// WithGitHubToken sets the analyzer credential to the first non-empty
// value.
func WithGitHubToken(tokens ...string) ServerConfigOpt {
	return func(cfg *ServerConfig) error {
		cfg.GitHubToken = firstNonEmpty(tokens)
		return nil
	}
}

// WithRepositories sets the target repository list to the first non-empty
// comma-separated value, trimming whitespace and dropping empty entries.
func WithRepositories(lists ...string) ServerConfigOpt {
	return func(cfg *ServerConfig) error {
		cfg.Repositories = SplitRepositories(firstNonEmpty(lists))
		return nil
	}
}

// SplitRepositories parses a comma-separated repository list.
func SplitRepositories(raw string) []string {
	var repos []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			repos = append(repos, trimmed)
		}
	}
	return repos
}

func firstNonEmpty(values []string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func firstPositive(values []int) int {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}

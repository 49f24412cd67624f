package configs

// CollectorConfig holds configuration for the collection CLI. When
// ServerURL is set the collected snapshot is pushed over HTTP instead of
// being written to the local database.
type CollectorConfig struct {
	DatabasePath  string   `json:"database_path"`
	ServerURL     string   `json:"server_url"`
	AnalyzerImage string   `json:"analyzer_image"`
	AnalyzerDebug bool     `json:"analyzer_debug"`
	GitHubToken   string   `json:"-"`
	Repositories  []string `json:"repositories"`
}

// CollectorConfigOpt applies one option to a CollectorConfig.
type CollectorConfigOpt func(*CollectorConfig) error

// NewCollectorConfig creates a CollectorConfig by applying the given
// options.
func NewCollectorConfig(opts ...CollectorConfigOpt) (*CollectorConfig, error) {
	cfg := &CollectorConfig{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// WithCollectorDatabasePath sets the database file to the first non-empty
// value.
func WithCollectorDatabasePath(paths ...string) CollectorConfigOpt {
	return func(cfg *CollectorConfig) error {
		cfg.DatabasePath = firstNonEmpty(paths)
		return nil
	}
}

// WithServerURL sets the push target to the first non-empty value.
func WithServerURL(urls ...string) CollectorConfigOpt {
	return func(cfg *CollectorConfig) error {
		cfg.ServerURL = firstNonEmpty(urls)
		return nil
	}
}

// WithCollectorAnalyzerImage sets the analyzer image to the first
// non-empty value.
func WithCollectorAnalyzerImage(images ...string) CollectorConfigOpt {
	return func(cfg *CollectorConfig) error {
		cfg.AnalyzerImage = firstNonEmpty(images)
		return nil
	}
}

// WithCollectorAnalyzerDebug enables analyzer debug mode if any value is
// true.
func WithCollectorAnalyzerDebug(debugs ...bool) CollectorConfigOpt {
	return func(cfg *CollectorConfig) error {
		for _, d := range debugs {
			if d {
				cfg.AnalyzerDebug = true
				break
			}
		}
		return nil
	}
}

// WithCollectorGitHubToken sets the analyzer credential to the first
// non-empty value.
func WithCollectorGitHubToken(tokens ...string) CollectorConfigOpt {
	return func(cfg *CollectorConfig) error {
		cfg.GitHubToken = firstNonEmpty(tokens)
		return nil
	}
}

// WithCollectorRepositories sets the target repository list to the first
// non-empty comma-separated value.
func WithCollectorRepositories(lists ...string) CollectorConfigOpt {
	return func(cfg *CollectorConfig) error {
		cfg.Repositories = SplitRepositories(firstNonEmpty(lists))
		return nil
	}
}

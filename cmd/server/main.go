package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/cipettelens/cipettelens/internal/analyzer"
	"github.com/cipettelens/cipettelens/internal/configs"
	httpHandlers "github.com/cipettelens/cipettelens/internal/handlers/http"
	httpMiddlewares "github.com/cipettelens/cipettelens/internal/middlewares/http"
	"github.com/cipettelens/cipettelens/internal/repositories"
	"github.com/cipettelens/cipettelens/internal/runner"
	"github.com/cipettelens/cipettelens/internal/services"
	"github.com/cipettelens/cipettelens/internal/storage"
	"github.com/cipettelens/cipettelens/internal/system"
	"github.com/cipettelens/cipettelens/internal/worker"
)

// Build information variables, set at build time via ldflags.
var (
	buildVersion string = "N/A"
	buildDate    string = "N/A"
	buildCommit  string = "N/A"
)

var (
	addr            string
	databasePath    string
	maxConns        int
	collectInterval int
	analyzerImage   string
	analyzerDebug   bool
	targetRepos     string
	configFilePath  string
)

func init() {
	pflag.StringVarP(&addr, "address", "a", "localhost:8080", "listen address")
	pflag.StringVarP(&databasePath, "database", "d", "db/data.sqlite", "SQLite database file path")
	pflag.IntVarP(&maxConns, "max-conns", "m", storage.DefaultMaxConns, "connection pool size")
	pflag.IntVarP(&collectInterval, "collect-interval", "i", 0, "seconds between background collection runs (0 = off)")
	pflag.StringVar(&analyzerImage, "analyzer-image", "", "analyzer container image (empty or hello-world = mock data)")
	pflag.BoolVar(&analyzerDebug, "analyzer-debug", false, "enable analyzer debug mode")
	pflag.StringVarP(&targetRepos, "repositories", "r", "", "comma-separated target repositories")
	pflag.StringVarP(&configFilePath, "config", "c", "", "path to JSON config file")
}

func main() {
	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)

	config, err := parseConfig()
	if err != nil {
		log.Fatal(err)
	}

	if err := run(context.Background(), config); err != nil {
		log.Fatal(err)
	}
}

// parseConfig merges flags, an optional JSON config file and environment
// variables, with the environment taking highest precedence.
func parseConfig() (*configs.ServerConfig, error) {
	pflag.Parse()

	if len(pflag.Args()) > 0 {
		return nil, errors.New("unknown flags or arguments are provided")
	}

	if env := os.Getenv("CONFIG"); env != "" && configFilePath == "" {
		configFilePath = env
	}

	var fileCfg configs.ServerConfig
	var fileRepos string
	if configFilePath != "" {
		raw, err := os.ReadFile(configFilePath)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		var cfg struct {
			configs.ServerConfig
			Repositories string `json:"repositories"`
		}
		if err := json.Unmarshal(raw, &cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
		fileCfg = cfg.ServerConfig
		fileRepos = cfg.Repositories
	}

	envInterval := 0
	if env := os.Getenv("COLLECT_INTERVAL"); env != "" {
		i, err := strconv.Atoi(env)
		if err != nil {
			return nil, errors.New("invalid COLLECT_INTERVAL env variable")
		}
		envInterval = i
	}

	return configs.NewServerConfig(
		configs.WithAddress(os.Getenv("ADDRESS"), fileCfg.Address, addr),
		configs.WithDatabasePath(os.Getenv("DATABASE_PATH"), fileCfg.DatabasePath, databasePath),
		configs.WithMaxConns(fileCfg.MaxConns, maxConns),
		configs.WithCollectInterval(envInterval, fileCfg.CollectInterval, collectInterval),
		configs.WithAnalyzerImage(os.Getenv("CIANALYZER_IMAGE"), fileCfg.AnalyzerImage, analyzerImage),
		configs.WithAnalyzerDebug(os.Getenv("CI_ANALYZER_DEBUG") == "1", fileCfg.AnalyzerDebug, analyzerDebug),
		configs.WithGitHubToken(os.Getenv("GITHUB_TOKEN")),
		configs.WithRepositories(os.Getenv("TARGET_REPOSITORIES"), fileRepos, targetRepos),
	)
}

func run(ctx context.Context, config *configs.ServerConfig) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer logger.Sync()

	pool, err := storage.New(config.DatabasePath, config.MaxConns)
	if err != nil {
		return err
	}
	defer pool.CloseAll()

	repo := repositories.NewMetricsRepository(pool, logger)
	client := analyzer.NewClient(config.AnalyzerImage, logger, analyzer.WithDebug(config.AnalyzerDebug))
	service := services.NewMetricsService(repo, client, config.GitHubToken, config.Repositories, logger)

	var mem httpHandlers.MemoryStater
	if m, err := system.NewMemory(); err != nil {
		logger.Warn("memory stats unavailable", zap.Error(err))
	} else {
		mem = m
	}

	r := chi.NewRouter()
	r.Use(httpMiddlewares.NewLoggingMiddleware(logger))
	r.Use(httpMiddlewares.GzipMiddleware)

	r.Get("/", httpHandlers.NewDashboardHandler(service))
	r.Get("/api/health", httpHandlers.NewHealthHandler(mem))
	r.Get("/api/metrics", httpHandlers.NewMetricsListHandler(service))
	r.Post("/api/metrics", httpHandlers.NewIngestHandler(service))
	r.Get("/api/metrics/{owner}/{repo}", httpHandlers.NewMetricsByRepositoryHandler(service))
	r.Get("/api/metrics/{owner}/{repo}/latest", httpHandlers.NewLatestMetricsHandler(service))
	r.Get("/api/metrics/{owner}/{repo}/{metric}/history", httpHandlers.NewMetricHistoryHandler(service))
	r.Get("/api/repositories", httpHandlers.NewRepositoriesHandler(service))
	r.Get("/api/metric-names", httpHandlers.NewMetricNamesHandler(service))

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	rn := runner.New()
	rn.AddHTTPServer(&http.Server{Addr: config.Address, Handler: r})

	if config.CollectInterval > 0 {
		interval := time.Duration(config.CollectInterval) * time.Second
		rn.AddWorker(worker.NewCollectWorker(interval, service, repo, logger))
	}

	logger.Info("starting server",
		zap.String("address", config.Address),
		zap.String("database", config.DatabasePath),
		zap.Int("collect_interval", config.CollectInterval),
	)
	return rn.Run(ctx)
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/cipettelens/cipettelens/internal/analyzer"
	"github.com/cipettelens/cipettelens/internal/configs"
	transport "github.com/cipettelens/cipettelens/internal/configs/transport/http"
	httpFacades "github.com/cipettelens/cipettelens/internal/facades/http"
	"github.com/cipettelens/cipettelens/internal/repositories"
	"github.com/cipettelens/cipettelens/internal/services"
	"github.com/cipettelens/cipettelens/internal/storage"
)

var (
	databasePath  string
	serverURL     string
	analyzerImage string
	analyzerDebug bool
	targetRepos   string
)

func init() {
	pflag.StringVarP(&databasePath, "database", "d", "db/data.sqlite", "SQLite database file path")
	pflag.StringVarP(&serverURL, "server", "s", "", "server base URL; when set, push instead of saving locally")
	pflag.StringVar(&analyzerImage, "analyzer-image", "", "analyzer container image (empty or hello-world = mock data)")
	pflag.BoolVar(&analyzerDebug, "analyzer-debug", false, "enable analyzer debug mode")
	pflag.StringVarP(&targetRepos, "repositories", "r", "", "comma-separated target repositories")
}

func main() {
	config, err := parseConfig()
	if err != nil {
		log.Fatal(err)
	}

	if err := run(context.Background(), config); err != nil {
		log.Fatal(err)
	}
}

func parseConfig() (*configs.CollectorConfig, error) {
	pflag.Parse()

	if len(pflag.Args()) > 0 {
		return nil, errors.New("unknown flags or arguments are provided")
	}

	return configs.NewCollectorConfig(
		configs.WithCollectorDatabasePath(os.Getenv("DATABASE_PATH"), databasePath),
		configs.WithServerURL(os.Getenv("SERVER_URL"), serverURL),
		configs.WithCollectorAnalyzerImage(os.Getenv("CIANALYZER_IMAGE"), analyzerImage),
		configs.WithCollectorAnalyzerDebug(os.Getenv("CI_ANALYZER_DEBUG") == "1", analyzerDebug),
		configs.WithCollectorGitHubToken(os.Getenv("GITHUB_TOKEN")),
		configs.WithCollectorRepositories(os.Getenv("TARGET_REPOSITORIES"), targetRepos),
	)
}

// run performs a single collection: analyzer metrics are either saved to
// the local database or pushed to a running server.
func run(ctx context.Context, config *configs.CollectorConfig) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	client := analyzer.NewClient(config.AnalyzerImage, logger, analyzer.WithDebug(config.AnalyzerDebug))

	if config.ServerURL != "" {
		return collectAndPush(ctx, config, client, logger)
	}
	return collectAndSave(ctx, config, client, logger)
}

func collectAndSave(ctx context.Context, config *configs.CollectorConfig, client *analyzer.Client, logger *zap.Logger) error {
	pool, err := storage.New(config.DatabasePath, storage.DefaultMaxConns)
	if err != nil {
		return err
	}
	defer pool.CloseAll()

	repo := repositories.NewMetricsRepository(pool, logger)
	service := services.NewMetricsService(repo, client, config.GitHubToken, config.Repositories, logger)

	metrics, err := service.CollectAndSave(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Collected metrics for %d repositories\n", len(metrics.Repositories))
	return nil
}

func collectAndPush(ctx context.Context, config *configs.CollectorConfig, client *analyzer.Client, logger *zap.Logger) error {
	if config.GitHubToken == "" {
		return services.ErrMissingToken
	}
	if len(config.Repositories) == 0 {
		return services.ErrNoRepositories
	}

	metrics, err := client.Collect(ctx, config.Repositories, config.GitHubToken)
	if err != nil {
		return err
	}

	restyClient, err := transport.New(config.ServerURL, transport.WithRetryPolicy(transport.RetryPolicy{
		Count:   3,
		Wait:    time.Second,
		MaxWait: 10 * time.Second,
	}))
	if err != nil {
		return err
	}

	facade := httpFacades.NewMetricsFacade(restyClient)
	if err := facade.Push(ctx, metrics); err != nil {
		return err
	}

	logger.Info("pushed metrics",
		zap.String("server", config.ServerURL),
		zap.Int("repositories", len(metrics.Repositories)),
	)
	fmt.Printf("Pushed metrics for %d repositories to %s\n", len(metrics.Repositories), config.ServerURL)
	return nil
}

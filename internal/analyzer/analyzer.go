package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/cipettelens/cipettelens/internal/models"
)

// DefaultImage is the analyzer container image used when none is
// configured.
const DefaultImage = "kesin11/cianalyzer:latest"

// MockImage selects the built-in mock data generator instead of a real
// analyzer run.
const MockImage = "hello-world"

const (
	runTimeout = 5 * time.Minute
	configFile = "ci_analyzer.yaml"
)

// ExecutionError reports an analyzer invocation failure, carrying the
// process exit code and captured stderr when available.
type ExecutionError struct {
	Msg      string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *ExecutionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("analyzer: %s: %v", e.Msg, e.Err)
	}
	return "analyzer: " + e.Msg
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// runFunc executes the analyzer process, feeding token on stdin and
// returning captured stdout and stderr.
type runFunc func(ctx context.Context, token string, args []string) (stdout, stderr []byte, err error)

// Client invokes the containerized analyzer and parses its JSON report.
// The analyzer itself is a black box; its output document is trusted.
type Client struct {
	image  string
	debug  bool
	logger *zap.Logger
	gen    *MockGenerator
	run    runFunc
}

// Opt configures a Client.
type Opt func(*Client)

// WithDebug enables the analyzer's debug mode.
func WithDebug(debug bool) Opt {
	return func(c *Client) { c.debug = debug }
}

// withRunner replaces the process runner, used by tests.
func withRunner(run runFunc) Opt {
	return func(c *Client) { c.run = run }
}

// NewClient creates an analyzer client for the given container image. An
// empty image or MockImage makes Collect return generated mock data.
func NewClient(image string, logger *zap.Logger, opts ...Opt) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Client{
		image:  image,
		logger: logger,
		gen:    NewMockGenerator(0),
	}
	c.run = c.runDocker
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Collect runs one analyzer invocation for the given repositories and
// returns the resulting snapshot. The token is passed on stdin, never on
// the command line.
func (c *Client) Collect(ctx context.Context, repositories []string, token string) (*models.CIMetrics, error) {
	if c.image == "" || c.image == MockImage {
		c.logger.Info("using mock analyzer data", zap.Int("repositories", len(repositories)))
		return c.gen.Generate(repositories), nil
	}

	if token == "" {
		return nil, &ExecutionError{Msg: "github token is required"}
	}
	if len(repositories) == 0 {
		return nil, &ExecutionError{Msg: "no repositories provided"}
	}

	args := c.dockerArgs()
	c.logger.Info("executing analyzer",
		zap.String("image", c.image),
		zap.String("command", "docker "+strings.Join(args, " ")),
	)

	runCtx, cancel := context.WithTimeout(ctx, runTimeout)
	defer cancel()

	stdout, stderr, err := c.run(runCtx, token, args)
	if err != nil {
		if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
			return nil, &ExecutionError{
				Msg:    fmt.Sprintf("execution timed out after %s", runTimeout),
				Stderr: string(stderr),
				Err:    err,
			}
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, &ExecutionError{
				Msg:      fmt.Sprintf("execution failed with exit code %d", exitErr.ExitCode()),
				ExitCode: exitErr.ExitCode(),
				Stderr:   string(stderr),
				Err:      err,
			}
		}
		return nil, &ExecutionError{Msg: "execution failed", Stderr: string(stderr), Err: err}
	}

	var report models.Report
	if err := json.Unmarshal(stdout, &report); err != nil {
		return nil, &ExecutionError{Msg: "parse analyzer output", Err: err}
	}

	c.logger.Info("analyzer execution completed",
		zap.Int("repositories", len(report.Repositories)),
	)
	return models.NewCIMetricsFromReport(&report, time.Now().UTC()), nil
}

func (c *Client) dockerArgs() []string {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	args := []string{
		"run", "--rm", "-i",
		"-v", cwd + ":/app",
		"-w", "/app",
		"-e", "GITHUB_TOKEN_FILE=/dev/stdin",
	}
	if c.debug {
		args = append(args, "-e", "CI_ANALYZER_DEBUG=1")
	}
	args = append(args, c.image, "-c", configFile)
	if c.debug {
		args = append(args, "--debug")
	}
	return args
}

func (c *Client) runDocker(ctx context.Context, token string, args []string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, "docker", args...)
	cmd.Stdin = strings.NewReader(token)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

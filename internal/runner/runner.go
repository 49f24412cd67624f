package runner

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"
)

const shutdownTimeout = 5 * time.Second

// Worker is a long-running background task.
type Worker interface {
	Start(ctx context.Context) error
}

// HTTPServer is the subset of *http.Server the runner needs.
type HTTPServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// Runner starts workers and HTTP servers in goroutines and waits until
// everything finishes, the context is cancelled, or one of them fails.
// HTTP servers are shut down gracefully on cancellation.
type Runner struct {
	workers []Worker
	servers []HTTPServer

	wg    sync.WaitGroup
	errCh chan error
}

// New creates an empty Runner.
func New() *Runner {
	return &Runner{errCh: make(chan error, 1)}
}

// AddWorker registers a background worker.
func (r *Runner) AddWorker(w Worker) {
	r.workers = append(r.workers, w)
}

// AddHTTPServer registers an HTTP server.
func (r *Runner) AddHTTPServer(srv HTTPServer) {
	r.servers = append(r.servers, srv)
}

// Run starts everything registered and blocks. It returns the first
// failure, or nil on clean shutdown.
func (r *Runner) Run(ctx context.Context) error {
	for _, w := range r.workers {
		worker := w
		r.wg.Add(1)
		go func() {
			defer r.wg.Done()
			if err := worker.Start(ctx); err != nil {
				r.fail(err)
			}
		}()
	}

	for _, s := range r.servers {
		srv := s
		r.wg.Add(1)
		go func() {
			defer r.wg.Done()
			r.serve(ctx, srv)
		}()
	}

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case err := <-r.errCh:
		return err
	case <-done:
	case <-ctx.Done():
		<-done
	}

	// A failure may have landed just as everything finished.
	select {
	case err := <-r.errCh:
		return err
	default:
		return nil
	}
}

func (r *Runner) serve(ctx context.Context, srv HTTPServer) {
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			r.fail(err)
		}
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			r.fail(err)
		}
	}
}

func (r *Runner) fail(err error) {
	select {
	case r.errCh <- err:
	default:
	}
}

package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// DefaultMaxConns is the pool size used when none is configured.
const DefaultMaxConns = 10

// Conn is a single database connection handed out exclusively to one
// caller until released back to the pool.
type Conn struct {
	*sqlx.DB
}

// Pool is a bounded set of reusable SQLite connections against a single
// backing file. It owns schema creation. Acquisition never blocks: demand
// beyond the bound is served by transient overflow connections.
type Pool struct {
	path string
	dsn  string
	max  int

	mu      sync.Mutex
	idle    []*Conn
	created int
}

// New creates a connection pool for the database file at path, ensuring
// the parent directory exists and initializing the schema. Schema or
// connection failures are fatal to construction.
func New(path string, maxConns int) (*Pool, error) {
	if maxConns <= 0 {
		maxConns = DefaultMaxConns
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	p := &Pool{
		path: path,
		dsn:  buildDSN(path),
		max:  maxConns,
	}
	if err := p.initSchema(); err != nil {
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return p, nil
}

// buildDSN enables WAL journaling, relaxed sync, an in-memory temp store
// and a 30 second busy timeout so a blocked writer does not hang forever.
func buildDSN(path string) string {
	return "file:" + path +
		"?_time_format=sqlite" +
		"&_pragma=busy_timeout(30000)" +
		"&_pragma=journal_mode(WAL)" +
		"&_pragma=synchronous(NORMAL)" +
		"&_pragma=cache_size(10000)" +
		"&_pragma=temp_store(MEMORY)"
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS metrics (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		repository TEXT NOT NULL,
		metric_name TEXT NOT NULL,
		value REAL NOT NULL,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_repository_metric
		ON metrics(repository, metric_name)`,
	`CREATE INDEX IF NOT EXISTS idx_timestamp
		ON metrics(timestamp)`,
	`CREATE INDEX IF NOT EXISTS idx_repository_timestamp
		ON metrics(repository, timestamp DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_metric_name_timestamp
		ON metrics(metric_name, timestamp DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_repository_metric_timestamp
		ON metrics(repository, metric_name, timestamp DESC)`,
}

func (p *Pool) initSchema() error {
	conn, err := p.Acquire()
	if err != nil {
		return err
	}
	defer p.Release(conn)

	for _, stmt := range schema {
		if _, err := conn.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Acquire returns an idle connection if one is available, dials a new one
// while under the bound, and otherwise dials a transient overflow
// connection rather than queuing.
func (p *Pool) Acquire() (*Conn, error) {
	p.mu.Lock()
	if n := len(p.idle); n > 0 {
		conn := p.idle[n-1]
		p.idle = p.idle[:n-1]
		p.mu.Unlock()
		return conn, nil
	}
	if p.created < p.max {
		p.created++
	}
	p.mu.Unlock()

	return p.dial()
}

func (p *Pool) dial() (*Conn, error) {
	db, err := sqlx.Connect("sqlite", p.dsn)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", p.path, err)
	}
	// Each handle is one exclusive connection, never shared.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	return &Conn{DB: db}, nil
}

// Release returns a connection to the idle pool, or closes it when the
// pool is already full.
func (p *Pool) Release(conn *Conn) {
	if conn == nil {
		return
	}
	p.mu.Lock()
	if len(p.idle) < p.max {
		p.idle = append(p.idle, conn)
		p.mu.Unlock()
		return
	}
	p.created--
	p.mu.Unlock()
	conn.Close()
}

// CloseAll closes every idle connection and resets the pool counters.
// Used at process shutdown.
func (p *Pool) CloseAll() error {
	p.mu.Lock()
	idle := p.idle
	p.idle = nil
	p.created = 0
	p.mu.Unlock()

	var firstErr error
	for _, conn := range idle {
		if err := conn.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Path returns the backing database file path.
func (p *Pool) Path() string {
	return p.path
}

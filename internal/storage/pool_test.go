package storage

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPool(t *testing.T, maxConns int) *Pool {
	t.Helper()
	pool, err := New(filepath.Join(t.TempDir(), "db", "metrics.sqlite"), maxConns)
	require.NoError(t, err)
	t.Cleanup(func() { pool.CloseAll() })
	return pool
}

func TestNewCreatesSchema(t *testing.T) {
	pool := newTestPool(t, 2)

	conn, err := pool.Acquire()
	require.NoError(t, err)
	defer pool.Release(conn)

	var tables []string
	err = conn.Select(&tables, `SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'metrics'`)
	require.NoError(t, err)
	assert.Equal(t, []string{"metrics"}, tables)

	var indexes []string
	err = conn.Select(&indexes, `SELECT name FROM sqlite_master WHERE type = 'index' AND name LIKE 'idx_%' ORDER BY name`)
	require.NoError(t, err)
	assert.Contains(t, indexes, "idx_repository_timestamp")
	assert.Contains(t, indexes, "idx_metric_name_timestamp")
	assert.Contains(t, indexes, "idx_repository_metric_timestamp")
}

func TestNewCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "metrics.sqlite")
	pool, err := New(path, 1)
	require.NoError(t, err)
	defer pool.CloseAll()

	assert.Equal(t, path, pool.Path())
}

func TestAcquireReusesReleasedConnection(t *testing.T) {
	pool := newTestPool(t, 2)

	conn, err := pool.Acquire()
	require.NoError(t, err)
	pool.Release(conn)

	again, err := pool.Acquire()
	require.NoError(t, err)
	defer pool.Release(again)

	assert.Same(t, conn, again)
}

func TestAcquireBeyondMaxDoesNotBlock(t *testing.T) {
	const maxConns = 2
	pool := newTestPool(t, maxConns)

	// Acquire more connections than the bound concurrently; overflow
	// connections must be served instead of queuing.
	var wg sync.WaitGroup
	conns := make(chan *Conn, maxConns+1)
	for i := 0; i < maxConns+1; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			conn, err := pool.Acquire()
			assert.NoError(t, err)
			conns <- conn
		}()
	}
	wg.Wait()
	close(conns)

	var acquired []*Conn
	for conn := range conns {
		require.NotNil(t, conn)
		acquired = append(acquired, conn)
	}
	assert.Len(t, acquired, maxConns+1)

	for _, conn := range acquired {
		pool.Release(conn)
	}
}

func TestConnectionsShareOneDatabase(t *testing.T) {
	pool := newTestPool(t, 3)

	writer, err := pool.Acquire()
	require.NoError(t, err)
	_, err = writer.Exec(`INSERT INTO metrics (repository, metric_name, value) VALUES ('org/repo', 'mttr', 4.2)`)
	require.NoError(t, err)
	pool.Release(writer)

	reader, err := pool.Acquire()
	require.NoError(t, err)
	defer pool.Release(reader)

	var count int
	require.NoError(t, reader.Get(&count, `SELECT COUNT(*) FROM metrics`))
	assert.Equal(t, 1, count)
}

func TestCloseAll(t *testing.T) {
	pool := newTestPool(t, 2)

	conn, err := pool.Acquire()
	require.NoError(t, err)
	pool.Release(conn)

	require.NoError(t, pool.CloseAll())

	// The pool dials fresh connections after a full close.
	conn, err = pool.Acquire()
	require.NoError(t, err)
	defer pool.Release(conn)
	require.NoError(t, conn.Ping())
}

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/filein/sidedock/internal/application/port"
	"github.com/filein/sidedock/internal/logging"
)

// ErrClosed is returned by LazyDB.DB after Close.
var ErrClosed = errors.New("snapshot database closed")

// LazyDB opens the snapshot database on the first committed drag, so
// commands that never touch a snapshot skip the WASM compilation.
// A failed open is remembered and returned on every later call.
type LazyDB struct {
	path string

	mu      sync.Mutex
	db      *sql.DB
	openErr error
	closed  bool
}

var _ port.DatabaseProvider = (*LazyDB)(nil)

// NewLazyDB creates a provider for the database at path.
func NewLazyDB(path string) *LazyDB {
	return &LazyDB{path: path}
}

// DB returns the connection, opening it on first use.
func (l *LazyDB) DB(ctx context.Context) (*sql.DB, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	switch {
	case l.closed:
		return nil, ErrClosed
	case l.db != nil:
		return l.db, nil
	case l.openErr != nil:
		return nil, l.openErr
	}

	log := logging.FromContext(ctx)
	db, err := NewConnection(ctx, l.path)
	if err != nil {
		l.openErr = fmt.Errorf("open snapshot database: %w", err)
		log.Error().Err(err).Str("path", l.path).Msg("snapshot database unavailable")
		return nil, l.openErr
	}

	log.Debug().Str("path", l.path).Msg("snapshot database opened")
	l.db = db
	return db, nil
}

// Close closes the connection if it was opened. Later DB calls fail.
func (l *LazyDB) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.closed = true
	if l.db == nil {
		return nil
	}
	err := l.db.Close()
	l.db = nil
	return err
}

// IsInitialized reports whether the connection is open.
func (l *LazyDB) IsInitialized() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.db != nil
}

// Path returns the database path.
func (l *LazyDB) Path() string {
	return l.path
}

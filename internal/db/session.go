package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync/atomic"
	"time"
)

// ErrPoolExhausted is returned by AcquireSession when no connection frees
// up within the acquire timeout.
var ErrPoolExhausted = errors.New("no database session available")

// Querier is the query surface handed to repositories. It is satisfied by
// *sql.DB, *sql.Conn and *Session.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Session is one pooled connection checked out for the duration of a single
// request. It is never shared across requests and is returned to the pool by
// Release.
type Session struct {
	q        Querier
	release  func() error
	released atomic.Bool
}

// NewSession wraps a query surface with a release callback. Exposed so tests
// and middleware can build sessions over stand-in queriers.
func NewSession(q Querier, release func() error) *Session {
	return &Session{q: q, release: release}
}

// Release returns the underlying connection to the pool. Only the first call
// has any effect; further calls are no-ops, so a session can never be
// double-released.
func (s *Session) Release() {
	if s.released.CompareAndSwap(false, true) {
		_ = s.release()
	}
}

// Released reports whether the session has been returned to the pool.
func (s *Session) Released() bool {
	return s.released.Load()
}

func (s *Session) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return s.q.ExecContext(ctx, query, args...)
}

func (s *Session) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return s.q.QueryContext(ctx, query, args...)
}

func (s *Session) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return s.q.QueryRowContext(ctx, query, args...)
}

// Pool hands out Sessions over a bounded *sql.DB. Acquisition blocks until a
// connection is free or the acquire timeout elapses.
type Pool struct {
	db             *sql.DB
	acquireTimeout time.Duration
}

func NewPool(db *sql.DB, acquireTimeout time.Duration) *Pool {
	return &Pool{db: db, acquireTimeout: acquireTimeout}
}

// AcquireSession checks out one connection for a request. A timeout while
// waiting on a fully busy pool is reported as ErrPoolExhausted.
func (p *Pool) AcquireSession(ctx context.Context) (*Session, error) {
	ctx, cancel := context.WithTimeout(ctx, p.acquireTimeout)
	defer cancel()

	conn, err := p.db.Conn(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrPoolExhausted
		}
		return nil, fmt.Errorf("error acquiring database session: %w", err)
	}

	return NewSession(conn, conn.Close), nil
}

package realtime

import (
	"context"
	"time"

	"github.com/cmlabs-hris/prms-backend-go/internal/pkg/database"
)

const (
	DefaultHandshakeDelay = 1500 * time.Millisecond
	DefaultRefreshDelay   = 800 * time.Millisecond
)

// Handshaker establishes that the backing data source at dsn is reachable.
type Handshaker interface {
	Handshake(ctx context.Context, dsn string) error
}

type HandshakerFunc func(ctx context.Context, dsn string) error

func (f HandshakerFunc) Handshake(ctx context.Context, dsn string) error {
	return f(ctx, dsn)
}

// SimulatedHandshaker succeeds after Delay unless ctx ends first.
type SimulatedHandshaker struct {
	Delay time.Duration
}

func (h SimulatedHandshaker) Handshake(ctx context.Context, _ string) error {
	return wait(ctx, h.Delay)
}

// HandshakerFor pings PostgreSQL DSNs and simulates everything else.
func HandshakerFor(dsn string, delay time.Duration) Handshaker {
	if database.IsPostgresDSN(dsn) {
		return database.PingHandshaker{}
	}
	return SimulatedHandshaker{Delay: delay}
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Package realtime mirrors the store into a connection-scoped view and keeps
// it current through a store subscription.
package realtime

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cmlabs-hris/prms-backend-go/internal/domain/benefit"
	"github.com/cmlabs-hris/prms-backend-go/internal/domain/document"
	"github.com/cmlabs-hris/prms-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/prms-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/prms-backend-go/internal/domain/timesheet"
	"github.com/cmlabs-hris/prms-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/prms-backend-go/internal/store"
)

type State struct {
	Connected   bool      `json:"connected"`
	Connecting  bool      `json:"connecting"`
	Role        user.Role `json:"role,omitempty"`
	LastUpdated time.Time `json:"last_updated,omitempty"`
	Error       string    `json:"error,omitempty"`
}

type Option func(*Bridge)

func WithHandshaker(h Handshaker) Option {
	return func(b *Bridge) { b.handshaker = h }
}

func WithRefreshDelay(d time.Duration) Option {
	return func(b *Bridge) { b.refreshDelay = d }
}

func WithLogger(logger *slog.Logger) Option {
	return func(b *Bridge) { b.logger = logger }
}

func WithClock(now func() time.Time) Option {
	return func(b *Bridge) { b.now = now }
}

type Bridge struct {
	store        *store.Store
	creds        Credentials
	handshaker   Handshaker
	refreshDelay time.Duration
	logger       *slog.Logger
	now          func() time.Time

	mu    sync.RWMutex
	state State
	data  store.Data
	sub   *store.Subscription

	// gen identifies the current connection; listeners of older ones are ignored.
	gen uint64
}

func NewBridge(s *store.Store, creds Credentials, opts ...Option) *Bridge {
	b := &Bridge{
		store:        s,
		creds:        creds,
		refreshDelay: DefaultRefreshDelay,
		logger:       slog.Default(),
		now:          time.Now,
		data:         store.EmptyData(),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.handshaker == nil {
		b.handshaker = HandshakerFor(creds.DatabaseURL, DefaultHandshakeDelay)
	}
	return b
}

// Connect validates credentials, performs the handshake and starts mirroring
// the store. The returned teardown is safe to call more than once. On failure
// the teardown is nil and the bridge stays disconnected.
func (b *Bridge) Connect(ctx context.Context, role user.Role) (func(), error) {
	if !role.Valid() {
		return nil, user.ErrInvalidRole
	}

	b.mu.Lock()
	switch {
	case b.state.Connecting:
		b.mu.Unlock()
		return nil, ErrConnectInProgress
	case b.state.Connected:
		b.mu.Unlock()
		return nil, ErrAlreadyConnected
	}
	if err := b.creds.Check(); err != nil {
		b.state.Error = err.Error()
		b.mu.Unlock()
		b.logger.Warn("realtime connect rejected", slog.String("role", string(role)), slog.String("error", err.Error()))
		return nil, err
	}
	b.state.Connecting = true
	b.state.Error = ""
	b.mu.Unlock()

	if err := b.handshaker.Handshake(ctx, b.creds.DatabaseURL); err != nil {
		b.mu.Lock()
		b.state.Connecting = false
		if ctx.Err() == nil {
			b.state.Error = fmt.Sprintf("%s: %v", ErrHandshakeFailed.Message, err)
		}
		b.mu.Unlock()

		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		b.logger.Error("realtime handshake failed", slog.String("role", string(role)), slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %v", ErrHandshakeFailed, err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.state.Connecting = false
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b.gen++
	gen := b.gen
	sub := b.store.Subscribe(func(store.Change) {
		b.resync(gen)
	})
	b.sub = sub
	b.data = b.store.Snapshot()
	b.state.Connected = true
	b.state.Role = role
	b.state.LastUpdated = b.now()

	b.logger.Info("realtime connected", slog.String("role", string(role)))

	var once sync.Once
	teardown := func() {
		once.Do(func() { b.disconnect(gen, sub) })
	}
	return teardown, nil
}

func (b *Bridge) disconnect(gen uint64, sub *store.Subscription) {
	sub.Unsubscribe()

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.gen != gen || b.sub == nil {
		return
	}
	b.sub = nil
	b.state.Connected = false
	b.data = store.EmptyData()
	b.logger.Info("realtime disconnected", slog.String("role", string(b.state.Role)))
}

// resync re-copies the store if gen is still the live connection.
func (b *Bridge) resync(gen uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.gen != gen || b.sub == nil {
		return
	}
	b.data = b.store.Snapshot()
	b.state.LastUpdated = b.now()
}

// Refresh re-copies the store after the refresh delay. It does nothing
// while disconnected.
func (b *Bridge) Refresh(ctx context.Context) error {
	b.mu.RLock()
	connected, gen := b.sub != nil, b.gen
	b.mu.RUnlock()
	if !connected {
		return nil
	}

	if err := wait(ctx, b.refreshDelay); err != nil {
		return err
	}
	b.resync(gen)
	return nil
}

func (b *Bridge) State() State {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.state
}

// Data returns the mirrored collections; all are empty while disconnected.
func (b *Bridge) Data() store.Data {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.state.Connected {
		return store.EmptyData()
	}
	return b.data.Clone()
}

// Store exposes the underlying store for read paths that need lookups by id.
func (b *Bridge) Store() *store.Store {
	return b.store
}

func (b *Bridge) AddEmployee(req employee.CreateEmployeeRequest) (employee.Employee, error) {
	return b.store.AddEmployee(req)
}

func (b *Bridge) UpdateEmployee(id string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	return b.store.UpdateEmployee(id, req)
}

func (b *Bridge) DeleteEmployee(id string) error {
	return b.store.DeleteEmployee(id)
}

func (b *Bridge) SubmitLeaveRequest(req leave.SubmitRequest) (leave.LeaveRequest, error) {
	return b.store.SubmitLeaveRequest(req)
}

func (b *Bridge) UpdateLeaveStatus(id string, status leave.Status, approverName string) (leave.LeaveRequest, error) {
	return b.store.UpdateLeaveStatus(id, status, approverName)
}

func (b *Bridge) SubmitTimesheet(req timesheet.SubmitRequest) (timesheet.Timesheet, error) {
	return b.store.SubmitTimesheet(req)
}

func (b *Bridge) UpdateBenefits(employeeID string, req benefit.UpdateRequest) (benefit.Enrollment, error) {
	return b.store.UpdateBenefits(employeeID, req)
}

func (b *Bridge) ProcessBatchPayroll(period string) (int, error) {
	return b.store.ProcessBatchPayroll(period)
}

func (b *Bridge) AddDocument(req document.CreateRequest) (document.Document, error) {
	return b.store.AddDocument(req)
}

// IsConfigurationMissing reports whether err came from a credential check.
func IsConfigurationMissing(err error) bool {
	return errors.Is(err, ErrConfigurationMissing)
}

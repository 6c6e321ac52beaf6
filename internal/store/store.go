// Package store holds every payroll and HR collection in memory and notifies
// subscribers after each mutation.
package store

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cmlabs-hris/prms-backend-go/internal/domain/benefit"
	"github.com/cmlabs-hris/prms-backend-go/internal/domain/document"
	"github.com/cmlabs-hris/prms-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/prms-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/prms-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/prms-backend-go/internal/domain/timesheet"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// Data is a copy of every collection, in insertion order.
type Data struct {
	Employees     []employee.Employee   `json:"employees"`
	LeaveRequests []leave.LeaveRequest  `json:"leave_requests"`
	Timesheets    []timesheet.Timesheet `json:"timesheets"`
	Payrolls      []payroll.Record      `json:"payrolls"`
	Benefits      []benefit.Enrollment  `json:"benefits"`
	Documents     []document.Document   `json:"documents"`
}

// EmptyData returns Data with non-nil empty collections.
func EmptyData() Data {
	return Data{
		Employees:     []employee.Employee{},
		LeaveRequests: []leave.LeaveRequest{},
		Timesheets:    []timesheet.Timesheet{},
		Payrolls:      []payroll.Record{},
		Benefits:      []benefit.Enrollment{},
		Documents:     []document.Document{},
	}
}

// Clone deep-copies d.
func (d Data) Clone() Data {
	out := Data{
		Employees:     append(make([]employee.Employee, 0, len(d.Employees)), d.Employees...),
		LeaveRequests: make([]leave.LeaveRequest, 0, len(d.LeaveRequests)),
		Timesheets:    make([]timesheet.Timesheet, 0, len(d.Timesheets)),
		Payrolls:      append(make([]payroll.Record, 0, len(d.Payrolls)), d.Payrolls...),
		Benefits:      append(make([]benefit.Enrollment, 0, len(d.Benefits)), d.Benefits...),
		Documents:     append(make([]document.Document, 0, len(d.Documents)), d.Documents...),
	}
	for _, l := range d.LeaveRequests {
		out.LeaveRequests = append(out.LeaveRequests, cloneLeave(l))
	}
	for _, t := range d.Timesheets {
		out.Timesheets = append(out.Timesheets, t.Clone())
	}
	return out
}

func cloneLeave(l leave.LeaveRequest) leave.LeaveRequest {
	if l.DecidedAt != nil {
		at := *l.DecidedAt
		l.DecidedAt = &at
	}
	return l
}

type Option func(*Store)

// WithClock overrides time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// WithIDGenerator overrides the "<prefix>-<uuidv7>" id scheme.
func WithIDGenerator(gen func(prefix string) string) Option {
	return func(s *Store) { s.newID = gen }
}

// WithSeed starts the store with a copy of data. No notification is sent.
func WithSeed(data Data) Option {
	return func(s *Store) { s.data = data.Clone() }
}

type Store struct {
	mu     sync.RWMutex
	data   Data
	n      *notifier
	now    func() time.Time
	newID  func(prefix string) string
	logger *slog.Logger
}

func New(opts ...Option) *Store {
	s := &Store{
		data:   EmptyData(),
		now:    time.Now,
		newID:  NewID,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.n = newNotifier(s.logger)
	return s
}

// NewID returns "<prefix>-<uuidv7>".
func NewID(prefix string) string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return fmt.Sprintf("%s-%s", prefix, id.String())
}

// Subscribe registers fn. Listeners are notified in registration order.
func (s *Store) Subscribe(fn Listener) *Subscription {
	return s.n.add(fn)
}

func (s *Store) SubscriberCount() int {
	return s.n.count()
}

// Snapshot returns a deep copy of every collection.
func (s *Store) Snapshot() Data {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Clone()
}

func (s *Store) today() string {
	return s.now().Format(dateLayout)
}

// commit runs fn under the write lock and, when fn reports a change,
// notifies listeners after the lock is released.
func (s *Store) commit(fn func() (ChangeKind, string, error)) error {
	return s.commitChange(func() (Change, error) {
		kind, entityID, err := fn()
		return Change{Kind: kind, EntityID: entityID}, err
	})
}

// commitChange is commit for mutations that fill in more of the Change than
// its kind and entity id. Seq and At are assigned here.
func (s *Store) commitChange(fn func() (Change, error)) error {
	s.mu.Lock()
	c, err := fn()
	if err != nil || c.Kind == "" {
		s.mu.Unlock()
		return err
	}
	change := s.n.enqueue(c, s.now())
	s.mu.Unlock()

	s.logger.Debug("store mutated",
		slog.String("change", string(change.Kind)),
		slog.String("entity_id", change.EntityID),
		slog.Uint64("seq", change.Seq),
	)
	s.n.dispatch()
	return nil
}

package store

import (
	"log/slog"
	"sync"
	"time"
)

type ChangeKind string

const (
	ChangeEmployeeCreated     ChangeKind = "employee.created"
	ChangeEmployeeUpdated     ChangeKind = "employee.updated"
	ChangeEmployeeDeleted     ChangeKind = "employee.deleted"
	ChangeLeaveSubmitted      ChangeKind = "leave.submitted"
	ChangeLeaveStatusUpdated  ChangeKind = "leave.status_updated"
	ChangeTimesheetSubmitted  ChangeKind = "timesheet.submitted"
	ChangeBenefitsUpdated     ChangeKind = "benefits.updated"
	ChangePayrollProcessed    ChangeKind = "payroll.processed"
	ChangeDocumentAdded       ChangeKind = "document.added"
	ChangeEmployeeAvatarSaved ChangeKind = "employee.avatar_updated"
)

// Change describes one completed mutation. Seq increases by one per mutation.
// Batch mutations name the batch in EntityID and list the records they
// created in Created.
type Change struct {
	Seq      uint64     `json:"seq"`
	Kind     ChangeKind `json:"kind"`
	EntityID string     `json:"entity_id"`
	Created  []string   `json:"created,omitempty"`
	At       time.Time  `json:"at"`
}

// Listener is called once per mutation, after the mutation is visible to readers.
type Listener func(Change)

// Subscription is the handle returned by Subscribe.
type Subscription struct {
	n      *notifier
	fn     Listener
	once   sync.Once
	active bool
}

// Unsubscribe removes the listener. Calling it more than once is a no-op.
func (s *Subscription) Unsubscribe() {
	s.once.Do(func() {
		s.n.remove(s)
	})
}

// notifier delivers changes to listeners in registration order. A change
// raised while a pass is running is queued and delivered after that pass.
type notifier struct {
	mu          sync.Mutex
	listeners   []*Subscription
	queue       []Change
	dispatching bool
	seq         uint64
	logger      *slog.Logger
}

func newNotifier(logger *slog.Logger) *notifier {
	return &notifier{logger: logger}
}

func (n *notifier) add(fn Listener) *Subscription {
	sub := &Subscription{n: n, fn: fn, active: true}
	n.mu.Lock()
	n.listeners = append(n.listeners, sub)
	n.mu.Unlock()
	return sub
}

func (n *notifier) remove(sub *Subscription) {
	n.mu.Lock()
	defer n.mu.Unlock()
	sub.active = false
	for i, l := range n.listeners {
		if l == sub {
			n.listeners = append(n.listeners[:i:i], n.listeners[i+1:]...)
			return
		}
	}
}

func (n *notifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.listeners)
}

// enqueue records a change. Callers hold the store lock so sequence numbers
// follow mutation order.
func (n *notifier) enqueue(change Change, at time.Time) Change {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.seq++
	change.Seq = n.seq
	change.At = at
	n.queue = append(n.queue, change)
	return change
}

// dispatch drains the queue unless another call is already draining it.
// Must be called without the store lock held.
func (n *notifier) dispatch() {
	n.mu.Lock()
	if n.dispatching {
		n.mu.Unlock()
		return
	}
	n.dispatching = true

	for len(n.queue) > 0 {
		change := n.queue[0]
		n.queue = n.queue[1:]
		pass := make([]*Subscription, len(n.listeners))
		copy(pass, n.listeners)
		n.mu.Unlock()

		for _, sub := range pass {
			n.deliver(sub, change)
		}

		n.mu.Lock()
	}

	n.dispatching = false
	n.mu.Unlock()
}

func (n *notifier) deliver(sub *Subscription, change Change) {
	n.mu.Lock()
	active := sub.active
	n.mu.Unlock()
	if !active {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			n.logger.Error("store listener panicked",
				slog.Any("panic", r),
				slog.String("change", string(change.Kind)),
				slog.Uint64("seq", change.Seq),
			)
		}
	}()
	sub.fn(change)
}

package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/cmlabs-hris/prms-backend-go/internal/domain/notification"
	"github.com/google/uuid"
)

type notificationRepository struct {
	mu    sync.RWMutex
	items []notification.Notification
	now   func() time.Time
}

// NewNotificationRepository returns a notification.Repository held in process
// memory. It is used when no database is configured.
func NewNotificationRepository() notification.Repository {
	return &notificationRepository{now: time.Now}
}

func (r *notificationRepository) CreateBatch(_ context.Context, notifications []*notification.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, n := range notifications {
		if n.ID == "" {
			n.ID = uuid.New().String()
		}
		if n.CreatedAt.IsZero() {
			n.CreatedAt = r.now()
		}
		stored := *n
		if n.Data != nil {
			stored.Data = make(map[string]string, len(n.Data))
			for k, v := range n.Data {
				stored.Data[k] = v
			}
		}
		r.items = append(r.items, stored)
	}
	return nil
}

func (r *notificationRepository) GetByUserID(_ context.Context, userID string, page, pageSize int, unreadOnly bool) ([]*notification.Notification, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := []*notification.Notification{}
	for i := range r.items {
		n := r.items[i]
		if n.RecipientID != userID || (unreadOnly && n.IsRead) {
			continue
		}
		matched = append(matched, &n)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := len(matched)
	offset := (page - 1) * pageSize
	if offset >= total {
		return []*notification.Notification{}, total, nil
	}
	end := min(offset+pageSize, total)
	return matched[offset:end], total, nil
}

func (r *notificationRepository) GetUnreadCount(_ context.Context, userID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, n := range r.items {
		if n.RecipientID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (r *notificationRepository) MarkAsRead(_ context.Context, ids []string, userID string) error {
	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for i := range r.items {
		n := &r.items[i]
		if _, ok := wanted[n.ID]; ok && n.RecipientID == userID && !n.IsRead {
			n.IsRead = true
			n.ReadAt = &now
		}
	}
	return nil
}

func (r *notificationRepository) MarkAllAsRead(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for i := range r.items {
		n := &r.items[i]
		if n.RecipientID == userID && !n.IsRead {
			n.IsRead = true
			n.ReadAt = &now
		}
	}
	return nil
}

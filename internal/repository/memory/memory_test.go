package memory

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/prms-backend-go/internal/domain/notification"
	"github.com/cmlabs-hris/prms-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Upsert(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	created, err := repo.Upsert(ctx, user.User{Email: "HR@Company.com", Name: "HR Manager", Role: user.RoleHR})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	got, err := repo.GetByEmail(ctx, "hr@company.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	replaced, err := repo.Upsert(ctx, user.User{Email: "hr@company.com", Name: "People Ops", Role: user.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, created.ID, replaced.ID)

	byID, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "People Ops", byID.Name)

	_, err = repo.Upsert(ctx, user.User{Email: "x@company.com", Role: "owner"})
	assert.ErrorIs(t, err, user.ErrInvalidRole)

	_, err = repo.GetByEmail(ctx, "nobody@company.com")
	assert.ErrorIs(t, err, user.ErrUserNotFound)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestNotificationRepository_PaginationAndRead(t *testing.T) {
	repo := NewNotificationRepository()
	ctx := context.Background()
	base := time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC)

	var batch []*notification.Notification
	for i := 0; i < 5; i++ {
		batch = append(batch, &notification.Notification{
			RecipientID: "user-hr",
			Type:        notification.TypeLeaveRequest,
			Title:       "New leave request",
			CreatedAt:   base.Add(time.Duration(i) * time.Hour),
		})
	}
	batch = append(batch, &notification.Notification{RecipientID: "user-other", Type: notification.TypeLeaveApproved})
	require.NoError(t, repo.CreateBatch(ctx, batch))

	page, total, err := repo.GetByUserID(ctx, "user-hr", 1, 2, false)
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	require.Len(t, page, 2)
	assert.Equal(t, batch[4].ID, page[0].ID)

	last, _, err := repo.GetByUserID(ctx, "user-hr", 3, 2, false)
	require.NoError(t, err)
	assert.Len(t, last, 1)

	beyond, _, err := repo.GetByUserID(ctx, "user-hr", 9, 2, false)
	require.NoError(t, err)
	assert.Empty(t, beyond)

	require.NoError(t, repo.MarkAsRead(ctx, []string{batch[0].ID, batch[5].ID}, "user-hr"))
	count, err := repo.GetUnreadCount(ctx, "user-hr")
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	other, err := repo.GetUnreadCount(ctx, "user-other")
	require.NoError(t, err)
	assert.Equal(t, 1, other, "notifications of other users are untouched")

	require.NoError(t, repo.MarkAllAsRead(ctx, "user-hr"))
	unread, total, err := repo.GetByUserID(ctx, "user-hr", 1, 10, true)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, unread)
}

func TestTokenRepository(t *testing.T) {
	repo := NewJWTRepository()
	ctx := context.Background()

	require.NoError(t, repo.CreateRefreshToken(ctx, "user-1", "live", time.Now().Add(time.Hour).Unix()))
	require.NoError(t, repo.CreateRefreshToken(ctx, "user-1", "stale", time.Now().Add(-time.Hour).Unix()))

	revoked, err := repo.IsRefreshTokenRevoked(ctx, "live")
	require.NoError(t, err)
	assert.False(t, revoked)

	revoked, _ = repo.IsRefreshTokenRevoked(ctx, "stale")
	assert.True(t, revoked)

	revoked, _ = repo.IsRefreshTokenRevoked(ctx, "unknown")
	assert.True(t, revoked)

	require.NoError(t, repo.RevokeRefreshToken(ctx, "live"))
	revoked, _ = repo.IsRefreshTokenRevoked(ctx, "live")
	assert.True(t, revoked)
}

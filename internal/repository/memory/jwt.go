package memory

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"sync"
	"time"

	"github.com/cmlabs-hris/prms-backend-go/internal/domain/auth"
)

type refreshToken struct {
	userID    string
	expiresAt time.Time
	revoked   bool
}

type tokenRepository struct {
	mu     sync.Mutex
	tokens map[string]refreshToken
	now    func() time.Time
}

// NewJWTRepository returns an auth.TokenRepository held in process memory.
func NewJWTRepository() auth.TokenRepository {
	return &tokenRepository{tokens: make(map[string]refreshToken), now: time.Now}
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return base64.StdEncoding.EncodeToString(sum[:])
}

func (r *tokenRepository) CreateRefreshToken(_ context.Context, userID string, token string, expiresAt int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens[hashToken(token)] = refreshToken{userID: userID, expiresAt: time.Unix(expiresAt, 0)}
	return nil
}

func (r *tokenRepository) IsRefreshTokenRevoked(_ context.Context, token string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tokens[hashToken(token)]
	if !ok {
		return true, nil
	}
	return t.revoked || !t.expiresAt.After(r.now()), nil
}

func (r *tokenRepository) RevokeRefreshToken(_ context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := hashToken(token)
	if t, ok := r.tokens[key]; ok {
		t.revoked = true
		r.tokens[key] = t
	}
	return nil
}

package interfaces

import (
	"context"
	"time"
)

// ISessionStore tracks revoked token ids so logout takes effect before the
// JWT expires. Entries only need to live as long as the token would have.
type ISessionStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

package ports

import (
	"context"
	"time"

	"courier/internal/core/domain/model/kernel"
)

// Claims is the decoded identity of a caller.
type Claims struct {
	Subject  string
	Role     string
	IssuedAt time.Time
}

// IsAdmin reports whether the caller has the admin role.
func (c Claims) IsAdmin() bool {
	return c.Role == RoleAdmin
}

// AuthGate verifies a bearer credential. An empty or malformed credential
// fails with errs.ErrUnauthorized; a well-formed but invalid or expired one
// with errs.ErrForbidden.
type AuthGate interface {
	Verify(ctx context.Context, bearer string) (Claims, error)
}

// PaymentIntent is the gateway's handle for a pending charge.
type PaymentIntent struct {
	ID           string
	ClientSecret string
}

// PaymentGateway creates charges with the external processor. Failures are
// errs.ErrUpstream errors.
type PaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, amount kernel.Money, currency string) (PaymentIntent, error)
}

// IdempotencyStore remembers the outcome of a request by client-supplied key.
type IdempotencyStore interface {
	// Get returns the stored value and true, or "" and false when the key is unknown or expired.
	Get(ctx context.Context, key string) (string, bool, error)

	// SetIfAbsent stores value under key for ttl unless the key exists. It
	// reports whether the value was stored.
	SetIfAbsent(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
}

// EventPublisher delivers domain events to the outside world at most once and
// without retries. Callers treat failures as non-fatal.
type EventPublisher interface {
	Publish(ctx context.Context, events ...kernel.DomainEvent) error
	Close() error
}

package ports

import (
	"context"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/rider"
)

// RiderRepository stores riders. Riders are never deleted.
type RiderRepository interface {
	Add(ctx context.Context, aggregate *rider.Rider) error

	// Get returns errs.ErrObjectNotFound when no rider has the id.
	Get(ctx context.Context, id kernel.UUID) (*rider.Rider, error)

	// UpdateStatus writes the rider's current status only if the stored status
	// still equals expected. A lost race returns an errs.ErrConflict error.
	UpdateStatus(ctx context.Context, aggregate *rider.Rider, expected rider.Status) error

	// ListByStatus returns riders in status, oldest registration first.
	ListByStatus(ctx context.Context, status rider.Status) ([]*rider.Rider, error)

	// ListAvailable returns active riders whose district equals district exactly.
	ListAvailable(ctx context.Context, district kernel.District) ([]*rider.Rider, error)
}

// Roles known to the role lookup.
const (
	RoleUser  = "user"
	RoleRider = "rider"
	RoleAdmin = "admin"
)

// UserRepository keeps the role attached to an email address.
type UserRepository interface {
	// GetRole returns RoleUser for unknown addresses.
	GetRole(ctx context.Context, email kernel.Email) (string, error)

	// SetRole creates or replaces the role of email.
	SetRole(ctx context.Context, email kernel.Email, role string) error
}

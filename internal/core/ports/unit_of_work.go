package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Repositories obtained after
// Begin share its transaction; domain events recorded by aggregates they
// persisted are published after a successful Commit.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit returns an error if no transaction is active or the commit fails.
	Commit(ctx context.Context) error

	// Rollback returns an error if no transaction is active.
	Rollback(ctx context.Context) error

	ParcelRepository() ParcelRepository
	PaymentRepository() PaymentRepository
	TrackingRepository() TrackingRepository
	RiderRepository() RiderRepository
	UserRepository() UserRepository
}

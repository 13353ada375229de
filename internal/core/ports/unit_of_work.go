package ports

import "context"

// UnitOfWorkFactory creates new UnitOfWork instances for each request.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork manages a business transaction over the order store.
// Implementations coordinate repository operations so a command either
// fully persists or leaves no trace.
type UnitOfWork interface {
	// Begin starts a new transaction.
	Begin(ctx context.Context) error

	// Commit makes all changes within the transaction durable.
	Commit(ctx context.Context) error

	// Rollback discards all changes within the transaction.
	// Calling Rollback after Commit is a no-op error and safe to defer.
	Rollback(ctx context.Context) error

	// OrderRepository returns a repository bound to the current transaction,
	// or to the main connection if no transaction is active.
	OrderRepository() OrderRepository
}

package ports

import "context"

// Transactor runs fn inside a single database transaction. Repository
// calls made with the ctx passed to fn join that transaction, so a
// primary write and its activity/sync side effects commit or roll back
// together. Nested calls join the outer transaction.
type Transactor interface {
	Transact(ctx context.Context, fn func(ctx context.Context) error) error
}

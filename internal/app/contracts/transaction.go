package contracts

import "context"

// Transactor runs fn inside one database transaction. fn must use txCtx for every
// repository call that belongs to the transaction; it may be retried on transient
// write conflicts, so it must be safe to run more than once.
type Transactor interface {
	WithTransaction(ctx context.Context, fn func(txCtx context.Context) error) error
}

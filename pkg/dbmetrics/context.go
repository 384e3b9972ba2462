package dbmetrics

import "context"

// txContextKey keys the active transaction inside a context.
type txContextKey struct{}

// WithTx returns a context carrying tx. Repositories pick it up through
// GetExecutor so the same repository methods work inside and outside of a
// transaction.
func WithTx(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, txContextKey{}, tx)
}

// GetExecutor returns the transaction bound to ctx, or fallback when the
// call is not transactional.
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(txContextKey{}).(TxExecutor); ok {
		return tx
	}
	return fallback
}

// IsInTransaction reports whether ctx carries an active transaction.
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(txContextKey{}).(TxExecutor)
	return ok
}

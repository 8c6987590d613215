// Package slots implements a small named-slot store: the only durable state
// the console keeps is a handful of key/value records, such as the current
// session.
package slots

import "context"

// Repository provides access to named binary slots.
//
// Get returns (nil, nil) when the slot does not exist; Delete on a missing
// slot is a no-op. Implementations must be safe to call from the single
// console goroutine; no cross-process coordination is provided.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

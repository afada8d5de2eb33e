// Package storage provides the persistent key-value mirror behind the
// catalog. The catalog engine only ever writes a full serialized
// snapshot under a single key and reads it back once at startup, so
// the contract is deliberately narrow.
package storage

import "context"

// KeyValue is the persistence collaborator contract. Read reports
// ok=false when no value has ever been stored under the key; callers
// treat that as an empty catalog, not an error.
type KeyValue interface {
	Read(ctx context.Context, key string) (value []byte, ok bool, err error)
	Write(ctx context.Context, key string, value []byte) error
}

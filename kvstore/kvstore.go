// Package kvstore provides a durable, process-local string key-value
// store, the persistence layer for the whole application, plus an
// in-memory variant for tests.
package kvstore

// Store is a named-string store. Get reports absence with ok=false;
// an absent key is not an error. All operations are synchronous.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Remove(key string) error
	Close() error
}

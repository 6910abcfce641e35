// Package storage provides the client's local persistent key/value store:
// small JSON documents under well-known keys, tolerant of absence and
// corruption.
package storage

import "errors"

// Keys used by the client. Kept here so every component names them the
// same way.
const (
	KeyCartItems = "cartItems"
	KeyToken     = "token"
	KeyUser      = "user"
)

// ErrNotFound is returned by Get when a key is absent or its stored
// content cannot be decoded. Callers treat both the same way: start from
// empty state.
var ErrNotFound = errors.New("storage: key not found")

type Store interface {
	// Get decodes the value stored under key into dest. Returns
	// ErrNotFound when the key is absent or unreadable.
	Get(key string, dest interface{}) error
	// Set stores value under key, JSON-encoded.
	Set(key string, value interface{}) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
}

package fluent

import (
	"errors"
	"fmt"
)

var (
	// ErrNilResult is returned by Memo.Get when the delegate returned a nil value.
	ErrNilResult = errors.New("fluent: delegate returned nil value")

	// ErrNilElement is returned by indexing collectors for nil input elements.
	ErrNilElement = errors.New("fluent: element is nil")

	// ErrNilKey is returned by ToImmutableMap when a derived key is nil.
	ErrNilKey = errors.New("fluent: key is nil")

	// ErrNilValue is returned by ToImmutableMap when a derived value is nil.
	ErrNilValue = errors.New("fluent: value is nil")

	// ErrDuplicateKey matches every *DuplicateKeyError.
	ErrDuplicateKey = errors.New("fluent: duplicate key")

	// ErrMultipleEntries is wrapped by ToImmutableMap when two elements map to
	// the same key.
	ErrMultipleEntries = errors.New("fluent: multiple entries with same key")
)

// DuplicateKeyError reports a key produced by more than one element during
// unique indexing. It carries the key, not the colliding elements.
type DuplicateKeyError[K comparable] struct {
	Key K
}

func (e *DuplicateKeyError[K]) Error() string {
	return fmt.Sprintf("fluent: duplicate key: %v", e.Key)
}

// Is reports whether target is ErrDuplicateKey.
func (e *DuplicateKeyError[K]) Is(target error) bool {
	return target == ErrDuplicateKey
}

func multipleEntriesError[K comparable, V any](key K, first, second V) error {
	return fmt.Errorf("%w: %v=%v and %v=%v", ErrMultipleEntries, key, first, key, second)
}

package fluent

import (
	"iter"
	"maps"
	"slices"

	"github.com/samber/lo"
)

// List is a read-only ordered sequence. The zero value is an empty list.
type List[T any] struct {
	s []T
}

// ListOf returns a List holding a copy of items.
func ListOf[T any](items ...T) List[T] {
	return List[T]{slices.Clone(items)}
}

// Len returns the number of elements in the List.
func (l List[T]) Len() int {
	return len(l.s)
}

// At returns the element at index i. It panics if i is out of range.
func (l List[T]) At(i int) T {
	return l.s[i]
}

// All returns an iterator over each (index, element) pair.
func (l List[T]) All() iter.Seq2[int, T] {
	return slices.All(l.s)
}

// Values returns an iterator over the elements in order.
func (l List[T]) Values() iter.Seq[T] {
	return slices.Values(l.s)
}

// Slice returns a copy of the elements that the caller may modify.
func (l List[T]) Slice() []T {
	return slices.Clone(l.s)
}

// Map is a read-only mapping. The zero value is an empty map.
type Map[K comparable, V any] struct {
	m map[K]V
}

// MapOf returns a Map holding a copy of m.
func MapOf[K comparable, V any](m map[K]V) Map[K, V] {
	return Map[K, V]{maps.Clone(m)}
}

// Value returns the mapped value for k, or (zero, false) if k is absent.
func (m Map[K, V]) Value(k K) (V, bool) {
	v, ok := m.m[k]
	return v, ok
}

// Len returns the number of entries in the Map.
func (m Map[K, V]) Len() int {
	return len(m.m)
}

// All returns an iterator over each (key, value) pair in no particular order.
func (m Map[K, V]) All() iter.Seq2[K, V] {
	return maps.All(m.m)
}

// Keys returns an iterator over the keys in no particular order.
func (m Map[K, V]) Keys() iter.Seq[K] {
	return maps.Keys(m.m)
}

// Clone returns a copy of the entries that the caller may modify.
func (m Map[K, V]) Clone() map[K]V {
	if m.m == nil {
		return make(map[K]V)
	}
	return maps.Clone(m.m)
}

// ToImmutableList returns a Collector that gathers elements into a List,
// preserving their order. Nil elements fail with ErrNilElement.
func ToImmutableList[T any]() Collector[T, []T, List[T]] {
	return CollectorOf(
		func() []T {
			return nil
		},
		func(s []T, el T) ([]T, error) {
			if lo.IsNil(el) {
				return s, ErrNilElement
			}
			return append(s, el), nil
		},
		func(left, right []T) ([]T, error) {
			return append(left, right...), nil
		},
		func(s []T) List[T] {
			return List[T]{slices.Clone(s)}
		},
	)
}

// ToImmutableMap returns a Collector that gathers elements into a Map using
// key and value to derive each entry. Two elements with the same key fail
// with an error wrapping ErrMultipleEntries. A nil element fails with
// ErrNilElement before key and value run; a nil derived key or value fails
// with ErrNilKey or ErrNilValue.
func ToImmutableMap[T any, K comparable, V any](key func(T) K, value func(T) V) Collector[T, map[K]V, Map[K, V]] {
	if key == nil || value == nil {
		panic("fluent: key and value functions cannot be nil")
	}
	return CollectorOf(
		func() map[K]V {
			return make(map[K]V)
		},
		func(m map[K]V, el T) (map[K]V, error) {
			if lo.IsNil(el) {
				return m, ErrNilElement
			}
			k := key(el)
			if lo.IsNil(k) {
				return m, ErrNilKey
			}
			v := value(el)
			if lo.IsNil(v) {
				return m, ErrNilValue
			}
			if prev, ok := m[k]; ok {
				return m, multipleEntriesError(k, prev, v)
			}
			m[k] = v
			return m, nil
		},
		func(left, right map[K]V) (map[K]V, error) {
			for k, v := range right {
				if prev, ok := left[k]; ok {
					return left, multipleEntriesError(k, prev, v)
				}
				left[k] = v
			}
			return left, nil
		},
		func(m map[K]V) Map[K, V] {
			return Map[K, V]{maps.Clone(m)}
		},
	)
}

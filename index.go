package fluent

import "github.com/samber/lo"

// IndexingUniquelyBy returns a Collector that maps each element by the key
// derived from it.
//
// Nil elements fail with ErrNilElement before key is called. Two elements
// with the same key fail with a *DuplicateKeyError naming that key, both
// while accumulating and while combining partial results. The map has no
// meaningful iteration order.
func IndexingUniquelyBy[T any, K comparable](key func(T) K) Collector[T, map[K]T, map[K]T] {
	if key == nil {
		panic("fluent: key function cannot be nil")
	}
	return CollectorOf[T, map[K]T, map[K]T](
		func() map[K]T {
			return make(map[K]T)
		},
		func(index map[K]T, el T) (map[K]T, error) {
			if lo.IsNil(el) {
				return index, ErrNilElement
			}
			k := key(el)
			if _, ok := index[k]; ok {
				return index, &DuplicateKeyError[K]{Key: k}
			}
			index[k] = el
			return index, nil
		},
		func(left, right map[K]T) (map[K]T, error) {
			for k, el := range right {
				if _, ok := left[k]; ok {
					return left, &DuplicateKeyError[K]{Key: k}
				}
				left[k] = el
			}
			return left, nil
		},
		nil,
	)
}

// IndexingBy returns a Collector that groups elements sharing a key. Within a
// group, elements keep their order in the source. Duplicate keys are expected
// and never fail.
func IndexingBy[T any, K comparable](key func(T) K) Collector[T, map[K][]T, map[K][]T] {
	if key == nil {
		panic("fluent: key function cannot be nil")
	}
	return CollectorOf[T, map[K][]T, map[K][]T](
		func() map[K][]T {
			return make(map[K][]T)
		},
		func(index map[K][]T, el T) (map[K][]T, error) {
			k := key(el)
			index[k] = append(index[k], el)
			return index, nil
		},
		func(left, right map[K][]T) (map[K][]T, error) {
			for k, group := range right {
				left[k] = append(left[k], group...)
			}
			return left, nil
		},
		nil,
	)
}

// IndexUniquelyBy indexes items by key. See IndexingUniquelyBy.
func IndexUniquelyBy[T any, K comparable](items []T, key func(T) K) (map[K]T, error) {
	return CollectSlice(items, IndexingUniquelyBy(key))
}

// IndexBy groups items by key, keeping the order of items within each group.
func IndexBy[T any, K comparable](items []T, key func(T) K) map[K][]T {
	if key == nil {
		panic("fluent: key function cannot be nil")
	}
	return lo.GroupBy(items, key)
}

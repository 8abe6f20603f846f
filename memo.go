package fluent

import (
	"fmt"
	"reflect"
	"sync/atomic"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"golang.org/x/sync/singleflight"
)

const flightKey = "memo"

// Memo lazily computes and keeps a single value.
// Create one with Memoize or MemoizeFunc. A Memo must not be copied.
type Memo[T any] struct {
	delegate func() (T, error)
	value    atomic.Pointer[T]
	group    singleflight.Group
	name     string
	observer Observer
}

// Memoize returns a memo around fn. fn is called at most once, unless it
// returns an error or a nil value; then the next Get calls it again.
//
// Memoize panics if fn is nil.
func Memoize[T any](fn func() (T, error), opts ...Option) *Memo[T] {
	if fn == nil {
		panic("fluent: supplier cannot be nil")
	}
	o := newOptions(opts)
	return &Memo[T]{
		delegate: fn,
		name:     o.name,
		observer: o.observer,
	}
}

// MemoizeFunc is Memoize for suppliers that cannot fail.
func MemoizeFunc[T any](fn func() T, opts ...Option) *Memo[T] {
	if fn == nil {
		panic("fluent: supplier cannot be nil")
	}
	return Memoize(func() (T, error) {
		return fn(), nil
	}, opts...)
}

// Get returns the memoized value, calling the delegate if there is none yet.
// Concurrent callers on an empty memo block and receive the same result.
//
// A delegate error is returned unchanged and is not cached. A nil result
// (nil pointer, interface, map, slice, channel or func) yields ErrNilResult
// and is not cached either. A panic in the delegate propagates to the callers
// and leaves the memo empty.
func (m *Memo[T]) Get() (T, error) {
	// Fast path: already memoized.
	if v := m.value.Load(); v != nil {
		m.emit(EventHit, nil)
		return *v, nil
	}

	// Slow path: singleflight dedup.
	var leader bool
	val, err, _ := m.group.Do(flightKey, func() (any, error) {
		leader = true

		// Double-check: a previous flight may have stored while we raced in.
		if v := m.value.Load(); v != nil {
			m.emit(EventHit, nil)
			return v, nil
		}

		m.emit(EventMiss, nil)
		result, err := m.delegate()
		if err != nil {
			m.emit(EventError, err)
			return nil, err
		}
		if lo.IsNil(result) {
			m.emit(EventError, ErrNilResult)
			return nil, ErrNilResult
		}

		v := &result
		m.value.Store(v)
		return v, nil
	})

	if !leader {
		m.emit(EventDedup, err)
	}
	if err != nil {
		var zero T
		return zero, err
	}
	return *val.(*T), nil
}

// Func returns Get as a plain supplier function.
func (m *Memo[T]) Func() func() (T, error) {
	return m.Get
}

// Peek returns the memoized value without calling the delegate.
func (m *Memo[T]) Peek() mo.Option[T] {
	if v := m.value.Load(); v != nil {
		return mo.Some(*v)
	}
	return mo.None[T]()
}

// Memoized reports whether a value has been memoized.
func (m *Memo[T]) Memoized() bool {
	return m.value.Load() != nil
}

func (m *Memo[T]) String() string {
	label := m.name
	if label == "" {
		label = fmt.Sprintf("%T", m.delegate)
	}
	value, ok := m.Peek().Get()
	if !ok {
		return fmt.Sprintf("Memo(%s, memoized=no memoized value)", label)
	}
	// Pointers are shown by what they point to. Memoized values are never nil.
	shown := reflect.Indirect(reflect.ValueOf(value)).Interface()
	return fmt.Sprintf("Memo(%s, memoized=%v)", label, shown)
}

func (m *Memo[T]) emit(event Event, err error) {
	if m.observer == nil {
		return
	}
	m.observer.On(EventData{
		Event: event,
		Name:  m.name,
		Err:   err,
	})
}

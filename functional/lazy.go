package functional

import (
	"sync"
	"sync/atomic"
)

// Lazy represents a lazily evaluated value with thread-safe memoization.
type Lazy[T any] struct {
	compute func() T
	value   T
	once    sync.Once
	done    uint32
}

// NewLazy creates a new lazy value.
func NewLazy[T any](compute func() T) *Lazy[T] {
	return &Lazy[T]{compute: compute}
}

// Get returns the value, computing it if necessary.
func (l *Lazy[T]) Get() T {
	l.once.Do(func() {
		l.value = l.compute()
		atomic.StoreUint32(&l.done, 1)
	})
	return l.value
}

// IsEvaluated returns true if the value has been computed.
func (l *Lazy[T]) IsEvaluated() bool {
	return atomic.LoadUint32(&l.done) == 1
}

// MapLazy applies a function to a lazy value.
func MapLazy[T, U any](l *Lazy[T], fn func(T) U) *Lazy[U] {
	return NewLazy(func() U {
		return fn(l.Get())
	})
}

// FlatMapLazy applies a function that returns a Lazy.
func FlatMapLazy[T, U any](l *Lazy[T], fn func(T) *Lazy[U]) *Lazy[U] {
	return NewLazy(func() U {
		return fn(l.Get()).Get()
	})
}

// LazyValue creates a lazy value from a constant (already evaluated).
func LazyValue[T any](value T) *Lazy[T] {
	l := &Lazy[T]{
		value:   value,
		done:    1,
		compute: func() T { return value },
	}
	l.once.Do(func() {})
	return l
}

// Thunk represents a deferred computation without memoization.
type Thunk[T any] func() T

// Force evaluates the thunk.
func (t Thunk[T]) Force() T {
	return t()
}

// MapThunk applies a function to a thunk.
func MapThunk[T, U any](t Thunk[T], fn func(T) U) Thunk[U] {
	return func() U {
		return fn(t())
	}
}

// Memoize converts a Thunk to a Lazy value.
func (t Thunk[T]) Memoize() *Lazy[T] {
	return NewLazy(func() T { return t() })
}

// MemoizeFunc creates a memoized version of a function.
func MemoizeFunc[T any](fn func() T) func() T {
	lazy := NewLazy(fn)
	return func() T {
		return lazy.Get()
	}
}

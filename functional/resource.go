package functional

import "errors"

// Resource describes how to acquire and release a value with side effects.
// A Resource holds no live value itself; each Use acquires a fresh one and
// guarantees release runs exactly once, including when the use function
// returns an error or panics. A panic is re-raised after release.
type Resource[T any] struct {
	acquire func() (T, error)
	release func(T) error
}

// NewResource creates a Resource from acquire and release functions.
func NewResource[T any](acquire func() (T, error), release func(T) error) Resource[T] {
	return Resource[T]{acquire: acquire, release: release}
}

// Use acquires the value, runs fn, and releases the value.
func (r Resource[T]) Use(fn func(T) error) error {
	_, err := UseResource(r, func(v T) (struct{}, error) {
		return struct{}{}, fn(v)
	})
	return err
}

// UseResource acquires the value, runs fn, releases the value, and returns
// fn's result. Acquire failure short-circuits; use and release errors are
// joined.
func UseResource[T, U any](r Resource[T], fn func(T) (U, error)) (U, error) {
	var zero U
	v, err := r.acquire()
	if err != nil {
		return zero, err
	}

	released := false
	defer func() {
		// Panic path: release before the panic propagates.
		if !released {
			_ = r.release(v)
		}
	}()

	result, useErr := fn(v)
	released = true
	if relErr := r.release(v); relErr != nil {
		return result, errors.Join(useErr, relErr)
	}
	if useErr != nil {
		return zero, useErr
	}
	return result, nil
}

// Bracket is the one-shot acquire/use/release pattern without constructing
// a Resource value first.
func Bracket[T, U any](acquire func() (T, error), release func(T) error, use func(T) (U, error)) (U, error) {
	return UseResource(NewResource(acquire, release), use)
}

// MapResource transforms the acquired value. Release still sees the
// original value.
func MapResource[T, U any](r Resource[T], fn func(T) U) Resource[Pair[T, U]] {
	return Resource[Pair[T, U]]{
		acquire: func() (Pair[T, U], error) {
			v, err := r.acquire()
			if err != nil {
				return Pair[T, U]{}, err
			}
			return NewPair(v, fn(v)), nil
		},
		release: func(p Pair[T, U]) error {
			return r.release(p.First)
		},
	}
}

// ZipResource combines two resources. Acquisition is left to right;
// release is right to left. If the second acquire fails, the first value
// is released before the error is returned.
func ZipResource[A, B any](ra Resource[A], rb Resource[B]) Resource[Pair[A, B]] {
	return Resource[Pair[A, B]]{
		acquire: func() (Pair[A, B], error) {
			a, err := ra.acquire()
			if err != nil {
				return Pair[A, B]{}, err
			}
			b, err := rb.acquire()
			if err != nil {
				relErr := ra.release(a)
				return Pair[A, B]{}, errors.Join(err, relErr)
			}
			return NewPair(a, b), nil
		},
		release: func(p Pair[A, B]) error {
			errB := rb.release(p.Second)
			errA := ra.release(p.First)
			return errors.Join(errB, errA)
		},
	}
}

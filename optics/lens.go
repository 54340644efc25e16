// Package optics provides composable accessors into immutable data:
// Lens for mandatory fields of product types, Prism for variants of sum
// types, Optional as the uniform partial accessor both lower into, and Iso
// for lossless two-way conversions. Optics hold no data themselves; they
// bundle pure functions and are safe to share across goroutines.
package optics

import "github.com/authcorp/go-functional/functional"

// Lens provides total read/write access to one part of a data structure.
// Set must be copy-on-write: the input value is never mutated.
type Lens[S, A any] struct {
	Get func(S) A
	Set func(S, A) S
}

// NewLens creates a new Lens.
func NewLens[S, A any](get func(S) A, set func(S, A) S) Lens[S, A] {
	return Lens[S, A]{Get: get, Set: set}
}

// Modify applies a function to the focused value.
func (l Lens[S, A]) Modify(s S, f func(A) A) S {
	return l.Set(s, f(l.Get(s)))
}

// Compose composes two lenses into a lens focused on the deeper target.
func Compose[S, A, B any](outer Lens[S, A], inner Lens[A, B]) Lens[S, B] {
	return Lens[S, B]{
		Get: func(s S) B {
			return inner.Get(outer.Get(s))
		},
		Set: func(s S, b B) S {
			return outer.Set(s, inner.Set(outer.Get(s), b))
		},
	}
}

// Identity creates an identity lens.
func Identity[S any]() Lens[S, S] {
	return Lens[S, S]{
		Get: func(s S) S { return s },
		Set: func(_ S, s S) S { return s },
	}
}

// At creates a lens for map access. Setting None deletes the key.
func At[K comparable, V any](key K) Lens[map[K]V, functional.Option[V]] {
	return Lens[map[K]V, functional.Option[V]]{
		Get: func(m map[K]V) functional.Option[V] {
			if v, ok := m[key]; ok {
				return functional.Some(v)
			}
			return functional.None[V]()
		},
		Set: func(m map[K]V, opt functional.Option[V]) map[K]V {
			result := make(map[K]V, len(m))
			for k, v := range m {
				result[k] = v
			}
			if opt.IsSome() {
				result[key] = opt.Unwrap()
			} else {
				delete(result, key)
			}
			return result
		},
	}
}

// MapAt creates a lens for a map value at a specific key with a default.
func MapAt[K comparable, V any](key K, defaultVal V) Lens[map[K]V, V] {
	return Lens[map[K]V, V]{
		Get: func(m map[K]V) V {
			if v, ok := m[key]; ok {
				return v
			}
			return defaultVal
		},
		Set: func(m map[K]V, v V) map[K]V {
			result := make(map[K]V, len(m)+1)
			for k, val := range m {
				result[k] = val
			}
			result[key] = v
			return result
		},
	}
}

// SliceAt creates a lens for a slice element at a specific index with a
// default. Setting out of range returns the slice unchanged.
func SliceAt[T any](index int, defaultVal T) Lens[[]T, T] {
	return Lens[[]T, T]{
		Get: func(s []T) T {
			if index >= 0 && index < len(s) {
				return s[index]
			}
			return defaultVal
		},
		Set: func(s []T, v T) []T {
			if index < 0 || index >= len(s) {
				return s
			}
			result := make([]T, len(s))
			copy(result, s)
			result[index] = v
			return result
		},
	}
}

// First creates a lens for the first element of a pair.
func First[A, B any]() Lens[functional.Pair[A, B], A] {
	return Lens[functional.Pair[A, B], A]{
		Get: func(p functional.Pair[A, B]) A { return p.First },
		Set: func(p functional.Pair[A, B], a A) functional.Pair[A, B] {
			return functional.Pair[A, B]{First: a, Second: p.Second}
		},
	}
}

// Second creates a lens for the second element of a pair.
func Second[A, B any]() Lens[functional.Pair[A, B], B] {
	return Lens[functional.Pair[A, B], B]{
		Get: func(p functional.Pair[A, B]) B { return p.Second },
		Set: func(p functional.Pair[A, B], b B) functional.Pair[A, B] {
			return functional.Pair[A, B]{First: p.First, Second: b}
		},
	}
}

package optics

import "github.com/authcorp/go-functional/functional"

// Iso represents an isomorphism between two types: a lossless two-way
// conversion where Reverse(Get(s)) == s and Get(Reverse(a)) == a.
type Iso[S, A any] struct {
	Get     func(S) A
	Reverse func(A) S
}

// NewIso creates a new isomorphism.
func NewIso[S, A any](get func(S) A, reverse func(A) S) Iso[S, A] {
	return Iso[S, A]{Get: get, Reverse: reverse}
}

// ToLens converts an Iso to a Lens.
func (i Iso[S, A]) ToLens() Lens[S, A] {
	return Lens[S, A]{
		Get: i.Get,
		Set: func(_ S, a A) S { return i.Reverse(a) },
	}
}

// ToPrism converts an Iso to a Prism whose match always succeeds.
func (i Iso[S, A]) ToPrism() Prism[S, A] {
	return Prism[S, A]{
		GetOrModify: func(s S) functional.Either[S, A] {
			return functional.Right[S](i.Get(s))
		},
		ReverseGet: i.Reverse,
	}
}

// ComposeIso composes two isomorphisms.
func ComposeIso[S, A, B any](outer Iso[S, A], inner Iso[A, B]) Iso[S, B] {
	return Iso[S, B]{
		Get:     func(s S) B { return inner.Get(outer.Get(s)) },
		Reverse: func(b B) S { return outer.Reverse(inner.Reverse(b)) },
	}
}

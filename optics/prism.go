package optics

import "github.com/authcorp/go-functional/functional"

// Prism provides partial access to one variant of a sum type. GetOrModify
// returns Right with the focused value on a match and Left with the
// original, unchanged value on a mismatch; a mismatch is an expected
// outcome, not an error. ReverseGet is the total injection of the variant
// back into the sum type.
type Prism[S, A any] struct {
	GetOrModify func(S) functional.Either[S, A]
	ReverseGet  func(A) S
}

// NewPrism creates a prism from getOrModify and reverseGet functions.
func NewPrism[S, A any](getOrModify func(S) functional.Either[S, A], reverseGet func(A) S) Prism[S, A] {
	return Prism[S, A]{GetOrModify: getOrModify, ReverseGet: reverseGet}
}

// NewPrismFromOption creates a prism from an Option-returning matcher.
func NewPrismFromOption[S, A any](getOption func(S) functional.Option[A], reverseGet func(A) S) Prism[S, A] {
	return Prism[S, A]{
		GetOrModify: func(s S) functional.Either[S, A] {
			return functional.MatchOption(getOption(s),
				func(a A) functional.Either[S, A] { return functional.Right[S](a) },
				func() functional.Either[S, A] { return functional.Left[S, A](s) },
			)
		},
		ReverseGet: reverseGet,
	}
}

// GetOption attempts to narrow the value to the focused variant.
func (p Prism[S, A]) GetOption(s S) functional.Option[A] {
	return p.GetOrModify(s).ToOption()
}

// Modify applies a function to the focused value if the prism matches.
// On a mismatch the input is returned unchanged.
func (p Prism[S, A]) Modify(s S, fn func(A) A) S {
	return functional.MatchEither(p.GetOrModify(s),
		func(unmatched S) S { return unmatched },
		func(a A) S { return p.ReverseGet(fn(a)) },
	)
}

// ModifyOption is the strict variant of Modify: it returns None on a
// mismatch instead of silently returning the input.
func (p Prism[S, A]) ModifyOption(s S, fn func(A) A) functional.Option[S] {
	return functional.MapOption(p.GetOption(s), func(a A) S {
		return p.ReverseGet(fn(a))
	})
}

// Set replaces the focused value if the prism matches; otherwise the input
// is returned unchanged.
func (p Prism[S, A]) Set(s S, value A) S {
	return p.Modify(s, func(A) A { return value })
}

// SetOption is the strict variant of Set: None on a mismatch.
func (p Prism[S, A]) SetOption(s S, value A) functional.Option[S] {
	return p.ModifyOption(s, func(A) A { return value })
}

// ComposePrism creates a prism focusing deeper; the overall match succeeds
// only if every stage matches. A mismatch at any stage yields Left with the
// outermost original value.
func ComposePrism[S, A, B any](outer Prism[S, A], inner Prism[A, B]) Prism[S, B] {
	return Prism[S, B]{
		GetOrModify: func(s S) functional.Either[S, B] {
			return functional.FlatMapEitherRight(outer.GetOrModify(s),
				func(a A) functional.Either[S, B] {
					return functional.MapEitherLeft(inner.GetOrModify(a),
						func(A) S { return s })
				},
			)
		},
		ReverseGet: func(b B) S {
			return outer.ReverseGet(inner.ReverseGet(b))
		},
	}
}

// SomePrism creates a prism for Option[T] that focuses on the Some case.
func SomePrism[T any]() Prism[functional.Option[T], T] {
	return NewPrismFromOption(
		func(o functional.Option[T]) functional.Option[T] { return o },
		func(t T) functional.Option[T] { return functional.Some(t) },
	)
}

package optics

import "github.com/authcorp/go-functional/functional"

// Optional is the uniform representation every optic lowers into: a partial
// read over a possibly nested path plus a write that applies only when the
// path matches. A Lens lowers with an always-matching read; a Prism lowers
// with a write that no-ops on a mismatch. Composing only against this one
// shape is what keeps cross-kind composition associative without
// special-casing each combination.
type Optional[S, A any] struct {
	GetOrModify func(S) functional.Either[S, A]
	Set         func(S, A) S
}

// NewOptional creates a new Optional.
func NewOptional[S, A any](getOrModify func(S) functional.Either[S, A], set func(S, A) S) Optional[S, A] {
	return Optional[S, A]{GetOrModify: getOrModify, Set: set}
}

// GetOption attempts to read the focused value.
func (o Optional[S, A]) GetOption(s S) functional.Option[A] {
	return o.GetOrModify(s).ToOption()
}

// Modify applies a function to the focused value if the path matches.
// On a mismatch the input is returned unchanged.
func (o Optional[S, A]) Modify(s S, fn func(A) A) S {
	return functional.MatchEither(o.GetOrModify(s),
		func(unmatched S) S { return unmatched },
		func(a A) S { return o.Set(s, fn(a)) },
	)
}

// ModifyOption is the strict variant of Modify: None on a mismatch.
func (o Optional[S, A]) ModifyOption(s S, fn func(A) A) functional.Option[S] {
	return functional.MapOption(o.GetOption(s), func(a A) S {
		return o.Set(s, fn(a))
	})
}

// LensToOptional lowers a Lens; its read always matches.
func LensToOptional[S, A any](l Lens[S, A]) Optional[S, A] {
	return Optional[S, A]{
		GetOrModify: func(s S) functional.Either[S, A] {
			return functional.Right[S](l.Get(s))
		},
		Set: l.Set,
	}
}

// PrismToOptional lowers a Prism; its write no-ops on a mismatch.
func PrismToOptional[S, A any](p Prism[S, A]) Optional[S, A] {
	return Optional[S, A]{
		GetOrModify: p.GetOrModify,
		Set:         p.Set,
	}
}

// ComposeOptional composes two optionals. The read threads through both
// stages, with a mismatch at any stage yielding Left with the outermost
// original value. The write sets through the outer focus when it matches
// and leaves the input unchanged otherwise.
func ComposeOptional[S, A, B any](outer Optional[S, A], inner Optional[A, B]) Optional[S, B] {
	return Optional[S, B]{
		GetOrModify: func(s S) functional.Either[S, B] {
			return functional.FlatMapEitherRight(outer.GetOrModify(s),
				func(a A) functional.Either[S, B] {
					return functional.MapEitherLeft(inner.GetOrModify(a),
						func(A) S { return s })
				},
			)
		},
		Set: func(s S, b B) S {
			return functional.MatchEither(outer.GetOrModify(s),
				func(unmatched S) S { return unmatched },
				func(a A) S { return outer.Set(s, inner.Set(a, b)) },
			)
		},
	}
}

// ComposeLensPrism composes a lens with a prism. The result is partial:
// the read fails exactly when the prism stage mismatches.
func ComposeLensPrism[S, A, B any](outer Lens[S, A], inner Prism[A, B]) Optional[S, B] {
	return ComposeOptional(LensToOptional(outer), PrismToOptional(inner))
}

// ComposePrismLens composes a prism with a lens. The result is partial:
// the read fails exactly when the prism stage mismatches.
func ComposePrismLens[S, A, B any](outer Prism[S, A], inner Lens[A, B]) Optional[S, B] {
	return ComposeOptional(PrismToOptional(outer), LensToOptional(inner))
}

// ComposeLensOptional composes a lens with an optional.
func ComposeLensOptional[S, A, B any](outer Lens[S, A], inner Optional[A, B]) Optional[S, B] {
	return ComposeOptional(LensToOptional(outer), inner)
}

// ComposeOptionalLens composes an optional with a lens.
func ComposeOptionalLens[S, A, B any](outer Optional[S, A], inner Lens[A, B]) Optional[S, B] {
	return ComposeOptional(outer, LensToOptional(inner))
}

// Index creates an optional for slice access. Setting out of range returns
// the slice unchanged.
func Index[T any](i int) Optional[[]T, T] {
	return Optional[[]T, T]{
		GetOrModify: func(s []T) functional.Either[[]T, T] {
			if i >= 0 && i < len(s) {
				return functional.Right[[]T](s[i])
			}
			return functional.Left[[]T, T](s)
		},
		Set: func(s []T, v T) []T {
			if i < 0 || i >= len(s) {
				return s
			}
			result := make([]T, len(s))
			copy(result, s)
			result[i] = v
			return result
		},
	}
}

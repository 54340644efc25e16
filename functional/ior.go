package functional

type iorKind uint8

const (
	iorLeft iorKind = iota
	iorRight
	iorBoth
)

// Ior represents an inclusive-or value: a left, a right, or both at once.
// It is the accumulating cousin of Either, useful when a computation can
// produce a result together with a warning.
type Ior[L, R any] struct {
	left  L
	right R
	kind  iorKind
}

// IorLeft creates an Ior holding only a left value.
func IorLeft[L, R any](value L) Ior[L, R] {
	return Ior[L, R]{left: value, kind: iorLeft}
}

// IorRight creates an Ior holding only a right value.
func IorRight[L, R any](value R) Ior[L, R] {
	return Ior[L, R]{right: value, kind: iorRight}
}

// IorBoth creates an Ior holding both values.
func IorBoth[L, R any](left L, right R) Ior[L, R] {
	return Ior[L, R]{left: left, right: right, kind: iorBoth}
}

// IsLeft returns true if only a left value is present.
func (i Ior[L, R]) IsLeft() bool {
	return i.kind == iorLeft
}

// IsRight returns true if only a right value is present.
func (i Ior[L, R]) IsRight() bool {
	return i.kind == iorRight
}

// IsBoth returns true if both values are present.
func (i Ior[L, R]) IsBoth() bool {
	return i.kind == iorBoth
}

// LeftValue returns the left value or panics if absent.
func (i Ior[L, R]) LeftValue() L {
	if i.kind == iorRight {
		panic("called LeftValue on Right")
	}
	return i.left
}

// RightValue returns the right value or panics if absent.
func (i Ior[L, R]) RightValue() R {
	if i.kind == iorLeft {
		panic("called RightValue on Left")
	}
	return i.right
}

// MapIorRight applies a function to the right value if present.
func MapIorRight[L, R, U any](i Ior[L, R], fn func(R) U) Ior[L, U] {
	switch i.kind {
	case iorLeft:
		return IorLeft[L, U](i.left)
	case iorRight:
		return IorRight[L, U](fn(i.right))
	default:
		return IorBoth(i.left, fn(i.right))
	}
}

// MapIorLeft applies a function to the left value if present.
func MapIorLeft[L, R, U any](i Ior[L, R], fn func(L) U) Ior[U, R] {
	switch i.kind {
	case iorLeft:
		return IorLeft[U, R](fn(i.left))
	case iorRight:
		return IorRight[U, R](i.right)
	default:
		return IorBoth(fn(i.left), i.right)
	}
}

// MatchIor folds an Ior into a single value with a three-way branch.
func MatchIor[L, R, U any](i Ior[L, R], onLeft func(L) U, onRight func(R) U, onBoth func(L, R) U) U {
	switch i.kind {
	case iorLeft:
		return onLeft(i.left)
	case iorRight:
		return onRight(i.right)
	default:
		return onBoth(i.left, i.right)
	}
}

// ToEither converts an Ior to an Either; Both biases to the right value.
func (i Ior[L, R]) ToEither() Either[L, R] {
	if i.kind == iorLeft {
		return Left[L, R](i.left)
	}
	return Right[L, R](i.right)
}

// RightOption returns the right value as an Option.
func (i Ior[L, R]) RightOption() Option[R] {
	if i.kind == iorLeft {
		return None[R]()
	}
	return Some(i.right)
}

// LeftOption returns the left value as an Option.
func (i Ior[L, R]) LeftOption() Option[L] {
	if i.kind == iorRight {
		return None[L]()
	}
	return Some(i.left)
}

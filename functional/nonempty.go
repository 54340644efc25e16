package functional

// NonEmptyList is a list guaranteed to contain at least one element.
// The head is stored separately from the tail so the zero-length case is
// unrepresentable. All operations are copy-on-write.
type NonEmptyList[T any] struct {
	head T
	tail []T
}

// NonEmptyListOf creates a NonEmptyList from a head and optional tail.
func NonEmptyListOf[T any](head T, tail ...T) NonEmptyList[T] {
	copied := make([]T, len(tail))
	copy(copied, tail)
	return NonEmptyList[T]{head: head, tail: copied}
}

// NonEmptyFromSlice creates a NonEmptyList from a slice, or None if empty.
func NonEmptyFromSlice[T any](items []T) Option[NonEmptyList[T]] {
	if len(items) == 0 {
		return None[NonEmptyList[T]]()
	}
	return Some(NonEmptyListOf(items[0], items[1:]...))
}

// Head returns the first element.
func (n NonEmptyList[T]) Head() T {
	return n.head
}

// Tail returns a copy of all elements after the head.
func (n NonEmptyList[T]) Tail() []T {
	copied := make([]T, len(n.tail))
	copy(copied, n.tail)
	return copied
}

// Len returns the number of elements, always at least 1.
func (n NonEmptyList[T]) Len() int {
	return 1 + len(n.tail)
}

// All returns every element as a new slice.
func (n NonEmptyList[T]) All() []T {
	all := make([]T, 0, n.Len())
	all = append(all, n.head)
	all = append(all, n.tail...)
	return all
}

// Last returns the final element.
func (n NonEmptyList[T]) Last() T {
	if len(n.tail) == 0 {
		return n.head
	}
	return n.tail[len(n.tail)-1]
}

// Append returns a new list with extra elements at the end.
func (n NonEmptyList[T]) Append(items ...T) NonEmptyList[T] {
	tail := make([]T, 0, len(n.tail)+len(items))
	tail = append(tail, n.tail...)
	tail = append(tail, items...)
	return NonEmptyList[T]{head: n.head, tail: tail}
}

// Concat returns a new list holding the elements of both lists in order.
func (n NonEmptyList[T]) Concat(other NonEmptyList[T]) NonEmptyList[T] {
	return n.Append(other.All()...)
}

// MapNonEmpty applies a transformation to every element.
func MapNonEmpty[T, U any](n NonEmptyList[T], fn func(T) U) NonEmptyList[U] {
	tail := make([]U, len(n.tail))
	for i, v := range n.tail {
		tail[i] = fn(v)
	}
	return NonEmptyList[U]{head: fn(n.head), tail: tail}
}

// FlatMapNonEmpty applies a function producing lists and flattens the result.
func FlatMapNonEmpty[T, U any](n NonEmptyList[T], fn func(T) NonEmptyList[U]) NonEmptyList[U] {
	result := fn(n.head)
	for _, v := range n.tail {
		result = result.Concat(fn(v))
	}
	return result
}

// Reduce folds all elements into one value, starting from the head.
func (n NonEmptyList[T]) Reduce(fn func(T, T) T) T {
	acc := n.head
	for _, v := range n.tail {
		acc = fn(acc, v)
	}
	return acc
}

// FoldNonEmpty folds all elements into an accumulator of another type.
func FoldNonEmpty[T, U any](n NonEmptyList[T], initial U, fn func(U, T) U) U {
	acc := fn(initial, n.head)
	for _, v := range n.tail {
		acc = fn(acc, v)
	}
	return acc
}

// NonEmptyContains reports whether a comparable element is present.
func NonEmptyContains[T comparable](n NonEmptyList[T], item T) bool {
	if n.head == item {
		return true
	}
	for _, v := range n.tail {
		if v == item {
			return true
		}
	}
	return false
}

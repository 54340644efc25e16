package functional

// Eval is a stack-safe description of a deferred computation. Unlike Thunk,
// chains built with MapEval, FlatMapEval and DeferEval are evaluated by an
// iterative loop in Value, so arbitrarily deep nesting cannot overflow the
// goroutine stack.
type Eval[T any] struct {
	node evalNode
}

// evalNode is the type-erased internal representation. Variants:
// evalNow (a finished value), evalCall (a leaf computation) and
// evalBind (a continuation applied to the result of an inner node).
type evalNode interface {
	isEvalNode()
}

type evalNow struct {
	value any
}

type evalCall struct {
	fn func() evalNode
}

type evalBind struct {
	src  evalNode
	cont func(any) evalNode
}

func (evalNow) isEvalNode()  {}
func (evalCall) isEvalNode() {}
func (evalBind) isEvalNode() {}

// Now creates an Eval of an already computed value.
func Now[T any](value T) Eval[T] {
	return Eval[T]{node: evalNow{value: value}}
}

// Later creates an Eval that computes its value once and memoizes it.
func Later[T any](fn func() T) Eval[T] {
	lazy := NewLazy(fn)
	return Eval[T]{node: evalCall{fn: func() evalNode {
		return evalNow{value: lazy.Get()}
	}}}
}

// Always creates an Eval that recomputes its value on every evaluation.
func Always[T any](fn func() T) Eval[T] {
	return Eval[T]{node: evalCall{fn: func() evalNode {
		return evalNow{value: fn()}
	}}}
}

// DeferEval creates an Eval from a function producing another Eval.
// The function runs inside the evaluation loop, so self-referencing
// recursive definitions stay stack-safe.
func DeferEval[T any](fn func() Eval[T]) Eval[T] {
	return Eval[T]{node: evalCall{fn: func() evalNode {
		return fn().node
	}}}
}

// MapEval applies a transformation to the eventual value.
func MapEval[T, U any](e Eval[T], fn func(T) U) Eval[U] {
	return Eval[U]{node: evalBind{
		src: e.node,
		cont: func(v any) evalNode {
			return evalNow{value: fn(v.(T))}
		},
	}}
}

// FlatMapEval sequences a computation that depends on the eventual value.
func FlatMapEval[T, U any](e Eval[T], fn func(T) Eval[U]) Eval[U] {
	return Eval[U]{node: evalBind{
		src: e.node,
		cont: func(v any) evalNode {
			return fn(v.(T)).node
		},
	}}
}

// Value runs the computation and returns the result. Evaluation is an
// iterative loop over an explicit continuation stack.
func (e Eval[T]) Value() T {
	return runEval(e.node).(T)
}

func runEval(node evalNode) any {
	var conts []func(any) evalNode
	for {
		switch n := node.(type) {
		case evalNow:
			if len(conts) == 0 {
				return n.value
			}
			next := conts[len(conts)-1]
			conts = conts[:len(conts)-1]
			node = next(n.value)
		case evalCall:
			node = n.fn()
		case evalBind:
			conts = append(conts, n.cont)
			node = n.src
		default:
			panic("functional: Value called on zero Eval")
		}
	}
}

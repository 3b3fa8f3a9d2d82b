// Package worklist implements a FIFO worklist in which every element is
// pending at most once.
package worklist

type Worklist[T comparable] struct {
	list    []T
	pending map[T]struct{}
}

// Start worklist execution with provided `starting` element and an iteration
// function. The iteration function exposes the next element and a function with
// which to add more elements to the worklist.
func Start[T comparable](start T, do func(next T, add func(el T))) {
	StartV([]T{start}, do)
}

// Start worklist execution with a preloaded queue and an iteration
// function. The iteration function exposes the next element and a function with
// which to add more elements to the worklist.
func StartV[T comparable](start []T, do func(next T, add func(el T))) {
	W := Empty[T]()
	for _, e := range start {
		W.Add(e)
	}

	W.Process(do)
}

func Empty[T comparable]() Worklist[T] {
	return Worklist[T]{pending: make(map[T]struct{})}
}

func (w *Worklist[T]) GetNext() (ret T) {
	if len(w.list) == 0 {
		return
	}
	next := w.list[0]
	w.list = w.list[1:]
	delete(w.pending, next)
	return next
}

func (w *Worklist[T]) IsEmpty() bool {
	return len(w.list) == 0
}

func (w *Worklist[T]) Len() int {
	return len(w.list)
}

func (w *Worklist[T]) Process(
	do func(
		next T,
		add func(element T))) {
	for !w.IsEmpty() {
		do(w.GetNext(), func(el T) { w.Add(el) })
	}
}

// Add enqueues el unless it is already pending. It reports whether el was
// enqueued.
func (w *Worklist[T]) Add(el T) bool {
	if w.pending == nil {
		w.pending = make(map[T]struct{})
	}
	if _, found := w.pending[el]; found {
		return false
	}
	w.pending[el] = struct{}{}
	w.list = append(w.list, el)
	return true
}

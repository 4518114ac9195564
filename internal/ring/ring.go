// Package ring provides the fixed-capacity sequences that back the patient's
// calendar and rolling signal histories.
package ring

// Rotor is a full, fixed-capacity buffer whose head moves one position per
// rotation and wraps at capacity. Its length always equals its capacity.
type Rotor[T any] struct {
	items []T
	head  int
}

// NewRotor creates a rotor over a copy of items with the head at items[0].
func NewRotor[T any](items ...T) *Rotor[T] {
	owned := make([]T, len(items))
	copy(owned, items)
	return &Rotor[T]{items: owned}
}

// Len returns the number of items, which is also the capacity.
func (r *Rotor[T]) Len() int {
	return len(r.items)
}

// Head returns the item currently at the front.
func (r *Rotor[T]) Head() T {
	return r.items[r.head]
}

// Rotate moves the head forward by exactly one position and returns the new head.
func (r *Rotor[T]) Rotate() T {
	if len(r.items) == 0 {
		var zero T
		return zero
	}
	r.head = (r.head + 1) % len(r.items)
	return r.items[r.head]
}

// Window is a bounded rolling history. Pushing into a full window evicts the
// oldest sample.
type Window[T comparable] struct {
	items []T
	cap   int
}

// NewWindow creates an empty window holding at most capacity samples.
func NewWindow[T comparable](capacity int) *Window[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Window[T]{items: make([]T, 0, capacity), cap: capacity}
}

// Push appends v, evicting the oldest sample when full.
func (w *Window[T]) Push(v T) {
	if len(w.items) == w.cap {
		copy(w.items, w.items[1:])
		w.items[len(w.items)-1] = v
		return
	}
	w.items = append(w.items, v)
}

// Clear drops every sample.
func (w *Window[T]) Clear() {
	w.items = w.items[:0]
}

// Len returns the number of retained samples.
func (w *Window[T]) Len() int {
	return len(w.items)
}

// Last returns the most recent sample. ok is false if the window is empty.
func (w *Window[T]) Last() (v T, ok bool) {
	if len(w.items) == 0 {
		return v, false
	}
	return w.items[len(w.items)-1], true
}

// Count returns how many retained samples equal v.
func (w *Window[T]) Count(v T) int {
	n := 0
	for _, it := range w.items {
		if it == v {
			n++
		}
	}
	return n
}

// Older returns the samples that precede the most recent keep samples, oldest
// first. It is empty whenever Len() <= keep.
func (w *Window[T]) Older(keep int) []T {
	if keep < 0 {
		keep = 0
	}
	if len(w.items) <= keep {
		return nil
	}
	out := make([]T, len(w.items)-keep)
	copy(out, w.items[:len(w.items)-keep])
	return out
}

// Values returns a copy of the retained samples, oldest first.
func (w *Window[T]) Values() []T {
	out := make([]T, len(w.items))
	copy(out, w.items)
	return out
}

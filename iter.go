package vec

import "iter"

// All returns an iterator over index/element pairs of the live range.
// The vector must not be mutated during iteration.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range v.size {
			if !yield(i, *v.buf.At(i)) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements of the live range in order.
// The vector must not be mutated during iteration.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range v.size {
			if !yield(*v.buf.At(i)) {
				return
			}
		}
	}
}

package vec

import "fmt"

// Emplace inserts one element at position i, constructing it with build.
// Positions run [0, Len()]; Len() appends. It returns the index of the new
// element.
//
// When the element fits without reallocation the value is built first and
// then shifted into place, so a build failure changes nothing. When growth
// is needed the value is built directly into its slot in the new buffer
// before any element is relocated; a failure at any step discards the new
// buffer and leaves v exactly as it was.
func (v *Vector[T]) Emplace(i int, build func() (T, error)) (int, error) {
	if i < 0 || i > v.size {
		panic(fmt.Sprintf("vec: position %d out of range [0, %d]", i, v.size))
	}
	var err error
	if v.size < v.buf.Cap() {
		err = v.emplaceInPlace(i, build)
	} else {
		err = v.emplaceGrow(i, build)
	}
	if err != nil {
		return 0, err
	}
	v.size++
	return i, nil
}

// emplaceInPlace inserts within existing capacity. The free end slot
// receives the current last element, the range [i, size-1) shifts one slot
// right by backward assignment, and the built value lands at i. Element
// transfer is plain assignment and cannot fail, so once build has
// succeeded the whole path is infallible; every slot it touches is either
// fully written or untouched.
func (v *Vector[T]) emplaceInPlace(i int, build func() (T, error)) error {
	if i == v.size {
		x, err := build()
		if err != nil {
			return err
		}
		*v.buf.At(v.size) = x
		return nil
	}
	tmp, err := build()
	if err != nil {
		return err
	}
	*v.buf.At(v.size) = *v.buf.At(v.size - 1)
	for j := v.size - 1; j > i; j-- {
		*v.buf.At(j) = *v.buf.At(j - 1)
	}
	*v.buf.At(i) = tmp
	return nil
}

// emplaceGrow inserts with reallocation at double the current length. The
// new element is built into its target slot before anything is relocated,
// then the prefix [0, i) and suffix [i, size) are relocated around it.
func (v *Vector[T]) emplaceGrow(i int, build func() (T, error)) error {
	nb := NewRawBuffer[T](v.grownCap())
	x, err := build()
	if err != nil {
		nb.Release()
		return err
	}
	*nb.At(i) = x
	if err := v.relocate(&nb, 0, i, 0); err != nil {
		nb.Release()
		return err
	}
	if err := v.relocate(&nb, i, v.size, i+1); err != nil {
		nb.Release()
		return err
	}
	v.buf.Swap(&nb)
	nb.Release()
	return nil
}

// Insert inserts x at position i, taking ownership of x. It reports the
// index of the inserted element.
func (v *Vector[T]) Insert(i int, x T) (int, error) {
	return v.Emplace(i, func() (T, error) { return x, nil })
}

// Push appends x, taking ownership of x.
func (v *Vector[T]) Push(x T) error {
	_, err := v.Emplace(v.size, func() (T, error) { return x, nil })
	return err
}

// Remove deletes the element at index i, shifting the elements after it
// one slot left and clearing the vacated last slot. It panics on an empty
// vector or an index outside [0, Len()). The returned index addresses the
// element that followed the removed one, or equals Len() when the last
// element was removed.
func (v *Vector[T]) Remove(i int) int {
	if v.size == 0 {
		panic("vec: Remove on empty vector")
	}
	if i < 0 || i >= v.size {
		panic(fmt.Sprintf("vec: index %d out of range [0, %d)", i, v.size))
	}
	last := v.size - 1
	for j := i; j < last; j++ {
		*v.buf.At(j) = *v.buf.At(j + 1)
	}
	var zero T
	*v.buf.At(last) = zero
	v.size = last
	return i
}

// Pop removes the last element. No-op on an empty vector.
func (v *Vector[T]) Pop() {
	if v.size == 0 {
		return
	}
	v.size--
	var zero T
	*v.buf.At(v.size) = zero
}

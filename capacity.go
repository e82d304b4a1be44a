package vec

// Grow ensures capacity is at least the requested value. If the current
// capacity already suffices this is a no-op; otherwise a buffer of exactly
// that capacity is allocated, all live elements are relocated into it, and
// the buffers are swapped. The swap happens only after every relocation
// succeeded, so a Clone failure leaves v exactly as it was.
func (v *Vector[T]) Grow(capacity int) error {
	if capacity <= v.buf.Cap() {
		return nil
	}
	nb := NewRawBuffer[T](capacity)
	if err := v.relocate(&nb, 0, v.size, 0); err != nil {
		nb.Release()
		return err
	}
	v.buf.Swap(&nb)
	nb.Release()
	return nil
}

// Resize sets the length to n. Shrinking clears the excess tail slots and
// keeps capacity; growing within capacity exposes zero-valued elements;
// growing beyond capacity allocates via Grow first. Negative n is treated
// as 0.
func (v *Vector[T]) Resize(n int) error {
	if n < 0 {
		n = 0
	}
	switch {
	case n <= v.size:
		v.zeroRange(n, v.size)
	case n <= v.buf.Cap():
		// Spare slots are kept zero by the live-range invariant; clear
		// anyway so a slot corrupted through a stale Slice cannot leak in.
		v.zeroRange(v.size, n)
	default:
		if err := v.Grow(n); err != nil {
			return err
		}
	}
	v.size = n
	return nil
}

// Clear removes all elements, keeping capacity.
func (v *Vector[T]) Clear() {
	v.zeroRange(0, v.size)
	v.size = 0
}

// relocate transfers elements [from, to) into slots of dst starting at
// offset at. Cloner element types are duplicated through Clone so that a
// failure leaves the source buffer fully intact; other types are copied by
// assignment, which cannot fail.
func (v *Vector[T]) relocate(dst *RawBuffer[T], from, to, at int) error {
	if !v.deep {
		copy(dst.slots[at:], v.buf.slots[from:to])
		return nil
	}
	for i := from; i < to; i++ {
		x, err := v.cloneElem(i, *v.buf.At(i))
		if err != nil {
			return err
		}
		*dst.At(at + i - from) = x
	}
	return nil
}

// grownCap returns the implicit-growth target: double the current length,
// with a floor of one for the empty case. Doubling keeps appends amortized
// O(1).
func (v *Vector[T]) grownCap() int {
	if v.size == 0 {
		return 1
	}
	return 2 * v.size
}

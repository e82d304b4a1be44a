package vec

import "fmt"

// Cloner is implemented by element types whose duplication is deep and may
// fail. Vectors of a Cloner element type duplicate and relocate elements
// through Clone; every other element type is transferred by plain
// assignment, which cannot fail.
//
// The capability is resolved from the static element type when a vector is
// created. An interface-typed T never resolves as a Cloner, even when its
// dynamic values would.
type Cloner[T any] interface {
	Clone() (T, error)
}

// Vector is a growable, contiguous sequence of T. Slots [0, Len()) of the
// owned buffer hold live elements; slots [Len(), Cap()) are kept at the
// zero value. Every operation restores that invariant before returning,
// including on error.
//
// The zero Vector is not ready for use; create vectors with New, NewLen,
// Take or Clone.
type Vector[T any] struct {
	buf  RawBuffer[T]
	size int
	deep bool
}

// New returns an empty vector with no allocation.
func New[T any]() *Vector[T] {
	var zero T
	_, deep := any(zero).(Cloner[T])
	return &Vector[T]{deep: deep}
}

// NewLen returns a vector of n zero-valued elements with capacity exactly
// n. A length <= 0 yields an empty vector.
func NewLen[T any](n int) *Vector[T] {
	v := New[T]()
	if n > 0 {
		v.buf = NewRawBuffer[T](n)
		v.size = n
	}
	return v
}

// Take returns a new vector owning src's buffer and elements. src is left
// empty with capacity 0.
func Take[T any](src *Vector[T]) *Vector[T] {
	v := New[T]()
	v.MoveFrom(src)
	return v
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the slot count of the owned buffer. Cap never decreases
// across operations; Resize and Clear shrink the live range only.
func (v *Vector[T]) Cap() int {
	return v.buf.Cap()
}

// At returns the address of element i for reading or in-place mutation.
// It panics when i is outside [0, Len()).
func (v *Vector[T]) At(i int) *T {
	if i < 0 || i >= v.size {
		panic(fmt.Sprintf("vec: index %d out of range [0, %d)", i, v.size))
	}
	return v.buf.At(i)
}

// Slice returns the live-element window of the backing storage. Mutations
// through the slice are visible in the vector and vice versa. The slice is
// valid only until the next operation that grows or shifts elements; its
// capacity is clipped so appending to it never touches the vector's spare
// slots.
func (v *Vector[T]) Slice() []T {
	return v.buf.slots[:v.size:v.size]
}

// Swap exchanges the contents of v and other in constant time. It never
// fails and moves no elements, only the two vectors' bookkeeping.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.buf.Swap(&other.buf)
	v.size, other.size = other.size, v.size
}

// Clone returns a deep copy of v with capacity exactly Len(). For Cloner
// element types each element is duplicated through Clone; the first
// failure is returned and the partial copy is discarded, leaving v
// untouched.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	out := &Vector[T]{buf: NewRawBuffer[T](v.size), deep: v.deep}
	for i := range v.size {
		x, err := v.cloneElem(i, *v.buf.At(i))
		if err != nil {
			return nil, err
		}
		*out.buf.At(i) = x
	}
	out.size = v.size
	return out, nil
}

// CopyFrom replaces v's contents with a deep copy of src's.
//
// When src does not fit in v's current capacity, the copy is built aside
// and swapped in, so a Clone failure leaves v unmodified. Otherwise
// existing storage is reused: the tail is extended or trimmed to src's
// length and the shared prefix is copy-assigned in place. On that reuse
// path a prefix Clone failure leaves v at src's length with a partially
// assigned prefix — a valid state, but not the pre-call one.
func (v *Vector[T]) CopyFrom(src *Vector[T]) error {
	if v == src {
		return nil
	}
	if v.buf.Cap() < src.size {
		tmp, err := src.Clone()
		if err != nil {
			return err
		}
		v.Swap(tmp)
		return nil
	}
	if v.size > src.size {
		v.zeroRange(src.size, v.size)
	} else {
		for i := v.size; i < src.size; i++ {
			x, err := src.cloneElem(i, *src.buf.At(i))
			if err != nil {
				v.zeroRange(v.size, i)
				return err
			}
			*v.buf.At(i) = x
		}
	}
	prefix := min(v.size, src.size)
	v.size = src.size
	for i := range prefix {
		x, err := src.cloneElem(i, *src.buf.At(i))
		if err != nil {
			return err
		}
		*v.buf.At(i) = x
	}
	return nil
}

// MoveFrom releases v's contents, takes ownership of src's buffer and
// elements, and leaves src empty with capacity 0. It never fails.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if v == src {
		return
	}
	v.buf.MoveFrom(&src.buf)
	v.size = src.size
	src.size = 0
}

// cloneElem duplicates one element per the vector's relocation capability.
func (v *Vector[T]) cloneElem(i int, x T) (T, error) {
	if !v.deep {
		return x, nil
	}
	out, err := any(x).(Cloner[T]).Clone()
	if err != nil {
		var zero T
		return zero, fmt.Errorf("vec: clone element %d: %w", i, err)
	}
	return out, nil
}

// zeroRange clears slots [from, to) so the GC can reclaim what the
// departed elements referenced.
func (v *Vector[T]) zeroRange(from, to int) {
	clear(v.buf.slots[from:to])
}

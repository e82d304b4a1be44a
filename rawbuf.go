package vec

// RawBuffer holds a fixed-capacity block of element slots. It reserves and
// releases storage only: it never tracks which slots hold live values, and
// it never clears a slot itself — that is the owning container's job.
//
// Ownership of the block is exclusive. Transfer it with MoveFrom or Swap;
// copying a RawBuffer by assignment would alias one block between two
// owners and must not be done.
type RawBuffer[T any] struct {
	slots []T
}

// NewRawBuffer reserves storage for capacity elements. A capacity <= 0
// yields an empty buffer holding no allocation. The capacity is fixed for
// the buffer's lifetime; growing means allocating a new buffer and moving
// contents over.
func NewRawBuffer[T any](capacity int) RawBuffer[T] {
	if capacity <= 0 {
		return RawBuffer[T]{}
	}
	return RawBuffer[T]{slots: make([]T, capacity)}
}

// Cap returns the number of slots.
func (b *RawBuffer[T]) Cap() int {
	return len(b.slots)
}

// At returns the address of slot i. It panics when i is outside
// [0, Cap()); whether the slot holds a live value is not this layer's
// concern.
func (b *RawBuffer[T]) At(i int) *T {
	return &b.slots[i]
}

// Swap exchanges the two buffers' allocations. It never fails.
func (b *RawBuffer[T]) Swap(other *RawBuffer[T]) {
	b.slots, other.slots = other.slots, b.slots
}

// MoveFrom releases b's allocation, takes ownership of other's, and leaves
// other empty.
func (b *RawBuffer[T]) MoveFrom(other *RawBuffer[T]) {
	if b == other {
		return
	}
	b.slots = other.slots
	other.slots = nil
}

// Release drops the allocation. No-op on an empty buffer. The caller must
// have cleared any live values beforehand; Release itself never inspects
// slots.
func (b *RawBuffer[T]) Release() {
	b.slots = nil
}

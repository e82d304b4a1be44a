package vec

import "sync"

// Pool provides sync.Pool-based Vector reuse to reduce GC pressure in hot
// loops. Pooled vectors are cleared before parking so they pin no element
// references while idle. Each vector handed out is still single-threaded;
// only the pool itself is safe for concurrent Get/Put.
type Pool[T any] struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool[T any]() *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				return New[T]()
			},
		},
	}
}

// Get returns a vector of n zero-valued elements, reusing a pooled buffer
// when one with enough capacity is available. Callers must return it via
// Put when done.
func (p *Pool[T]) Get(n int) *Vector[T] {
	v := p.pool.Get().(*Vector[T])
	// The vector was cleared on Put, so Resize never relocates elements
	// and cannot fail.
	_ = v.Resize(n)
	return v
}

// Put clears v and returns it to the pool for reuse. The caller must not
// use the vector after calling Put.
func (p *Pool[T]) Put(v *Vector[T]) {
	if v == nil {
		return
	}
	v.Clear()
	p.pool.Put(v)
}

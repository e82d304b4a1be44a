// Package vec provides a growable, contiguous, type-generic sequence
// container built on an explicit two-layer ownership model: RawBuffer owns
// a fixed-capacity block of element slots and knows nothing about which
// slots hold live values; Vector owns one RawBuffer plus a live-element
// count and is the sole authority over element lifetime.
//
// Slots outside the live range [0, Len()) are kept at the zero value so the
// garbage collector can reclaim anything a removed element referenced.
//
// Element types whose duplication is deep and may fail implement Cloner.
// The capability is resolved once per element type when a vector is
// created: Cloner types are relocated across buffers by Clone, so a failure
// mid-relocation leaves the vector exactly as it was; all other types are
// relocated by assignment, which cannot fail. Push and Insert transfer
// ownership of their argument to the vector — callers of Cloner types who
// need copy-in semantics should Clone first.
//
// Errors returned by Vector operations are exactly the propagated element
// Clone failures. Out-of-range indices and removing from an empty vector
// are programming errors and panic. A Vector must not be mutated from
// multiple goroutines.
package vec

// Package testutil provides deterministic input generation for container
// tests and benchmarks.
package testutil

import "math/rand"

// OpKind identifies one mutation in a generated workload.
type OpKind int

// Workload operation kinds.
const (
	OpPush OpKind = iota
	OpInsert
	OpRemove
	OpPop
)

// Op is one step of a generated container workload. Pos is a raw
// non-negative random value; callers reduce it modulo the container's
// current length (or length+1 for insertions). Value is the payload for
// constructive operations.
type Op struct {
	Kind  OpKind
	Pos   int
	Value int
}

// DeterministicOps generates a reproducible workload of n operations from
// a fixed seed, biased toward constructive operations so sequences tend to
// grow.
func DeterministicOps(seed int64, n int) []Op {
	rng := rand.New(rand.NewSource(seed))
	out := make([]Op, n)
	for i := range out {
		var kind OpKind
		switch r := rng.Intn(10); {
		case r < 4:
			kind = OpPush
		case r < 7:
			kind = OpInsert
		case r < 9:
			kind = OpRemove
		default:
			kind = OpPop
		}
		out[i] = Op{
			Kind:  kind,
			Pos:   rng.Intn(1 << 20),
			Value: rng.Intn(1 << 16),
		}
	}
	return out
}

// DeterministicInts generates n reproducible pseudo-random values in
// [0, 1<<16) from a fixed seed.
func DeterministicInts(seed int64, n int) []int {
	rng := rand.New(rand.NewSource(seed))
	out := make([]int, n)
	for i := range out {
		out[i] = rng.Intn(1 << 16)
	}
	return out
}

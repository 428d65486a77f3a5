// Package rtv implements a persistent, bit-partitioned radix-tree vector: a
// mutable, growable ordered sequence that supports O(1) shallow cloning and
// freezing via structural sharing, in the style of Clojure's and Elvish's
// persistent vectors.
//
// A Vector holds up to B=32 elements per tree leaf, addressed by successive
// 5-bit chunks of the index ("shift"). The rightmost 0..B elements not yet
// folded into the tree live in a small mutable tail buffer. Cloning or
// freezing a Vector shares its tree by reference and copies only the tail.
package rtv

// branchFactor is B: the fan-out of every internal node and the capacity of
// every leaf.
const branchFactor = 32

// bits is BITS: log2(branchFactor), the width of the index chunk consumed
// at each tree level.
const bits = 5

// mask extracts the low BITS bits of an index: the child slot at shift 0.
const mask = branchFactor - 1

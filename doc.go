// Package newtype provides generic wrappers that distinguish semantically
// different values even when they share an identical underlying
// representation. A wrapper carries a compile-time-only marker type, so two
// wrappers built from the same representation but different markers are
// unrelated types: mixing them is a build failure, not a runtime bug.
//
// Three wrapper kinds are provided:
//
//   - Amount: a tagged relative quantity supporting addition, subtraction,
//     scaling by a bare scalar, and division into a dimensionless ratio.
//   - Id: a tagged opaque identifier supporting only equality, ordering,
//     and map-key use. Ids deliberately expose no arithmetic.
//   - Instant: a tagged absolute point supporting instant-instant
//     differencing (which yields an Amount) and offsetting by an Amount.
//
// Markers are ordinary types used only as type arguments; they are never
// stored, so a wrapper is layout-identical to its bare representation:
//
//	type Apples struct{}
//	type Oranges struct{}
//
//	three := newtype.AmountOf[Apples](uint64(3))
//	six := three.Add(three)            // Amount[Apples, uint64]
//	_ = six == newtype.AmountOf[Apples](uint64(6))
//
//	// three.Add(newtype.AmountOf[Oranges](uint64(5))) does not compile.
//
// Serialization is representation-transparent: a wrapper encodes to exactly
// the bytes its bare representation would, in JSON, YAML, and CBOR, and
// decodes symmetrically. External systems never observe the marker.
//
// Wrappers are plain value types with no internal state; sharing one across
// goroutines is safe exactly when sharing the bare representation is. The
// marker places no constraint because no instance of it is ever kept.
package newtype

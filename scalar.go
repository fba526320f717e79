package newtype

import "golang.org/x/exp/constraints"

// Scalar is the representation constraint for the arithmetic wrappers
// (Amount and Instant). Identifiers only need equality and use the
// built-in comparable constraint directly.
type Scalar interface {
	constraints.Integer | constraints.Float
}

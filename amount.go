package newtype

import (
	"cmp"
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

// Amount is a type-safe amount of some Unit. The Unit parameter is phantom:
// it is never stored, so an Amount is layout-identical to its bare Repr and
// incurs no runtime cost. Two Amounts with different Units are unrelated
// types, which makes accidental mixing a compile error:
//
//	type Apples struct{}
//	type Oranges struct{}
//
//	pommes := newtype.AmountOf[Apples](uint64(3))
//	oranges := newtype.AmountOf[Oranges](uint64(5))
//	// pommes.Add(oranges) does not compile.
//
// Amounts of the same Unit and Repr compare with the native == and != and
// can key maps; both delegate structurally to Repr.
//
// Multiplying two Amounts is deliberately unsupported: meters times meters
// are square meters, and this design cannot express a different output
// unit. Scale by a bare scalar with Mul, or recover a dimensionless ratio
// of two amounts with Div.
type Amount[Unit any, Repr Scalar] struct {
	repr Repr
}

// AmountOf wraps a bare representation value into an Amount tagged with
// Unit. The representation type is inferred from the argument:
//
//	distance := newtype.AmountOf[Meters](uint64(10))
func AmountOf[Unit any, Repr Scalar](repr Repr) Amount[Unit, Repr] {
	return Amount[Unit, Repr]{repr: repr}
}

// Get returns the wrapped representation value.
func (a Amount[Unit, Repr]) Get() Repr {
	return a.repr
}

// Unit returns the zero value of the marker type. It carries no data; the
// accessor exists so call sites can name the unit, e.g. in log lines.
func (a Amount[Unit, Repr]) Unit() Unit {
	var unit Unit
	return unit
}

// Add returns the sum of two amounts of the same unit.
func (a Amount[Unit, Repr]) Add(rhs Amount[Unit, Repr]) Amount[Unit, Repr] {
	a.repr += rhs.repr
	return a
}

// Sub returns the difference of two amounts of the same unit.
func (a Amount[Unit, Repr]) Sub(rhs Amount[Unit, Repr]) Amount[Unit, Repr] {
	a.repr -= rhs.repr
	return a
}

// Mul scales the amount by a bare scalar, preserving the unit.
func (a Amount[Unit, Repr]) Mul(k Repr) Amount[Unit, Repr] {
	a.repr *= k
	return a
}

// Div divides the amount by another amount of the same unit. The result is
// a bare scalar: a ratio of two like quantities is dimensionless.
func (a Amount[Unit, Repr]) Div(rhs Amount[Unit, Repr]) Repr {
	return a.repr / rhs.repr
}

// AddAssign adds rhs to the amount in place.
func (a *Amount[Unit, Repr]) AddAssign(rhs Amount[Unit, Repr]) {
	a.repr += rhs.repr
}

// SubAssign subtracts rhs from the amount in place.
func (a *Amount[Unit, Repr]) SubAssign(rhs Amount[Unit, Repr]) {
	a.repr -= rhs.repr
}

// MulAssign scales the amount by a bare scalar in place.
func (a *Amount[Unit, Repr]) MulAssign(k Repr) {
	a.repr *= k
}

// Cmp compares two amounts of the same unit, delegating to the
// representation's ordering: -1 if a < rhs, 0 if equal, +1 if a > rhs.
func (a Amount[Unit, Repr]) Cmp(rhs Amount[Unit, Repr]) int {
	return cmp.Compare(a.repr, rhs.repr)
}

// Less reports whether a orders before rhs.
func (a Amount[Unit, Repr]) Less(rhs Amount[Unit, Repr]) bool {
	return a.repr < rhs.repr
}

// String formats the amount exactly as its bare representation. Markers
// that implement Displayer can override formatting via Display.
func (a Amount[Unit, Repr]) String() string {
	return fmt.Sprint(a.repr)
}

// MarshalJSON encodes the amount as its bare representation, with no
// wrapper envelope and no marker field.
func (a Amount[Unit, Repr]) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.repr)
}

// UnmarshalJSON decodes a bare representation value. Malformed input fails
// exactly as it would for the representation itself.
func (a *Amount[Unit, Repr]) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &a.repr)
}

// MarshalYAML encodes the amount as its bare representation.
func (a Amount[Unit, Repr]) MarshalYAML() (any, error) {
	return a.repr, nil
}

// UnmarshalYAML decodes a bare representation value.
func (a *Amount[Unit, Repr]) UnmarshalYAML(node *yaml.Node) error {
	return node.Decode(&a.repr)
}

// MarshalCBOR encodes the amount as its bare representation.
func (a Amount[Unit, Repr]) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(a.repr)
}

// UnmarshalCBOR decodes a bare representation value.
func (a *Amount[Unit, Repr]) UnmarshalCBOR(data []byte) error {
	return cbor.Unmarshal(data, &a.repr)
}

var (
	_ fmt.Stringer     = Amount[any, int]{}
	_ json.Marshaler   = Amount[any, int]{}
	_ json.Unmarshaler = (*Amount[any, int])(nil)
	_ yaml.Marshaler   = Amount[any, int]{}
	_ yaml.Unmarshaler = (*Amount[any, int])(nil)
	_ cbor.Marshaler   = Amount[any, int]{}
	_ cbor.Unmarshaler = (*Amount[any, int])(nil)
)

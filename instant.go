package newtype

import (
	"cmp"
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

// Instant is a type-safe absolute point expressed in some Unit (CPU ticks,
// seconds from epoch, years from birth). The Unit parameter is phantom,
// exactly as in Amount.
//
// Instants and Amounts of the same Unit form the usual affine algebra:
// subtracting two Instants yields an Amount, and adding or subtracting an
// Amount yields another Instant. Adding two Instants has no meaning and is
// not offered.
//
//	type SecondsFromEpoch struct{}
//
//	type UnixTime = newtype.Instant[SecondsFromEpoch, int64]
//	type TimeDiff = newtype.Amount[SecondsFromEpoch, int64]
//
//	epoch := newtype.InstantOf[SecondsFromEpoch](int64(0))
//	date := newtype.InstantOf[SecondsFromEpoch](int64(123456789))
//	diff := date.Sub(epoch) // TimeDiff of 123456789
//	_ = epoch.Add(diff) == date
type Instant[Unit any, Repr Scalar] struct {
	repr Repr
}

// InstantOf wraps a bare representation value into an Instant tagged with
// Unit.
func InstantOf[Unit any, Repr Scalar](repr Repr) Instant[Unit, Repr] {
	return Instant[Unit, Repr]{repr: repr}
}

// Get returns the wrapped representation value.
func (t Instant[Unit, Repr]) Get() Repr {
	return t.repr
}

// Unit returns the zero value of the marker type.
func (t Instant[Unit, Repr]) Unit() Unit {
	var unit Unit
	return unit
}

// Sub returns the amount of units between two instants. This is the only
// way to obtain a span from two instants.
func (t Instant[Unit, Repr]) Sub(rhs Instant[Unit, Repr]) Amount[Unit, Repr] {
	return AmountOf[Unit](t.repr - rhs.repr)
}

// Add offsets the instant forward by an amount of the same unit.
func (t Instant[Unit, Repr]) Add(d Amount[Unit, Repr]) Instant[Unit, Repr] {
	t.repr += d.repr
	return t
}

// SubAmount offsets the instant backward by an amount of the same unit.
func (t Instant[Unit, Repr]) SubAmount(d Amount[Unit, Repr]) Instant[Unit, Repr] {
	t.repr -= d.repr
	return t
}

// AddAssign offsets the instant forward in place.
func (t *Instant[Unit, Repr]) AddAssign(d Amount[Unit, Repr]) {
	t.repr += d.repr
}

// SubAssign offsets the instant backward in place.
func (t *Instant[Unit, Repr]) SubAssign(d Amount[Unit, Repr]) {
	t.repr -= d.repr
}

// AddDiff offsets an instant by an amount whose representation differs from
// the instant's own, converting the difference into the instant's
// representation. This lets a coarse instant absorb a signed difference:
//
//	tick := newtype.InstantOf[Ticks](uint64(100))
//	back := newtype.AmountOf[Ticks](int64(-30))
//	_ = newtype.AddDiff(tick, back) // Instant[Ticks, uint64] of 70
func AddDiff[Unit any, Repr, Diff Scalar](t Instant[Unit, Repr], d Amount[Unit, Diff]) Instant[Unit, Repr] {
	t.repr += Repr(d.repr)
	return t
}

// SubDiff offsets an instant backward by an amount of a different
// representation, mirroring AddDiff.
func SubDiff[Unit any, Repr, Diff Scalar](t Instant[Unit, Repr], d Amount[Unit, Diff]) Instant[Unit, Repr] {
	t.repr -= Repr(d.repr)
	return t
}

// Mul scales the instant by a bare scalar, preserving the unit. Offered
// for symmetry with Amount; useful for normalized timestamps.
func (t Instant[Unit, Repr]) Mul(k Repr) Instant[Unit, Repr] {
	t.repr *= k
	return t
}

// MulAssign scales the instant by a bare scalar in place.
func (t *Instant[Unit, Repr]) MulAssign(k Repr) {
	t.repr *= k
}

// Div divides the instant by another instant of the same unit, returning a
// bare dimensionless scalar.
func (t Instant[Unit, Repr]) Div(rhs Instant[Unit, Repr]) Repr {
	return t.repr / rhs.repr
}

// Cmp compares two instants of the same unit: -1, 0, or +1.
func (t Instant[Unit, Repr]) Cmp(rhs Instant[Unit, Repr]) int {
	return cmp.Compare(t.repr, rhs.repr)
}

// Less reports whether t orders before rhs.
func (t Instant[Unit, Repr]) Less(rhs Instant[Unit, Repr]) bool {
	return t.repr < rhs.repr
}

// String formats the instant exactly as its bare representation. Markers
// that implement Displayer can override formatting via Display.
func (t Instant[Unit, Repr]) String() string {
	return fmt.Sprint(t.repr)
}

// MarshalJSON encodes the instant as its bare representation, with no
// wrapper envelope and no marker field.
func (t Instant[Unit, Repr]) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.repr)
}

// UnmarshalJSON decodes a bare representation value. Malformed input fails
// exactly as it would for the representation itself.
func (t *Instant[Unit, Repr]) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &t.repr)
}

// MarshalYAML encodes the instant as its bare representation.
func (t Instant[Unit, Repr]) MarshalYAML() (any, error) {
	return t.repr, nil
}

// UnmarshalYAML decodes a bare representation value.
func (t *Instant[Unit, Repr]) UnmarshalYAML(node *yaml.Node) error {
	return node.Decode(&t.repr)
}

// MarshalCBOR encodes the instant as its bare representation.
func (t Instant[Unit, Repr]) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(t.repr)
}

// UnmarshalCBOR decodes a bare representation value.
func (t *Instant[Unit, Repr]) UnmarshalCBOR(data []byte) error {
	return cbor.Unmarshal(data, &t.repr)
}

var (
	_ fmt.Stringer     = Instant[any, int64]{}
	_ json.Marshaler   = Instant[any, int64]{}
	_ json.Unmarshaler = (*Instant[any, int64])(nil)
	_ yaml.Marshaler   = Instant[any, int64]{}
	_ yaml.Unmarshaler = (*Instant[any, int64])(nil)
	_ cbor.Marshaler   = Instant[any, int64]{}
	_ cbor.Unmarshaler = (*Instant[any, int64])(nil)
)

package newtype

import (
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/exp/constraints"
	"gopkg.in/yaml.v3"
)

// Id is a type-safe identifier of some Entity. Like Amount, the Entity
// parameter is phantom: ids of different entities are unrelated types even
// when they share a representation.
//
//	type User struct{}
//	type Post struct{}
//
//	type UserId = newtype.Id[User, uint64]
//	type PostId = newtype.Id[Post, uint64]
//
//	// UserId and PostId values never mix, at compile time.
//
// Ids deliberately expose no arithmetic and no Unit accessor: an identifier
// is an inert label, not a value to compute with. The representation only
// needs to be comparable, which gives equality and map-key use; ordering is
// opt-in via CompareIds. Any comparable type works, including uuid.UUID and
// fixed-size byte arrays.
type Id[Entity any, Repr comparable] struct {
	repr Repr
}

// IdOf wraps a bare representation value into an Id tagged with Entity.
func IdOf[Entity any, Repr comparable](repr Repr) Id[Entity, Repr] {
	return Id[Entity, Repr]{repr: repr}
}

// Get returns the wrapped representation value.
func (id Id[Entity, Repr]) Get() Repr {
	return id.repr
}

// String formats the id exactly as its bare representation. Markers that
// implement Displayer can override formatting via Display.
func (id Id[Entity, Repr]) String() string {
	return fmt.Sprint(id.repr)
}

// CompareIds orders two ids of the same entity by their representations.
// It is a free function rather than a method so that Id itself only
// requires comparable: ordering is available exactly when the
// representation is ordered.
func CompareIds[Entity any, Repr constraints.Ordered](a, b Id[Entity, Repr]) int {
	switch {
	case a.repr < b.repr:
		return -1
	case a.repr > b.repr:
		return +1
	default:
		return 0
	}
}

// MarshalJSON encodes the id as its bare representation, with no wrapper
// envelope and no marker field.
func (id Id[Entity, Repr]) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.repr)
}

// UnmarshalJSON decodes a bare representation value. Malformed input fails
// exactly as it would for the representation itself.
func (id *Id[Entity, Repr]) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &id.repr)
}

// MarshalYAML encodes the id as its bare representation.
func (id Id[Entity, Repr]) MarshalYAML() (any, error) {
	return id.repr, nil
}

// UnmarshalYAML decodes a bare representation value.
func (id *Id[Entity, Repr]) UnmarshalYAML(node *yaml.Node) error {
	return node.Decode(&id.repr)
}

// MarshalCBOR encodes the id as its bare representation.
func (id Id[Entity, Repr]) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(id.repr)
}

// UnmarshalCBOR decodes a bare representation value.
func (id *Id[Entity, Repr]) UnmarshalCBOR(data []byte) error {
	return cbor.Unmarshal(data, &id.repr)
}

var (
	_ fmt.Stringer     = Id[any, string]{}
	_ json.Marshaler   = Id[any, string]{}
	_ json.Unmarshaler = (*Id[any, string])(nil)
	_ yaml.Marshaler   = Id[any, string]{}
	_ yaml.Unmarshaler = (*Id[any, string])(nil)
	_ cbor.Marshaler   = Id[any, string]{}
	_ cbor.Unmarshaler = (*Id[any, string])(nil)
)

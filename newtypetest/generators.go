// Package newtypetest provides rapid generators for the tagged wrapper
// types, for use in property-based tests.
package newtypetest

import (
	"pgregory.net/rapid"

	newtype "github.com/roman-kashitsyn/phantom-newtype"
)

// AmountGen generates Amount values from a representation generator.
func AmountGen[Unit any, Repr newtype.Scalar](reprGen *rapid.Generator[Repr]) *rapid.Generator[newtype.Amount[Unit, Repr]] {
	return rapid.Custom(func(t *rapid.T) newtype.Amount[Unit, Repr] {
		return newtype.AmountOf[Unit](reprGen.Draw(t, "repr"))
	})
}

// IdGen generates Id values from a representation generator.
func IdGen[Entity any, Repr comparable](reprGen *rapid.Generator[Repr]) *rapid.Generator[newtype.Id[Entity, Repr]] {
	return rapid.Custom(func(t *rapid.T) newtype.Id[Entity, Repr] {
		return newtype.IdOf[Entity](reprGen.Draw(t, "repr"))
	})
}

// InstantGen generates Instant values from a representation generator.
func InstantGen[Unit any, Repr newtype.Scalar](reprGen *rapid.Generator[Repr]) *rapid.Generator[newtype.Instant[Unit, Repr]] {
	return rapid.Custom(func(t *rapid.T) newtype.Instant[Unit, Repr] {
		return newtype.InstantOf[Unit](reprGen.Draw(t, "repr"))
	})
}

package newtype_test

import (
	"fmt"

	"github.com/google/uuid"

	newtype "github.com/roman-kashitsyn/phantom-newtype"
)

// Marker types used across the test suite. They are never instantiated
// outside of the Displayer implementations.
type (
	Apples  struct{}
	Oranges struct{}
	Meters  struct{}
	Cents   struct{}

	User    struct{}
	Post    struct{}
	Message struct{}

	SecondsFromEpoch struct{}
	Ticks            struct{}
	YearUnit         struct{}
)

type (
	NumApples  = newtype.Amount[Apples, uint64]
	NumOranges = newtype.Amount[Oranges, uint64]
	Distance   = newtype.Amount[Meters, int64]
	Money      = newtype.Amount[Cents, uint64]

	UserId    = newtype.Id[User, uint64]
	PostId    = newtype.Id[Post, uint64]
	MessageId = newtype.Id[Message, uuid.UUID]

	UnixTime = newtype.Instant[SecondsFromEpoch, int64]
	TimeDiff = newtype.Amount[SecondsFromEpoch, int64]
	TickTime = newtype.Instant[Ticks, uint64]
	YearAD   = newtype.Instant[YearUnit, uint64]
)

// DisplayTagged renders money amounts as dollars and cents.
func (Cents) DisplayTagged(m *Money) string {
	return fmt.Sprintf("$%d.%02d", m.Get()/100, m.Get()%100)
}

// DisplayTagged renders message ids as bare hex, without the uuid dashes.
func (Message) DisplayTagged(id *MessageId) string {
	raw := id.Get()
	out := ""
	for _, b := range raw {
		out += fmt.Sprintf("%02x", b)
	}
	return out
}

// DisplayTagged renders years with their era suffix.
func (YearUnit) DisplayTagged(year *YearAD) string {
	return fmt.Sprintf("%d AD", year.Get())
}

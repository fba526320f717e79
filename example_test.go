package newtype_test

import (
	"encoding/json"
	"fmt"

	newtype "github.com/roman-kashitsyn/phantom-newtype"
)

func ExampleAmountOf() {
	type Apples struct{}

	three := newtype.AmountOf[Apples](uint64(3))
	six := three.Add(three)

	fmt.Println(six.Get())
	fmt.Println(six == newtype.AmountOf[Apples](uint64(6)))
	// Output:
	// 6
	// true
}

func ExampleIdOf() {
	type Recipient struct{}
	type Message struct{}

	// RecipientId and MessageId share a representation but never mix:
	// comparing one against the other is a compile error.
	type RecipientId = newtype.Id[Recipient, uint64]
	type MessageId = newtype.Id[Message, uint64]

	var _ RecipientId = newtype.IdOf[Recipient](uint64(15))
	msg := newtype.IdOf[Message](uint64(15))

	fmt.Println(msg == newtype.IdOf[Message](uint64(15)))
	fmt.Println(msg == newtype.IdOf[Message](uint64(16)))
	// Output:
	// true
	// false
}

func ExampleInstantOf() {
	type SecondsFromEpoch struct{}

	epoch := newtype.InstantOf[SecondsFromEpoch](int64(0))
	date := newtype.InstantOf[SecondsFromEpoch](int64(123456789))

	diff := date.Sub(epoch)
	fmt.Println(diff.Get())
	fmt.Println(epoch.Add(diff) == date)
	// Output:
	// 123456789
	// true
}

func ExampleDisplay() {
	money := newtype.AmountOf[Cents](uint64(1005))

	// Cents implements Displayer for Money, so the proxy formats dollars
	// and cents instead of the bare representation.
	fmt.Println(newtype.Display[Cents](&money))
	fmt.Println(money)
	// Output:
	// $10.05
	// 1005
}

func ExampleAmount_MarshalJSON() {
	type Meters struct{}

	distance := newtype.AmountOf[Meters](uint64(149597870700))
	encoded, _ := json.Marshal(distance)

	// The marker never appears in the encoded form.
	fmt.Println(string(encoded))
	// Output:
	// 149597870700
}

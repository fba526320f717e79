package newtype_test

import (
	"testing"
	"unsafe"

	"github.com/google/uuid"

	newtype "github.com/roman-kashitsyn/phantom-newtype"
)

// TestRepresentationTransparency verifies that a wrapper occupies exactly
// the memory of its bare representation: the marker contributes nothing.
func TestRepresentationTransparency(t *testing.T) {
	if got, want := unsafe.Sizeof(NumApples{}), unsafe.Sizeof(uint64(0)); got != want {
		t.Errorf("Amount size %d, want %d", got, want)
	}
	if got, want := unsafe.Sizeof(UnixTime{}), unsafe.Sizeof(int64(0)); got != want {
		t.Errorf("Instant size %d, want %d", got, want)
	}
	if got, want := unsafe.Sizeof(UserId{}), unsafe.Sizeof(uint64(0)); got != want {
		t.Errorf("Id size %d, want %d", got, want)
	}
	if got, want := unsafe.Sizeof(MessageId{}), unsafe.Sizeof(uuid.UUID{}); got != want {
		t.Errorf("uuid Id size %d, want %d", got, want)
	}
	if got, want := unsafe.Sizeof(newtype.Id[User, string]{}), unsafe.Sizeof(""); got != want {
		t.Errorf("string Id size %d, want %d", got, want)
	}
	if got, want := unsafe.Sizeof(newtype.Amount[Meters, float64]{}), unsafe.Sizeof(float64(0)); got != want {
		t.Errorf("float Amount size %d, want %d", got, want)
	}
}

// TestCrossGoroutineSharing checks that wrapper values move between
// goroutines like their representations do. The marker is never
// instantiated, so it places no constraint of its own.
func TestCrossGoroutineSharing(t *testing.T) {
	admin := newtype.IdOf[User](uint64(42))

	out := make(chan UserId, 1)
	go func() {
		out <- admin
	}()

	if got := <-out; got != admin {
		t.Errorf("expected %v from goroutine, got %v", admin, got)
	}
}

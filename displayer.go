package newtype

// Displayer is the capability a marker type implements to take over
// formatting of the wrappers tagged with it. T is the wrapper type being
// displayed, e.g. Amount[Cents, uint64].
//
// This is the one place where a marker carries runtime-observable behavior;
// everywhere else it exists purely as a type argument.
type Displayer[T any] interface {
	DisplayTagged(value *T) string
}

// DisplayProxy is a transient, non-owning view over a wrapper value that
// formats via the marker's Displayer implementation instead of the
// representation's default formatting. It holds only the borrowed pointer
// and must not outlive it.
type DisplayProxy[D Displayer[T], T any] struct {
	value *T
}

// Display wraps a wrapper value in a DisplayProxy for the marker D.
// The marker is passed explicitly; the wrapper type is inferred:
//
//	money := newtype.AmountOf[Cents](uint64(1005))
//	fmt.Println(newtype.Display[Cents](&money)) // formats via Cents
func Display[D Displayer[T], T any](value *T) DisplayProxy[D, T] {
	return DisplayProxy[D, T]{value: value}
}

// String formats the borrowed value via the marker. Markers are zero-size
// structs, so instantiating one here costs nothing.
func (p DisplayProxy[D, T]) String() string {
	var displayer D
	return displayer.DisplayTagged(p.value)
}

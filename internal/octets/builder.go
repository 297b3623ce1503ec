package octets

import (
	"encoding/binary"
	"math"
)

// Builder is an append-only byte target which can be rolled back to any
// earlier length.
type Builder interface {
	// AppendSlice appends b. Either all of b is appended or nothing is.
	AppendSlice(b []byte) error

	// Truncate shrinks the builder to n bytes. It never grows it.
	Truncate(n int)

	Len() int

	// Bytes returns the used bytes. The slice may be written to, it is
	// valid until the next append.
	Bytes() []byte
}

func IsEmpty(b Builder) bool {
	return b.Len() == 0
}

// Sealer is a Builder which can be turned into its finished form F.
// A sealed builder must not be used again.
type Sealer[F any] interface {
	Builder
	Seal() F
}

// Reopener is a finished value which can be turned back into a Builder.
type Reopener[B Builder] interface {
	Reopen() B
}

// New returns an empty builder of type T. If T has a Grow(int) method,
// capacity is passed to it.
func New[T any, PT interface {
	*T
	Builder
}](capacity int) PT {
	b := PT(new(T))
	if g, ok := any(b).(interface{ Grow(n int) }); ok && capacity > 0 {
		g.Grow(capacity)
	}
	return b
}

// AppendAll runs fn on b. If fn fails, b is truncated back to the length
// it had before and the error is returned.
func AppendAll(b Builder, fn func(b Builder) error) error {
	pos := b.Len()
	if err := fn(b); err != nil {
		b.Truncate(pos)
		return err
	}
	return nil
}

var lenPlaceholder [2]byte

// LenPrefixed writes a 16 bit big-endian length followed by whatever fn
// writes. The length excludes the two length bytes. If fn fails or writes
// more than 65535 bytes, b is rolled back to its length before the call.
func LenPrefixed(b Builder, fn func(b Builder) error) error {
	pos := b.Len()
	if err := b.AppendSlice(lenPlaceholder[:]); err != nil {
		return err
	}
	if err := fn(b); err != nil {
		b.Truncate(pos)
		return err
	}
	l := b.Len() - pos - 2
	if l > math.MaxUint16 {
		b.Truncate(pos)
		return ErrShortBuf
	}
	binary.BigEndian.PutUint16(b.Bytes()[pos:pos+2], uint16(l))
	return nil
}

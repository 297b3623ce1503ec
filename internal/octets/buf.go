package octets

import "slices"

// Buf is a growable heap builder. The zero value is an empty Buf.
type Buf struct {
	b []byte
}

var _ Sealer[Octets] = (*Buf)(nil)

func NewBuf(capacity int) *Buf {
	return &Buf{b: make([]byte, 0, capacity)}
}

// AppendSlice never fails.
func (b *Buf) AppendSlice(p []byte) error {
	b.b = append(b.b, p...)
	return nil
}

func (b *Buf) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n < len(b.b) {
		b.b = b.b[:n]
	}
}

func (b *Buf) Len() int {
	return len(b.b)
}

func (b *Buf) Bytes() []byte {
	return b.b
}

func (b *Buf) Grow(n int) {
	b.b = slices.Grow(b.b, n)
}

// Reset empties b and keeps its memory.
func (b *Buf) Reset() {
	b.b = b.b[:0]
}

// Seal hands the bytes over to an Octets without copying. b is empty
// afterwards.
func (b *Buf) Seal() Octets {
	o := Octets(b.b)
	b.b = nil
	return o
}

// Octets is finished, immutable bytes.
type Octets []byte

var _ Source[Octets] = Octets(nil)

func (o Octets) Bytes() []byte {
	return o
}

func (o Octets) Len() int {
	return len(o)
}

// Range is zero-copy. The result cannot be appended to in a way that
// reaches back into o.
func (o Octets) Range(start, end int) Octets {
	return o[start:end:end]
}

// Reopen returns a new Buf holding a copy of o.
func (o Octets) Reopen() *Buf {
	return &Buf{b: slices.Clone([]byte(o))}
}

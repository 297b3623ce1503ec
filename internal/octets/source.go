package octets

// Source is a read-only byte view which can be cut into independent
// sub-ranges. Whether a range copies is up to the implementation.
// Indices out of range panic like a slice expression.
type Source[S any] interface {
	Bytes() []byte
	Range(start, end int) S
}

func RangeFrom[S Source[S]](s S, start int) S {
	return s.Range(start, len(s.Bytes()))
}

func RangeTo[S Source[S]](s S, end int) S {
	return s.Range(0, end)
}

func RangeAll[S Source[S]](s S) S {
	return s.Range(0, len(s.Bytes()))
}

// Slice is a borrowed view. Ranges are zero-copy and alias the memory of
// whoever lent it.
type Slice []byte

var _ Source[Slice] = Slice(nil)

func (s Slice) Bytes() []byte {
	return s
}

func (s Slice) Range(start, end int) Slice {
	return s[start:end:end]
}

// Truncate shortens the view. The underlying memory is untouched.
func (s *Slice) Truncate(n int) {
	if n >= 0 && n < len(*s) {
		*s = (*s)[:n]
	}
}

// Reopen copies s into a new Buf.
func (s Slice) Reopen() *Buf {
	return Octets(s).Reopen()
}

package dname

// MaxLen is the longest wire name, root label included.
const MaxLen = 255

// Builder assembles a name label by label on the stack.
type Builder struct {
	buf [MaxLen]byte
	l   int
}

func (b *Builder) AppendLabel(s []byte) error {
	l := len(s)
	if l == 0 {
		return errZeroSegLen
	}
	if l > 63 {
		return errSegTooLong
	}
	labelEnd := b.l + 1 + l
	if labelEnd > MaxLen-1 { // keep room for the root label
		return errNameTooLong
	}
	b.buf[b.l] = byte(l)
	copy(b.buf[b.l+1:], s)
	b.l = labelEnd
	return nil
}

func (b *Builder) Reset() {
	b.l = 0
}

// Len returns the wire length the name would have.
func (b *Builder) Len() int {
	return b.l + 1
}

// Name returns a copy of the built name with its root label.
func (b *Builder) Name() Name {
	n := make(Name, b.l+1)
	copy(n, b.buf[:b.l])
	return n
}

// FromLabels builds a name from its labels, root excluded.
func FromLabels(labels ...[]byte) (Name, error) {
	var b Builder
	for _, l := range labels {
		if err := b.AppendLabel(l); err != nil {
			return nil, err
		}
	}
	return b.Name(), nil
}

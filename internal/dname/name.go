// Package dname holds domain names in uncompressed wire form.
package dname

import (
	"cmp"
	"iter"

	"github.com/IrineSistiana/dnscodec/internal/octets"
)

// Name is a domain name in uncompressed wire form, root label included.
// A valid Name is 1~255 bytes. The stored case is kept as is.
type Name []byte

var (
	_ octets.Name     = Name(nil)
	_ octets.Composer = Name(nil)
)

// Root returns the root name.
func Root() Name {
	return Name{0}
}

// FromWire validates an uncompressed wire name and returns a copy of it.
func FromWire(b []byte) (Name, error) {
	if err := validate(b); err != nil {
		return nil, err
	}
	return Name(append([]byte(nil), b...)), nil
}

func validate(b []byte) error {
	s := NewScanner(b)
	for s.Scan() {
	}
	return s.Err()
}

func (n Name) Len() int {
	return len(n)
}

func (n Name) IsRoot() bool {
	return len(n) == 1
}

// LabelCount returns the number of labels, root excluded.
func (n Name) LabelCount() int {
	c := 0
	for off := 0; off < len(n) && n[off] != 0; off += 1 + int(n[off]) {
		c++
	}
	return c
}

func (n Name) FlatSlice() ([]byte, bool) {
	return n, true
}

// Labels yields each label with its length octet. The last one is the
// root label.
func (n Name) Labels() iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		off := 0
		for off < len(n) {
			end := off + 1 + int(n[off])
			if end > len(n) {
				return
			}
			if !yield(n[off:end]) || end-off == 1 {
				return
			}
			off = end
		}
	}
}

// Compose writes n, compressed if b is a compressor.
func (n Name) Compose(b octets.Builder) error {
	return octets.AppendCompressedName(b, n)
}

// ComposeCanonical writes n uncompressed and in lowercase.
func (n Name) ComposeCanonical(b octets.Builder) error {
	pos := b.Len()
	if err := b.AppendSlice(n); err != nil {
		return err
	}
	// Length octets are at most 63 and never change.
	asciiToLower(b.Bytes()[pos:])
	return nil
}

// Equal reports whether n and o are the same name, ignoring ASCII case.
func (n Name) Equal(o Name) bool {
	if len(n) != len(o) {
		return false
	}
	for i := range n {
		if toLower(n[i]) != toLower(o[i]) {
			return false
		}
	}
	return true
}

// Compare orders names as RFC 4034 section 6.1 does: label by label from
// the right, each label compared ignoring ASCII case.
func (n Name) Compare(o Name) int {
	var ab, bb [128]uint8
	a := n.labelOffsets(ab[:0])
	b := o.labelOffsets(bb[:0])
	for i, j := len(a)-1, len(b)-1; i >= 0 && j >= 0; i, j = i-1, j-1 {
		if c := compareFold(n.label(a[i]), o.label(b[j])); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

// CanonicalCompare compares the lowercase wire forms byte by byte.
func (n Name) CanonicalCompare(o Name) int {
	return compareFold(n, o)
}

func (n Name) labelOffsets(dst []uint8) []uint8 {
	for off := 0; off < len(n) && n[off] != 0; off += 1 + int(n[off]) {
		dst = append(dst, uint8(off))
	}
	return dst
}

func (n Name) label(off uint8) []byte {
	l := int(n[off])
	return n[int(off)+1 : int(off)+1+l]
}

func (n Name) String() string {
	if len(n) <= 1 {
		return "."
	}
	b := make([]byte, 0, len(n)+8)
	s := NewScanner(n)
	for s.Scan() {
		b = appendEscapedLabel(b, s.Label())
		b = append(b, '.')
	}
	if s.Err() != nil {
		return "<invalid name>"
	}
	return string(b)
}

func toLower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 0x20
	}
	return c
}

func asciiToLower(b []byte) {
	for i, c := range b {
		b[i] = toLower(c)
	}
}

func compareFold(a, b []byte) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := cmp.Compare(toLower(a[i]), toLower(b[i])); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

package rdata

import (
	"bytes"
	"fmt"
	"iter"
	"math"

	"github.com/IrineSistiana/dnscodec/internal/octets"
	"github.com/IrineSistiana/dnscodec/internal/parse"
	"github.com/cespare/xxhash/v2"
)

// Txt is the data of a TXT record, RFC 1035 section 3.3.14. It keeps
// the wire form, one or more character-strings. The zero value is a
// single empty character-string.
// Equality, the orders and the hash only look at the concatenated
// payloads, so the split into character-strings does not matter.
type Txt struct {
	raw []byte
}

var _ Record[Txt] = Txt{}

// NewTxt checks raw is a valid wire form and copies it.
func NewTxt(raw []byte) (Txt, error) {
	if err := checkTxt(raw); err != nil {
		return Txt{}, err
	}
	return Txt{raw: bytes.Clone(raw)}, nil
}

// TxtFromSlice splits text into character-strings.
func TxtFromSlice(text []byte) (Txt, error) {
	b := octets.NewBuf(len(text) + len(text)/255 + 1)
	tb := NewTxtBuilder(b)
	if err := tb.AppendSlice(text); err != nil {
		return Txt{}, err
	}
	return tb.Finish()
}

func checkTxt(raw []byte) error {
	if len(raw) == 0 {
		return parse.ErrShortField
	}
	if len(raw) > math.MaxUint16 {
		return ErrPush
	}
	for off := 0; off < len(raw); {
		off += 1 + int(raw[off])
		if off > len(raw) {
			return parse.ErrShortField
		}
	}
	return nil
}

// Raw returns the wire form. The zero Txt gives one empty
// character-string.
func (t Txt) Raw() []byte {
	if len(t.raw) == 0 {
		return []byte{0}
	}
	return t.raw
}

// Len returns the length of the wire form.
func (t Txt) Len() int {
	return len(t.Raw())
}

// IsEmpty always reports false. A Txt holds at least one
// character-string, even if that one is empty.
func (t Txt) IsEmpty() bool {
	return false
}

// Iter yields the payload of each character-string. It can be ranged
// over any number of times.
func (t Txt) Iter() iter.Seq[[]byte] {
	raw := t.Raw()
	return func(yield func([]byte) bool) {
		for off := 0; off < len(raw); {
			end := off + 1 + int(raw[off])
			if !yield(raw[off+1 : end : end]) {
				return
			}
			off = end
		}
	}
}

// FlatSlice returns the payload without copying if there is only one
// character-string.
func (t Txt) FlatSlice() ([]byte, bool) {
	raw := t.Raw()
	if 1+int(raw[0]) != len(raw) {
		return nil, false
	}
	return raw[1:], true
}

// Text returns the concatenated payloads. With one character-string it
// is the stored payload itself, otherwise a new slice.
func (t Txt) Text() []byte {
	if s, ok := t.FlatSlice(); ok {
		return s
	}
	b := make([]byte, 0, len(t.raw))
	for s := range t.Iter() {
		b = append(b, s...)
	}
	return b
}

func (t Txt) Rtype() Rtype {
	return TypeTXT
}

func (t Txt) Compose(b octets.Builder) error {
	return b.AppendSlice(t.Raw())
}

func (t Txt) ComposeCanonical(b octets.Builder) error {
	return t.Compose(b)
}

func (t Txt) Equal(o Txt) bool {
	return compareFlat(t.raw, o.raw) == 0
}

func (t Txt) Compare(o Txt) int {
	return compareFlat(t.raw, o.raw)
}

func (t Txt) CanonicalCompare(o Txt) int {
	return t.Compare(o)
}

func (t Txt) Hash() uint64 {
	d := xxhash.New()
	for s := range t.Iter() {
		_, _ = d.Write(s)
	}
	return d.Sum64()
}

// String quotes each character-string.
func (t Txt) String() string {
	b := make([]byte, 0, len(t.raw)+8)
	for s := range t.Iter() {
		if len(b) > 0 {
			b = append(b, ' ')
		}
		b = appendQuoted(b, s)
	}
	return string(b)
}

// flatCursor walks the concatenated payloads of a wire form.
type flatCursor struct {
	raw []byte
	seg []byte
}

// chunk returns the unread part of the current segment, or nil at the
// end.
func (c *flatCursor) chunk() []byte {
	for len(c.seg) == 0 {
		if len(c.raw) == 0 {
			return nil
		}
		end := 1 + int(c.raw[0])
		c.seg, c.raw = c.raw[1:end], c.raw[end:]
	}
	return c.seg
}

func (c *flatCursor) advance(n int) {
	c.seg = c.seg[n:]
}

func compareFlat(a, b []byte) int {
	ca, cb := flatCursor{raw: a}, flatCursor{raw: b}
	for {
		x, y := ca.chunk(), cb.chunk()
		switch {
		case x == nil && y == nil:
			return 0
		case x == nil:
			return -1
		case y == nil:
			return 1
		}
		n := min(len(x), len(y))
		if c := bytes.Compare(x[:n], y[:n]); c != 0 {
			return c
		}
		ca.advance(n)
		cb.advance(n)
	}
}

// ParseTxt copies l bytes that must be a non-empty run of
// character-strings.
func ParseTxt(p *parse.Parser, l int) (Txt, error) {
	if l < 1 {
		return Txt{}, parse.ErrShortField
	}
	b, err := p.ParseBytes(l)
	if err != nil {
		return Txt{}, err
	}
	if err := checkTxt(b); err != nil {
		return Txt{}, err
	}
	return Txt{raw: bytes.Clone(b)}, nil
}

// TxtBuilder writes text into a Builder as a run of character-strings
// of up to 255 bytes. The length octet of the open character-string is
// kept up to date after every append.
type TxtBuilder struct {
	b     octets.Builder
	start int
	seg   int // offset of the open character-string, -1 if none
}

// NewTxtBuilder starts a TXT at the current end of b.
func NewTxtBuilder(b octets.Builder) *TxtBuilder {
	return &TxtBuilder{b: b, start: b.Len(), seg: -1}
}

// Len returns the wire length written so far.
func (t *TxtBuilder) Len() int {
	return t.b.Len() - t.start
}

// AppendSlice appends text. Nothing is appended on error. The error is
// ErrPush if the TXT would exceed 65535 bytes. Errors of the underlying
// Builder are wrapped with ErrPush.
func (t *TxtBuilder) AppendSlice(p []byte) error {
	pos, seg := t.b.Len(), t.seg
	if err := t.appendSlice(p); err != nil {
		t.b.Truncate(pos)
		t.seg = seg
		if seg >= 0 {
			t.b.Bytes()[seg] = byte(pos - seg - 1)
		}
		return err
	}
	return nil
}

func (t *TxtBuilder) appendSlice(p []byte) error {
	for len(p) > 0 {
		if t.seg < 0 || t.b.Len()-t.seg-1 == 255 {
			if t.Len()+1 > math.MaxUint16 {
				return ErrPush
			}
			t.seg = t.b.Len()
			if err := t.b.AppendSlice([]byte{0}); err != nil {
				return fmt.Errorf("%w: %w", ErrPush, err)
			}
		}
		n := min(len(p), 255-(t.b.Len()-t.seg-1))
		if t.Len()+n > math.MaxUint16 {
			return ErrPush
		}
		if err := t.b.AppendSlice(p[:n]); err != nil {
			return fmt.Errorf("%w: %w", ErrPush, err)
		}
		t.b.Bytes()[t.seg] = byte(t.b.Len() - t.seg - 1)
		p = p[n:]
	}
	return nil
}

// Finish returns a copy of the built TXT. A builder nothing was
// appended to gives a single empty character-string.
func (t *TxtBuilder) Finish() (Txt, error) {
	if t.seg < 0 {
		if err := t.b.AppendSlice([]byte{0}); err != nil {
			return Txt{}, fmt.Errorf("%w: %w", ErrPush, err)
		}
		t.seg = t.start
	}
	return Txt{raw: bytes.Clone(t.b.Bytes()[t.start:])}, nil
}

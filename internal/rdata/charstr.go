package rdata

import (
	"bytes"
	"cmp"

	"github.com/IrineSistiana/dnscodec/internal/octets"
	"github.com/IrineSistiana/dnscodec/internal/parse"
	"github.com/cespare/xxhash/v2"
)

// CharStr is the payload of a character-string, at most 255 bytes.
// Equality and the natural order ignore ASCII case, the canonical order
// compares the wire form.
type CharStr []byte

// NewCharStr copies b.
func NewCharStr(b []byte) (CharStr, error) {
	if len(b) > 255 {
		return nil, ErrCharStrTooLong
	}
	return CharStr(bytes.Clone(b)), nil
}

// WireLen is the encoded length, length octet included.
func (c CharStr) WireLen() int {
	return 1 + len(c)
}

func (c CharStr) Compose(b octets.Builder) error {
	if len(c) > 255 {
		return ErrCharStrTooLong
	}
	return octets.AppendAll(b, func(b octets.Builder) error {
		if err := octets.AppendUint8(b, uint8(len(c))); err != nil {
			return err
		}
		return b.AppendSlice(c)
	})
}

func (c CharStr) ComposeCanonical(b octets.Builder) error {
	return c.Compose(b)
}

func (c CharStr) Equal(o CharStr) bool {
	if len(c) != len(o) {
		return false
	}
	for i := range c {
		if toLower(c[i]) != toLower(o[i]) {
			return false
		}
	}
	return true
}

func (c CharStr) Compare(o CharStr) int {
	for i := 0; i < len(c) && i < len(o); i++ {
		if r := cmp.Compare(toLower(c[i]), toLower(o[i])); r != 0 {
			return r
		}
	}
	return cmp.Compare(len(c), len(o))
}

// CanonicalCompare compares the wire forms, so shorter strings sort
// first.
func (c CharStr) CanonicalCompare(o CharStr) int {
	if r := cmp.Compare(len(c), len(o)); r != 0 {
		return r
	}
	return bytes.Compare(c, o)
}

func (c CharStr) hash(d *xxhash.Digest) {
	var buf [64]byte
	hashUint8(d, uint8(len(c)))
	for s := []byte(c); len(s) > 0; {
		n := copy(buf[:], s)
		lowerASCII(buf[:n])
		_, _ = d.Write(buf[:n])
		s = s[n:]
	}
}

func (c CharStr) String() string {
	return string(appendQuoted(nil, c))
}

// ParseCharStr reads one character-string and copies its payload.
func ParseCharStr(p *parse.Parser) (CharStr, error) {
	l, err := p.ParseUint8()
	if err != nil {
		return nil, err
	}
	b, err := p.ParseBytes(int(l))
	if err != nil {
		return nil, err
	}
	return CharStr(bytes.Clone(b)), nil
}

// ParseCharStrAll reads a character-string that must fill exactly l bytes.
func ParseCharStrAll(p *parse.Parser, l int) (CharStr, error) {
	if l < 1 {
		return nil, parse.ErrShortField
	}
	q := *p
	n, err := q.ParseUint8()
	if err != nil {
		return nil, err
	}
	switch {
	case 1+int(n) > l:
		return nil, parse.ErrShortField
	case 1+int(n) < l:
		return nil, parse.ErrTrailingData
	}
	return ParseCharStr(p)
}

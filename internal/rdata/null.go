package rdata

import (
	"bytes"
	"encoding/hex"
	"strconv"

	"github.com/IrineSistiana/dnscodec/internal/octets"
	"github.com/IrineSistiana/dnscodec/internal/parse"
	"github.com/cespare/xxhash/v2"
)

// Null is the data of a NULL record, RFC 1035 section 3.3.10. The
// payload is opaque.
type Null struct {
	Data []byte
}

var _ Record[Null] = Null{}

func (n Null) Rtype() Rtype {
	return TypeNULL
}

func (n Null) Compose(b octets.Builder) error {
	return b.AppendSlice(n.Data)
}

func (n Null) ComposeCanonical(b octets.Builder) error {
	return n.Compose(b)
}

func (n Null) Equal(o Null) bool {
	return bytes.Equal(n.Data, o.Data)
}

func (n Null) Compare(o Null) int {
	return bytes.Compare(n.Data, o.Data)
}

func (n Null) CanonicalCompare(o Null) int {
	return n.Compare(o)
}

func (n Null) Hash() uint64 {
	return xxhash.Sum64(n.Data)
}

// String uses the RFC 3597 generic form, `\# <len> <hex bytes...>`.
func (n Null) String() string {
	b := make([]byte, 0, 8+len(n.Data)*3)
	b = append(b, `\# `...)
	b = strconv.AppendInt(b, int64(len(n.Data)), 10)
	for _, c := range n.Data {
		b = append(b, ' ')
		b = hex.AppendEncode(b, []byte{c})
	}
	return string(b)
}

// ParseNull copies the next l bytes.
func ParseNull(p *parse.Parser, l int) (Null, error) {
	b, err := p.ParseBytes(l)
	if err != nil {
		return Null{}, err
	}
	return Null{Data: bytes.Clone(b)}, nil
}

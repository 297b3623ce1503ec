package rdata

import (
	"github.com/IrineSistiana/dnscodec/internal/octets"
	"github.com/IrineSistiana/dnscodec/internal/parse"
	"github.com/cespare/xxhash/v2"
)

// Hinfo is the data of an HINFO record, RFC 1035 section 3.3.2.
type Hinfo struct {
	Cpu CharStr
	Os  CharStr
}

var _ Record[Hinfo] = Hinfo{}

func (h Hinfo) Rtype() Rtype {
	return TypeHINFO
}

func (h Hinfo) Compose(b octets.Builder) error {
	return octets.ComposeAll(b, h.Cpu, h.Os)
}

func (h Hinfo) ComposeCanonical(b octets.Builder) error {
	return h.Compose(b)
}

func (h Hinfo) Equal(o Hinfo) bool {
	return h.Cpu.Equal(o.Cpu) && h.Os.Equal(o.Os)
}

func (h Hinfo) Compare(o Hinfo) int {
	if c := h.Cpu.Compare(o.Cpu); c != 0 {
		return c
	}
	return h.Os.Compare(o.Os)
}

func (h Hinfo) CanonicalCompare(o Hinfo) int {
	if c := h.Cpu.CanonicalCompare(o.Cpu); c != 0 {
		return c
	}
	return h.Os.CanonicalCompare(o.Os)
}

func (h Hinfo) Hash() uint64 {
	d := xxhash.New()
	h.Cpu.hash(d)
	h.Os.hash(d)
	return d.Sum64()
}

func (h Hinfo) String() string {
	return h.Cpu.String() + " " + h.Os.String()
}

// ParseHinfo needs l to be larger than the cpu field, the os field
// takes the rest.
func ParseHinfo(p *parse.Parser, l int) (Hinfo, error) {
	cpu, err := ParseCharStr(p)
	if err != nil {
		return Hinfo{}, err
	}
	if l < cpu.WireLen() {
		return Hinfo{}, parse.ErrShortField
	}
	os, err := ParseCharStrAll(p, l-cpu.WireLen())
	if err != nil {
		return Hinfo{}, err
	}
	return Hinfo{Cpu: cpu, Os: os}, nil
}

package rdata

import (
	"bytes"
	"errors"
	"net/netip"

	"github.com/IrineSistiana/dnscodec/internal/octets"
	"github.com/IrineSistiana/dnscodec/internal/parse"
	"github.com/cespare/xxhash/v2"
)

var errNotIPv4 = errors.New("not an IPv4 address")

// A is the data of an A record, RFC 1035 section 3.4.1.
type A struct {
	Addr [4]byte
}

var _ Record[A] = A{}

// AFrom accepts IPv4 and IPv4-mapped IPv6 addresses.
func AFrom(addr netip.Addr) (A, error) {
	addr = addr.Unmap()
	if !addr.Is4() {
		return A{}, errNotIPv4
	}
	return A{Addr: addr.As4()}, nil
}

func (a A) Netip() netip.Addr {
	return netip.AddrFrom4(a.Addr)
}

func (a A) Rtype() Rtype {
	return TypeA
}

func (a A) Compose(b octets.Builder) error {
	return octets.IPv4(a.Addr).Compose(b)
}

func (a A) ComposeCanonical(b octets.Builder) error {
	return a.Compose(b)
}

func (a A) Equal(o A) bool {
	return a.Addr == o.Addr
}

func (a A) Compare(o A) int {
	return bytes.Compare(a.Addr[:], o.Addr[:])
}

func (a A) CanonicalCompare(o A) int {
	return a.Compare(o)
}

func (a A) Hash() uint64 {
	return xxhash.Sum64(a.Addr[:])
}

func (a A) String() string {
	return a.Netip().String()
}

func ParseA(p *parse.Parser, l int) (A, error) {
	switch {
	case l < 4:
		return A{}, parse.ErrShortField
	case l > 4:
		return A{}, parse.ErrTrailingData
	}
	ip, err := p.ParseIPv4()
	if err != nil {
		return A{}, err
	}
	return A{Addr: ip}, nil
}

package rdata

import (
	"bytes"
	"cmp"
	"fmt"
	"iter"
	"net/netip"
	"strconv"

	"github.com/IrineSistiana/dnscodec/internal/octets"
	"github.com/IrineSistiana/dnscodec/internal/parse"
	"github.com/cespare/xxhash/v2"
)

// Wks is the data of a WKS record, RFC 1035 section 3.4.2.
// Port o*8+b is served if bit b (least significant first) of
// Bitmap[o] is set.
type Wks struct {
	Addr     [4]byte
	Protocol uint8
	Bitmap   []byte
}

var _ Record[Wks] = Wks{}

// maxWksBitmap is the bitmap length that covers port 65535. Bytes
// beyond it are kept on the wire but name no port.
const maxWksBitmap = 1 << 16 / 8

// Serves reports whether port is in the bitmap. Ports beyond the
// bitmap are not served.
func (w Wks) Serves(port uint16) bool {
	o, b := int(port/8), port%8
	if o >= len(w.Bitmap) {
		return false
	}
	return w.Bitmap[o]&(1<<b) != 0
}

// Iter yields the served ports in increasing order. Bitmap bytes past
// port 65535 are ignored.
func (w Wks) Iter() iter.Seq[uint16] {
	return func(yield func(uint16) bool) {
		for o, c := range w.Bitmap {
			if o >= maxWksBitmap {
				return
			}
			if c == 0 {
				continue
			}
			for b := 0; b < 8; b++ {
				if c&(1<<b) != 0 && !yield(uint16(o*8+b)) {
					return
				}
			}
		}
	}
}

func (w Wks) Rtype() Rtype {
	return TypeWKS
}

func (w Wks) Compose(b octets.Builder) error {
	return octets.AppendAll(b, func(b octets.Builder) error {
		if err := octets.ComposeAll(b, octets.IPv4(w.Addr), octets.Uint8(w.Protocol)); err != nil {
			return err
		}
		return b.AppendSlice(w.Bitmap)
	})
}

func (w Wks) ComposeCanonical(b octets.Builder) error {
	return w.Compose(b)
}

func (w Wks) Equal(o Wks) bool {
	return w.Addr == o.Addr && w.Protocol == o.Protocol && bytes.Equal(w.Bitmap, o.Bitmap)
}

func (w Wks) Compare(o Wks) int {
	if c := bytes.Compare(w.Addr[:], o.Addr[:]); c != 0 {
		return c
	}
	if c := cmp.Compare(w.Protocol, o.Protocol); c != 0 {
		return c
	}
	return bytes.Compare(w.Bitmap, o.Bitmap)
}

func (w Wks) CanonicalCompare(o Wks) int {
	return w.Compare(o)
}

func (w Wks) Hash() uint64 {
	d := xxhash.New()
	_, _ = d.Write(w.Addr[:])
	hashUint8(d, w.Protocol)
	_, _ = d.Write(w.Bitmap)
	return d.Sum64()
}

func (w Wks) String() string {
	b := make([]byte, 0, 32)
	b = netip.AddrFrom4(w.Addr).AppendTo(b)
	b = append(b, ' ')
	b = strconv.AppendUint(b, uint64(w.Protocol), 10)
	for port := range w.Iter() {
		b = append(b, ' ')
		b = strconv.AppendUint(b, uint64(port), 10)
	}
	return string(b)
}

func ParseWks(p *parse.Parser, l int) (Wks, error) {
	if l < 5 {
		return Wks{}, parse.ErrShortField
	}
	addr, err := p.ParseIPv4()
	if err != nil {
		return Wks{}, err
	}
	proto, err := p.ParseUint8()
	if err != nil {
		return Wks{}, err
	}
	bitmap, err := p.ParseBytes(l - 5)
	if err != nil {
		return Wks{}, err
	}
	return Wks{Addr: addr, Protocol: proto, Bitmap: bytes.Clone(bitmap)}, nil
}

var zeros [64]byte

// WksBuilder collects served ports into a bitmap held in a Builder.
type WksBuilder struct {
	addr  [4]byte
	proto uint8
	b     octets.Builder
	start int
}

// NewWksBuilder starts a bitmap at the current end of b.
func NewWksBuilder(b octets.Builder, addr [4]byte, protocol uint8) *WksBuilder {
	return &WksBuilder{addr: addr, proto: protocol, b: b, start: b.Len()}
}

func (w *WksBuilder) bitmap() []byte {
	return w.b.Bytes()[w.start:]
}

// AddService marks port as served. The bitmap grows with zero bytes as
// needed. Errors of the underlying Builder are wrapped with ErrPush and
// leave the bitmap as it was.
func (w *WksBuilder) AddService(port uint16) error {
	o := int(port / 8)
	if n := o + 1 - len(w.bitmap()); n > 0 {
		err := octets.AppendAll(w.b, func(b octets.Builder) error {
			for n > 0 {
				c := min(n, len(zeros))
				if err := b.AppendSlice(zeros[:c]); err != nil {
					return err
				}
				n -= c
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("%w: %w", ErrPush, err)
		}
	}
	w.bitmap()[o] |= 1 << (port % 8)
	return nil
}

// Finish returns the record with a copy of the bitmap. The bitmap ends
// at the byte of the highest port added.
func (w *WksBuilder) Finish() Wks {
	return Wks{Addr: w.addr, Protocol: w.proto, Bitmap: bytes.Clone(w.bitmap())}
}

package dname

import (
	"github.com/IrineSistiana/dnscodec/internal/octets"
	"github.com/IrineSistiana/dnscodec/internal/pool"
)

// maxPtr is the largest offset a compression pointer can hold.
const maxPtr = 0x3FFF

var compressionMapPool = pool.NewSyncPool(pool.SyncPoolOpts[map[string]uint16]{
	New: func() *map[string]uint16 {
		m := make(map[string]uint16)
		return &m
	},
	OnRelease: func(m *map[string]uint16) { clear(*m) },
})

// Compressor is a Builder that writes names with compression pointers
// to earlier names it wrote. Only names written through
// AppendCompressedName are remembered.
// Truncating below the offset of a remembered name forgets it, so a
// rolled back write never leaves a pointer to bytes that are gone.
type Compressor struct {
	octets.Builder

	// base is the message offset of the builder's first byte.
	base int
	m    *map[string]uint16
}

var _ octets.NameCompressor = (*Compressor)(nil)

// NewCompressor wraps b. base is the offset b's content starts at in the
// final message, e.g. 12 if b is filled after a message header.
// Call Release when done.
func NewCompressor(b octets.Builder, base int) *Compressor {
	return &Compressor{Builder: b, base: base, m: compressionMapPool.Get()}
}

// Release puts back the compression table. c must not be used
// afterwards, the underlying Builder stays valid.
func (c *Compressor) Release() {
	if c.m != nil {
		compressionMapPool.Release(c.m)
		c.m = nil
	}
}

func (c *Compressor) Truncate(n int) {
	if n < c.Len() {
		for k, off := range *c.m {
			if int(off) >= c.base+n {
				delete(*c.m, k)
			}
		}
	}
	c.Builder.Truncate(n)
}

func (c *Compressor) AppendCompressedName(n octets.Name) error {
	w, ok := n.FlatSlice()
	if !ok {
		var a octets.Octets256
		if err := octets.AppendName(&a, n); err != nil {
			return err
		}
		w = a.Bytes()
	}
	return octets.AppendAll(c, func(octets.Builder) error {
		return c.appendName(w)
	})
}

// copied and modified from dnsmessage.Name.pack.
func (c *Compressor) appendName(n []byte) error {
	s := NewScanner(n)
	for s.Scan() {
		off := s.LabelOff()
		if ptr, ok := (*c.m)[string(n[off:])]; ok {
			// Hit. Emit a pointer instead of the rest of the name.
			return c.AppendSlice([]byte{byte(ptr>>8 | 0xC0), byte(ptr)})
		}

		// Miss. Remember the suffix if its offset fits in 14 bits.
		if pos := c.base + c.Len(); pos <= maxPtr {
			(*c.m)[string(n[off:])] = uint16(pos)
		}
		if err := c.AppendSlice(n[off : off+1+len(s.Label())]); err != nil {
			return err
		}
	}
	if err := s.Err(); err != nil {
		return err
	}
	return c.AppendSlice([]byte{0})
}

package dname

import (
	"testing"

	"github.com/IrineSistiana/dnscodec/internal/octets"
	"github.com/miekg/dns"
	"github.com/stretchr/testify/require"
)

func TestCompressor(t *testing.T) {
	r := require.New(t)

	buf := octets.NewBuf(0)
	c := NewCompressor(buf, 0)
	defer c.Release()

	r.NoError(octets.AppendCompressedName(c, MustFromString("example.com")))
	r.Equal(13, c.Len())
	r.NoError(octets.AppendCompressedName(c, MustFromString("www.example.com")))
	r.Equal([]byte("\x03www\xc0\x00"), buf.Bytes()[13:])
	r.NoError(octets.AppendCompressedName(c, MustFromString("www.example.com")))
	r.Equal([]byte("\xc0\x0d"), buf.Bytes()[19:])
	r.NoError(octets.AppendCompressedName(c, MustFromString("org")))
	r.NoError(octets.AppendCompressedName(c, Root()))

	msg := buf.Bytes()
	off := 0
	for _, want := range []string{"example.com.", "www.example.com.", "www.example.com.", "org.", "."} {
		s, next, err := dns.UnpackDomainName(msg, off)
		r.NoError(err)
		r.Equal(want, s)
		off = next
	}
	r.Equal(len(msg), off)
}

func TestCompressor_base(t *testing.T) {
	r := require.New(t)

	buf := octets.NewBuf(0)
	r.NoError(buf.AppendSlice(make([]byte, 12))) // header
	c := NewCompressor(buf, 0)
	defer c.Release()
	r.NoError(octets.AppendCompressedName(c, MustFromString("example.com")))
	r.NoError(octets.AppendCompressedName(c, MustFromString("a.example.com")))
	r.Equal([]byte("\x01a\xc0\x0c"), buf.Bytes()[25:])

	// A compressor over a fresh builder that is placed after the header.
	rd := octets.NewBuf(0)
	c2 := NewCompressor(rd, 12)
	defer c2.Release()
	r.NoError(octets.AppendCompressedName(c2, MustFromString("example.com")))
	r.NoError(octets.AppendCompressedName(c2, MustFromString("example.com")))
	r.Equal([]byte("\xc0\x0c"), rd.Bytes()[13:])
}

func TestCompressor_rollback(t *testing.T) {
	r := require.New(t)

	var a octets.Octets32
	c := NewCompressor(&a, 0)
	defer c.Release()

	r.NoError(octets.AppendCompressedName(c, MustFromString("com")))
	err := octets.AppendAll(c, func(b octets.Builder) error {
		if err := octets.AppendCompressedName(b, MustFromString("example.org")); err != nil {
			return err
		}
		return b.AppendSlice(make([]byte, 32))
	})
	r.ErrorIs(err, octets.ErrShortBuf)
	r.Equal(5, c.Len())

	// "example.org" was rolled back, it must be written in full again.
	r.NoError(octets.AppendCompressedName(c, MustFromString("example.org")))
	r.Equal([]byte("\x07example\x03org\x00"), a.Bytes()[5:])
	r.NoError(octets.AppendCompressedName(c, MustFromString("a.com")))
	r.Equal([]byte("\x01a\xc0\x00"), a.Bytes()[18:])
}

func TestCompressor_failedName(t *testing.T) {
	r := require.New(t)

	var a octets.Octets32
	r.NoError(a.AppendSlice(make([]byte, 20)))
	c := NewCompressor(&a, 0)
	defer c.Release()

	r.ErrorIs(octets.AppendCompressedName(c, MustFromString("example.com")), octets.ErrShortBuf)
	r.Equal(20, a.Len())
	r.Empty(*c.m)
}

func TestCompressor_ptrLimit(t *testing.T) {
	r := require.New(t)

	buf := octets.NewBuf(0)
	c := NewCompressor(buf, maxPtr+1)
	defer c.Release()
	r.NoError(octets.AppendCompressedName(c, MustFromString("example.com")))
	r.NoError(octets.AppendCompressedName(c, MustFromString("example.com")))
	r.Equal(26, buf.Len())
}

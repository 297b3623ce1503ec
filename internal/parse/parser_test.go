package parse

import (
	"testing"

	"github.com/IrineSistiana/dnscodec/internal/octets"
	"github.com/stretchr/testify/require"
)

func TestParser(t *testing.T) {
	r := require.New(t)

	msg := []byte{1, 0, 2, 0, 0, 0, 3, 192, 0, 2, 1, 'a', 'b'}
	p := New(msg)

	u8, err := p.ParseUint8()
	r.NoError(err)
	r.Equal(uint8(1), u8)

	u16, err := p.ParseUint16()
	r.NoError(err)
	r.Equal(uint16(2), u16)

	u32, err := p.ParseUint32()
	r.NoError(err)
	r.Equal(uint32(3), u32)

	ip, err := p.ParseIPv4()
	r.NoError(err)
	r.Equal([4]byte{192, 0, 2, 1}, ip)

	b, err := p.Peek(2)
	r.NoError(err)
	r.Equal([]byte("ab"), b)
	r.Equal(2, p.Remaining())

	_, err = p.ParseBytes(3)
	r.ErrorIs(err, octets.ErrShortBuf)
	r.Equal(11, p.Pos())

	b, err = p.ParseBytes(2)
	r.NoError(err)
	r.Equal([]byte("ab"), b)
	r.Zero(p.Remaining())

	_, err = p.ParseUint8()
	r.ErrorIs(err, octets.ErrShortBuf)
}

func TestParser_copy(t *testing.T) {
	r := require.New(t)

	p := New([]byte{1, 2, 3, 4})
	r.NoError(p.Advance(1))
	q := p
	r.NoError(q.Advance(2))
	r.Equal(1, p.Pos())
	r.Equal(3, q.Pos())

	r.ErrorIs(p.Seek(5), octets.ErrShortBuf)
	r.ErrorIs(p.Seek(-1), octets.ErrShortBuf)
	r.Equal(1, p.Pos())

	_, err := NewAt([]byte{1}, 2)
	r.ErrorIs(err, octets.ErrShortBuf)
}

func TestParser_CheckLen(t *testing.T) {
	r := require.New(t)

	p := New(make([]byte, 8))
	r.NoError(p.Advance(4))
	r.NoError(p.CheckLen(0, 4))
	r.ErrorIs(p.CheckLen(0, 5), ErrTrailingData)
	r.ErrorIs(p.CheckLen(0, 3), ErrShortField)

	r.NoError(Limit(2, 2))
	r.ErrorIs(Limit(3, 2), ErrShortField)
}

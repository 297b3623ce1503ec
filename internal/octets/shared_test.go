package octets

import (
	"sync"
	"testing"

	"github.com/IrineSistiana/dnscodec/internal/pool"
	"github.com/stretchr/testify/require"
)

func TestShared(t *testing.T) {
	r := require.New(t)

	src := []byte("example.com")
	s := NewShared(src)
	src[0] = 'X'
	r.Equal([]byte("example.com"), s.Bytes())

	sub := s.Range(8, 11)
	r.Equal([]byte("com"), sub.Bytes())
	r.Equal(int32(2), s.buf.refs.Load())

	s.Release()
	r.Equal([]byte("com"), sub.Bytes())
	r.Equal(int32(1), sub.buf.refs.Load())

	b := sub.Reopen()
	r.Equal([]byte("com"), b.Bytes())
	sub.Release()
	r.Nil(sub.buf.p)

	r.Panics(func() { sub.Release() })
}

func TestShared_zero(t *testing.T) {
	r := require.New(t)

	var s Shared
	r.Zero(s.Len())
	r.Zero(s.Range(0, 0).Len())
	s.Release()

	s = NewShared(nil)
	r.Nil(s.buf)
	s.Release()
}

func TestShared_concurrent(t *testing.T) {
	r := require.New(t)

	s := NewShared(make([]byte, 1024))
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		sub := s.Range(i*128, (i+1)*128)
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sub.Release()
			_ = sub.Bytes()[0]
		}()
	}
	wg.Wait()
	r.Equal(int32(1), s.buf.refs.Load())
	s.Release()
}

func TestSharedBuilder(t *testing.T) {
	r := require.New(t)

	var b SharedBuilder
	for i := 0; i < 100; i++ {
		r.NoError(b.AppendSlice([]byte("0123456789")))
	}
	r.Equal(1000, b.Len())

	err := AppendAll(&b, func(b Builder) error {
		if err := b.AppendSlice([]byte("abc")); err != nil {
			return err
		}
		return b.AppendSlice(make([]byte, pool.MaxPooledSize))
	})
	r.ErrorIs(err, ErrShortBuf)
	r.Equal(1000, b.Len())

	s := b.Seal()
	r.Zero(b.Len())
	r.Equal(1000, s.Len())
	r.Equal([]byte("0123456789"), s.Bytes()[990:])
	s.Release()

	var empty SharedBuilder
	r.Zero(empty.Seal().Len())
}

func TestSharedBuilder_max(t *testing.T) {
	r := require.New(t)

	var b SharedBuilder
	defer b.Release()
	r.NoError(b.AppendSlice(make([]byte, pool.MaxPooledSize-1)))
	r.NoError(b.AppendSlice([]byte{1}))
	r.ErrorIs(b.AppendSlice([]byte{1}), ErrShortBuf)
	r.Equal(pool.MaxPooledSize, b.Len())
}

package octets

import (
	"sync/atomic"

	"github.com/IrineSistiana/dnscodec/internal/pool"
)

type sharedBuf struct {
	p    *pool.Buffer
	refs atomic.Int32
}

func (s *sharedBuf) ref() {
	s.refs.Add(1)
}

func (s *sharedBuf) unref() {
	switch n := s.refs.Add(-1); {
	case n == 0:
		pool.ReleaseBuf(s.p)
		s.p = nil
	case n < 0:
		panic("octets: Shared released twice")
	}
}

// Shared is finished bytes in pooled memory with a reference count.
// Ranges share the memory and hold their own reference. Every Shared,
// including every range, must be released exactly once.
// The zero value is an empty Shared that needs no release.
type Shared struct {
	buf *sharedBuf
	b   []byte
}

var (
	_ Source[Shared]  = Shared{}
	_ Reopener[*Buf] = Shared{}
)

// NewShared copies b into pooled memory.
func NewShared(b []byte) Shared {
	if len(b) == 0 {
		return Shared{}
	}
	return newShared(pool.CopyBuf(b), len(b))
}

func newShared(p *pool.Buffer, l int) Shared {
	sb := &sharedBuf{p: p}
	sb.refs.Store(1)
	return Shared{buf: sb, b: p.B()[:l:l]}
}

func (s Shared) Bytes() []byte {
	return s.b
}

func (s Shared) Len() int {
	return len(s.b)
}

// Range is zero-copy. The returned Shared holds a new reference.
func (s Shared) Range(start, end int) Shared {
	b := s.b[start:end:end]
	if s.buf != nil {
		s.buf.ref()
	}
	return Shared{buf: s.buf, b: b}
}

// Reopen copies s into a new Buf. s is still valid and must be released.
func (s Shared) Reopen() *Buf {
	return Octets(s.b).Reopen()
}

// Release drops this reference. The memory goes back to the pool when the
// last reference is released.
func (s Shared) Release() {
	if s.buf != nil {
		s.buf.unref()
	}
}

// SharedBuilder builds in pooled memory. Seal moves the memory into a
// Shared. The zero value is an empty SharedBuilder.
type SharedBuilder struct {
	p *pool.Buffer
	l int
}

var _ Sealer[Shared] = (*SharedBuilder)(nil)

func (b *SharedBuilder) Grow(n int) {
	if b.p.Cap()-b.l >= n {
		return
	}
	nb := pool.GetBuf(b.l + n)
	copy(nb.B(), b.Bytes())
	pool.ReleaseBuf(b.p)
	b.p = nb
}

// AppendSlice fails with ErrShortBuf beyond pool.MaxPooledSize.
func (b *SharedBuilder) AppendSlice(p []byte) error {
	if len(p) > pool.MaxPooledSize-b.l {
		return ErrShortBuf
	}
	if len(p) == 0 {
		return nil
	}
	if b.p.Cap()-b.l < len(p) {
		b.Grow(min(max(len(p), b.l), pool.MaxPooledSize-b.l)) // double
	}
	b.p.ApplySize(b.p.Cap())
	b.l += copy(b.p.B()[b.l:], p)
	return nil
}

func (b *SharedBuilder) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n < b.l {
		b.l = n
	}
}

func (b *SharedBuilder) Len() int {
	return b.l
}

func (b *SharedBuilder) Bytes() []byte {
	if b.p == nil {
		return nil
	}
	return b.p.B()[:b.l]
}

// Seal hands the memory over to a Shared. b is empty afterwards.
func (b *SharedBuilder) Seal() Shared {
	if b.p == nil || b.l == 0 {
		b.Release()
		return Shared{}
	}
	s := newShared(b.p, b.l)
	b.p, b.l = nil, 0
	return s
}

// Release gives back the memory of an unsealed builder.
func (b *SharedBuilder) Release() {
	pool.ReleaseBuf(b.p)
	b.p, b.l = nil, 0
}

package pool

import (
	"fmt"
	"math/bits"
	"sync"
)

// MaxPooledSize is the largest buffer kept in the pool. It covers the
// largest possible RDATA and DNS message.
const MaxPooledSize = 1 << 16

var zeroBuffer = &Buffer{b: make([]byte, 0)}

// Buffer is a byte slice borrowed from the pool.
// A nil Buffer is valid, its Len/Cap are 0 and B returns nil.
type Buffer struct {
	b []byte
}

func (b *Buffer) B() []byte {
	if b == nil {
		return nil
	}
	return b.b
}

func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return len(b.b)
}

func (b *Buffer) Cap() int {
	if b == nil {
		return 0
	}
	return cap(b.b)
}

// ApplySize reslices b to n bytes. n must not exceed Cap.
func (b *Buffer) ApplySize(n int) {
	b.b = b.b[:n]
}

// GetBuf returns a buffer of len size. Sizes above MaxPooledSize are
// allocated with make and not reused.
func GetBuf(size int) *Buffer {
	return globalPool.get(size)
}

// ReleaseBuf puts b back. b must not be used afterwards.
func ReleaseBuf(b *Buffer) {
	globalPool.release(b)
}

// CopyBuf returns a pooled copy of b.
func CopyBuf(b []byte) *Buffer {
	c := GetBuf(len(b))
	copy(c.B(), b)
	return c
}

var globalPool = newPool()

type pool struct {
	sp smallPool
	lp largePool
}

func newPool() *pool {
	p := new(pool)
	p.sp.init()
	p.lp.init()
	return p
}

func (p *pool) get(size int) *Buffer {
	switch {
	case size <= 0:
		return zeroBuffer
	case size <= smallPoolMax:
		return p.sp.get(size)
	case size <= MaxPooledSize:
		return p.lp.get(size)
	default:
		return &Buffer{b: make([]byte, size)}
	}
}

func (p *pool) release(b *Buffer) {
	c := b.Cap()
	switch {
	case c == 0: // nil or zeroBuffer
		return
	case c <= smallPoolMax:
		p.sp.release(b)
	case c <= MaxPooledSize:
		p.lp.release(b)
	}
}

const smallPoolMax = 1 << 8

// Power of two classes, 1~256.
type smallPool struct {
	ps [9]sync.Pool
}

func (p *smallPool) init() {
	for i := range p.ps {
		size := spSize(i)
		p.ps[i].New = func() any { return &Buffer{b: make([]byte, size)} }
	}
}

func spIdx(size int) int {
	return bits.Len(uint(size - 1))
}

func spSize(idx int) int {
	return 1 << idx
}

func (p *smallPool) get(size int) *Buffer {
	b := p.ps[spIdx(size)].Get().(*Buffer)
	b.ApplySize(size)
	return b
}

func (p *smallPool) release(b *Buffer) {
	c := b.Cap()
	i := spIdx(c)
	if c != spSize(i) {
		panic(fmt.Sprintf("pool: released buffer has invalid cap %d for small class %d", c, i))
	}
	p.ps[i].Put(b)
}

// Every power of two range above 256 is split into 4 classes,
// 257~MaxPooledSize.
type largePool struct {
	ps [8][4]sync.Pool
}

func (p *largePool) init() {
	for h := range p.ps {
		for l := range p.ps[h] {
			size := lpSize(h, l)
			p.ps[h][l].New = func() any { return &Buffer{b: make([]byte, size)} }
		}
	}
}

func lpIdx(size int) (h, l int) {
	b := bits.Len(uint(size - 1))
	return b - 9, ((size - 1) >> (b - 3)) & 0b11
}

func lpSize(h, l int) int {
	return 1<<(h+8) + (l+1)<<(h+6)
}

func (p *largePool) get(size int) *Buffer {
	h, l := lpIdx(size)
	b := p.ps[h][l].Get().(*Buffer)
	b.ApplySize(size)
	return b
}

func (p *largePool) release(b *Buffer) {
	c := b.Cap()
	h, l := lpIdx(c)
	if c != lpSize(h, l) {
		panic(fmt.Sprintf("pool: released buffer has invalid cap %d for large class %d.%d", c, h, l))
	}
	p.ps[h][l].Put(b)
}

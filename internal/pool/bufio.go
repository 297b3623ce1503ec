package pool

import (
	"bufio"
	"io"
	"sync"
)

var br4kPool = sync.Pool{New: func() any { return bufio.NewReaderSize(nil, 4096) }}

// NewBR4K returns a pooled 4KiB bufio.Reader reading from r.
func NewBR4K(r io.Reader) *bufio.Reader {
	br := br4kPool.Get().(*bufio.Reader)
	br.Reset(r)
	return br
}

func ReleaseBR4K(br *bufio.Reader) {
	br.Reset(nil)
	br4kPool.Put(br)
}

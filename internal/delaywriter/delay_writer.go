package delaywriter

import (
	"bufio"
	"errors"
	"io"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultDelay   = time.Millisecond * 10
	defaultBufSize = 4096
)

var ErrClosed = errors.New("closed delay writer")

// Writer buffers writes and flushes them after a short delay, so bursts
// of small writes (log lines, printed records) become few syscalls.
// Writes allowed by the optional rate limiter bypass the buffer.
type Writer struct {
	m      sync.Mutex
	w      io.Writer
	bw     *bufio.Writer
	direct *rate.Limiter // nil-able
	delay  time.Duration

	timer    *time.Timer // nil-able, armed while data is buffered
	flushErr error
	closed   bool
}

type Opts struct {
	BufSize int
	Delay   time.Duration

	// Writes are sent directly while they stay within this rate.
	// Zero disables direct writes.
	DirectRate  rate.Limit
	DirectBurst int
}

func New(w io.Writer, opts Opts) *Writer {
	if opts.BufSize <= 0 {
		opts.BufSize = defaultBufSize
	}
	if opts.Delay <= 0 {
		opts.Delay = defaultDelay
	}
	dw := &Writer{
		w:     w,
		bw:    bufio.NewWriterSize(w, opts.BufSize),
		delay: opts.Delay,
	}
	if opts.DirectRate > 0 {
		dw.direct = rate.NewLimiter(opts.DirectRate, opts.DirectBurst)
	}
	return dw
}

func (dw *Writer) Write(b []byte) (int, error) {
	dw.m.Lock()
	defer dw.m.Unlock()

	if dw.closed {
		return 0, ErrClosed
	}
	// Report the error of the latest delayed flush once.
	if err := dw.flushErr; err != nil {
		dw.flushErr = nil
		return 0, err
	}

	if dw.direct != nil && dw.direct.Allow() {
		if err := dw.bw.Flush(); err != nil {
			return 0, err
		}
		return dw.w.Write(b)
	}

	n, err := dw.bw.Write(b)
	if err != nil {
		return n, err
	}
	if dw.bw.Buffered() > 0 && dw.timer == nil {
		dw.timer = time.AfterFunc(dw.delay, dw.delayedFlush)
	}
	return n, nil
}

func (dw *Writer) delayedFlush() {
	dw.m.Lock()
	defer dw.m.Unlock()
	dw.timer = nil
	if dw.closed {
		return
	}
	dw.flushErr = dw.bw.Flush()
}

func (dw *Writer) Flush() error {
	dw.m.Lock()
	defer dw.m.Unlock()

	if dw.closed {
		return ErrClosed
	}
	return dw.bw.Flush()
}

// Sync implements zapcore.WriteSyncer.
func (dw *Writer) Sync() error {
	return dw.Flush()
}

// Close flushes buffered data. It does not close the underlying writer.
func (dw *Writer) Close() error {
	dw.m.Lock()
	defer dw.m.Unlock()

	if dw.closed {
		return ErrClosed
	}
	dw.closed = true
	if dw.timer != nil {
		dw.timer.Stop()
		dw.timer = nil
	}
	return dw.bw.Flush()
}

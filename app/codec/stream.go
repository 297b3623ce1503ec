package codec

import (
	"fmt"
	"io"
	"os"

	"github.com/IrineSistiana/dnscodec/internal/dname"
	"github.com/IrineSistiana/dnscodec/internal/octets"
	"github.com/IrineSistiana/dnscodec/internal/parse"
	"github.com/IrineSistiana/dnscodec/internal/pool"
	"github.com/IrineSistiana/dnscodec/internal/rdata"
	"github.com/klauspost/compress/s2"
)

// A record stream is a sequence of frames:
//
//	TYPE (u16) | RDLENGTH (u16) | RDATA
//
// Compression pointers in RDATA are offsets from the start of the stream.

type encodeOpts struct {
	canonical bool
	compress  bool
}

type encoder struct {
	opts encodeOpts
	m    *metrics // nil-able

	buf *octets.Buf
	b   octets.Builder
	c   *dname.Compressor
}

func newEncoder(opts encodeOpts, m *metrics) *encoder {
	e := &encoder{opts: opts, m: m, buf: octets.NewBuf(512)}
	e.b = e.buf
	if opts.compress {
		e.c = dname.NewCompressor(e.buf, 0)
		e.b = e.c
	}
	return e
}

// Encode appends a frame of rd. It returns the RDATA of that frame,
// valid until the next call.
func (e *encoder) Encode(rd rdata.RecordData) ([]byte, error) {
	start := e.b.Len()
	err := octets.AppendAll(e.b, func(b octets.Builder) error {
		if err := octets.AppendUint16(b, uint16(rd.Rtype())); err != nil {
			return err
		}
		return rdata.ComposeRdata(b, rd, e.opts.canonical)
	})
	if err != nil {
		e.m.observeErr(rd.Rtype())
		return nil, err
	}
	raw := e.b.Bytes()[start+4:]
	e.m.observe(rd.Rtype(), len(raw))
	return raw, nil
}

func (e *encoder) Bytes() []byte {
	return e.b.Bytes()
}

func (e *encoder) Close() {
	if e.c != nil {
		e.c.Release()
		e.c = nil
	}
}

type frame struct {
	off int
	rd  rdata.RecordData
	raw []byte
}

// decodeFrames calls fn for every frame in stream. raw points into stream.
func decodeFrames(stream []byte, fn func(f frame) error) error {
	p := parse.New(stream)
	for p.Remaining() > 0 {
		off := p.Pos()
		t, err := p.ParseUint16()
		if err != nil {
			return fmt.Errorf("frame at %d: %w", off, err)
		}
		rd, err := rdata.ParseRdata(rdata.Rtype(t), &p)
		if err != nil {
			return fmt.Errorf("frame at %d: %w", off, err)
		}
		if err := fn(frame{off: off, rd: rd, raw: stream[off+4 : p.Pos()]}); err != nil {
			return err
		}
	}
	return nil
}

func writeStream(path string, b []byte, compressed bool) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := writeStreamTo(f, b, compressed); err != nil {
		return err
	}
	return f.Close()
}

func writeStreamTo(w io.Writer, b []byte, compressed bool) error {
	if !compressed {
		_, err := w.Write(b)
		return err
	}
	sw := s2.NewWriter(w)
	if _, err := sw.Write(b); err != nil {
		sw.Close()
		return err
	}
	return sw.Close()
}

func readStream(path string, compressed bool) ([]byte, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return readStreamFrom(r, compressed)
}

func readStreamFrom(r io.Reader, compressed bool) ([]byte, error) {
	br := pool.NewBR4K(r)
	defer pool.ReleaseBR4K(br)
	if compressed {
		return io.ReadAll(s2.NewReader(br))
	}
	return io.ReadAll(br)
}

// Package parse is the decode cursor used to read record data out of a
// DNS message.
package parse

import (
	"encoding/binary"
	"errors"

	"github.com/IrineSistiana/dnscodec/internal/octets"
)

var (
	// ErrShortField is returned when a declared length is too small for
	// the fields a record requires.
	ErrShortField = errors.New("declared length too short for field")

	// ErrTrailingData is returned when a record does not consume all of
	// its declared length.
	ErrTrailingData = errors.New("trailing data after record")
)

// Parser reads from a whole message. Names with compression pointers
// need the full message, so a Parser never gets cut down to one record.
// Copying a Parser copies the cursor.
// Reading past the end of the message returns octets.ErrShortBuf.
type Parser struct {
	msg []byte
	pos int
}

func New(msg []byte) Parser {
	return Parser{msg: msg}
}

// NewAt returns a Parser positioned at pos.
func NewAt(msg []byte, pos int) (Parser, error) {
	p := New(msg)
	return p, p.Seek(pos)
}

func (p *Parser) Msg() []byte {
	return p.msg
}

func (p *Parser) Pos() int {
	return p.pos
}

func (p *Parser) Remaining() int {
	return len(p.msg) - p.pos
}

func (p *Parser) Seek(pos int) error {
	if pos < 0 || pos > len(p.msg) {
		return octets.ErrShortBuf
	}
	p.pos = pos
	return nil
}

func (p *Parser) Advance(n int) error {
	return p.Seek(p.pos + n)
}

// ParseBytes returns the next n bytes without copying.
func (p *Parser) ParseBytes(n int) ([]byte, error) {
	if n < 0 || n > p.Remaining() {
		return nil, octets.ErrShortBuf
	}
	b := p.msg[p.pos : p.pos+n : p.pos+n]
	p.pos += n
	return b, nil
}

// Peek returns the next n bytes without moving.
func (p *Parser) Peek(n int) ([]byte, error) {
	q := *p
	return q.ParseBytes(n)
}

func (p *Parser) ParseUint8() (uint8, error) {
	b, err := p.ParseBytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (p *Parser) ParseUint16() (uint16, error) {
	b, err := p.ParseBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (p *Parser) ParseUint32() (uint32, error) {
	b, err := p.ParseBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (p *Parser) ParseIPv4() ([4]byte, error) {
	var a [4]byte
	b, err := p.ParseBytes(4)
	if err != nil {
		return a, err
	}
	copy(a[:], b)
	return a, nil
}

// CheckLen checks whether exactly l bytes have been read since start.
func (p *Parser) CheckLen(start, l int) error {
	switch n := p.pos - start; {
	case n < l:
		return ErrTrailingData
	case n > l:
		return ErrShortField
	}
	return nil
}

// Limit checks that a field of n bytes fits in the l bytes that remain
// of a record. It returns ErrShortField if not.
func Limit(n, l int) error {
	if n > l {
		return ErrShortField
	}
	return nil
}

package dname

import (
	"math"

	"github.com/IrineSistiana/dnscodec/internal/octets"
	"github.com/IrineSistiana/dnscodec/internal/parse"
)

// Parse reads a possibly compressed name at the parser's position.
func Parse(p *parse.Parser) (Name, error) {
	var b Builder
	end, err := b.unpack(p.Msg(), p.Pos(), noLimit)
	if err != nil {
		return nil, err
	}
	if err := p.Seek(end); err != nil {
		return nil, err
	}
	return b.Name(), nil
}

// ParseAll reads a name that must take exactly l bytes of the message.
// Bytes the name needs beyond l give parse.ErrShortField, fewer give
// parse.ErrTrailingData. Data reached through pointers is not counted.
func ParseAll(p *parse.Parser, l int) (Name, error) {
	start := p.Pos()
	var b Builder
	end, err := b.unpack(p.Msg(), start, start+l)
	if err != nil {
		return nil, err
	}
	if err := p.Seek(end); err != nil {
		return nil, err
	}
	if err := p.CheckLen(start, l); err != nil {
		return nil, err
	}
	return b.Name(), nil
}

const noLimit = math.MaxInt

// unpack decodes the name at off into b. Until the first pointer, reads
// must end before limit. It returns the offset after the name.
func (b *Builder) unpack(msg []byte, off, limit int) (int, error) {
	b.Reset()

	// curr is the current working offset.
	curr := off
	// next is where whatever follows the name starts. Pointers lead
	// to data that belongs to other names and doesn't count here.
	next := -1
	// ptr is the number of pointers followed.
	ptr := 0

	for {
		// Running into a declared length is a short field, running
		// into the end of the message is a short buffer.
		bound, boundErr := len(msg), octets.ErrShortBuf
		if ptr == 0 && limit <= bound {
			bound, boundErr = limit, parse.ErrShortField
		}
		if curr+1 > bound {
			return 0, boundErr
		}
		c := int(msg[curr])
		curr++
		switch c & 0xC0 {
		case 0x00:
			if c == 0x00 {
				if ptr == 0 {
					next = curr
				}
				return next, nil
			}
			end := curr + c
			if end > bound {
				return 0, boundErr
			}
			if err := b.AppendLabel(msg[curr:end]); err != nil {
				return 0, err
			}
			curr = end
		case 0xC0:
			if curr+1 > bound {
				return 0, boundErr
			}
			c1 := int(msg[curr])
			curr++
			if ptr == 0 {
				next = curr
			}
			// Don't follow too many pointers, maybe there's a loop.
			if ptr++; ptr > 10 {
				return 0, errTooManyPtr
			}
			curr = (c^0xC0)<<8 | c1
			if curr >= len(msg) {
				return 0, errInvalidPtr
			}
		default:
			// Prefixes 0x80 and 0x40 are reserved.
			return 0, errReserved
		}
	}
}

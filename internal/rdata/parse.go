package rdata

import (
	"errors"
	"fmt"

	"github.com/IrineSistiana/dnscodec/internal/parse"
)

var ErrUnknownRtype = errors.New("unknown record type")

func parseAs[R RecordData](fn func(*parse.Parser, int) (R, error), p *parse.Parser, l int) (RecordData, error) {
	r, err := fn(p, l)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Parse reads the data of a record of type t that takes exactly l bytes.
// Names in it may be compressed against the rest of p's message.
func Parse(t Rtype, p *parse.Parser, l int) (RecordData, error) {
	switch t {
	case TypeA:
		return parseAs(ParseA, p, l)
	case TypeNS:
		return parseAs(ParseNs, p, l)
	case TypeMD:
		return parseAs(ParseMd, p, l)
	case TypeMF:
		return parseAs(ParseMf, p, l)
	case TypeCNAME:
		return parseAs(ParseCname, p, l)
	case TypeSOA:
		return parseAs(ParseSoa, p, l)
	case TypeMB:
		return parseAs(ParseMb, p, l)
	case TypeMG:
		return parseAs(ParseMg, p, l)
	case TypeMR:
		return parseAs(ParseMr, p, l)
	case TypeNULL:
		return parseAs(ParseNull, p, l)
	case TypeWKS:
		return parseAs(ParseWks, p, l)
	case TypePTR:
		return parseAs(ParsePtr, p, l)
	case TypeHINFO:
		return parseAs(ParseHinfo, p, l)
	case TypeMINFO:
		return parseAs(ParseMinfo, p, l)
	case TypeMX:
		return parseAs(ParseMx, p, l)
	case TypeTXT:
		return parseAs(ParseTxt, p, l)
	}
	return nil, fmt.Errorf("%w %s", ErrUnknownRtype, t)
}

// ParseRdata reads RDLENGTH and then the data it covers.
func ParseRdata(t Rtype, p *parse.Parser) (RecordData, error) {
	l, err := p.ParseUint16()
	if err != nil {
		return nil, err
	}
	return Parse(t, p, int(l))
}

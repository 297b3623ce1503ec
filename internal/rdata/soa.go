package rdata

import (
	"cmp"
	"fmt"

	"github.com/IrineSistiana/dnscodec/internal/dname"
	"github.com/IrineSistiana/dnscodec/internal/octets"
	"github.com/IrineSistiana/dnscodec/internal/parse"
	"github.com/cespare/xxhash/v2"
)

// Soa is the data of an SOA record, RFC 1035 section 3.3.13.
type Soa[N Name[N]] struct {
	Mname   N
	Rname   N
	Serial  Serial
	Refresh uint32
	Retry   uint32
	Expire  uint32
	Minimum uint32
}

func (s Soa[N]) Rtype() Rtype {
	return TypeSOA
}

func (s Soa[N]) composeTail(b octets.Builder) error {
	return octets.ComposeAll(b,
		octets.Uint32(s.Serial),
		octets.Uint32(s.Refresh),
		octets.Uint32(s.Retry),
		octets.Uint32(s.Expire),
		octets.Uint32(s.Minimum),
	)
}

func (s Soa[N]) Compose(b octets.Builder) error {
	return octets.AppendAll(b, func(b octets.Builder) error {
		if err := octets.AppendCompressedName(b, s.Mname); err != nil {
			return err
		}
		if err := octets.AppendCompressedName(b, s.Rname); err != nil {
			return err
		}
		return s.composeTail(b)
	})
}

func (s Soa[N]) ComposeCanonical(b octets.Builder) error {
	return octets.AppendAll(b, func(b octets.Builder) error {
		if err := s.Mname.ComposeCanonical(b); err != nil {
			return err
		}
		if err := s.Rname.ComposeCanonical(b); err != nil {
			return err
		}
		return s.composeTail(b)
	})
}

func (s Soa[N]) Equal(o Soa[N]) bool {
	return s.Mname.Equal(o.Mname) && s.Rname.Equal(o.Rname) && s.numbers() == o.numbers()
}

func (s Soa[N]) numbers() [5]uint32 {
	return [5]uint32{uint32(s.Serial), s.Refresh, s.Retry, s.Expire, s.Minimum}
}

func compareNumbers(a, b [5]uint32) int {
	for i := range a {
		if c := cmp.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return 0
}

// Compare compares the serial as a plain number, not in serial number
// order.
func (s Soa[N]) Compare(o Soa[N]) int {
	if c := s.Mname.Compare(o.Mname); c != 0 {
		return c
	}
	if c := s.Rname.Compare(o.Rname); c != 0 {
		return c
	}
	return compareNumbers(s.numbers(), o.numbers())
}

func (s Soa[N]) CanonicalCompare(o Soa[N]) int {
	if c := s.Mname.CanonicalCompare(o.Mname); c != 0 {
		return c
	}
	if c := s.Rname.CanonicalCompare(o.Rname); c != 0 {
		return c
	}
	return compareNumbers(s.numbers(), o.numbers())
}

func (s Soa[N]) Hash() uint64 {
	d := xxhash.New()
	hashName(d, s.Mname)
	hashName(d, s.Rname)
	for _, v := range s.numbers() {
		hashUint32(d, v)
	}
	return d.Sum64()
}

func (s Soa[N]) String() string {
	return fmt.Sprintf("%s %s %d %d %d %d %d",
		s.Mname, s.Rname, s.Serial, s.Refresh, s.Retry, s.Expire, s.Minimum)
}

func parseSoa(p *parse.Parser) (Soa[dname.Name], error) {
	var s Soa[dname.Name]
	var err error
	if s.Mname, err = dname.Parse(p); err != nil {
		return s, err
	}
	if s.Rname, err = dname.Parse(p); err != nil {
		return s, err
	}
	serial, err := p.ParseUint32()
	if err != nil {
		return s, err
	}
	s.Serial = Serial(serial)
	for _, f := range []*uint32{&s.Refresh, &s.Retry, &s.Expire, &s.Minimum} {
		if *f, err = p.ParseUint32(); err != nil {
			return s, err
		}
	}
	return s, nil
}

// ParseSoa reads the whole record on a copy of p. The bytes it took
// must be exactly l.
func ParseSoa(p *parse.Parser, l int) (Soa[dname.Name], error) {
	tmp := *p
	s, err := parseSoa(&tmp)
	if err != nil {
		return Soa[dname.Name]{}, err
	}
	if err := tmp.CheckLen(p.Pos(), l); err != nil {
		return Soa[dname.Name]{}, err
	}
	if err := p.Advance(l); err != nil {
		return Soa[dname.Name]{}, err
	}
	return s, nil
}

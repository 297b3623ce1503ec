package rdata

import (
	"cmp"
	"strconv"

	"github.com/IrineSistiana/dnscodec/internal/dname"
	"github.com/IrineSistiana/dnscodec/internal/octets"
	"github.com/IrineSistiana/dnscodec/internal/parse"
	"github.com/cespare/xxhash/v2"
)

// Mx is the data of an MX record, RFC 1035 section 3.3.9.
type Mx[N Name[N]] struct {
	Preference uint16
	Exchange   N
}

func NewMx[N Name[N]](preference uint16, exchange N) Mx[N] {
	return Mx[N]{Preference: preference, Exchange: exchange}
}

func (m Mx[N]) Rtype() Rtype {
	return TypeMX
}

func (m Mx[N]) Compose(b octets.Builder) error {
	return octets.AppendAll(b, func(b octets.Builder) error {
		if err := octets.AppendUint16(b, m.Preference); err != nil {
			return err
		}
		return octets.AppendCompressedName(b, m.Exchange)
	})
}

func (m Mx[N]) ComposeCanonical(b octets.Builder) error {
	return octets.AppendAll(b, func(b octets.Builder) error {
		if err := octets.AppendUint16(b, m.Preference); err != nil {
			return err
		}
		return m.Exchange.ComposeCanonical(b)
	})
}

func (m Mx[N]) Equal(o Mx[N]) bool {
	return m.Preference == o.Preference && m.Exchange.Equal(o.Exchange)
}

func (m Mx[N]) Compare(o Mx[N]) int {
	if c := cmp.Compare(m.Preference, o.Preference); c != 0 {
		return c
	}
	return m.Exchange.Compare(o.Exchange)
}

func (m Mx[N]) CanonicalCompare(o Mx[N]) int {
	if c := cmp.Compare(m.Preference, o.Preference); c != 0 {
		return c
	}
	return m.Exchange.CanonicalCompare(o.Exchange)
}

func (m Mx[N]) Hash() uint64 {
	d := xxhash.New()
	hashUint16(d, m.Preference)
	hashName(d, m.Exchange)
	return d.Sum64()
}

func (m Mx[N]) String() string {
	return strconv.Itoa(int(m.Preference)) + " " + m.Exchange.String()
}

func ParseMx(p *parse.Parser, l int) (Mx[dname.Name], error) {
	if l < 3 {
		return Mx[dname.Name]{}, parse.ErrShortField
	}
	pref, err := p.ParseUint16()
	if err != nil {
		return Mx[dname.Name]{}, err
	}
	exchange, err := dname.ParseAll(p, l-2)
	if err != nil {
		return Mx[dname.Name]{}, err
	}
	return Mx[dname.Name]{Preference: pref, Exchange: exchange}, nil
}

package rdata

import (
	"github.com/IrineSistiana/dnscodec/internal/dname"
	"github.com/IrineSistiana/dnscodec/internal/octets"
	"github.com/IrineSistiana/dnscodec/internal/parse"
	"github.com/cespare/xxhash/v2"
)

// Minfo is the data of an MINFO record, RFC 1035 section 3.3.7,
// experimental.
type Minfo[N Name[N]] struct {
	Rmailbx N
	Emailbx N
}

func NewMinfo[N Name[N]](rmailbx, emailbx N) Minfo[N] {
	return Minfo[N]{Rmailbx: rmailbx, Emailbx: emailbx}
}

func (m Minfo[N]) Rtype() Rtype {
	return TypeMINFO
}

func (m Minfo[N]) Compose(b octets.Builder) error {
	return octets.AppendAll(b, func(b octets.Builder) error {
		if err := octets.AppendCompressedName(b, m.Rmailbx); err != nil {
			return err
		}
		return octets.AppendCompressedName(b, m.Emailbx)
	})
}

func (m Minfo[N]) ComposeCanonical(b octets.Builder) error {
	return octets.AppendAll(b, func(b octets.Builder) error {
		if err := m.Rmailbx.ComposeCanonical(b); err != nil {
			return err
		}
		return m.Emailbx.ComposeCanonical(b)
	})
}

func (m Minfo[N]) Equal(o Minfo[N]) bool {
	return m.Rmailbx.Equal(o.Rmailbx) && m.Emailbx.Equal(o.Emailbx)
}

func (m Minfo[N]) Compare(o Minfo[N]) int {
	if c := m.Rmailbx.Compare(o.Rmailbx); c != 0 {
		return c
	}
	return m.Emailbx.Compare(o.Emailbx)
}

func (m Minfo[N]) CanonicalCompare(o Minfo[N]) int {
	if c := m.Rmailbx.CanonicalCompare(o.Rmailbx); c != 0 {
		return c
	}
	return m.Emailbx.CanonicalCompare(o.Emailbx)
}

func (m Minfo[N]) Hash() uint64 {
	d := xxhash.New()
	hashName(d, m.Rmailbx)
	hashName(d, m.Emailbx)
	return d.Sum64()
}

func (m Minfo[N]) String() string {
	return m.Rmailbx.String() + " " + m.Emailbx.String()
}

// ParseMinfo reads both names. If the first name already takes all of
// l, the second one is read from the start again against a length of
// zero, which no name can fit.
func ParseMinfo(p *parse.Parser, l int) (Minfo[dname.Name], error) {
	pos := p.Pos()
	rmailbx, err := dname.Parse(p)
	if err != nil {
		return Minfo[dname.Name]{}, err
	}
	rlen := p.Pos() - pos
	if l <= rlen {
		if err := p.Seek(pos); err != nil {
			return Minfo[dname.Name]{}, err
		}
		l = 0
	} else {
		l -= rlen
	}
	emailbx, err := dname.ParseAll(p, l)
	if err != nil {
		return Minfo[dname.Name]{}, err
	}
	return Minfo[dname.Name]{Rmailbx: rmailbx, Emailbx: emailbx}, nil
}

package rdata

import (
	"github.com/IrineSistiana/dnscodec/internal/dname"
	"github.com/IrineSistiana/dnscodec/internal/octets"
	"github.com/IrineSistiana/dnscodec/internal/parse"
	"github.com/cespare/xxhash/v2"
)

// tag gives a Single its record type.
type tag interface {
	rtype() Rtype
}

type (
	cnameTag struct{}
	mbTag    struct{}
	mdTag    struct{}
	mfTag    struct{}
	mgTag    struct{}
	mrTag    struct{}
	nsTag    struct{}
	ptrTag   struct{}
)

func (cnameTag) rtype() Rtype { return TypeCNAME }
func (mbTag) rtype() Rtype    { return TypeMB }
func (mdTag) rtype() Rtype    { return TypeMD }
func (mfTag) rtype() Rtype    { return TypeMF }
func (mgTag) rtype() Rtype    { return TypeMG }
func (mrTag) rtype() Rtype    { return TypeMR }
func (nsTag) rtype() Rtype    { return TypeNS }
func (ptrTag) rtype() Rtype   { return TypePTR }

// Single is the data of the record types that hold exactly one
// compressible name.
type Single[N Name[N], T tag] struct {
	Name N
}

type (
	// Cname is RFC 1035 section 3.3.1.
	Cname[N Name[N]] = Single[N, cnameTag]
	// Mb is RFC 1035 section 3.3.3, experimental.
	Mb[N Name[N]] = Single[N, mbTag]
	// Md is RFC 1035 section 3.3.4, obsolete.
	Md[N Name[N]] = Single[N, mdTag]
	// Mf is RFC 1035 section 3.3.5, obsolete.
	Mf[N Name[N]] = Single[N, mfTag]
	// Mg is RFC 1035 section 3.3.6, experimental.
	Mg[N Name[N]] = Single[N, mgTag]
	// Mr is RFC 1035 section 3.3.8, experimental.
	Mr[N Name[N]] = Single[N, mrTag]
	// Ns is RFC 1035 section 3.3.11.
	Ns[N Name[N]] = Single[N, nsTag]
	// Ptr is RFC 1035 section 3.3.12.
	Ptr[N Name[N]] = Single[N, ptrTag]
)

func NewCname[N Name[N]](n N) Cname[N] { return Cname[N]{Name: n} }
func NewMb[N Name[N]](n N) Mb[N]       { return Mb[N]{Name: n} }
func NewMd[N Name[N]](n N) Md[N]       { return Md[N]{Name: n} }
func NewMf[N Name[N]](n N) Mf[N]       { return Mf[N]{Name: n} }
func NewMg[N Name[N]](n N) Mg[N]       { return Mg[N]{Name: n} }
func NewMr[N Name[N]](n N) Mr[N]       { return Mr[N]{Name: n} }
func NewNs[N Name[N]](n N) Ns[N]       { return Ns[N]{Name: n} }
func NewPtr[N Name[N]](n N) Ptr[N]     { return Ptr[N]{Name: n} }

func (s Single[N, T]) Rtype() Rtype {
	var t T
	return t.rtype()
}

func (s Single[N, T]) Compose(b octets.Builder) error {
	return octets.AppendCompressedName(b, s.Name)
}

func (s Single[N, T]) ComposeCanonical(b octets.Builder) error {
	return s.Name.ComposeCanonical(b)
}

func (s Single[N, T]) Equal(o Single[N, T]) bool {
	return s.Name.Equal(o.Name)
}

func (s Single[N, T]) Compare(o Single[N, T]) int {
	return s.Name.Compare(o.Name)
}

func (s Single[N, T]) CanonicalCompare(o Single[N, T]) int {
	return s.Name.CanonicalCompare(o.Name)
}

func (s Single[N, T]) Hash() uint64 {
	d := xxhash.New()
	hashName(d, s.Name)
	return d.Sum64()
}

func (s Single[N, T]) String() string {
	return s.Name.String()
}

func parseSingle[T tag](p *parse.Parser, l int) (Single[dname.Name, T], error) {
	n, err := dname.ParseAll(p, l)
	if err != nil {
		return Single[dname.Name, T]{}, err
	}
	return Single[dname.Name, T]{Name: n}, nil
}

func ParseCname(p *parse.Parser, l int) (Cname[dname.Name], error) { return parseSingle[cnameTag](p, l) }
func ParseMb(p *parse.Parser, l int) (Mb[dname.Name], error)       { return parseSingle[mbTag](p, l) }
func ParseMd(p *parse.Parser, l int) (Md[dname.Name], error)       { return parseSingle[mdTag](p, l) }
func ParseMf(p *parse.Parser, l int) (Mf[dname.Name], error)       { return parseSingle[mfTag](p, l) }
func ParseMg(p *parse.Parser, l int) (Mg[dname.Name], error)       { return parseSingle[mgTag](p, l) }
func ParseMr(p *parse.Parser, l int) (Mr[dname.Name], error)       { return parseSingle[mrTag](p, l) }
func ParseNs(p *parse.Parser, l int) (Ns[dname.Name], error)       { return parseSingle[nsTag](p, l) }
func ParsePtr(p *parse.Parser, l int) (Ptr[dname.Name], error)     { return parseSingle[ptrTag](p, l) }

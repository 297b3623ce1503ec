package dname

import (
	"bytes"
	"slices"
	"testing"

	"github.com/IrineSistiana/dnscodec/internal/octets"
	"github.com/IrineSistiana/dnscodec/internal/parse"
	"github.com/miekg/dns"
	"github.com/stretchr/testify/require"
)

func labelField(s string) [][]byte {
	return bytes.FieldsFunc([]byte(s), func(r rune) bool { return r == '.' })
}

func TestScanner(t *testing.T) {
	r := require.New(t)
	testFn := func(s string) {
		n, err := FromString(s)
		r.NoError(err)

		labels := make([][]byte, 0)
		scanner := NewScanner(n)
		for scanner.Scan() {
			labels = append(labels, scanner.Label())
		}
		r.NoError(scanner.Err())
		r.EqualValues(labelField(s), labels)
	}

	testFn(".")
	testFn("a.b")
	testFn("a.a.aaaaaaaaaa.a.a.a.a.a.a.a.a.a.a.b")
}

func TestScanner_invalid(t *testing.T) {
	r := require.New(t)
	for _, b := range [][]byte{
		nil,
		{1, 'a'},          // no root
		{2, 'a', 0},       // label overruns
		{1, 'a', 0, 0},    // data after root
		{64, 'a', 'b', 0}, // label too long
	} {
		_, err := FromWire(b)
		r.Errorf(err, "wire: %v", b)
	}
}

func TestFromLabels(t *testing.T) {
	r := require.New(t)

	testFn := func(labels [][]byte, expect error) {
		n, err := FromLabels(labels...)
		if expect != nil {
			r.ErrorIs(err, expect)
			return
		}
		r.NoError(err)
		out, _, err := dns.UnpackDomainName(n, 0)
		r.NoError(err)
		in := bytes.Join(labels, []byte{'.'})
		r.Equal(dns.Fqdn(string(in)), out)
	}

	testFn(nil, nil) // root
	testFn([][]byte{{}}, errZeroSegLen)
	testFn(labelField("aa.bb.ccc.dddd"), nil)
	testFn([][]byte{make([]byte, 64)}, errSegTooLong)

	longName := [][]byte{
		make([]byte, 63),
		make([]byte, 63),
		make([]byte, 63),
		make([]byte, 63),
	}
	testFn(longName, errNameTooLong)

	// 3*64 + 62 + 1 = 255
	maxName := [][]byte{
		make([]byte, 63),
		make([]byte, 63),
		make([]byte, 63),
		make([]byte, 61),
	}
	n, err := FromLabels(maxName...)
	r.NoError(err)
	r.Equal(MaxLen, n.Len())
}

func TestFromString(t *testing.T) {
	r := require.New(t)

	tests := []struct {
		in   string
		wire []byte
		err  error
	}{
		{in: "", wire: []byte{0}},
		{in: ".", wire: []byte{0}},
		{in: "com", wire: []byte("\x03com\x00")},
		{in: "example.com.", wire: []byte("\x07example\x03com\x00")},
		{in: `a\.b.com`, wire: []byte("\x03a.b\x03com\x00")},
		{in: `a\\b`, wire: []byte("\x03a\\b\x00")},
		{in: `\065\000`, wire: []byte("\x02A\x00\x00")},
		{in: "a..b", err: errZeroSegLen},
		{in: ".a", err: errZeroSegLen},
		{in: `a\`, err: errBadEscape},
		{in: `a\25`, err: errBadEscape},
		{in: `\256`, err: errBadEscape},
		{in: string(make([]byte, 64)), err: errSegTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			r := require.New(t)
			n, err := FromString(tt.in)
			if tt.err != nil {
				r.ErrorIs(err, tt.err)
				return
			}
			r.NoError(err)
			r.Equal(Name(tt.wire), n)
		})
	}

	r.Panics(func() { MustFromString("a..b") })
}

func TestString(t *testing.T) {
	r := require.New(t)

	for _, s := range []string{
		".",
		"example.com.",
		`a\.b.example.`,
		`a\\b.`,
		`\000\255.x.`,
		`sp\ ace.`,
	} {
		n := MustFromString(s)
		r.Equal(s, n.String())

		// miekg agrees on the escaping.
		out, _, err := dns.UnpackDomainName(n, 0)
		r.NoError(err)
		r.Equal(out, n.String())
	}
}

func TestLabels(t *testing.T) {
	r := require.New(t)

	n := MustFromString("www.example.com")
	labels := slices.Collect(n.Labels())
	r.Equal([][]byte{
		[]byte("\x03www"),
		[]byte("\x07example"),
		[]byte("\x03com"),
		{0},
	}, labels)
	r.Equal(3, n.LabelCount())

	r.Equal([][]byte{{0}}, slices.Collect(Root().Labels()))
	r.True(Root().IsRoot())
	r.Zero(Root().LabelCount())

	// Stops early.
	for l := range n.Labels() {
		r.Equal([]byte("\x03www"), l)
		break
	}
}

func TestEqual(t *testing.T) {
	r := require.New(t)

	a := MustFromString("Example.COM")
	b := MustFromString("example.com")
	r.True(a.Equal(b))
	r.NotEqual([]byte(a), []byte(b))
	r.False(a.Equal(MustFromString("example.org")))
	r.False(a.Equal(MustFromString("www.example.com")))
	r.Zero(a.Compare(b))
	r.Zero(a.CanonicalCompare(b))
}

func TestCompare(t *testing.T) {
	r := require.New(t)

	// RFC 4034 section 6.1 example, in canonical order.
	ordered := []string{
		"example.",
		"a.example.",
		"yljkjljk.a.example.",
		"Z.a.example.",
		"zABC.a.EXAMPLE.",
		"z.example.",
		`\001.z.example.`,
		"*.z.example.",
		`\200.z.example.`,
	}
	names := make([]Name, 0, len(ordered))
	for _, s := range ordered {
		names = append(names, MustFromString(s))
	}

	shuffled := slices.Clone(names)
	slices.Reverse(shuffled)
	slices.SortFunc(shuffled, Name.Compare)
	for i := range names {
		r.Truef(names[i].Equal(shuffled[i]), "want %s, got %s", names[i], shuffled[i])
	}

	r.Equal(-1, MustFromString("a.").Compare(MustFromString("b.")))
	r.Equal(1, MustFromString("a.b.").Compare(MustFromString("b.")))
	r.Equal(-1, Root().Compare(MustFromString("a.")))
}

func TestCanonicalCompare(t *testing.T) {
	r := require.New(t)

	// Wire order: the length octet of the first label comes first.
	a := MustFromString("zz.a.")
	b := MustFromString("b.z.")
	r.Equal(1, a.CanonicalCompare(b))
	r.Equal(-1, a.Compare(b))
	r.Equal(-1, MustFromString("A.").CanonicalCompare(MustFromString("b.")))
}

func TestComposeCanonical(t *testing.T) {
	r := require.New(t)

	n := MustFromString("WWW.Example.COM")
	b := octets.NewBuf(0)
	r.NoError(b.AppendSlice([]byte{0xff}))
	r.NoError(n.ComposeCanonical(b))
	r.Equal(append([]byte{0xff}, "\x03www\x07example\x03com\x00"...), b.Bytes())
	// n itself is untouched.
	r.Equal("WWW.Example.COM.", n.String())

	var a octets.Octets32
	r.NoError(a.AppendSlice(make([]byte, 20)))
	r.ErrorIs(n.ComposeCanonical(&a), octets.ErrShortBuf)
	r.Equal(20, a.Len())
}

func TestParse(t *testing.T) {
	r := require.New(t)

	// "example.com" at 0, "www" + pointer to 0 at 13.
	msg := []byte("\x07example\x03com\x00\x03www\xc0\x00\xff")

	p := parse.New(msg)
	r.NoError(p.Seek(13))
	n, err := Parse(&p)
	r.NoError(err)
	r.Equal("www.example.com.", n.String())
	r.Equal(19, p.Pos())

	p = parse.New(msg)
	r.NoError(p.Seek(13))
	n, err = ParseAll(&p, 6)
	r.NoError(err)
	r.Equal("www.example.com.", n.String())

	p = parse.New(msg)
	r.NoError(p.Seek(13))
	_, err = ParseAll(&p, 7)
	r.ErrorIs(err, parse.ErrTrailingData)

	p = parse.New(msg)
	r.NoError(p.Seek(13))
	_, err = ParseAll(&p, 5)
	r.ErrorIs(err, parse.ErrShortField)

	p = parse.New(msg)
	r.NoError(p.Seek(13))
	_, err = ParseAll(&p, 0)
	r.ErrorIs(err, parse.ErrShortField)

	// Declared length beyond the message.
	p = parse.New(msg[:17])
	r.NoError(p.Seek(13))
	_, err = ParseAll(&p, 10)
	r.ErrorIs(err, octets.ErrShortBuf)

	p = parse.New(msg[:17])
	_, err = Parse(&p)
	r.NoError(err)
	r.NoError(p.Seek(13))
	_, err = Parse(&p)
	r.ErrorIs(err, octets.ErrShortBuf)
}

func TestParse_invalid(t *testing.T) {
	r := require.New(t)

	// Pointer loop.
	p := parse.New([]byte{0xc0, 0x00})
	_, err := Parse(&p)
	r.ErrorIs(err, errTooManyPtr)

	p = parse.New([]byte{0xc0, 0x05})
	_, err = Parse(&p)
	r.ErrorIs(err, errInvalidPtr)

	p = parse.New([]byte{0x40, 0x00})
	_, err = Parse(&p)
	r.ErrorIs(err, errReserved)
}

func TestParse_miekg(t *testing.T) {
	r := require.New(t)

	for _, s := range []string{".", "com.", "www.example.com.", `a\.b.example.`} {
		buf := make([]byte, 256)
		off, err := dns.PackDomainName(s, buf, 0, nil, false)
		r.NoError(err)

		p := parse.New(buf[:off])
		n, err := ParseAll(&p, off)
		r.NoError(err)
		r.Equal(s, n.String())
	}
}

package codec

import (
	"bytes"
	"testing"

	"github.com/IrineSistiana/dnscodec/internal/dname"
	"github.com/IrineSistiana/dnscodec/internal/mlog"
	"github.com/IrineSistiana/dnscodec/internal/rdata"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func templateRecords(t *testing.T) []rdata.RecordData {
	t.Helper()
	rds, err := buildRecords(configTemplate())
	require.NoError(t, err)
	return rds
}

func encodeAll(t *testing.T, rds []rdata.RecordData, opts encodeOpts) []byte {
	t.Helper()
	e := newEncoder(opts, nil)
	defer e.Close()
	for _, rd := range rds {
		_, err := e.Encode(rd)
		require.NoError(t, err)
	}
	return bytes.Clone(e.Bytes())
}

func decodeAll(t *testing.T, stream []byte) []frame {
	t.Helper()
	var fs []frame
	err := decodeFrames(stream, func(f frame) error {
		fs = append(fs, f)
		return nil
	})
	require.NoError(t, err)
	return fs
}

func Test_stream(t *testing.T) {
	rds := templateRecords(t)
	plain := encodeAll(t, rds, encodeOpts{})
	compressed := encodeAll(t, rds, encodeOpts{compress: true})
	require.Less(t, len(compressed), len(plain))

	for name, stream := range map[string][]byte{"plain": plain, "compressed": compressed} {
		t.Run(name, func(t *testing.T) {
			r := require.New(t)
			fs := decodeAll(t, stream)
			r.Len(fs, len(rds))
			for i, f := range fs {
				r.Equal(rds[i].Rtype(), f.rd.Rtype())
				r.Equal(rds[i].String(), f.rd.String())
			}
		})
	}
}

func Test_stream_canonical(t *testing.T) {
	r := require.New(t)

	rds := []rdata.RecordData{
		rdata.NewCname(dname.MustFromString("WWW.Example.COM.")),
		rdata.NewMx(10, dname.MustFromString("Mail.Example.COM.")),
	}
	fs := decodeAll(t, encodeAll(t, rds, encodeOpts{canonical: true, compress: true}))
	r.Len(fs, 2)
	r.Equal("www.example.com.", fs[0].rd.String())
	r.Equal("10 mail.example.com.", fs[1].rd.String())

	// No pointers in canonical form.
	r.Len(fs[1].raw, 2+len("\x04mail\x07example\x03com\x00"))
}

func Test_stream_truncated(t *testing.T) {
	r := require.New(t)

	stream := encodeAll(t, templateRecords(t), encodeOpts{compress: true})
	for _, n := range []int{1, 3, len(stream) - 1} {
		err := decodeFrames(stream[:n], func(f frame) error { return nil })
		r.Error(err, "length %d", n)
	}
}

func Test_stream_s2(t *testing.T) {
	r := require.New(t)

	stream := encodeAll(t, templateRecords(t), encodeOpts{compress: true})
	for _, compressed := range []bool{false, true} {
		b := new(bytes.Buffer)
		r.NoError(writeStreamTo(b, stream, compressed))
		got, err := readStreamFrom(b, compressed)
		r.NoError(err)
		r.Equal(stream, got)
	}
}

func counterValue(t *testing.T, mfs []*dto.MetricFamily, name, rtype string) float64 {
	t.Helper()
	for _, mf := range mfs {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if lp.GetName() == "rtype" && lp.GetValue() == rtype {
					return m.GetCounter().GetValue()
				}
			}
		}
	}
	return 0
}

func Test_encodeRecords(t *testing.T) {
	r := require.New(t)

	reg := newMetricsReg()
	m := newMetrics()
	r.NoError(m.register(reg))

	rds := templateRecords(t)
	out := new(bytes.Buffer)
	var stream []byte
	failed := encodeRecords(out, mlog.Nop(), rds, encodeOpts{}, m, func(b []byte) error {
		stream = bytes.Clone(b)
		return nil
	})
	r.False(failed)
	r.Len(decodeAll(t, stream), len(rds))
	r.Equal(len(rds), bytes.Count(out.Bytes(), []byte{'\n'}))

	// A record that does not fit RDLENGTH.
	failed = encodeRecords(out, mlog.Nop(), []rdata.RecordData{rdata.Null{Data: make([]byte, 65536)}}, encodeOpts{}, m, func(b []byte) error {
		r.FailNow("stream of a failed encode")
		return nil
	})
	r.True(failed)

	mfs, err := reg.Gather()
	r.NoError(err)
	r.Equal(1.0, counterValue(t, mfs, "records_composed_total", "MX"))
	r.Equal(1.0, counterValue(t, mfs, "compose_errors_total", "NULL"))
	r.NoError(logMetrics(mlog.Nop(), reg))
}

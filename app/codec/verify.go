package codec

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/IrineSistiana/dnscodec/internal/octets"
	"github.com/IrineSistiana/dnscodec/internal/parse"
	"github.com/IrineSistiana/dnscodec/internal/rdata"
	"github.com/miekg/dns"
)

var errMismatch = errors.New("wire mismatch")

// rrHeaderLen is the length of a header with a root owner name.
const rrHeaderLen = 1 + 2 + 2 + 4

// verifyRecord composes rd as a full RR with a root owner and checks
// that miekg/dns unpacks and packs it back to the same bytes, and that
// parsing it here composes the same RDATA again.
// It returns the miekg/dns presentation of the record.
func verifyRecord(rd rdata.RecordData) (string, error) {
	sb := new(octets.SharedBuilder)
	err := octets.AppendAll(sb, func(b octets.Builder) error {
		if err := octets.AppendUint8(b, 0); err != nil {
			return err
		}
		if err := octets.AppendUint16(b, uint16(rd.Rtype())); err != nil {
			return err
		}
		if err := octets.AppendUint16(b, dns.ClassINET); err != nil {
			return err
		}
		if err := octets.AppendUint32(b, 0); err != nil {
			return err
		}
		return rdata.ComposeRdata(b, rd, false)
	})
	if err != nil {
		sb.Release()
		return "", err
	}
	msg := sb.Seal()
	defer msg.Release()

	rr, off, err := dns.UnpackRR(msg.Bytes(), 0)
	if err != nil {
		return "", fmt.Errorf("miekg/dns unpack: %w", err)
	}
	if off != msg.Len() {
		return "", fmt.Errorf("%w: miekg/dns consumed %d of %d bytes", errMismatch, off, msg.Len())
	}
	out := make([]byte, msg.Len())
	n, err := dns.PackRR(rr, out, 0, nil, false)
	if err != nil {
		return "", fmt.Errorf("miekg/dns pack: %w", err)
	}
	if !bytes.Equal(out[:n], msg.Bytes()) {
		return "", fmt.Errorf("%w: miekg/dns packed %x, want %x", errMismatch, out[:n], msg.Bytes())
	}

	raw := msg.Range(rrHeaderLen+2, msg.Len())
	defer raw.Release()
	p := parse.New(raw.Bytes())
	parsed, err := rdata.Parse(rd.Rtype(), &p, raw.Len())
	if err != nil {
		return "", fmt.Errorf("parse: %w", err)
	}
	again := octets.NewBuf(raw.Len())
	if err := parsed.Compose(again); err != nil {
		return "", fmt.Errorf("compose parsed: %w", err)
	}
	if !bytes.Equal(again.Bytes(), raw.Bytes()) {
		return "", fmt.Errorf("%w: parsed record composed %x, want %x", errMismatch, again.Bytes(), raw.Bytes())
	}
	return rr.String(), nil
}

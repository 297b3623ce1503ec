package codec

import (
	"encoding/hex"
	"errors"
	"fmt"
	"net/netip"
	"strings"

	"github.com/IrineSistiana/dnscodec/internal/dname"
	"github.com/IrineSistiana/dnscodec/internal/octets"
	"github.com/IrineSistiana/dnscodec/internal/rdata"
)

var errUnsupportedType = errors.New("unsupported record type")

func buildRecords(cfg *Config) ([]rdata.RecordData, error) {
	rds := make([]rdata.RecordData, 0, len(cfg.Records))
	for i, rc := range cfg.Records {
		rd, err := buildRecord(rc)
		if err != nil {
			return nil, fmt.Errorf("record #%d (%s): %w", i, rc.Type, err)
		}
		rds = append(rds, rd)
	}
	return rds, nil
}

func buildRecord(rc RecordConfig) (rdata.RecordData, error) {
	t, ok := rdata.ParseRtype(strings.ToUpper(rc.Type))
	if !ok {
		return nil, fmt.Errorf("%w %q", errUnsupportedType, rc.Type)
	}

	switch t {
	case rdata.TypeA:
		addr, err := netip.ParseAddr(rc.Addr)
		if err != nil {
			return nil, fmt.Errorf("addr: %w", err)
		}
		a, err := rdata.AFrom(addr)
		if err != nil {
			return nil, fmt.Errorf("addr: %w", err)
		}
		return a, nil
	case rdata.TypeCNAME, rdata.TypeMB, rdata.TypeMD, rdata.TypeMF,
		rdata.TypeMG, rdata.TypeMR, rdata.TypeNS, rdata.TypePTR:
		n, err := parseName("name", rc.Name)
		if err != nil {
			return nil, err
		}
		return buildSingle(t, n), nil
	case rdata.TypeMX:
		n, err := parseName("exchange", rc.Exchange)
		if err != nil {
			return nil, err
		}
		return rdata.NewMx(rc.Preference, n), nil
	case rdata.TypeSOA:
		mname, err := parseName("mname", rc.Mname)
		if err != nil {
			return nil, err
		}
		rname, err := parseName("rname", rc.Rname)
		if err != nil {
			return nil, err
		}
		return rdata.Soa[dname.Name]{
			Mname:   mname,
			Rname:   rname,
			Serial:  rdata.Serial(rc.Serial),
			Refresh: rc.Refresh,
			Retry:   rc.Retry,
			Expire:  rc.Expire,
			Minimum: rc.Minimum,
		}, nil
	case rdata.TypeHINFO:
		cpu, err := rdata.NewCharStr([]byte(rc.Cpu))
		if err != nil {
			return nil, fmt.Errorf("cpu: %w", err)
		}
		osName, err := rdata.NewCharStr([]byte(rc.Os))
		if err != nil {
			return nil, fmt.Errorf("os: %w", err)
		}
		return rdata.Hinfo{Cpu: cpu, Os: osName}, nil
	case rdata.TypeMINFO:
		rmailbx, err := parseName("rmailbx", rc.Rmailbx)
		if err != nil {
			return nil, err
		}
		emailbx, err := parseName("emailbx", rc.Emailbx)
		if err != nil {
			return nil, err
		}
		return rdata.NewMinfo(rmailbx, emailbx), nil
	case rdata.TypeNULL:
		b, err := hex.DecodeString(rc.Data)
		if err != nil {
			return nil, fmt.Errorf("data: %w", err)
		}
		return rdata.Null{Data: b}, nil
	case rdata.TypeTXT:
		txt, err := rdata.TxtFromSlice([]byte(rc.Text))
		if err != nil {
			return nil, fmt.Errorf("text: %w", err)
		}
		return txt, nil
	case rdata.TypeWKS:
		addr, err := netip.ParseAddr(rc.Addr)
		if err != nil || !addr.Unmap().Is4() {
			return nil, fmt.Errorf("addr: invalid ipv4 address %q", rc.Addr)
		}
		wb := rdata.NewWksBuilder(octets.NewBuf(0), addr.Unmap().As4(), rc.Protocol)
		for _, port := range rc.Ports {
			if err := wb.AddService(port); err != nil {
				return nil, fmt.Errorf("port %d: %w", port, err)
			}
		}
		return wb.Finish(), nil
	}
	return nil, fmt.Errorf("%w %s", errUnsupportedType, t)
}

func buildSingle(t rdata.Rtype, n dname.Name) rdata.RecordData {
	switch t {
	case rdata.TypeCNAME:
		return rdata.NewCname(n)
	case rdata.TypeMB:
		return rdata.NewMb(n)
	case rdata.TypeMD:
		return rdata.NewMd(n)
	case rdata.TypeMF:
		return rdata.NewMf(n)
	case rdata.TypeMG:
		return rdata.NewMg(n)
	case rdata.TypeMR:
		return rdata.NewMr(n)
	case rdata.TypeNS:
		return rdata.NewNs(n)
	default:
		return rdata.NewPtr(n)
	}
}

func parseName(field, s string) (dname.Name, error) {
	n, err := dname.FromString(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}
	return n, nil
}

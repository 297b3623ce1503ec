package rdata

import "strconv"

// Rtype is a resource record type.
type Rtype uint16

const (
	TypeA     Rtype = 1
	TypeNS    Rtype = 2
	TypeMD    Rtype = 3
	TypeMF    Rtype = 4
	TypeCNAME Rtype = 5
	TypeSOA   Rtype = 6
	TypeMB    Rtype = 7
	TypeMG    Rtype = 8
	TypeMR    Rtype = 9
	TypeNULL  Rtype = 10
	TypeWKS   Rtype = 11
	TypePTR   Rtype = 12
	TypeHINFO Rtype = 13
	TypeMINFO Rtype = 14
	TypeMX    Rtype = 15
	TypeTXT   Rtype = 16
)

var rtypeNames = map[Rtype]string{
	TypeA:     "A",
	TypeNS:    "NS",
	TypeMD:    "MD",
	TypeMF:    "MF",
	TypeCNAME: "CNAME",
	TypeSOA:   "SOA",
	TypeMB:    "MB",
	TypeMG:    "MG",
	TypeMR:    "MR",
	TypeNULL:  "NULL",
	TypeWKS:   "WKS",
	TypePTR:   "PTR",
	TypeHINFO: "HINFO",
	TypeMINFO: "MINFO",
	TypeMX:    "MX",
	TypeTXT:   "TXT",
}

var rtypeValues = func() map[string]Rtype {
	m := make(map[string]Rtype, len(rtypeNames))
	for t, s := range rtypeNames {
		m[s] = t
	}
	return m
}()

// String returns the mnemonic, or TYPEnnn (RFC 3597) for unknown types.
func (t Rtype) String() string {
	if s, ok := rtypeNames[t]; ok {
		return s
	}
	return "TYPE" + strconv.Itoa(int(t))
}

// ParseRtype parses a mnemonic of a type this package knows.
func ParseRtype(s string) (Rtype, bool) {
	t, ok := rtypeValues[s]
	return t, ok
}

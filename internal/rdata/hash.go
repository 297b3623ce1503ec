package rdata

import (
	"github.com/IrineSistiana/dnscodec/internal/octets"
	"github.com/cespare/xxhash/v2"
)

// hashName writes the lowercase wire form of n, so equal names hash
// the same whatever their case.
func hashName(d *xxhash.Digest, n octets.Name) {
	var buf [64]byte
	for l := range n.Labels() {
		c := copy(buf[:], l)
		lowerASCII(buf[:c])
		_, _ = d.Write(buf[:c])
	}
}

func hashUint8(d *xxhash.Digest, v uint8) {
	_, _ = d.Write([]byte{v})
}

func hashUint16(d *xxhash.Digest, v uint16) {
	_, _ = d.Write([]byte{byte(v >> 8), byte(v)})
}

func hashUint32(d *xxhash.Digest, v uint32) {
	_, _ = d.Write([]byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)})
}

func toLower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 0x20
	}
	return c
}

func lowerASCII(b []byte) {
	for i, c := range b {
		b[i] = toLower(c)
	}
}

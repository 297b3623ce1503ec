// Package rdata implements the record data of the RFC 1035 resource
// record types.
//
// Every type composes into an octets.Builder, has a natural order
// (Compare) and the DNSSEC canonical order of RFC 4034 section 6.3
// (CanonicalCompare). The two only differ when an embedded name is
// stored in mixed case.
package rdata

import (
	"errors"
	"slices"

	"github.com/IrineSistiana/dnscodec/internal/octets"
)

var (
	// ErrPush is returned by the segmented builders when a protocol
	// limit is hit. The underlying cause is wrapped along with it.
	ErrPush = errors.New("record data exceeds protocol limit")

	ErrCharStrTooLong = errors.New("character string exceeds 255 bytes")
)

// RecordData is the data of any record type in this package.
type RecordData interface {
	octets.Composer
	Rtype() Rtype
	String() string
}

// Name is what a record needs from the name type it embeds.
type Name[N any] interface {
	octets.Name
	Equal(o N) bool
	Compare(o N) int
	CanonicalCompare(o N) int
	String() string
}

// Record is a RecordData with both orders and a hash.
type Record[R any] interface {
	RecordData
	Equal(o R) bool
	Compare(o R) int
	CanonicalCompare(o R) int
	Hash() uint64
}

// ComposeRdata writes RDLENGTH followed by the data of rd. On error b
// is left as it was.
func ComposeRdata(b octets.Builder, rd octets.Composer, canonical bool) error {
	return octets.LenPrefixed(b, func(b octets.Builder) error {
		if canonical {
			return rd.ComposeCanonical(b)
		}
		return rd.Compose(b)
	})
}

// SortCanonical sorts the data of an RRset into canonical order.
func SortCanonical[R Record[R]](rrs []R) {
	slices.SortFunc(rrs, func(a, b R) int { return a.CanonicalCompare(b) })
}

// DedupCanonical sorts rrs into canonical order and drops the records
// that are equal in canonical form (RFC 4034 section 6.3).
func DedupCanonical[R Record[R]](rrs []R) []R {
	SortCanonical(rrs)
	return slices.CompactFunc(rrs, func(a, b R) bool { return a.CanonicalCompare(b) == 0 })
}

package rdata

import "strconv"

// Serial is a zone serial number with RFC 1982 arithmetic.
type Serial uint32

// Add adds n, which must be at most 2^31-1.
func (s Serial) Add(n uint32) Serial {
	if n > 1<<31-1 {
		panic("rdata: serial increment out of range")
	}
	return s + Serial(n)
}

// Before reports whether s comes before o in serial number order. For
// two serials exactly 2^31 apart neither is before the other.
func (s Serial) Before(o Serial) bool {
	return (s < o && o-s < 1<<31) || (s > o && s-o > 1<<31)
}

func (s Serial) After(o Serial) bool {
	return o.Before(s)
}

func (s Serial) String() string {
	return strconv.FormatUint(uint64(s), 10)
}

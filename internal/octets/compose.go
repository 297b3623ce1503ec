package octets

import (
	"encoding/binary"
	"iter"
	"net/netip"
)

// Composer writes its wire form into a Builder. A failed call may leave
// partial output, callers wanting all-or-nothing wrap it with AppendAll.
type Composer interface {
	Compose(b Builder) error

	// ComposeCanonical writes the DNSSEC canonical form (RFC 4034 6.2).
	// Values without embedded names write the same as Compose.
	ComposeCanonical(b Builder) error
}

// ComposeAll composes cs in order. Nothing is left in b on error.
func ComposeAll(b Builder, cs ...Composer) error {
	return AppendAll(b, func(b Builder) error {
		for _, c := range cs {
			if err := c.Compose(b); err != nil {
				return err
			}
		}
		return nil
	})
}

// ComposeAllCanonical is ComposeAll using the canonical form.
func ComposeAllCanonical(b Builder, cs ...Composer) error {
	return AppendAll(b, func(b Builder) error {
		for _, c := range cs {
			if err := c.ComposeCanonical(b); err != nil {
				return err
			}
		}
		return nil
	})
}

// Name is a domain name as the codec sees it.
type Name interface {
	// FlatSlice returns the whole uncompressed wire form if the name
	// keeps it in one piece.
	FlatSlice() ([]byte, bool)

	// Labels yields the wire form of each label, length octet included,
	// ending with the root label.
	Labels() iter.Seq[[]byte]

	ComposeCanonical(b Builder) error
}

// NameCompressor is a Builder that can write names with compression
// pointers.
type NameCompressor interface {
	AppendCompressedName(n Name) error
}

// AppendName writes n uncompressed.
func AppendName(b Builder, n Name) error {
	if s, ok := n.FlatSlice(); ok {
		return b.AppendSlice(s)
	}
	return AppendAll(b, func(b Builder) error {
		for l := range n.Labels() {
			if err := b.AppendSlice(l); err != nil {
				return err
			}
		}
		return nil
	})
}

// AppendCompressedName writes n, compressed if b supports it.
func AppendCompressedName(b Builder, n Name) error {
	if c, ok := b.(NameCompressor); ok {
		return c.AppendCompressedName(n)
	}
	return AppendName(b, n)
}

func AppendUint8(b Builder, v uint8) error {
	return b.AppendSlice([]byte{v})
}

func AppendUint16(b Builder, v uint16) error {
	var s [2]byte
	binary.BigEndian.PutUint16(s[:], v)
	return b.AppendSlice(s[:])
}

func AppendUint32(b Builder, v uint32) error {
	var s [4]byte
	binary.BigEndian.PutUint32(s[:], v)
	return b.AppendSlice(s[:])
}

// AppendAddr writes the 4 or 16 byte form of addr. IPv4-mapped IPv6
// addresses are written as 16 bytes. An invalid addr writes nothing.
func AppendAddr(b Builder, addr netip.Addr) error {
	switch {
	case addr.Is4():
		a := addr.As4()
		return b.AppendSlice(a[:])
	case addr.IsValid():
		a := addr.As16()
		return b.AppendSlice(a[:])
	}
	return nil
}

// Big-endian primitive composers.
type (
	Uint8  uint8
	Uint16 uint16
	Uint32 uint32
	Int8   int8
	Int16  int16
	Int32  int32
	IPv4   [4]byte
	IPv6   [16]byte
)

func (v Uint8) Compose(b Builder) error           { return AppendUint8(b, uint8(v)) }
func (v Uint8) ComposeCanonical(b Builder) error  { return v.Compose(b) }
func (v Uint16) Compose(b Builder) error          { return AppendUint16(b, uint16(v)) }
func (v Uint16) ComposeCanonical(b Builder) error { return v.Compose(b) }
func (v Uint32) Compose(b Builder) error          { return AppendUint32(b, uint32(v)) }
func (v Uint32) ComposeCanonical(b Builder) error { return v.Compose(b) }
func (v Int8) Compose(b Builder) error            { return AppendUint8(b, uint8(v)) }
func (v Int8) ComposeCanonical(b Builder) error   { return v.Compose(b) }
func (v Int16) Compose(b Builder) error           { return AppendUint16(b, uint16(v)) }
func (v Int16) ComposeCanonical(b Builder) error  { return v.Compose(b) }
func (v Int32) Compose(b Builder) error           { return AppendUint32(b, uint32(v)) }
func (v Int32) ComposeCanonical(b Builder) error  { return v.Compose(b) }
func (v IPv4) Compose(b Builder) error            { return b.AppendSlice(v[:]) }
func (v IPv4) ComposeCanonical(b Builder) error   { return v.Compose(b) }
func (v IPv6) Compose(b Builder) error            { return b.AppendSlice(v[:]) }
func (v IPv6) ComposeCanonical(b Builder) error   { return v.Compose(b) }

package octets

import (
	"bytes"
	"fmt"
	"unsafe"

	"github.com/cespare/xxhash/v2"
)

// Storage lists the inline storage sizes an Array can have.
type Storage interface {
	[32]byte | [64]byte | [128]byte | [256]byte |
		[512]byte | [1024]byte | [2048]byte | [4096]byte
}

// Array is a Builder with fixed inline storage. It never allocates.
// Appending past its capacity fails with ErrShortBuf.
// The zero value is an empty Array.
type Array[S Storage] struct {
	s S
	l int
}

type (
	Octets32   = Array[[32]byte]
	Octets64   = Array[[64]byte]
	Octets128  = Array[[128]byte]
	Octets256  = Array[[256]byte]
	Octets512  = Array[[512]byte]
	Octets1024 = Array[[1024]byte]
	Octets2048 = Array[[2048]byte]
	Octets4096 = Array[[4096]byte]
)

var _ Sealer[*Octets32] = (*Octets32)(nil)

// NewArray copies src into a new Array. If src does not fit, ErrShortBuf
// is returned.
func NewArray[S Storage](src []byte) (Array[S], error) {
	var a Array[S]
	if err := a.Set(src); err != nil {
		return a, err
	}
	return a, nil
}

// storage returns the whole inline array as a slice.
func (a *Array[S]) storage() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(&a.s)), unsafe.Sizeof(a.s))
}

func (a *Array[S]) Cap() int {
	return int(unsafe.Sizeof(a.s))
}

// Set replaces the content of a with src.
func (a *Array[S]) Set(src []byte) error {
	if len(src) > a.Cap() {
		return ErrShortBuf
	}
	a.l = copy(a.storage(), src)
	return nil
}

func (a *Array[S]) AppendSlice(p []byte) error {
	if len(p) > a.Cap()-a.l {
		return ErrShortBuf
	}
	a.l += copy(a.storage()[a.l:], p)
	return nil
}

func (a *Array[S]) Truncate(n int) {
	if n >= 0 && n < a.l {
		a.l = n
	}
}

func (a *Array[S]) Len() int {
	return a.l
}

func (a *Array[S]) Bytes() []byte {
	return a.storage()[:a.l]
}

func (a *Array[S]) Reset() {
	a.l = 0
}

// Seal returns a itself, an Array is its own finished form.
func (a *Array[S]) Seal() *Array[S] {
	return a
}

// Reopen returns a itself.
func (a *Array[S]) Reopen() *Array[S] {
	return a
}

// Equal reports whether a and o hold the same used bytes. The unused tail
// is never looked at.
func (a *Array[S]) Equal(o *Array[S]) bool {
	return bytes.Equal(a.Bytes(), o.Bytes())
}

func (a *Array[S]) Compare(o *Array[S]) int {
	return bytes.Compare(a.Bytes(), o.Bytes())
}

func (a *Array[S]) Hash() uint64 {
	return xxhash.Sum64(a.Bytes())
}

func (a *Array[S]) String() string {
	return fmt.Sprintf("Octets%d(%x)", a.Cap(), a.Bytes())
}

package rdata

import (
	"bytes"
	"slices"
	"testing"

	"github.com/IrineSistiana/dnscodec/internal/octets"
	"github.com/stretchr/testify/require"
)

func segLens(t Txt) []int {
	var l []int
	for s := range t.Iter() {
		l = append(l, len(s))
	}
	return l
}

func TestTxtBuilder_segments(t *testing.T) {
	r := require.New(t)

	text := make([]byte, 600)
	for i := range text {
		text[i] = byte('a' + i%26)
	}

	txt, err := TxtFromSlice(text)
	r.NoError(err)
	r.Equal([]int{255, 255, 90}, segLens(txt))
	r.Equal(text, bytes.Join(slices.Collect(txt.Iter()), nil))
	r.Equal(text, txt.Text())
	r.Equal(603, txt.Len())

	// Iter restarts.
	r.Equal([]int{255, 255, 90}, segLens(txt))

	// Same result when fed in pieces across the segment borders.
	tb := NewTxtBuilder(octets.NewBuf(0))
	for _, piece := range [][]byte{text[:200], text[200:300], text[300:510], text[510:]} {
		r.NoError(tb.AppendSlice(piece))
	}
	txt2, err := tb.Finish()
	r.NoError(err)
	r.Equal(txt.Raw(), txt2.Raw())
}

func TestTxtBuilder_empty(t *testing.T) {
	r := require.New(t)

	tb := NewTxtBuilder(octets.NewBuf(0))
	r.NoError(tb.AppendSlice(nil))
	txt, err := tb.Finish()
	r.NoError(err)
	r.Equal([]byte{0}, txt.Raw())
	r.False(txt.IsEmpty())
	r.Equal([][]byte{{}}, slices.Collect(txt.Iter()))

	// Exactly one full segment.
	txt, err = TxtFromSlice(make([]byte, 255))
	r.NoError(err)
	r.Equal([]int{255}, segLens(txt))
}

func TestTxtBuilder_limit(t *testing.T) {
	r := require.New(t)

	// 255 full segments plus one of 254 bytes is 65535 bytes on the wire.
	const maxPayload = 255*255 + 254

	tb := NewTxtBuilder(octets.NewBuf(0))
	r.NoError(tb.AppendSlice(make([]byte, maxPayload)))
	r.Equal(0xFFFF, tb.Len())
	r.ErrorIs(tb.AppendSlice([]byte{1}), ErrPush)
	r.Equal(0xFFFF, tb.Len())

	_, err := TxtFromSlice(make([]byte, maxPayload+1))
	r.ErrorIs(err, ErrPush)
}

func TestTxtBuilder_rollback(t *testing.T) {
	r := require.New(t)

	var a octets.Octets256
	tb := NewTxtBuilder(&a)
	r.NoError(tb.AppendSlice(bytes.Repeat([]byte{'x'}, 100)))
	r.Equal(101, a.Len())

	// Fills the open segment, then has no room for the next one.
	err := tb.AppendSlice(make([]byte, 300))
	r.ErrorIs(err, ErrPush)
	r.ErrorIs(err, octets.ErrShortBuf)
	r.Equal(101, a.Len())
	r.Equal(byte(100), a.Bytes()[0])

	r.NoError(tb.AppendSlice([]byte("yz")))
	txt, err := tb.Finish()
	r.NoError(err)
	r.Equal([]int{102}, segLens(txt))
	r.Equal(append(bytes.Repeat([]byte{'x'}, 100), "yz"...), txt.Text())
}

func TestTxtBuilder_offset(t *testing.T) {
	r := require.New(t)

	b := octets.NewBuf(0)
	r.NoError(b.AppendSlice([]byte("head")))
	tb := NewTxtBuilder(b)
	r.NoError(tb.AppendSlice([]byte("abc")))
	txt, err := tb.Finish()
	r.NoError(err)
	r.Equal([]byte("\x03abc"), txt.Raw())
	r.Equal([]byte("head\x03abc"), b.Bytes())
}

func TestTxt_flat(t *testing.T) {
	r := require.New(t)

	one, err := NewTxt([]byte("\x05hello"))
	r.NoError(err)
	s, ok := one.FlatSlice()
	r.True(ok)
	r.Equal([]byte("hello"), s)
	r.Same(&one.Raw()[1], &one.Text()[0])

	two, err := NewTxt([]byte("\x02he\x03llo"))
	r.NoError(err)
	_, ok = two.FlatSlice()
	r.False(ok)
	r.Equal([]byte("hello"), two.Text())

	// Same flattened content, different split.
	r.True(one.Equal(two))
	r.Zero(one.Compare(two))
	r.Zero(one.CanonicalCompare(two))
	r.Equal(one.Hash(), two.Hash())
	r.NotEqual(compose(t, one), compose(t, two))

	three, err := NewTxt([]byte("\x02he\x03llo\x00\x01!"))
	r.NoError(err)
	r.Equal(-1, one.Compare(three))
	r.Equal(1, three.Compare(two))
	r.False(three.Equal(one))

	r.Equal(-1, mustTxt(t, "abc").Compare(mustTxt(t, "abd")))
	r.Equal(1, mustTxt(t, "b").Compare(mustTxt(t, "abc")))
}

func TestNewTxt_invalid(t *testing.T) {
	r := require.New(t)

	_, err := NewTxt(nil)
	r.Error(err)
	_, err = NewTxt([]byte("\x05abc"))
	r.Error(err)
	_, err = NewTxt([]byte("\x01a\x02b"))
	r.Error(err)
}

func TestTxt_zero(t *testing.T) {
	r := require.New(t)

	var txt Txt
	r.Equal([]byte{0}, compose(t, txt))
	r.Equal([]byte{0}, txt.Raw())
	r.Equal(1, txt.Len())
	r.Equal([][]byte{{}}, slices.Collect(txt.Iter()))
	s, ok := txt.FlatSlice()
	r.True(ok)
	r.Empty(s)
	r.Equal(`""`, txt.String())

	empty, err := TxtFromSlice(nil)
	r.NoError(err)
	r.True(txt.Equal(empty))
	r.Equal(empty.Hash(), txt.Hash())
}

/*
Copyright (c) 2013 Blake Smith <blakesmith0@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package arindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/please-build/arindex/internal/artest"
)

func TestPaddingBytes(t *testing.T) {
	for size, pad := range map[int64]int64{0: 0, 1: 1, 2: 0, 59: 1, 60: 0, 1 << 40: 0, 1<<40 + 1: 1} {
		assert.Equal(t, pad, paddingBytes(size, 2), "size %d", size)
	}
	assert.Equal(t, int64(3), paddingBytes(5, 8))
}

func TestFieldDecoder(t *testing.T) {
	var d fieldDecoder
	assert.Equal(t, int64(1361157466), d.decimal("date", []byte("1361157466  ")))
	assert.Equal(t, int64(0100644), d.octal("mode", []byte("100644  ")))
	assert.Equal(t, int64(0), d.decimal("uid", []byte("      ")))
	assert.Equal(t, int64(42), d.decimal("gid", []byte("  42  ")))
	require.NoError(t, d.err)

	assert.Zero(t, d.decimal("size", []byte("12x       ")))
	var numErr *ErrNumericField
	require.ErrorAs(t, d.err, &numErr)
	assert.Equal(t, "size", numErr.Field)
	assert.Equal(t, "12x       ", numErr.Value)

	// Later fields are not decoded once one has failed.
	assert.Zero(t, d.decimal("date", []byte("1")))
	assert.Equal(t, "size", numErr.Field)
}

func TestCommonHeader(t *testing.T) {
	data := artest.New().
		AddRaw(artest.Header(artest.Fields{Name: "foo.o", Date: "7", Uid: "1", Gid: "2", Mode: "755", Size: "5"}), []byte("hello")).
		Bytes()

	h, err := newCommonHeader(data, 8)
	require.NoError(t, err)
	assert.Equal(t, "foo.o", h.Name())
	assert.Equal(t, int64(7), h.ModTime().Unix())
	assert.Equal(t, 1, h.UID())
	assert.Equal(t, 2, h.GID())
	assert.Equal(t, int64(0755), h.Mode())
	assert.Equal(t, int64(5), h.DataSize())
	assert.Equal(t, int64(5), h.FileSize())
	assert.Equal(t, int64(HEADER_BYTE_SIZE), h.HeaderSize())
	assert.Equal(t, int64(66), h.TotalSize())
	assert.Equal(t, []byte("hello"), h.FileData())

	var format HeaderFormat = h
	assert.Equal(t, "foo.o", format.Name())
}

func TestBSDHeader(t *testing.T) {
	data := artest.New().
		AddBSDPadded(artest.Entry{Name: "myfile.o", Body: []byte("payload")}, []byte("myfile.o\x00\x00")).
		Bytes()

	h, err := newCommonHeader(data, 8)
	require.NoError(t, err)
	assert.Equal(t, "#1/10", h.Name())

	format, err := newBSDHeader(h)
	require.NoError(t, err)
	b, ok := format.(*bsdHeader)
	require.True(t, ok)
	assert.Equal(t, "myfile.o", b.Name())
	assert.Equal(t, int64(10), b.AppendedNameSize())
	assert.Equal(t, int64(17), b.DataSize())
	assert.Equal(t, int64(7), b.FileSize())
	assert.Equal(t, []byte("payload"), b.FileData())
	assert.Equal(t, h.TotalSize(), b.TotalSize())
	assert.Equal(t, int64(HEADER_BYTE_SIZE+17+1), b.TotalSize())
}

func TestBSDHeaderPlainName(t *testing.T) {
	data := artest.New().Add(artest.Entry{Name: "plain.o", Body: []byte("abc")}).Bytes()
	h, err := newCommonHeader(data, 8)
	require.NoError(t, err)

	format, err := newBSDHeader(h)
	require.NoError(t, err)
	assert.Equal(t, "plain.o", format.Name())
	assert.Equal(t, int64(3), format.FileSize())
	assert.Equal(t, []byte("abc"), format.FileData())
}

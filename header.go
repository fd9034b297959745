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
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// commonHeader decodes the 60-byte member header shared by every variant of the format:
//
//	char ar_name[16];  file name, space padded
//	char ar_date[12];  modification time, decimal seconds since the epoch
//	char ar_uid[6];    owner id, decimal
//	char ar_gid[6];    group id, decimal
//	char ar_mode[8];   file mode, octal
//	char ar_size[10];  size of the data section, decimal
//	char ar_fmag[2];   header trailer, "`\n"
//
// The fields are decoded once, when the header is constructed; data is never copied.
type commonHeader struct {
	// data is the archive buffer from the first byte of this header to the end of the archive.
	data []byte

	// offset is the position of data[0] within the archive buffer.
	offset int64

	rawName string
	modTime int64
	uid     int
	gid     int
	mode    int64
	size    int64
}

func newCommonHeader(archive []byte, offset int64) (*commonHeader, error) {
	data := archive[offset:]
	if len(data) < HEADER_BYTE_SIZE {
		return nil, &HeaderError{
			Offset: offset,
			Err:    fmt.Errorf("truncated header: %d of %d bytes", len(data), HEADER_BYTE_SIZE),
		}
	}
	if trailer := string(data[HEADER_BYTE_SIZE-trailerLen : HEADER_BYTE_SIZE]); trailer != HEADER_TRAILER {
		return nil, &HeaderError{
			Offset: offset,
			Err:    fmt.Errorf("record is missing header trailer string; instead, it has %q", trailer),
		}
	}

	h := &commonHeader{data: data, offset: offset}
	var d fieldDecoder
	s := slicer(data[:HEADER_BYTE_SIZE])
	h.rawName = string(s.next(nameLen))
	h.modTime = d.decimal("date", s.next(dateLen))
	h.uid = int(d.decimal("uid", s.next(uidLen)))
	h.gid = int(d.decimal("gid", s.next(gidLen)))
	h.mode = d.octal("mode", s.next(modeLen))
	h.size = d.decimal("size", s.next(sizeLen))
	if d.err != nil {
		return nil, &HeaderError{Offset: offset, Err: d.err}
	}
	if h.size < 0 {
		return nil, &HeaderError{Offset: offset, Err: fmt.Errorf("negative data size %d", h.size)}
	}
	if end := h.HeaderSize() + h.size; end > int64(len(data)) {
		return nil, &HeaderError{
			Offset: offset,
			Err:    fmt.Errorf("data section of %d bytes runs past the end of the archive", h.size),
		}
	}
	return h, nil
}

// Name returns the name field with its padding removed.
func (h *commonHeader) Name() string {
	return strings.TrimSpace(h.rawName)
}

func (h *commonHeader) ModTime() time.Time {
	return time.Unix(h.modTime, 0)
}

func (h *commonHeader) UID() int {
	return h.uid
}

func (h *commonHeader) GID() int {
	return h.gid
}

func (h *commonHeader) Mode() int64 {
	return h.mode
}

// DataSize is the size of the whole data section, excluding the alignment padding that follows
// it. It is not always the size of the member's file.
func (h *commonHeader) DataSize() int64 {
	return h.size
}

func (h *commonHeader) FileSize() int64 {
	return h.DataSize()
}

// HeaderSize is already two-byte aligned, so no padding follows the header.
func (h *commonHeader) HeaderSize() int64 {
	return HEADER_BYTE_SIZE
}

// TotalSize is the distance from the start of this header to the start of the next one.
func (h *commonHeader) TotalSize() int64 {
	return h.HeaderSize() + h.DataSize() + paddingBytes(h.DataSize(), 2)
}

func (h *commonHeader) FileData() []byte {
	start := h.HeaderSize()
	return h.slice(start, start+h.DataSize())
}

// slice returns data[start:end] with its capacity clipped, so appending to the result can never
// overwrite the archive.
func (h *commonHeader) slice(start, end int64) []byte {
	return h.data[start:end:end]
}

// fieldDecoder parses numeric header fields, remembering the first failure.
type fieldDecoder struct {
	err error
}

func (d *fieldDecoder) decimal(field string, b []byte) int64 {
	return d.parse(field, b, 10)
}

func (d *fieldDecoder) octal(field string, b []byte) int64 {
	return d.parse(field, b, 8)
}

// parse decodes b in the given base. A field consisting only of padding decodes to zero.
func (d *fieldDecoder) parse(field string, b []byte, base int) int64 {
	if d.err != nil {
		return 0
	}
	s := strings.TrimSpace(string(b))
	if s == "" {
		return 0
	}
	n, err := strconv.ParseInt(s, base, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		d.err = &ErrNumericField{Field: field, Value: string(b), Err: err}
		return 0
	}
	return n
}

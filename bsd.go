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
)

// bsdHeader resolves the BSD extended file name convention on top of the common header. A name
// field of "#1/" followed by a decimal length means the real file name occupies that many bytes
// at the start of the data section, NUL padded; the file's content follows it.
type bsdHeader struct {
	*commonHeader

	// nameSize is the number of data section bytes taken by the appended name, or 0 if the name is
	// stored in the header.
	nameSize int64

	name string
}

func newBSDHeader(h *commonHeader) (HeaderFormat, error) {
	b := &bsdHeader{commonHeader: h, name: h.Name()}
	if !strings.HasPrefix(b.name, BSD_NAME_PREFIX) {
		return b, nil
	}
	length, err := strconv.ParseInt(b.name[len(BSD_NAME_PREFIX):], 10, 64)
	if err != nil || length < 0 {
		return nil, &HeaderError{
			Offset: h.offset,
			Err: &ErrFileName{
				Name: b.name,
				Err:  errors.New("invalid long file name length"),
			},
		}
	}
	if length > h.DataSize() {
		return nil, &HeaderError{
			Offset: h.offset,
			Err: &ErrFileName{
				Name: b.name,
				Err:  fmt.Errorf("long file name length exceeds data section of %d bytes", h.DataSize()),
			},
		}
	}
	b.nameSize = length
	start := h.HeaderSize()
	// The declared length includes the NUL padding, which some writers (e.g. llvm-ar) make longer
	// than needed.
	b.name = strings.ReplaceAll(string(h.slice(start, start+length)), "\x00", "")
	return b, nil
}

func (b *bsdHeader) Name() string {
	return b.name
}

// AppendedNameSize is the number of data section bytes holding the file name.
func (b *bsdHeader) AppendedNameSize() int64 {
	return b.nameSize
}

// FileSize excludes the appended name, which the header's size field counts as data.
func (b *bsdHeader) FileSize() int64 {
	return b.DataSize() - b.nameSize
}

func (b *bsdHeader) FileData() []byte {
	start := b.HeaderSize() + b.nameSize
	return b.slice(start, start+b.FileSize())
}

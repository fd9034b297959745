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
	"bytes"
	"time"
)

// HeaderFormat is implemented by each variant of the member header. The archive index only ever
// talks to members through it, so a new variant needs nothing more than a decoder registered in
// formats.
type HeaderFormat interface {
	// Name is the member's resolved file name.
	Name() string

	// FileSize is the size of the member's file content.
	FileSize() int64

	// FileData is the member's file content, as a view into the archive buffer.
	FileData() []byte

	// TotalSize is the number of bytes from the start of the member's header to the start of the
	// next member's header.
	TotalSize() int64
}

// formats maps each supported variant to the decoder that layers it over the common header.
var formats = map[Variant]func(*commonHeader) (HeaderFormat, error){
	Common: func(h *commonHeader) (HeaderFormat, error) { return h, nil },
	BSD:    newBSDHeader,
}

// Member is one file stored in an archive. It is a read-only view into the buffer the Archive
// was created from: the slices it returns alias that buffer, so the buffer must stay valid (and
// unmodified) for as long as any Member, or any slice obtained from one, is in use.
type Member struct {
	hdr    *commonHeader
	format HeaderFormat
}

func (m *Member) Name() string {
	return m.format.Name()
}

func (m *Member) ModTime() time.Time {
	return m.hdr.ModTime()
}

func (m *Member) UID() int {
	return m.hdr.UID()
}

func (m *Member) GID() int {
	return m.hdr.GID()
}

// Mode returns the mode bits, which the header stores in octal.
func (m *Member) Mode() int64 {
	return m.hdr.Mode()
}

// DataSize is the size recorded in the header. For BSD extended names it includes the bytes of
// the appended name; use FileSize for the size of the content.
func (m *Member) DataSize() int64 {
	return m.hdr.DataSize()
}

func (m *Member) FileSize() int64 {
	return m.format.FileSize()
}

// FileData returns the member's content without copying it.
func (m *Member) FileData() []byte {
	return m.format.FileData()
}

func (m *Member) HeaderSize() int64 {
	return m.hdr.HeaderSize()
}

func (m *Member) TotalSize() int64 {
	return m.format.TotalSize()
}

// AppendedNameSize is the number of data section bytes holding the member's name, for variants
// that store names there.
func (m *Member) AppendedNameSize() int64 {
	if f, ok := m.format.(interface{ AppendedNameSize() int64 }); ok {
		return f.AppendedNameSize()
	}
	return 0
}

// Offset is the position of the member's header within the archive.
func (m *Member) Offset() int64 {
	return m.hdr.offset
}

// Header returns a copy of the member's metadata. Size is the size of the file content.
func (m *Member) Header() Header {
	return Header{
		Name:    m.Name(),
		ModTime: m.ModTime(),
		Uid:     m.UID(),
		Gid:     m.GID(),
		Mode:    m.Mode(),
		Size:    m.FileSize(),
	}
}

// Open returns a reader over the member's content.
func (m *Member) Open() *bytes.Reader {
	return bytes.NewReader(m.FileData())
}

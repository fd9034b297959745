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

// Package artest assembles ar archives in memory for tests, including deliberately corrupt ones.
package artest

import (
	"bytes"
	"strconv"
	"strings"
	"time"
)

const (
	globalHeader  = "!<arch>\n"
	headerTrailer = "`\n"
)

// Entry describes one member to add to an archive.
type Entry struct {
	Name    string
	ModTime time.Time
	Uid     int
	Gid     int
	Mode    int64
	Body    []byte
}

// Fields is a member header as raw text. Each field is space padded (or truncated) to its width.
type Fields struct {
	Name    string
	Date    string
	Uid     string
	Gid     string
	Mode    string
	Size    string
	Trailer string
}

// Builder accumulates an archive. The zero value is not usable; call New.
//
// Example:
//
//	data := artest.New().
//	    Add(artest.Entry{Name: "hello.txt", Body: []byte("Hello world!\n")}).
//	    Bytes()
type Builder struct {
	buf bytes.Buffer
}

// New starts an archive with the global header already written.
func New() *Builder {
	b := &Builder{}
	b.buf.WriteString(globalHeader)
	return b
}

func field(str string, width int) []byte {
	s := str
	for len(s) < width {
		s = s + " "
	}
	return []byte(s[:width])
}

// Header renders f as a 60-byte member header. An empty Trailer is written as the valid one.
func Header(f Fields) []byte {
	if f.Trailer == "" {
		f.Trailer = headerTrailer
	}
	var hdr []byte
	hdr = append(hdr, field(f.Name, 16)...)
	hdr = append(hdr, field(f.Date, 12)...)
	hdr = append(hdr, field(f.Uid, 6)...)
	hdr = append(hdr, field(f.Gid, 6)...)
	hdr = append(hdr, field(f.Mode, 8)...)
	hdr = append(hdr, field(f.Size, 10)...)
	hdr = append(hdr, field(f.Trailer, 2)...)
	return hdr
}

func fields(e Entry, name string, size int) Fields {
	date := "0"
	if !e.ModTime.IsZero() {
		date = strconv.FormatInt(e.ModTime.Unix(), 10)
	}
	return Fields{
		Name: name,
		Date: date,
		Uid:  strconv.Itoa(e.Uid),
		Gid:  strconv.Itoa(e.Gid),
		Mode: strconv.FormatInt(e.Mode, 8),
		Size: strconv.Itoa(size),
	}
}

// Add appends a member. Names longer than 16 bytes, or containing a space, are stored the BSD way
// in front of the data section.
func (b *Builder) Add(e Entry) *Builder {
	if len(e.Name) > 16 || strings.ContainsRune(e.Name, ' ') {
		return b.AddBSD(e)
	}
	return b.AddRaw(Header(fields(e, e.Name, len(e.Body))), e.Body)
}

// AddBSD appends a member whose name is always stored in the data section, behind a "#1/<len>"
// name field. The stored name is padded with at least two NULs to an even length, as BSD ar does.
func (b *Builder) AddBSD(e Entry) *Builder {
	name := append([]byte(e.Name), 0, 0)
	if len(name)%2 != 0 {
		name = append(name, 0)
	}
	return b.AddBSDPadded(e, name)
}

// AddBSDPadded is AddBSD with the stored name bytes given verbatim.
func (b *Builder) AddBSDPadded(e Entry, storedName []byte) *Builder {
	data := append(append([]byte{}, storedName...), e.Body...)
	hdr := Header(fields(e, "#1/"+strconv.Itoa(len(storedName)), len(data)))
	return b.AddRaw(hdr, data)
}

// AddRaw appends header followed by data, plus a newline if data has an odd length.
func (b *Builder) AddRaw(header, data []byte) *Builder {
	b.buf.Write(header)
	b.buf.Write(data)
	if len(data)%2 == 1 { // data size must be aligned to an even byte
		b.buf.WriteByte('\n')
	}
	return b
}

// AddBytes appends p without any framing.
func (b *Builder) AddBytes(p []byte) *Builder {
	b.buf.Write(p)
	return b
}

// Len returns the number of bytes written so far, which is the offset the next member's header
// will be written at.
func (b *Builder) Len() int64 {
	return int64(b.buf.Len())
}

// Bytes returns a copy of the archive.
func (b *Builder) Bytes() []byte {
	return bytes.Clone(b.buf.Bytes())
}

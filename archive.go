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
	"fmt"
	"log/slog"
	"maps"
	"slices"
)

// Archive provides random access to the members of an ar archive held in memory.
//
// Example:
//
//	archive, err := arindex.New(data)
//	if err != nil {
//	    return err
//	}
//	if m, ok := archive.File("hello.o"); ok {
//	    os.Stdout.Write(m.FileData())
//	}
//
// An Archive never copies or modifies data; see Member for what that means for the caller.
type Archive struct {
	// data is the archive file, starting with the global header.
	data []byte

	// variant selects the header decoder used for every member.
	variant Variant

	// files maps member names to members. If several members share a name, the last one wins.
	files map[string]*Member

	// members holds every member in the order it appears in the archive, duplicates included.
	members []*Member

	// duplicates counts members whose name was already taken by an earlier member.
	duplicates int

	strictDuplicates bool

	logger *slog.Logger
}

// Option configures an Archive.
type Option func(*Archive)

// WithVariant selects the header variant used to decode members. The default is BSD.
func WithVariant(v Variant) Option {
	return func(a *Archive) {
		a.variant = v
	}
}

// WithLogger sets the logger the archive reports indexing progress to.
func WithLogger(l *slog.Logger) Option {
	return func(a *Archive) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithStrictDuplicates makes New fail with ErrDuplicateMember when two members share a name,
// instead of keeping the last one.
func WithStrictDuplicates() Option {
	return func(a *Archive) {
		a.strictDuplicates = true
	}
}

// New indexes the archive in data. It returns an error wrapping ErrInvalidGlobalHeader if data does
// not start with the global header, or one wrapping ErrMalformedHeader if any member header is
// corrupt.
func New(data []byte, opts ...Option) (*Archive, error) {
	a := &Archive{
		data:    data,
		variant: BSD,
		files:   map[string]*Member{},
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(a)
	}
	decode, ok := formats[a.variant]
	if !ok {
		return nil, fmt.Errorf("ar: unsupported variant %d", a.variant)
	}

	if len(data) < len(GLOBAL_HEADER) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidGlobalHeader, ErrMissingGlobalHeader)
	}
	if string(data[:len(GLOBAL_HEADER)]) != GLOBAL_HEADER {
		return nil, ErrInvalidGlobalHeader
	}

	for offset := int64(len(GLOBAL_HEADER)); offset < int64(len(data)); {
		hdr, err := newCommonHeader(data, offset)
		if err != nil {
			return nil, err
		}
		format, err := decode(hdr)
		if err != nil {
			return nil, err
		}
		m := &Member{hdr: hdr, format: format}
		if err := a.add(m); err != nil {
			return nil, err
		}
		offset += m.TotalSize()
	}

	a.logger.Debug("indexed archive",
		"variant", a.variant,
		"members", len(a.members),
		"duplicates", a.duplicates,
	)
	return a, nil
}

func (a *Archive) add(m *Member) error {
	name := m.Name()
	if prev, ok := a.files[name]; ok {
		if a.strictDuplicates {
			return fmt.Errorf("%w: %q at offsets %d and %d", ErrDuplicateMember, name, prev.Offset(), m.Offset())
		}
		a.duplicates++
		a.logger.Warn("duplicate member name, keeping the later member",
			"name", name,
			"previous_offset", prev.Offset(),
			"offset", m.Offset(),
		)
	}
	a.logger.Debug("indexed member",
		"name", name,
		"offset", m.Offset(),
		"data_size", m.DataSize(),
		"file_size", m.FileSize(),
	)
	a.files[name] = m
	a.members = append(a.members, m)
	return nil
}

// File looks up a member by name. The boolean is false if there is no such member.
func (a *Archive) File(name string) (*Member, bool) {
	m, ok := a.files[name]
	return m, ok
}

// Files returns the name to member mapping. The map is a copy; the members are shared.
func (a *Archive) Files() map[string]*Member {
	return maps.Clone(a.files)
}

// Names returns the member names in sorted order.
func (a *Archive) Names() []string {
	return slices.Sorted(maps.Keys(a.files))
}

// Members returns every member in archive order, including members shadowed by a later member of
// the same name.
func (a *Archive) Members() []*Member {
	return slices.Clone(a.members)
}

// Duplicates returns the number of members that were shadowed by a later member of the same name.
func (a *Archive) Duplicates() int {
	return a.duplicates
}

func (a *Archive) Variant() Variant {
	return a.variant
}

// Size returns the size of the underlying archive buffer.
func (a *Archive) Size() int64 {
	return int64(len(a.data))
}

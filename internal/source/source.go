// Package source loads archive files into memory for indexing.
package source

import (
	"fmt"
	"io"
	"os"
)

// Buffer is an archive file held in memory. Anything derived from Bytes, including an
// arindex.Archive and its members, must not be used after Close.
type Buffer struct {
	data    []byte
	release func() error
}

func (b *Buffer) Bytes() []byte {
	return b.data
}

// Mapped reports whether the buffer is a memory mapping of the file rather than a copy.
func (b *Buffer) Mapped() bool {
	return b.release != nil
}

func (b *Buffer) Close() error {
	release := b.release
	b.data, b.release = nil, nil
	if release == nil {
		return nil
	}
	return release()
}

// Read copies everything from r into a new Buffer.
func Read(r io.Reader) (*Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read archive: %w", err)
	}
	return &Buffer{data: data}, nil
}

// Open loads the archive at path, or standard input if path is "-". Regular files are memory
// mapped when mmap is true and the platform supports it; everything else is read into memory.
func Open(path string, mmap bool) (*Buffer, error) {
	if path == "-" {
		return Read(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}
	defer f.Close()

	if mmap {
		fi, err := f.Stat()
		if err != nil {
			return nil, fmt.Errorf("failed to stat archive: %w", err)
		}
		if fi.Mode().IsRegular() {
			return mapFile(f, fi.Size())
		}
	}

	return Read(f)
}

//go:build unix

package source

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// mapFile maps size bytes of f read-only. The mapping stays valid after f is closed.
func mapFile(f *os.File, size int64) (*Buffer, error) {
	// Zero-length mappings are rejected by the kernel.
	if size == 0 {
		return &Buffer{data: []byte{}}, nil
	}
	if int64(int(size)) != size {
		return nil, fmt.Errorf("archive of %d bytes is too large to map", size)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("failed to map archive: %w", err)
	}

	return &Buffer{
		data:    data,
		release: func() error { return unix.Munmap(data) },
	}, nil
}

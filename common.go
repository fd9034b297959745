package arindex

import (
	"time"
)

const (
	HEADER_BYTE_SIZE = 60
	GLOBAL_HEADER    = "!<arch>\n"

	// HEADER_TRAILER terminates every member header.
	HEADER_TRAILER = "`\n"

	// BSD_NAME_PREFIX marks a BSD extended file name; the decimal that follows it is the number of
	// bytes the real name occupies at the start of the data section.
	BSD_NAME_PREFIX = "#1/"
)

// Widths of the fixed fields of a member header, in order.
const (
	nameLen    = 16
	dateLen    = 12
	uidLen     = 6
	gidLen     = 6
	modeLen    = 8
	sizeLen    = 10
	trailerLen = 2
)

type Variant int

const (
	// BSD represents the variant of the ar file format used by BSD ar, which stores long file names
	// in front of the member's data section.
	BSD Variant = iota

	// Common represents the header layout shared by all variants, without any variant-specific file
	// name handling.
	Common
)

func (v Variant) String() string {
	switch v {
	case BSD:
		return "bsd"
	case Common:
		return "common"
	}
	return "unknown"
}

// Header is a plain copy of a member's decoded metadata.
type Header struct {
	Name    string
	ModTime time.Time
	Uid     int
	Gid     int
	Mode    int64
	Size    int64
}

type slicer []byte

func (sp *slicer) next(n int) (b []byte) {
	s := *sp
	b, *sp = s[0:n], s[n:]
	return
}

// paddingBytes returns the number of bytes needed after size bytes of data to reach the next
// multiple of alignment.
func paddingBytes(size, alignment int64) int64 {
	return (alignment - size%alignment) % alignment
}

//go:build !unix

package source

import (
	"os"
)

func mapFile(f *os.File, _ int64) (*Buffer, error) {
	return Read(f)
}

//go:build linux

package alloc

import (
	"errors"

	"golang.org/x/sys/unix"
)

var errNoRemap = errors.New("alloc: mremap not available")

func osRemap(data []byte, newSize int) ([]byte, error) {
	return unix.Mremap(data, newSize, unix.MREMAP_MAYMOVE)
}

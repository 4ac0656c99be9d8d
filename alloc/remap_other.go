//go:build !linux

package alloc

import "errors"

var errNoRemap = errors.New("alloc: mremap not available")

func osRemap([]byte, int) ([]byte, error) {
	return nil, errNoRemap
}

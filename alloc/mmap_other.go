//go:build !unix

package alloc

const mmapSupported = false

func osMapAnon(int) ([]byte, error) {
	return nil, ErrUnsupported
}

func osUnmap([]byte) error {
	return ErrUnsupported
}

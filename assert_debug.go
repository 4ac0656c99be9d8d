//go:build vectordebug

package vector

import "fmt"

const debugChecks = true

// assertf panics with a formatted message when cond is false.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic("vector: " + fmt.Sprintf(format, args...))
	}
}

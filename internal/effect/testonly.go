//go:build test

// Package effect contains helpers for tests which need to alter global state.
package effect

import (
	"os"

	"github.com/mtth/typedpath/internal/except"
)

// Swap temporarily replaces a variable with another. Call the returned function to restore the
// original value.
func Swap[V any](ref *V, val V) func() {
	old := *ref
	*ref = val
	return func() { *ref = old }
}

// Chdir temporarily changes the process' working directory. Call the returned function to restore
// the original one.
func Chdir(dp string) func() {
	old, err := os.Getwd()
	except.Require(err)
	except.Require(os.Chdir(dp))
	return func() { except.Require(os.Chdir(old)) }
}

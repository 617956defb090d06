// Package platform models the two directory separator conventions a path can follow.
package platform

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// Platform identifies a directory separator convention. macOS and Linux share the NonWindows
// convention.
type Platform int

//go:generate go run github.com/dmarkham/enumer -type=Platform -transform kebab -text
const (
	// Backslash-separated paths, optionally prefixed by a drive letter.
	Windows Platform = iota
	// Forward-slash separated paths.
	NonWindows
)

// Alternate returns the other platform.
func (p Platform) Alternate() Platform {
	if p == Windows {
		return NonWindows
	}
	return Windows
}

var (
	// ErrPlatformDetection is returned when a path contains neither separator.
	ErrPlatformDetection = errors.New("unable to detect platform")

	// ErrUnsupportedPlatform is returned when a Platform value is out of range.
	ErrUnsupportedPlatform = errors.New("unsupported platform")
)

// goos is swapped out for testing.
var goos = runtime.GOOS

// Current returns the platform the process is running on.
func Current() Platform {
	if goos == "windows" {
		return Windows
	}
	return NonWindows
}

// Detect infers a platform from the separators present in a path. The Windows separator takes
// priority, so mixed paths are considered Windows paths.
func Detect(path string) (Platform, error) {
	if strings.Contains(path, string(WindowsSeparator)) {
		return Windows, nil
	}
	if strings.Contains(path, string(NonWindowsSeparator)) {
		return NonWindows, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrPlatformDetection, path)
}

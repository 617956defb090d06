package platform

import "fmt"

// Separator delimits directory names in a path.
type Separator string

const (
	WindowsSeparator    Separator = `\`
	NonWindowsSeparator Separator = "/"
)

// Default is the separator of the platform the process is running on. It is resolved once at
// startup.
var Default = CurrentDefaultSeparator()

// String implements fmt.Stringer.
func (s Separator) String() string { return string(s) }

// IsCanonical returns true iff the separator is one of the two platform separators.
func (s Separator) IsCanonical() bool {
	return s == WindowsSeparator || s == NonWindowsSeparator
}

// Platform returns the platform using the separator. Non-canonical separators are reported as
// NonWindows, mirroring Alternate.
func (s Separator) Platform() Platform {
	if s == WindowsSeparator {
		return Windows
	}
	return NonWindows
}

// DefaultSeparator returns the separator used by a platform.
func DefaultSeparator(p Platform) (Separator, error) {
	switch p {
	case Windows:
		return WindowsSeparator, nil
	case NonWindows:
		return NonWindowsSeparator, nil
	default:
		return "", fmt.Errorf("%w: %v", ErrUnsupportedPlatform, p)
	}
}

// CurrentDefaultSeparator returns the separator of the platform the process is running on.
func CurrentDefaultSeparator() Separator {
	if Current() == Windows {
		return WindowsSeparator
	}
	return NonWindowsSeparator
}

// Alternate returns the separator of the other platform. Any separator other than the Windows one
// maps to the Windows separator.
func Alternate(s Separator) Separator {
	if s == WindowsSeparator {
		return NonWindowsSeparator
	}
	return WindowsSeparator
}

// DetectSeparator returns the separator of the platform detected from a path.
func DetectSeparator(path string) (Separator, error) {
	p, err := Detect(path)
	if err != nil {
		return "", err
	}
	return DefaultSeparator(p)
}

package fspath

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmpty is returned by Validate for empty values.
	ErrEmpty = errors.New("empty path value")

	// ErrEmbeddedSeparator is returned by Validate for names containing a directory separator.
	ErrEmbeddedSeparator = errors.New("name contains a directory separator")
)

// Validate checks that a value is well-formed: it must not be empty and names must not contain a
// directory separator of either platform. Construction never calls it.
func Validate(v Value) error {
	s := v.String()
	if s == "" {
		return fmt.Errorf("%w (%T)", ErrEmpty, v)
	}
	switch v.(type) {
	case DirectoryName, GenericDirectoryNameSegment, FileName, FileNameWithoutExtension, FileExtension, GenericFileNameSegment:
		if strings.ContainsAny(s, anySeparator) {
			return fmt.Errorf("%w: %T %q", ErrEmbeddedSeparator, v, s)
		}
	}
	return nil
}

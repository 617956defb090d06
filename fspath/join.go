package fspath

import (
	"strings"

	"github.com/mtth/typedpath/platform"
)

// JoinSegments joins segments with sep, without resolving "." or ".." tokens:
//
//   - every segment but the last has its trailing separators (sep and its alternate) removed,
//   - every segment but the first has its leading separators removed,
//   - remaining alternate separators are replaced by sep.
//
// The first segment thus keeps its leading separator (e.g. a POSIX root) and the last one its
// trailing separator. A single segment is only normalized and no segments produce an empty string.
func JoinSegments(sep DirectorySeparator, segments ...string) string {
	alt := platform.Alternate(sep)
	cutset := string(sep) + string(alt)
	parts := make([]string, len(segments))
	for i, segment := range segments {
		if i < len(segments)-1 {
			segment = strings.TrimRight(segment, cutset)
		}
		if i > 0 {
			segment = strings.TrimLeft(segment, cutset)
		}
		if alt != sep {
			segment = strings.ReplaceAll(segment, string(alt), string(sep))
		}
		parts[i] = segment
	}
	return strings.Join(parts, string(sep))
}

// JoinResolved joins segments like JoinSegments and canonicalizes the result, collapsing "." and
// ".." tokens and qualifying unrooted paths.
func JoinResolved(c Canonicalizer, sep DirectorySeparator, segments ...string) (string, error) {
	return c.Canonicalize(JoinSegments(sep, segments...), sep)
}

func valueStrings[V Value](vals []V) []string {
	strs := make([]string, len(vals))
	for i, val := range vals {
		strs[i] = val.String()
	}
	return strs
}

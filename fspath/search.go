package fspath

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gobwas/glob"
	"github.com/mtth/typedpath/platform"
)

// ErrInvalidSearchPattern is returned when a search pattern cannot match any entry name, for
// example because it contains a directory separator.
var ErrInvalidSearchPattern = errors.New("invalid search pattern")

// SearchPattern is a wildcard pattern matched against entry names during enumeration. "*" matches
// any sequence of characters, "?" a single one. All other characters, including glob syntax such
// as "[" or "{", match themselves.
type SearchPattern string

var invalidPatternChars = string(platform.WindowsSeparator) + string(platform.NonWindowsSeparator) + "\x00"

// SearchAll matches every name.
const SearchAll SearchPattern = "*"

func (p SearchPattern) String() string { return string(p) }

// AsSearchPattern lifts a string into a SearchPattern.
func AsSearchPattern(s string) SearchPattern { return SearchPattern(s) }

// AllFilesWithFileExtension matches all file names with the given extension, e.g. "*.txt". The
// extension may include its leading separator.
func AllFilesWithFileExtension(ext FileExtension) SearchPattern {
	sep := string(DefaultFileExtensionSeparator)
	return SearchPattern(string(SearchAll) + sep + strings.TrimPrefix(ext.String(), sep))
}

// Compile returns a matcher for the pattern.
func (p SearchPattern) Compile() (glob.Glob, error) {
	s := p.String()
	if strings.ContainsAny(s, invalidPatternChars) {
		return nil, fmt.Errorf("%w: %q contains an invalid character", ErrInvalidSearchPattern, p)
	}
	var b strings.Builder
	for _, r := range s {
		if r == '*' || r == '?' {
			b.WriteRune(r)
		} else {
			b.WriteString(glob.QuoteMeta(string(r)))
		}
	}
	g, err := glob.Compile(b.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidSearchPattern, p, err)
	}
	return g, nil
}

// Match returns true iff the name matches the pattern. Invalid patterns match nothing.
func (p SearchPattern) Match(name string) bool {
	g, err := p.Compile()
	return err == nil && g.Match(name)
}

package fspath

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mtth/typedpath/platform"
)

// ErrCanonicalization is returned when a path cannot be resolved.
var ErrCanonicalization = errors.New("unable to canonicalize path")

// Canonicalizer resolves a path written with the given separator: "." and ".." tokens are
// collapsed and unrooted paths are qualified.
type Canonicalizer interface {
	Canonicalize(path string, sep DirectorySeparator) (string, error)
}

// LexicalCanonicalizer canonicalizes paths without touching the filesystem, which allows resolving
// paths of either platform on any host. ".." tokens above the root are dropped, as are trailing
// separators.
type LexicalCanonicalizer struct {
	// WorkingDirectory returns the directory against which unrooted paths are qualified. Defaults to
	// os.Getwd.
	WorkingDirectory func() (string, error)
}

// Canonicalize implements Canonicalizer.
func (c LexicalCanonicalizer) Canonicalize(path string, sep DirectorySeparator) (string, error) {
	if strings.ContainsRune(path, 0) {
		return "", fmt.Errorf("%w: %q contains a NUL byte", ErrCanonicalization, path)
	}
	path = normalizeSeparators(path, sep)
	root, rest, err := splitRoot(path, sep)
	if err != nil {
		return "", err
	}
	if root == "" {
		wd, err := c.workingDirectory()
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrCanonicalization, err)
		}
		wd = normalizeSeparators(wd, sep)
		root, wdRest, err := splitRoot(wd, sep)
		if err != nil {
			return "", err
		}
		if root == "" {
			return "", fmt.Errorf("%w: working directory %q is not rooted", ErrCanonicalization, wd)
		}
		return root + collapse(wdRest+string(sep)+rest, sep), nil
	}
	return root + collapse(rest, sep), nil
}

func (c LexicalCanonicalizer) workingDirectory() (string, error) {
	if c.WorkingDirectory == nil {
		return os.Getwd()
	}
	return c.WorkingDirectory()
}

func normalizeSeparators(path string, sep DirectorySeparator) string {
	if !sep.IsCanonical() {
		return path
	}
	return strings.ReplaceAll(path, string(platform.Alternate(sep)), string(sep))
}

// splitRoot separates a path's root from the remainder. The root is empty for unrooted paths.
func splitRoot(path string, sep DirectorySeparator) (root, rest string, err error) {
	s := string(sep)
	if sep != platform.WindowsSeparator {
		if strings.HasPrefix(path, s) {
			return s, path[len(s):], nil
		}
		return "", path, nil
	}
	switch {
	case hasDrive(path):
		if len(path) == 2 || !strings.HasPrefix(path[2:], s) {
			return "", "", fmt.Errorf("%w: drive-relative path %q", ErrCanonicalization, path)
		}
		root, rest = path[:2]+s, path[3:]
	case strings.HasPrefix(path, s+s):
		return "", "", fmt.Errorf("%w: UNC path %q", ErrCanonicalization, path)
	case strings.HasPrefix(path, s):
		root, rest = s, path[1:]
	default:
		rest = path
	}
	if strings.Contains(rest, ":") {
		return "", "", fmt.Errorf("%w: unexpected volume separator in %q", ErrCanonicalization, path)
	}
	return root, rest, nil
}

func hasDrive(path string) bool {
	if len(path) < 2 || path[1] != ':' {
		return false
	}
	c := path[0]
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// collapse removes empty, "." and ".." tokens from an unrooted path.
func collapse(rest string, sep DirectorySeparator) string {
	s := string(sep)
	var names []string
	for _, name := range strings.Split(rest, s) {
		switch name {
		case "", ".":
		case "..":
			if len(names) > 0 {
				names = names[:len(names)-1]
			}
		default:
			names = append(names, name)
		}
	}
	return strings.Join(names, s)
}

// components splits a canonical path into its root and names.
func components(path string, sep DirectorySeparator) (string, []string, error) {
	root, rest, err := splitRoot(path, sep)
	if err != nil {
		return "", nil, err
	}
	var names []string
	for _, name := range strings.Split(rest, string(sep)) {
		if name != "" {
			names = append(names, name)
		}
	}
	return root, names, nil
}

package fspath

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mtth/typedpath/platform"
)

// ErrNoCommonRoot is returned when computing a relative path between paths on different roots.
var ErrNoCommonRoot = errors.New("paths do not share a root")

const (
	currentDirectoryToken = "."
	parentDirectoryToken  = ".."
)

// Resolve resolves a relative segment against base, collapsing any ".." tokens.
func (c *Combiner) Resolve(base AbsolutePath, relative PathSegment) (GenericAbsolutePath, error) {
	return c.Combine(base, relative)
}

// Relative returns the path which leads from source to destination. The reference point is the
// source file itself rather than its directory, so the result always ascends at least once unless
// destination lies under source: for "C:\X\X.csproj" and "C:\X\Temp.txt", the relative path is
// "..\Temp.txt". Resolving the result against source yields destination.
func (c *Combiner) Relative(source, destination FilePath) (FileRelativePath, error) {
	srcRoot, srcNames, err := c.canonicalComponents(source)
	if err != nil {
		return "", err
	}
	dstRoot, dstNames, err := c.canonicalComponents(destination)
	if err != nil {
		return "", err
	}
	if !c.sameName(srcRoot, dstRoot) {
		return "", fmt.Errorf("%w: %v, %v", ErrNoCommonRoot, source, destination)
	}

	common := 0
	for common < len(srcNames) && common < len(dstNames) && c.sameName(srcNames[common], dstNames[common]) {
		common++
	}
	var names []string
	for range srcNames[common:] {
		names = append(names, parentDirectoryToken)
	}
	names = append(names, dstNames[common:]...)
	if len(names) == 0 {
		return currentDirectoryToken, nil
	}
	return FileRelativePath(strings.Join(names, string(c.sep))), nil
}

func (c *Combiner) canonicalComponents(p AbsolutePath) (string, []string, error) {
	if err := c.checkSeparator(); err != nil {
		return "", nil, err
	}
	canonical, err := c.canon.Canonicalize(p.String(), c.sep)
	if err != nil {
		return "", nil, err
	}
	return components(canonical, c.sep)
}

// sameName compares path names, ignoring case on Windows.
func (c *Combiner) sameName(a, b string) bool {
	if c.sep == platform.WindowsSeparator {
		return strings.EqualFold(a, b)
	}
	return a == b
}

// Resolve resolves a relative segment against base. The separator is detected from base, falling
// back to the current platform's.
func Resolve(base AbsolutePath, relative PathSegment) (GenericAbsolutePath, error) {
	return detectedCombiner(base).Resolve(base, relative)
}

// Relative returns the path from source to destination, with the separator detected from source.
// See Combiner.Relative.
func Relative(source, destination FilePath) (FileRelativePath, error) {
	return detectedCombiner(source).Relative(source, destination)
}

func detectedCombiner(p AbsolutePath) *Combiner {
	sep, err := platform.DetectSeparator(p.String())
	if err != nil {
		return DefaultCombiner()
	}
	return NewCombiner(sep)
}

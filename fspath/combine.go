package fspath

import (
	"fmt"

	"github.com/mtth/typedpath/platform"
)

// CombineFileNameSegments joins file name segments with the default file name segment separator.
func CombineFileNameSegments(segments ...FileNameSegment) GenericFileNameSegment {
	return CombineFileNameSegmentsWith(DefaultFileNameSegmentSeparator, segments...)
}

// CombineFileNameSegmentsWith joins file name segments with a custom separator. Segment boundaries
// are trimmed the same way as directory names in JoinSegments.
func CombineFileNameSegmentsWith(
	sep FileNameSegmentSeparator,
	segments ...FileNameSegment,
) GenericFileNameSegment {
	joined := JoinSegments(DirectorySeparator(sep), valueStrings(segments)...)
	return GenericFileNameSegment(joined)
}

// CombineFileName appends an extension to a file name, e.g. ("temp", "txt") -> "temp.txt".
func CombineFileName(name FileNameWithoutExtension, ext FileExtension) FileName {
	return CombineFileNameWith(DefaultFileExtensionSeparator, name, ext)
}

// CombineFileNameWith appends an extension to a file name with a custom extension separator.
func CombineFileNameWith(
	sep FileExtensionSeparator,
	name FileNameWithoutExtension,
	ext FileExtension,
) FileName {
	return FileName(JoinSegments(DirectorySeparator(sep), name.String(), ext.String()))
}

// CombineDirectoryNameSegments joins directory name segments with the default directory name
// segment separator.
func CombineDirectoryNameSegments(segments ...DirectoryNameSegment) GenericDirectoryNameSegment {
	return CombineDirectoryNameSegmentsWith(DefaultDirectoryNameSegmentSeparator, segments...)
}

// CombineDirectoryNameSegmentsWith joins directory name segments with a custom separator.
func CombineDirectoryNameSegmentsWith(
	sep DirectoryNameSegmentSeparator,
	segments ...DirectoryNameSegment,
) GenericDirectoryNameSegment {
	joined := JoinSegments(DirectorySeparator(sep), valueStrings(segments)...)
	return GenericDirectoryNameSegment(joined)
}

// CombineDirectoryName joins directory name segments into a complete directory name.
func CombineDirectoryName(segments ...DirectoryNameSegment) DirectoryName {
	return CombineDirectoryNameSegments(segments...).DirectoryName()
}

// Combiner appends path segments to absolute paths using a fixed directory separator. Results are
// always canonicalized.
type Combiner struct {
	sep   DirectorySeparator
	canon Canonicalizer
}

// CombinerOption customizes a Combiner.
type CombinerOption func(*Combiner)

// WithCanonicalizer sets the canonicalizer used to resolve combined paths. The default is a
// LexicalCanonicalizer anchored at the process' working directory.
func WithCanonicalizer(canon Canonicalizer) CombinerOption {
	return func(c *Combiner) { c.canon = canon }
}

// NewCombiner returns a Combiner joining segments with sep.
func NewCombiner(sep DirectorySeparator, opts ...CombinerOption) *Combiner {
	c := &Combiner{sep: sep, canon: LexicalCanonicalizer{}}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CombinerFor returns a Combiner using the platform's separator.
func CombinerFor(p platform.Platform, opts ...CombinerOption) (*Combiner, error) {
	sep, err := platform.DefaultSeparator(p)
	if err != nil {
		return nil, err
	}
	return NewCombiner(sep, opts...), nil
}

// DefaultCombiner returns a Combiner using the current platform's separator.
func DefaultCombiner(opts ...CombinerOption) *Combiner {
	return NewCombiner(platform.Default, opts...)
}

// Separator returns the directory separator used by the combiner.
func (c *Combiner) Separator() DirectorySeparator {
	return c.sep
}

// Join joins raw strings without resolving them.
func (c *Combiner) Join(segments ...string) string {
	return JoinSegments(c.sep, segments...)
}

// Combine appends segments to base and canonicalizes the result.
func (c *Combiner) Combine(base AbsolutePath, segments ...PathSegment) (GenericAbsolutePath, error) {
	if err := c.checkSeparator(); err != nil {
		return "", err
	}
	strs := append([]string{base.String()}, valueStrings(segments)...)
	resolved, err := JoinResolved(c.canon, c.sep, strs...)
	if err != nil {
		return "", err
	}
	return GenericAbsolutePath(resolved), nil
}

// FilePath combines segments into a path to a file.
func (c *Combiner) FilePath(base AbsolutePath, segments ...PathSegment) (FilePath, error) {
	p, err := c.Combine(base, segments...)
	return p.FilePath(), err
}

// DirectoryPath combines segments into a path to a directory.
func (c *Combiner) DirectoryPath(base AbsolutePath, segments ...PathSegment) (DirectoryPath, error) {
	p, err := c.Combine(base, segments...)
	return p.DirectoryPath(), err
}

// InWorkingDirectory returns the path to a file in the canonicalizer's working directory.
func (c *Combiner) InWorkingDirectory(name FileName) (FilePath, error) {
	if err := c.checkSeparator(); err != nil {
		return "", err
	}
	p, err := c.canon.Canonicalize(c.Join(name.String()), c.sep)
	if err != nil {
		return "", err
	}
	return FilePath(p), nil
}

// checkSeparator rejects separators which no platform uses, since no path can be rooted with them.
func (c *Combiner) checkSeparator() error {
	if !c.sep.IsCanonical() {
		return fmt.Errorf("%w: separator %q", platform.ErrUnsupportedPlatform, c.sep)
	}
	return nil
}

// Combine appends segments to base using the current platform's separator.
func Combine(base AbsolutePath, segments ...PathSegment) (GenericAbsolutePath, error) {
	return DefaultCombiner().Combine(base, segments...)
}

// CombineFor appends segments to base using the platform's separator.
func CombineFor(
	p platform.Platform,
	base AbsolutePath,
	segments ...PathSegment,
) (GenericAbsolutePath, error) {
	c, err := CombinerFor(p)
	if err != nil {
		return "", err
	}
	return c.Combine(base, segments...)
}

// CombineWith appends segments to base using an explicit separator.
func CombineWith(
	sep DirectorySeparator,
	base AbsolutePath,
	segments ...PathSegment,
) (GenericAbsolutePath, error) {
	return NewCombiner(sep).Combine(base, segments...)
}

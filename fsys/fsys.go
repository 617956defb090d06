// Package fsys exposes the filesystem operations typed paths are used with: existence checks,
// enumeration, deletion and host canonicalization. It is backed by an afero.Fs so that callers can
// swap the host filesystem for an in-memory one.
package fsys

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/mtth/typedpath/fspath"
	"github.com/mtth/typedpath/internal/except"
	"github.com/spf13/afero"
)

var (
	// ErrNotDirectory is returned when enumerating entries under a path which is not a directory.
	ErrNotDirectory = errors.New("not a directory")

	// newDefaultFs returns the filesystem used when none is configured.
	newDefaultFs = afero.NewOsFs
)

// FS wraps an afero.Fs with typed path operations. The zero value is not usable, see New.
type FS struct {
	fs             afero.Fs
	maxDepth       uint8
	ignoredFolders []string
	canon          fspath.LexicalCanonicalizer
}

// Option customizes an FS.
type Option func(*FS)

// WithFs sets the underlying filesystem. The default is the host's.
func WithFs(fs afero.Fs) Option {
	return func(f *FS) { f.fs = fs }
}

// WithMaxDepth limits how deep recursive enumerations descend. Entries directly under the
// enumerated directory have depth 1. Zero, the default, means no limit.
func WithMaxDepth(depth uint8) Option {
	return func(f *FS) { f.maxDepth = depth }
}

// WithIgnoredFolders skips directories with any of the given names during enumeration, along with
// their contents.
func WithIgnoredFolders(names ...string) Option {
	return func(f *FS) { f.ignoredFolders = names }
}

// WithWorkingDirectory sets the directory unrooted paths are qualified against during
// canonicalization. The default is the process' working directory.
func WithWorkingDirectory(dir fspath.DirectoryPath) Option {
	return func(f *FS) {
		f.canon.WorkingDirectory = func() (string, error) { return dir.String(), nil }
	}
}

// New returns an FS over the host filesystem, unless overridden by an option.
func New(opts ...Option) *FS {
	f := &FS{fs: newDefaultFs(), canon: fspath.LexicalCanonicalizer{WorkingDirectory: os.Getwd}}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Exists returns true iff an entry exists at the path. Errors other than the entry not existing
// (e.g. permission errors) are reported as the entry not existing.
func (f *FS) Exists(p fspath.AbsolutePath) bool {
	ok, err := afero.Exists(f.fs, p.String())
	if err != nil {
		slog.Debug("Existence check failed.", slog.String("path", p.String()), except.LogErrAttr(err))
	}
	return ok
}

// FileExists returns true iff a non-directory entry exists at the path.
func (f *FS) FileExists(p fspath.FilePath) bool {
	info, err := f.fs.Stat(p.String())
	return err == nil && !info.IsDir()
}

// DirectoryExists returns true iff a directory exists at the path.
func (f *FS) DirectoryExists(p fspath.DirectoryPath) bool {
	ok, err := afero.DirExists(f.fs, p.String())
	return err == nil && ok
}

// Delete removes the entry at the path. Non-empty directories are only removed when recursive is
// set. Errors from the underlying filesystem are returned unmodified.
func (f *FS) Delete(p fspath.AbsolutePath, recursive bool) error {
	slog.Debug("Deleting entry.", slog.String("path", p.String()), slog.Bool("recursive", recursive))
	if recursive {
		return f.fs.RemoveAll(p.String())
	}
	return f.fs.Remove(p.String())
}

// Canonicalize implements fspath.Canonicalizer, qualifying unrooted paths with the filesystem's
// working directory.
func (f *FS) Canonicalize(path string, sep fspath.DirectorySeparator) (string, error) {
	return f.canon.Canonicalize(path, sep)
}

// Combiner returns a combiner which resolves paths with this filesystem.
func (f *FS) Combiner(sep fspath.DirectorySeparator) *fspath.Combiner {
	return fspath.NewCombiner(sep, fspath.WithCanonicalizer(f))
}

func (f *FS) statDirectory(p fspath.DirectoryPath) error {
	info, err := f.fs.Stat(p.String())
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %v", ErrNotDirectory, p)
	}
	return nil
}

package fsys

import (
	"errors"
	"io/fs"
	"iter"
	"log/slog"
	"path/filepath"
	"regexp"
	"slices"

	"github.com/mtth/typedpath/fspath"
	"github.com/spf13/afero"
)

// errStopped aborts a walk once the consumer stops ranging.
var errStopped = errors.New("enumeration stopped")

// Files enumerates the files under dir whose name matches the pattern. Subdirectories are only
// explored when recursive is set. Each range over the returned sequence walks the filesystem anew.
// Failures are yielded once, along with an empty path, and end the sequence.
func (f *FS) Files(
	dir fspath.DirectoryPath,
	pattern fspath.SearchPattern,
	recursive bool,
) iter.Seq2[fspath.FilePath, error] {
	return typed[fspath.FilePath](f.matching(dir, pattern, recursive, false))
}

// Directories enumerates the directories under dir whose name matches the pattern. See Files.
func (f *FS) Directories(
	dir fspath.DirectoryPath,
	pattern fspath.SearchPattern,
	recursive bool,
) iter.Seq2[fspath.DirectoryPath, error] {
	return typed[fspath.DirectoryPath](f.matching(dir, pattern, recursive, true))
}

// FilesMatching enumerates the files under dir whose name matches the regular expression.
func (f *FS) FilesMatching(
	dir fspath.DirectoryPath,
	re *regexp.Regexp,
	recursive bool,
) iter.Seq2[fspath.FilePath, error] {
	return typed[fspath.FilePath](f.entries(dir, recursive, func(info fs.FileInfo) bool {
		return !info.IsDir() && re.MatchString(info.Name())
	}))
}

// DirectoriesMatching enumerates the directories under dir whose name matches the regular
// expression.
func (f *FS) DirectoriesMatching(
	dir fspath.DirectoryPath,
	re *regexp.Regexp,
	recursive bool,
) iter.Seq2[fspath.DirectoryPath, error] {
	return typed[fspath.DirectoryPath](f.entries(dir, recursive, func(info fs.FileInfo) bool {
		return info.IsDir() && re.MatchString(info.Name())
	}))
}

func (f *FS) matching(
	dir fspath.DirectoryPath,
	pattern fspath.SearchPattern,
	recursive, directories bool,
) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		g, err := pattern.Compile()
		if err != nil {
			yield("", err)
			return
		}
		f.entries(dir, recursive, func(info fs.FileInfo) bool {
			return info.IsDir() == directories && g.Match(info.Name())
		})(yield)
	}
}

func (f *FS) entries(
	dir fspath.DirectoryPath,
	recursive bool,
	keep func(fs.FileInfo) bool,
) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		slog.Debug("Enumerating entries.", slog.String("root", dir.String()), slog.Bool("recursive", recursive))

		if err := f.statDirectory(dir); err != nil {
			yield("", err)
			return
		}
		var count int
		err := f.walk(dir, recursive, func(fpath string, info fs.FileInfo) error {
			if !keep(info) {
				return nil
			}
			count++
			if !yield(fpath, nil) {
				return errStopped
			}
			return nil
		})
		if errors.Is(err, errStopped) {
			return
		}
		if err != nil {
			yield("", err)
			return
		}
		slog.Debug("Enumerated entries.", slog.String("root", dir.String()), slog.Int("count", count))
	}
}

// walk visits every entry under root, in lexical order, skipping ignored folders and stopping at
// the maximum depth. The root itself is not visited.
func (f *FS) walk(
	root fspath.DirectoryPath,
	recursive bool,
	visit func(string, fs.FileInfo) error,
) error {
	rootPath := filepath.Clean(root.String())
	depths := make(map[string]uint8)
	return afero.Walk(f.fs, rootPath, func(fpath string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fpath == rootPath {
			return nil
		}
		depth := depths[filepath.Dir(fpath)] + 1
		if !info.IsDir() {
			return visit(fpath, info)
		}
		if slices.Contains(f.ignoredFolders, info.Name()) {
			return filepath.SkipDir
		}
		if err := visit(fpath, info); err != nil {
			return err
		}
		if !recursive || (f.maxDepth > 0 && depth >= f.maxDepth) {
			return filepath.SkipDir
		}
		depths[fpath] = depth
		return nil
	})
}

func typed[P ~string](seq iter.Seq2[string, error]) iter.Seq2[P, error] {
	return func(yield func(P, error) bool) {
		for s, err := range seq {
			if !yield(P(s), err) {
				return
			}
		}
	}
}

package fspath

import (
	"net/url"
	"strings"

	"github.com/mtth/typedpath/platform"
)

const anySeparator = string(platform.WindowsSeparator) + string(platform.NonWindowsSeparator)

// lastName splits a path at its last separator of either platform, ignoring trailing separators.
func lastName(path string) (parent, name string) {
	trimmed := strings.TrimRight(path, anySeparator)
	i := strings.LastIndexAny(trimmed, anySeparator)
	if i < 0 {
		return "", trimmed
	}
	parent = trimmed[:i]
	if parent == "" || (len(parent) == 2 && hasDrive(parent)) {
		parent = trimmed[:i+1]
	}
	return parent, trimmed[i+1:]
}

// DirectoryNameOf returns the name of the directory a path points to.
func DirectoryNameOf(p DirectoryPath) DirectoryName {
	_, name := lastName(p.String())
	return DirectoryName(name)
}

// FileNameOf returns the name of the file a path points to.
func FileNameOf(p FilePath) FileName {
	_, name := lastName(p.String())
	return FileName(name)
}

// ParentDirectoryOf returns the path of the directory containing p, or an empty path if p is a
// root.
func ParentDirectoryOf(p AbsolutePath) DirectoryPath {
	parent, _ := lastName(p.String())
	return DirectoryPath(parent)
}

// SplitFileName splits a file name at its last extension separator. The returned boolean is false
// when the name has no extension, in which case the name is returned unchanged.
func SplitFileName(n FileName) (FileNameWithoutExtension, FileExtension, bool) {
	s := n.String()
	i := strings.LastIndex(s, string(DefaultFileExtensionSeparator))
	if i < 0 || i == len(s)-1 {
		return FileNameWithoutExtension(s), "", false
	}
	return FileNameWithoutExtension(s[:i]), FileExtension(s[i+1:]), true
}

// ExtensionOf returns a file name's extension, or an empty extension if it has none.
func ExtensionOf(n FileName) FileExtension {
	_, ext, _ := SplitFileName(n)
	return ext
}

// HasExtension returns true iff the file name has a non-empty extension.
func HasExtension(n FileName) bool {
	_, _, ok := SplitFileName(n)
	return ok
}

// ChangeExtension replaces the extension of the file a path points to. An empty extension removes
// it along with its separator.
func ChangeExtension(p FilePath, ext FileExtension) FilePath {
	s := p.String()
	i := strings.LastIndexAny(s, anySeparator)
	dir, name := s[:i+1], s[i+1:]
	base, _, _ := SplitFileName(FileName(name))
	if ext == "" {
		return FilePath(dir + base.String())
	}
	return FilePath(dir + CombineFileName(base, ext).String())
}

// EnsureTrailingSeparator appends sep to path unless it already ends with it.
func EnsureTrailingSeparator(path string, sep DirectorySeparator) string {
	if strings.HasSuffix(path, string(sep)) {
		return path
	}
	return path + string(sep)
}

// IsRooted returns true iff path starts with a root for the separator's platform: a drive or a
// separator on Windows, a separator otherwise.
func IsRooted(path string, sep DirectorySeparator) bool {
	root, _, err := splitRoot(normalizeSeparators(path, sep), sep)
	return err == nil && root != ""
}

// FileURL returns the file URL pointing to an absolute path, e.g. "file:///C:/Users/foo/README.md"
// for "C:\Users\foo\README.md".
func FileURL(p AbsolutePath) *url.URL {
	s := strings.ReplaceAll(p.String(), string(platform.WindowsSeparator), "/")
	if !strings.HasPrefix(s, "/") {
		s = "/" + s
	}
	return &url.URL{Scheme: "file", Path: s}
}

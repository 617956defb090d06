// Package fspath teaches the Go type system about the different kinds of strings which make up a
// file-system path: directory and file names, extensions, relative paths and rooted paths.
//
// Each kind is a distinct string type. Values are created through explicit conversions (the As*
// functions, or plain Go conversions) which never validate their input: the types are a labeling
// discipline, callers assert what a string means. Combination functions consume typed values and
// produce new ones, joining them with an explicitly chosen separator rather than the host's.
package fspath

import "strings"

// Value is implemented by every typed path value.
type Value interface {
	String() string
}

// PathSegment is any fragment of a path which can be appended to an AbsolutePath: a name or a
// relative path.
type PathSegment interface {
	Value
	pathSegment()
}

// FilePathSegment is a path segment which ends with a file name.
type FilePathSegment interface {
	PathSegment
	filePathSegment()
}

// DirectoryPathSegment is a path segment which ends with a directory name.
type DirectoryPathSegment interface {
	PathSegment
	directoryPathSegment()
}

// FileNameSegment is a fragment of a file name, joined to others with a FileNameSegmentSeparator.
type FileNameSegment interface {
	Value
	fileNameSegment()
}

// DirectoryNameSegment is a fragment of a directory name.
type DirectoryNameSegment interface {
	PathSegment
	directoryNameSegment()
}

// AbsolutePath is a rooted path.
type AbsolutePath interface {
	Value
	absolutePath()
}

// RelativePath is an unrooted path, meant to be resolved against an AbsolutePath.
type RelativePath interface {
	PathSegment
	relativePath()
}

// Compare orders two values by their underlying string.
func Compare[V Value](a, b V) int {
	return strings.Compare(a.String(), b.String())
}

// GenericPathSegment is a path segment without further meaning.
type GenericPathSegment string

func (s GenericPathSegment) String() string { return string(s) }
func (GenericPathSegment) pathSegment()     {}

// DirectoryName is the name of a single directory.
type DirectoryName string

func (n DirectoryName) String() string      { return string(n) }
func (DirectoryName) pathSegment()          {}
func (DirectoryName) directoryPathSegment() {}
func (DirectoryName) directoryNameSegment() {}

// GenericDirectoryNameSegment is the result of combining directory name segments. Narrow it with
// DirectoryName once complete.
type GenericDirectoryNameSegment string

func (s GenericDirectoryNameSegment) String() string      { return string(s) }
func (GenericDirectoryNameSegment) pathSegment()          {}
func (GenericDirectoryNameSegment) directoryPathSegment() {}
func (GenericDirectoryNameSegment) directoryNameSegment() {}

// DirectoryName asserts that the segment is a complete directory name.
func (s GenericDirectoryNameSegment) DirectoryName() DirectoryName {
	return DirectoryName(s)
}

// FileName is a file name, including its extension if any.
type FileName string

func (n FileName) String() string { return string(n) }
func (FileName) pathSegment()     {}
func (FileName) filePathSegment() {}
func (FileName) fileNameSegment() {}

// FileNameWithoutExtension is the part of a file name before its extension separator.
type FileNameWithoutExtension string

func (n FileNameWithoutExtension) String() string { return string(n) }
func (FileNameWithoutExtension) pathSegment()     {}
func (FileNameWithoutExtension) filePathSegment() {}
func (FileNameWithoutExtension) fileNameSegment() {}

// FileExtension is the part of a file name after its extension separator, e.g. "txt".
type FileExtension string

func (e FileExtension) String() string { return string(e) }
func (FileExtension) fileNameSegment() {}

// GenericFileNameSegment is the result of combining file name segments. Narrow it with FileName or
// FileNameWithoutExtension once complete.
type GenericFileNameSegment string

func (s GenericFileNameSegment) String() string { return string(s) }
func (GenericFileNameSegment) pathSegment()     {}
func (GenericFileNameSegment) filePathSegment() {}
func (GenericFileNameSegment) fileNameSegment() {}

// FileName asserts that the segment is a complete file name. Nothing is checked.
func (s GenericFileNameSegment) FileName() FileName {
	return FileName(s)
}

// FileNameWithoutExtension asserts that the segment is a file name without extension. Embedded
// extension separators are not checked.
func (s GenericFileNameSegment) FileNameWithoutExtension() FileNameWithoutExtension {
	return FileNameWithoutExtension(s)
}

// DirectoryRelativePath is an unrooted path to a directory.
type DirectoryRelativePath string

func (p DirectoryRelativePath) String() string      { return string(p) }
func (DirectoryRelativePath) pathSegment()          {}
func (DirectoryRelativePath) directoryPathSegment() {}
func (DirectoryRelativePath) relativePath()         {}

// FileRelativePath is an unrooted path to a file.
type FileRelativePath string

func (p FileRelativePath) String() string { return string(p) }
func (FileRelativePath) pathSegment()     {}
func (FileRelativePath) filePathSegment() {}
func (FileRelativePath) relativePath()    {}

// GenericAbsolutePath is a rooted path which may point to either a file or a directory.
type GenericAbsolutePath string

func (p GenericAbsolutePath) String() string { return string(p) }
func (GenericAbsolutePath) absolutePath()    {}

// FilePath asserts that the path points to a file.
func (p GenericAbsolutePath) FilePath() FilePath {
	return FilePath(p)
}

// DirectoryPath asserts that the path points to a directory.
func (p GenericAbsolutePath) DirectoryPath() DirectoryPath {
	return DirectoryPath(p)
}

// DirectoryPath is a rooted path to a directory.
type DirectoryPath string

func (p DirectoryPath) String() string { return string(p) }
func (DirectoryPath) absolutePath()    {}

// FilePath is a rooted path to a file.
type FilePath string

func (p FilePath) String() string { return string(p) }
func (FilePath) absolutePath()    {}

// The following functions lift a string into a typed value. They exist to make it explicit at call
// sites that the string's meaning is being asserted. None of them validate their input; see
// Validate for opt-in checks.

func AsAbsolutePath(s string) GenericAbsolutePath            { return GenericAbsolutePath(s) }
func AsDirectoryPath(s string) DirectoryPath                 { return DirectoryPath(s) }
func AsFilePath(s string) FilePath                           { return FilePath(s) }
func AsDirectoryName(s string) DirectoryName                 { return DirectoryName(s) }
func AsFileName(s string) FileName                           { return FileName(s) }
func AsFileNameSegment(s string) GenericFileNameSegment      { return GenericFileNameSegment(s) }
func AsFileExtension(s string) FileExtension                 { return FileExtension(s) }
func AsDirectoryRelativePath(s string) DirectoryRelativePath { return DirectoryRelativePath(s) }
func AsFileRelativePath(s string) FileRelativePath           { return FileRelativePath(s) }
func AsPathSegment(s string) GenericPathSegment              { return GenericPathSegment(s) }

func AsDirectoryNameSegment(s string) GenericDirectoryNameSegment {
	return GenericDirectoryNameSegment(s)
}

func AsFileNameWithoutExtension(s string) FileNameWithoutExtension {
	return FileNameWithoutExtension(s)
}

package fspath

import "github.com/mtth/typedpath/platform"

// DirectorySeparator delimits directory names in a path.
type DirectorySeparator = platform.Separator

// FileNameSegmentSeparator joins file name segments.
type FileNameSegmentSeparator string

func (s FileNameSegmentSeparator) String() string { return string(s) }

// FileExtensionSeparator separates a file name from its extension. There may be several in a file
// name; only the last one delimits the extension.
type FileExtensionSeparator string

func (s FileExtensionSeparator) String() string { return string(s) }

// DirectoryNameSegmentSeparator joins directory name segments into a single directory name.
type DirectoryNameSegmentSeparator string

func (s DirectoryNameSegmentSeparator) String() string { return string(s) }

const (
	DefaultFileNameSegmentSeparator      FileNameSegmentSeparator      = "."
	DefaultFileExtensionSeparator        FileExtensionSeparator        = "."
	DefaultDirectoryNameSegmentSeparator DirectoryNameSegmentSeparator = "."
)

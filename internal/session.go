package typedpath

import (
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"maps"
	"reflect"
	"regexp"
	"slices"

	"github.com/iancoleman/strcase"
	"github.com/mtth/typedpath/describe"
	"github.com/mtth/typedpath/fspath"
	"github.com/mtth/typedpath/fsys"
	"github.com/mtth/typedpath/internal/except"
	"github.com/mtth/typedpath/platform"
)

var (
	errUnknownKind     = errors.New("unknown value kind")
	errInvalidArgument = errors.New("invalid argument")
)

// Session runs CLI commands against a configuration. Path arithmetic uses the configured
// platform's separator, while paths handed to the filesystem are resolved for the host.
type Session struct {
	fs       *fsys.FS
	combiner *fspath.Combiner
	host     *fspath.Combiner
}

// NewSession returns a session for the configuration. Filesystem options are applied after those
// derived from the configuration.
func NewSession(cfg *Config, opts ...fsys.Option) (*Session, error) {
	sep, err := cfg.Separator()
	if err != nil {
		return nil, err
	}
	fs := cfg.FileSystem(opts...)
	host := fs.Combiner(platform.Default)
	if cfg.WorkingDirectory != "" && !fspath.IsRooted(cfg.WorkingDirectory, platform.Default) {
		// Written for another platform, unusable as a host anchor.
		host = fspath.NewCombiner(platform.Default)
	}
	return &Session{fs: fs, combiner: fs.Combiner(sep), host: host}, nil
}

// Separator returns the directory separator used by the session.
func (s *Session) Separator() platform.Separator {
	return s.combiner.Separator()
}

// Join joins segments without resolving them.
func (s *Session) Join(segments ...string) string {
	return s.combiner.Join(segments...)
}

// Combine appends segments to base and resolves the result. Unrooted bases are qualified with the
// configured working directory.
func (s *Session) Combine(base string, segments ...string) (fspath.GenericAbsolutePath, error) {
	segs := make([]fspath.PathSegment, len(segments))
	for i, seg := range segments {
		segs[i] = fspath.AsPathSegment(seg)
	}
	p, err := s.combiner.Combine(fspath.AsAbsolutePath(base), segs...)
	if err != nil {
		return "", err
	}
	slog.Debug("Combined path.", dataAttrs(slog.String("base", base), slog.Any("segments", segments)))
	return p, nil
}

// Relative returns the relative path from source to destination.
func (s *Session) Relative(source, destination string) (fspath.FileRelativePath, error) {
	return s.combiner.Relative(fspath.AsFilePath(source), fspath.AsFilePath(destination))
}

// Resolve resolves a relative path against base.
func (s *Session) Resolve(base, relative string) (fspath.GenericAbsolutePath, error) {
	return s.combiner.Resolve(fspath.AsAbsolutePath(base), fspath.AsPathSegment(relative))
}

// ListOptions configures List.
type ListOptions struct {
	// Glob pattern matched against entry names, ignored if Regexp is set.
	Pattern fspath.SearchPattern
	// Regular expression matched against entry names.
	Regexp      string
	Directories bool
	Recursive   bool
}

// List enumerates entries under a directory. The directory is resolved with the host's separator,
// regardless of the configured platform.
func (s *Session) List(dir string, opts ListOptions) (iter.Seq2[string, error], error) {
	p, err := s.hostPath(dir)
	if err != nil {
		return nil, err
	}
	dp := fspath.AsDirectoryPath(p.String())
	if !s.fs.DirectoryExists(dp) {
		return nil, fmt.Errorf("%w: %v is not a directory", errInvalidArgument, dir)
	}
	pattern := opts.Pattern
	if pattern == "" {
		pattern = fspath.SearchAll
	}
	if opts.Regexp != "" {
		re, err := regexp.Compile(opts.Regexp)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errInvalidArgument, err)
		}
		if opts.Directories {
			return stringSeq(s.fs.DirectoriesMatching(dp, re, opts.Recursive)), nil
		}
		return stringSeq(s.fs.FilesMatching(dp, re, opts.Recursive)), nil
	}
	if _, err := pattern.Compile(); err != nil {
		return nil, err
	}
	if opts.Directories {
		return stringSeq(s.fs.Directories(dp, pattern, opts.Recursive)), nil
	}
	return stringSeq(s.fs.Files(dp, pattern, opts.Recursive)), nil
}

// Delete removes the entry at the path, resolved with the host's separator.
func (s *Session) Delete(path string, recursive bool) error {
	p, err := s.hostPath(path)
	if err != nil {
		return err
	}
	return s.fs.Delete(p, recursive)
}

func (s *Session) hostPath(path string) (fspath.GenericAbsolutePath, error) {
	p, err := s.host.Combine(fspath.AsAbsolutePath(path))
	if err != nil {
		return "", fmt.Errorf("%w: %v", errInvalidArgument, err)
	}
	return p, nil
}

func stringSeq[V fspath.Value](seq iter.Seq2[V, error]) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for v, err := range seq {
			if !yield(v.String(), err) {
				return
			}
		}
	}
}

// Detect returns the platform a path was written for.
func Detect(path string) (platform.Platform, error) {
	return platform.Detect(path)
}

// kinds maps the kebab-cased names of typed values to their constructors.
var kinds = map[string]func(string) fspath.Value{}

func registerKind[V fspath.Value](fn func(string) V) {
	name := strcase.ToKebab(describe.Default.TypeName(reflect.TypeFor[V]()))
	_, ok := kinds[name]
	except.Must(!ok, "duplicate kind: %s", name)
	kinds[name] = func(s string) fspath.Value { return fn(s) }
}

func init() {
	registerKind(fspath.AsAbsolutePath)
	registerKind(fspath.AsDirectoryPath)
	registerKind(fspath.AsFilePath)
	registerKind(fspath.AsDirectoryName)
	registerKind(fspath.AsDirectoryNameSegment)
	registerKind(fspath.AsFileName)
	registerKind(fspath.AsFileNameSegment)
	registerKind(fspath.AsFileNameWithoutExtension)
	registerKind(fspath.AsFileExtension)
	registerKind(fspath.AsDirectoryRelativePath)
	registerKind(fspath.AsFileRelativePath)
	registerKind(fspath.AsPathSegment)
	registerKind(fspath.AsSearchPattern)
}

// Kinds returns the sorted names accepted by Describe.
func Kinds() []string {
	return slices.Sorted(maps.Keys(kinds))
}

// Describe validates and labels a value of the given kind, e.g. "file-path".
func Describe(kind, value string, humanize bool) (string, error) {
	fn, ok := kinds[kind]
	if !ok {
		return "", fmt.Errorf("%w: %q", errUnknownKind, kind)
	}
	v := fn(value)
	if err := fspath.Validate(v); err != nil {
		return "", fmt.Errorf("%w: %v", errInvalidArgument, err)
	}
	return describe.Describer{Humanize: humanize}.Describe(v), nil
}

package fsys

import (
	"iter"
	"regexp"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mtth/typedpath/fspath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect[P any](t *testing.T, seq iter.Seq2[P, error]) []P {
	t.Helper()
	var vals []P
	for val, err := range seq {
		require.NoError(t, err)
		vals = append(vals, val)
	}
	return vals
}

var tree = []string{
	"/root/a.txt",
	"/root/b.md",
	"/root/one/c.txt",
	"/root/one/two/d.txt",
	"/root/one/two/three/e.txt",
	"/root/node_modules/pkg/f.txt",
}

func TestFiles(t *testing.T) {
	for key, tc := range map[string]struct {
		opts      []Option
		pattern   fspath.SearchPattern
		recursive bool
		want      []fspath.FilePath
	}{
		"top level": {
			pattern: fspath.SearchAll,
			want:    []fspath.FilePath{"/root/a.txt", "/root/b.md"},
		},
		"top level extension": {
			pattern: fspath.AllFilesWithFileExtension("txt"),
			want:    []fspath.FilePath{"/root/a.txt"},
		},
		"recursive": {
			pattern:   fspath.AllFilesWithFileExtension("txt"),
			recursive: true,
			want: []fspath.FilePath{
				"/root/a.txt",
				"/root/node_modules/pkg/f.txt",
				"/root/one/c.txt",
				"/root/one/two/d.txt",
				"/root/one/two/three/e.txt",
			},
		},
		"ignored folders": {
			opts:      []Option{WithIgnoredFolders("node_modules")},
			pattern:   fspath.SearchAll,
			recursive: true,
			want: []fspath.FilePath{
				"/root/a.txt",
				"/root/b.md",
				"/root/one/c.txt",
				"/root/one/two/d.txt",
				"/root/one/two/three/e.txt",
			},
		},
		"max depth": {
			opts:      []Option{WithMaxDepth(2), WithIgnoredFolders("node_modules")},
			pattern:   fspath.SearchAll,
			recursive: true,
			want:      []fspath.FilePath{"/root/a.txt", "/root/b.md", "/root/one/c.txt"},
		},
		"no match": {
			pattern:   "*.go",
			recursive: true,
		},
	} {
		t.Run(key, func(t *testing.T) {
			f := New(append([]Option{WithFs(newMemFS(t, tree...))}, tc.opts...)...)
			got := collect(t, f.Files("/root", tc.pattern, tc.recursive))
			assert.Empty(t, cmp.Diff(tc.want, got))
		})
	}
}

func TestDirectories(t *testing.T) {
	f := New(WithFs(newMemFS(t, tree...)), WithIgnoredFolders("node_modules"))

	got := collect(t, f.Directories("/root", fspath.SearchAll, false))
	assert.Equal(t, []fspath.DirectoryPath{"/root/one"}, got)

	got = collect(t, f.Directories("/root/", fspath.SearchAll, true))
	assert.Equal(t, []fspath.DirectoryPath{"/root/one", "/root/one/two", "/root/one/two/three"}, got)

	got = collect(t, f.Directories("/root", "t*", true))
	assert.Equal(t, []fspath.DirectoryPath{"/root/one/two", "/root/one/two/three"}, got)
}

func TestMatching(t *testing.T) {
	f := New(WithFs(newMemFS(t, tree...)), WithIgnoredFolders("node_modules"))

	files := collect(t, f.FilesMatching("/root", regexp.MustCompile(`^[a-c]\.`), true))
	assert.Equal(t, []fspath.FilePath{"/root/a.txt", "/root/b.md", "/root/one/c.txt"}, files)

	dirs := collect(t, f.DirectoriesMatching("/root", regexp.MustCompile(`e$`), true))
	assert.Equal(t, []fspath.DirectoryPath{"/root/one", "/root/one/two/three"}, dirs)
}

func TestEnumerationErrors(t *testing.T) {
	f := New(WithFs(newMemFS(t, tree...)))

	t.Run("missing directory", func(t *testing.T) {
		var errs []error
		for _, err := range f.Files("/missing", fspath.SearchAll, true) {
			errs = append(errs, err)
		}
		require.Len(t, errs, 1)
		assert.Error(t, errs[0])
	})

	t.Run("not a directory", func(t *testing.T) {
		for _, err := range f.Files("/root/a.txt", fspath.SearchAll, false) {
			require.ErrorIs(t, err, ErrNotDirectory)
		}
	})

	t.Run("invalid pattern", func(t *testing.T) {
		for _, err := range f.Directories("/root", "sub/*", false) {
			require.ErrorIs(t, err, fspath.ErrInvalidSearchPattern)
		}
	})
}

func TestEnumerationLaziness(t *testing.T) {
	mfs := newMemFS(t, tree...)
	f := New(WithFs(mfs))
	seq := f.Files("/root", fspath.SearchAll, true)

	var first []fspath.FilePath
	for fp, err := range seq {
		require.NoError(t, err)
		first = append(first, fp)
		if len(first) == 2 {
			break
		}
	}
	assert.Equal(t, []fspath.FilePath{"/root/a.txt", "/root/b.md"}, first)

	require.NoError(t, mfs.Remove("/root/a.txt"))
	got := collect(t, seq)
	assert.NotContains(t, got, fspath.FilePath("/root/a.txt"))
	assert.Contains(t, got, fspath.FilePath("/root/b.md"))
}

package fspath

import (
	"errors"
	"testing"

	"github.com/mtth/typedpath/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexicalCanonicalizer(t *testing.T) {
	canon := LexicalCanonicalizer{WorkingDirectory: func() (string, error) { return "/home/user", nil }}

	for key, tc := range map[string]struct {
		path string
		sep  DirectorySeparator
		want string
	}{
		"posix clean":        {path: "/a/b/c", sep: "/", want: "/a/b/c"},
		"posix parent":       {path: "/a/b/../c", sep: "/", want: "/a/c"},
		"posix current":      {path: "/a/./b/.", sep: "/", want: "/a/b"},
		"posix above root":   {path: "/../../a", sep: "/", want: "/a"},
		"posix root":         {path: "/", sep: "/", want: "/"},
		"posix trailing":     {path: "/a/b/", sep: "/", want: "/a/b"},
		"posix unrooted":     {path: "docs/../temp.txt", sep: "/", want: "/home/user/temp.txt"},
		"posix drive-like":   {path: `C:\Temp\Images`, sep: "/", want: "/home/user/C:/Temp/Images"},
		"windows drive":      {path: `C:\Temp1\Temp2\Temp3\..\..\Temp4\temp5.txt`, sep: `\`, want: `C:\Temp1\Temp4\temp5.txt`},
		"windows drive root": {path: `C:\`, sep: `\`, want: `C:\`},
		"windows above root": {path: `C:\..\a`, sep: `\`, want: `C:\a`},
		"windows mixed":      {path: `C:/a/b\..\c`, sep: `\`, want: `C:\a\c`},
		"windows rooted":     {path: `\a\.\b`, sep: `\`, want: `\a\b`},
		"windows unrooted":   {path: `a\b`, sep: `\`, want: `\home\user\a\b`},
	} {
		t.Run(key, func(t *testing.T) {
			got, err := canon.Canonicalize(tc.path, tc.sep)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	for key, tc := range map[string]struct {
		path string
		sep  DirectorySeparator
	}{
		"drive relative": {path: `C:temp`, sep: `\`},
		"bare drive":     {path: `C:`, sep: `\`},
		"unc":            {path: `\\server\share`, sep: `\`},
		"uri":            {path: "file:///C:/Users/foo", sep: `\`},
		"nul byte":       {path: "/a\x00b", sep: "/"},
	} {
		t.Run(key, func(t *testing.T) {
			_, err := canon.Canonicalize(tc.path, tc.sep)
			require.ErrorIs(t, err, ErrCanonicalization)
		})
	}

	t.Run("working directory failure", func(t *testing.T) {
		failing := LexicalCanonicalizer{WorkingDirectory: func() (string, error) {
			return "", errors.New("boom")
		}}
		_, err := failing.Canonicalize("temp.txt", platform.NonWindowsSeparator)
		require.ErrorIs(t, err, ErrCanonicalization)
		assert.ErrorContains(t, err, "boom")
	})

	t.Run("unrooted working directory", func(t *testing.T) {
		relative := LexicalCanonicalizer{WorkingDirectory: func() (string, error) { return "home", nil }}
		_, err := relative.Canonicalize("temp.txt", platform.NonWindowsSeparator)
		require.ErrorIs(t, err, ErrCanonicalization)
	})

	t.Run("default working directory", func(t *testing.T) {
		got, err := LexicalCanonicalizer{}.Canonicalize("/a/../b", platform.NonWindowsSeparator)
		require.NoError(t, err)
		assert.Equal(t, "/b", got)
	})
}

func TestComponents(t *testing.T) {
	root, names, err := components(`C:\a\b`, platform.WindowsSeparator)
	require.NoError(t, err)
	assert.Equal(t, `C:\`, root)
	assert.Equal(t, []string{"a", "b"}, names)

	root, names, err = components("/", platform.NonWindowsSeparator)
	require.NoError(t, err)
	assert.Equal(t, "/", root)
	assert.Empty(t, names)
}

package typedpath

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/google/go-cmp/cmp"
	"github.com/mtth/typedpath/internal/effect"
	"github.com/mtth/typedpath/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func platformRef(p platform.Platform) *platform.Platform {
	return &p
}

func TestReadConfig(t *testing.T) {
	for key, tc := range map[string]struct {
		path string
		want *Config
	}{
		"full": {
			path: "testdata/.typedpath.yaml",
			want: &Config{
				Platform:         platformRef(platform.Windows),
				WorkingDirectory: `C:\Users\User1`,
				Search:           SearchConfig{MaxDepth: 2, IgnoredFolders: []string{"node_modules", ".git"}},
			},
		},
		"directory": {
			path: "testdata/nested",
			want: &Config{
				Platform:         platformRef(platform.NonWindows),
				WorkingDirectory: "/home/user",
				Search:           SearchConfig{IgnoredFolders: []string{"node_modules"}},
			},
		},
		"defaults": {
			path: "testdata/minimal.yaml",
			want: &Config{Search: SearchConfig{MaxDepth: 3, IgnoredFolders: []string{"node_modules"}}},
		},
	} {
		t.Run(key, func(t *testing.T) {
			got, err := ReadConfig(tc.path)
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tc.want, got))
		})
	}

	for _, tc := range []string{
		"testdata/unknown-field.yaml",
		"testdata/unknown-platform.yaml",
		"testdata/unrooted.yaml",
	} {
		t.Run(tc, func(t *testing.T) {
			got, err := ReadConfig(tc)
			assert.Nil(t, got)
			require.ErrorIs(t, err, errInvalidConfig)
		})
	}

	for key, tc := range map[string]string{
		"folder": "./non/existent/path",
		"file":   ".",
	} {
		t.Run(fmt.Sprintf("missing %s", key), func(t *testing.T) {
			got, err := ReadConfig(tc)
			assert.Nil(t, got)
			require.ErrorIs(t, err, errMissingConfig)
		})
	}
}

// isolateXDG points XDG configuration lookups to a fresh directory, which is returned.
func isolateXDG(t *testing.T) string {
	t.Helper()
	t.Cleanup(xdg.Reload)
	dp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dp)
	t.Setenv("XDG_CONFIG_DIRS", dp)
	xdg.Reload()
	return dp
}

func TestFindConfig(t *testing.T) {
	t.Run("working directory", func(t *testing.T) {
		isolateXDG(t)
		cfg, err := FindConfig("testdata")
		require.NoError(t, err)
		assert.Equal(t, platformRef(platform.Windows), cfg.Platform)
	})

	t.Run("xdg", func(t *testing.T) {
		dp := isolateXDG(t)
		fp := filepath.Join(dp, xdgConfigName)
		require.NoError(t, os.MkdirAll(filepath.Dir(fp), 0o755))
		require.NoError(t, os.WriteFile(fp, []byte("search:\n  maxDepth: 7\n"), 0o644))

		cfg, err := FindConfig(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, uint8(7), cfg.Search.MaxDepth)
	})

	t.Run("missing", func(t *testing.T) {
		isolateXDG(t)
		_, err := FindConfig(t.TempDir())
		require.ErrorIs(t, err, errMissingConfig)
	})
}

func TestLoadConfig(t *testing.T) {
	isolateXDG(t)

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = LoadConfig("testdata/minimal.yaml")
	require.NoError(t, err)
	assert.Equal(t, uint8(3), cfg.Search.MaxDepth)

	_, err = LoadConfig("testdata/unrooted.yaml")
	require.ErrorIs(t, err, errInvalidConfig)

	t.Run("working directory", func(t *testing.T) {
		defer effect.Chdir("testdata/nested")()
		cfg, err := LoadConfig("")
		require.NoError(t, err)
		assert.Equal(t, "/home/user", cfg.WorkingDirectory)
	})
}

func TestConfigSeparator(t *testing.T) {
	sep, err := DefaultConfig().Separator()
	require.NoError(t, err)
	assert.Equal(t, platform.Default, sep)

	sep, err = (&Config{Platform: platformRef(platform.Windows)}).Separator()
	require.NoError(t, err)
	assert.Equal(t, platform.WindowsSeparator, sep)

	_, err = (&Config{Platform: platformRef(platform.Platform(9))}).Separator()
	require.ErrorIs(t, err, platform.ErrUnsupportedPlatform)
}

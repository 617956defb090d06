// Package typedpath implements the typedpath CLI on top of the library packages.
package typedpath

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/mtth/typedpath/fspath"
	"github.com/mtth/typedpath/fsys"
	"github.com/mtth/typedpath/platform"
	"gopkg.in/yaml.v3"
)

const (
	defaultConfigName = ".typedpath.yaml"
	xdgConfigName     = "typedpath/config.yaml"
)

var (
	errMissingConfig = errors.New("missing configuration")
	errInvalidConfig = errors.New("invalid configuration")
)

// Config holds the CLI's settings.
type Config struct {
	// Platform whose separator is used when combining paths. Defaults to the current one.
	Platform *platform.Platform `yaml:"platform"`
	// WorkingDirectory against which unrooted paths are qualified. Defaults to the process'.
	WorkingDirectory string       `yaml:"workingDirectory"`
	Search           SearchConfig `yaml:"search"`
}

// SearchConfig controls recursive enumerations.
type SearchConfig struct {
	MaxDepth       uint8    `yaml:"maxDepth"`
	IgnoredFolders []string `yaml:"ignoredFolders"`
}

// DefaultConfig returns the configuration used when no file is found.
func DefaultConfig() *Config {
	return &Config{Search: SearchConfig{IgnoredFolders: []string{"node_modules"}}}
}

// LoadConfig reads the configuration at the path if it is not empty, otherwise looks for one in the
// working directory and XDG configuration directories. The default configuration is returned when
// none is found.
func LoadConfig(fp string) (*Config, error) {
	if fp != "" {
		return ReadConfig(fp)
	}
	cfg, err := FindConfig(".")
	if errors.Is(err, errMissingConfig) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// FindConfig looks for a configuration file in the directory, then in XDG configuration
// directories.
func FindConfig(dp string) (*Config, error) {
	fp := filepath.Join(dp, defaultConfigName)
	if _, err := os.Stat(fp); err == nil {
		return ReadConfig(fp)
	}
	fp, err := xdg.SearchConfigFile(xdgConfigName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errMissingConfig, err)
	}
	return ReadConfig(fp)
}

// ReadConfig reads a configuration file. If the path points to a directory, the default file name
// is used.
func ReadConfig(fp string) (*Config, error) {
	info, err := os.Stat(fp)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errMissingConfig, err)
	}
	if info.IsDir() {
		fp = filepath.Join(fp, defaultConfigName)
	}
	data, err := os.ReadFile(fp)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errMissingConfig, err)
	}

	cfg := DefaultConfig()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidConfig, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	sep, err := c.Separator()
	if err != nil {
		return fmt.Errorf("%w: %v", errInvalidConfig, err)
	}
	if c.WorkingDirectory != "" && !fspath.IsRooted(c.WorkingDirectory, sep) {
		return fmt.Errorf("%w: working directory %q is not rooted", errInvalidConfig, c.WorkingDirectory)
	}
	return nil
}

// Separator returns the directory separator of the configured platform.
func (c *Config) Separator() (platform.Separator, error) {
	if c.Platform == nil {
		return platform.Default, nil
	}
	return platform.DefaultSeparator(*c.Platform)
}

// FileSystem returns a filesystem honoring the configuration's search settings.
func (c *Config) FileSystem(opts ...fsys.Option) *fsys.FS {
	all := []fsys.Option{
		fsys.WithMaxDepth(c.Search.MaxDepth),
		fsys.WithIgnoredFolders(c.Search.IgnoredFolders...),
	}
	if c.WorkingDirectory != "" {
		all = append(all, fsys.WithWorkingDirectory(fspath.AsDirectoryPath(c.WorkingDirectory)))
	}
	return fsys.New(append(all, opts...)...)
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"

	"github.com/BurntSushi/toml"
)

// FileName is the project configuration file looked up from the working
// directory towards the filesystem root.
const FileName = ".solattr.toml"

var (
	Formats     = []string{"text", "debug", "yaml", "msgpack"}
	ColorModes  = []string{"auto", "on", "off"}
	errNoFormat = errors.New("output format must not be empty")
)

type Config struct {
	Output OutputConfig `toml:"output"`
	Log    LogConfig    `toml:"log"`
	Parse  ParseConfig  `toml:"parse"`

	// Path is the file the configuration was read from, empty for defaults.
	Path string `toml:"-"`
}

type OutputConfig struct {
	Format string `toml:"format"`
	Color  string `toml:"color"`
}

type LogConfig struct {
	Verbosity int `toml:"verbosity"`
}

type ParseConfig struct {
	Jobs int `toml:"jobs"`
}

func Default() Config {
	return Config{
		Output: OutputConfig{Format: "text", Color: "auto"},
		Parse:  ParseConfig{Jobs: runtime.GOMAXPROCS(0)},
	}
}

// Find walks up from startDir looking for FileName.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Discover loads the nearest configuration file, or the defaults when there
// is none.
func Discover(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := Decode(string(data))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

// Decode parses TOML text over the defaults and validates the result.
func Decode(data string) (Config, error) {
	cfg := Default()
	meta, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse TOML: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("unknown key %q", undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Output.Format == "" {
		return errNoFormat
	}
	if !slices.Contains(Formats, c.Output.Format) {
		return fmt.Errorf("unknown output format %q (want one of %v)", c.Output.Format, Formats)
	}
	if !slices.Contains(ColorModes, c.Output.Color) {
		return fmt.Errorf("unknown color mode %q (want one of %v)", c.Output.Color, ColorModes)
	}
	if c.Log.Verbosity < 0 {
		return fmt.Errorf("[log].verbosity must not be negative, got %d", c.Log.Verbosity)
	}
	if c.Parse.Jobs < 1 {
		return fmt.Errorf("[parse].jobs must be at least 1, got %d", c.Parse.Jobs)
	}
	return nil
}

// Package config loads propctl.toml, the optional project file that sets
// logging and invariant-check defaults for propctl.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"bindprop/internal/logging"
)

// FileName is the name searched for by Find.
const FileName = "propctl.toml"

// Config is the decoded propctl.toml.
type Config struct {
	Log   LogConfig   `toml:"log"`
	Check CheckConfig `toml:"check"`
}

// LogConfig is the [log] section.
type LogConfig struct {
	Level     string `toml:"level"`
	Format    string `toml:"format"`
	Mode      string `toml:"mode"`
	Detailed  bool   `toml:"detailed"`
	Timestamp bool   `toml:"timestamp"`
	Color     string `toml:"color"`
	Output    string `toml:"output"`
	RingSize  int    `toml:"ring_size"`
}

// CheckConfig is the [check] section.
type CheckConfig struct {
	Jobs   int      `toml:"jobs"`
	Suites []string `toml:"suites"`
}

// Default returns the settings used when no propctl.toml is found.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level:    "print",
			Format:   "text",
			Mode:     "stream",
			Color:    "auto",
			RingSize: 256,
		},
	}
}

// Find walks up from startDir to locate propctl.toml.
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

// Load decodes path over Default. Keys the file sets but Config does not
// know are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if meta.IsDefined("log", "output") && cfg.Log.Output != "" && cfg.Log.Output != "-" && !filepath.IsAbs(cfg.Log.Output) {
		cfg.Log.Output = filepath.Join(filepath.Dir(path), cfg.Log.Output)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Discover finds and loads propctl.toml above startDir. Without one it
// returns Default and an empty path.
func Discover(startDir string) (Config, string, error) {
	path, ok, err := Find(startDir)
	if err != nil || !ok {
		return Default(), "", err
	}
	cfg, err := Load(path)
	return cfg, path, err
}

// Validate checks every enumerated setting.
func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("[log].level: %w", err)
	}
	if _, err := logging.ParseFormat(c.Log.Format); err != nil {
		return fmt.Errorf("[log].format: %w", err)
	}
	if _, err := logging.ParseMode(c.Log.Mode); err != nil {
		return fmt.Errorf("[log].mode: %w", err)
	}
	if _, err := ParseColor(c.Log.Color); err != nil {
		return fmt.Errorf("[log].color: %w", err)
	}
	if c.Log.RingSize < 0 {
		return fmt.Errorf("[log].ring_size must not be negative, got %d", c.Log.RingSize)
	}
	if c.Check.Jobs < 0 {
		return fmt.Errorf("[check].jobs must not be negative, got %d", c.Check.Jobs)
	}
	return nil
}

// Write encodes c as TOML.
func (c Config) Write(w io.Writer) error {
	enc := toml.NewEncoder(w)
	enc.Indent = ""
	return enc.Encode(c)
}

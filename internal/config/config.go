// Package config loads trisum CLI configuration.
//
// Precedence (highest to lowest): flags > TRISUM_* env vars > config file > defaults.
// Config files are trisum.yaml, trisum.yml or trisum.toml in the working
// directory, or any path passed with --config.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/trisum/internal/logging"
	"github.com/katalvlaran/trisum/pathsum"
)

const (
	EnvPrefix = "TRISUM_"

	OutputText = "text"
	OutputJSON = "json"
)

// candidate file names searched in the working directory, in order.
var configNames = []string{"trisum.yaml", "trisum.yml", "trisum.toml"}

// Config holds all CLI configuration options.
type Config struct {
	MemoryMode string `koanf:"memory_mode"`
	ShowPath   bool   `koanf:"show_path"`
	Output     string `koanf:"output"`
	Workers    int    `koanf:"workers"`
	LogLevel   string `koanf:"log_level"`
	Verbose    bool   `koanf:"verbose"`

	// File is the config file that was loaded, if any.
	File string `koanf:"-"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"memory_mode": pathsum.InPlace.String(),
		"show_path":   false,
		"output":      OutputText,
		"workers":     runtime.NumCPU(),
		"log_level":   "",
		"verbose":     false,
	}
}

// findConfigFile returns explicit if set, else the first candidate present in cwd.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range configNames {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// Load builds a Config from defaults, the config file, env vars and the
// flags that were explicitly set, then validates it.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file (YAML through koanf, TOML through BurntSushi/toml)
	used := findConfigFile(cfgFile)
	if used != "" {
		if err := loadFile(k, used); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	// 3. Environment: TRISUM_MEMORY_MODE -> memory_mode
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags, only those explicitly set
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed || f.Name == "config" {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.File = used

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadFile(k *koanf.Koanf, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		m := map[string]interface{}{}
		if _, err := toml.DecodeFile(path, &m); err != nil {
			return err
		}
		return k.Load(confmap.Provider(m, "."), nil)
	default:
		return k.Load(file.Provider(path), yaml.Parser())
	}
}

// Validate rejects unknown modes, outputs and log levels, and non-positive worker counts.
func (c *Config) Validate() error {
	mode, err := pathsum.ParseMemoryMode(c.MemoryMode)
	if err != nil {
		return fmt.Errorf("invalid memory_mode: %w", err)
	}
	if c.ShowPath && mode == pathsum.Rolling {
		return fmt.Errorf("invalid config: show_path: %w", pathsum.ErrPathNeedsTable)
	}
	switch c.Output {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("invalid output %q: want %s or %s", c.Output, OutputText, OutputJSON)
	}
	if c.Workers < 1 {
		return fmt.Errorf("invalid workers %d: must be >= 1", c.Workers)
	}
	if c.LogLevel != "" {
		if _, ok := logging.ParseLevel(c.LogLevel); !ok {
			return fmt.Errorf("invalid log_level %q", c.LogLevel)
		}
	}
	return nil
}

// PathSumOptions translates the config into calculator options.
// Must be called on a validated Config.
func (c *Config) PathSumOptions() []pathsum.Option {
	mode, _ := pathsum.ParseMemoryMode(c.MemoryMode)
	opts := []pathsum.Option{pathsum.WithMemoryMode(mode)}
	if c.ShowPath {
		opts = append(opts, pathsum.WithReturnPath())
	}
	return opts
}

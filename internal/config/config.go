package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the working directory.
const FileName = "pokerxl.yaml"

// EnvPrefix prefixes environment overrides, e.g. POKERXL_INPUT_PATH.
const EnvPrefix = "POKERXL"

// Keys shared by the YAML file, flags and environment variables.
const (
	KeyInputPath  = "input.path"
	KeyOutputPath = "output.path"
	KeyLogLevel   = "log.level"
	KeyLogFormat  = "log.format"
)

// Config represents the top-level pokerxl.yaml configuration.
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

// InputConfig locates the makeup spreadsheet.
type InputConfig struct {
	Path string `yaml:"path"`
}

// OutputConfig locates the JSON document.
type OutputConfig struct {
	Path string `yaml:"path"`
}

// LogConfig controls logrus output.
type LogConfig struct {
	Level  string `yaml:"level"`  // logrus level name
	Format string `yaml:"format"` // "text" or "json"
}

// Load reads a pokerxl.yaml file from disk. Fields missing from the file keep
// their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault loads path, falling back to defaults when the file does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config matching the spreadsheet and dashboard defaults.
func Default() *Config {
	return &Config{
		Input: InputConfig{
			Path: "Planilha1.xlsx",
		},
		Output: OutputConfig{
			Path: "app/data.json",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// NewViper returns a viper instance reading POKERXL_* environment variables.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// BindFlags binds each config key to the named flag.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet, keyToFlag map[string]string) error {
	for key, name := range keyToFlag {
		f := flags.Lookup(name)
		if f == nil {
			return fmt.Errorf("binding %s: no flag --%s", key, name)
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding %s: %w", key, err)
		}
	}
	return nil
}

// Apply overwrites cfg fields with values explicitly set through v, either by
// a changed flag or an environment variable.
func Apply(cfg *Config, v *viper.Viper) {
	set := func(key string, dst *string) {
		if v.IsSet(key) {
			*dst = v.GetString(key)
		}
	}
	set(KeyInputPath, &cfg.Input.Path)
	set(KeyOutputPath, &cfg.Output.Path)
	set(KeyLogLevel, &cfg.Log.Level)
	set(KeyLogFormat, &cfg.Log.Format)
}

package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/dhamidi/mathpad/format"
)

// ConfigFile is the name of the project configuration file.
const ConfigFile = "mathpad.yaml"

var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrInvalidConfig  = errors.New("invalid configuration")
)

// Project is a directory of expression files plus its configuration.
type Project struct {
	RootDir    string
	ConfigPath string
	Config     *Config
}

// Config is the content of mathpad.yaml.
type Config struct {
	// Extensions lists the file extensions treated as expression sources.
	Extensions []string     `yaml:"extensions"`
	Output     OutputConfig `yaml:"output"`
	Watch      WatchConfig  `yaml:"watch"`
	LSP        LSPConfig    `yaml:"lsp"`
	UI         UIConfig     `yaml:"ui"`
}

type OutputConfig struct {
	Format string `yaml:"format"`
	// Precision rounds printed numbers to this many decimal places; -1 prints
	// the shortest exact form.
	Precision int `yaml:"precision"`
}

type WatchConfig struct {
	Interval time.Duration `yaml:"interval"`
}

type LSPConfig struct {
	Name string `yaml:"name"`
}

type UIConfig struct {
	Addr string `yaml:"addr"`
}

// DefaultConfig returns the configuration used when no mathpad.yaml exists.
func DefaultConfig() *Config {
	return &Config{
		Extensions: []string{".la"},
		Output: OutputConfig{
			Format:    "text",
			Precision: -1,
		},
		Watch: WatchConfig{Interval: time.Second},
		LSP:   LSPConfig{Name: "mathpad"},
		UI:    UIConfig{Addr: ":8080"},
	}
}

// Load reads the project in the current directory.
func Load() (*Project, error) {
	return LoadFrom(".")
}

// LoadFrom reads rootDir/mathpad.yaml. A missing file yields the default
// configuration.
func LoadFrom(rootDir string) (*Project, error) {
	path := filepath.Join(rootDir, ConfigFile)
	cfg, err := LoadConfig(path)
	if errors.Is(err, ErrConfigNotFound) {
		return &Project{RootDir: rootDir, Config: DefaultConfig()}, nil
	}
	if err != nil {
		return nil, err
	}
	return &Project{RootDir: rootDir, ConfigPath: path, Config: cfg}, nil
}

// LoadConfig reads and validates a configuration file. Unset fields keep
// their defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML configuration on top of the defaults.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.UnmarshalWithOptions(data, cfg, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) normalize() {
	for i, ext := range c.Extensions {
		if ext != "" && !strings.HasPrefix(ext, ".") {
			c.Extensions[i] = "." + ext
		}
	}
}

// Validate checks the configuration for values the tools cannot use.
func (c *Config) Validate() error {
	if len(c.Extensions) == 0 {
		return fmt.Errorf("%w: extensions must not be empty", ErrInvalidConfig)
	}
	for _, ext := range c.Extensions {
		if ext == "" || ext == "." {
			return fmt.Errorf("%w: empty extension", ErrInvalidConfig)
		}
	}
	if !format.IsKnown(c.Output.Format) {
		return fmt.Errorf("%w: unknown output format %q (expected one of %s)",
			ErrInvalidConfig, c.Output.Format, strings.Join(format.Names, ", "))
	}
	if c.Output.Precision < -1 {
		return fmt.Errorf("%w: precision must be -1 or greater, got %d", ErrInvalidConfig, c.Output.Precision)
	}
	if c.Watch.Interval <= 0 {
		return fmt.Errorf("%w: watch interval must be positive, got %s", ErrInvalidConfig, c.Watch.Interval)
	}
	if c.LSP.Name == "" {
		return fmt.Errorf("%w: lsp name must not be empty", ErrInvalidConfig)
	}
	return nil
}

// HasSourceExt reports whether path has one of the configured extensions.
func (c *Config) HasSourceExt(path string) bool {
	ext := filepath.Ext(path)
	for _, e := range c.Extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// FormatOptions returns the text formatting options implied by the config.
func (c *Config) FormatOptions() []format.Option {
	return []format.Option{format.WithPrecision(c.Output.Precision)}
}

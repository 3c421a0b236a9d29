package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/scottcagno/substr/pkg/search"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("config: invalid")

// Config is the benchmark run configuration.
type Config struct {
	Repeat     int             `yaml:"repeat"`
	Workers    int             `yaml:"workers"`
	Algorithms []string        `yaml:"algorithms"`
	CacheSize  int             `yaml:"cache_size"`
	Log        LogConfig       `yaml:"log"`
	Fixtures   []FixtureConfig `yaml:"fixtures"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// FixtureConfig describes where a fixture's text and pattern come from.
// Exactly one of Text, File or Synthetic provides the text; exactly one of
// Pattern, RandomLength or AbsentLength provides the pattern.
type FixtureConfig struct {
	Name         string           `yaml:"name"`
	Text         string           `yaml:"text"`
	File         string           `yaml:"file"`
	Synthetic    *SyntheticConfig `yaml:"synthetic"`
	TextRepeat   int              `yaml:"text_repeat"`
	Pattern      string           `yaml:"pattern"`
	RandomLength int              `yaml:"random_length"`
	AbsentLength int              `yaml:"absent_length"`
	Seed         int64            `yaml:"seed"`
	Expect       string           `yaml:"expect"`
}

type SyntheticConfig struct {
	Size     int    `yaml:"size"`
	Alphabet string `yaml:"alphabet"`
}

// Default returns the configuration used when no file is given. Its empty
// fixture list selects the built in fixtures.
func Default() *Config {
	return &Config{
		Repeat:  1000,
		Workers: 1,
		Algorithms: []string{
			"boyer-moore",
			"knuth-morris-pratt",
			"rabin-karp",
		},
		CacheSize: 16,
		Log:       LogConfig{Level: "info"},
	}
}

// Load reads the configuration file from disk. Missing settings keep their
// default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings and every fixture.
func (c *Config) Validate() error {
	if c.Repeat < 1 {
		return fmt.Errorf("%w: repeat must be positive, got %d", ErrInvalidConfig, c.Repeat)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalidConfig, c.Workers)
	}
	for _, name := range c.Algorithms {
		if _, err := search.Lookup(name); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	for i, f := range c.Fixtures {
		if err := f.validate(); err != nil {
			return fmt.Errorf("%w: fixture %d (%s): %w", ErrInvalidConfig, i, f.Name, err)
		}
	}
	return nil
}

func (f FixtureConfig) validate() error {
	var sources int
	if f.Text != "" {
		sources++
	}
	if f.File != "" {
		sources++
	}
	if f.Synthetic != nil {
		if f.Synthetic.Size < 1 {
			return errors.New("synthetic size must be positive")
		}
		sources++
	}
	if sources > 1 {
		return errors.New("text, file and synthetic are mutually exclusive")
	}
	var patterns int
	if f.Pattern != "" {
		patterns++
	}
	if f.RandomLength > 0 {
		patterns++
	}
	if f.AbsentLength > 0 {
		patterns++
	}
	if patterns > 1 {
		return errors.New("pattern, random_length and absent_length are mutually exclusive")
	}
	if f.TextRepeat < 0 {
		return errors.New("text_repeat must not be negative")
	}
	switch f.Expect {
	case "", "any", "found", "missing":
	default:
		return fmt.Errorf("unknown expect %q", f.Expect)
	}
	return nil
}

package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	scerror "github.com/msto63/strcalc/foundation/core/error"
	sclog "github.com/msto63/strcalc/foundation/core/log"
	"github.com/msto63/strcalc/foundation/core/validation"
	"github.com/msto63/strcalc/foundation/utils/filex"
)

// Environment variables that override file settings
const (
	EnvConfigPath       = "STRCALC_CONFIG"
	EnvUpperBound       = "STRCALC_UPPER_BOUND"
	EnvDefaultDelimiter = "STRCALC_DEFAULT_DELIMITER"
	EnvLogLevel         = "STRCALC_LOG_LEVEL"
	EnvLogFormat        = "STRCALC_LOG_FORMAT"
	EnvOutputFormat     = "STRCALC_OUTPUT"
)

// Output formats of the add command
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Config holds the complete application configuration
type Config struct {
	Calculator CalculatorConfig `toml:"calculator" yaml:"calculator"`
	Logging    LoggingConfig    `toml:"logging" yaml:"logging"`
	Output     OutputConfig     `toml:"output" yaml:"output"`
}

// CalculatorConfig holds the summation rules
type CalculatorConfig struct {
	UpperBound       int    `toml:"upper_bound" yaml:"upper_bound"`
	DefaultDelimiter string `toml:"default_delimiter" yaml:"default_delimiter"`
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// OutputConfig holds result rendering settings
type OutputConfig struct {
	Format string `toml:"format" yaml:"format"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Calculator: CalculatorConfig{
			UpperBound:       1000,
			DefaultDelimiter: ",",
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
		Output: OutputConfig{
			Format: OutputText,
		},
	}
}

// Load reads configuration from a TOML or YAML file, chosen by extension,
// on top of the defaults and applies environment overrides. An empty path
// yields the defaults plus overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		path = os.ExpandEnv(path)
		data, err := filex.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, scerror.New("config file not found: "+path).
					WithCode(scerror.CodeConfigError).
					WithOperation("config.Load").
					WithDetail("path", path)
			}
			return nil, scerror.Wrap(err, "failed to read config").
				WithCode(scerror.CodeConfigError).
				WithOperation("config.Load")
		}
		if err := cfg.decode(path, data); err != nil {
			return nil, err
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromEnv loads the file named by STRCALC_CONFIG, else the first
// existing default location, else the defaults
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		path = filex.FirstFile(defaultPaths()...)
	}
	return Load(path)
}

func defaultPaths() []string {
	paths := []string{
		"./strcalc.toml",
		"./strcalc.yaml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config", "strcalc", "config.toml"),
			filepath.Join(home, ".config", "strcalc", "config.yaml"),
		)
	}
	return paths
}

func (c *Config) decode(path string, data []byte) error {
	var err error
	switch ext := filex.Ext(path); ext {
	case ".toml":
		_, err = toml.Decode(string(data), c)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, c)
	default:
		return scerror.New("unsupported config file extension: "+ext).
			WithCode(scerror.CodeInvalidFormat).
			WithSeverity(scerror.SeverityHigh).
			WithOperation("config.Load").
			WithDetail("path", path)
	}
	if err != nil {
		return scerror.Wrap(err, "failed to parse config").
			WithCode(scerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("path", path)
	}
	return nil
}

// ApplyEnv overrides settings from environment variables looked up via
// lookup (os.LookupEnv in production)
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvUpperBound); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return scerror.Wrap(err, "invalid "+EnvUpperBound).
				WithCode(scerror.CodeInvalidConfig).
				WithOperation("config.ApplyEnv").
				WithDetail("value", v)
		}
		c.Calculator.UpperBound = n
	}
	if v, ok := lookup(EnvDefaultDelimiter); ok && v != "" {
		c.Calculator.DefaultDelimiter = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		c.Logging.Format = v
	}
	if v, ok := lookup(EnvOutputFormat); ok && v != "" {
		c.Output.Format = v
	}
	return nil
}

// Validate checks all settings. The returned error names the first invalid
// field; the "violations" detail lists every problem found.
func (c *Config) Validate() error {
	_, levelErr := sclog.ParseLevel(c.Logging.Level)
	_, formatErr := sclog.ParseFormat(c.Logging.Format)

	result := validation.Combine(
		validation.Positive("calculator.upper_bound", c.Calculator.UpperBound),
		validation.NotEmpty("calculator.default_delimiter", c.Calculator.DefaultDelimiter),
		validation.ExcludesAny("calculator.default_delimiter", c.Calculator.DefaultDelimiter, "0123456789-+"),
		validation.Check("logging.level", c.Logging.Level, scerror.CodeInvalidFormat, levelErr),
		validation.Check("logging.format", c.Logging.Format, scerror.CodeInvalidFormat, formatErr),
		validation.OneOf("output.format", c.Output.Format, OutputText, OutputJSON, OutputYAML),
	)

	if err := result.ToError(); err != nil {
		return scerror.Wrap(err, "invalid config").
			WithCode(scerror.CodeInvalidConfig).
			WithOperation("config.Validate")
	}
	return nil
}

// Encode writes the configuration as "toml" or "yaml"
func (c *Config) Encode(w io.Writer, format string) error {
	var buf bytes.Buffer
	switch format {
	case "toml":
		if err := toml.NewEncoder(&buf).Encode(c); err != nil {
			return scerror.Wrap(err, "failed to encode config").WithCode(scerror.CodeInternal)
		}
	case "yaml":
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return scerror.Wrap(err, "failed to encode config").WithCode(scerror.CodeInternal)
		}
		if err := enc.Close(); err != nil {
			return scerror.Wrap(err, "failed to encode config").WithCode(scerror.CodeInternal)
		}
	default:
		return scerror.New("unsupported config format: " + format).
			WithCode(scerror.CodeInvalidFormat)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

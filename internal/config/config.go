// Package config loads the converter settings from an optional YAML or TOML
// file named by CONFIG_PATH and from STREAMCONV_* environment variables.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator"
	"github.com/ilyakaznacheev/cleanenv"

	streamconv "github.com/reoring/streamconv"
)

// Config is the full converter configuration.
type Config struct {
	Env   string `yaml:"env" toml:"env" env:"STREAMCONV_ENV" env-default:"local"`
	Input string `yaml:"input" toml:"input" env:"STREAMCONV_INPUT" env-default:"request.json" validate:"required"`
	Lang  string `yaml:"lang" toml:"lang" env:"STREAMCONV_LANG" env-default:"en" validate:"oneof=en ja"`
	Log   Log    `yaml:"log" toml:"log"`
	Parse Parse  `yaml:"parse" toml:"parse"`
}

// Log configures the stderr logger.
type Log struct {
	Level    string `yaml:"level" toml:"level" env:"STREAMCONV_LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`
	Encoding string `yaml:"encoding" toml:"encoding" env:"STREAMCONV_LOG_ENCODING" env-default:"console" validate:"oneof=console json"`
}

// Parse configures input enforcement.
type Parse struct {
	DuplicateKeys string `yaml:"duplicate_keys" toml:"duplicate_keys" env:"STREAMCONV_PARSE_DUPLICATE_KEYS" env-default:"error" validate:"oneof=ignore warn error"`
	UnknownKeys   string `yaml:"unknown_keys" toml:"unknown_keys" env:"STREAMCONV_PARSE_UNKNOWN_KEYS" env-default:"strip" validate:"oneof=strip strict"`
	MaxDepth      int    `yaml:"max_depth" toml:"max_depth" env:"STREAMCONV_PARSE_MAX_DEPTH" env-default:"32" validate:"gte=0"`
	MaxBytes      int64  `yaml:"max_bytes" toml:"max_bytes" env:"STREAMCONV_PARSE_MAX_BYTES" env-default:"1048576" validate:"gte=0"`
}

// Load reads the file named by CONFIG_PATH when set, then applies the
// environment. The result is validated before it is returned.
func Load() (*Config, error) {
	var cfg Config
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config: file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}

// ParseOpt maps the parse section onto decoder options.
func (c *Config) ParseOpt() streamconv.ParseOpt {
	opt := streamconv.DefaultParseOpt()
	switch c.Parse.DuplicateKeys {
	case "ignore":
		opt.Strictness.OnDuplicateKey = streamconv.Ignore
	case "warn":
		opt.Strictness.OnDuplicateKey = streamconv.Warn
	default:
		opt.Strictness.OnDuplicateKey = streamconv.Error
	}
	if c.Parse.UnknownKeys == "strict" {
		opt.Unknown = streamconv.UnknownStrict
	} else {
		opt.Unknown = streamconv.UnknownStrip
	}
	opt.MaxDepth = c.Parse.MaxDepth
	opt.MaxBytes = c.Parse.MaxBytes
	return opt
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"Input: %s\n"+
			"Lang: %s\n"+
			"Log:\n"+
			"  Level: %s\n"+
			"  Encoding: %s\n"+
			"Parse:\n"+
			"  DuplicateKeys: %s\n"+
			"  UnknownKeys: %s\n"+
			"  MaxDepth: %d\n"+
			"  MaxBytes: %d\n",
		c.Env,
		c.Input,
		c.Lang,
		c.Log.Level,
		c.Log.Encoding,
		c.Parse.DuplicateKeys,
		c.Parse.UnknownKeys,
		c.Parse.MaxDepth,
		c.Parse.MaxBytes,
	)
}

// Package config loads denlp settings from defaults, a TOML file and
// DENLP_-prefixed environment variables, in increasing precedence.
package config

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/az-ai-labs/de-lang-nlp/internal/errors"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Config is the full denlp configuration.
type Config struct {
	Format    FormatConfig    `mapstructure:"format" json:"format" yaml:"format"`
	Normalize NormalizeConfig `mapstructure:"normalize" json:"normalize" yaml:"normalize"`
	Datetime  DatetimeConfig  `mapstructure:"datetime" json:"datetime" yaml:"datetime"`
	Log       LogConfig       `mapstructure:"log" json:"log" yaml:"log"`
	Output    OutputConfig    `mapstructure:"output" json:"output" yaml:"output"`
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.Format.Validate(); err != nil {
		return errors.Wrap(err, "format")
	}
	if err := c.Datetime.Validate(); err != nil {
		return errors.Wrap(err, "datetime")
	}
	if err := c.Log.Validate(); err != nil {
		return errors.Wrap(err, "log")
	}
	if err := c.Output.Validate(); err != nil {
		return errors.Wrap(err, "output")
	}
	return nil
}

// FormatConfig controls number and time rendering.
type FormatConfig struct {
	Places       int   `mapstructure:"places" json:"places" yaml:"places"`
	Use24Hour    bool  `mapstructure:"use_24hour" json:"use_24hour" yaml:"use_24hour"`
	UseAmPm      bool  `mapstructure:"use_ampm" json:"use_ampm" yaml:"use_ampm"`
	Denominators []int `mapstructure:"denominators" json:"denominators" yaml:"denominators"`
}

// Validate validates the format configuration.
func (c *FormatConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Places, validation.Min(0), validation.Max(10)),
		validation.Field(&c.Denominators, validation.Required, validation.Each(validation.Min(1), validation.Max(20))),
	)
}

// NormalizeConfig controls text normalization.
type NormalizeConfig struct {
	RemoveArticles bool `mapstructure:"remove_articles" json:"remove_articles" yaml:"remove_articles"`
}

// DatetimeConfig controls date resolution.
type DatetimeConfig struct {
	// Location is an IANA zone name, "Local" or "UTC".
	Location string `mapstructure:"location" json:"location" yaml:"location"`
}

// Validate validates the datetime configuration.
func (c *DatetimeConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Location, validation.Required, validation.By(isLocation)),
	)
}

// Zone returns the configured location. Validate must have passed.
func (c *DatetimeConfig) Zone() *time.Location {
	loc, err := time.LoadLocation(c.Location)
	if err != nil {
		return time.Local
	}
	return loc
}

func isLocation(value any) error {
	name, _ := value.(string)
	if _, err := time.LoadLocation(name); err != nil {
		return errors.Newf("unknown time zone %q", name)
	}
	return nil
}

// LogConfig controls the process logger.
type LogConfig struct {
	Level string `mapstructure:"level" json:"level" yaml:"level"`
	JSON  bool   `mapstructure:"json" json:"json" yaml:"json"`
}

// Validate validates the log configuration.
func (c *LogConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Level, validation.Required, validation.In("debug", "info", "warn", "error")),
	)
}

// OutputConfig selects how the CLI renders results.
type OutputConfig struct {
	Format string `mapstructure:"format" json:"format" yaml:"format"`
}

// Validate validates the output configuration.
func (c *OutputConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Format, validation.Required, validation.In(OutputText, OutputJSON, OutputYAML)),
	)
}

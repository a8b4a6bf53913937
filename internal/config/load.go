package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/az-ai-labs/de-lang-nlp/internal/errors"
)

// EnvPrefix prefixes every environment override: format.places is read from
// DENLP_FORMAT_PLACES.
const EnvPrefix = "DENLP"

// FileName is the config file searched for when no path is given.
const FileName = "denlp.toml"

// New returns a Viper instance with defaults, environment binding and, when
// present, the config file applied. An empty path searches the working
// directory and $HOME/.config/denlp. A missing file is only an error when
// path was given explicitly.
func New(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)

	v.SetConfigType("toml")
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.WithHint(
				errors.Wrapf(err, "config: reading %s", path),
				"check the --config path or remove the flag to use defaults",
			)
		}
		return v, nil
	}

	for _, dir := range searchDirs() {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		v.SetConfigFile(candidate)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "config: reading %s", candidate)
		}
		break
	}
	return v, nil
}

// Load reads and validates the configuration. See New for path handling.
func Load(path string) (*Config, error) {
	v, err := New(path)
	if err != nil {
		return nil, err
	}
	return LoadWithViper(v)
}

// LoadWithViper decodes and validates the configuration held by v.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "config: decoding")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.WithHint(
			errors.Wrap(err, "config: invalid"),
			"run `denlp config` to print the effective settings",
		)
	}
	return &cfg, nil
}

func searchDirs() []string {
	dirs := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", "denlp"))
	}
	return dirs
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/az-ai-labs/de-lang-nlp/internal/errors"
)

func TestLoadWithViper_Defaults(t *testing.T) {
	t.Parallel()

	v := viper.New()
	SetDefaults(v)

	cfg, err := LoadWithViper(v)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Format.Places)
	assert.False(t, cfg.Format.Use24Hour)
	assert.False(t, cfg.Format.UseAmPm)
	assert.Len(t, cfg.Format.Denominators, 20)
	assert.Equal(t, 1, cfg.Format.Denominators[0])
	assert.True(t, cfg.Normalize.RemoveArticles)
	assert.Equal(t, "Local", cfg.Datetime.Location)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, OutputText, cfg.Output.Format)
}

func TestLoad_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "custom.toml")
	content := `
[format]
places = 4
use_24hour = true
denominators = [2, 4]

[normalize]
remove_articles = false

[datetime]
location = "Europe/Berlin"

[output]
format = "yaml"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Format.Places)
	assert.True(t, cfg.Format.Use24Hour)
	assert.Equal(t, []int{2, 4}, cfg.Format.Denominators)
	assert.False(t, cfg.Normalize.RemoveArticles)
	assert.Equal(t, "Europe/Berlin", cfg.Datetime.Zone().String())
	assert.Equal(t, OutputYAML, cfg.Output.Format)
	assert.Equal(t, "warn", cfg.Log.Level, "unset keys keep defaults")
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: reading")
	assert.NotEmpty(t, errors.GetAllHints(err))
}

func TestLoad_InvalidFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[output]\nformat = \"xml\"\n"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: invalid")
	assert.Contains(t, err.Error(), "output")
}

// Not parallel: t.Setenv.
func TestNew_EnvOverride(t *testing.T) {
	t.Setenv("DENLP_FORMAT_PLACES", "5")
	t.Setenv("DENLP_LOG_LEVEL", "debug")

	path := filepath.Join(t.TempDir(), "denlp.toml")
	require.NoError(t, os.WriteFile(path, []byte("[format]\nplaces = 3\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Format.Places, "environment beats file")
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := func(t *testing.T) Config {
		t.Helper()
		v := viper.New()
		SetDefaults(v)
		cfg, err := LoadWithViper(v)
		require.NoError(t, err)
		return *cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"places zero", func(c *Config) { c.Format.Places = 0 }, ""},
		{"places negative", func(c *Config) { c.Format.Places = -1 }, "format"},
		{"places too many", func(c *Config) { c.Format.Places = 11 }, "format"},
		{"denominator zero", func(c *Config) { c.Format.Denominators = []int{2, 0} }, "format"},
		{"denominator too large", func(c *Config) { c.Format.Denominators = []int{21} }, "format"},
		{"denominators empty", func(c *Config) { c.Format.Denominators = nil }, "format"},
		{"utc", func(c *Config) { c.Datetime.Location = "UTC" }, ""},
		{"unknown zone", func(c *Config) { c.Datetime.Location = "Mars/Olympus" }, "datetime"},
		{"empty zone", func(c *Config) { c.Datetime.Location = "" }, "datetime"},
		{"log level", func(c *Config) { c.Log.Level = "trace" }, "log"},
		{"output json", func(c *Config) { c.Output.Format = OutputJSON }, ""},
		{"output unknown", func(c *Config) { c.Output.Format = "csv" }, "output"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := valid(t)
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestZone(t *testing.T) {
	t.Parallel()

	assert.Equal(t, time.UTC, (&DatetimeConfig{Location: "UTC"}).Zone())
	assert.Equal(t, time.Local, (&DatetimeConfig{Location: "Local"}).Zone())
	assert.Equal(t, time.Local, (&DatetimeConfig{Location: "Mars/Olympus"}).Zone())
}

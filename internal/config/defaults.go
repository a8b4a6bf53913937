package config

import (
	"slices"

	"github.com/spf13/viper"

	"github.com/az-ai-labs/de-lang-nlp/internal/fraction"
	"github.com/az-ai-labs/de-lang-nlp/numtext"
)

// SetDefaults configures default values for all configuration options.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("format.places", numtext.DefaultPlaces)
	v.SetDefault("format.use_24hour", false)
	v.SetDefault("format.use_ampm", false)
	v.SetDefault("format.denominators", slices.Clone(fraction.DefaultDenominators))

	v.SetDefault("normalize.remove_articles", true)

	v.SetDefault("datetime.location", "Local")

	v.SetDefault("log.level", "warn")
	v.SetDefault("log.json", false)

	v.SetDefault("output.format", OutputText)
}

// Package data embeds the phrase tables read at package init.
package data

import _ "embed"

// Contractions is the TOML phrase table read by the normalize package.
//
//go:embed contractions.toml
var Contractions []byte

// Package errors is the error stack used across de-lang-nlp.
//
// It re-exports github.com/cockroachdb/errors so that every package wraps
// and inspects errors the same way:
//
//	if err := v.ReadInConfig(); err != nil {
//	    return errors.Wrapf(err, "config: reading %s", path)
//	}
//
//	return errors.WithHint(ErrNotFound, "try an explicit date such as \"am 3. märz\"")
//
// Parsers never return errors for unrecognized words; sentinel errors exist
// only for the "nothing found" outcome of the Parse-style entry points.
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing hints and details
var (
	WithHint      = crdb.WithHint
	WithHintf     = crdb.WithHintf
	WithDetail    = crdb.WithDetail
	WithDetailf   = crdb.WithDetailf
	GetAllHints   = crdb.GetAllHints
	FlattenHints  = crdb.FlattenHints
	GetAllDetails = crdb.GetAllDetails
)

// Inspection
var (
	Is        = crdb.Is
	IsAny     = crdb.IsAny
	As        = crdb.As
	Unwrap    = crdb.Unwrap
	UnwrapAll = crdb.UnwrapAll
)

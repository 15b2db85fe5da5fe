// SPDX-License-Identifier: MPL-2.0

// Package config resolves the template inputs of a postgen run using Viper.
//
// Values come, in increasing precedence, from built-in defaults, a CUE file
// (postgen.cue in the project directory, or the file given with --config),
// POSTGEN_* environment variables and command-line flags. The scaffolding
// engine normally renders postgen.cue with every answer already substituted.
//
// The CUE file is validated against the embedded #Config schema
// (config_schema.cue) before it is merged, so unknown keys and values outside
// the allowed sets are reported with their CUE path.
package config

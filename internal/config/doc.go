// Package config discovers and merges nitpick configuration files.
//
// Configuration lives in a [nitpick] table inside a TOML file. Discovery
// checks an explicit --config override first, then the working directory
// (.nitpick.toml, nitpick.toml), then the user config directory. Extra
// files named by --append-config layer on top of whatever was found.
//
// The loader deliberately does not interpret values: it flattens the table
// to a key/value mapping and reports the directory the main file came from,
// so option aggregation can match keys against registered options and
// resolve relative paths itself.
package config

// Package file provides a TOML-backed implementation of the
// driven.ConfigStore port. Configuration lives in a single file in the
// readocs config directory; keys use dot notation
// ("data.dir", "search.limit").
package file

// Package config reads and writes pioneer configuration documents and loads
// the tool's own settings.
//
// A configuration document is TOML (the default) or YAML, picked by file
// extension. Parse and LoadFile turn a document into a types.Config, keeping
// the declaration order of every map-valued install section; Encode writes a
// Config back out so that parsing the result yields the same Config.
//
// Settings are layered with koanf: embedded defaults, then the optional
// settings file, then PIONEER_* environment variables, then explicit
// overrides such as command-line flags.
package config

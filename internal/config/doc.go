// Package config loads the application configuration for both binaries.
//
// Values are collected from environment variables, command-line flags, an
// optional JSON file, and built-in defaults, then merged with mergo so that
// earlier sources win. The merged [StructuredConfig] is carved into
// per-binary views: [ServerConfig] and [ClientConfig].
package config

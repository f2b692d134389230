// Package config loads, merges and validates the server configuration.
//
// Sources are layered from lowest to highest precedence:
//  1. Built-in defaults
//  2. JSON config file (-c / CONFIG)
//  3. Environment variables, optionally seeded from a .env file
//  4. Command-line flags
//
// Later sources override earlier non-zero fields. The entry point is
// [GetStructuredConfig].
package config

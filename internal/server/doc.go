// Package server runs the HTTP API.
//
// It owns the listener lifecycle: startup, signal handling, and graceful
// shutdown bounded by [ShutdownTimeout].
package server

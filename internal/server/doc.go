// Package server wires and runs the vault's HTTP transport.
//
// It provides startup, signal handling, and graceful shutdown of the
// listener within the configured timeout.
package server

// Package server wires and runs the HTTP transport.
//
// It provides orchestration of the server lifecycle, including startup,
// signal handling, and graceful shutdown.
package server

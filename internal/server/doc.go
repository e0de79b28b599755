// Package server runs the registration receiver's HTTP server, including
// startup, signal handling and graceful shutdown.
package server

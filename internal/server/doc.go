// Package server runs the web client's HTTP server.
//
// The server and its shutdown watcher run under one errgroup: the first of
// a listener failure, a cancelled context or a stop signal ends both, and
// in-flight requests get the configured shutdown timeout to finish.
package server

// Package http implements the web client.
//
// It serves the rendered page and turns form posts into controller events:
// sorting, opening a user's popup and closing it. Every response goes
// through request tracing, access logging and response compression.
package http

// Package utils provides general-purpose helper utilities used across the
// application: word formatting, identifier generation, HTTP response
// writing and HTTP client initialization.
package utils

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Defaults applied beneath every other source.
const (
	DefaultBaseURL         = "https://api.randomuser.me/1.0/"
	DefaultResults         = 50
	DefaultNationalities   = "gb,us"
	DefaultFields          = "gender,name,location,email,phone,picture"
	DefaultHTTPAddress     = "localhost:8080"
	DefaultShutdownTimeout = 5 * time.Second

	// MaxResults is the largest batch the randomuser API will generate.
	MaxResults = 5000
)

// StructuredConfig is the top-level configuration container. It is
// populated by merging defaults, environment variables, command-line flags
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the randomuser API endpoint settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Batch describes the single batch requested on startup.
	Batch Batch `envPrefix:"BATCH_"`

	// Server holds the web surface listen settings.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter configures the HTTP client used to reach the randomuser API.
type Adapter struct {
	// BaseURL is the API endpoint including the version path.
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds a single request. Zero means no timeout.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Batch configures the query parameters of the startup fetch.
type Batch struct {
	// Results is the number of users requested.
	Results int `env:"RESULTS"`

	// Nationalities is the comma separated nat filter.
	Nationalities string `env:"NATIONALITIES"`

	// Fields is the comma separated inc filter.
	Fields string `env:"FIELDS"`
}

// Server configures the HTTP server of the web surface.
type Server struct {
	// HTTPAddress is the host:port the server listens on.
	HTTPAddress string `env:"ADDRESS"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources. Later sources override non-zero
// fields of earlier ones:
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			BaseURL: DefaultBaseURL,
		},
		Batch: Batch{
			Results:       DefaultResults,
			Nationalities: DefaultNationalities,
			Fields:        DefaultFields,
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
	}
}

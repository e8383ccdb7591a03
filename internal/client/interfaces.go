// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"io"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// Starter performs the one startup fetch.
type Starter interface {
	Startup(ctx context.Context) error
}

// UI is the interactive front end and its plain text fallback.
type UI interface {
	Run(ctx context.Context) error
	Dump(w io.Writer) error
}

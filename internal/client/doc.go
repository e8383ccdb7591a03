// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal client runtime.
//
// On a terminal it hands control to the interactive UI. When stdout is
// redirected it fetches the batch once and prints the list as plain text.
package client

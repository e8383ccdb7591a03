// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrInvalidSortForm is reported when the body of POST /sort cannot be
// parsed as a form.
var ErrInvalidSortForm = errors.New("invalid sort form")

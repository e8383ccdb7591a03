// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for talking to the
// randomuser API.
//
// The primary abstraction is [RandomUserAdapter], which decouples the service
// layer from HTTP. The package ships a resty based implementation
// ([NewHTTPRandomUserAdapter]).
//
// Error values defined in errors.go let callers tell a rejected request
// ([ErrRequestFailed], carrying the status code in [RequestFailedError]) from
// an unreadable body ([ErrParseFailed]) with [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-user-cards/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/random_user_adapter_mock.go -package=mock

// RandomUserAdapter fetches generated user records from the randomuser API.
type RandomUserAdapter interface {
	// FetchUsers requests one batch described by query and returns the raw
	// records in the order the API produced them. Returns a
	// [*RequestFailedError] on a non-2xx status and a [*ParseFailedError]
	// when the body is not valid JSON.
	FetchUsers(ctx context.Context, query models.UsersQuery) ([]models.RawUser, error)
}

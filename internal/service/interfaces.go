// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-user-cards/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// UserService turns one randomuser batch into domain users.
type UserService interface {
	// LoadBatch fetches the configured batch and converts every raw record
	// into a [models.User], preserving API order. Each returned user carries a
	// freshly generated identifier. Fetch errors are returned wrapped so that
	// the adapter sentinels still match with errors.Is.
	LoadBatch(ctx context.Context) ([]models.User, error)
}

// AppInfoService exposes build metadata to the user facing surfaces.
type AppInfoService interface {
	// GetAppVersion returns the version string injected at build time.
	GetAppVersion(ctx context.Context) string
}

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-user-cards/internal/adapter"
)

var errorStatusMap = map[error]int{
	adapter.ErrRequestFailed:  http.StatusBadGateway,
	adapter.ErrParseFailed:    http.StatusBadGateway,
	adapter.ErrAPIError:       http.StatusBadGateway,
	context.DeadlineExceeded:  http.StatusGatewayTimeout,
	context.Canceled:          http.StatusServiceUnavailable,
	adapter.ErrInvalidBaseURL: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

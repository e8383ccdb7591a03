package adapter

import (
	"net/http"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response, label string) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return &RequestFailedError{Label: label, StatusCode: resp.StatusCode()}
}

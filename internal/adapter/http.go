package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-user-cards/internal/config"
	"github.com/MKhiriev/go-user-cards/internal/logger"
	"github.com/MKhiriev/go-user-cards/internal/utils"
	"github.com/MKhiriev/go-user-cards/models"
)

const usersErrorLabel = "Problem getting users"

type httpRandomUserAdapter struct {
	client  *utils.HTTPClient
	baseURL *url.URL

	logger *logger.Logger
}

// NewHTTPRandomUserAdapter constructs the resty implementation of
// [RandomUserAdapter]. The base URL is validated up front; a zero
// RequestTimeout leaves requests without a deadline.
func NewHTTPRandomUserAdapter(cfg config.Adapter, logger *logger.Logger) (RandomUserAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	return &httpRandomUserAdapter{
		client:  utils.NewHTTPClient(cfg.RequestTimeout),
		baseURL: baseURL,
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("address must include host and scheme")
	}

	return u, nil
}

// FetchUsers implements [RandomUserAdapter]. It GETs the base URL with the
// results, nat and inc parameters taken from query.
func (h *httpRandomUserAdapter) FetchUsers(ctx context.Context, query models.UsersQuery) ([]models.RawUser, error) {
	requestURL := h.buildURL(query.Params())
	h.logger.Debug().Str("url", requestURL).Msg("fetching users")

	var resp models.RandomUserResponse
	if err := h.fetchJSON(ctx, requestURL, usersErrorLabel, &resp); err != nil {
		return nil, err
	}
	if resp.Error != "" {
		return nil, fmt.Errorf("%w: %s", ErrAPIError, resp.Error)
	}

	h.logger.Debug().Int("count", len(resp.Results)).Msg("users fetched")
	return resp.Results, nil
}

// fetchJSON issues a GET to requestURL and decodes the body into out.
// Non-2xx answers become [*RequestFailedError] labeled with errLabel, bodies
// that are not JSON become [*ParseFailedError].
func (h *httpRandomUserAdapter) fetchJSON(ctx context.Context, requestURL, errLabel string, out any) error {
	if errLabel == "" {
		errLabel = DefaultErrorLabel
	}

	resp, err := h.client.R().
		SetContext(ctx).
		Get(requestURL)
	if err != nil {
		return fmt.Errorf("%s request: %w", errLabel, err)
	}
	if err = mapHTTPError(resp, errLabel); err != nil {
		return err
	}

	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return &ParseFailedError{Label: errLabel, Err: err}
	}

	return nil
}

func (h *httpRandomUserAdapter) buildURL(params map[string]string) string {
	u := *h.baseURL
	q := u.Query()
	for k, v := range params {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()

	// randomuser expects the filter lists with literal commas
	u.RawQuery = strings.ReplaceAll(u.RawQuery, "%2C", ",")

	return u.String()
}

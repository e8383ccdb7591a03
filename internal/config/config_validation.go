// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks the merged [StructuredConfig]. Only the groups shared by
// both binaries are checked here; server settings are checked by
// [ServerConfig.validate].
func (cfg *StructuredConfig) validate() error {
	if err := cfg.Adapter.validate(); err != nil {
		return err
	}
	return cfg.Batch.validate()
}

func (cfg *ClientConfig) validate() error {
	if err := cfg.Adapter.validate(); err != nil {
		return err
	}
	return cfg.Batch.validate()
}

func (cfg *ServerConfig) validate() error {
	if err := cfg.Adapter.validate(); err != nil {
		return err
	}
	if err := cfg.Batch.validate(); err != nil {
		return err
	}

	if strings.TrimSpace(cfg.Server.HTTPAddress) == "" {
		return fmt.Errorf("%w: empty http address", ErrInvalidServerConfigs)
	}
	if cfg.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: shutdown timeout must be positive", ErrInvalidServerConfigs)
	}

	return nil
}

func (a Adapter) validate() error {
	raw := strings.TrimSpace(a.BaseURL)
	if raw == "" {
		return fmt.Errorf("%w: empty base url", ErrInvalidAdapterConfigs)
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return fmt.Errorf("%w: base url %q", ErrInvalidAdapterConfigs, a.BaseURL)
	}
	if a.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}

	return nil
}

func (b Batch) validate() error {
	if b.Results < 1 || b.Results > MaxResults {
		return fmt.Errorf("%w: results must be in 1..%d, got %d", ErrInvalidBatchConfigs, MaxResults, b.Results)
	}

	return nil
}

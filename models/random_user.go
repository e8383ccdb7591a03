// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// RandomUserResponse is the envelope returned by the randomuser API.
type RandomUserResponse struct {
	Results []RawUser       `json:"results"`
	Info    *RandomUserInfo `json:"info,omitempty"`

	// Error is set by the API instead of Results when the request was
	// rejected, even though the status code is 200.
	Error string `json:"error,omitempty"`
}

// RandomUserInfo describes the batch that was generated.
type RandomUserInfo struct {
	Seed    string `json:"seed"`
	Results int    `json:"results"`
	Page    int    `json:"page"`
	Version string `json:"version"`
}

// RawUser is a single record of the randomuser API, restricted to the fields
// requested through the inc parameter.
type RawUser struct {
	Gender   string      `json:"gender"`
	Name     RawName     `json:"name"`
	Location RawLocation `json:"location"`
	Email    string      `json:"email"`
	Phone    string      `json:"phone"`
	Picture  RawPicture  `json:"picture"`
}

// RawName holds the unformatted name parts.
type RawName struct {
	Title string `json:"title"`
	First string `json:"first"`
	Last  string `json:"last"`
}

// RawLocation holds the address parts shown in the popup.
type RawLocation struct {
	Street Street `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
}

// RawPicture holds avatar URLs in the sizes the API produces.
type RawPicture struct {
	Large     string `json:"large"`
	Medium    string `json:"medium"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

// Street is a street line. API version 1.0 sends a plain string, newer
// versions send {"number": 12, "name": "High St"}; both decode into
// "12 High St".
type Street string

func (s *Street) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*s = ""
		return nil
	}

	if b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = Street(v)
		return nil
	}

	var v struct {
		Number json.Number `json:"number"`
		Name   string      `json:"name"`
	}
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("decode street: %w", err)
	}

	parts := make([]string, 0, 2)
	if n := v.Number.String(); n != "" && n != "0" {
		parts = append(parts, n)
	}
	if v.Name != "" {
		parts = append(parts, v.Name)
	}
	*s = Street(strings.Join(parts, " "))

	return nil
}

// UsersQuery is the batch request sent to the randomuser API.
type UsersQuery struct {
	// Results is how many records to generate.
	Results int
	// Nationalities is a comma separated nat filter, e.g. "gb,us".
	Nationalities string
	// Fields is a comma separated inc filter.
	Fields string
}

// Params renders q as query parameters. Empty filters are omitted.
func (q UsersQuery) Params() map[string]string {
	params := make(map[string]string, 3)
	if q.Results > 0 {
		params["results"] = strconv.Itoa(q.Results)
	}
	if q.Nationalities != "" {
		params["nat"] = q.Nationalities
	}
	if q.Fields != "" {
		params["inc"] = q.Fields
	}
	return params
}

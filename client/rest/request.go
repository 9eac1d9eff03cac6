// Copyright (C) 2025 Specter Ops, Inc.
//
// This file is part of PIMHound.
//
// PIMHound is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// PIMHound is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/bloodhoundad/pimhound/constants"
)

func NewRequest(ctx context.Context, method string, endpoint *url.URL, body interface{}, params map[string]string, headers map[string]string) (*http.Request, error) {
	query := endpoint.Query()
	for key, value := range params {
		query.Set(key, value)
	}
	endpoint.RawQuery = query.Encode()

	var reader io.Reader
	if body != nil {
		if data, err := json.Marshal(body); err != nil {
			return nil, fmt.Errorf("unable to marshal request body: %w", err)
		} else {
			reader = bytes.NewBuffer(data)
		}
	}

	if req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader); err != nil {
		return nil, err
	} else {
		req.Header.Set("User-Agent", constants.UserAgent)
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		for key, value := range headers {
			req.Header.Set(key, value)
		}
		return req, nil
	}
}

func NewHTTPClient(proxyUrl string) (*http.Client, error) {
	transport := &http.Transport{
		ForceAttemptHTTP2:   true,
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}

	if proxyUrl != "" {
		if proxy, err := url.Parse(proxyUrl); err != nil {
			return nil, fmt.Errorf("unable to parse proxy url: %w", err)
		} else {
			transport.Proxy = http.ProxyURL(proxy)
		}
	}

	return &http.Client{Transport: transport}, nil
}

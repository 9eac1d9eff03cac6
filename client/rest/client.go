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

//go:generate go run go.uber.org/mock/mockgen -destination=./mocks/client.go -package=mocks . RestClient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bloodhoundad/pimhound/client/config"
	"github.com/bloodhoundad/pimhound/client/query"
	"github.com/bloodhoundad/pimhound/constants"
)

type RestClient interface {
	Get(ctx context.Context, path string, params query.Params, headers map[string]string) (*http.Response, error)
	Post(ctx context.Context, path string, body interface{}, params query.Params, headers map[string]string) (*http.Response, error)
	Put(ctx context.Context, path string, body interface{}, params query.Params, headers map[string]string) (*http.Response, error)
	Delete(ctx context.Context, path string, body interface{}, params query.Params, headers map[string]string) (*http.Response, error)
	Send(req *http.Request) (*http.Response, error)
	Authenticate(ctx context.Context) (Claims, error)
	CloseIdleConnections()
}

func NewRestClient(apiUrl string, config config.Config) (RestClient, error) {
	if auth, err := url.Parse(config.AuthorityUrl()); err != nil {
		return nil, err
	} else if api, err := url.Parse(apiUrl); err != nil {
		return nil, err
	} else if http, err := NewHTTPClient(config.ProxyUrl); err != nil {
		return nil, err
	} else {
		client := &restClient{
			api:       *api,
			authority: *auth,
			http:      http,
			config:    config,
			token:     Token{},
		}
		return client, nil
	}
}

type restClient struct {
	api       url.URL
	authority url.URL
	http      *http.Client
	config    config.Config
	token     Token
}

func (s *restClient) Get(ctx context.Context, path string, params query.Params, headers map[string]string) (*http.Response, error) {
	return s.request(ctx, http.MethodGet, path, nil, params, headers)
}

func (s *restClient) Post(ctx context.Context, path string, body interface{}, params query.Params, headers map[string]string) (*http.Response, error) {
	return s.request(ctx, http.MethodPost, path, body, params, headers)
}

func (s *restClient) Put(ctx context.Context, path string, body interface{}, params query.Params, headers map[string]string) (*http.Response, error) {
	return s.request(ctx, http.MethodPut, path, body, params, headers)
}

func (s *restClient) Delete(ctx context.Context, path string, body interface{}, params query.Params, headers map[string]string) (*http.Response, error) {
	return s.request(ctx, http.MethodDelete, path, body, params, headers)
}

func (s *restClient) request(ctx context.Context, method string, path string, body interface{}, params query.Params, headers map[string]string) (*http.Response, error) {
	endpoint := s.api.ResolveReference(&url.URL{Path: path})
	paramsMap := make(map[string]string)
	if params != nil {
		paramsMap = params.AsMap()
	}
	if req, err := NewRequest(ctx, method, endpoint, body, paramsMap, headers); err != nil {
		return nil, err
	} else {
		return s.Send(req)
	}
}

// Authenticate ensures the client holds a live token and returns its claims.
func (s *restClient) Authenticate(ctx context.Context) (Claims, error) {
	if s.token.IsExpired() {
		if err := s.acquireToken(ctx); err != nil {
			return Claims{}, err
		}
	}
	return ParseClaims(s.token.AccessToken)
}

func (s *restClient) acquireToken(ctx context.Context) error {
	if s.config.JWT != "" {
		s.token = newStaticToken(s.config.JWT)
		return nil
	}

	tenant := s.config.Tenant
	if tenant == "" {
		tenant = "organizations"
	}

	var (
		tokenUrl = fmt.Sprintf("%s/%s/oauth2/v2.0/token", strings.TrimSuffix(s.authority.String(), "/"), tenant)
		form     = url.Values{}
	)

	form.Set("client_id", s.config.ClientId())
	form.Set("scope", strings.TrimSuffix(s.api.String(), "/")+"/.default")

	switch {
	case s.config.RefreshToken != "":
		form.Set("grant_type", "refresh_token")
		form.Set("refresh_token", s.config.RefreshToken)
	case s.config.ClientSecret != "":
		form.Set("grant_type", "client_credentials")
		form.Set("client_secret", s.config.ClientSecret)
	case s.config.ClientCert != "" && s.config.ClientKey != "":
		if assertion, err := NewClientAssertion(tokenUrl, s.config.ClientId(), s.config.ClientCert, s.config.ClientKey, s.config.ClientKeyPass); err != nil {
			return err
		} else {
			form.Set("grant_type", "client_credentials")
			form.Set("client_assertion_type", "urn:ietf:params:oauth:client-assertion-type:jwt-bearer")
			form.Set("client_assertion", assertion)
		}
	case s.config.Username != "" && s.config.Password != "":
		form.Set("grant_type", "password")
		form.Set("username", s.config.Username)
		form.Set("password", s.config.Password)
	default:
		return fmt.Errorf("no usable credential; provide a jwt, refresh token, client secret, client certificate or username/password")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenUrl, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", constants.UserAgent)

	if res, err := s.send(req); err != nil {
		return fmt.Errorf("unable to acquire token: %w", err)
	} else {
		var token Token
		if err := Decode(res.Body, &token); err != nil {
			return fmt.Errorf("malformed token response: %w", err)
		}
		token.setExpiry()
		s.token = token
		return nil
	}
}

func (s *restClient) Send(req *http.Request) (*http.Response, error) {
	if s.token.IsExpired() {
		if err := s.acquireToken(req.Context()); err != nil {
			return nil, err
		}
	}
	req.Header.Set("Authorization", s.token.String())
	return s.send(req)
}

func (s *restClient) send(req *http.Request) (*http.Response, error) {
	// copy the bytes in case we need to retry the request
	if body, err := CopyBody(req); err != nil {
		return nil, err
	} else {
		var (
			res        *http.Response
			err        error
			maxRetries = 3
		)
		// Try the request up to a set number of times
		for retry := 0; retry < maxRetries; retry++ {

			// Reusing http.Request requires rewinding the request body
			// back to a working state
			if body != nil && retry > 0 {
				req.Body = io.NopCloser(bytes.NewBuffer(body))
			}

			// Try the request
			if res, err = s.http.Do(req); err != nil {
				if IsClosedConnectionErr(err) || IsGoAwayErr(err) {
					fmt.Printf("remote host force closed connection while requesting %s; attempt %d/%d; trying again\n", req.URL, retry+1, maxRetries)
					ExponentialBackoff(retry)
					continue
				}
				return nil, err
			} else if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusBadRequest {
				// Error response code handling
				// See official Retry guidance (https://learn.microsoft.com/en-us/azure/architecture/best-practices/retry-service-specific#retry-usage-guidance)
				if res.StatusCode == http.StatusTooManyRequests {
					retryAfterHeader := res.Header.Get("Retry-After")
					if retryAfter, err := strconv.ParseInt(retryAfterHeader, 10, 64); err != nil {
						return nil, fmt.Errorf("attempting to handle 429 but unable to parse retry-after header: %w", err)
					} else {
						// Wait the time indicated in the retry-after header
						time.Sleep(time.Second * time.Duration(retryAfter))
						continue
					}
				} else if res.StatusCode >= http.StatusInternalServerError {
					// Wait the time calculated by the 5 second exponential backoff
					ExponentialBackoff(retry)
					continue
				} else {
					// Not a status code that warrants a retry; surface the
					// decoded resource manager error to the caller
					return nil, NewAzureError(res)
				}
			} else {
				// Response OK
				return res, nil
			}
		}
		return nil, fmt.Errorf("unable to complete the request after %d attempts: %w", maxRetries, err)
	}
}

func (s *restClient) CloseIdleConnections() {
	s.http.CloseIdleConnections()
}

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
	"fmt"
	"net/http"
)

// AzureError is the decoded body of a non-2xx resource manager response.
// https://learn.microsoft.com/en-us/rest/api/azure/#error-responses
type AzureError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code,omitempty"`
	Message    string `json:"message,omitempty"`
}

func (s AzureError) Error() string {
	return fmt.Sprintf("azure error %d %s: %s", s.StatusCode, s.Code, s.Message)
}

type azureErrorEnvelope struct {
	Error AzureError `json:"error"`
}

// NewAzureError drains the response body and converts it into an AzureError.
// Malformed bodies still produce an error carrying the status code.
func NewAzureError(res *http.Response) AzureError {
	var envelope azureErrorEnvelope
	if err := Decode(res.Body, &envelope); err != nil {
		return AzureError{
			StatusCode: res.StatusCode,
			Message:    fmt.Sprintf("malformed error response: %v", err),
		}
	}
	envelope.Error.StatusCode = res.StatusCode
	return envelope.Error
}

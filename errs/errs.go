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

// Package errs holds the error types shared by the resolution and execution
// layers. Resolution errors (ConfigError, NotFoundError, AmbiguousError,
// ErrNoTargets) abort a command before any schedule request is submitted.
// Execution errors (PermissionDeniedError, DurationPolicyError,
// TransportError) are recorded on the target they belong to and never stop
// the remaining batch.
package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoTargets = errors.New("no role assignments left to act on")
	ErrCancelled = errors.New("cancelled by user")
)

// ConfigError reports a malformed or incomplete presets document.
type ConfigError struct {
	Reason string
}

func (s ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s", s.Reason)
}

// NotFoundError reports a requested name (role, preset, favorite,
// subscription) that matched nothing.
type NotFoundError struct {
	Kind      string
	Name      string
	Context   string
	Available []string
}

func (s NotFoundError) Error() string {
	msg := fmt.Sprintf("%s %q not found", s.Kind, s.Name)
	if s.Context != "" {
		msg += fmt.Sprintf(" in %s", s.Context)
	}
	if len(s.Available) > 0 {
		msg += fmt.Sprintf("; available: %s", strings.Join(s.Available, ", "))
	}
	return msg
}

// AmbiguousError reports a role name with more than one match when neither
// --allow-multiple nor interactive disambiguation can break the tie.
type AmbiguousError struct {
	RoleName string
	Matches  int
}

func (s AmbiguousError) Error() string {
	return fmt.Sprintf("role %q matches %d assignments; pass --allow-multiple or run without --non-interactive to choose", s.RoleName, s.Matches)
}

// PermissionDeniedError wraps a 403 or AuthorizationFailed response from the
// resource manager.
type PermissionDeniedError struct {
	Err error
}

func (s PermissionDeniedError) Error() string {
	return fmt.Sprintf("permission denied: %v", s.Err)
}

func (s PermissionDeniedError) Unwrap() error { return s.Err }

// DurationPolicyError wraps a policy validation failure caused by the
// requested activation duration exceeding the role's expiration rule.
type DurationPolicyError struct {
	Err error
}

func (s DurationPolicyError) Error() string {
	return fmt.Sprintf("requested duration violates the role's expiration policy: %v", s.Err)
}

func (s DurationPolicyError) Unwrap() error { return s.Err }

// TransportError wraps any execution failure that is neither a permission
// nor a policy problem.
type TransportError struct {
	Err error
}

func (s TransportError) Error() string {
	return fmt.Sprintf("request failed: %v", s.Err)
}

func (s TransportError) Unwrap() error { return s.Err }

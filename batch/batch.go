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

// Package batch submits schedule requests for a resolved target list, one
// target at a time, recording an independent outcome per target. A failing
// target never aborts the targets behind it; the engine itself performs no
// retries.
package batch

import (
	"context"
	"errors"
	"strings"

	"github.com/bloodhoundad/pimhound/client/rest"
	"github.com/bloodhoundad/pimhound/errs"
	"github.com/bloodhoundad/pimhound/models"
	"github.com/bloodhoundad/pimhound/options"
	"github.com/bloodhoundad/pimhound/prompt"
)

type State string

const (
	StateDryRun    State = "DryRun"
	StateCancelled State = "Cancelled"
	StateCompleted State = "Completed"
)

// SubmitFunc submits the schedule request for one target and returns the
// provisioning status reported by the resource manager.
type SubmitFunc func(ctx context.Context, target models.ResolvedTarget) (string, error)

// Request describes one batch run over an already-resolved target list.
type Request struct {
	Verb     string
	Targets  []models.ResolvedTarget
	Options  options.Resolved
	DryRun   bool
	Yes      bool
	Prompter prompt.Prompter
	Submit   SubmitFunc
}

// Result is the outcome of a batch run. Items always has one entry per
// target, in target order.
type Result struct {
	State        State                    `json:"state"`
	DryRun       bool                     `json:"dryRun"`
	Options      options.Resolved         `json:"options"`
	Items        []models.BatchResultItem `json:"items"`
	SuccessCount int                      `json:"successCount"`
	FailCount    int                      `json:"failCount"`
}

// Run executes the batch. A dry run reports the would-be plan without a
// single submission; a declined confirmation cancels every target. Context
// cancellation is honored between targets only, an in-flight submission is
// never abandoned halfway.
func Run(ctx context.Context, req Request) (Result, error) {
	result := Result{
		State:   StateCompleted,
		DryRun:  req.DryRun,
		Options: req.Options,
		Items:   make([]models.BatchResultItem, 0, len(req.Targets)),
	}

	if req.DryRun {
		result.State = StateDryRun
		for _, target := range req.Targets {
			result.Items = append(result.Items, planned(target))
		}
		return result, nil
	}

	if !req.Yes {
		if ok, err := req.Prompter.Confirm(confirmMessage(req)); err != nil {
			return result, err
		} else if !ok {
			result.State = StateCancelled
			for _, target := range req.Targets {
				result.Items = append(result.Items, cancelled(target))
			}
			result.FailCount = len(result.Items)
			return result, nil
		}
	}

	for i, target := range req.Targets {
		if ctx.Err() != nil {
			result.State = StateCancelled
			for _, remaining := range req.Targets[i:] {
				result.Items = append(result.Items, cancelled(remaining))
				result.FailCount++
			}
			break
		}

		item := models.BatchResultItem{
			TargetId:         target.Id,
			RoleName:         target.RoleName,
			ScopeDisplayName: target.ScopeDisplayName,
		}
		if status, err := req.Submit(ctx, target); err != nil {
			item.Error = classify(err).Error()
			result.FailCount++
		} else {
			item.Success = true
			item.Status = status
			result.SuccessCount++
		}
		result.Items = append(result.Items, item)
	}

	return result, nil
}

func planned(target models.ResolvedTarget) models.BatchResultItem {
	return models.BatchResultItem{
		TargetId:         target.Id,
		RoleName:         target.RoleName,
		ScopeDisplayName: target.ScopeDisplayName,
		Status:           "Planned",
	}
}

func cancelled(target models.ResolvedTarget) models.BatchResultItem {
	return models.BatchResultItem{
		TargetId:         target.Id,
		RoleName:         target.RoleName,
		ScopeDisplayName: target.ScopeDisplayName,
		Error:            errs.ErrCancelled.Error(),
	}
}

func confirmMessage(req Request) string {
	verb := req.Verb
	if verb == "" {
		verb = "Submit"
	}
	if len(req.Targets) == 1 {
		return verb + " 1 role assignment"
	}
	names := make([]string, 0, len(req.Targets))
	for _, target := range req.Targets {
		names = append(names, target.RoleName)
	}
	return verb + " " + strings.Join(names, ", ")
}

// classify maps a submission error to the shared taxonomy so callers and
// output render failures consistently.
func classify(err error) error {
	var azErr rest.AzureError
	if !errors.As(err, &azErr) {
		return errs.TransportError{Err: err}
	}
	switch {
	case azErr.StatusCode == 403 || azErr.Code == "AuthorizationFailed":
		return errs.PermissionDeniedError{Err: err}
	case azErr.Code == "RoleAssignmentRequestPolicyValidationFailed",
		strings.Contains(azErr.Message, "ExpirationRule"):
		return errs.DurationPolicyError{Err: err}
	default:
		return errs.TransportError{Err: err}
	}
}

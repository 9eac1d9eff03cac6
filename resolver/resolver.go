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

// Package resolver matches the operator's free-text role names against the
// pool of candidate assignments and produces the deduplicated target list a
// batch acts on. Validation is all-or-nothing: any unmatched name aborts the
// whole command before a single schedule request goes out.
package resolver

import (
	"fmt"
	"strings"

	"github.com/bloodhoundad/pimhound/errs"
	"github.com/bloodhoundad/pimhound/models"
	"github.com/bloodhoundad/pimhound/prompt"
)

// Mode carries the disambiguation flags for one invocation.
type Mode struct {
	AllowMultiple  bool
	NonInteractive bool
}

// NormalizeRoleName is the comparison key for role names: surrounding
// whitespace is ignored and matching is case-insensitive.
func NormalizeRoleName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Resolve turns requested role names into an ordered, deduplicated target
// list. poolDesc names the candidate pool in error messages, e.g.
// "eligible role assignments in subscription prod".
//
// With no requested names an interactive invocation offers the whole pool;
// a non-interactive one has nothing to act on.
func Resolve[T models.Resolvable](requested []string, pool []T, poolDesc string, mode Mode, prompter prompt.Prompter) ([]models.ResolvedTarget, error) {
	if len(requested) == 0 {
		if mode.NonInteractive {
			return nil, errs.ErrNoTargets
		}
		return selectFromPool(pool, poolDesc, prompter)
	}

	// validation phase: every requested name must be resolvable before any
	// target is materialized
	matchesByName := make([][]T, len(requested))
	for i, name := range requested {
		matches := matchName(pool, name)
		switch {
		case len(matches) == 0:
			return nil, errs.NotFoundError{Kind: "role", Name: strings.TrimSpace(name), Context: poolDesc}
		case len(matches) > 1 && !mode.AllowMultiple && mode.NonInteractive:
			return nil, errs.AmbiguousError{RoleName: strings.TrimSpace(name), Matches: len(matches)}
		}
		matchesByName[i] = matches
	}

	var targets []models.ResolvedTarget
	for i, name := range requested {
		matches := matchesByName[i]
		switch {
		case len(matches) == 1 || mode.AllowMultiple:
			for _, match := range matches {
				targets = append(targets, match.Resolved())
			}
		default:
			// interactive disambiguation; an empty pick is accepted and
			// simply contributes no targets for this name
			chosen, err := selectSubset(matches, fmt.Sprintf("%q matches %d assignments; pick the ones to include", strings.TrimSpace(name), len(matches)), prompter)
			if err != nil {
				return nil, err
			}
			targets = append(targets, chosen...)
		}
	}

	return finalize(targets)
}

func matchName[T models.Resolvable](pool []T, name string) []T {
	var (
		normalized = NormalizeRoleName(name)
		matches    []T
	)
	for _, candidate := range pool {
		if NormalizeRoleName(candidate.Identity().RoleName) == normalized {
			matches = append(matches, candidate)
		}
	}
	return matches
}

func selectFromPool[T models.Resolvable](pool []T, poolDesc string, prompter prompt.Prompter) ([]models.ResolvedTarget, error) {
	if len(pool) == 0 {
		return nil, errs.ErrNoTargets
	}
	chosen, err := selectSubset(pool, fmt.Sprintf("pick from %s", poolDesc), prompter)
	if err != nil {
		return nil, err
	}
	return finalize(chosen)
}

func selectSubset[T models.Resolvable](candidates []T, label string, prompter prompt.Prompter) ([]models.ResolvedTarget, error) {
	var (
		choices = make([]prompt.Choice, 0, len(candidates))
		byId    = make(map[string]models.ResolvedTarget, len(candidates))
	)
	for _, candidate := range candidates {
		identity := candidate.Identity()
		choices = append(choices, prompt.Choice{
			Id:    identity.Id,
			Label: fmt.Sprintf("%s @ %s", identity.RoleName, identity.ScopeDisplayName),
		})
		byId[identity.Id] = candidate.Resolved()
	}

	selectedIds, err := prompter.SelectSubset(label, choices)
	if err != nil {
		return nil, err
	}

	var selected []models.ResolvedTarget
	for _, id := range selectedIds {
		if target, ok := byId[id]; ok {
			selected = append(selected, target)
		}
	}
	return selected, nil
}

// finalize drops duplicate ids while preserving first-seen order, then
// applies the zero-total check.
func finalize(targets []models.ResolvedTarget) ([]models.ResolvedTarget, error) {
	var (
		seen   = make(map[string]struct{}, len(targets))
		unique = make([]models.ResolvedTarget, 0, len(targets))
	)
	for _, target := range targets {
		if _, dup := seen[target.Id]; dup {
			continue
		}
		seen[target.Id] = struct{}{}
		unique = append(unique, target)
	}

	if len(unique) == 0 {
		return nil, errs.ErrNoTargets
	}
	return unique, nil
}

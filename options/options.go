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

// Package options merges CLI-explicit values, named presets and base
// defaults into one effective option set per command. Resolution is a pure
// function over its inputs; per field the precedence is strict:
//
//	CLI-explicit > favorite > selected preset > base defaults > built-ins
package options

import (
	"fmt"
	"sort"
	"time"

	"github.com/bloodhoundad/pimhound/constants"
	"github.com/bloodhoundad/pimhound/errs"
	"github.com/bloodhoundad/pimhound/models"
)

type Command string

const (
	CommandActivate   Command = "activate"
	CommandDeactivate Command = "deactivate"
)

const (
	DefaultDurationHours = 8

	defaultActivateJustification   = "Activated via " + constants.DisplayName
	defaultDeactivateJustification = "Deactivated via " + constants.DisplayName
)

// Value is a CLI-supplied value together with its provenance: Explicit means
// the operator typed the flag, anything else is the flag's default and loses
// to presets.
type Value[T any] struct {
	Val      T
	Explicit bool
}

func Explicit[T any](val T) Value[T] { return Value[T]{Val: val, Explicit: true} }

// Input is the structured CLI input for one command invocation.
type Input struct {
	SubscriptionId Value[string]
	RoleNames      Value[[]string]
	DurationHours  Value[int]
	Justification  Value[string]
	AllowMultiple  Value[bool]

	// PresetName is the explicitly requested preset; empty means the
	// command's registered default preset may apply.
	PresetName string
}

// Identity feeds the ${userId} and ${userPrincipalName} template tokens.
type Identity struct {
	UserId            string
	UserPrincipalName string
}

// Resolved is a fully-resolved option set; no field is absent anymore.
type Resolved struct {
	SubscriptionId string
	RoleNames      []string
	DurationHours  int
	Justification  string
	AllowMultiple  bool

	// Preset names the preset that was applied, if any.
	Preset string
}

// Resolve computes the effective option set. favorite, when non-nil, is an
// already-looked-up favorite's option set and sits between CLI flags and
// presets in the precedence order.
func Resolve(command Command, in Input, doc models.PresetsDocument, favorite *models.OptionSet, identity Identity, now time.Time) (Resolved, error) {
	preset, presetName, err := selectPreset(command, in, doc)
	if err != nil {
		return Resolved{}, err
	}

	base := baseDefaults(command, doc)

	tiers := []*models.OptionSet{favorite, preset, base}
	resolved := Resolved{Preset: presetName}

	resolved.SubscriptionId = resolveString(in.SubscriptionId, tiers, func(s *models.OptionSet) *string { return s.SubscriptionId }, "")
	resolved.RoleNames = resolveRoleNames(in.RoleNames, tiers)
	resolved.Justification = resolveString(in.Justification, tiers, func(s *models.OptionSet) *string { return s.Justification }, builtinJustification(command))
	resolved.AllowMultiple = resolveBool(in.AllowMultiple, tiers)

	if command == CommandActivate {
		resolved.DurationHours = resolveInt(in.DurationHours, tiers, DefaultDurationHours)
	}

	resolved.Justification = ExpandTemplate(resolved.Justification, identity, now)

	return resolved, nil
}

// selectPreset applies the preset selection rules: an explicit name must
// exist and must define the command's block. Without an explicit name the
// registered default preset fills gaps only when the disambiguating flags
// (subscription id, role names) were not all supplied explicitly.
func selectPreset(command Command, in Input, doc models.PresetsDocument) (*models.OptionSet, string, error) {
	pick := func(name string, required bool) (*models.OptionSet, string, error) {
		entry, ok := doc.Presets[name]
		if !ok {
			return nil, "", errs.NotFoundError{Kind: "preset", Name: name, Available: presetNames(doc)}
		}
		block := commandBlock(command, entry)
		if block == nil {
			if required {
				return nil, "", errs.ConfigError{Reason: fmt.Sprintf("preset %q defines no %s block", name, command)}
			}
			return nil, "", errs.ConfigError{Reason: fmt.Sprintf("default preset %q defines no %s block", name, command)}
		}
		return block, name, nil
	}

	if in.PresetName != "" {
		return pick(in.PresetName, true)
	}

	// defaults fill gaps, never override explicit intent
	if in.SubscriptionId.Explicit && in.RoleNames.Explicit {
		return nil, "", nil
	}

	if name := defaultPresetName(command, doc); name != "" {
		return pick(name, false)
	}
	return nil, "", nil
}

func defaultPresetName(command Command, doc models.PresetsDocument) string {
	if command == CommandActivate {
		return doc.Defaults.ActivatePresetName
	}
	return doc.Defaults.DeactivatePresetName
}

func commandBlock(command Command, entry models.PresetEntry) *models.OptionSet {
	if command == CommandActivate {
		return entry.Activate
	}
	return entry.Deactivate
}

func baseDefaults(command Command, doc models.PresetsDocument) *models.OptionSet {
	if command == CommandActivate {
		return doc.Defaults.BaseActivate
	}
	return doc.Defaults.BaseDeactivate
}

func builtinJustification(command Command) string {
	if command == CommandActivate {
		return defaultActivateJustification
	}
	return defaultDeactivateJustification
}

func presetNames(doc models.PresetsDocument) []string {
	names := make([]string, 0, len(doc.Presets))
	for name := range doc.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func resolveString(cli Value[string], tiers []*models.OptionSet, field func(*models.OptionSet) *string, builtin string) string {
	if cli.Explicit {
		return cli.Val
	}
	for _, tier := range tiers {
		if tier == nil {
			continue
		}
		if val := field(tier); val != nil {
			return *val
		}
	}
	return builtin
}

func resolveRoleNames(cli Value[[]string], tiers []*models.OptionSet) []string {
	if cli.Explicit {
		return cli.Val
	}
	for _, tier := range tiers {
		if tier != nil && tier.RoleNames != nil {
			return tier.RoleNames
		}
	}
	return nil
}

func resolveInt(cli Value[int], tiers []*models.OptionSet, builtin int) int {
	if cli.Explicit {
		return cli.Val
	}
	for _, tier := range tiers {
		if tier != nil && tier.DurationHours != nil {
			return *tier.DurationHours
		}
	}
	return builtin
}

func resolveBool(cli Value[bool], tiers []*models.OptionSet) bool {
	if cli.Explicit {
		return cli.Val
	}
	for _, tier := range tiers {
		if tier != nil && tier.AllowMultiple != nil {
			return *tier.AllowMultiple
		}
	}
	return false
}

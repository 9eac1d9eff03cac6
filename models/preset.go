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

package models

// OptionSet is a partially specified bundle of command options. Nil pointer
// and nil slice fields mean "not yet resolved"; the option resolution engine
// fills the gaps tier by tier.
type OptionSet struct {
	SubscriptionId *string  `json:"subscriptionId,omitempty"`
	RoleNames      []string `json:"roleNames,omitempty"`
	DurationHours  *int     `json:"durationHours,omitempty"`
	Justification  *string  `json:"justification,omitempty"`
	AllowMultiple  *bool    `json:"allowMultiple,omitempty"`
}

// PresetEntry is a named, reusable bundle of defaults. Either command block
// may be absent.
type PresetEntry struct {
	Description string     `json:"description,omitempty"`
	Activate    *OptionSet `json:"activate,omitempty"`
	Deactivate  *OptionSet `json:"deactivate,omitempty"`
}

type PresetDefaults struct {
	ActivatePresetName   string     `json:"activatePresetName,omitempty"`
	DeactivatePresetName string     `json:"deactivatePresetName,omitempty"`
	BaseActivate         *OptionSet `json:"baseActivate,omitempty"`
	BaseDeactivate       *OptionSet `json:"baseDeactivate,omitempty"`
}

// PresetsDocument is the durable, user-scoped presets file. Like all
// documents in the store it is rewritten whole on every save.
type PresetsDocument struct {
	Version  int                    `json:"version"`
	Defaults PresetDefaults         `json:"defaults"`
	Presets  map[string]PresetEntry `json:"presets,omitempty"`
}

const PresetsDocumentVersion = 1

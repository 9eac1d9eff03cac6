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

import "time"

// ResolvedTarget is the subset of a role assignment needed to submit a
// schedule request. RoleDefinitionId is set for activations,
// LinkedRoleEligibilityScheduleId and SubscriptionId for deactivations.
type ResolvedTarget struct {
	Id               string `json:"id"`
	RoleName         string `json:"roleName"`
	Scope            string `json:"scope"`
	ScopeDisplayName string `json:"scopeDisplayName"`

	RoleDefinitionId string `json:"roleDefinitionId,omitempty"`

	LinkedRoleEligibilityScheduleId string `json:"linkedRoleEligibilityScheduleId,omitempty"`
	SubscriptionId                  string `json:"subscriptionId,omitempty"`
}

// ActivationRequest carries everything the client needs to self-activate one
// resolved target.
type ActivationRequest struct {
	Target        ResolvedTarget
	PrincipalId   string
	Justification string
	Duration      time.Duration
}

// DeactivationRequest carries everything the client needs to self-deactivate
// one resolved target.
type DeactivationRequest struct {
	Target        ResolvedTarget
	PrincipalId   string
	Justification string
}

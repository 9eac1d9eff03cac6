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

// RoleIdentity is the common shape of an eligible or active PIM role
// assignment. Instances are immutable once fetched and live only for the
// duration of a single command.
type RoleIdentity struct {
	Id               string `json:"id"`
	RoleName         string `json:"roleName"`
	Scope            string `json:"scope"`
	ScopeDisplayName string `json:"scopeDisplayName"`
	RoleDefinitionId string `json:"roleDefinitionId"`
}

// EligibleRole is an entitlement that can be activated for a bounded
// duration.
type EligibleRole struct {
	RoleIdentity

	RoleEligibilityScheduleId string `json:"roleEligibilityScheduleId"`
}

func (s EligibleRole) Identity() RoleIdentity { return s.RoleIdentity }

func (s EligibleRole) Resolved() ResolvedTarget {
	return ResolvedTarget{
		Id:               s.Id,
		RoleName:         s.RoleName,
		Scope:            s.Scope,
		ScopeDisplayName: s.ScopeDisplayName,
		RoleDefinitionId: s.RoleDefinitionId,
	}
}

// ActiveRole is a currently activated role assignment.
type ActiveRole struct {
	RoleIdentity

	LinkedRoleEligibilityScheduleId string `json:"linkedRoleEligibilityScheduleId"`
	StartDateTime                   string `json:"startDateTime,omitempty"`
	EndDateTime                     string `json:"endDateTime,omitempty"`
	SubscriptionId                  string `json:"subscriptionId"`
	SubscriptionName                string `json:"subscriptionName,omitempty"`
}

func (s ActiveRole) Identity() RoleIdentity { return s.RoleIdentity }

func (s ActiveRole) Resolved() ResolvedTarget {
	return ResolvedTarget{
		Id:                              s.Id,
		RoleName:                        s.RoleName,
		Scope:                           s.Scope,
		ScopeDisplayName:                s.ScopeDisplayName,
		RoleDefinitionId:                s.RoleDefinitionId,
		LinkedRoleEligibilityScheduleId: s.LinkedRoleEligibilityScheduleId,
		SubscriptionId:                  s.SubscriptionId,
	}
}

// Resolvable is satisfied by the role kinds the target resolver can turn
// into schedule requests.
type Resolvable interface {
	Identity() RoleIdentity
	Resolved() ResolvedTarget
}

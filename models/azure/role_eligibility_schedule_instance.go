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

package azure

// RoleEligibilityScheduleInstance defines the model for an eligible PIM role
// assignment on a subscription scope.
// https://learn.microsoft.com/en-us/rest/api/authorization/role-eligibility-schedule-instances
type RoleEligibilityScheduleInstance struct {
	Id string `json:"id,omitempty"`

	Name string `json:"name,omitempty"`

	Type string `json:"type,omitempty"`

	Properties RoleEligibilityScheduleInstanceProperties `json:"properties,omitempty"`
}

type RoleEligibilityScheduleInstanceProperties struct {
	Scope string `json:"scope,omitempty"`

	RoleDefinitionId string `json:"roleDefinitionId,omitempty"`

	PrincipalId string `json:"principalId,omitempty"`

	PrincipalType string `json:"principalType,omitempty"`

	RoleEligibilityScheduleId string `json:"roleEligibilityScheduleId,omitempty"`

	MemberType string `json:"memberType,omitempty"`

	Status string `json:"status,omitempty"`

	StartDateTime string `json:"startDateTime,omitempty"`

	EndDateTime string `json:"endDateTime,omitempty"`

	ExpandedProperties ExpandedProperties `json:"expandedProperties,omitempty"`
}

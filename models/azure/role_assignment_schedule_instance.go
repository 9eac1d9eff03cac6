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

// RoleAssignmentScheduleInstance defines the model for an active PIM role
// assignment on a subscription scope.
// https://learn.microsoft.com/en-us/rest/api/authorization/role-assignment-schedule-instances
type RoleAssignmentScheduleInstance struct {
	Id string `json:"id,omitempty"`

	Name string `json:"name,omitempty"`

	Type string `json:"type,omitempty"`

	Properties RoleAssignmentScheduleInstanceProperties `json:"properties,omitempty"`
}

type RoleAssignmentScheduleInstanceProperties struct {
	Scope string `json:"scope,omitempty"`

	RoleDefinitionId string `json:"roleDefinitionId,omitempty"`

	PrincipalId string `json:"principalId,omitempty"`

	PrincipalType string `json:"principalType,omitempty"`

	AssignmentType string `json:"assignmentType,omitempty"`

	MemberType string `json:"memberType,omitempty"`

	Status string `json:"status,omitempty"`

	StartDateTime string `json:"startDateTime,omitempty"`

	EndDateTime string `json:"endDateTime,omitempty"`

	LinkedRoleEligibilityScheduleId string `json:"linkedRoleEligibilityScheduleId,omitempty"`

	LinkedRoleEligibilityScheduleInstanceId string `json:"linkedRoleEligibilityScheduleInstanceId,omitempty"`

	OriginRoleAssignmentId string `json:"originRoleAssignmentId,omitempty"`

	ExpandedProperties ExpandedProperties `json:"expandedProperties,omitempty"`
}

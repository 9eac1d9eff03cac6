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

import "github.com/bloodhoundad/pimhound/enums"

// RoleAssignmentScheduleRequest defines the request and response body for
// PUT {scope}/providers/Microsoft.Authorization/roleAssignmentScheduleRequests/{name}
// https://learn.microsoft.com/en-us/rest/api/authorization/role-assignment-schedule-requests/create
type RoleAssignmentScheduleRequest struct {
	Id string `json:"id,omitempty"`

	Name string `json:"name,omitempty"`

	Type string `json:"type,omitempty"`

	Properties RoleAssignmentScheduleRequestProperties `json:"properties"`
}

type RoleAssignmentScheduleRequestProperties struct {
	Scope string `json:"scope,omitempty"`

	RoleDefinitionId string `json:"roleDefinitionId,omitempty"`

	PrincipalId string `json:"principalId,omitempty"`

	RequestType enums.RequestType `json:"requestType,omitempty"`

	Justification string `json:"justification,omitempty"`

	ScheduleInfo *ScheduleInfo `json:"scheduleInfo,omitempty"`

	LinkedRoleEligibilityScheduleId string `json:"linkedRoleEligibilityScheduleId,omitempty"`

	Status string `json:"status,omitempty"`
}

type ScheduleInfo struct {
	StartDateTime string `json:"startDateTime,omitempty"`

	Expiration *Expiration `json:"expiration,omitempty"`
}

type Expiration struct {
	// Type is AfterDuration for self-activation.
	Type string `json:"type,omitempty"`

	// Duration is an ISO 8601 duration, e.g. PT8H.
	Duration string `json:"duration,omitempty"`

	EndDateTime string `json:"endDateTime,omitempty"`
}

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

package client

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid"

	"github.com/bloodhoundad/pimhound/client/query"
	"github.com/bloodhoundad/pimhound/client/rest"
	"github.com/bloodhoundad/pimhound/constants"
	"github.com/bloodhoundad/pimhound/enums"
	"github.com/bloodhoundad/pimhound/models"
	"github.com/bloodhoundad/pimhound/models/azure"
)

// ListActiveRoles lists the signed-in principal's activated PIM role
// assignments on the given subscription. Standing (non-PIM) assignments are
// skipped; they carry no eligibility schedule to deactivate.
// https://learn.microsoft.com/en-us/rest/api/authorization/role-assignment-schedule-instances/list-for-scope
func (s *azureClient) ListActiveRoles(ctx context.Context, subscriptionId string) ([]models.ActiveRole, error) {
	var (
		path   = fmt.Sprintf("/subscriptions/%s/providers/Microsoft.Authorization/roleAssignmentScheduleInstances", subscriptionId)
		params = query.RMParams{ApiVersion: constants.PimApiVersion, Filter: "asTarget()"}
	)

	raw, err := getAzureObjectList[azure.RoleAssignmentScheduleInstance](s.resourceManager, ctx, path, params)
	if err != nil {
		return nil, err
	}

	roles := make([]models.ActiveRole, 0, len(raw))
	for _, item := range raw {
		if item.Properties.LinkedRoleEligibilityScheduleId == "" {
			continue
		}
		roles = append(roles, models.ActiveRole{
			RoleIdentity: models.RoleIdentity{
				Id:               item.Id,
				RoleName:         item.Properties.ExpandedProperties.RoleDefinition.DisplayName,
				Scope:            item.Properties.Scope,
				ScopeDisplayName: item.Properties.ExpandedProperties.Scope.DisplayName,
				RoleDefinitionId: item.Properties.RoleDefinitionId,
			},
			LinkedRoleEligibilityScheduleId: item.Properties.LinkedRoleEligibilityScheduleId,
			StartDateTime:                   item.Properties.StartDateTime,
			EndDateTime:                     item.Properties.EndDateTime,
			SubscriptionId:                  subscriptionId,
			SubscriptionName:                item.Properties.ExpandedProperties.Scope.DisplayName,
		})
	}
	return roles, nil
}

// ActivateRole submits a SelfActivate schedule request for the target and
// returns the request status reported by the resource manager.
// https://learn.microsoft.com/en-us/rest/api/authorization/role-assignment-schedule-requests/create
func (s *azureClient) ActivateRole(ctx context.Context, request models.ActivationRequest) (enums.RequestStatus, error) {
	name, err := uuid.NewV4()
	if err != nil {
		return "", fmt.Errorf("unable to generate request name: %w", err)
	}

	var (
		path = fmt.Sprintf("%s/providers/Microsoft.Authorization/roleAssignmentScheduleRequests/%s", request.Target.Scope, name)
		body = azure.RoleAssignmentScheduleRequest{
			Properties: azure.RoleAssignmentScheduleRequestProperties{
				PrincipalId:      request.PrincipalId,
				RoleDefinitionId: request.Target.RoleDefinitionId,
				RequestType:      enums.RequestSelfActivate,
				Justification:    request.Justification,
				ScheduleInfo: &azure.ScheduleInfo{
					StartDateTime: time.Now().UTC().Format(time.RFC3339),
					Expiration: &azure.Expiration{
						Type:     "AfterDuration",
						Duration: isoDuration(request.Duration),
					},
				},
			},
		}
	)

	res, err := s.resourceManager.Put(ctx, path, body, query.RMParams{ApiVersion: constants.PimApiVersion}, nil)
	if err != nil {
		return "", err
	}

	var submitted azure.RoleAssignmentScheduleRequest
	if err := rest.Decode(res.Body, &submitted); err != nil {
		return "", fmt.Errorf("malformed schedule request response: %w", err)
	}
	return enums.RequestStatus(submitted.Properties.Status), nil
}

// DeactivateRole submits a SelfDeactivate schedule request for the target.
func (s *azureClient) DeactivateRole(ctx context.Context, request models.DeactivationRequest) error {
	name, err := uuid.NewV4()
	if err != nil {
		return fmt.Errorf("unable to generate request name: %w", err)
	}

	var (
		path = fmt.Sprintf("%s/providers/Microsoft.Authorization/roleAssignmentScheduleRequests/%s", request.Target.Scope, name)
		body = azure.RoleAssignmentScheduleRequest{
			Properties: azure.RoleAssignmentScheduleRequestProperties{
				PrincipalId:                     request.PrincipalId,
				RoleDefinitionId:                request.Target.RoleDefinitionId,
				RequestType:                     enums.RequestSelfDeactivate,
				Justification:                   request.Justification,
				LinkedRoleEligibilityScheduleId: request.Target.LinkedRoleEligibilityScheduleId,
			},
		}
	)

	res, err := s.resourceManager.Put(ctx, path, body, query.RMParams{ApiVersion: constants.PimApiVersion}, nil)
	if err != nil {
		return err
	}
	res.Body.Close()
	return nil
}

// isoDuration renders a duration the way scheduleInfo expects, e.g. PT8H or
// PT1H30M.
func isoDuration(d time.Duration) string {
	var (
		hours   = int(d.Hours())
		minutes = int(d.Minutes()) % 60
	)
	if minutes == 0 {
		return fmt.Sprintf("PT%dH", hours)
	} else if hours == 0 {
		return fmt.Sprintf("PT%dM", minutes)
	}
	return fmt.Sprintf("PT%dH%dM", hours, minutes)
}

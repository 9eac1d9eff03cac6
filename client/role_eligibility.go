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

	"github.com/bloodhoundad/pimhound/client/query"
	"github.com/bloodhoundad/pimhound/constants"
	"github.com/bloodhoundad/pimhound/models"
	"github.com/bloodhoundad/pimhound/models/azure"
)

// ListEligibleRoles lists the signed-in principal's eligible PIM role
// assignments on the given subscription.
// https://learn.microsoft.com/en-us/rest/api/authorization/role-eligibility-schedule-instances/list-for-scope
func (s *azureClient) ListEligibleRoles(ctx context.Context, subscriptionId string) ([]models.EligibleRole, error) {
	var (
		path   = fmt.Sprintf("/subscriptions/%s/providers/Microsoft.Authorization/roleEligibilityScheduleInstances", subscriptionId)
		params = query.RMParams{ApiVersion: constants.PimApiVersion, Filter: "asTarget()"}
	)

	raw, err := getAzureObjectList[azure.RoleEligibilityScheduleInstance](s.resourceManager, ctx, path, params)
	if err != nil {
		return nil, err
	}

	roles := make([]models.EligibleRole, 0, len(raw))
	for _, item := range raw {
		roles = append(roles, models.EligibleRole{
			RoleIdentity: models.RoleIdentity{
				Id:               item.Id,
				RoleName:         item.Properties.ExpandedProperties.RoleDefinition.DisplayName,
				Scope:            item.Properties.Scope,
				ScopeDisplayName: item.Properties.ExpandedProperties.Scope.DisplayName,
				RoleDefinitionId: item.Properties.RoleDefinitionId,
			},
			RoleEligibilityScheduleId: item.Properties.RoleEligibilityScheduleId,
		})
	}
	return roles, nil
}

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

	"github.com/bloodhoundad/pimhound/client/query"
	"github.com/bloodhoundad/pimhound/constants"
	"github.com/bloodhoundad/pimhound/models"
	"github.com/bloodhoundad/pimhound/models/azure"
)

// ListSubscriptions https://learn.microsoft.com/en-us/rest/api/resources/subscriptions/list
func (s *azureClient) ListSubscriptions(ctx context.Context) ([]models.Subscription, error) {
	params := query.RMParams{ApiVersion: constants.SubscriptionApiVersion}

	raw, err := getAzureObjectList[azure.Subscription](s.resourceManager, ctx, "/subscriptions", params)
	if err != nil {
		return nil, err
	}

	subscriptions := make([]models.Subscription, 0, len(raw))
	for _, item := range raw {
		subscriptions = append(subscriptions, models.Subscription{
			SubscriptionId: item.SubscriptionId,
			DisplayName:    item.DisplayName,
			TenantId:       item.TenantId,
		})
	}
	return subscriptions, nil
}

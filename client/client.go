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

//go:generate go run go.uber.org/mock/mockgen -destination=./mocks/client.go -package=mocks . AzureClient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/bloodhoundad/pimhound/client/config"
	"github.com/bloodhoundad/pimhound/client/query"
	"github.com/bloodhoundad/pimhound/client/rest"
	"github.com/bloodhoundad/pimhound/enums"
	"github.com/bloodhoundad/pimhound/models"
)

// PrincipalInfo identifies the signed-in principal.
type PrincipalInfo struct {
	PrincipalId       string
	UserPrincipalName string
	TenantId          string
}

// AzureClient defines the methods to interface with the Azure PIM REST API
// for subscription-scoped role assignments.
type AzureClient interface {
	ListSubscriptions(ctx context.Context) ([]models.Subscription, error)
	ListEligibleRoles(ctx context.Context, subscriptionId string) ([]models.EligibleRole, error)
	ListActiveRoles(ctx context.Context, subscriptionId string) ([]models.ActiveRole, error)
	ActivateRole(ctx context.Context, request models.ActivationRequest) (enums.RequestStatus, error)
	DeactivateRole(ctx context.Context, request models.DeactivationRequest) error
	PrincipalInfo(ctx context.Context) (PrincipalInfo, error)
	CloseIdleConnections()
}

func NewClient(config config.Config) (AzureClient, error) {
	if resourceManager, err := rest.NewRestClient(config.ManagementUrl(), config); err != nil {
		return nil, err
	} else {
		return &azureClient{resourceManager: resourceManager}, nil
	}
}

type azureClient struct {
	resourceManager rest.RestClient
}

func (s *azureClient) PrincipalInfo(ctx context.Context) (PrincipalInfo, error) {
	if claims, err := s.resourceManager.Authenticate(ctx); err != nil {
		return PrincipalInfo{}, err
	} else {
		return PrincipalInfo{
			PrincipalId:       claims.PrincipalId,
			UserPrincipalName: claims.UserPrincipalName,
			TenantId:          claims.TenantId,
		}, nil
	}
}

func (s *azureClient) CloseIdleConnections() {
	s.resourceManager.CloseIdleConnections()
}

type azureList[T any] struct {
	Value    []T    `json:"value"`
	NextLink string `json:"nextLink,omitempty"`
}

// getAzureObjectList follows nextLink pagination until the listing is
// exhausted.
func getAzureObjectList[T any](client rest.RestClient, ctx context.Context, path string, params query.Params) ([]T, error) {
	var (
		out      []T
		nextLink string
	)

	for {
		var (
			res *http.Response
			err error
		)

		if nextLink == "" {
			res, err = client.Get(ctx, path, params, nil)
		} else if endpoint, parseErr := url.Parse(nextLink); parseErr != nil {
			return nil, parseErr
		} else if req, reqErr := rest.NewRequest(ctx, http.MethodGet, endpoint, nil, nil, nil); reqErr != nil {
			return nil, reqErr
		} else {
			res, err = client.Send(req)
		}

		if err != nil {
			return nil, err
		}

		var list azureList[T]
		if err := rest.Decode(res.Body, &list); err != nil {
			return nil, err
		}

		out = append(out, list.Value...)

		if list.NextLink == "" {
			return out, nil
		}
		nextLink = list.NextLink
	}
}

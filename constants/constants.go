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

package constants

const (
	Name        = "pimhound"
	DisplayName = "PIMHound"
	Version     = "v0.3.0"

	AuthorityUrl       = "https://login.microsoftonline.com"
	ResourceManagerUrl = "https://management.azure.com"

	// SubscriptionApiVersion is the api-version for GET /subscriptions.
	SubscriptionApiVersion = "2022-12-01"

	// PimApiVersion covers roleEligibilityScheduleInstances,
	// roleAssignmentScheduleInstances and roleAssignmentScheduleRequests
	// under Microsoft.Authorization.
	PimApiVersion = "2020-10-01"

	// AzPowerShellClientID is used for the refresh token and password grants.
	AzPowerShellClientID = "1950a258-227b-4e31-a9cf-717495945fc2"

	UserAgent = Name + "/" + Version
)

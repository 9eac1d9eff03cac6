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

type Subscription struct {
	SubscriptionId string `json:"subscriptionId"`
	DisplayName    string `json:"displayName"`
	TenantId       string `json:"tenantId"`
}

// SubscriptionCacheDocument is the durable, user-scoped cache of the
// subscription listing. It is always rewritten as a whole, never patched.
type SubscriptionCacheDocument struct {
	LastUpdated   time.Time      `json:"lastUpdated"`
	Subscriptions []Subscription `json:"subscriptions"`
}

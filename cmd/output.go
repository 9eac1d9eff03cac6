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

package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/aquasecurity/table"

	"github.com/bloodhoundad/pimhound/batch"
	"github.com/bloodhoundad/pimhound/models"
)

func renderBatchTable(w io.Writer, result batch.Result) {
	t := table.New(w)
	t.SetHeaders("Role", "Scope", "Result", "Detail")
	for _, item := range result.Items {
		outcome := "failed"
		detail := item.Error
		if item.Success {
			outcome = "ok"
			detail = item.Status
		} else if result.State == batch.StateDryRun {
			outcome = "planned"
			detail = ""
		}
		t.AddRow(item.RoleName, item.ScopeDisplayName, outcome, detail)
	}
	t.Render()
	fmt.Fprintf(w, "%s: %d succeeded, %d failed\n", result.State, result.SuccessCount, result.FailCount)
}

func renderEligibleRolesTable(w io.Writer, roles []models.EligibleRole) {
	t := table.New(w)
	t.SetHeaders("Role", "Scope", "Assignment Id")
	for _, role := range roles {
		t.AddRow(role.RoleName, role.ScopeDisplayName, role.Id)
	}
	t.Render()
}

func renderActiveRolesTable(w io.Writer, roles []models.ActiveRole) {
	t := table.New(w)
	t.SetHeaders("Role", "Scope", "Ends")
	for _, role := range roles {
		t.AddRow(role.RoleName, role.ScopeDisplayName, role.EndDateTime)
	}
	t.Render()
}

func renderSubscriptionsTable(w io.Writer, doc models.SubscriptionCacheDocument, fromCache bool) {
	t := table.New(w)
	t.SetHeaders("Subscription", "Id", "Tenant")
	for _, sub := range doc.Subscriptions {
		t.AddRow(sub.DisplayName, sub.SubscriptionId, sub.TenantId)
	}
	t.Render()
	source := "fetched"
	if fromCache {
		source = "cached"
	}
	fmt.Fprintf(w, "%d subscriptions (%s %s)\n", len(doc.Subscriptions), source, doc.LastUpdated.Format(time.RFC3339))
}

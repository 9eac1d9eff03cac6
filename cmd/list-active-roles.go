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
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/bloodhoundad/pimhound/enums"
)

func init() {
	listRootCmd.AddCommand(listActiveRolesCmd)
}

var listActiveRolesCmd = &cobra.Command{
	Use:          "active-roles",
	Long:         "Lists the role assignments currently activated for the signed-in principal",
	Run:          listActiveRolesCmdImpl,
	SilenceUsage: true,
}

func listActiveRolesCmdImpl(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, os.Kill)
	defer gracefulShutdown(stop)

	format, err := outputFormat(cmd)
	if err != nil {
		exit(err)
	}

	azClient := connectAndCreateClient()
	defer azClient.CloseIdleConnections()

	subscription, err := listSubscription(ctx, cmd, azClient)
	if err != nil {
		exit(err)
	}

	log.V(1).Info("listing active roles", "subscription", subscription.SubscriptionId)
	roles, err := azClient.ListActiveRoles(ctx, subscription.SubscriptionId)
	if err != nil {
		exit(fmt.Errorf("unable to list active roles: %w", err))
	}

	if format == enums.OutputJson {
		outputJson(roles)
	} else {
		renderActiveRolesTable(os.Stdout, roles)
	}
}

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
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bloodhoundad/pimhound/client"
	"github.com/bloodhoundad/pimhound/models"
	"github.com/bloodhoundad/pimhound/prompt"
)

func init() {
	listRootCmd.PersistentFlags().String("subscription", "", "Subscription id to list from")
	listRootCmd.PersistentFlags().StringP("output", "o", "json", "Output format: json or table")
	rootCmd.AddCommand(listRootCmd)
}

var listRootCmd = &cobra.Command{
	Use:          "list",
	Long:         "Lists PIM role assignments",
	RunE:         func(cmd *cobra.Command, args []string) error { return cmd.Usage() },
	SilenceUsage: true,
}

// listSubscription resolves the subscription the listing runs against,
// prompting when the account has more than one.
func listSubscription(ctx context.Context, cmd *cobra.Command, azClient client.AzureClient) (models.Subscription, error) {
	docStore, err := newStore()
	if err != nil {
		return models.Subscription{}, err
	}

	principal, err := azClient.PrincipalInfo(ctx)
	if err != nil {
		return models.Subscription{}, fmt.Errorf("unable to authenticate: %w", err)
	}

	subscriptionId, _ := cmd.Flags().GetString("subscription")
	nonInteractive := !isTerminal()

	return pickSubscription(ctx, docStore, azClient, principal.PrincipalId, subscriptionId, nonInteractive, prompt.NewConsolePrompter())
}

func isTerminal() bool {
	info, err := os.Stdout.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}

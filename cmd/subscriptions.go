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

	"github.com/bloodhoundad/pimhound/cache"
	"github.com/bloodhoundad/pimhound/enums"
)

func init() {
	subscriptionsCmd.Flags().Bool("refresh", false, "Bypass the cache and fetch a fresh listing")
	subscriptionsCmd.Flags().StringP("output", "o", "json", "Output format: json or table")
	subscriptionsCmd.AddCommand(subscriptionsInvalidateCmd)
	rootCmd.AddCommand(subscriptionsCmd)
}

var subscriptionsCmd = &cobra.Command{
	Use:          "subscriptions",
	Long:         "Lists the subscriptions visible to the signed-in principal through the cache",
	Run:          subscriptionsCmdImpl,
	SilenceUsage: true,
}

func subscriptionsCmdImpl(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, os.Kill)
	defer gracefulShutdown(stop)

	format, err := outputFormat(cmd)
	if err != nil {
		exit(err)
	}
	refresh, _ := cmd.Flags().GetBool("refresh")

	docStore, err := newStore()
	if err != nil {
		exit(err)
	}

	azClient := connectAndCreateClient()
	defer azClient.CloseIdleConnections()

	principal, err := azClient.PrincipalInfo(ctx)
	if err != nil {
		exit(fmt.Errorf("unable to authenticate: %w", err))
	}

	subCache := cache.NewSubscriptionCache(docStore, azClient)
	doc, fromCache, err := subCache.Get(ctx, principal.PrincipalId, refresh)
	if err != nil {
		exit(err)
	}

	if format == enums.OutputJson {
		outputJson(doc)
	} else {
		renderSubscriptionsTable(os.Stdout, doc, fromCache)
	}
}

var subscriptionsInvalidateCmd = &cobra.Command{
	Use:          "invalidate",
	Long:         "Drops the cached subscription listing for the signed-in principal",
	Run:          subscriptionsInvalidateCmdImpl,
	SilenceUsage: true,
}

func subscriptionsInvalidateCmdImpl(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, os.Kill)
	defer gracefulShutdown(stop)

	docStore, err := newStore()
	if err != nil {
		exit(err)
	}

	azClient := connectAndCreateClient()
	defer azClient.CloseIdleConnections()

	principal, err := azClient.PrincipalInfo(ctx)
	if err != nil {
		exit(fmt.Errorf("unable to authenticate: %w", err))
	}

	subCache := cache.NewSubscriptionCache(docStore, azClient)
	if err := subCache.Invalidate(principal.PrincipalId); err != nil {
		exit(err)
	}
	log.Info("subscription cache invalidated")
}

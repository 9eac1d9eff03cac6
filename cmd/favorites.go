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

	"github.com/spf13/cobra"

	"github.com/bloodhoundad/pimhound/errs"
	"github.com/bloodhoundad/pimhound/models"
	"github.com/bloodhoundad/pimhound/options"
)

func init() {
	favoritesAddCmd.Flags().String("subscription", "", "Subscription id the favorite points at")
	favoritesAddCmd.Flags().StringArray("role", nil, "Role name the favorite includes; repeatable")
	favoritesAddCmd.Flags().String("description", "", "Free-form description")

	favoritesCmd.AddCommand(favoritesListCmd)
	favoritesCmd.AddCommand(favoritesAddCmd)
	favoritesCmd.AddCommand(favoritesRemoveCmd)
	rootCmd.AddCommand(favoritesCmd)
}

var favoritesCmd = &cobra.Command{
	Use:          "favorites",
	Long:         "Manages saved role shortcuts",
	RunE:         func(cmd *cobra.Command, args []string) error { return cmd.Usage() },
	SilenceUsage: true,
}

var favoritesListCmd = &cobra.Command{
	Use:          "list",
	Long:         "Shows the favorites document",
	Run:          favoritesListCmdImpl,
	SilenceUsage: true,
}

func favoritesListCmdImpl(cmd *cobra.Command, args []string) {
	docStore, err := newStore()
	if err != nil {
		exit(err)
	}

	doc, err := options.LoadFavorites(docStore)
	if err != nil {
		exit(err)
	}
	outputJson(doc)
}

var favoritesAddCmd = &cobra.Command{
	Use:          "add NAME",
	Long:         "Adds or replaces a favorite",
	Args:         cobra.ExactArgs(1),
	Run:          favoritesAddCmdImpl,
	SilenceUsage: true,
}

func favoritesAddCmdImpl(cmd *cobra.Command, args []string) {
	name := args[0]
	subscription, _ := cmd.Flags().GetString("subscription")
	roles, _ := cmd.Flags().GetStringArray("role")
	description, _ := cmd.Flags().GetString("description")

	if subscription == "" && len(roles) == 0 {
		exit(errs.ConfigError{Reason: "a favorite needs --subscription, --role or both"})
	}

	docStore, err := newStore()
	if err != nil {
		exit(err)
	}

	doc, err := options.LoadFavorites(docStore)
	if err != nil {
		exit(err)
	}

	if doc.Favorites == nil {
		doc.Favorites = map[string]models.Favorite{}
	}
	doc.Favorites[name] = models.Favorite{
		Description:    description,
		SubscriptionId: subscription,
		RoleNames:      roles,
	}

	if err := options.SaveFavorites(docStore, doc); err != nil {
		exit(err)
	}
	log.Info(fmt.Sprintf("saved favorite %q", name))
}

var favoritesRemoveCmd = &cobra.Command{
	Use:          "remove NAME",
	Long:         "Removes a favorite",
	Args:         cobra.ExactArgs(1),
	Run:          favoritesRemoveCmdImpl,
	SilenceUsage: true,
}

func favoritesRemoveCmdImpl(cmd *cobra.Command, args []string) {
	name := args[0]

	docStore, err := newStore()
	if err != nil {
		exit(err)
	}

	doc, err := options.LoadFavorites(docStore)
	if err != nil {
		exit(err)
	}

	if _, ok := doc.Favorites[name]; !ok {
		exit(errs.NotFoundError{Kind: "favorite", Name: name})
	}
	delete(doc.Favorites, name)

	if err := options.SaveFavorites(docStore, doc); err != nil {
		exit(err)
	}
	log.Info(fmt.Sprintf("removed favorite %q", name))
}

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
	"github.com/spf13/cobra"

	"github.com/bloodhoundad/pimhound/options"
)

func init() {
	presetsCmd.AddCommand(presetsListCmd)
	rootCmd.AddCommand(presetsCmd)
}

var presetsCmd = &cobra.Command{
	Use:          "presets",
	Long:         "Manages the named option presets",
	RunE:         func(cmd *cobra.Command, args []string) error { return cmd.Usage() },
	SilenceUsage: true,
}

var presetsListCmd = &cobra.Command{
	Use:          "list",
	Long:         "Shows the presets document and its registered defaults",
	Run:          presetsListCmdImpl,
	SilenceUsage: true,
}

func presetsListCmdImpl(cmd *cobra.Command, args []string) {
	docStore, err := newStore()
	if err != nil {
		exit(err)
	}

	doc, err := options.LoadPresets(docStore)
	if err != nil {
		exit(err)
	}
	outputJson(doc)
}

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
	"os"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/bloodhoundad/pimhound/config"
	"github.com/bloodhoundad/pimhound/constants"
)

var log logr.Logger

func init() {
	config.Init(rootCmd, config.Options())
}

var rootCmd = &cobra.Command{
	Use:               constants.Name,
	Long:              constants.DisplayName + " activates and deactivates Azure PIM role assignments on subscriptions",
	PersistentPreRunE: persistentPreRunE,
	Version:           constants.Version,
	SilenceUsage:      true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

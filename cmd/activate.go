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
	"errors"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/bloodhoundad/pimhound/errs"
	"github.com/bloodhoundad/pimhound/options"
)

func init() {
	scheduleFlags(activateCmd, true)
	rootCmd.AddCommand(activateCmd)
}

var activateCmd = &cobra.Command{
	Use:          "activate",
	Long:         "Activates eligible Azure PIM role assignments",
	Run:          activateCmdImpl,
	SilenceUsage: true,
}

func activateCmdImpl(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, os.Kill)
	defer gracefulShutdown(stop)

	format, err := outputFormat(cmd)
	if err != nil {
		exit(err)
	}

	result, err := runSchedule(ctx, cmd, options.CommandActivate)
	if errors.Is(err, errs.ErrCancelled) {
		os.Exit(1)
	} else if err != nil {
		exit(err)
	}

	outputBatchResult(format, result)
	if result.FailCount > 0 {
		os.Exit(1)
	}
}

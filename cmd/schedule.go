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
	"time"

	"github.com/spf13/cobra"

	"github.com/bloodhoundad/pimhound/batch"
	"github.com/bloodhoundad/pimhound/cache"
	"github.com/bloodhoundad/pimhound/client"
	"github.com/bloodhoundad/pimhound/enums"
	"github.com/bloodhoundad/pimhound/errs"
	"github.com/bloodhoundad/pimhound/models"
	"github.com/bloodhoundad/pimhound/options"
	"github.com/bloodhoundad/pimhound/prompt"
	"github.com/bloodhoundad/pimhound/resolver"
	"github.com/bloodhoundad/pimhound/store"
)

// scheduleFlags registers the flags activate and deactivate share.
func scheduleFlags(cmd *cobra.Command, withDuration bool) {
	flags := cmd.Flags()
	flags.String("subscription", "", "Subscription id to act on")
	flags.StringArray("role", nil, "Role name to act on; repeatable")
	flags.String("justification", "", "Justification recorded on the schedule request")
	flags.String("preset", "", "Named preset supplying default options")
	flags.String("favorite", "", "Saved favorite supplying subscription and roles")
	flags.Bool("non-interactive", false, "Fail instead of prompting")
	flags.BoolP("yes", "y", false, "Skip the confirmation prompt")
	flags.Bool("allow-multiple", false, "Act on every assignment matching a role name")
	flags.Bool("dry-run", false, "Show the plan without submitting anything")
	flags.StringP("output", "o", "json", "Output format: json or table")
	if withDuration {
		flags.Int("duration", options.DefaultDurationHours, "Activation duration in hours")
	}
}

// scheduleInput reads the shared flags, recording per-flag provenance so the
// option resolution engine can tell an explicit value from a flag default.
func scheduleInput(cmd *cobra.Command) options.Input {
	flags := cmd.Flags()

	subscription, _ := flags.GetString("subscription")
	roles, _ := flags.GetStringArray("role")
	justification, _ := flags.GetString("justification")
	allowMultiple, _ := flags.GetBool("allow-multiple")
	preset, _ := flags.GetString("preset")

	in := options.Input{
		SubscriptionId: options.Value[string]{Val: subscription, Explicit: flags.Changed("subscription")},
		RoleNames:      options.Value[[]string]{Val: roles, Explicit: flags.Changed("role")},
		Justification:  options.Value[string]{Val: justification, Explicit: flags.Changed("justification")},
		AllowMultiple:  options.Value[bool]{Val: allowMultiple, Explicit: flags.Changed("allow-multiple")},
		PresetName:     preset,
	}

	if flags.Lookup("duration") != nil {
		duration, _ := flags.GetInt("duration")
		in.DurationHours = options.Value[int]{Val: duration, Explicit: flags.Changed("duration")}
	}

	return in
}

// runSchedule is the shared activate/deactivate flow: resolve options, pin
// down the subscription through the cache, fetch the candidate pool, resolve
// targets and hand the batch engine a submit closure.
func runSchedule(ctx context.Context, cmd *cobra.Command, command options.Command) (batch.Result, error) {
	var (
		flags             = cmd.Flags()
		nonInteractive, _ = flags.GetBool("non-interactive")
		yes, _            = flags.GetBool("yes")
		dryRun, _         = flags.GetBool("dry-run")
		favoriteName, _   = flags.GetString("favorite")
		prompter          = prompt.NewConsolePrompter()
		none              batch.Result
	)

	docStore, err := newStore()
	if err != nil {
		return none, err
	}

	presets, err := options.LoadPresets(docStore)
	if err != nil {
		return none, err
	}

	var favorite *models.OptionSet
	if favoriteName != "" {
		if favorites, err := options.LoadFavorites(docStore); err != nil {
			return none, err
		} else if favorite, err = options.LookupFavorite(favorites, favoriteName); err != nil {
			return none, err
		}
	}

	azClient := connectAndCreateClient()
	defer azClient.CloseIdleConnections()

	principal, err := azClient.PrincipalInfo(ctx)
	if err != nil {
		return none, fmt.Errorf("unable to authenticate: %w", err)
	}

	identity := options.Identity{
		UserId:            principal.PrincipalId,
		UserPrincipalName: principal.UserPrincipalName,
	}

	resolved, err := options.Resolve(command, scheduleInput(cmd), presets, favorite, identity, time.Now())
	if err != nil {
		return none, err
	}

	subscription, err := pickSubscription(ctx, docStore, azClient, principal.PrincipalId, resolved.SubscriptionId, nonInteractive, prompter)
	if err != nil {
		return none, err
	}

	var (
		targets  []models.ResolvedTarget
		poolDesc = fmt.Sprintf("subscription %q", subscription.DisplayName)
		mode     = resolver.Mode{AllowMultiple: resolved.AllowMultiple, NonInteractive: nonInteractive}
	)

	if command == options.CommandActivate {
		pool, err := azClient.ListEligibleRoles(ctx, subscription.SubscriptionId)
		if err != nil {
			return none, fmt.Errorf("unable to list eligible roles: %w", err)
		}
		targets, err = resolver.Resolve(resolved.RoleNames, pool, poolDesc, mode, prompter)
		if err != nil {
			return none, err
		}
	} else {
		pool, err := azClient.ListActiveRoles(ctx, subscription.SubscriptionId)
		if err != nil {
			return none, fmt.Errorf("unable to list active roles: %w", err)
		}
		targets, err = resolver.Resolve(resolved.RoleNames, pool, poolDesc, mode, prompter)
		if err != nil {
			return none, err
		}
	}

	return batch.Run(ctx, batch.Request{
		Verb:     verb(command),
		Targets:  targets,
		Options:  resolved,
		DryRun:   dryRun,
		Yes:      yes,
		Prompter: prompter,
		Submit:   submitFunc(command, azClient, principal.PrincipalId, resolved),
	})
}

func verb(command options.Command) string {
	if command == options.CommandActivate {
		return "Activate"
	}
	return "Deactivate"
}

func submitFunc(command options.Command, azClient client.AzureClient, principalId string, resolved options.Resolved) batch.SubmitFunc {
	if command == options.CommandActivate {
		return func(ctx context.Context, target models.ResolvedTarget) (string, error) {
			status, err := azClient.ActivateRole(ctx, models.ActivationRequest{
				Target:        target,
				PrincipalId:   principalId,
				Justification: resolved.Justification,
				Duration:      time.Duration(resolved.DurationHours) * time.Hour,
			})
			return string(status), err
		}
	}
	return func(ctx context.Context, target models.ResolvedTarget) (string, error) {
		err := azClient.DeactivateRole(ctx, models.DeactivationRequest{
			Target:        target,
			PrincipalId:   principalId,
			Justification: resolved.Justification,
		})
		if err != nil {
			return "", err
		}
		return string(enums.StatusProvisioned), nil
	}
}

// pickSubscription validates an explicit subscription id against the cache,
// refreshing once on a miss, or lets the operator choose one interactively
// when none was supplied.
func pickSubscription(ctx context.Context, docStore store.Store, azClient client.AzureClient, userId, subscriptionId string, nonInteractive bool, prompter prompt.Prompter) (models.Subscription, error) {
	subCache := cache.NewSubscriptionCache(docStore, azClient)

	doc, _, err := subCache.Get(ctx, userId, false)
	if err != nil {
		return models.Subscription{}, err
	}

	if subscriptionId != "" {
		if sub, ok := subCache.ValidateSubscriptionId(userId, subscriptionId); ok {
			return *sub, nil
		}
		// the cache may simply predate the subscription
		if doc, _, err = subCache.Get(ctx, userId, true); err != nil {
			return models.Subscription{}, err
		}
		if sub, ok := subCache.ValidateSubscriptionId(userId, subscriptionId); ok {
			return *sub, nil
		}
		return models.Subscription{}, errs.NotFoundError{
			Kind:      "subscription",
			Name:      subscriptionId,
			Available: subscriptionIds(doc.Subscriptions),
		}
	}

	switch {
	case len(doc.Subscriptions) == 0:
		return models.Subscription{}, errs.ErrNoTargets
	case len(doc.Subscriptions) == 1:
		return doc.Subscriptions[0], nil
	case nonInteractive:
		return models.Subscription{}, errs.ConfigError{Reason: "no subscription specified; pass --subscription when running non-interactively"}
	}

	choices := make([]prompt.Choice, 0, len(doc.Subscriptions))
	for _, sub := range doc.Subscriptions {
		choices = append(choices, prompt.Choice{
			Id:    sub.SubscriptionId,
			Label: fmt.Sprintf("%s (%s)", sub.DisplayName, sub.SubscriptionId),
		})
	}

	picked, err := prompter.SelectOne("Subscription", choices)
	if err != nil {
		return models.Subscription{}, err
	}
	if sub, ok := subCache.ValidateSubscriptionId(userId, picked); ok {
		return *sub, nil
	}
	return models.Subscription{}, errs.ErrCancelled
}

func subscriptionIds(subscriptions []models.Subscription) []string {
	ids := make([]string, 0, len(subscriptions))
	for _, sub := range subscriptions {
		ids = append(ids, sub.SubscriptionId)
	}
	return ids
}

func outputBatchResult(format enums.OutputFormat, result batch.Result) {
	if format == enums.OutputJson {
		outputJson(result)
		return
	}
	renderBatchTable(os.Stdout, result)
}

package resolver

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bloodhoundad/pimhound/errs"
	"github.com/bloodhoundad/pimhound/models"
	"github.com/bloodhoundad/pimhound/prompt"
)

// scriptedPrompter replays canned subset selections.
type scriptedPrompter struct {
	selections  [][]string
	selectCalls int
}

func (s *scriptedPrompter) Confirm(string) (bool, error) { return true, nil }

func (s *scriptedPrompter) SelectSubset(label string, choices []prompt.Choice) ([]string, error) {
	s.selectCalls++
	if len(s.selections) == 0 {
		return nil, nil
	}
	next := s.selections[0]
	s.selections = s.selections[1:]
	return next, nil
}

func (s *scriptedPrompter) SelectOne(label string, choices []prompt.Choice) (string, error) {
	if len(choices) == 0 {
		return "", nil
	}
	return choices[0].Id, nil
}

func eligible(id, roleName, scopeName string) models.EligibleRole {
	return models.EligibleRole{
		RoleIdentity: models.RoleIdentity{
			Id:               id,
			RoleName:         roleName,
			Scope:            "/subscriptions/sub-1",
			ScopeDisplayName: scopeName,
			RoleDefinitionId: "def-" + id,
		},
		RoleEligibilityScheduleId: "sched-" + id,
	}
}

func testPool() []models.EligibleRole {
	return []models.EligibleRole{
		eligible("1", "Owner", "prod"),
		eligible("2", "Contributor", "prod"),
		eligible("3", "Contributor", "prod-rg"),
		eligible("4", "Reader", "prod"),
	}
}

func TestNormalizeRoleName(t *testing.T) {
	require.Equal(t, "owner", NormalizeRoleName("  Owner "))
	require.Equal(t, "owner", NormalizeRoleName(NormalizeRoleName("  OWNER ")))
	require.Equal(t, NormalizeRoleName("reader"), NormalizeRoleName("\tREADER\n"))
}

func TestResolve(t *testing.T) {
	t.Run("single match resolves to one target", func(t *testing.T) {
		targets, err := Resolve([]string{"Owner"}, testPool(), "eligible role assignments", Mode{}, &scriptedPrompter{})

		require.NoError(t, err)
		require.Len(t, targets, 1)
		require.Equal(t, "1", targets[0].Id)
		require.Equal(t, "def-1", targets[0].RoleDefinitionId)
	})

	t.Run("matching is case and whitespace insensitive", func(t *testing.T) {
		targets, err := Resolve([]string{"  oWnEr "}, testPool(), "eligible role assignments", Mode{}, &scriptedPrompter{})

		require.NoError(t, err)
		require.Len(t, targets, 1)
		require.Equal(t, "1", targets[0].Id)
	})

	t.Run("unmatched name aborts before anything resolves", func(t *testing.T) {
		_, err := Resolve([]string{"Owner", "Janitor"}, testPool(), "eligible role assignments in subscription prod", Mode{}, &scriptedPrompter{})

		var notFound errs.NotFoundError
		require.ErrorAs(t, err, &notFound)
		require.Equal(t, "Janitor", notFound.Name)
		require.Contains(t, notFound.Context, "subscription prod")
	})

	t.Run("ambiguous non-interactive fails with match count", func(t *testing.T) {
		_, err := Resolve([]string{"Contributor"}, testPool(), "eligible role assignments", Mode{NonInteractive: true}, &scriptedPrompter{})

		var ambiguous errs.AmbiguousError
		require.ErrorAs(t, err, &ambiguous)
		require.Equal(t, 2, ambiguous.Matches)
	})

	t.Run("allow-multiple takes every match", func(t *testing.T) {
		targets, err := Resolve([]string{"Contributor"}, testPool(), "eligible role assignments", Mode{AllowMultiple: true, NonInteractive: true}, &scriptedPrompter{})

		require.NoError(t, err)
		require.Len(t, targets, 2)
		require.Equal(t, "2", targets[0].Id)
		require.Equal(t, "3", targets[1].Id)
	})

	t.Run("interactive disambiguation includes only the picked subset", func(t *testing.T) {
		prompter := &scriptedPrompter{selections: [][]string{{"3"}}}

		targets, err := Resolve([]string{"Contributor", "Reader"}, testPool(), "eligible role assignments", Mode{}, prompter)

		require.NoError(t, err)
		require.Equal(t, 1, prompter.selectCalls)
		require.Len(t, targets, 2)
		require.Equal(t, "3", targets[0].Id)
		require.Equal(t, "4", targets[1].Id)
	})

	t.Run("empty interactive pick skips the name without failing", func(t *testing.T) {
		// the operator may decline one ambiguous name while still acting on
		// the rest; only a zero total is an error
		prompter := &scriptedPrompter{selections: [][]string{{}}}

		targets, err := Resolve([]string{"Contributor", "Owner"}, testPool(), "eligible role assignments", Mode{}, prompter)

		require.NoError(t, err)
		require.Len(t, targets, 1)
		require.Equal(t, "1", targets[0].Id)
	})

	t.Run("empty pick on the only name leaves nothing to do", func(t *testing.T) {
		prompter := &scriptedPrompter{selections: [][]string{{}}}

		_, err := Resolve([]string{"Contributor"}, testPool(), "eligible role assignments", Mode{}, prompter)

		require.ErrorIs(t, err, errs.ErrNoTargets)
	})

	t.Run("duplicate ids collapse across requested names", func(t *testing.T) {
		targets, err := Resolve([]string{"Owner", " OWNER "}, testPool(), "eligible role assignments", Mode{}, &scriptedPrompter{})

		require.NoError(t, err)
		require.Len(t, targets, 1)
	})

	t.Run("never returns duplicate target ids", func(t *testing.T) {
		targets, err := Resolve([]string{"Owner", "Contributor", "owner", "Reader"}, testPool(), "eligible role assignments", Mode{AllowMultiple: true}, &scriptedPrompter{})

		require.NoError(t, err)
		seen := map[string]bool{}
		for _, target := range targets {
			require.False(t, seen[target.Id], "duplicate target id %s", target.Id)
			seen[target.Id] = true
		}
		require.Len(t, targets, 4)
	})

	t.Run("no names non-interactive has no targets", func(t *testing.T) {
		_, err := Resolve(nil, testPool(), "eligible role assignments", Mode{NonInteractive: true}, &scriptedPrompter{})

		require.ErrorIs(t, err, errs.ErrNoTargets)
	})

	t.Run("no names interactive offers the whole pool", func(t *testing.T) {
		prompter := &scriptedPrompter{selections: [][]string{{"2", "4"}}}

		targets, err := Resolve(nil, testPool(), "eligible role assignments", Mode{}, prompter)

		require.NoError(t, err)
		require.Equal(t, 1, prompter.selectCalls)
		require.Len(t, targets, 2)
	})

	t.Run("empty pool has no targets", func(t *testing.T) {
		_, err := Resolve(nil, []models.EligibleRole{}, "eligible role assignments", Mode{}, &scriptedPrompter{})

		require.ErrorIs(t, err, errs.ErrNoTargets)
	})

	t.Run("prompter cancellation propagates", func(t *testing.T) {
		_, err := Resolve([]string{"Contributor"}, testPool(), "eligible role assignments", Mode{}, cancellingPrompter{})

		require.ErrorIs(t, err, errs.ErrCancelled)
	})
}

type cancellingPrompter struct{}

func (cancellingPrompter) Confirm(string) (bool, error) { return false, nil }

func (cancellingPrompter) SelectSubset(string, []prompt.Choice) ([]string, error) {
	return nil, errs.ErrCancelled
}

func (cancellingPrompter) SelectOne(string, []prompt.Choice) (string, error) {
	return "", errs.ErrCancelled
}

func TestResolve_ActiveRoles(t *testing.T) {
	pool := []models.ActiveRole{
		{
			RoleIdentity: models.RoleIdentity{
				Id:               "a1",
				RoleName:         "Owner",
				Scope:            "/subscriptions/sub-1",
				ScopeDisplayName: "prod",
				RoleDefinitionId: "def-a1",
			},
			LinkedRoleEligibilityScheduleId: "elig-a1",
			SubscriptionId:                  "sub-1",
		},
	}

	targets, err := Resolve([]string{"owner"}, pool, "active role assignments", Mode{NonInteractive: true}, &scriptedPrompter{})

	require.NoError(t, err)
	require.Len(t, targets, 1)
	require.Equal(t, "elig-a1", targets[0].LinkedRoleEligibilityScheduleId)
	require.Equal(t, "sub-1", targets[0].SubscriptionId)
}

func TestResolve_ErrorMessages(t *testing.T) {
	_, err := Resolve([]string{"Ghost"}, testPool(), "eligible role assignments in subscription prod", Mode{}, &scriptedPrompter{})

	var notFound errs.NotFoundError
	require.True(t, errors.As(err, &notFound))
	require.Contains(t, err.Error(), `role "Ghost" not found`)
}

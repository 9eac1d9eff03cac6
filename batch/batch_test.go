package batch

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bloodhoundad/pimhound/client/rest"
	"github.com/bloodhoundad/pimhound/errs"
	"github.com/bloodhoundad/pimhound/models"
	"github.com/bloodhoundad/pimhound/prompt"
)

type fakePrompter struct {
	confirm    bool
	confirmErr error
	asked      int
}

func (s *fakePrompter) Confirm(message string) (bool, error) {
	s.asked++
	return s.confirm, s.confirmErr
}

func (s *fakePrompter) SelectSubset(label string, choices []prompt.Choice) ([]string, error) {
	return nil, nil
}

func (s *fakePrompter) SelectOne(label string, choices []prompt.Choice) (string, error) {
	return "", nil
}

func testTargets(n int) []models.ResolvedTarget {
	targets := make([]models.ResolvedTarget, 0, n)
	for i := 0; i < n; i++ {
		targets = append(targets, models.ResolvedTarget{
			Id:               string(rune('a' + i)),
			RoleName:         "Contributor",
			ScopeDisplayName: "prod",
		})
	}
	return targets
}

func TestRun_DryRun(t *testing.T) {
	calls := 0
	req := Request{
		Verb:    "Activate",
		Targets: testTargets(2),
		DryRun:  true,
		Submit: func(ctx context.Context, target models.ResolvedTarget) (string, error) {
			calls++
			return "Provisioned", nil
		},
	}

	result, err := Run(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, StateDryRun, result.State)
	require.Zero(t, calls)
	require.Len(t, result.Items, 2)
	for _, item := range result.Items {
		require.False(t, item.Success)
		require.Equal(t, "Planned", item.Status)
	}
	require.Zero(t, result.SuccessCount)
	require.Zero(t, result.FailCount)
}

func TestRun_ConfirmDeclined(t *testing.T) {
	calls := 0
	prompter := &fakePrompter{confirm: false}
	req := Request{
		Verb:     "Activate",
		Targets:  testTargets(3),
		Prompter: prompter,
		Submit: func(ctx context.Context, target models.ResolvedTarget) (string, error) {
			calls++
			return "Provisioned", nil
		},
	}

	result, err := Run(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, StateCancelled, result.State)
	require.Equal(t, 1, prompter.asked)
	require.Zero(t, calls)
	require.Len(t, result.Items, 3)
	for _, item := range result.Items {
		require.False(t, item.Success)
		require.Equal(t, errs.ErrCancelled.Error(), item.Error)
	}
	require.Equal(t, 3, result.FailCount)
}

func TestRun_YesSkipsConfirmation(t *testing.T) {
	prompter := &fakePrompter{confirm: false}
	req := Request{
		Targets:  testTargets(1),
		Yes:      true,
		Prompter: prompter,
		Submit: func(ctx context.Context, target models.ResolvedTarget) (string, error) {
			return "Provisioned", nil
		},
	}

	result, err := Run(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, StateCompleted, result.State)
	require.Zero(t, prompter.asked)
	require.Equal(t, 1, result.SuccessCount)
}

func TestRun_ContinuesPastFailures(t *testing.T) {
	var submitted []string
	req := Request{
		Targets: testTargets(3),
		Yes:     true,
		Submit: func(ctx context.Context, target models.ResolvedTarget) (string, error) {
			submitted = append(submitted, target.Id)
			if target.Id == "b" {
				return "", rest.AzureError{StatusCode: 403, Code: "AuthorizationFailed", Message: "denied"}
			}
			return "Provisioned", nil
		},
	}

	result, err := Run(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, StateCompleted, result.State)
	require.Equal(t, []string{"a", "b", "c"}, submitted)

	require.True(t, result.Items[0].Success)
	require.Equal(t, "Provisioned", result.Items[0].Status)
	require.False(t, result.Items[1].Success)
	require.Contains(t, result.Items[1].Error, "permission denied")
	require.True(t, result.Items[2].Success)

	require.Equal(t, 2, result.SuccessCount)
	require.Equal(t, 1, result.FailCount)
}

func TestRun_ContextCancelledMidBatch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var submitted []string
	req := Request{
		Targets: testTargets(3),
		Yes:     true,
		Submit: func(ctx context.Context, target models.ResolvedTarget) (string, error) {
			submitted = append(submitted, target.Id)
			cancel()
			return "Provisioned", nil
		},
	}

	result, err := Run(ctx, req)
	require.NoError(t, err)
	require.Equal(t, StateCancelled, result.State)
	require.Equal(t, []string{"a"}, submitted)
	require.Len(t, result.Items, 3)
	require.True(t, result.Items[0].Success)
	require.Equal(t, errs.ErrCancelled.Error(), result.Items[1].Error)
	require.Equal(t, errs.ErrCancelled.Error(), result.Items[2].Error)
	require.Equal(t, 1, result.SuccessCount)
	require.Equal(t, 2, result.FailCount)
}

func TestRun_ConfirmError(t *testing.T) {
	prompter := &fakePrompter{confirmErr: errs.ErrCancelled}
	req := Request{
		Targets:  testTargets(1),
		Prompter: prompter,
		Submit: func(ctx context.Context, target models.ResolvedTarget) (string, error) {
			t.Fatal("submit must not run")
			return "", nil
		},
	}

	_, err := Run(context.Background(), req)
	require.ErrorIs(t, err, errs.ErrCancelled)
}

func TestClassify(t *testing.T) {
	t.Run("403 is permission denied", func(t *testing.T) {
		err := classify(rest.AzureError{StatusCode: 403, Code: "AuthorizationFailed"})
		var denied errs.PermissionDeniedError
		require.True(t, errors.As(err, &denied))
	})

	t.Run("authorization code without 403 is permission denied", func(t *testing.T) {
		err := classify(rest.AzureError{StatusCode: 400, Code: "AuthorizationFailed"})
		var denied errs.PermissionDeniedError
		require.True(t, errors.As(err, &denied))
	})

	t.Run("policy validation failure is a duration policy error", func(t *testing.T) {
		err := classify(rest.AzureError{StatusCode: 400, Code: "RoleAssignmentRequestPolicyValidationFailed"})
		var policy errs.DurationPolicyError
		require.True(t, errors.As(err, &policy))
	})

	t.Run("expiration rule message is a duration policy error", func(t *testing.T) {
		err := classify(rest.AzureError{StatusCode: 400, Code: "BadRequest", Message: "The Expiration Rule (ExpirationRule) was violated"})
		var policy errs.DurationPolicyError
		require.True(t, errors.As(err, &policy))
	})

	t.Run("anything else is a transport error", func(t *testing.T) {
		err := classify(errors.New("connection reset"))
		var transport errs.TransportError
		require.True(t, errors.As(err, &transport))
		require.ErrorContains(t, err, "connection reset")
	})
}

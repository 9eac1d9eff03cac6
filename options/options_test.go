package options

import (
	"errors"
	"testing"
	"time"

	"github.com/bloodhoundad/pimhound/errs"
	"github.com/bloodhoundad/pimhound/models"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/bloodhoundad/pimhound/store"
)

var (
	testNow      = time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)
	testIdentity = Identity{
		UserId:            "11111111-2222-3333-4444-555555555555",
		UserPrincipalName: "alice@contoso.com",
	}
)

func strptr(s string) *string { return &s }
func intptr(i int) *int       { return &i }
func boolptr(b bool) *bool    { return &b }

func TestResolve_BuiltinsOnly(t *testing.T) {
	resolved, err := Resolve(CommandActivate, Input{}, models.PresetsDocument{}, nil, testIdentity, testNow)
	require.NoError(t, err)
	require.Equal(t, "", resolved.SubscriptionId)
	require.Empty(t, resolved.RoleNames)
	require.Equal(t, DefaultDurationHours, resolved.DurationHours)
	require.Equal(t, "Activated via PIMHound", resolved.Justification)
	require.False(t, resolved.AllowMultiple)
	require.Empty(t, resolved.Preset)
}

func TestResolve_DeactivateBuiltins(t *testing.T) {
	resolved, err := Resolve(CommandDeactivate, Input{}, models.PresetsDocument{}, nil, testIdentity, testNow)
	require.NoError(t, err)
	require.Equal(t, "Deactivated via PIMHound", resolved.Justification)
	require.Zero(t, resolved.DurationHours)
}

func TestResolve_Precedence(t *testing.T) {
	doc := models.PresetsDocument{
		Version: models.PresetsDocumentVersion,
		Defaults: models.PresetDefaults{
			BaseActivate: &models.OptionSet{
				SubscriptionId: strptr("base-sub"),
				DurationHours:  intptr(2),
				Justification:  strptr("base justification"),
			},
		},
		Presets: map[string]models.PresetEntry{
			"oncall": {
				Activate: &models.OptionSet{
					SubscriptionId: strptr("preset-sub"),
					RoleNames:      []string{"Contributor"},
					DurationHours:  intptr(4),
					AllowMultiple:  boolptr(true),
				},
			},
		},
	}

	t.Run("preset beats base defaults", func(t *testing.T) {
		resolved, err := Resolve(CommandActivate, Input{PresetName: "oncall"}, doc, nil, testIdentity, testNow)
		require.NoError(t, err)
		require.Equal(t, "preset-sub", resolved.SubscriptionId)
		require.Equal(t, []string{"Contributor"}, resolved.RoleNames)
		require.Equal(t, 4, resolved.DurationHours)
		require.True(t, resolved.AllowMultiple)
		require.Equal(t, "base justification", resolved.Justification)
		require.Equal(t, "oncall", resolved.Preset)
	})

	t.Run("explicit flag beats preset", func(t *testing.T) {
		in := Input{
			PresetName:     "oncall",
			SubscriptionId: Explicit("cli-sub"),
			DurationHours:  Explicit(1),
		}
		resolved, err := Resolve(CommandActivate, in, doc, nil, testIdentity, testNow)
		require.NoError(t, err)
		require.Equal(t, "cli-sub", resolved.SubscriptionId)
		require.Equal(t, 1, resolved.DurationHours)
		require.Equal(t, []string{"Contributor"}, resolved.RoleNames)
	})

	t.Run("favorite beats preset", func(t *testing.T) {
		fav := &models.OptionSet{
			SubscriptionId: strptr("fav-sub"),
			RoleNames:      []string{"Reader"},
		}
		resolved, err := Resolve(CommandActivate, Input{PresetName: "oncall"}, doc, fav, testIdentity, testNow)
		require.NoError(t, err)
		require.Equal(t, "fav-sub", resolved.SubscriptionId)
		require.Equal(t, []string{"Reader"}, resolved.RoleNames)
		require.Equal(t, 4, resolved.DurationHours)
	})

	t.Run("explicit flag default value is not explicit", func(t *testing.T) {
		in := Input{PresetName: "oncall", DurationHours: Value[int]{Val: 8}}
		resolved, err := Resolve(CommandActivate, in, doc, nil, testIdentity, testNow)
		require.NoError(t, err)
		require.Equal(t, 4, resolved.DurationHours)
	})
}

func TestResolve_ExplicitPreset(t *testing.T) {
	doc := models.PresetsDocument{
		Version: models.PresetsDocumentVersion,
		Presets: map[string]models.PresetEntry{
			"oncall":   {Activate: &models.OptionSet{RoleNames: []string{"Contributor"}}},
			"readonly": {Deactivate: &models.OptionSet{}},
		},
	}

	t.Run("unknown preset lists available names", func(t *testing.T) {
		_, err := Resolve(CommandActivate, Input{PresetName: "nope"}, doc, nil, testIdentity, testNow)
		var notFound errs.NotFoundError
		require.True(t, errors.As(err, &notFound))
		require.Equal(t, "preset", notFound.Kind)
		require.Equal(t, []string{"oncall", "readonly"}, notFound.Available)
	})

	t.Run("preset without the command block fails", func(t *testing.T) {
		_, err := Resolve(CommandActivate, Input{PresetName: "readonly"}, doc, nil, testIdentity, testNow)
		var cfgErr errs.ConfigError
		require.True(t, errors.As(err, &cfgErr))
		require.Contains(t, cfgErr.Reason, "readonly")
	})
}

func TestResolve_DefaultPreset(t *testing.T) {
	doc := models.PresetsDocument{
		Version: models.PresetsDocumentVersion,
		Defaults: models.PresetDefaults{
			ActivatePresetName: "oncall",
		},
		Presets: map[string]models.PresetEntry{
			"oncall": {Activate: &models.OptionSet{
				SubscriptionId: strptr("preset-sub"),
				RoleNames:      []string{"Contributor"},
			}},
		},
	}

	t.Run("applies when disambiguating flags absent", func(t *testing.T) {
		resolved, err := Resolve(CommandActivate, Input{}, doc, nil, testIdentity, testNow)
		require.NoError(t, err)
		require.Equal(t, "oncall", resolved.Preset)
		require.Equal(t, "preset-sub", resolved.SubscriptionId)
	})

	t.Run("skipped when subscription and roles both explicit", func(t *testing.T) {
		in := Input{
			SubscriptionId: Explicit("cli-sub"),
			RoleNames:      Explicit([]string{"Reader"}),
		}
		resolved, err := Resolve(CommandActivate, in, doc, nil, testIdentity, testNow)
		require.NoError(t, err)
		require.Empty(t, resolved.Preset)
		require.Equal(t, "cli-sub", resolved.SubscriptionId)
		require.Equal(t, []string{"Reader"}, resolved.RoleNames)
	})

	t.Run("still applies when only one flag explicit", func(t *testing.T) {
		in := Input{SubscriptionId: Explicit("cli-sub")}
		resolved, err := Resolve(CommandActivate, in, doc, nil, testIdentity, testNow)
		require.NoError(t, err)
		require.Equal(t, "oncall", resolved.Preset)
		require.Equal(t, "cli-sub", resolved.SubscriptionId)
		require.Equal(t, []string{"Contributor"}, resolved.RoleNames)
	})

	t.Run("registered default naming a missing preset fails", func(t *testing.T) {
		bad := doc
		bad.Defaults.ActivatePresetName = "gone"
		_, err := Resolve(CommandActivate, Input{}, bad, nil, testIdentity, testNow)
		var notFound errs.NotFoundError
		require.True(t, errors.As(err, &notFound))
	})
}

func TestExpandTemplate(t *testing.T) {
	t.Run("known tokens", func(t *testing.T) {
		out := ExpandTemplate("on ${date} at ${datetime} by ${userPrincipalName} (${userId})", testIdentity, testNow)
		require.Equal(t, "on 2025-06-02 at 2025-06-02T09:30:00Z by alice@contoso.com (11111111-2222-3333-4444-555555555555)", out)
	})

	t.Run("unknown tokens pass through", func(t *testing.T) {
		require.Equal(t, "keep ${mystery} intact", ExpandTemplate("keep ${mystery} intact", testIdentity, testNow))
	})

	t.Run("no tokens", func(t *testing.T) {
		require.Equal(t, "plain text", ExpandTemplate("plain text", testIdentity, testNow))
	})
}

func TestResolve_JustificationTemplate(t *testing.T) {
	doc := models.PresetsDocument{
		Version: models.PresetsDocumentVersion,
		Defaults: models.PresetDefaults{
			BaseActivate: &models.OptionSet{Justification: strptr("Ticket ${date} for ${userPrincipalName}")},
		},
	}
	resolved, err := Resolve(CommandActivate, Input{}, doc, nil, testIdentity, testNow)
	require.NoError(t, err)
	require.Equal(t, "Ticket 2025-06-02 for alice@contoso.com", resolved.Justification)
}

func TestDocuments(t *testing.T) {
	newStore := func(t *testing.T) store.Store {
		t.Helper()
		return store.NewFileStore(afero.NewMemMapFs(), "/config")
	}

	t.Run("missing presets document yields empty document", func(t *testing.T) {
		doc, err := LoadPresets(newStore(t))
		require.NoError(t, err)
		require.Equal(t, models.PresetsDocumentVersion, doc.Version)
		require.Empty(t, doc.Presets)
	})

	t.Run("presets round trip", func(t *testing.T) {
		s := newStore(t)
		doc := models.PresetsDocument{
			Version: models.PresetsDocumentVersion,
			Presets: map[string]models.PresetEntry{
				"oncall": {Activate: &models.OptionSet{DurationHours: intptr(4)}},
			},
		}
		require.NoError(t, SavePresets(s, doc))

		loaded, err := LoadPresets(s)
		require.NoError(t, err)
		require.Equal(t, doc, loaded)
	})

	t.Run("malformed presets document is a config error", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Put("presets", []byte("{not json")))
		_, err := LoadPresets(s)
		var cfgErr errs.ConfigError
		require.True(t, errors.As(err, &cfgErr))
	})

	t.Run("unsupported version is a config error", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Put("presets", []byte(`{"version": 99}`)))
		_, err := LoadPresets(s)
		var cfgErr errs.ConfigError
		require.True(t, errors.As(err, &cfgErr))
	})

	t.Run("favorites round trip and lookup", func(t *testing.T) {
		s := newStore(t)
		doc := models.FavoritesDocument{
			Version: models.FavoritesDocumentVersion,
			Favorites: map[string]models.Favorite{
				"prod-reader": {SubscriptionId: "sub-1", RoleNames: []string{"Reader"}},
			},
		}
		require.NoError(t, SaveFavorites(s, doc))

		loaded, err := LoadFavorites(s)
		require.NoError(t, err)

		set, err := LookupFavorite(loaded, "prod-reader")
		require.NoError(t, err)
		require.Equal(t, "sub-1", *set.SubscriptionId)
		require.Equal(t, []string{"Reader"}, set.RoleNames)
	})

	t.Run("unknown favorite lists available names", func(t *testing.T) {
		doc := models.FavoritesDocument{Favorites: map[string]models.Favorite{"a": {}, "b": {}}}
		_, err := LookupFavorite(doc, "c")
		var notFound errs.NotFoundError
		require.True(t, errors.As(err, &notFound))
		require.Equal(t, []string{"a", "b"}, notFound.Available)
	})
}

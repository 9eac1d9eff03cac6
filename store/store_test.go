package store

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestFileStore(t *testing.T) {
	t.Run("get missing document", func(t *testing.T) {
		s := NewFileStore(afero.NewMemMapFs(), "/home/tester/.config/pimhound")

		data, exists, err := s.Get("presets")

		require.NoError(t, err)
		require.False(t, exists)
		require.Nil(t, data)
	})

	t.Run("put replaces the whole document", func(t *testing.T) {
		s := NewFileStore(afero.NewMemMapFs(), "/home/tester/.config/pimhound")

		require.NoError(t, s.Put("presets", []byte(`{"version":1}`)))
		require.NoError(t, s.Put("presets", []byte(`{"version":1,"presets":{}}`)))

		data, exists, err := s.Get("presets")
		require.NoError(t, err)
		require.True(t, exists)
		require.JSONEq(t, `{"version":1,"presets":{}}`, string(data))
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		s := NewFileStore(afero.NewMemMapFs(), "/home/tester/.config/pimhound")

		require.NoError(t, s.Put("subscriptions-abc", []byte(`{}`)))

		existed, err := s.Delete("subscriptions-abc")
		require.NoError(t, err)
		require.True(t, existed)

		existed, err = s.Delete("subscriptions-abc")
		require.NoError(t, err)
		require.False(t, existed)
	})

	t.Run("keys cannot escape the store dir", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		s := NewFileStore(fs, "/store")

		require.NoError(t, s.Put("../outside", []byte(`{}`)))

		exists, err := afero.Exists(fs, "/outside.json")
		require.NoError(t, err)
		require.False(t, exists)
	})
}

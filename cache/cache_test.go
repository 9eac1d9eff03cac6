package cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bloodhoundad/pimhound/client/mocks"
	"github.com/bloodhoundad/pimhound/models"
	"github.com/bloodhoundad/pimhound/store"
)

const testUser = "11111111-2222-3333-4444-555555555555"

func seed(t *testing.T, s store.Store, lastUpdated time.Time, subscriptions []models.Subscription) {
	t.Helper()
	doc := models.SubscriptionCacheDocument{LastUpdated: lastUpdated, Subscriptions: subscriptions}
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	require.NoError(t, s.Put("subscriptions-"+testUser, data))
}

func testSubscriptions() []models.Subscription {
	return []models.Subscription{
		{SubscriptionId: "AAAA0000-0000-0000-0000-000000000001", DisplayName: "prod", TenantId: "t1"},
		{SubscriptionId: "aaaa0000-0000-0000-0000-000000000002", DisplayName: "dev", TenantId: "t1"},
	}
}

func TestSubscriptionCache_Get(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("fresh just inside the TTL boundary", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fileStore := store.NewFileStore(afero.NewMemMapFs(), "/store")
		azClient := mocks.NewMockAzureClient(ctrl)

		seed(t, fileStore, now.Add(-TTL).Add(time.Second), testSubscriptions())

		cache := NewSubscriptionCache(fileStore, azClient)
		cache.now = func() time.Time { return now }

		doc, isFresh, err := cache.Get(context.Background(), testUser, false)

		require.NoError(t, err)
		require.True(t, isFresh)
		require.Len(t, doc.Subscriptions, 2)
	})

	t.Run("stale just outside the TTL boundary", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fileStore := store.NewFileStore(afero.NewMemMapFs(), "/store")
		azClient := mocks.NewMockAzureClient(ctrl)

		seed(t, fileStore, now.Add(-TTL).Add(-time.Second), testSubscriptions())
		azClient.EXPECT().ListSubscriptions(gomock.Any()).Return(testSubscriptions(), nil).Times(1)

		cache := NewSubscriptionCache(fileStore, azClient)
		cache.now = func() time.Time { return now }

		doc, isFresh, err := cache.Get(context.Background(), testUser, false)

		require.NoError(t, err)
		require.False(t, isFresh)
		require.Equal(t, now, doc.LastUpdated)
	})

	t.Run("empty document is never fresh", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fileStore := store.NewFileStore(afero.NewMemMapFs(), "/store")
		azClient := mocks.NewMockAzureClient(ctrl)

		seed(t, fileStore, now, nil)
		azClient.EXPECT().ListSubscriptions(gomock.Any()).Return(testSubscriptions(), nil).Times(1)

		cache := NewSubscriptionCache(fileStore, azClient)
		cache.now = func() time.Time { return now }

		_, isFresh, err := cache.Get(context.Background(), testUser, false)

		require.NoError(t, err)
		require.False(t, isFresh)
	})

	t.Run("force refresh ignores a fresh document", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fileStore := store.NewFileStore(afero.NewMemMapFs(), "/store")
		azClient := mocks.NewMockAzureClient(ctrl)

		seed(t, fileStore, now.Add(-time.Minute), testSubscriptions())
		azClient.EXPECT().ListSubscriptions(gomock.Any()).Return(testSubscriptions(), nil).Times(1)

		cache := NewSubscriptionCache(fileStore, azClient)
		cache.now = func() time.Time { return now }

		_, isFresh, err := cache.Get(context.Background(), testUser, true)

		require.NoError(t, err)
		require.False(t, isFresh)
	})
}

func TestSubscriptionCache_Invalidate(t *testing.T) {
	ctrl := gomock.NewController(t)
	fileStore := store.NewFileStore(afero.NewMemMapFs(), "/store")
	cache := NewSubscriptionCache(fileStore, mocks.NewMockAzureClient(ctrl))

	seed(t, fileStore, time.Now(), testSubscriptions())

	require.NoError(t, cache.Invalidate(testUser))
	// deleting an already-missing document stays quiet
	require.NoError(t, cache.Invalidate(testUser))

	_, exists, err := fileStore.Get("subscriptions-" + testUser)
	require.NoError(t, err)
	require.False(t, exists)
}

func TestSubscriptionCache_ValidateSubscriptionId(t *testing.T) {
	ctrl := gomock.NewController(t)
	fileStore := store.NewFileStore(afero.NewMemMapFs(), "/store")
	// no EXPECT calls: validation must never reach the network
	cache := NewSubscriptionCache(fileStore, mocks.NewMockAzureClient(ctrl))

	seed(t, fileStore, time.Now(), testSubscriptions())

	t.Run("case-insensitive hit", func(t *testing.T) {
		sub, found := cache.ValidateSubscriptionId(testUser, "aaaa0000-0000-0000-0000-000000000001")
		require.True(t, found)
		require.Equal(t, "prod", sub.DisplayName)
	})

	t.Run("miss", func(t *testing.T) {
		_, found := cache.ValidateSubscriptionId(testUser, "ffff0000-0000-0000-0000-00000000000f")
		require.False(t, found)
	})

	t.Run("missing document", func(t *testing.T) {
		require.NoError(t, cache.Invalidate(testUser))
		_, found := cache.ValidateSubscriptionId(testUser, "aaaa0000-0000-0000-0000-000000000001")
		require.False(t, found)
	})
}

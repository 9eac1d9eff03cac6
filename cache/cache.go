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

// Package cache is a TTL read-through cache over the subscription listing.
// It is a single-writer, last-write-wins optimization; no cross-process
// coordination is provided or required.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/bloodhoundad/pimhound/client"
	"github.com/bloodhoundad/pimhound/models"
	"github.com/bloodhoundad/pimhound/store"
)

// TTL is how long a persisted subscription listing stays fresh.
const TTL = 6 * time.Hour

type SubscriptionCache struct {
	store  store.Store
	client client.AzureClient
	now    func() time.Time
}

func NewSubscriptionCache(store store.Store, client client.AzureClient) *SubscriptionCache {
	return &SubscriptionCache{store: store, client: client, now: time.Now}
}

func cacheKey(userId string) string {
	return "subscriptions-" + strings.ToLower(userId)
}

// Get returns the persisted document when it exists, is non-empty and is
// younger than the TTL; isFresh reports whether that fast path was taken.
// Otherwise the full listing is fetched and persisted with a new timestamp.
func (s *SubscriptionCache) Get(ctx context.Context, userId string, forceRefresh bool) (models.SubscriptionCacheDocument, bool, error) {
	if !forceRefresh {
		if doc, ok := s.read(userId); ok && len(doc.Subscriptions) > 0 && s.now().Sub(doc.LastUpdated) < TTL {
			return doc, true, nil
		}
	}

	subscriptions, err := s.client.ListSubscriptions(ctx)
	if err != nil {
		return models.SubscriptionCacheDocument{}, false, fmt.Errorf("unable to list subscriptions: %w", err)
	}

	doc := models.SubscriptionCacheDocument{
		LastUpdated:   s.now(),
		Subscriptions: subscriptions,
	}

	if data, err := json.MarshalIndent(doc, "", "  "); err != nil {
		return doc, false, fmt.Errorf("unable to marshal subscription cache: %w", err)
	} else if err := s.store.Put(cacheKey(userId), data); err != nil {
		return doc, false, err
	}
	return doc, false, nil
}

// Invalidate drops the persisted document. A missing document is not an
// error.
func (s *SubscriptionCache) Invalidate(userId string) error {
	_, err := s.store.Delete(cacheKey(userId))
	return err
}

// ValidateSubscriptionId looks the id up (case-insensitively) in the
// currently persisted document only; it never triggers a fetch.
func (s *SubscriptionCache) ValidateSubscriptionId(userId string, id string) (*models.Subscription, bool) {
	if doc, ok := s.read(userId); ok {
		for _, sub := range doc.Subscriptions {
			if strings.EqualFold(sub.SubscriptionId, id) {
				return &sub, true
			}
		}
	}
	return nil, false
}

// read loads the persisted document; a missing or unreadable document is
// treated as absent so the next Get refetches.
func (s *SubscriptionCache) read(userId string) (models.SubscriptionCacheDocument, bool) {
	var doc models.SubscriptionCacheDocument
	if data, exists, err := s.store.Get(cacheKey(userId)); err != nil || !exists {
		return doc, false
	} else if err := json.Unmarshal(data, &doc); err != nil {
		return doc, false
	}
	return doc, true
}

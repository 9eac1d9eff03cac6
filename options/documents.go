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

package options

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/bloodhoundad/pimhound/errs"
	"github.com/bloodhoundad/pimhound/models"
	"github.com/bloodhoundad/pimhound/store"
)

const (
	presetsKey   = "presets"
	favoritesKey = "favorites"
)

// LoadPresets reads the presets document from the store. A missing document
// yields an empty one; a malformed or wrong-version document is a
// configuration error rather than something to paper over.
func LoadPresets(s store.Store) (models.PresetsDocument, error) {
	doc := models.PresetsDocument{Version: models.PresetsDocumentVersion}

	data, ok, err := s.Get(presetsKey)
	if err != nil {
		return doc, err
	} else if !ok {
		return doc, nil
	} else if err := json.Unmarshal(data, &doc); err != nil {
		return doc, errs.ConfigError{Reason: fmt.Sprintf("presets document is not valid JSON: %v", err)}
	} else if doc.Version != models.PresetsDocumentVersion {
		return doc, errs.ConfigError{Reason: fmt.Sprintf("presets document version %d is not supported", doc.Version)}
	}
	return doc, nil
}

// SavePresets persists the presets document.
func SavePresets(s store.Store, doc models.PresetsDocument) error {
	doc.Version = models.PresetsDocumentVersion
	if data, err := json.MarshalIndent(doc, "", "  "); err != nil {
		return err
	} else {
		return s.Put(presetsKey, data)
	}
}

// LoadFavorites reads the favorites document from the store.
func LoadFavorites(s store.Store) (models.FavoritesDocument, error) {
	doc := models.FavoritesDocument{Version: models.FavoritesDocumentVersion}

	data, ok, err := s.Get(favoritesKey)
	if err != nil {
		return doc, err
	} else if !ok {
		return doc, nil
	} else if err := json.Unmarshal(data, &doc); err != nil {
		return doc, errs.ConfigError{Reason: fmt.Sprintf("favorites document is not valid JSON: %v", err)}
	} else if doc.Version != models.FavoritesDocumentVersion {
		return doc, errs.ConfigError{Reason: fmt.Sprintf("favorites document version %d is not supported", doc.Version)}
	}
	return doc, nil
}

// SaveFavorites persists the favorites document.
func SaveFavorites(s store.Store, doc models.FavoritesDocument) error {
	doc.Version = models.FavoritesDocumentVersion
	if data, err := json.MarshalIndent(doc, "", "  "); err != nil {
		return err
	} else {
		return s.Put(favoritesKey, data)
	}
}

// LookupFavorite resolves a favorite by name and converts it to an option
// set suitable for the preset tier of option resolution.
func LookupFavorite(doc models.FavoritesDocument, name string) (*models.OptionSet, error) {
	fav, ok := doc.Favorites[name]
	if !ok {
		names := make([]string, 0, len(doc.Favorites))
		for n := range doc.Favorites {
			names = append(names, n)
		}
		sort.Strings(names)
		return nil, errs.NotFoundError{Kind: "favorite", Name: name, Available: names}
	}
	set := &models.OptionSet{RoleNames: fav.RoleNames}
	if fav.SubscriptionId != "" {
		set.SubscriptionId = &fav.SubscriptionId
	}
	return set, nil
}

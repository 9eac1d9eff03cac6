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

package models

// Favorite is a saved shortcut to one or more roles on a subscription.
type Favorite struct {
	Description    string   `json:"description,omitempty"`
	SubscriptionId string   `json:"subscriptionId,omitempty"`
	RoleNames      []string `json:"roleNames,omitempty"`
}

// FavoritesDocument is the durable, user-scoped favorites file.
type FavoritesDocument struct {
	Version   int                 `json:"version"`
	Favorites map[string]Favorite `json:"favorites,omitempty"`
}

const FavoritesDocumentVersion = 1

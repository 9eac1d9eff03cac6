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

package config

import (
	"github.com/bloodhoundad/pimhound/constants"
)

// Config bundles the credentials and endpoints the resource manager client
// is constructed from.
type Config struct {
	ApplicationId string
	Authority     string
	ClientSecret  string
	ClientCert    string
	ClientKey     string
	ClientKeyPass string
	JWT           string
	Management    string
	Password      string
	ProxyUrl      string
	RefreshToken  string
	Tenant        string
	Username      string
}

func (s Config) AuthorityUrl() string {
	if s.Authority != "" {
		return s.Authority
	}
	return constants.AuthorityUrl
}

func (s Config) ManagementUrl() string {
	if s.Management != "" {
		return s.Management
	}
	return constants.ResourceManagerUrl
}

func (s Config) ClientId() string {
	if s.ApplicationId != "" {
		return s.ApplicationId
	}
	return constants.AzPowerShellClientID
}

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

var (
	ConfigFile = Option{
		Name:       "config",
		Shorthand:  "c",
		Usage:      "Location of the configuration file",
		Persistent: true,
		Default:    "",
	}

	Verbosity = Option{
		Name:       "verbosity",
		Shorthand:  "v",
		Usage:      "Verbosity level: 0=info, 1=debug, 2=trace",
		Persistent: true,
		Default:    0,
	}

	JsonLogs = Option{
		Name:       "json",
		Usage:      "Output logs as json",
		Persistent: true,
		Default:    false,
	}

	LogFile = Option{
		Name:       "log-file",
		Usage:      "Output logs to this file",
		Persistent: true,
		Default:    "",
	}

	Proxy = Option{
		Name:       "proxy",
		Usage:      "Sets the proxy URL for communicating with Azure",
		Persistent: true,
		Default:    "",
	}

	StoreDir = Option{
		Name:       "store-dir",
		Usage:      "Directory for the subscription cache, presets and favorites",
		Persistent: true,
		Default:    "",
	}

	AzTenant = Option{
		Name:       "tenant",
		Shorthand:  "t",
		Usage:      "The directory tenant to authenticate against. Accepts tenant IDs and verified domains",
		Persistent: true,
		Default:    "",
	}

	AzAppId = Option{
		Name:       "app",
		Shorthand:  "a",
		Usage:      "The Application Id the tool uses for authentication. Defaults to the Azure PowerShell client",
		Persistent: true,
		Default:    "",
	}

	AzSecret = Option{
		Name:       "secret",
		Shorthand:  "s",
		Usage:      "The client secret paired with the provided Application Id",
		Persistent: true,
		Default:    "",
	}

	AzCert = Option{
		Name:       "cert",
		Usage:      "Path to the PEM encoded certificate paired with the provided Application Id",
		Persistent: true,
		Default:    "",
	}

	AzKey = Option{
		Name:       "key",
		Usage:      "Path to the PEM encoded private key for the provided certificate",
		Persistent: true,
		Default:    "",
	}

	AzKeyPass = Option{
		Name:       "keypass",
		Usage:      "Passphrase protecting the provided private key",
		Persistent: true,
		Default:    "",
	}

	AzUsername = Option{
		Name:       "username",
		Shorthand:  "u",
		Usage:      "The user principal name to authenticate as",
		Persistent: true,
		Default:    "",
	}

	AzPassword = Option{
		Name:       "password",
		Shorthand:  "p",
		Usage:      "The password for the provided user principal",
		Persistent: true,
		Default:    "",
	}

	RefreshToken = Option{
		Name:       "refresh-token",
		Shorthand:  "r",
		Usage:      "Use a refresh token for authentication",
		Persistent: true,
		Default:    "",
	}

	JWT = Option{
		Name:       "jwt",
		Shorthand:  "j",
		Usage:      "Use an already acquired JWT for authentication",
		Persistent: true,
		Default:    "",
	}

	AzAuthUrl = Option{
		Name:       "auth-url",
		Usage:      "Sets the authority URL to authenticate against",
		Persistent: true,
		Default:    "",
	}

	AzMgmtUrl = Option{
		Name:       "mgmt-url",
		Usage:      "Sets the resource manager URL to collect from",
		Persistent: true,
		Default:    "",
	}
)

// GlobalConfig is registered on the root command and inherited everywhere.
var GlobalConfig = []Option{
	ConfigFile,
	Verbosity,
	JsonLogs,
	LogFile,
	Proxy,
	StoreDir,
}

// AzureConfig covers authentication against Entra ID and the resource
// manager.
var AzureConfig = []Option{
	AzTenant,
	AzAppId,
	AzSecret,
	AzCert,
	AzKey,
	AzKeyPass,
	AzUsername,
	AzPassword,
	RefreshToken,
	JWT,
	AzAuthUrl,
	AzMgmtUrl,
}

// Options returns every registered option.
func Options() []Option {
	return append(append([]Option{}, GlobalConfig...), AzureConfig...)
}

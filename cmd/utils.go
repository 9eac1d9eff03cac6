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

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/net/proxy"

	"github.com/bloodhoundad/pimhound/client"
	client_config "github.com/bloodhoundad/pimhound/client/config"
	"github.com/bloodhoundad/pimhound/client/rest"
	"github.com/bloodhoundad/pimhound/config"
	"github.com/bloodhoundad/pimhound/enums"
	"github.com/bloodhoundad/pimhound/errs"
	"github.com/bloodhoundad/pimhound/logger"
	"github.com/bloodhoundad/pimhound/store"
)

func init() {
	proxy.RegisterDialerType("http", rest.NewProxyDialer)
	proxy.RegisterDialerType("https", rest.NewProxyDialer)
}

func exit(err error) {
	log.Error(err, "encountered unrecoverable error")
	os.Exit(1)
}

func persistentPreRunE(cmd *cobra.Command, args []string) error {
	// need to set config flag value explicitly
	if cmd != nil {
		if configFlag := cmd.Flag(config.ConfigFile.Name).Value.String(); configFlag != "" {
			config.ConfigFile.Set(configFlag)
		}
	}

	config.LoadValues(cmd, config.Options())

	if logr, err := logger.GetLogger(); err != nil {
		return err
	} else {
		log = *logr

		if config.ConfigFileUsed() != "" {
			log.V(1).Info(fmt.Sprintf("Config File: %v", config.ConfigFileUsed()))
		}

		if config.LogFile.Value() != "" {
			log.V(1).Info(fmt.Sprintf("Log File: %v", config.LogFile.Value()))
		}

		return nil
	}
}

func gracefulShutdown(stop context.CancelFunc) {
	stop()
}

func authUrl() string {
	if url := config.AzAuthUrl.Value().(string); url != "" {
		return url
	}
	return client_config.Config{}.AuthorityUrl()
}

func mgmtUrl() string {
	if url := config.AzMgmtUrl.Value().(string); url != "" {
		return url
	}
	return client_config.Config{}.ManagementUrl()
}

func testConnections() error {
	if _, err := rest.Dial(log, authUrl()); err != nil {
		return fmt.Errorf("unable to connect to %s: %w", authUrl(), err)
	} else if _, err := rest.Dial(log, mgmtUrl()); err != nil {
		return fmt.Errorf("unable to connect to %s: %w", mgmtUrl(), err)
	} else {
		return nil
	}
}

func newAzureClient() (client.AzureClient, error) {
	var (
		certFile   = config.AzCert.Value()
		keyFile    = config.AzKey.Value()
		clientCert string
		clientKey  string
	)

	if file, ok := certFile.(string); ok && file != "" {
		if content, err := os.ReadFile(file); err != nil {
			return nil, fmt.Errorf("unable to read provided certificate: %w", err)
		} else {
			clientCert = string(content)
		}
	}

	if file, ok := keyFile.(string); ok && file != "" {
		if content, err := os.ReadFile(file); err != nil {
			return nil, fmt.Errorf("unable to read provided key file: %w", err)
		} else {
			clientKey = string(content)
		}
	}

	clientConfig := client_config.Config{
		ApplicationId: config.AzAppId.Value().(string),
		Authority:     config.AzAuthUrl.Value().(string),
		ClientSecret:  config.AzSecret.Value().(string),
		ClientCert:    clientCert,
		ClientKey:     clientKey,
		ClientKeyPass: config.AzKeyPass.Value().(string),
		JWT:           config.JWT.Value().(string),
		Management:    config.AzMgmtUrl.Value().(string),
		Password:      config.AzPassword.Value().(string),
		ProxyUrl:      config.Proxy.Value().(string),
		RefreshToken:  config.RefreshToken.Value().(string),
		Tenant:        config.AzTenant.Value().(string),
		Username:      config.AzUsername.Value().(string),
	}
	return client.NewClient(clientConfig)
}

func connectAndCreateClient() client.AzureClient {
	log.V(1).Info("testing connections")
	if err := testConnections(); err != nil {
		exit(fmt.Errorf("failed to test connections: %w", err))
	} else if azClient, err := newAzureClient(); err != nil {
		exit(fmt.Errorf("failed to create new Azure client: %w", err))
	} else {
		return azClient
	}

	panic("unexpectedly failed to create azClient without error")
}

func newStore() (store.Store, error) {
	dir := config.StoreDir.Value().(string)
	if dir == "" {
		if defaultDir, err := store.DefaultDir(); err != nil {
			return nil, err
		} else {
			dir = defaultDir
		}
	}
	return store.NewFileStore(afero.NewOsFs(), dir), nil
}

func outputFormat(cmd *cobra.Command) (enums.OutputFormat, error) {
	raw, _ := cmd.Flags().GetString("output")
	switch strings.ToLower(raw) {
	case "json":
		return enums.OutputJson, nil
	case "table":
		return enums.OutputTable, nil
	default:
		return "", errs.ConfigError{Reason: fmt.Sprintf("unsupported output format %q; expected json or table", raw)}
	}
}

func outputJson(value interface{}) {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(value); err != nil {
		exit(fmt.Errorf("failed to encode output: %w", err))
	}
}

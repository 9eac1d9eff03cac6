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

// Package config registers the connection and logging options shared by all
// commands and binds them to flags, environment variables and an optional
// config file through viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/bloodhoundad/pimhound/constants"
)

const (
	envPrefix      = "PIMHOUND"
	configFileName = "config.json"
)

type Option struct {
	Name       string
	Shorthand  string
	Usage      string
	Required   bool
	Persistent bool
	Default    interface{}
}

func (s Option) EnvVar() string {
	return fmt.Sprintf("%s_%s", envPrefix, strings.ToUpper(strings.ReplaceAll(s.Name, "-", "_")))
}

func (s Option) Value() interface{} {
	return viper.Get(s.Name)
}

func (s Option) Set(value interface{}) {
	viper.Set(s.Name, value)
}

// SystemConfigDir returns the directory the default config file lives in.
func SystemConfigDir() string {
	if base, err := os.UserConfigDir(); err != nil {
		return constants.Name
	} else {
		return filepath.Join(base, constants.Name)
	}
}

// Init registers the given options as flags on cmd and binds each one to its
// environment variable. Must run during command init, before Execute.
func Init(cmd *cobra.Command, options []Option) {
	for _, option := range options {
		var flags *pflag.FlagSet
		if option.Persistent {
			flags = cmd.PersistentFlags()
		} else {
			flags = cmd.Flags()
		}

		switch typedDefault := option.Default.(type) {
		case string:
			flags.StringP(option.Name, option.Shorthand, typedDefault, option.Usage)
		case bool:
			flags.BoolP(option.Name, option.Shorthand, typedDefault, option.Usage)
		case int:
			flags.IntP(option.Name, option.Shorthand, typedDefault, option.Usage)
		case []string:
			flags.StringSliceP(option.Name, option.Shorthand, typedDefault, option.Usage)
		default:
			panic(fmt.Sprintf("unsupported default type for option %s", option.Name))
		}

		if option.Required {
			if err := cmd.MarkFlagRequired(option.Name); err != nil {
				panic(err)
			}
		}

		viper.SetDefault(option.Name, option.Default)
		if err := viper.BindEnv(option.Name, option.EnvVar()); err != nil {
			panic(err)
		}
	}
}

// LoadValues binds the command's parsed flags into viper and merges in the
// config file, if one exists. Flag values win over environment variables,
// which win over the file.
func LoadValues(cmd *cobra.Command, options []Option) {
	for _, option := range options {
		var flags *pflag.FlagSet
		if option.Persistent {
			flags = cmd.PersistentFlags()
		} else {
			flags = cmd.Flags()
		}
		if flag := flags.Lookup(option.Name); flag != nil && flag.Changed {
			if err := viper.BindPFlag(option.Name, flag); err != nil {
				panic(err)
			}
		}
	}

	if path := viper.GetString(ConfigFile.Name); path != "" {
		viper.SetConfigFile(path)
	} else {
		viper.SetConfigFile(filepath.Join(SystemConfigDir(), configFileName))
	}

	// a missing config file is the common case, only warn when one exists
	// but cannot be parsed
	if err := viper.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(viper.ConfigFileUsed()); statErr == nil {
			fmt.Fprintf(os.Stderr, "warning: unable to read config file: %v\n", err)
		}
	}
}

// ConfigFileUsed reports the config file viper actually loaded, if any.
func ConfigFileUsed() string {
	return viper.ConfigFileUsed()
}

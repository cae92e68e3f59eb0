// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"eventhub/cli/internal/config"
	apperrors "eventhub/cli/internal/errors"
)

// configCmd shows and edits the settings file. Environment variables still
// take precedence over what is saved here.
var configCmd = &cobra.Command{
	Use:         "config",
	Short:       "Show or change saved settings",
	Annotations: map[string]string{annotationStandalone: "true"},
}

var configShowCmd = &cobra.Command{
	Use:         "show",
	Short:       "Show the effective settings",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationStandalone: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return apperrors.Wrap(apperrors.ConfigInvalid, "load configuration", err)
		}
		p, _ := config.Path()
		data := pterm.TableData{{"Setting", "Value"}}
		for _, k := range config.Keys {
			v, _ := cfg.Get(k)
			data = append(data, []string{k, orDash(v)})
		}
		pterm.Fprintln(cmd.OutOrStdout(), "File: "+orDash(p))
		return pterm.DefaultTable.WithHasHeader().WithWriter(cmd.OutOrStdout()).WithData(data).Render()
	},
}

var configSetCmd = &cobra.Command{
	Use:         "set <key> <value>",
	Short:       "Save a setting (log_level, environment, session_backend, api_url)",
	Args:        cobra.ExactArgs(2),
	Annotations: map[string]string{annotationStandalone: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := config.Path()
		if err != nil {
			return apperrors.Wrap(apperrors.ConfigInvalid, "locate configuration", err)
		}
		// Edit the file only, so environment overrides are not persisted.
		cfg, err := config.LoadFile(p)
		if err != nil {
			return apperrors.Wrap(apperrors.ConfigInvalid, "load configuration", err)
		}
		if err := cfg.Set(args[0], args[1]); err != nil {
			return apperrors.Wrap(apperrors.ConfigInvalid, "invalid setting", err)
		}
		if err := config.Save(cfg); err != nil {
			return apperrors.Wrap(apperrors.ConfigInvalid, "save configuration", err)
		}
		pterm.Success.Printf("%s saved\n", args[0])
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd, configSetCmd)
	rootCmd.AddCommand(configCmd)
}

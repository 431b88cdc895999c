// Copyright 2024 Aerospike, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"fmt"
	"log/slog"

	"github.com/aerospike/s3config-go"
	"github.com/aerospike/s3config-go/cmd/internal/flags"
	"github.com/aerospike/s3config-go/cmd/internal/logging"
	"github.com/spf13/cobra"
)

const VersionDev = "dev"

// Cmd represents the base command when called without any subcommands
type Cmd struct {
	// Version params.
	appVersion string
	commitHash string

	// Root flags
	flagsApp *flags.App

	registry *s3config.Registry
	logger   *slog.Logger
}

func NewCmd(appVersion, commitHash string) *cobra.Command {
	c := &Cmd{
		appVersion: appVersion,
		commitHash: commitHash,

		flagsApp: flags.NewApp(),
		registry: s3config.DefaultRegistry(),
	}

	rootCmd := &cobra.Command{
		Use:   "s3config",
		Short: "S3 client configuration tool",
		Long: "Inspect, document and validate the options of the aws and aws.client configuration scopes.\n" +
			"Option values are read from the --config file, then from S3CONFIG_ prefixed environment\n" +
			"variables, then from command line flags. Later sources win.",
		PersistentPreRunE: c.preRun,
		RunE:              c.run,
	}

	// Disable sorting
	rootCmd.PersistentFlags().SortFlags = false
	rootCmd.SilenceUsage = true

	appFlagSet := c.flagsApp.NewFlagSet()
	rootCmd.PersistentFlags().AddFlagSet(appFlagSet)

	rootCmd.AddCommand(
		c.newListCmd(),
		c.newDescribeCmd(),
		c.newDocsCmd(),
		c.newValidateCmd(),
	)

	return rootCmd
}

func (c *Cmd) preRun(cmd *cobra.Command, _ []string) error {
	if err := c.flagsApp.ApplyEnv(cmd.Flags(), flags.EnvPrefix); err != nil {
		return err
	}

	app := c.flagsApp.GetApp()

	// Init logger.
	logger, err := logging.NewLogger(app.LogLevel, app.Verbose, app.LogJSON)
	if err != nil {
		return err
	}

	c.logger = logger

	return nil
}

func (c *Cmd) run(cmd *cobra.Command, _ []string) error {
	// Show version.
	if c.flagsApp.GetApp().Version {
		c.printVersion(cmd)

		return nil
	}

	return cmd.Help()
}

func (c *Cmd) printVersion(cmd *cobra.Command) {
	version := c.appVersion
	if c.appVersion == VersionDev {
		version += " (" + c.commitHash + ")"
	}

	fmt.Fprintf(cmd.OutOrStdout(), "version: %s\n", version)
}

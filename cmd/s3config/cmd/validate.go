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
	"github.com/aerospike/s3config-go/loader"
	"github.com/aerospike/s3config-go/s3client"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// optionEnvPrefix prefixes the environment variables of scope options,
// e.g. S3CONFIG_AWS_CLIENT_MAX_CONNECTIONS.
const optionEnvPrefix = "S3CONFIG_"

func (c *Cmd) newValidateCmd() *cobra.Command {
	var (
		strict      bool
		buildClient bool
	)

	optionFlagSet := loader.NewFlagSet(c.registry)

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Load and validate the configuration, then print the effective values",
		Long: "Load the options from the --config file, the environment and the option flags,\n" +
			"validate them and print the result as YAML. Secrets are redacted.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sources := make([]loader.Source, 0, 3)
			if app := c.flagsApp.GetApp(); app.Config != "" {
				sources = append(sources, loader.NewYAMLFileSource(app.Config))
			}

			sources = append(sources,
				loader.NewEnvSource(optionEnvPrefix, c.registry),
				loader.NewFlagSource(optionFlagSet),
			)

			l := loader.New(c.registry,
				loader.WithSources(sources...),
				loader.WithStrict(strict),
				loader.WithLogger(c.logger),
			)

			cfg, result, err := l.LoadAwsConfig(cmd.Context())
			if err != nil {
				return err
			}

			if buildClient {
				if err = c.checkClient(cmd, cfg); err != nil {
					return err
				}
			}

			out := yaml.NewEncoder(cmd.OutOrStdout())
			out.SetIndent(2)

			if err = out.Encode(c.registry.Redact(result.Values)); err != nil {
				return fmt.Errorf("failed to encode configuration: %w", err)
			}

			return out.Close()
		},
	}

	validateCmd.Flags().BoolVar(&strict, "strict", false,
		"Fail on unknown options instead of skipping them with a warning.")
	validateCmd.Flags().BoolVar(&buildClient, "build-client", false,
		"Also map the configuration onto an S3 client. No requests are sent.")
	validateCmd.Flags().AddFlagSet(optionFlagSet)

	return validateCmd
}

// checkClient builds the SDK client and the object options to surface mapping errors.
func (c *Cmd) checkClient(cmd *cobra.Command, cfg *s3config.AwsConfig) error {
	client, err := s3client.NewClient(cmd.Context(), cfg, c.logger)
	if err != nil {
		return err
	}

	objectOpts, err := s3client.NewObjectOptions(&cfg.Client)
	if err != nil {
		return err
	}

	opts := client.Options()

	c.logger.Info("s3 client configured",
		slog.String("region", opts.Region),
		slog.Bool("pathStyle", opts.UsePathStyle),
		slog.String("storageClass", string(objectOpts.StorageClass)),
		slog.Int64("partSize", cfg.Client.EffectiveMinimumPartSize().Bytes()),
		slog.Int64("multipartThreshold", s3client.MultipartThreshold(&cfg.Client)),
		slog.Int("maxConcurrency", cfg.Client.EffectiveMaxConcurrency()),
		slog.String("maxNativeMemory", cfg.Client.EffectiveMaxNativeMemory().String()),
	)

	return nil
}

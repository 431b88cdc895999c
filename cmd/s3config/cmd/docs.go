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

	"github.com/aerospike/s3config-go/docgen"
	"github.com/spf13/cobra"
)

const (
	formatMarkdown = "markdown"
	formatYAML     = "yaml"
)

func (c *Cmd) newDocsCmd() *cobra.Command {
	var format string

	docsCmd := &cobra.Command{
		Use:   "docs",
		Short: "Print the reference documentation of all scopes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			scopes := c.registry.Scopes()

			switch format {
			case formatMarkdown:
				return docgen.Markdown(cmd.OutOrStdout(), scopes...)
			case formatYAML:
				return docgen.YAMLExample(cmd.OutOrStdout(), scopes...)
			default:
				return fmt.Errorf("unsupported format %q, use %s or %s", format, formatMarkdown, formatYAML)
			}
		},
	}

	docsCmd.Flags().StringVar(&format, "format", formatMarkdown,
		"Output format: markdown renders tables, yaml renders a commented configuration file.")

	return docsCmd
}

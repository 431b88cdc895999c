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
	"strings"
	"text/tabwriter"

	"github.com/aerospike/s3config-go"
	"github.com/aerospike/s3config-go/loader"
	"github.com/spf13/cobra"
)

func (c *Cmd) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [scope]",
		Short: "List the options of all scopes or of one scope",
		Args:  cobra.MaximumNArgs(1),
		RunE:  c.runList,
	}
}

func (c *Cmd) runList(cmd *cobra.Command, args []string) error {
	scopes := c.registry.Scopes()

	if len(args) == 1 {
		scope, ok := c.registry.Scope(args[0])
		if !ok {
			return fmt.Errorf("unknown scope %q, available: %s", args[0], strings.Join(scopeNames(scopes), ", "))
		}

		scopes = []*s3config.ConfigScope{scope}
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tTYPE\tDEFAULT")

	for _, scope := range scopes {
		for _, opt := range scope.ListOptions() {
			fmt.Fprintf(w, "%s\t%s\t%s\n", scope.FullKey(opt.Key), opt.Type, opt.Default)
		}
	}

	return w.Flush()
}

func (c *Cmd) newDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <key>",
		Short: "Describe an option, e.g. describe aws.client.maxConnections",
		Args:  cobra.ExactArgs(1),
		RunE:  c.runDescribe,
	}
}

func (c *Cmd) runDescribe(cmd *cobra.Command, args []string) error {
	scope, opt, err := c.registry.Resolve(args[0])
	if err != nil {
		return err
	}

	fullKey := scope.FullKey(opt.Key)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Key:\t%s\n", fullKey)
	fmt.Fprintf(w, "Scope:\t%s\n", scope.Name())
	fmt.Fprintf(w, "Type:\t%s\n", opt.Type)

	if opt.HasDefault() {
		fmt.Fprintf(w, "Default:\t%s\n", opt.Default)
	}

	if opt.IsEnum() {
		fmt.Fprintf(w, "Allowed values:\t%s\n", strings.Join(opt.Values, ", "))
	}

	if opt.Secret {
		fmt.Fprintln(w, "Secret:\tyes")
	}

	fmt.Fprintf(w, "Flag:\t--%s\n", fullKey)
	fmt.Fprintf(w, "Environment:\t%s\n", loader.EnvName(optionEnvPrefix, fullKey))

	if err = w.Flush(); err != nil {
		return err
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n", opt.Description)

	return err
}

func scopeNames(scopes []*s3config.ConfigScope) []string {
	names := make([]string, 0, len(scopes))
	for _, s := range scopes {
		names = append(names, s.Name())
	}

	return names
}

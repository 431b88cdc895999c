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

package loader

import (
	"context"
	"fmt"
	"strings"

	"github.com/aerospike/s3config-go"
	"github.com/spf13/pflag"
)

// flagAnnotation marks flags created by NewFlagSet.
const flagAnnotation = "s3config-option"

// NewFlagSet returns a flag set with one flag per option of the registry, named by
// the dotted key: --aws.client.maxConnections. Boolean options are boolean flags,
// all others take the value text.
func NewFlagSet(registry *s3config.Registry) *pflag.FlagSet {
	flagSet := &pflag.FlagSet{}
	flagSet.SortFlags = false

	for _, scope := range registry.Scopes() {
		for _, opt := range scope.ListOptions() {
			name := scope.FullKey(opt.Key)
			usage := flagUsage(opt)

			if opt.Type == s3config.TypeBoolean {
				flagSet.Bool(name, false, usage)
			} else {
				flagSet.String(name, "", usage)
			}

			// The flag was just defined, so the annotation can't fail.
			_ = flagSet.SetAnnotation(name, flagAnnotation, []string{opt.Type.String()})
		}
	}

	return flagSet
}

func flagUsage(opt s3config.ConfigOption) string {
	usage := opt.Description
	if i := strings.Index(usage, "\n"); i > 0 {
		usage = usage[:i]
	}

	usage = strings.TrimSpace(usage)

	if opt.Type != s3config.TypeBoolean && opt.Type != s3config.TypeString {
		usage = fmt.Sprintf("%s (%s)", usage, opt.Type)
	}

	return usage
}

// FlagSource serves the flags of a flag set created by NewFlagSet that were set on
// the command line. Other flags of the set are ignored.
type FlagSource struct {
	flagSet *pflag.FlagSet
}

// NewFlagSource returns a source reading flagSet. The set, or a set it was added to,
// must be parsed before Load.
func NewFlagSource(flagSet *pflag.FlagSet) *FlagSource {
	return &FlagSource{flagSet: flagSet}
}

// Name returns "flags".
func (s *FlagSource) Name() string {
	return "flags"
}

// Load returns the changed flags.
func (s *FlagSource) Load(_ context.Context) (map[string]any, error) {
	result := make(map[string]any)

	// Flags are shared with the sets they were added to, so Changed is checked
	// instead of visiting the flags parsed by this set.
	s.flagSet.VisitAll(func(f *pflag.Flag) {
		if _, ok := f.Annotations[flagAnnotation]; ok && f.Changed {
			result[f.Name] = f.Value.String()
		}
	})

	return result, nil
}

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
	"os"
	"strings"
	"unicode"

	"github.com/aerospike/s3config-go"
)

// EnvSource reads one environment variable per option of a registry.
// The variable name is the prefix followed by the dotted key in upper snake case:
// "aws.client.maxConnections" with prefix "S3CONFIG_" is read from
// S3CONFIG_AWS_CLIENT_MAX_CONNECTIONS.
type EnvSource struct {
	prefix   string
	registry *s3config.Registry
	lookup   func(string) (string, bool)
}

// NewEnvSource returns a source reading the process environment.
func NewEnvSource(prefix string, registry *s3config.Registry) *EnvSource {
	return &EnvSource{
		prefix:   prefix,
		registry: registry,
		lookup:   os.LookupEnv,
	}
}

// Name returns "env".
func (s *EnvSource) Name() string {
	return "env"
}

// Load returns the values of the variables that are set.
func (s *EnvSource) Load(ctx context.Context) (map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := make(map[string]any)

	for _, key := range s.registry.FullKeys() {
		if v, ok := s.lookup(EnvName(s.prefix, key)); ok {
			result[key] = v
		}
	}

	return result, nil
}

// EnvName returns the environment variable name of a dotted key.
func EnvName(prefix, fullKey string) string {
	var sb strings.Builder

	sb.WriteString(prefix)

	var prev rune

	for i, r := range fullKey {
		switch {
		case r == '.' || r == '-':
			sb.WriteByte('_')
		case unicode.IsUpper(r) && i > 0 && (unicode.IsLower(prev) || unicode.IsDigit(prev)):
			sb.WriteByte('_')
			sb.WriteRune(r)
		default:
			sb.WriteRune(unicode.ToUpper(r))
		}

		prev = r
	}

	return sb.String()
}

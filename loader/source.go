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
	"maps"
)

// Source provides raw configuration values keyed by dotted keys,
// e.g. "aws.client.maxConnections".
type Source interface {
	// Name identifies the source in logs and in Result.Origins.
	Name() string
	// Load returns the raw values of the source. Values are strings or YAML scalars.
	Load(ctx context.Context) (map[string]any, error)
}

// MapSource serves values from a map. It is used for programmatic configuration.
type MapSource struct {
	name   string
	values map[string]any
}

// NewMapSource returns a source serving a copy of values.
func NewMapSource(name string, values map[string]any) *MapSource {
	return &MapSource{
		name:   name,
		values: maps.Clone(values),
	}
}

// Name returns the source name.
func (s *MapSource) Name() string {
	return s.name
}

// Load returns a copy of the values.
func (s *MapSource) Load(_ context.Context) (map[string]any, error) {
	return maps.Clone(s.values), nil
}

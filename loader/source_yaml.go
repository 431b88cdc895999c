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
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// YAMLSource reads values from a YAML document. Scopes may be nested or written
// as dotted keys, both forms below are equivalent:
//
//	aws:
//	  client:
//	    maxConnections: 10
//
//	aws.client.maxConnections: 10
//
// Null leaves are treated as unset.
type YAMLSource struct {
	name string
	read func() ([]byte, error)
}

// NewYAMLFileSource returns a source reading the YAML file at path on every Load.
func NewYAMLFileSource(path string) *YAMLSource {
	return &YAMLSource{
		name: path,
		read: func() ([]byte, error) {
			if path == "" {
				return nil, fmt.Errorf("config path is empty")
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("failed to open config file %s: %w", path, err)
			}

			return data, nil
		},
	}
}

// NewYAMLSource returns a source reading YAML from data.
func NewYAMLSource(name string, data []byte) *YAMLSource {
	return &YAMLSource{
		name: name,
		read: func() ([]byte, error) {
			return data, nil
		},
	}
}

// Name returns the file path or the name the source was created with.
func (s *YAMLSource) Name() string {
	return s.name
}

// Load decodes and flattens the document.
func (s *YAMLSource) Load(ctx context.Context) (map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := s.read()
	if err != nil {
		return nil, err
	}

	var doc map[string]any

	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err = dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode config file %s: %w", s.name, err)
	}

	result := make(map[string]any)
	if err = flatten(result, "", doc); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", s.name, err)
	}

	return result, nil
}

func flatten(dst map[string]any, prefix string, src map[string]any) error {
	for k, v := range src {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch val := v.(type) {
		case nil:
			continue
		case map[string]any:
			if err := flatten(dst, key, val); err != nil {
				return err
			}
		case map[any]any:
			nested := make(map[string]any, len(val))
			for nk, nv := range val {
				nested[fmt.Sprint(nk)] = nv
			}

			if err := flatten(dst, key, nested); err != nil {
				return err
			}
		default:
			if _, ok := dst[key]; ok {
				return fmt.Errorf("duplicate key %q", key)
			}

			dst[key] = val
		}
	}

	return nil
}

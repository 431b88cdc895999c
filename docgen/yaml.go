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

package docgen

import (
	"fmt"
	"io"
	"strings"

	"github.com/aerospike/s3config-go"
	"gopkg.in/yaml.v3"
)

// YAMLExample writes a YAML document listing every option of the scopes, nested
// by scope name. Options with a default carry it, the others are null, which
// loaders treat as unset. Descriptions become comments.
func YAMLExample(w io.Writer, scopes ...*s3config.ConfigScope) error {
	root := &yaml.Node{Kind: yaml.MappingNode}

	for _, scope := range scopes {
		parent := root
		for _, part := range strings.Split(scope.Name(), ".") {
			parent = childMapping(parent, part)
		}

		for _, opt := range scope.ListOptions() {
			parent.Content = append(parent.Content,
				&yaml.Node{
					Kind:        yaml.ScalarNode,
					Value:       opt.Key,
					HeadComment: comment(opt),
				},
				valueNode(opt),
			)
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(&yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}

	return nil
}

// childMapping returns the mapping stored under key, adding it when missing.
func childMapping(parent *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(parent.Content); i += 2 {
		if parent.Content[i].Value == key && parent.Content[i+1].Kind == yaml.MappingNode {
			return parent.Content[i+1]
		}
	}

	child := &yaml.Node{Kind: yaml.MappingNode}
	parent.Content = append(parent.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: key}, child)

	return child
}

func valueNode(opt s3config.ConfigOption) *yaml.Node {
	if !opt.HasDefault() {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}

	node := &yaml.Node{Kind: yaml.ScalarNode, Value: opt.Default}
	if opt.Type == s3config.TypeString || opt.Type == s3config.TypeMemorySize || opt.Type == s3config.TypeDuration {
		node.Tag = "!!str"
	}

	return node
}

func comment(opt s3config.ConfigOption) string {
	lines := strings.Split(strings.TrimSpace(opt.Description), "\n")

	meta := opt.Type.String()
	if opt.IsEnum() {
		meta += ", one of: " + strings.Join(opt.Values, ", ")
	}

	if opt.Secret {
		meta += ", secret"
	}

	lines = append(lines, "("+meta+")")

	for i, line := range lines {
		lines[i] = strings.TrimRight("# "+strings.TrimSpace(line), " ")
	}

	return strings.Join(lines, "\n")
}

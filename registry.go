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

package s3config

import (
	"fmt"
	"sort"
	"strings"
)

// Registry is an immutable set of scopes addressed by dotted keys.
type Registry struct {
	scopes []*ConfigScope
	byName map[string]*ConfigScope
}

// NewRegistry creates a registry. Scope names must be unique.
func NewRegistry(scopes ...*ConfigScope) (*Registry, error) {
	r := &Registry{
		scopes: make([]*ConfigScope, 0, len(scopes)),
		byName: make(map[string]*ConfigScope, len(scopes)),
	}

	for _, s := range scopes {
		if s == nil {
			return nil, fmt.Errorf("scope must not be nil")
		}

		if _, ok := r.byName[s.Name()]; ok {
			return nil, fmt.Errorf("duplicate scope %q", s.Name())
		}

		r.byName[s.Name()] = s
		r.scopes = append(r.scopes, s)
	}

	// A scope option must not shadow a nested scope: "aws.client" can't also be an option of "aws".
	for _, s := range r.scopes {
		for _, key := range s.Keys() {
			if _, ok := r.byName[s.FullKey(key)]; ok {
				return nil, fmt.Errorf("option %q clashes with scope of the same name", s.FullKey(key))
			}
		}
	}

	return r, nil
}

var defaultRegistry = mustRegistry(AwsScope, AwsClientScope)

func mustRegistry(scopes ...*ConfigScope) *Registry {
	r, err := NewRegistry(scopes...)
	if err != nil {
		panic(err)
	}

	return r
}

// DefaultRegistry returns the registry of the built-in "aws" and "aws.client" scopes.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Scopes returns the scopes in registration order.
func (r *Registry) Scopes() []*ConfigScope {
	result := make([]*ConfigScope, len(r.scopes))
	copy(result, r.scopes)

	return result
}

// Scope returns the scope with the given name.
func (r *Registry) Scope(name string) (*ConfigScope, bool) {
	s, ok := r.byName[name]
	return s, ok
}

// Resolve splits a dotted key into its scope and option.
// The longest matching scope name wins, so "aws.client.endpoint" resolves to
// option "endpoint" of scope "aws.client".
func (r *Registry) Resolve(fullKey string) (*ConfigScope, ConfigOption, error) {
	idx := len(fullKey)

	for {
		idx = strings.LastIndex(fullKey[:idx], ".")
		if idx <= 0 {
			break
		}

		if s, ok := r.byName[fullKey[:idx]]; ok {
			opt, err := s.Lookup(fullKey[idx+1:])
			if err != nil {
				return nil, ConfigOption{}, err
			}

			return s, opt, nil
		}
	}

	return nil, ConfigOption{}, &UnknownOptionError{Key: fullKey}
}

// FullKeys returns every dotted key of the registry, sorted.
func (r *Registry) FullKeys() []string {
	keys := make([]string, 0)

	for _, s := range r.scopes {
		for _, key := range s.Keys() {
			keys = append(keys, s.FullKey(key))
		}
	}

	sort.Strings(keys)

	return keys
}

// redacted replaces secret values.
const redacted = "******"

// Redact returns a copy of values with secret options masked.
func (r *Registry) Redact(values Values) Values {
	result := make(Values, len(values))

	for k, v := range values {
		if _, opt, err := r.Resolve(k); err == nil && opt.Secret {
			v = redacted
		}

		result[k] = v
	}

	return result
}

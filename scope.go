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
	"errors"
	"fmt"
	"strings"
)

// ConfigScope is an immutable, named set of option declarations.
// It holds no mutable state once built and is safe for concurrent use.
type ConfigScope struct {
	name    string
	options []ConfigOption
	index   map[string]int
}

// NewConfigScope builds a scope from options in declaration order.
// It fails when the name is empty, a key is repeated, or an option declaration is invalid.
func NewConfigScope(name string, options ...ConfigOption) (*ConfigScope, error) {
	if err := validateScopeName(name); err != nil {
		return nil, err
	}

	s := &ConfigScope{
		name:    name,
		options: make([]ConfigOption, 0, len(options)),
		index:   make(map[string]int, len(options)),
	}

	var errs error

	for _, opt := range options {
		if err := opt.validate(); err != nil {
			errs = errors.Join(errs, fmt.Errorf("scope %q: %w", name, err))
			continue
		}

		if _, ok := s.index[opt.Key]; ok {
			errs = errors.Join(errs, fmt.Errorf("scope %q: duplicate option %q", name, opt.Key))
			continue
		}

		s.index[opt.Key] = len(s.options)
		s.options = append(s.options, opt.clone())
	}

	if errs != nil {
		return nil, errs
	}

	return s, nil
}

// MustConfigScope is like NewConfigScope but panics on error.
// It is meant for package level scope tables.
func MustConfigScope(name string, options ...ConfigOption) *ConfigScope {
	s, err := NewConfigScope(name, options...)
	if err != nil {
		panic(err)
	}

	return s
}

func validateScopeName(name string) error {
	if name == "" {
		return fmt.Errorf("scope name is required")
	}

	for _, part := range strings.Split(name, ".") {
		if part == "" || strings.ContainsAny(part, " \t\n") {
			return fmt.Errorf("invalid scope name %q", name)
		}
	}

	return nil
}

// Name returns the scope name, e.g. "aws.client".
func (s *ConfigScope) Name() string {
	return s.name
}

// Len returns the number of declared options.
func (s *ConfigScope) Len() int {
	return len(s.options)
}

// ListOptions returns all options in declaration order.
// The result is a copy: repeated calls return equal slices.
func (s *ConfigScope) ListOptions() []ConfigOption {
	result := make([]ConfigOption, len(s.options))
	for i := range s.options {
		result[i] = s.options[i].clone()
	}

	return result
}

// Keys returns the option keys in declaration order.
func (s *ConfigScope) Keys() []string {
	keys := make([]string, len(s.options))
	for i := range s.options {
		keys[i] = s.options[i].Key
	}

	return keys
}

// Has reports whether key is declared.
func (s *ConfigScope) Has(key string) bool {
	_, ok := s.index[key]
	return ok
}

// Lookup returns the declaration of key.
// A missing key is reported with *UnknownOptionError, which matches ErrUnknownOption.
func (s *ConfigScope) Lookup(key string) (ConfigOption, error) {
	i, ok := s.index[key]
	if !ok {
		return ConfigOption{}, &UnknownOptionError{Scope: s.name, Key: key}
	}

	return s.options[i].clone(), nil
}

// Describe returns the documentation of key. It fails the same way as Lookup.
func (s *ConfigScope) Describe(key string) (string, error) {
	opt, err := s.Lookup(key)
	if err != nil {
		return "", err
	}

	return opt.Description, nil
}

// FullKey returns the dotted key used by configuration sources,
// e.g. "aws.client.maxConnections".
func (s *ConfigScope) FullKey(key string) string {
	return s.name + "." + key
}

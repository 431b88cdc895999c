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
)

var (
	// ErrUnknownOption is matched by errors returned for keys a scope does not declare.
	ErrUnknownOption = errors.New("unknown option")
	// ErrTypeMismatch is matched by errors returned when a value can't be parsed
	// into the declared value type of an option.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrInvalidValue is matched by errors returned when a value has the right type
	// but is not one of the values an option allows.
	ErrInvalidValue = errors.New("invalid value")
)

// UnknownOptionError reports a key that is not declared in a scope.
type UnknownOptionError struct {
	// Scope is the name of the scope that was searched, empty for registry lookups.
	Scope string
	Key   string
}

func (e *UnknownOptionError) Error() string {
	if e.Scope == "" {
		return fmt.Sprintf("unknown option %q", e.Key)
	}

	return fmt.Sprintf("unknown option %q in scope %q", e.Key, e.Scope)
}

func (e *UnknownOptionError) Is(target error) bool {
	return target == ErrUnknownOption
}

// TypeMismatchError reports a value that can't be parsed into an option type.
type TypeMismatchError struct {
	Key   string
	Type  ValueType
	Value any
	Err   error
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("option %q expects %s, got %v: %v", e.Key, e.Type, e.Value, e.Err)
}

func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

func (e *TypeMismatchError) Unwrap() error {
	return e.Err
}

// InvalidValueError reports a value outside the set of values an option allows.
type InvalidValueError struct {
	Key     string
	Value   any
	Allowed []string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("option %q does not accept %v, allowed values: %v", e.Key, e.Value, e.Allowed)
}

func (e *InvalidValueError) Is(target error) bool {
	return target == ErrInvalidValue
}

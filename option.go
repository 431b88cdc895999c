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
	"slices"
	"strings"
)

// ValueType is the type of the value an option accepts.
type ValueType int

// Value types.
const (
	TypeBoolean ValueType = iota + 1
	TypeInteger
	TypeString
	TypeDecimal
	// TypeDuration values are parsed with units.ParseDuration.
	TypeDuration
	// TypeMemorySize values are parsed with units.ParseMemoryUnit.
	TypeMemorySize
)

var valueTypeNames = map[ValueType]string{
	TypeBoolean:    "boolean",
	TypeInteger:    "integer",
	TypeString:     "string",
	TypeDecimal:    "decimal",
	TypeDuration:   "duration",
	TypeMemorySize: "memory-size",
}

func (t ValueType) String() string {
	if name, ok := valueTypeNames[t]; ok {
		return name
	}

	return fmt.Sprintf("ValueType(%d)", int(t))
}

// Valid reports whether t is one of the declared value types.
func (t ValueType) Valid() bool {
	_, ok := valueTypeNames[t]
	return ok
}

// ParseValueType resolves a value type by its name.
func ParseValueType(name string) (ValueType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for t, n := range valueTypeNames {
		if n == name {
			return t, nil
		}
	}

	return 0, fmt.Errorf("unknown value type %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (t ValueType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid value type %d", int(t))
	}

	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *ValueType) UnmarshalText(text []byte) error {
	v, err := ParseValueType(string(text))
	if err != nil {
		return err
	}

	*t = v

	return nil
}

// ConfigOption is one declared, typed and documented key of a scope.
type ConfigOption struct {
	// Key is unique within the owning scope and never contains a dot.
	Key string
	// Type of the values the option accepts.
	Type ValueType
	// Default is the documented default written in the option's own value syntax,
	// e.g. "8 MB". Empty means the option is unset unless the client library
	// supplies its own default.
	Default string
	// Description is documentation text. It is not interpreted.
	Description string
	// Values lists the accepted literals of an enumerated string option.
	// Matching is case-insensitive. Empty means any value of Type.
	Values []string
	// Secret options are redacted when configuration is printed.
	Secret bool
}

// HasDefault reports whether a default is documented for the option.
func (o ConfigOption) HasDefault() bool {
	return o.Default != ""
}

// IsEnum reports whether the option only accepts the literals in Values.
func (o ConfigOption) IsEnum() bool {
	return len(o.Values) > 0
}

func (o ConfigOption) clone() ConfigOption {
	o.Values = slices.Clone(o.Values)
	return o
}

// validate checks the declaration itself, not a value.
func (o ConfigOption) validate() error {
	switch {
	case o.Key == "":
		return fmt.Errorf("option key is required")
	case strings.ContainsAny(o.Key, ". \t\n"):
		return fmt.Errorf("option key %q must not contain dots or spaces", o.Key)
	case !o.Type.Valid():
		return fmt.Errorf("option %q has invalid value type %d", o.Key, int(o.Type))
	case len(o.Values) > 0 && o.Type != TypeString:
		return fmt.Errorf("option %q: only string options may enumerate values", o.Key)
	}

	for _, v := range o.Values {
		if v == "" {
			return fmt.Errorf("option %q: enumerated values must not be empty", o.Key)
		}
	}

	if o.HasDefault() {
		if _, err := ParseValue(o, o.Default); err != nil {
			return fmt.Errorf("option %q has invalid default: %w", o.Key, err)
		}
	}

	return nil
}

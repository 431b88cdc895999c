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

package units

import (
	"fmt"
	"strconv"
	"strings"

	gounits "github.com/docker/go-units"
)

// memoryUnitNames are the binary multiples rendered by MemoryUnit, in ascending order.
var memoryUnitNames = []string{"B", "KB", "MB", "GB", "TB", "PB"}

// MemoryUnit is a byte quantity parsed from text like "8 MB".
// Multiples are binary: 1 KB is 1024 bytes.
type MemoryUnit int64

// Common memory sizes.
const (
	Byte     MemoryUnit = 1
	KiloByte            = 1024 * Byte
	MegaByte            = 1024 * KiloByte
	GigaByte            = 1024 * MegaByte
	TeraByte            = 1024 * GigaByte
	PetaByte            = 1024 * TeraByte
)

// ParseMemoryUnit parses a memory size. A bare number is a byte count.
// Unit suffixes are case-insensitive and may be separated from the number by a single space:
// "512", "10KB", "8 MB", "1.5g", "2 GiB".
func ParseMemoryUnit(s string) (MemoryUnit, error) {
	text := strings.TrimSpace(s)
	if text == "" {
		return 0, fmt.Errorf("empty memory size")
	}

	size, err := gounits.RAMInBytes(text)
	if err != nil {
		return 0, fmt.Errorf("invalid memory size %q: %w", s, err)
	}

	if size < 0 {
		return 0, fmt.Errorf("invalid memory size %q: must be non-negative", s)
	}

	return MemoryUnit(size), nil
}

// MustParseMemoryUnit is like ParseMemoryUnit but panics on error.
func MustParseMemoryUnit(s string) MemoryUnit {
	m, err := ParseMemoryUnit(s)
	if err != nil {
		panic(err)
	}

	return m
}

// Bytes returns the size in bytes.
func (m MemoryUnit) Bytes() int64 {
	return int64(m)
}

// String renders the size with the largest unit that represents it exactly,
// e.g. "8 MB". Sizes without an exact representation are rounded: "1.5 KB".
func (m MemoryUnit) String() string {
	if exact, ok := m.exact(); ok {
		return exact
	}

	return gounits.CustomSize("%.4g %s", float64(m), 1024.0, memoryUnitNames)
}

// exact renders m as an integer count of the largest unit dividing it.
func (m MemoryUnit) exact() (string, bool) {
	if m == 0 {
		return "0", true
	}

	unit := Byte
	name := memoryUnitNames[0]

	for _, n := range memoryUnitNames[1:] {
		next := unit * 1024
		if m%next != 0 {
			break
		}

		unit, name = next, n
	}

	if unit == Byte && m >= KiloByte {
		return "", false
	}

	return strconv.FormatInt(int64(m/unit), 10) + " " + name, true
}

// MarshalText keeps the value lossless: an exact unit when one fits, bytes otherwise.
func (m MemoryUnit) MarshalText() ([]byte, error) {
	if exact, ok := m.exact(); ok {
		return []byte(exact), nil
	}

	return []byte(strconv.FormatInt(int64(m), 10)), nil
}

// UnmarshalText parses text with ParseMemoryUnit.
func (m *MemoryUnit) UnmarshalText(text []byte) error {
	v, err := ParseMemoryUnit(string(text))
	if err != nil {
		return err
	}

	*m = v

	return nil
}

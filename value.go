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
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/aerospike/s3config-go/units"
	"github.com/spf13/cast"
)

// Values maps dotted keys, e.g. "aws.client.maxConnections", to parsed values.
// The dynamic type of each value follows the option type: bool, int, string,
// float64, units.Duration or units.MemoryUnit.
type Values map[string]any

// ParseValue converts raw input from a configuration source into the Go type of the
// option's value type. Raw values are usually strings (env, flags) or YAML scalars.
// Conversion failures are *TypeMismatchError, values outside an enumeration are
// *InvalidValueError.
func ParseValue(opt ConfigOption, raw any) (any, error) {
	if raw == nil {
		return nil, &TypeMismatchError{Key: opt.Key, Type: opt.Type, Value: raw, Err: fmt.Errorf("value is missing")}
	}

	var (
		v   any
		err error
	)

	switch opt.Type {
	case TypeBoolean:
		v, err = parseBool(raw)
	case TypeInteger:
		v, err = parseInt(raw)
	case TypeString:
		v, err = cast.ToStringE(raw)
	case TypeDecimal:
		v, err = parseDecimal(raw)
	case TypeDuration:
		v, err = parseDuration(raw)
	case TypeMemorySize:
		v, err = parseMemorySize(raw)
	default:
		err = fmt.Errorf("unsupported value type")
	}

	if err != nil {
		return nil, &TypeMismatchError{Key: opt.Key, Type: opt.Type, Value: raw, Err: err}
	}

	if opt.IsEnum() {
		return matchEnum(opt, v.(string))
	}

	return v, nil
}

func matchEnum(opt ConfigOption, s string) (string, error) {
	trimmed := strings.TrimSpace(s)
	for _, allowed := range opt.Values {
		if strings.EqualFold(trimmed, allowed) {
			return allowed, nil
		}
	}

	return "", &InvalidValueError{Key: opt.Key, Value: s, Allowed: opt.Values}
}

func parseBool(raw any) (bool, error) {
	if s, ok := raw.(string); ok {
		return strconv.ParseBool(strings.TrimSpace(s))
	}

	return cast.ToBoolE(raw)
}

func parseInt(raw any) (int, error) {
	switch v := raw.(type) {
	case string:
		return strconv.Atoi(strings.TrimSpace(v))
	case bool:
		return 0, fmt.Errorf("boolean is not a number")
	case float32:
		return wholeNumber(float64(v))
	case float64:
		return wholeNumber(v)
	case int64:
		if v < math.MinInt || v > math.MaxInt {
			return 0, fmt.Errorf("%d is out of int range", v)
		}

		return int(v), nil
	case uint:
		return unsignedInt(uint64(v))
	case uint32:
		return unsignedInt(uint64(v))
	case uint64:
		return unsignedInt(v)
	}

	return cast.ToIntE(raw)
}

func wholeNumber(f float64) (int, error) {
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("%v is not a whole number", f)
	}

	// float64(math.MaxInt) rounds up to the first value out of range.
	if f < math.MinInt || f >= math.MaxInt {
		return 0, fmt.Errorf("%v is out of int range", f)
	}

	return int(f), nil
}

func unsignedInt(u uint64) (int, error) {
	if u > math.MaxInt {
		return 0, fmt.Errorf("%d is out of int range", u)
	}

	return int(u), nil
}

func parseDecimal(raw any) (float64, error) {
	if _, ok := raw.(bool); ok {
		return 0, fmt.Errorf("boolean is not a number")
	}

	if s, ok := raw.(string); ok {
		raw = strings.TrimSpace(s)
	}

	f, err := cast.ToFloat64E(raw)
	if err != nil {
		return 0, err
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%v is not a finite number", f)
	}

	return f, nil
}

func parseDuration(raw any) (units.Duration, error) {
	switch v := raw.(type) {
	case units.Duration:
		return v, nil
	case time.Duration:
		return units.NewDuration(v), nil
	case string:
		return units.ParseDuration(v)
	}

	ms, err := parseInt(raw)
	if err != nil {
		return units.Duration{}, err
	}

	if ms < 0 {
		return units.Duration{}, fmt.Errorf("duration must be non-negative")
	}

	if int64(ms) > units.MaxMillis {
		return units.Duration{}, fmt.Errorf("%d milliseconds overflow a duration", ms)
	}

	return units.NewDuration(time.Duration(ms) * time.Millisecond), nil
}

func parseMemorySize(raw any) (units.MemoryUnit, error) {
	switch v := raw.(type) {
	case units.MemoryUnit:
		return v, nil
	case string:
		return units.ParseMemoryUnit(v)
	}

	n, err := parseInt(raw)
	if err != nil {
		return 0, err
	}

	if n < 0 {
		return 0, fmt.Errorf("memory size must be non-negative")
	}

	return units.MemoryUnit(n), nil
}

// FormatValue renders a parsed value in the syntax ParseValue accepts.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case fmt.Stringer:
		return val.String()
	default:
		return cast.ToString(v)
	}
}

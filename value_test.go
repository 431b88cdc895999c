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
	"math"
	"testing"
	"time"

	"github.com/aerospike/s3config-go/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValue(t *testing.T) {
	t.Parallel()

	boolOpt := ConfigOption{Key: "b", Type: TypeBoolean}
	intOpt := ConfigOption{Key: "i", Type: TypeInteger}
	strOpt := ConfigOption{Key: "s", Type: TypeString}
	decOpt := ConfigOption{Key: "d", Type: TypeDecimal}
	durOpt := ConfigOption{Key: "t", Type: TypeDuration}
	memOpt := ConfigOption{Key: "m", Type: TypeMemorySize}
	enumOpt := ConfigOption{Key: "e", Type: TypeString, Values: []string{"AES256", "aws:kms"}}

	tests := []struct {
		name     string
		opt      ConfigOption
		raw      any
		expected any
		wantErr  error
	}{
		{name: "bool native", opt: boolOpt, raw: true, expected: true},
		{name: "bool string", opt: boolOpt, raw: " false ", expected: false},
		{name: "bool garbage", opt: boolOpt, raw: "yes please", wantErr: ErrTypeMismatch},
		{name: "int native", opt: intOpt, raw: 42, expected: 42},
		{name: "int string", opt: intOpt, raw: "08", expected: 8},
		{name: "int whole float", opt: intOpt, raw: 3.0, expected: 3},
		{name: "int fraction", opt: intOpt, raw: 3.5, wantErr: ErrTypeMismatch},
		{name: "int bool", opt: intOpt, raw: true, wantErr: ErrTypeMismatch},
		{name: "int text", opt: intOpt, raw: "ten", wantErr: ErrTypeMismatch},
		{name: "int uint64", opt: intOpt, raw: uint64(7), expected: 7},
		{name: "int uint64 max", opt: intOpt, raw: uint64(math.MaxUint64), wantErr: ErrTypeMismatch},
		{name: "int uint64 above max int", opt: intOpt, raw: uint64(math.MaxInt64) + 1, wantErr: ErrTypeMismatch},
		{name: "int uint max", opt: intOpt, raw: uint(math.MaxUint), wantErr: ErrTypeMismatch},
		{name: "int huge float", opt: intOpt, raw: 1e300, wantErr: ErrTypeMismatch},
		{name: "int infinite float", opt: intOpt, raw: math.Inf(1), wantErr: ErrTypeMismatch},
		{name: "string native", opt: strOpt, raw: "https://s3.local", expected: "https://s3.local"},
		{name: "string from int", opt: strOpt, raw: 9000, expected: "9000"},
		{name: "string from map", opt: strOpt, raw: map[string]any{"a": 1}, wantErr: ErrTypeMismatch},
		{name: "decimal native", opt: decOpt, raw: 2.5, expected: 2.5},
		{name: "decimal int", opt: decOpt, raw: 10, expected: 10.0},
		{name: "decimal string", opt: decOpt, raw: "12.5", expected: 12.5},
		{name: "decimal garbage", opt: decOpt, raw: "fast", wantErr: ErrTypeMismatch},
		{name: "decimal nan", opt: decOpt, raw: "NaN", wantErr: ErrTypeMismatch},
		{name: "duration string", opt: durOpt, raw: "10s", expected: units.NewDuration(10 * time.Second)},
		{name: "duration millis", opt: durOpt, raw: 1500, expected: units.NewDuration(1500 * time.Millisecond)},
		{name: "duration native", opt: durOpt, raw: time.Minute, expected: units.NewDuration(time.Minute)},
		{name: "duration negative", opt: durOpt, raw: -1, wantErr: ErrTypeMismatch},
		{name: "duration millis overflow", opt: durOpt, raw: 9999999999999999, wantErr: ErrTypeMismatch},
		{name: "duration string overflow", opt: durOpt, raw: "9999999999999999", wantErr: ErrTypeMismatch},
		{name: "duration sub-millisecond", opt: durOpt, raw: "1.0005s", expected: units.NewDuration(time.Second + 500*time.Microsecond)},
		{name: "memory string", opt: memOpt, raw: "8 MB", expected: units.MemoryUnit(8 * 1024 * 1024)},
		{name: "memory bytes", opt: memOpt, raw: 1024, expected: units.KiloByte},
		{name: "memory garbage", opt: memOpt, raw: "big", wantErr: ErrTypeMismatch},
		{name: "memory negative", opt: memOpt, raw: -5, wantErr: ErrTypeMismatch},
		{name: "enum exact", opt: enumOpt, raw: "AES256", expected: "AES256"},
		{name: "enum case folded", opt: enumOpt, raw: "AWS:KMS", expected: "aws:kms"},
		{name: "enum outside", opt: enumOpt, raw: "DES", wantErr: ErrInvalidValue},
		{name: "missing", opt: strOpt, raw: nil, wantErr: ErrTypeMismatch},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseValue(tt.opt, tt.raw)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Contains(t, err.Error(), tt.opt.Key)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseValue_MinimumPartSize(t *testing.T) {
	t.Parallel()

	opt, err := AwsClientScope.Lookup(KeyMinimumPartSize)
	require.NoError(t, err)

	v, err := ParseValue(opt, "8 MB")
	require.NoError(t, err)
	assert.Equal(t, units.MemoryUnit(8*1024*1024), v)
}

func TestFormatValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", FormatValue(nil))
	assert.Equal(t, "true", FormatValue(true))
	assert.Equal(t, "10", FormatValue(10))
	assert.Equal(t, "2.5", FormatValue(2.5))
	assert.Equal(t, "10", FormatValue(10.0))
	assert.Equal(t, "8 MB", FormatValue(8*units.MegaByte))
	assert.Equal(t, "1h 30m", FormatValue(units.NewDuration(90*time.Minute)))
	assert.Equal(t, "STANDARD", FormatValue("STANDARD"))
}

func TestDocumentedDefaultsParse(t *testing.T) {
	t.Parallel()

	for _, s := range DefaultRegistry().Scopes() {
		for _, opt := range s.ListOptions() {
			if !opt.HasDefault() {
				continue
			}

			_, err := ParseValue(opt, opt.Default)
			assert.NoError(t, err, s.FullKey(opt.Key))
		}
	}
}

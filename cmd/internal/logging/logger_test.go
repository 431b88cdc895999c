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

package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		level        string
		verbose      bool
		json         bool
		expectErr    bool
		debugEnabled bool
		prefix       string
	}{
		{name: "default", level: "debug", prefix: "time="},
		{name: "verbose debug", level: "debug", verbose: true, debugEnabled: true, prefix: "time="},
		{name: "verbose error", level: "error", verbose: true, prefix: "time="},
		{name: "json", level: "debug", json: true, prefix: "{"},
		{name: "invalid level ignored without verbose", level: "loud", prefix: "time="},
		{name: "invalid level", level: "loud", verbose: true, expectErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			logger, err := newLogger(&buf, tt.level, tt.verbose, tt.json)
			if tt.expectErr {
				require.ErrorContains(t, err, "invalid log level")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.debugEnabled, logger.Enabled(context.Background(), slog.LevelDebug))

			logger.Error("message")
			assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte(tt.prefix)))
		})
	}
}

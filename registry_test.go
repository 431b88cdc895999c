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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Resolve(t *testing.T) {
	t.Parallel()

	r := DefaultRegistry()

	tests := []struct {
		fullKey string
		scope   string
		key     string
		wantErr bool
	}{
		{fullKey: "aws.client.maxConnections", scope: ScopeAwsClient, key: KeyMaxConnections},
		{fullKey: "aws.region", scope: ScopeAws, key: KeyRegion},
		{fullKey: "aws.client.doesNotExist", wantErr: true},
		{fullKey: "aws.client", wantErr: true},
		{fullKey: "gcp.region", wantErr: true},
		{fullKey: "region", wantErr: true},
		{fullKey: "", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.fullKey, func(t *testing.T) {
			t.Parallel()

			s, opt, err := r.Resolve(tt.fullKey)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownOption)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.scope, s.Name())
			assert.Equal(t, tt.key, opt.Key)
		})
	}
}

func TestRegistry_Scopes(t *testing.T) {
	t.Parallel()

	r := DefaultRegistry()

	scopes := r.Scopes()
	require.Len(t, scopes, 2)
	assert.Equal(t, ScopeAws, scopes[0].Name())
	assert.Equal(t, ScopeAwsClient, scopes[1].Name())

	s, ok := r.Scope(ScopeAwsClient)
	require.True(t, ok)
	assert.Same(t, AwsClientScope, s)

	_, ok = r.Scope("azure")
	assert.False(t, ok)

	keys := r.FullKeys()
	assert.Len(t, keys, AwsScope.Len()+AwsClientScope.Len())
	assert.IsNonDecreasing(t, keys)
	assert.Contains(t, keys, "aws.client.uploadStorageClass")
}

func TestNewRegistry_Errors(t *testing.T) {
	t.Parallel()

	_, err := NewRegistry(AwsScope, AwsScope)
	require.ErrorContains(t, err, "duplicate scope")

	_, err = NewRegistry(nil)
	require.Error(t, err)

	shadow := MustConfigScope("aws", ConfigOption{Key: "client", Type: TypeString})
	_, err = NewRegistry(shadow, AwsClientScope)
	require.ErrorContains(t, err, "clashes with scope")
}

func TestRegistry_Redact(t *testing.T) {
	t.Parallel()

	values := Values{
		"aws.secretKey":             "very-secret",
		"aws.accessKey":             "AKIA",
		"aws.client.proxyPassword":  "hunter2",
		"aws.client.maxConnections": 10,
		"unknown.key":               "kept",
	}

	redactedValues := DefaultRegistry().Redact(values)

	assert.Equal(t, redacted, redactedValues["aws.secretKey"])
	assert.Equal(t, redacted, redactedValues["aws.client.proxyPassword"])
	assert.Equal(t, "AKIA", redactedValues["aws.accessKey"])
	assert.Equal(t, 10, redactedValues["aws.client.maxConnections"])
	assert.Equal(t, "kept", redactedValues["unknown.key"])
	// Input is untouched.
	assert.Equal(t, "very-secret", values["aws.secretKey"])
}

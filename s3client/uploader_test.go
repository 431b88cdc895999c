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

package s3client

import (
	"testing"

	"github.com/aerospike/s3config-go"
	"github.com/aerospike/s3config-go/units"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
)

func TestUploaderOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                string
		cfg                 s3config.AwsClientConfig
		expectedPartSize    int64
		expectedConcurrency int
		expectedThreshold   int64
	}{
		{
			name:                "defaults",
			expectedPartSize:    8 * 1024 * 1024,
			expectedConcurrency: 10,
			expectedThreshold:   8 * 1024 * 1024,
		},
		{
			name: "configured",
			cfg: s3config.AwsClientConfig{
				MinimumPartSize:        ptrTo(16 * units.MegaByte),
				MultipartThreshold:     ptrTo(64 * units.MegaByte),
				TransferManagerThreads: aws.Int(4),
			},
			expectedPartSize:    16 * 1024 * 1024,
			expectedConcurrency: 4,
			expectedThreshold:   64 * 1024 * 1024,
		},
		{
			name: "threshold follows part size",
			cfg: s3config.AwsClientConfig{
				MinimumPartSize: ptrTo(32 * units.MegaByte),
			},
			expectedPartSize:    32 * 1024 * 1024,
			expectedConcurrency: 10,
			expectedThreshold:   32 * 1024 * 1024,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			u := &manager.Uploader{}
			UploaderOptions(&tt.cfg)(u)

			assert.Equal(t, tt.expectedPartSize, u.PartSize)
			assert.Equal(t, tt.expectedConcurrency, u.Concurrency)
			assert.Equal(t, tt.expectedThreshold, MultipartThreshold(&tt.cfg))
		})
	}
}

func TestNewUploader(t *testing.T) {
	t.Parallel()

	client := s3.New(s3.Options{Region: "us-east-1"})
	u := NewUploader(client, &s3config.AwsClientConfig{TransferManagerThreads: aws.Int(3)})

	assert.Equal(t, 3, u.Concurrency)
	assert.Equal(t, int64(8*1024*1024), u.PartSize)
}

func ptrTo[T any](v T) *T {
	return &v
}

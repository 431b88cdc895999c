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
	"github.com/aerospike/s3config-go"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
)

// UploaderOptions applies the multipart settings of cfg to an upload manager.
func UploaderOptions(cfg *s3config.AwsClientConfig) func(*manager.Uploader) {
	return func(u *manager.Uploader) {
		u.PartSize = cfg.EffectiveMinimumPartSize().Bytes()
		u.Concurrency = cfg.EffectiveTransferManagerThreads()
	}
}

// NewUploader returns an upload manager for client configured from cfg.
func NewUploader(client manager.UploadAPIClient, cfg *s3config.AwsClientConfig) *manager.Uploader {
	return manager.NewUploader(client, UploaderOptions(cfg))
}

// MultipartThreshold returns the object size in bytes from which uploads
// should be split into parts.
func MultipartThreshold(cfg *s3config.AwsClientConfig) int64 {
	return cfg.EffectiveMultipartThreshold().Bytes()
}

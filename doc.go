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

// Package s3config describes the configuration of an AWS S3 client as typed,
// documented scopes.
//
// A ConfigScope is an immutable table of options. Each option has a key, a value type
// and a description. Scopes are addressed with dotted keys: option "maxConnections"
// of scope "aws.client" is configured as "aws.client.maxConnections".
//
//	opt, err := s3config.AwsClientScope.Lookup("maxConnections")
//	if errors.Is(err, s3config.ErrUnknownOption) {
//		// warn or fail
//	}
//
// Values from configuration sources are converted with ParseValue and collected into
// an AwsConfig with DecodeAwsConfig. The loader package reads and layers the sources,
// the s3client package maps an AwsConfig onto the AWS SDK.
package s3config

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

// Names of the built-in scopes.
const (
	ScopeAws       = "aws"
	ScopeAwsClient = "aws.client"
)

// Keys of the "aws" scope.
const (
	KeyAccessKey = "accessKey"
	KeySecretKey = "secretKey"
	KeyProfile   = "profile"
	KeyRegion    = "region"
)

// AwsScope declares the account settings an S3 client is created with.
var AwsScope = MustConfigScope(ScopeAws,
	ConfigOption{
		Key:         KeyAccessKey,
		Type:        TypeString,
		Description: "AWS account access key.",
	},
	ConfigOption{
		Key:         KeySecretKey,
		Type:        TypeString,
		Description: "AWS account secret key.",
		Secret:      true,
	},
	ConfigOption{
		Key:         KeyProfile,
		Type:        TypeString,
		Description: "AWS profile from the shared config and credentials files.",
	},
	ConfigOption{
		Key:         KeyRegion,
		Type:        TypeString,
		Description: "AWS region, e.g. `us-east-1`.",
	},
)

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

// Keys of the "aws.client" scope.
const (
	KeyAnonymous              = "anonymous"
	KeyS3Acl                  = "s3Acl"
	KeyConnectionTimeout      = "connectionTimeout"
	KeyEndpoint               = "endpoint"
	KeyMaxConcurrency         = "maxConcurrency"
	KeyMaxConnections         = "maxConnections"
	KeyMaxErrorRetry          = "maxErrorRetry"
	KeyMaxNativeMemory        = "maxNativeMemory"
	KeyMinimumPartSize        = "minimumPartSize"
	KeyMultipartThreshold     = "multipartThreshold"
	KeyProxyHost              = "proxyHost"
	KeyProxyPort              = "proxyPort"
	KeyProxyScheme            = "proxyScheme"
	KeyProxyUsername          = "proxyUsername"
	KeyProxyPassword          = "proxyPassword"
	KeyRequesterPays          = "requesterPays"
	KeyS3PathStyleAccess      = "s3PathStyleAccess"
	KeySocketTimeout          = "socketTimeout"
	KeyStorageEncryption      = "storageEncryption"
	KeyStorageKmsKeyID        = "storageKmsKeyId"
	KeyTargetThroughputInGbps = "targetThroughputInGbps"
	KeyTransferManagerThreads = "transferManagerThreads"
	KeyUploadStorageClass     = "uploadStorageClass"
)

// Canned ACL names accepted by s3Acl.
const (
	ACLPrivate                = "Private"
	ACLPublicRead             = "PublicRead"
	ACLPublicReadWrite        = "PublicReadWrite"
	ACLAuthenticatedRead      = "AuthenticatedRead"
	ACLLogDeliveryWrite       = "LogDeliveryWrite"
	ACLBucketOwnerRead        = "BucketOwnerRead"
	ACLBucketOwnerFullControl = "BucketOwnerFullControl"
	ACLAwsExecRead            = "AwsExecRead"
)

// Server side encryption modes accepted by storageEncryption.
const (
	EncryptionAES256 = "AES256"
	EncryptionAwsKms = "aws:kms"
)

// Storage classes accepted by uploadStorageClass.
const (
	StorageClassStandard           = "STANDARD"
	StorageClassStandardIA         = "STANDARD_IA"
	StorageClassOnezoneIA          = "ONEZONE_IA"
	StorageClassIntelligentTiering = "INTELLIGENT_TIERING"
)

// Proxy schemes accepted by proxyScheme.
const (
	ProxySchemeHTTP  = "http"
	ProxySchemeHTTPS = "https"
)

// Documented defaults of the "aws.client" scope.
const (
	defaultMinimumPartSize        = "8 MB"
	defaultTargetThroughputInGbps = "10"
	defaultTransferManagerThreads = "10"
	defaultUploadStorageClass     = StorageClassStandard
)

// AwsClientScope declares how the S3 client is tuned.
// Declaration order is the order used in generated documentation.
var AwsClientScope = MustConfigScope(ScopeAwsClient,
	ConfigOption{
		Key:  KeyAnonymous,
		Type: TypeBoolean,
		Description: "Allow the access of public S3 buckets without providing AWS credentials. " +
			"Any service that does not accept unsigned requests will return a service access error.",
	},
	ConfigOption{
		Key:  KeyS3Acl,
		Type: TypeString,
		Description: "Specify predefined bucket permissions, also known as *canned ACL*. " +
			"Can be one of `Private`, `PublicRead`, `PublicReadWrite`, `AuthenticatedRead`, " +
			"`LogDeliveryWrite`, `BucketOwnerRead`, `BucketOwnerFullControl`, or `AwsExecRead`.\n\n" +
			"[Read more](https://docs.aws.amazon.com/AmazonS3/latest/userguide/acl-overview.html#canned-acl)",
		Values: []string{
			ACLPrivate, ACLPublicRead, ACLPublicReadWrite, ACLAuthenticatedRead,
			ACLLogDeliveryWrite, ACLBucketOwnerRead, ACLBucketOwnerFullControl, ACLAwsExecRead,
		},
	},
	ConfigOption{
		Key:  KeyConnectionTimeout,
		Type: TypeInteger,
		Description: "The amount of time to wait (in milliseconds) when initially establishing " +
			"a connection before timing out.",
	},
	ConfigOption{
		Key:  KeyEndpoint,
		Type: TypeString,
		Description: "The AWS S3 API entry point e.g. `https://s3-us-west-1.amazonaws.com`. " +
			"The endpoint must include the protocol prefix e.g. `https://`.",
	},
	ConfigOption{
		Key:         KeyMaxConcurrency,
		Type:        TypeInteger,
		Description: "The maximum number of concurrency in S3 async clients.",
	},
	ConfigOption{
		Key:         KeyMaxConnections,
		Type:        TypeInteger,
		Description: "The maximum number of allowed open HTTP connections.",
	},
	ConfigOption{
		Key:         KeyMaxErrorRetry,
		Type:        TypeInteger,
		Description: "The maximum number of retry attempts for failed retryable requests.",
	},
	ConfigOption{
		Key:         KeyMaxNativeMemory,
		Type:        TypeMemorySize,
		Description: "The maximum native memory used by the S3 asynchronous client for S3 transfers.",
	},
	ConfigOption{
		Key:         KeyMinimumPartSize,
		Type:        TypeMemorySize,
		Default:     defaultMinimumPartSize,
		Description: "The minimum size of a single part in a multipart upload (default: `8 MB`).",
	},
	ConfigOption{
		Key:  KeyMultipartThreshold,
		Type: TypeMemorySize,
		Description: "The S3 Async client threshold to create multipart S3 transfers. " +
			"Default is the same as `minimumPartSize`.",
	},
	ConfigOption{
		Key:         KeyProxyHost,
		Type:        TypeString,
		Description: "The proxy host to connect through.",
	},
	ConfigOption{
		Key:         KeyProxyPort,
		Type:        TypeInteger,
		Description: "The port on the proxy host to connect through.",
	},
	ConfigOption{
		Key:         KeyProxyScheme,
		Type:        TypeString,
		Description: "The protocol scheme to use when connecting through a proxy (http/https).",
		Values:      []string{ProxySchemeHTTP, ProxySchemeHTTPS},
	},
	ConfigOption{
		Key:         KeyProxyUsername,
		Type:        TypeString,
		Description: "The user name to use when connecting through a proxy.",
	},
	ConfigOption{
		Key:         KeyProxyPassword,
		Type:        TypeString,
		Description: "The password to use when connecting through a proxy.",
		Secret:      true,
	},
	ConfigOption{
		Key:         KeyRequesterPays,
		Type:        TypeBoolean,
		Description: "Enable the requester pays feature for S3 buckets.",
	},
	ConfigOption{
		Key:  KeyS3PathStyleAccess,
		Type: TypeBoolean,
		Description: "Enable the use of path-based access model that is used to specify " +
			"the address of an object in S3-compatible storage systems.",
	},
	ConfigOption{
		Key:  KeySocketTimeout,
		Type: TypeInteger,
		Description: "The amount of time to wait (in milliseconds) for data to be transferred over " +
			"an established, open connection before the connection is timed out.",
	},
	ConfigOption{
		Key:  KeyStorageEncryption,
		Type: TypeString,
		Description: "The S3 server side encryption to be used when saving objects on S3, " +
			"either `AES256` or `aws:kms` values are allowed.",
		Values: []string{EncryptionAES256, EncryptionAwsKms},
	},
	ConfigOption{
		Key:         KeyStorageKmsKeyID,
		Type:        TypeString,
		Description: "The AWS KMS key Id to be used to encrypt files stored in the target S3 bucket.",
	},
	ConfigOption{
		Key:     KeyTargetThroughputInGbps,
		Type:    TypeDecimal,
		Default: defaultTargetThroughputInGbps,
		Description: "The S3 Async client target network throughput in Gbps. This value is used to " +
			"automatically set `maxConcurrency` and `maxNativeMemory` (default: `10`).",
	},
	ConfigOption{
		Key:         KeyTransferManagerThreads,
		Type:        TypeInteger,
		Default:     defaultTransferManagerThreads,
		Description: "The number of threads used by the S3 transfer manager (default: `10`).",
	},
	ConfigOption{
		Key:     KeyUploadStorageClass,
		Type:    TypeString,
		Default: defaultUploadStorageClass,
		Description: "The S3 storage class applied to stored objects, one of " +
			"\\[`STANDARD`, `STANDARD_IA`, `ONEZONE_IA`, `INTELLIGENT_TIERING`\\] (default: `STANDARD`).",
		Values: []string{
			StorageClassStandard, StorageClassStandardIA, StorageClassOnezoneIA, StorageClassIntelligentTiering,
		},
	},
)

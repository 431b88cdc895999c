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
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/aerospike/s3config-go/units"
)

const (
	// S3 rejects multipart parts smaller than 5 MB, except for the last one.
	minPartSize = 5 * units.MegaByte
	// Ten connections are opened for each 4 Gbps of target throughput.
	throughputPerConnectionGroup = 4.0
	connectionsPerGroup          = 10
	// Memory budget for transfers when maxNativeMemory is not set.
	defaultNativeMemory     = 2 * units.GigaByte
	defaultHighNativeMemory = 4 * units.GigaByte
	highThroughputGbps      = 25.0
)

// AwsClientConfig holds the values of the "aws.client" scope.
// Nil fields are unset: the Effective getters resolve documented defaults,
// everything else is left to the SDK.
type AwsClientConfig struct {
	Anonymous              *bool
	S3Acl                  *string
	ConnectionTimeout      *int
	Endpoint               *string
	MaxConcurrency         *int
	MaxConnections         *int
	MaxErrorRetry          *int
	MaxNativeMemory        *units.MemoryUnit
	MinimumPartSize        *units.MemoryUnit
	MultipartThreshold     *units.MemoryUnit
	ProxyHost              *string
	ProxyPort              *int
	ProxyScheme            *string
	ProxyUsername          *string
	ProxyPassword          *string
	RequesterPays          *bool
	S3PathStyleAccess      *bool
	SocketTimeout          *int
	StorageEncryption      *string
	StorageKmsKeyID        *string
	TargetThroughputInGbps *float64
	TransferManagerThreads *int
	UploadStorageClass     *string
}

// awsClientSetters assigns parsed values to fields, one entry per option of AwsClientScope.
// A setter reports false when the value does not have the Go type of the option.
var awsClientSetters = map[string]func(c *AwsClientConfig, v any) bool{
	KeyAnonymous:              field(func(c *AwsClientConfig) **bool { return &c.Anonymous }),
	KeyS3Acl:                  field(func(c *AwsClientConfig) **string { return &c.S3Acl }),
	KeyConnectionTimeout:      field(func(c *AwsClientConfig) **int { return &c.ConnectionTimeout }),
	KeyEndpoint:               field(func(c *AwsClientConfig) **string { return &c.Endpoint }),
	KeyMaxConcurrency:         field(func(c *AwsClientConfig) **int { return &c.MaxConcurrency }),
	KeyMaxConnections:         field(func(c *AwsClientConfig) **int { return &c.MaxConnections }),
	KeyMaxErrorRetry:          field(func(c *AwsClientConfig) **int { return &c.MaxErrorRetry }),
	KeyMaxNativeMemory:        field(func(c *AwsClientConfig) **units.MemoryUnit { return &c.MaxNativeMemory }),
	KeyMinimumPartSize:        field(func(c *AwsClientConfig) **units.MemoryUnit { return &c.MinimumPartSize }),
	KeyMultipartThreshold:     field(func(c *AwsClientConfig) **units.MemoryUnit { return &c.MultipartThreshold }),
	KeyProxyHost:              field(func(c *AwsClientConfig) **string { return &c.ProxyHost }),
	KeyProxyPort:              field(func(c *AwsClientConfig) **int { return &c.ProxyPort }),
	KeyProxyScheme:            field(func(c *AwsClientConfig) **string { return &c.ProxyScheme }),
	KeyProxyUsername:          field(func(c *AwsClientConfig) **string { return &c.ProxyUsername }),
	KeyProxyPassword:          field(func(c *AwsClientConfig) **string { return &c.ProxyPassword }),
	KeyRequesterPays:          field(func(c *AwsClientConfig) **bool { return &c.RequesterPays }),
	KeyS3PathStyleAccess:      field(func(c *AwsClientConfig) **bool { return &c.S3PathStyleAccess }),
	KeySocketTimeout:          field(func(c *AwsClientConfig) **int { return &c.SocketTimeout }),
	KeyStorageEncryption:      field(func(c *AwsClientConfig) **string { return &c.StorageEncryption }),
	KeyStorageKmsKeyID:        field(func(c *AwsClientConfig) **string { return &c.StorageKmsKeyID }),
	KeyTargetThroughputInGbps: field(func(c *AwsClientConfig) **float64 { return &c.TargetThroughputInGbps }),
	KeyTransferManagerThreads: field(func(c *AwsClientConfig) **int { return &c.TransferManagerThreads }),
	KeyUploadStorageClass:     field(func(c *AwsClientConfig) **string { return &c.UploadStorageClass }),
}

// field returns a setter storing a value of type T in the field selected by ref.
func field[C, T any](ref func(c *C) **T) func(c *C, v any) bool {
	return func(c *C, v any) bool {
		t, ok := v.(T)
		if ok {
			*ref(c) = &t
		}

		return ok
	}
}

func ptr[T any](v T) *T {
	return &v
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}

	return *p
}

// Validate checks the combination of values.
//
//nolint:gocyclo // It is a long validation function.
func (c *AwsClientConfig) Validate() error {
	if c == nil {
		return nil
	}

	var errs []error

	nonNegative := map[string]*int{
		KeyConnectionTimeout:      c.ConnectionTimeout,
		KeyMaxConcurrency:         c.MaxConcurrency,
		KeyMaxConnections:         c.MaxConnections,
		KeyMaxErrorRetry:          c.MaxErrorRetry,
		KeySocketTimeout:          c.SocketTimeout,
		KeyTransferManagerThreads: c.TransferManagerThreads,
	}

	// Map iteration order is random, keep error order stable.
	for _, key := range AwsClientScope.Keys() {
		if v, ok := nonNegative[key]; ok && v != nil && *v < 0 {
			errs = append(errs, fmt.Errorf("%s must be non-negative", key))
		}
	}

	if c.TransferManagerThreads != nil && *c.TransferManagerThreads == 0 {
		errs = append(errs, fmt.Errorf("%s must be positive", KeyTransferManagerThreads))
	}

	if c.Endpoint != nil && !strings.HasPrefix(*c.Endpoint, "http://") &&
		!strings.HasPrefix(*c.Endpoint, "https://") {
		errs = append(errs, fmt.Errorf("%s must include the protocol prefix, e.g. https://", KeyEndpoint))
	}

	if c.ProxyPort != nil && (*c.ProxyPort < 1 || *c.ProxyPort > math.MaxUint16) {
		errs = append(errs, fmt.Errorf("%s must be between 1 and %d", KeyProxyPort, math.MaxUint16))
	}

	if c.ProxyHost == nil && (c.ProxyPort != nil || c.ProxyUsername != nil || c.ProxyPassword != nil) {
		errs = append(errs, fmt.Errorf("proxy settings require %s", KeyProxyHost))
	}

	if c.ProxyPassword != nil && c.ProxyUsername == nil {
		errs = append(errs, fmt.Errorf("%s requires %s", KeyProxyPassword, KeyProxyUsername))
	}

	if c.MinimumPartSize != nil && *c.MinimumPartSize < minPartSize {
		errs = append(errs, fmt.Errorf("%s can't be less than %s", KeyMinimumPartSize, minPartSize))
	}

	if c.TargetThroughputInGbps != nil && *c.TargetThroughputInGbps <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive", KeyTargetThroughputInGbps))
	}

	if c.StorageKmsKeyID != nil && deref(c.StorageEncryption) == EncryptionAES256 {
		errs = append(errs, fmt.Errorf("%s can't be used with %s %s",
			KeyStorageKmsKeyID, KeyStorageEncryption, EncryptionAES256))
	}

	return errors.Join(errs...)
}

// EffectiveMinimumPartSize returns the part size of multipart uploads.
func (c *AwsClientConfig) EffectiveMinimumPartSize() units.MemoryUnit {
	if c != nil && c.MinimumPartSize != nil {
		return *c.MinimumPartSize
	}

	return units.MustParseMemoryUnit(defaultMinimumPartSize)
}

// EffectiveMultipartThreshold returns the size from which uploads are split into parts.
// It defaults to the minimum part size.
func (c *AwsClientConfig) EffectiveMultipartThreshold() units.MemoryUnit {
	if c != nil && c.MultipartThreshold != nil {
		return *c.MultipartThreshold
	}

	return c.EffectiveMinimumPartSize()
}

// EffectiveTargetThroughput returns the target throughput in Gbps.
func (c *AwsClientConfig) EffectiveTargetThroughput() float64 {
	if c != nil && c.TargetThroughputInGbps != nil {
		return *c.TargetThroughputInGbps
	}

	return 10
}

// EffectiveTransferManagerThreads returns the number of concurrent part uploads.
func (c *AwsClientConfig) EffectiveTransferManagerThreads() int {
	if c != nil && c.TransferManagerThreads != nil {
		return *c.TransferManagerThreads
	}

	return 10
}

// EffectiveUploadStorageClass returns the storage class of uploaded objects.
func (c *AwsClientConfig) EffectiveUploadStorageClass() string {
	if c != nil && c.UploadStorageClass != nil {
		return *c.UploadStorageClass
	}

	return defaultUploadStorageClass
}

// EffectiveStorageEncryption returns the server side encryption mode, empty when none.
// A KMS key id alone implies aws:kms.
func (c *AwsClientConfig) EffectiveStorageEncryption() string {
	if c == nil {
		return ""
	}

	if c.StorageEncryption != nil {
		return *c.StorageEncryption
	}

	if c.StorageKmsKeyID != nil {
		return EncryptionAwsKms
	}

	return ""
}

// EffectiveMaxConcurrency returns maxConcurrency, or derives it from the target throughput.
func (c *AwsClientConfig) EffectiveMaxConcurrency() int {
	if c != nil && c.MaxConcurrency != nil && *c.MaxConcurrency > 0 {
		return *c.MaxConcurrency
	}

	groups := math.Ceil(c.EffectiveTargetThroughput() / throughputPerConnectionGroup)
	// Saturates instead of wrapping for huge throughput values.
	if !(groups < float64(math.MaxInt/connectionsPerGroup)) {
		return math.MaxInt
	}

	return max(1, int(groups)*connectionsPerGroup)
}

// EffectiveMaxNativeMemory returns maxNativeMemory, or derives it from the target
// throughput. The result always fits one part per concurrent request.
func (c *AwsClientConfig) EffectiveMaxNativeMemory() units.MemoryUnit {
	if c != nil && c.MaxNativeMemory != nil && *c.MaxNativeMemory > 0 {
		return *c.MaxNativeMemory
	}

	memory := defaultNativeMemory
	if c.EffectiveTargetThroughput() > highThroughputGbps {
		memory = defaultHighNativeMemory
	}

	concurrency := units.MemoryUnit(c.EffectiveMaxConcurrency())
	partSize := c.EffectiveMinimumPartSize()

	if partSize > 0 && concurrency > math.MaxInt64/partSize {
		return math.MaxInt64
	}

	return max(memory, concurrency*partSize)
}

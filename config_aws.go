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
	"sort"
)

// AwsConfig holds the values of the "aws" scope and its "aws.client" sub-scope.
type AwsConfig struct {
	AccessKey *string
	SecretKey *string
	Profile   *string
	Region    *string

	Client AwsClientConfig
}

var awsSetters = map[string]func(c *AwsConfig, v any) bool{
	KeyAccessKey: field(func(c *AwsConfig) **string { return &c.AccessKey }),
	KeySecretKey: field(func(c *AwsConfig) **string { return &c.SecretKey }),
	KeyProfile:   field(func(c *AwsConfig) **string { return &c.Profile }),
	KeyRegion:    field(func(c *AwsConfig) **string { return &c.Region }),
}

// DecodeAwsConfig builds an AwsConfig from parsed values.
// Values must already have the Go type of their option, as returned by ParseValue.
func DecodeAwsConfig(values Values) (*AwsConfig, error) {
	cfg := &AwsConfig{}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	var errs []error

	for _, fullKey := range keys {
		if err := cfg.set(fullKey, values[fullKey]); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return cfg, nil
}

func (c *AwsConfig) set(fullKey string, v any) error {
	scope, opt, err := defaultRegistry.Resolve(fullKey)
	if err != nil {
		return err
	}

	var ok bool

	switch scope.Name() {
	case ScopeAws:
		ok = awsSetters[opt.Key](c, v)
	case ScopeAwsClient:
		ok = awsClientSetters[opt.Key](&c.Client, v)
	}

	if !ok {
		return &TypeMismatchError{Key: fullKey, Type: opt.Type, Value: v, Err: fmt.Errorf("unexpected %T", v)}
	}

	return nil
}

// Validate checks the combination of values of both scopes.
func (c *AwsConfig) Validate() error {
	if c == nil {
		return nil
	}

	var errs []error

	if (c.AccessKey == nil) != (c.SecretKey == nil) {
		errs = append(errs, fmt.Errorf("%s and %s must be set together", KeyAccessKey, KeySecretKey))
	}

	if deref(c.Client.Anonymous) && (c.AccessKey != nil || c.SecretKey != nil) {
		errs = append(errs, fmt.Errorf("%s access can't be combined with access keys", KeyAnonymous))
	}

	if err := c.Client.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("invalid %s: %w", ScopeAwsClient, err))
	}

	return errors.Join(errs...)
}

// Values returns the set fields as dotted keys. Secret values are included as is.
func (c *AwsConfig) Values() Values {
	values := make(Values)

	put := func(scope *ConfigScope, key string, set bool, v any) {
		if set {
			values[scope.FullKey(key)] = v
		}
	}

	put(AwsScope, KeyAccessKey, c.AccessKey != nil, deref(c.AccessKey))
	put(AwsScope, KeySecretKey, c.SecretKey != nil, deref(c.SecretKey))
	put(AwsScope, KeyProfile, c.Profile != nil, deref(c.Profile))
	put(AwsScope, KeyRegion, c.Region != nil, deref(c.Region))

	cl := &c.Client
	put(AwsClientScope, KeyAnonymous, cl.Anonymous != nil, deref(cl.Anonymous))
	put(AwsClientScope, KeyS3Acl, cl.S3Acl != nil, deref(cl.S3Acl))
	put(AwsClientScope, KeyConnectionTimeout, cl.ConnectionTimeout != nil, deref(cl.ConnectionTimeout))
	put(AwsClientScope, KeyEndpoint, cl.Endpoint != nil, deref(cl.Endpoint))
	put(AwsClientScope, KeyMaxConcurrency, cl.MaxConcurrency != nil, deref(cl.MaxConcurrency))
	put(AwsClientScope, KeyMaxConnections, cl.MaxConnections != nil, deref(cl.MaxConnections))
	put(AwsClientScope, KeyMaxErrorRetry, cl.MaxErrorRetry != nil, deref(cl.MaxErrorRetry))
	put(AwsClientScope, KeyMaxNativeMemory, cl.MaxNativeMemory != nil, deref(cl.MaxNativeMemory))
	put(AwsClientScope, KeyMinimumPartSize, cl.MinimumPartSize != nil, deref(cl.MinimumPartSize))
	put(AwsClientScope, KeyMultipartThreshold, cl.MultipartThreshold != nil, deref(cl.MultipartThreshold))
	put(AwsClientScope, KeyProxyHost, cl.ProxyHost != nil, deref(cl.ProxyHost))
	put(AwsClientScope, KeyProxyPort, cl.ProxyPort != nil, deref(cl.ProxyPort))
	put(AwsClientScope, KeyProxyScheme, cl.ProxyScheme != nil, deref(cl.ProxyScheme))
	put(AwsClientScope, KeyProxyUsername, cl.ProxyUsername != nil, deref(cl.ProxyUsername))
	put(AwsClientScope, KeyProxyPassword, cl.ProxyPassword != nil, deref(cl.ProxyPassword))
	put(AwsClientScope, KeyRequesterPays, cl.RequesterPays != nil, deref(cl.RequesterPays))
	put(AwsClientScope, KeyS3PathStyleAccess, cl.S3PathStyleAccess != nil, deref(cl.S3PathStyleAccess))
	put(AwsClientScope, KeySocketTimeout, cl.SocketTimeout != nil, deref(cl.SocketTimeout))
	put(AwsClientScope, KeyStorageEncryption, cl.StorageEncryption != nil, deref(cl.StorageEncryption))
	put(AwsClientScope, KeyStorageKmsKeyID, cl.StorageKmsKeyID != nil, deref(cl.StorageKmsKeyID))
	put(AwsClientScope, KeyTargetThroughputInGbps, cl.TargetThroughputInGbps != nil, deref(cl.TargetThroughputInGbps))
	put(AwsClientScope, KeyTransferManagerThreads, cl.TransferManagerThreads != nil, deref(cl.TransferManagerThreads))
	put(AwsClientScope, KeyUploadStorageClass, cl.UploadStorageClass != nil, deref(cl.UploadStorageClass))

	return values
}

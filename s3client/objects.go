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
	"fmt"
	"strings"

	"github.com/aerospike/s3config-go"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// cannedACLs maps ACL names to the S3 canned ACL headers.
var cannedACLs = map[string]types.ObjectCannedACL{
	s3config.ACLPrivate:                types.ObjectCannedACLPrivate,
	s3config.ACLPublicRead:             types.ObjectCannedACLPublicRead,
	s3config.ACLPublicReadWrite:        types.ObjectCannedACLPublicReadWrite,
	s3config.ACLAuthenticatedRead:      types.ObjectCannedACLAuthenticatedRead,
	s3config.ACLBucketOwnerRead:        types.ObjectCannedACLBucketOwnerRead,
	s3config.ACLBucketOwnerFullControl: types.ObjectCannedACLBucketOwnerFullControl,
	s3config.ACLAwsExecRead:            types.ObjectCannedACLAwsExecRead,
}

// ObjectOptions are the per object settings applied to uploads.
type ObjectOptions struct {
	ACL                  types.ObjectCannedACL
	ServerSideEncryption types.ServerSideEncryption
	SSEKMSKeyID          *string
	StorageClass         types.StorageClass
	RequestPayer         types.RequestPayer
}

// NewObjectOptions resolves the object settings of cfg, defaults included.
func NewObjectOptions(cfg *s3config.AwsClientConfig) (*ObjectOptions, error) {
	opts := &ObjectOptions{}

	if cfg.S3Acl != nil {
		acl, err := parseObjectACL(*cfg.S3Acl)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", s3config.KeyS3Acl, err)
		}

		opts.ACL = acl
	}

	if enc := cfg.EffectiveStorageEncryption(); enc != "" {
		sse, err := parseServerSideEncryption(enc)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", s3config.KeyStorageEncryption, err)
		}

		opts.ServerSideEncryption = sse
	}

	if cfg.StorageKmsKeyID != nil && *cfg.StorageKmsKeyID != "" {
		opts.SSEKMSKeyID = aws.String(*cfg.StorageKmsKeyID)
	}

	class, err := parseStorageClass(cfg.EffectiveUploadStorageClass())
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", s3config.KeyUploadStorageClass, err)
	}

	opts.StorageClass = class

	if cfg.RequesterPays != nil && *cfg.RequesterPays {
		opts.RequestPayer = types.RequestPayerRequester
	}

	return opts, nil
}

// ApplyPutObject sets the options on a PutObject request.
func (o *ObjectOptions) ApplyPutObject(in *s3.PutObjectInput) {
	in.ACL = o.ACL
	in.ServerSideEncryption = o.ServerSideEncryption
	in.SSEKMSKeyId = o.SSEKMSKeyID
	in.StorageClass = o.StorageClass
	in.RequestPayer = o.RequestPayer
}

// ApplyCreateMultipartUpload sets the options on a CreateMultipartUpload request.
func (o *ObjectOptions) ApplyCreateMultipartUpload(in *s3.CreateMultipartUploadInput) {
	in.ACL = o.ACL
	in.ServerSideEncryption = o.ServerSideEncryption
	in.SSEKMSKeyId = o.SSEKMSKeyID
	in.StorageClass = o.StorageClass
	in.RequestPayer = o.RequestPayer
}

// ApplyGetObject sets the options that also apply to reads.
func (o *ObjectOptions) ApplyGetObject(in *s3.GetObjectInput) {
	in.RequestPayer = o.RequestPayer
}

func parseStorageClass(class string) (types.StorageClass, error) {
	// To correct case: CLASS
	class = strings.ToUpper(class)

	var result types.StorageClass
	possible := result.Values()

	for _, possibleClass := range possible {
		if class == string(possibleClass) {
			return possibleClass, nil
		}
	}

	return "", fmt.Errorf("invalid storage class %s", class)
}

func parseObjectACL(name string) (types.ObjectCannedACL, error) {
	for k, v := range cannedACLs {
		if strings.EqualFold(k, name) || strings.EqualFold(string(v), name) {
			return v, nil
		}
	}

	return "", fmt.Errorf("invalid object acl %s", name)
}

func parseServerSideEncryption(name string) (types.ServerSideEncryption, error) {
	var result types.ServerSideEncryption
	possible := result.Values()

	for _, sse := range possible {
		if strings.EqualFold(name, string(sse)) {
			return sse, nil
		}
	}

	return "", fmt.Errorf("invalid server side encryption %s", name)
}

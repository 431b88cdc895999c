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

// Package s3client maps an s3config.AwsConfig onto aws-sdk-go-v2 options.
// It builds clients and request inputs but never sends requests itself.
package s3client

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aerospike/s3config-go"
	"github.com/aerospike/s3config-go/internal/logging"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// LoadOptions returns the options for config.LoadDefaultConfig that reflect cfg.
// Unset values are left to the SDK defaults.
func LoadOptions(cfg *s3config.AwsConfig, logger *slog.Logger) ([]func(*config.LoadOptions) error, error) {
	if cfg == nil {
		return nil, fmt.Errorf("aws config is nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	cfgOpts := make([]func(*config.LoadOptions) error, 0)

	if cfg.Client.MaxErrorRetry != nil {
		// MaxAttempts counts the first try.
		attempts := *cfg.Client.MaxErrorRetry + 1

		cfgOpts = append(cfgOpts,
			config.WithRetryer(func() aws.Retryer {
				return retry.NewAdaptiveMode(func(o *retry.AdaptiveModeOptions) {
					o.StandardOptions = append(o.StandardOptions,
						func(so *retry.StandardOptions) {
							so.MaxAttempts = attempts
						})
				})
			}),
		)
	}

	if cfg.Profile != nil && *cfg.Profile != "" {
		cfgOpts = append(cfgOpts, config.WithSharedConfigProfile(*cfg.Profile))
	}

	if cfg.Region != nil && *cfg.Region != "" {
		cfgOpts = append(cfgOpts, config.WithRegion(*cfg.Region))
	}

	switch {
	case cfg.Client.Anonymous != nil && *cfg.Client.Anonymous:
		cfgOpts = append(cfgOpts, config.WithCredentialsProvider(aws.AnonymousCredentials{}))
	case cfg.AccessKey != nil && cfg.SecretKey != nil:
		cfgOpts = append(cfgOpts, config.WithCredentialsProvider(credentials.StaticCredentialsProvider{
			Value: aws.Credentials{
				AccessKeyID: *cfg.AccessKey, SecretAccessKey: *cfg.SecretKey,
			},
		}))
	}

	httpClient, err := newHTTPClient(&cfg.Client)
	if err != nil {
		return nil, err
	}

	if httpClient != nil {
		cfgOpts = append(cfgOpts, config.WithHTTPClient(httpClient))
	}

	cfgOpts = append(cfgOpts, config.WithLogger(NewLogger(logger)))

	if logger.Enabled(context.Background(), slog.LevelDebug) {
		cfgOpts = append(cfgOpts, config.WithClientLogMode(aws.LogRetries))
	}

	return cfgOpts, nil
}

// NewClient returns an S3 client configured from cfg. Creating the client does
// not contact AWS, although loading the default config reads the shared config
// files and the environment.
func NewClient(ctx context.Context, cfg *s3config.AwsConfig, logger *slog.Logger) (*s3.Client, error) {
	if logger == nil {
		logger = slog.Default()
	}

	logger = logging.WithClient(logger, uuid.NewString())

	cfgOpts, err := LoadOptions(cfg, logger)
	if err != nil {
		return nil, err
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, cfgOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return s3.NewFromConfig(awsCfg, ClientOptions(&cfg.Client)), nil
}

// ClientOptions returns the S3 specific options of cfg.
func ClientOptions(cfg *s3config.AwsClientConfig) func(*s3.Options) {
	return func(o *s3.Options) {
		if cfg.Endpoint != nil && *cfg.Endpoint != "" {
			endpoint := *cfg.Endpoint
			o.BaseEndpoint = &endpoint
		}

		if cfg.S3PathStyleAccess != nil {
			o.UsePathStyle = *cfg.S3PathStyleAccess
		}
	}
}

func millis(v *int) time.Duration {
	if v == nil {
		return 0
	}

	return time.Duration(*v) * time.Millisecond
}

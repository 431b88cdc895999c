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
	"net"
	"net/http"
	"net/url"
	"strconv"

	"github.com/aerospike/s3config-go"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
)

// newHTTPClient returns nil when cfg has no transport settings, so the SDK
// keeps its own client.
func newHTTPClient(cfg *s3config.AwsClientConfig) (*awshttp.BuildableClient, error) {
	if cfg.ConnectionTimeout == nil && cfg.SocketTimeout == nil &&
		cfg.MaxConnections == nil && cfg.MaxConcurrency == nil && cfg.ProxyHost == nil {
		return nil, nil
	}

	proxy, err := proxyURL(cfg)
	if err != nil {
		return nil, err
	}

	maxConns := 0

	switch {
	case cfg.MaxConnections != nil:
		maxConns = *cfg.MaxConnections
	case cfg.MaxConcurrency != nil:
		maxConns = *cfg.MaxConcurrency
	}

	client := awshttp.NewBuildableClient().
		WithDialerOptions(func(d *net.Dialer) {
			if cfg.ConnectionTimeout != nil {
				d.Timeout = millis(cfg.ConnectionTimeout)
			}
		}).
		WithTransportOptions(func(tr *http.Transport) {
			if cfg.SocketTimeout != nil {
				tr.ResponseHeaderTimeout = millis(cfg.SocketTimeout)
			}

			if maxConns > 0 {
				tr.MaxConnsPerHost = maxConns
				tr.MaxIdleConnsPerHost = maxConns
			}

			if proxy != nil {
				tr.Proxy = http.ProxyURL(proxy)
			}
		})

	return client, nil
}

// proxyURL returns nil when no proxy host is set.
func proxyURL(cfg *s3config.AwsClientConfig) (*url.URL, error) {
	if cfg.ProxyHost == nil || *cfg.ProxyHost == "" {
		return nil, nil
	}

	scheme := s3config.ProxySchemeHTTP
	if cfg.ProxyScheme != nil && *cfg.ProxyScheme != "" {
		scheme = *cfg.ProxyScheme
	}

	host := *cfg.ProxyHost
	if cfg.ProxyPort != nil {
		host = net.JoinHostPort(host, strconv.Itoa(*cfg.ProxyPort))
	}

	u := &url.URL{Scheme: scheme, Host: host}

	if cfg.ProxyUsername != nil {
		if cfg.ProxyPassword != nil {
			u.User = url.UserPassword(*cfg.ProxyUsername, *cfg.ProxyPassword)
		} else {
			u.User = url.User(*cfg.ProxyUsername)
		}
	}

	// Round trip to reject hosts that don't form a valid URL.
	parsed, err := url.Parse(u.String())
	if err != nil {
		return nil, fmt.Errorf("failed to parse proxy url: %w", err)
	}

	return parsed, nil
}

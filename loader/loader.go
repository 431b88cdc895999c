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

package loader

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"dario.cat/mergo"
	"github.com/aerospike/s3config-go"
	"github.com/aerospike/s3config-go/internal/logging"
	"github.com/google/uuid"
)

// Loader reads configuration sources, layers them and checks every value against
// the options declared in a registry.
type Loader struct {
	registry *s3config.Registry
	sources  []Source
	strict   bool
	logger   *slog.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithSources appends sources. Sources are applied in order, later ones win.
func WithSources(sources ...Source) Option {
	return func(l *Loader) {
		l.sources = append(l.sources, sources...)
	}
}

// WithStrict makes unknown keys errors instead of warnings.
func WithStrict(strict bool) Option {
	return func(l *Loader) {
		l.strict = strict
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		l.logger = logger
	}
}

// New returns a loader for registry. A nil registry means s3config.DefaultRegistry.
func New(registry *s3config.Registry, opts ...Option) *Loader {
	if registry == nil {
		registry = s3config.DefaultRegistry()
	}

	l := &Loader{
		registry: registry,
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Result is the outcome of a successful Load.
type Result struct {
	// Values holds the parsed value of every configured key.
	Values s3config.Values
	// Origins maps every key of Values to the name of the source that set it.
	Origins map[string]string
	// Warnings lists the unknown keys that were skipped in non-strict mode.
	Warnings []error
}

// Load reads all sources, merges them and parses every value.
// All problems are reported together; each error names the offending key.
func (l *Loader) Load(ctx context.Context) (*Result, error) {
	logger := logging.WithLoader(l.logger, uuid.NewString())

	merged := make(map[string]any)
	origins := make(map[string]string)

	for _, src := range l.sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		layer, err := src.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load source %s: %w", src.Name(), err)
		}

		if err = mergo.Merge(&merged, layer, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge source %s: %w", src.Name(), err)
		}

		for key := range layer {
			origins[key] = src.Name()
		}

		logging.WithSource(logger, src.Name()).Debug("source loaded",
			slog.Int("keys", len(layer)),
		)
	}

	keys := make([]string, 0, len(merged))
	for key := range merged {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	result := &Result{
		Values:  make(s3config.Values, len(keys)),
		Origins: make(map[string]string, len(keys)),
	}

	var errs []error

	for _, key := range keys {
		_, opt, err := l.registry.Resolve(key)
		if err != nil {
			err = fmt.Errorf("%s: %w", origins[key], err)
			if l.strict {
				errs = append(errs, err)
				continue
			}

			logger.Warn("skipping unknown option",
				slog.String("key", key),
				slog.String("source", origins[key]),
			)

			result.Warnings = append(result.Warnings, err)

			continue
		}

		v, err := s3config.ParseValue(opt, merged[key])
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %s: %w", origins[key], key, err))
			continue
		}

		result.Values[key] = v
		result.Origins[key] = origins[key]
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	logger.Debug("configuration loaded",
		slog.Int("values", len(result.Values)),
		slog.Int("warnings", len(result.Warnings)),
	)

	return result, nil
}

// LoadAwsConfig loads the sources and builds a validated AwsConfig.
func (l *Loader) LoadAwsConfig(ctx context.Context) (*s3config.AwsConfig, *Result, error) {
	result, err := l.Load(ctx)
	if err != nil {
		return nil, nil, err
	}

	cfg, err := s3config.DecodeAwsConfig(result.Values)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	if err = cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, result, nil
}

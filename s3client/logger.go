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
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/smithy-go/logging"
)

// Logger writes SDK log messages to slog.
type Logger struct {
	logger *slog.Logger
	ctx    context.Context
}

var (
	_ logging.Logger        = (*Logger)(nil)
	_ logging.ContextLogger = (*Logger)(nil)
)

// NewLogger returns an SDK logger writing to logger.
func NewLogger(logger *slog.Logger) *Logger {
	return &Logger{
		logger: logger.With(slog.String("component", "aws-sdk")),
		ctx:    context.Background(),
	}
}

// Logf implements logging.Logger.
func (l *Logger) Logf(classification logging.Classification, format string, v ...any) {
	level := slog.LevelInfo

	switch classification {
	case logging.Warn:
		level = slog.LevelWarn
	case logging.Debug:
		level = slog.LevelDebug
	}

	l.logger.Log(l.ctx, level, fmt.Sprintf(format, v...))
}

// WithContext implements logging.ContextLogger.
func (l *Logger) WithContext(ctx context.Context) logging.Logger {
	return &Logger{logger: l.logger, ctx: ctx}
}

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

package models

// App holds the application settings shared by all commands. Every setting can
// also be given through the environment, prefixed with S3CONFIG_.
type App struct {
	Version  bool
	Verbose  bool   `env:"VERBOSE"`
	LogLevel string `env:"LOG_LEVEL"`
	LogJSON  bool   `env:"LOG_JSON"`
	Config   string `env:"CONFIG"`
}

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

// Package docgen renders reference documentation for configuration scopes.
package docgen

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/aerospike/s3config-go"
)

const markdownTemplate = "{{ range $i, $scope := . }}{{ if $i }}\n{{ end }}" +
	"## {{ $scope.Name }}\n\n" +
	"| Key | Type | Default | Description |\n" +
	"|---|---|---|---|\n" +
	"{{ range $scope.ListOptions }}" +
	"| `{{ fullKey $scope . }}` | {{ .Type }} | {{ defaultCell . }} | {{ description . }} |\n" +
	"{{ end }}{{ end }}"

var markdown = template.Must(template.New("markdown").Funcs(template.FuncMap{
	"fullKey": func(scope *s3config.ConfigScope, opt s3config.ConfigOption) string {
		return scope.FullKey(opt.Key)
	},
	"defaultCell": func(opt s3config.ConfigOption) string {
		if !opt.HasDefault() {
			return ""
		}

		return "`" + cell(opt.Default) + "`"
	},
	"description": func(opt s3config.ConfigOption) string {
		text := opt.Description
		if opt.IsEnum() {
			text = fmt.Sprintf("%s\nAllowed values: %s.", text, strings.Join(opt.Values, ", "))
		}

		if opt.Secret {
			text += "\nThe value is redacted in output."
		}

		return cell(text)
	},
}).Parse(markdownTemplate))

// Markdown writes one section per scope with a table of its options.
func Markdown(w io.Writer, scopes ...*s3config.ConfigScope) error {
	if err := markdown.Execute(w, scopes); err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}

	return nil
}

// cell makes text safe for a single markdown table cell.
func cell(text string) string {
	text = strings.TrimSpace(text)
	text = strings.ReplaceAll(text, "|", `\|`)
	text = strings.ReplaceAll(text, "\r\n", "\n")

	return strings.ReplaceAll(text, "\n", "<br>")
}

// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package textgrid

import (
	"regexp"
	"strings"
)

// 📄 Extension is the file extension Praat uses for TextGrid files
const Extension = ".TextGrid"

// 🔍 fieldPattern matches a `text = "..."` field. A doubled quote is Praat's
// escape for a literal quote and stays inside the value.
var fieldPattern = regexp.MustCompile(`\btext\s*=\s*"((?:[^"]|"")*)"`)

// 🏷️ Field is a single text field found in a TextGrid buffer
type Field struct {
	Start int    // Byte offset of the first value byte
	End   int    // Byte offset one past the last value byte
	Value string // Raw value, escapes included
}

// 🔎 Fields returns every text field of content in order of appearance
func Fields(content string) []Field {
	matches := fieldPattern.FindAllStringSubmatchIndex(content, -1)
	fields := make([]Field, 0, len(matches))
	for _, m := range matches {
		fields = append(fields, Field{
			Start: m[2],
			End:   m[3],
			Value: content[m[2]:m[3]],
		})
	}
	return fields
}

// 📋 Values returns the raw value of every text field in content
func Values(content string) []string {
	fields := Fields(content)
	values := make([]string, len(fields))
	for i, f := range fields {
		values[i] = f.Value
	}
	return values
}

// ✏️ RewriteFunc maps a raw field value to its replacement
type RewriteFunc func(value string) string

// 🔄 RewriteFields applies fn to every text field value and returns the new
// content with the number of fields whose value actually changed.
// Bytes outside of field values are copied unchanged.
func RewriteFields(content string, fn RewriteFunc) (string, int) {
	fields := Fields(content)
	if len(fields) == 0 {
		return content, 0
	}

	var b strings.Builder
	b.Grow(len(content))

	changed := 0
	last := 0
	for _, f := range fields {
		next := fn(f.Value)
		if next == f.Value {
			continue
		}
		b.WriteString(content[last:f.Start])
		b.WriteString(next)
		last = f.End
		changed++
	}

	if changed == 0 {
		return content, 0
	}

	b.WriteString(content[last:])
	return b.String(), changed
}

// Unescape turns Praat's doubled quotes back into single quotes.
func Unescape(value string) string {
	return strings.ReplaceAll(value, `""`, `"`)
}

// Escape doubles every quote so value can be written inside a text field.
func Escape(value string) string {
	return strings.ReplaceAll(value, `"`, `""`)
}

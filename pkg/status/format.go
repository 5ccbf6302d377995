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

package status

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// 🎨 Display configuration
const (
	fileIndent  = 4  // spaces to indent file entries
	nameWidth   = 35 // Base width for filename
	statusWidth = 10 // Width for status text
)

// 🎯 FormatFileLine formats a per-file notice for display
func FormatFileLine(path string, st FileStatus, replacements int) string {
	// Determine prefix symbol
	var prefix string
	switch st {
	case StatusModified:
		prefix = color.GreenString("✓")
	case StatusRestored:
		prefix = color.BlueString("⟳")
	case StatusRemoved:
		prefix = color.YellowString("✗")
	case StatusFailed:
		prefix = color.RedString("✗")
	default:
		prefix = color.HiBlackString("-")
	}

	// Format parts with padding
	namePart := fmt.Sprintf("%-*s", nameWidth, path)
	statusPart := fmt.Sprintf("%-*s", statusWidth, st.String())

	line := fmt.Sprintf("%s%s %s %s",
		strings.Repeat(" ", fileIndent),
		prefix,
		namePart,
		statusPart,
	)

	if replacements > 0 {
		noun := "replacements"
		if replacements == 1 {
			noun = "replacement"
		}
		line += fmt.Sprintf(" %d %s", replacements, noun)
	}

	return strings.TrimRight(line, " ")
}

// 📝 FormatDetailLine formats one breakdown entry below a file line
func FormatDetailLine(key, replacement string, count int) string {
	label := key
	if replacement != "" {
		label = fmt.Sprintf("'%s' → '%s'", key, replacement)
	}
	return fmt.Sprintf("%s- %s: %d", strings.Repeat(" ", fileIndent+2), label, count)
}

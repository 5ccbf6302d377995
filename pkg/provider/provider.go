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

package provider

import (
	"context"
)

// 🔌 Provider is the interface for TextGrid file sources
type Provider interface {
	// 📂 ListFiles returns candidate file paths relative to Root
	ListFiles(ctx context.Context) ([]string, error)

	// 📁 Root returns the directory the paths are relative to
	Root() string
}

// 📦 Args describes which files a provider should return
type Args struct {
	Dir       string   // Directory to scan
	Pattern   string   // Glob for file names, e.g. *.TextGrid
	Recursive bool     // Descend into subdirectories
	Ignore    []string // Globs of relative paths to skip
}

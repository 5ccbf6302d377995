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

// Package local lists TextGrid files from a directory on disk.
package local

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/tgfix/pkg/provider"
	"github.com/walteh/tgfix/pkg/textgrid"
	"gitlab.com/tozd/go/errors"
)

// DefaultPattern matches TextGrid files by extension
const DefaultPattern = "*" + textgrid.Extension

// 📁 Provider lists files from a local directory
type Provider struct {
	args provider.Args
}

var _ provider.Provider = (*Provider)(nil)

// 🏭 New creates a local provider, validating the directory and globs
func New(args provider.Args) (*Provider, error) {
	info, err := os.Stat(args.Dir)
	if err != nil || !info.IsDir() {
		return nil, errors.Errorf("%s is not a valid directory", args.Dir)
	}

	if args.Pattern == "" {
		args.Pattern = DefaultPattern
	}
	if !doublestar.ValidatePattern(args.Pattern) {
		return nil, errors.Errorf("invalid file pattern %q", args.Pattern)
	}
	for _, pattern := range args.Ignore {
		if !doublestar.ValidatePattern(pattern) {
			return nil, errors.Errorf("invalid ignore pattern %q", pattern)
		}
	}

	args.Dir = filepath.Clean(args.Dir)
	return &Provider{args: args}, nil
}

// Root implements provider.Provider.Root
func (p *Provider) Root() string {
	return p.args.Dir
}

// 📂 ListFiles implements provider.Provider.ListFiles. Without Recursive only
// the top level of the directory is searched.
func (p *Provider) ListFiles(ctx context.Context) ([]string, error) {
	logger := zerolog.Ctx(ctx)

	pattern := p.args.Pattern
	if p.args.Recursive {
		pattern = path.Join("**", pattern)
	}

	matches, err := doublestar.Glob(os.DirFS(p.args.Dir), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, errors.Errorf("listing %s: %w", p.args.Dir, err)
	}

	files := make([]string, 0, len(matches))
	for _, match := range matches {
		if p.shouldIgnore(ctx, match) {
			continue
		}
		files = append(files, filepath.FromSlash(match))
	}
	sort.Strings(files)

	logger.Debug().
		Str("dir", p.args.Dir).
		Str("pattern", pattern).
		Int("files", len(files)).
		Msg("listed files")

	return files, nil
}

// 🔍 shouldIgnore checks if a file should be ignored
func (p *Provider) shouldIgnore(ctx context.Context, rel string) bool {
	for _, pattern := range p.args.Ignore {
		matched, err := doublestar.Match(pattern, rel)
		if err != nil {
			zerolog.Ctx(ctx).Debug().Str("pattern", pattern).Str("path", rel).Err(err).Msg("error matching pattern")
			continue
		}
		if matched {
			zerolog.Ctx(ctx).Debug().Str("file", rel).Str("pattern", pattern).Msg("file ignored by pattern")
			return true
		}
	}
	return false
}

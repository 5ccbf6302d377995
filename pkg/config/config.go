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

package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/walteh/tgfix/pkg/status"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📖 WordsArgs configures the word replacement command
type WordsArgs struct {
	WrongWords        string `json:"wrong_words,omitempty" yaml:"wrong_words,omitempty" toml:"wrong_words,omitempty" hcl:"wrong_words,optional"`
	CorrectWords      string `json:"correct_words,omitempty" yaml:"correct_words,omitempty" toml:"correct_words,omitempty" hcl:"correct_words,optional"`
	RemoveParentheses bool   `json:"remove_parentheses,omitempty" yaml:"remove_parentheses,omitempty" toml:"remove_parentheses,omitempty" hcl:"remove_parentheses,optional"`
	ReplaceHyphens    bool   `json:"replace_hyphens,omitempty" yaml:"replace_hyphens,omitempty" toml:"replace_hyphens,omitempty" hcl:"replace_hyphens,optional"`
}

// 📚 Config holds the settings shared by every command. Flags given on the
// command line take precedence over these values.
type Config struct {
	Recursive    bool       `json:"recursive,omitempty" yaml:"recursive,omitempty" toml:"recursive,omitempty" hcl:"recursive,optional"`
	BackupPolicy string     `json:"backup_policy,omitempty" yaml:"backup_policy,omitempty" toml:"backup_policy,omitempty" hcl:"backup_policy,optional"`
	Pattern      string     `json:"pattern,omitempty" yaml:"pattern,omitempty" toml:"pattern,omitempty" hcl:"pattern,optional"`
	Ignore       []string   `json:"ignore,omitempty" yaml:"ignore,omitempty" toml:"ignore,omitempty" hcl:"ignore,optional"`
	Language     string     `json:"language,omitempty" yaml:"language,omitempty" toml:"language,omitempty" hcl:"language,optional"`
	Normalize    bool       `json:"normalize,omitempty" yaml:"normalize,omitempty" toml:"normalize,omitempty" hcl:"normalize,optional"`
	Words        *WordsArgs `json:"words,omitempty" yaml:"words,omitempty" toml:"words,omitempty" hcl:"words,block"`
}

// 🎯 Load loads the configuration from a file. Relative word list paths are
// resolved against the directory of the file.
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	// Read config file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	// Get parser
	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	// Parse config
	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	cfg.resolvePaths(filepath.Dir(path))

	return cfg, nil
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	if _, err := status.ParseBackupPolicy(cfg.BackupPolicy); err != nil {
		return errors.Errorf("backup_policy: %w", err)
	}

	if cfg.Pattern != "" && !doublestar.ValidatePattern(cfg.Pattern) {
		return errors.Errorf("pattern: invalid glob %q", cfg.Pattern)
	}
	for _, ig := range cfg.Ignore {
		if !doublestar.ValidatePattern(ig) {
			return errors.Errorf("ignore: invalid glob %q", ig)
		}
	}

	if cfg.Language != "" {
		if _, err := language.Parse(cfg.Language); err != nil {
			return errors.Errorf("language: %w", err)
		}
	}

	if w := cfg.Words; w != nil {
		if (w.WrongWords == "") != (w.CorrectWords == "") {
			return errors.Errorf("words: wrong_words and correct_words must be given together")
		}
	}

	return nil
}

func (cfg *Config) resolvePaths(dir string) {
	if cfg.Words == nil {
		return
	}
	for _, p := range []*string{&cfg.Words.WrongWords, &cfg.Words.CorrectWords} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(dir, *p)
		}
	}
}

// 🔧 YAMLParser implements the Parser interface for YAML files
type YAMLParser struct{}

func init() {
	Register(&YAMLParser{})
}

func (p *YAMLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml")
}

func (p *YAMLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(strings.NewReader(string(data)))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}

	return &cfg, nil
}

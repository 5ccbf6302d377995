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

// Package wordmap loads the wrong-word to correct-word mapping used by the
// word corrector from two line-aligned list files.
package wordmap

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// 🔄 Entry maps one wrong word to its correction
type Entry struct {
	Wrong   string
	Correct string
}

// 📚 Map is an ordered wrong-word to correct-word mapping
type Map struct {
	entries   []Entry
	index     map[string]int
	normalize bool
}

// 🔧 Options controls how word lists are read
type Options struct {
	// Normalize applies Unicode NFC to entries and looked up values
	Normalize bool
}

// 🏭 New builds a Map from entries. A repeated wrong word keeps the position
// of its first occurrence and the correction of its last.
func New(entries []Entry, opts Options) *Map {
	m := &Map{
		index:     make(map[string]int, len(entries)),
		normalize: opts.Normalize,
	}
	for _, e := range entries {
		if opts.Normalize {
			e.Wrong = norm.NFC.String(e.Wrong)
			e.Correct = norm.NFC.String(e.Correct)
		}
		if i, ok := m.index[e.Wrong]; ok {
			m.entries[i].Correct = e.Correct
			continue
		}
		m.index[e.Wrong] = len(m.entries)
		m.entries = append(m.entries, e)
	}
	return m
}

// 📥 Load reads the wrong and correct word list files
func Load(ctx context.Context, wrongPath, correctPath string, opts Options) (*Map, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("wrong_words", wrongPath).Str("correct_words", correctPath).Msg("loading word lists")

	wrong, err := os.Open(wrongPath)
	if err != nil {
		return nil, errors.Errorf("opening wrong words file: %w", err)
	}
	defer wrong.Close()

	correct, err := os.Open(correctPath)
	if err != nil {
		return nil, errors.Errorf("opening correct words file: %w", err)
	}
	defer correct.Close()

	return Parse(wrong, correct, opts)
}

// 📝 Parse builds a Map from two line-aligned readers
func Parse(wrong, correct io.Reader, opts Options) (*Map, error) {
	wrongWords, err := readLines(wrong)
	if err != nil {
		return nil, errors.Errorf("reading wrong words: %w", err)
	}

	correctWords, err := readLines(correct)
	if err != nil {
		return nil, errors.Errorf("reading correct words: %w", err)
	}

	if len(wrongWords) != len(correctWords) {
		return nil, errors.Errorf("word lists must have the same number of lines: %d wrong words, %d correct words",
			len(wrongWords), len(correctWords))
	}

	entries := make([]Entry, len(wrongWords))
	for i := range wrongWords {
		entries[i] = Entry{Wrong: wrongWords[i], Correct: correctWords[i]}
	}

	return New(entries, opts), nil
}

// readLines returns trimmed, non-blank lines with any utf-8 bom removed
func readLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(transform.NewReader(r, unicode.UTF8BOM.NewDecoder()))
	var lines []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// 📋 Entries returns the mapping in order
func (m *Map) Entries() []Entry {
	return append([]Entry(nil), m.entries...)
}

// Len returns the number of distinct wrong words.
func (m *Map) Len() int {
	return len(m.entries)
}

// 🔍 Lookup finds the entry for an exact value and its position in the map
func (m *Map) Lookup(value string) (Entry, int, bool) {
	if m.normalize {
		value = norm.NFC.String(value)
	}
	i, ok := m.index[value]
	if !ok {
		return Entry{}, -1, false
	}
	return m.entries[i], i, true
}

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

package text

import (
	"context"
	"sort"
)

// 🔌 Transformer rewrites the text field values of a TextGrid buffer
type Transformer interface {
	// Name is a short stable identifier (case, spacing, words, ...)
	Name() string

	// Label describes the counted unit in summaries
	Label() string

	// Transform applies the rewrite to content
	Transform(ctx context.Context, content string) (*Result, error)
}

// 📊 Detail is one line of a result breakdown
type Detail struct {
	Key         string // Sub-case or wrong word
	Replacement string // Correct word, empty for sub-cases
	Index       int    // Stable ordering position
	Count       int    // Number of replacements
}

// 📦 Result is the outcome of one transformer on one buffer
type Result struct {
	Name             string
	Label            string
	OriginalContent  string
	ModifiedContent  string
	WasModified      bool
	ReplacementCount int
	Details          []Detail
}

func newResult(t Transformer, content string) *Result {
	return &Result{
		Name:            t.Name(),
		Label:           t.Label(),
		OriginalContent: content,
		ModifiedContent: content,
	}
}

// 🧮 tally accumulates per-detail counts in a stable order
type tally struct {
	details map[string]*Detail
}

func (t *tally) add(key, replacement string, index, n int) {
	if n == 0 {
		return
	}
	if t.details == nil {
		t.details = make(map[string]*Detail)
	}
	d, ok := t.details[key]
	if !ok {
		d = &Detail{Key: key, Replacement: replacement, Index: index}
		t.details[key] = d
	}
	d.Count += n
}

func (t *tally) list() []Detail {
	out := make([]Detail, 0, len(t.details))
	for _, d := range t.details {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}

func (r *Result) finish(modified string, count int, t *tally) *Result {
	r.ModifiedContent = modified
	r.ReplacementCount = count
	r.WasModified = modified != r.OriginalContent
	if t != nil {
		r.Details = t.list()
	}
	return r
}

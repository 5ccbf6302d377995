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

	"github.com/walteh/tgfix/pkg/textgrid"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// 🔠 CaseDirection selects lowercase or uppercase conversion
type CaseDirection int

const (
	ToLower CaseDirection = iota
	ToUpper
)

// String returns a string representation of CaseDirection
func (d CaseDirection) String() string {
	if d == ToUpper {
		return "uppercase"
	}
	return "lowercase"
}

// 🔠 CaseTransformer converts the case of every text field value
type CaseTransformer struct {
	direction CaseDirection
	caser     cases.Caser
}

// 🏭 NewCaseTransformer creates a CaseTransformer for the given language tag.
// An empty tag means language-neutral rules.
func NewCaseTransformer(direction CaseDirection, lang string) (*CaseTransformer, error) {
	tag := language.Und
	if lang != "" {
		parsed, err := language.Parse(lang)
		if err != nil {
			return nil, errors.Errorf("parsing language %q: %w", lang, err)
		}
		tag = parsed
	}

	caser := cases.Lower(tag)
	if direction == ToUpper {
		caser = cases.Upper(tag)
	}

	return &CaseTransformer{
		direction: direction,
		caser:     caser,
	}, nil
}

func (c *CaseTransformer) Name() string {
	return "case"
}

func (c *CaseTransformer) Label() string {
	return c.direction.String() + " conversions"
}

// Transform implements Transformer.Transform
func (c *CaseTransformer) Transform(ctx context.Context, content string) (*Result, error) {
	res := newResult(c, content)
	modified, count := textgrid.RewriteFields(content, c.caser.String)
	return res.finish(modified, count, nil), nil
}

package text

import (
	"context"
	"regexp"

	"github.com/walteh/tgfix/pkg/textgrid"
)

var parenSpan = regexp.MustCompile(`\([^)]*\)`)

// ✂️ ParenTransformer removes parenthesized spans from text field values
type ParenTransformer struct{}

// NewParenTransformer creates a new ParenTransformer
func NewParenTransformer() *ParenTransformer {
	return &ParenTransformer{}
}

func (p *ParenTransformer) Name() string {
	return "parentheses"
}

func (p *ParenTransformer) Label() string {
	return "parenthesis removals"
}

// Transform implements Transformer.Transform. The count is the number of
// spans removed, e.g. "id(le)" gives "id" and a count of 1.
func (p *ParenTransformer) Transform(ctx context.Context, content string) (*Result, error) {
	res := newResult(p, content)

	removed := 0
	modified, _ := textgrid.RewriteFields(content, func(value string) string {
		spans := parenSpan.FindAllStringIndex(value, -1)
		if len(spans) == 0 {
			return value
		}
		removed += len(spans)
		return parenSpan.ReplaceAllString(value, "")
	})

	return res.finish(modified, removed, nil), nil
}

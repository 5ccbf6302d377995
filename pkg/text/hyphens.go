package text

import (
	"context"
	"strings"

	"github.com/walteh/tgfix/pkg/textgrid"
)

var hyphenReplacer = strings.NewReplacer("-", " ", "_", " ")

// ➖ HyphenTransformer turns hyphens and underscores inside values into spaces
type HyphenTransformer struct{}

// NewHyphenTransformer creates a new HyphenTransformer
func NewHyphenTransformer() *HyphenTransformer {
	return &HyphenTransformer{}
}

func (h *HyphenTransformer) Name() string {
	return "hyphens"
}

func (h *HyphenTransformer) Label() string {
	return "hyphens/underscores replaced"
}

// Transform implements Transformer.Transform. The count is the number of
// characters replaced.
func (h *HyphenTransformer) Transform(ctx context.Context, content string) (*Result, error) {
	res := newResult(h, content)

	replaced := 0
	modified, _ := textgrid.RewriteFields(content, func(value string) string {
		n := strings.Count(value, "-") + strings.Count(value, "_")
		if n == 0 {
			return value
		}
		replaced += n
		return hyphenReplacer.Replace(value)
	})

	return res.finish(modified, replaced, nil), nil
}

package text

import (
	"context"

	"github.com/walteh/tgfix/pkg/textgrid"
	"github.com/walteh/tgfix/pkg/wordmap"
)

// 📖 WordTransformer replaces values that exactly equal a wrong word
type WordTransformer struct {
	words *wordmap.Map
}

// NewWordTransformer creates a WordTransformer over words
func NewWordTransformer(words *wordmap.Map) *WordTransformer {
	return &WordTransformer{words: words}
}

func (w *WordTransformer) Name() string {
	return "words"
}

func (w *WordTransformer) Label() string {
	return "word replacements"
}

// Transform implements Transformer.Transform. Each value is looked up once,
// so a correction is never itself corrected again.
func (w *WordTransformer) Transform(ctx context.Context, content string) (*Result, error) {
	res := newResult(w, content)
	t := &tally{}

	modified, count := textgrid.RewriteFields(content, func(value string) string {
		entry, idx, ok := w.words.Lookup(textgrid.Unescape(value))
		if !ok {
			return value
		}
		next := textgrid.Escape(entry.Correct)
		if next != value {
			t.add(entry.Wrong, entry.Correct, idx, 1)
		}
		return next
	})

	return res.finish(modified, count, t), nil
}

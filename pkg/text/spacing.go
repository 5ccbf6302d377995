package text

import (
	"context"
	"regexp"

	"github.com/walteh/tgfix/pkg/textgrid"
)

const (
	// SpacingAttached counts values like "arbre."
	SpacingAttached = "attached"
	// SpacingTrailingSpace counts values like "arbre. "
	SpacingTrailingSpace = "trailing space"
)

// word characters are unicode aware so accented words are fixed too
var (
	attachedDot = regexp.MustCompile(`(?s)^(.*[\p{L}\p{N}_])\.$`)
	trailingDot = regexp.MustCompile(`(?s)^(.*[\p{L}\p{N}_])\.\s+$`)
)

// ⎵ SpacingTransformer inserts the missing space before a final period
type SpacingTransformer struct{}

// NewSpacingTransformer creates a new SpacingTransformer
func NewSpacingTransformer() *SpacingTransformer {
	return &SpacingTransformer{}
}

func (s *SpacingTransformer) Name() string {
	return "spacing"
}

func (s *SpacingTransformer) Label() string {
	return "spacing corrections before final period"
}

// Transform implements Transformer.Transform
func (s *SpacingTransformer) Transform(ctx context.Context, content string) (*Result, error) {
	res := newResult(s, content)
	t := &tally{}

	modified, count := textgrid.RewriteFields(content, func(value string) string {
		if m := attachedDot.FindStringSubmatch(value); m != nil {
			t.add(SpacingAttached, "", 0, 1)
			return m[1] + " ."
		}
		if m := trailingDot.FindStringSubmatch(value); m != nil {
			t.add(SpacingTrailingSpace, "", 1, 1)
			return m[1] + " ."
		}
		return value
	})

	return res.finish(modified, count, t), nil
}

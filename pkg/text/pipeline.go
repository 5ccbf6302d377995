package text

import (
	"context"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔗 Pipeline runs transformers in order over one buffer
type Pipeline struct {
	steps []Transformer
}

// NewPipeline creates a Pipeline from steps
func NewPipeline(steps ...Transformer) *Pipeline {
	return &Pipeline{steps: steps}
}

// Steps returns the transformers in execution order
func (p *Pipeline) Steps() []Transformer {
	return append([]Transformer(nil), p.steps...)
}

// 📦 PipelineResult collects the per-step results of a pipeline run
type PipelineResult struct {
	OriginalContent string
	ModifiedContent string
	Steps           []*Result
}

// WasModified reports whether any step changed the content
func (r *PipelineResult) WasModified() bool {
	return r.ModifiedContent != r.OriginalContent
}

// ReplacementCount sums the counts of all steps
func (r *PipelineResult) ReplacementCount() int {
	total := 0
	for _, s := range r.Steps {
		total += s.ReplacementCount
	}
	return total
}

// 🏃 Transform feeds the output of each step into the next
func (p *Pipeline) Transform(ctx context.Context, content string) (*PipelineResult, error) {
	logger := zerolog.Ctx(ctx)

	out := &PipelineResult{
		OriginalContent: content,
		ModifiedContent: content,
		Steps:           make([]*Result, 0, len(p.steps)),
	}

	for _, step := range p.steps {
		res, err := step.Transform(ctx, out.ModifiedContent)
		if err != nil {
			return nil, errors.Errorf("running %s step: %w", step.Name(), err)
		}
		logger.Debug().
			Str("step", step.Name()).
			Int("replacements", res.ReplacementCount).
			Bool("modified", res.WasModified).
			Msg("step complete")

		out.Steps = append(out.Steps, res)
		out.ModifiedContent = res.ModifiedContent
	}

	return out, nil
}

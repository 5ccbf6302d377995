package operation

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🏃 OperationRunner executes operations and prints their summary
type OperationRunner struct {
	logger *zerolog.Logger
	out    io.Writer
}

// 🏗️ NewRunner creates a new runner writing summaries to out
func NewRunner(logger *zerolog.Logger, out io.Writer) *OperationRunner {
	return &OperationRunner{
		logger: logger,
		out:    out,
	}
}

// 🏃 Run executes an operation. The summary is printed even when the run was
// interrupted, so partial totals are not lost.
func (r *OperationRunner) Run(ctx context.Context, op Operation) error {
	r.logger.Debug().Msg("running operation")
	err := op.Execute(ctx)

	if s := op.Summary(); s != nil && s.FilesScanned > 0 {
		s.Render(r.out)
	}

	if err != nil {
		r.logger.Debug().Err(err).Msg("operation failed")
		if ctx.Err() != nil {
			return errors.Errorf("operation cancelled: %w", err)
		}
		return err
	}
	return nil
}

// 🔁 eachFile calls fn for every file in order, stopping between files once
// ctx is done.
func eachFile(ctx context.Context, files []string, fn func(ctx context.Context, path string)) error {
	for i, path := range files {
		if err := ctx.Err(); err != nil {
			zerolog.Ctx(ctx).Warn().Int("remaining", len(files)-i).Msg("stopping before remaining files")
			return errors.Errorf("processing files: %w", err)
		}
		fn(ctx, path)
	}
	return nil
}
